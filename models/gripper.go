package models

import "github.com/mrieker/alphactl"

// gripper is the Model 6 two-room, one-ball gripper world spec.md §8
// references by result ("sat(6, ag(ef(at(ball,2)))) must produce a
// policy that, from every state of the induced LTS, can reach a state
// labeled with at(ball,2) despite the nondeterminism of grab") without
// giving its state table, unlike Models 1 and 4. We reconstruct the
// standard two-room gripper-world LTS: a robot and a ball, each room
// 1 or 2, the gripper either free or holding the ball, with a
// nondeterministic pick action that models failing to grab — spec.md
// §4 (SPEC_FULL) supplements the missing table.
//
// State encoding (robotRoom, ballStatus):
//
//	0: robot=1, ball in room 1
//	1: robot=1, ball in room 2
//	2: robot=1, holding the ball
//	3: robot=2, ball in room 1
//	4: robot=2, ball in room 2
//	5: robot=2, holding the ball
type gripper struct{}

func (gripper) ID() int      { return 6 }
func (gripper) Name() string { return "gripper" }

func (gripper) Build() (*planner.LTS, error) {
	states := []planner.LabeledState{
		{ID: 0, Props: map[string]bool{"at(robot,1)": true, "at(ball,1)": true}},
		{ID: 1, Props: map[string]bool{"at(robot,1)": true, "at(ball,2)": true}},
		{ID: 2, Props: map[string]bool{"at(robot,1)": true, "holding": true}},
		{ID: 3, Props: map[string]bool{"at(robot,2)": true, "at(ball,1)": true}},
		{ID: 4, Props: map[string]bool{"at(robot,2)": true, "at(ball,2)": true}},
		{ID: 5, Props: map[string]bool{"at(robot,2)": true, "holding": true}},
	}
	transitions := []planner.RawTransition{
		// move: robot switches rooms, the ball keeps whatever it was
		// doing (held balls travel with the gripper).
		{From: 0, Action: "move", To: []planner.State{3}},
		{From: 1, Action: "move", To: []planner.State{4}},
		{From: 2, Action: "move", To: []planner.State{5}},
		{From: 3, Action: "move", To: []planner.State{0}},
		{From: 4, Action: "move", To: []planner.State{1}},
		{From: 5, Action: "move", To: []planner.State{2}},
		// pick: only enabled when the robot shares the ball's room and
		// the gripper is free. Nondeterministic: grab may succeed
		// (ball becomes held) or fail (nothing changes).
		{From: 0, Action: "pick", To: []planner.State{0, 2}},
		{From: 4, Action: "pick", To: []planner.State{4, 5}},
		// drop: only enabled while holding; deterministic, the ball
		// lands in the robot's current room.
		{From: 2, Action: "drop", To: []planner.State{0}},
		{From: 5, Action: "drop", To: []planner.State{4}},
	}
	return planner.NewLTS(states, transitions)
}

func (gripper) Formulas() []FormulaSpec {
	return []FormulaSpec{
		{
			Name:        "ag(ef(at(ball,2)))",
			Description: "every state of the induced LTS can reach the ball being in room 2",
			Formula:     planner.MustParse("ag(ef(at(ball,2)))"),
		},
	}
}

func init() { register(gripper{}) }
