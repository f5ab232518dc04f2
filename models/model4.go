package models

import "github.com/mrieker/alphactl"

// model4 extends model1 with action d and state 5 — spec.md §8's "d
// action dissolves state 3's self-loop": state 3's only escapes in
// model1 are a pure self-loop under 'a' (excluded outright by the
// self-loop rule) and the nondeterministic 'c' into {2,4}, which
// straddles the r∧¬p boundary (state 4 still has p). Action d gives 3
// a deterministic, unconditional escape to state 5, which itself has
// a direct route to the r∧¬p witness at state 2.
type model4 struct{}

func (model4) ID() int      { return 4 }
func (model4) Name() string { return "model4" }

func (model4) Build() (*planner.LTS, error) {
	states := []planner.LabeledState{
		{ID: 0, Props: map[string]bool{"p": true, "q": true}},
		{ID: 1, Props: map[string]bool{"p": true}},
		{ID: 2, Props: map[string]bool{"r": true}},
		{ID: 3, Props: map[string]bool{"q": true}},
		{ID: 4, Props: map[string]bool{"p": true, "q": true, "r": true}},
		{ID: 5, Props: map[string]bool{"p": true}},
	}
	transitions := []planner.RawTransition{
		{From: 0, Action: "a", To: []planner.State{1}},
		{From: 0, Action: "b", To: []planner.State{3}},
		{From: 1, Action: "b", To: []planner.State{1, 2}},
		{From: 3, Action: "a", To: []planner.State{3}},
		{From: 3, Action: "c", To: []planner.State{2, 4}},
		{From: 3, Action: "d", To: []planner.State{5}},
		{From: 5, Action: "e", To: []planner.State{2}},
	}
	return planner.NewLTS(states, transitions)
}

func (model4) Formulas() []FormulaSpec {
	return []FormulaSpec{
		{
			Name:        "T3: ag(ef(and(r,not(p))))",
			Description: "the d escape from state 3 makes this achievable everywhere",
			Formula:     planner.MustParse("ag(ef(and(r,not(p))))"),
		},
		{
			Name:        "T4: ag(eu(or(p,q), r))",
			Description: "every covered state can reach r along a p∨q path",
			Formula:     planner.MustParse("ag(eu(or(p,q),r))"),
		},
	}
}

func init() { register(model4{}) }
