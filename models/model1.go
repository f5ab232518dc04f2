package models

import "github.com/mrieker/alphactl"

// model1 is the Model 1 LTS from spec.md §8: five states, two of its
// three actions forming a self-loop and a nondeterministic trap at
// state 3 — the example the two-phase eg/ag construction exists to
// dissolve.
type model1 struct{}

func (model1) ID() int   { return 1 }
func (model1) Name() string { return "model1" }

func (model1) Build() (*planner.LTS, error) {
	states := []planner.LabeledState{
		{ID: 0, Props: map[string]bool{"p": true, "q": true}},
		{ID: 1, Props: map[string]bool{"p": true}},
		{ID: 2, Props: map[string]bool{"r": true}},
		{ID: 3, Props: map[string]bool{"q": true}},
		{ID: 4, Props: map[string]bool{"p": true, "q": true, "r": true}},
	}
	transitions := []planner.RawTransition{
		{From: 0, Action: "a", To: []planner.State{1}},
		{From: 0, Action: "b", To: []planner.State{3}},
		{From: 1, Action: "b", To: []planner.State{1, 2}},
		{From: 3, Action: "a", To: []planner.State{3}},
		{From: 3, Action: "c", To: []planner.State{2, 4}},
	}
	return planner.NewLTS(states, transitions)
}

func (model1) Formulas() []FormulaSpec {
	return []FormulaSpec{
		{
			Name:        "T1: ef(and(r,not(p)))",
			Description: "exists a path to a state with r and not p",
			Formula:     planner.MustParse("ef(and(r,not(p)))"),
		},
		{
			Name:        "T2: ag(ef(and(r,not(p))))",
			Description: "every covered state can always still reach r ∧ ¬p",
			Formula:     planner.MustParse("ag(ef(and(r,not(p))))"),
		},
	}
}

func init() { register(model1{}) }
