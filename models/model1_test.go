package models_test

import (
	"testing"

	planner "github.com/mrieker/alphactl"
	"github.com/mrieker/alphactl/models"
)

// TestModel1T2 reproduces spec.md §8's worked T2 example exactly: state
// 3's self-loop (pure, under action a) and its nondeterministic escape
// into {2,4} (which straddles the r∧¬p boundary at state 4) both fail
// the two-phase trap removal, so state 3 — and state 0's b action,
// which routes through it — must be pruned; state 0 stays covered
// through its a action.
func TestModel1T2(t *testing.T) {
	m, ok := models.Get(1)
	if !ok {
		t.Fatalf("model 1 not registered")
	}
	l, err := m.Build()
	if err != nil {
		t.Fatalf("unexpected error building model1: %v", err)
	}

	got, err := planner.Sat(l, planner.MustParse("ag(ef(and(r,not(p))))"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := planner.PolicyOf(
		planner.Pair{State: 0, Action: "a"},
		planner.Pair{State: 1, Action: "b"},
		planner.Pair{State: 2, Action: planner.Tau},
	)
	if !got.Equal(want) {
		t.Fatalf("T2: got %v, want %v", got.Sorted(), want.Sorted())
	}

	induced, err := planner.Induced(l, got)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wantStates := []planner.State{0, 1, 2}
	gotStates := induced.States()
	if len(gotStates) != len(wantStates) {
		t.Fatalf("T2 induced states: got %v, want %v", gotStates, wantStates)
	}
	for i := range wantStates {
		if gotStates[i] != wantStates[i] {
			t.Fatalf("T2 induced states: got %v, want %v", gotStates, wantStates)
		}
	}
}

// TestModel1T1Coverage tests T1 qualitatively rather than pair-for-pair:
// spec.md itself hedges T1's answer ("exact form per source example"),
// and the μ-iteration over model1's five states admits both of state
// 0's outgoing actions (a, b) in the same step: once states 1 and 3
// are covered, both are weak-preimage witnesses and prune only checks
// against the previous iterate, so the policy holds (0,a) as well as
// (0,b). What is checked here: states 0, 1, 2, and 3 are covered
// (each genuinely reaches r ∧ ¬p), state 4 is not (it already
// satisfies r but also p, so it is not itself an r∧¬p witness and has
// no outgoing transition to become one).
func TestModel1T1Coverage(t *testing.T) {
	m, _ := models.Get(1)
	l, _ := m.Build()

	got, err := planner.Sat(l, planner.MustParse("ef(and(r,not(p)))"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	dom := got.Dom()
	for _, s := range []planner.State{0, 1, 2, 3} {
		if !dom.Contains(s) {
			t.Fatalf("expected state %d to be covered, got domain %v", s, dom.Sorted())
		}
	}
	if dom.Contains(4) {
		t.Fatalf("state 4 satisfies r but also p; it is not an r∧¬p witness and has no outgoing transition")
	}
}

func TestModel1Formulas(t *testing.T) {
	m, ok := models.Get(1)
	if !ok {
		t.Fatalf("model 1 not registered")
	}
	l, err := m.Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, spec := range m.Formulas() {
		if _, err := planner.Sat(l, spec.Formula); err != nil {
			t.Fatalf("%s: unexpected error: %v", spec.Name, err)
		}
	}
}

func TestLookupMatchesGet(t *testing.T) {
	l, err := models.Lookup(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(l.States()) != 5 {
		t.Fatalf("expected model1's 5 states, got %d", len(l.States()))
	}

	if _, err := models.Lookup(999); err == nil {
		t.Fatalf("expected an error for an unregistered model id")
	}
}
