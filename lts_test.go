package planner

import "testing"

func TestNewLTSRejectsDuplicateState(t *testing.T) {
	_, err := NewLTS(
		[]LabeledState{{ID: 0}, {ID: 0}},
		nil,
	)
	if err == nil {
		t.Fatalf("expected an error for a duplicate state id")
	}
}

func TestNewLTSRejectsEmptySuccessorSet(t *testing.T) {
	_, err := NewLTS(
		[]LabeledState{{ID: 0}},
		[]RawTransition{{From: 0, Action: "a", To: nil}},
	)
	if err == nil {
		t.Fatalf("expected an error for an empty successor set")
	}
}

func TestNewLTSRejectsUnknownSourceState(t *testing.T) {
	_, err := NewLTS(
		[]LabeledState{{ID: 0}},
		[]RawTransition{{From: 1, Action: "a", To: []State{0}}},
	)
	if err == nil {
		t.Fatalf("expected an error for a transition sourced from an unlabeled state")
	}
}

func TestNewLTSRejectsUnknownSuccessorState(t *testing.T) {
	_, err := NewLTS(
		[]LabeledState{{ID: 0}},
		[]RawTransition{{From: 0, Action: "a", To: []State{9}}},
	)
	if err == nil {
		t.Fatalf("expected an error for a transition into an unlabeled state")
	}
}

func TestNewLTSRejectsDuplicateStateAction(t *testing.T) {
	_, err := NewLTS(
		[]LabeledState{{ID: 0}, {ID: 1}, {ID: 2}},
		[]RawTransition{
			{From: 0, Action: "a", To: []State{1}},
			{From: 0, Action: "a", To: []State{2}},
		},
	)
	if err == nil {
		t.Fatalf("expected an error for a duplicate (state, action) transition")
	}
}

func TestNewLTSRejectsTauInSourceLTS(t *testing.T) {
	_, err := NewLTS(
		[]LabeledState{{ID: 0}},
		[]RawTransition{{From: 0, Action: Tau, To: []State{0}}},
	)
	if err == nil {
		t.Fatalf("expected an error: τ must not appear in a source LTS")
	}
}

func TestLTSSuccessorsDeduplicatedAndSorted(t *testing.T) {
	l, err := NewLTS(
		[]LabeledState{{ID: 0}, {ID: 1}, {ID: 2}},
		[]RawTransition{{From: 0, Action: "a", To: []State{2, 1, 2, 1}}},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	to := l.Successors(0, "a")
	if len(to) != 2 || to[0] != 1 || to[1] != 2 {
		t.Fatalf("expected deduplicated, sorted [1 2], got %v", to)
	}
}

func TestLTSUniverse(t *testing.T) {
	l, err := NewLTS(
		[]LabeledState{{ID: 0}, {ID: 1}, {ID: 2}},
		[]RawTransition{
			{From: 0, Action: "a", To: []State{1}},
			{From: 1, Action: "b", To: []State{1, 2}},
		},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	u := l.Universe()
	want := PolicyOf(Pair{0, "a"}, Pair{1, "b"})
	if !u.Equal(want) {
		t.Fatalf("universe: got %v, want %v", u.Sorted(), want.Sorted())
	}
}
