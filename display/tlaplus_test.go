package display_test

import (
	"strings"
	"testing"

	planner "github.com/mrieker/alphactl"
	"github.com/mrieker/alphactl/display"
)

func TestTLAPlusRendersModuleAndActions(t *testing.T) {
	l, err := planner.NewLTS(
		[]planner.LabeledState{{ID: 0}, {ID: 1}},
		[]planner.RawTransition{{From: 0, Action: "a", To: []planner.State{1}}},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := display.TLAPlus(l, "Example")
	if !strings.Contains(out, "---- MODULE Example ----") {
		t.Fatalf("expected a module header, got %q", out)
	}
	if !strings.Contains(out, "Action_a ==") {
		t.Fatalf("expected an Action_a definition, got %q", out)
	}
	// With a single action, Next is that action alone: the first entry
	// of Next carries no \/ bullet.
	if !strings.Contains(out, "Next ==\n    Action_a\n") {
		t.Fatalf("expected Next to consist of Action_a, got %q", out)
	}
}

func TestTLAPlusOnEmptyLTS(t *testing.T) {
	l, err := planner.NewLTS(nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := display.TLAPlus(l, "Empty")
	if !strings.Contains(out, "Init == FALSE") {
		t.Fatalf("expected Init == FALSE for an empty LTS, got %q", out)
	}
}
