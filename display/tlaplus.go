package display

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mrieker/alphactl"
)

// TLAPlus renders lts as a TLA+ module, adapted from the teacher's
// kripke.World.GenerateTLAPlus: instead of a hand-written
// producer/consumer skeleton, this walks the actual LTS and emits one
// disjunct per action, so every Γ action label becomes a TLA+ action and
// every (S, A, S') triple becomes one disjunct of that action's next-
// state relation. It exists for documentation, the way the teacher's
// generator did — not as a model checker input.
func TLAPlus(lts *planner.LTS, moduleName string) string {
	var tla strings.Builder

	tla.WriteString(fmt.Sprintf("---- MODULE %s ----\n", moduleName))
	tla.WriteString("EXTENDS Naturals\n\n")

	tla.WriteString("VARIABLE pc\n\n")
	tla.WriteString("vars == <<pc>>\n\n")

	states := lts.States()
	tla.WriteString("States == {")
	for i, id := range states {
		if i > 0 {
			tla.WriteString(", ")
		}
		tla.WriteString(nodeLabelTLA(id))
	}
	tla.WriteString("}\n\n")

	tla.WriteString("TypeOK == pc \\in States\n\n")

	if len(states) > 0 {
		tla.WriteString(fmt.Sprintf("Init == pc = %s\n\n", nodeLabelTLA(states[0])))
	} else {
		tla.WriteString("Init == FALSE\n\n")
	}

	actions := collectActions(lts, states)
	for _, action := range actions {
		tla.WriteString(fmt.Sprintf("%s ==\n", actionName(action)))
		first := true
		lts.Transitions(func(from planner.State, a planner.Action, to []planner.State) {
			if a != action {
				return
			}
			for _, dst := range to {
				prefix := "    /\\"
				if !first {
					prefix = "    \\/"
				}
				tla.WriteString(fmt.Sprintf("%s pc = %s /\\ pc' = %s\n", prefix, nodeLabelTLA(from), nodeLabelTLA(dst)))
				first = false
			}
		})
		tla.WriteString("\n")
	}

	tla.WriteString("Next ==\n")
	for i, action := range actions {
		prefix := "    \\/"
		if i == 0 {
			prefix = "   "
		}
		tla.WriteString(fmt.Sprintf("%s %s\n", prefix, actionName(action)))
	}
	if len(actions) == 0 {
		tla.WriteString("    FALSE\n")
	}
	tla.WriteString("\n")

	tla.WriteString("Spec == Init /\\ [][Next]_vars\n\n")
	tla.WriteString("====\n")

	return tla.String()
}

// collectActions returns every distinct action in Γ, TLA+-identifier
// order (τ sorts last, since it is a synthetic goal marker rather than
// a real action a TLA+ reader would expect to step through).
func collectActions(lts *planner.LTS, states []planner.State) []planner.Action {
	seen := make(map[planner.Action]bool)
	var out []planner.Action
	for _, s := range states {
		for _, a := range lts.Actions(s) {
			if seen[a] {
				continue
			}
			seen[a] = true
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i] == planner.Tau {
			return false
		}
		if out[j] == planner.Tau {
			return true
		}
		return out[i] < out[j]
	})
	return out
}

func nodeLabelTLA(id planner.State) string {
	return fmt.Sprintf("\"s%d\"", id)
}

func actionName(a planner.Action) string {
	if a == planner.Tau {
		return "Goal"
	}
	return "Action_" + string(a)
}
