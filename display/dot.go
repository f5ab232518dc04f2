// Package display is the pretty-printing collaborator spec.md §1 names
// as out of the evaluator's core scope: it renders an induced LTS for
// human consumption. Adapted from the teacher's root graphviz.go,
// generalized from unlabeled KripkeStructure edges to action-labeled
// LTS transitions, with τ self-loops called out as goal markers.
package display

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mrieker/alphactl"
)

// DOT renders lts as Graphviz DOT source. Each transition edge carries
// its action label; τ self-loops (goal markers, see planner's tau()
// projection) are drawn in a distinct color so a reader can spot
// live-ends at a glance.
func DOT(lts *planner.LTS) string {
	var sb strings.Builder
	sb.WriteString("digraph LTS {\n")
	sb.WriteString("  rankdir=LR;\n")
	sb.WriteString("  node [shape=circle];\n\n")

	for _, id := range lts.States() {
		ls, _ := lts.Label(id)
		sb.WriteString(fmt.Sprintf("  %q [label=%q];\n", nodeName(id), nodeLabel(id, ls)))
	}
	sb.WriteString("\n")

	lts.Transitions(func(from planner.State, action planner.Action, to []planner.State) {
		for _, dst := range to {
			if action == planner.Tau {
				sb.WriteString(fmt.Sprintf("  %q -> %q [label=%q, color=forestgreen, style=dashed];\n",
					nodeName(from), nodeName(dst), string(action)))
				continue
			}
			sb.WriteString(fmt.Sprintf("  %q -> %q [label=%q];\n", nodeName(from), nodeName(dst), string(action)))
		}
	})

	sb.WriteString("}\n")
	return sb.String()
}

// Policy renders a Policy as a sorted, human-readable table: one
// "state: action" line per pair, τ pairs spelled out as goals.
func Policy(pi planner.Policy) string {
	var sb strings.Builder
	for _, pr := range pi.Sorted() {
		if pr.Action == planner.Tau {
			sb.WriteString(fmt.Sprintf("%d: goal\n", pr.State))
			continue
		}
		sb.WriteString(fmt.Sprintf("%d: %s\n", pr.State, pr.Action))
	}
	return sb.String()
}

func nodeName(id planner.State) string {
	return fmt.Sprintf("s%d", id)
}

func nodeLabel(id planner.State, ls planner.LabeledState) string {
	props := make([]string, 0, len(ls.Props))
	for p, ok := range ls.Props {
		if ok {
			props = append(props, p)
		}
	}
	sort.Strings(props)
	if len(props) == 0 {
		return nodeName(id)
	}
	return fmt.Sprintf("%s\\n{%s}", nodeName(id), strings.Join(props, ", "))
}
