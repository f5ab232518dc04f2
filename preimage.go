package planner

// wpi computes the weak preimage of target under lts: the set of
// (state, action) pairs whose successor set might land the adversary
// in dom(target) — spec.md §4.4. A pure self-loop transition
// (successor set = {source}) is excluded unless its action is τ: a
// real self-loop makes no progress, while a synthetic τ-loop marks an
// already-satisfied state and must propagate coverage.
func wpi(lts *LTS, target Policy) Policy {
	delta0 := target.Dom()
	out := NewPolicy()
	lts.Transitions(func(from State, action Action, to []State) {
		if isSelfLoop(from, action, to) {
			return
		}
		if intersectsStateSlice(to, delta0) {
			out.Add(Pair{State: from, Action: action})
		}
	})
	return out
}

// spi computes the strong preimage of target under lts: the set of
// (state, action) pairs whose successor set must land entirely inside
// dom(target) — spec.md §4.4. The self-loop exclusion rule is the
// same as wpi's.
func spi(lts *LTS, target Policy) Policy {
	delta0 := target.Dom()
	out := NewPolicy()
	lts.Transitions(func(from State, action Action, to []State) {
		if isSelfLoop(from, action, to) {
			return
		}
		if subsetOfStateSet(to, delta0) {
			out.Add(Pair{State: from, Action: action})
		}
	})
	return out
}

func isSelfLoop(from State, action Action, to []State) bool {
	if action == Tau {
		return false
	}
	return len(to) == 1 && to[0] == from
}

func intersectsStateSlice(to []State, delta StateSet) bool {
	return len(intersectStates(StateSetOf(to...), delta)) > 0
}

func subsetOfStateSet(to []State, delta StateSet) bool {
	return subsetStates(StateSetOf(to...), delta)
}
