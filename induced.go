package planner

// inducedLTS computes lts(Σ0, Π): the LTS that Π carves out of source —
// spec.md §4.5. States are every state Π covers, PLUS every dead-end
// successor reachable via a transition Π selected (even when Π does not
// itself cover that successor) — the asymmetry spec.md §9 calls out as
// required for the induced LTS to be self-contained as a display.
// Transitions are exactly the ones Π selects.
func inducedLTS(source *LTS, pi Policy) (*LTS, error) {
	keep := NewStateSet()
	for pr := range pi {
		keep.Add(pr.State)
	}

	var transitions []RawTransition
	for pr := range pi {
		to := source.Successors(pr.State, pr.Action)
		if to == nil {
			// (S, A) ∈ Π but Σ0 has no such transition (e.g. a τ pair
			// with no corresponding transition in a source LTS): there
			// is nothing to carry into Γ, and no dead-end successor to
			// add. tau() is what gives τ pairs a real transition.
			continue
		}
		toCopy := make([]State, len(to))
		copy(toCopy, to)
		transitions = append(transitions, RawTransition{From: pr.State, Action: pr.Action, To: toCopy})
		keep = unionStates(keep, StateSetOf(to...))
	}

	var states []LabeledState
	for _, id := range source.States() {
		if !keep.Contains(id) {
			continue
		}
		ls, _ := source.Label(id)
		states = append(states, ls)
	}

	return buildLTS(states, transitions, true)
}

// tauLTS computes tau(Σ0, Π): inducedLTS(Σ0, Π) with an added explicit
// self-loop (S, τ, {S}) for every τ-pair in Π — spec.md §4.5. These
// synthetic loops keep goal states reachable to themselves so wpi/spi
// can recognize them during the ν- and μ-iterations of eg/ag.
func tauLTS(source *LTS, pi Policy) (*LTS, error) {
	base, err := inducedLTS(source, pi)
	if err != nil {
		return nil, err
	}

	states := make([]LabeledState, 0, len(base.order))
	for _, id := range base.order {
		ls, _ := base.Label(id)
		states = append(states, ls)
	}
	var transitions []RawTransition
	base.Transitions(func(from State, action Action, to []State) {
		transitions = append(transitions, RawTransition{From: from, Action: action, To: to})
	})

	for pr := range pi.Goals() {
		if base.HasState(pr.State) {
			transitions = append(transitions, RawTransition{From: pr.State, Action: Tau, To: []State{pr.State}})
		}
	}

	return buildLTS(states, transitions, true)
}
