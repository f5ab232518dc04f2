package planner

import "fmt"

// sat is the total recursive satisfaction function of spec.md §4.7: a
// switch over Φ's tag, descending into subformulas, invoking the
// preimage operators and fixed-point driver as needed. scope threads
// the min/max mode explicitly through every call instead of mutating a
// global, per spec.md §5 and §9.
func sat(lts *LTS, f Formula, scope Scope) (Policy, error) {
	switch node := f.(type) {
	case TrueF:
		return satAtomic(lts, "", true), nil

	case AtomF:
		return satAtomic(lts, node.Prop, false), nil

	case NotF:
		if !isAtomic(node.Inner) {
			return nil, errNonAtomicNegation()
		}
		inner, err := sat(lts, node.Inner, scope)
		if err != nil {
			return nil, err
		}
		universe := buildStates(lts.States(), func(State) bool { return true })
		rest := differenceStates(universe, inner.Dom())
		out := NewPolicy()
		for _, id := range rest.Sorted() {
			out.Add(Pair{State: id, Action: Tau})
		}
		return out, nil

	case AndF:
		left, err := sat(lts, node.Left, scope)
		if err != nil {
			return nil, err
		}
		right, err := sat(lts, node.Right, scope)
		if err != nil {
			return nil, err
		}
		return left.Intersection(right), nil

	case OrF:
		left, err := sat(lts, node.Left, scope)
		if err != nil {
			return nil, err
		}
		right, err := sat(lts, node.Right, scope)
		if err != nil {
			return nil, err
		}
		return left.Union(right), nil

	case ExF:
		inner, err := sat(lts, node.Inner, scope)
		if err != nil {
			return nil, err
		}
		return tagGoals(wpi(lts, inner)), nil

	case AxF:
		inner, err := sat(lts, node.Inner, scope)
		if err != nil {
			return nil, err
		}
		return tagGoals(spi(lts, inner)), nil

	case EuF:
		along, err := sat(lts, node.Psi, scope)
		if err != nil {
			return nil, err
		}
		goal, err := sat(lts, node.Phi, scope)
		if err != nil {
			return nil, err
		}
		return mu(lts, omegaEU(along, goal, lts, scope))

	case AuF:
		along, err := sat(lts, node.Psi, scope)
		if err != nil {
			return nil, err
		}
		goal, err := sat(lts, node.Phi, scope)
		if err != nil {
			return nil, err
		}
		return mu(lts, omegaAU(along, goal, lts, scope))

	case EfF:
		goal, err := sat(lts, node.Inner, scope)
		if err != nil {
			return nil, err
		}
		return mu(lts, omegaEF(goal, lts, scope))

	case AfF:
		goal, err := sat(lts, node.Inner, scope)
		if err != nil {
			return nil, err
		}
		return mu(lts, omegaAF(goal, lts, scope))

	case EgF:
		return satGlobal(lts, node.Inner, false)

	case AgF:
		return satGlobal(lts, node.Inner, true)

	default:
		return nil, errUnknownOperator(fmt.Sprintf("%T", f))
	}
}

// satAtomic implements the atomic case of spec.md §4.7: every covered
// state is tagged τ at the leaves.
func satAtomic(lts *LTS, prop string, literalTrue bool) Policy {
	out := NewPolicy()
	for _, id := range lts.States() {
		ls, _ := lts.Label(id)
		if literalTrue || ls.HasProp(prop) {
			out.Add(Pair{State: id, Action: Tau})
		}
	}
	return out
}

// tagGoals strips a policy down to τ-marked pairs over its domain —
// the ex/ax "climbed one level" goal tag of spec.md §4.7. spec.md §9
// notes this throws away which action ex/ax actually chose; that
// choice is made explicitly here rather than silently, per the same
// note's recommendation.
func tagGoals(p Policy) Policy {
	out := NewPolicy()
	for s := range p.Dom() {
		out.Add(Pair{State: s, Action: Tau})
	}
	return out
}

// satGlobal implements the two-phase ν-then-μ construction shared by
// eg(Φ) and ag(Φ) — spec.md §4.7 steps 1-7. universal selects spi-based
// ω_ag for phase 1 instead of wpi-based ω_eg; phase 2 always uses the
// existential ω_ef, since once phase 1 has pruned every escaping state
// the remaining region only needs forward reachability to a live-end,
// which is inherently an existential question once escape routes are
// gone.
//
// The scope saved/restored by spec.md §4.7 falls out for free here:
// scope is an explicit parameter, so this function's internal
// ScopeMax/ScopeMin choices for its own two phases never leak into the
// caller's scope — there is nothing to mutate back.
func satGlobal(lts *LTS, inner Formula, universal bool) (Policy, error) {
	phi0, err := sat(lts, inner, ScopeMax)
	if err != nil {
		return nil, err
	}
	sigma0, err := tauLTS(lts, phi0)
	if err != nil {
		return nil, err
	}

	var phase1 stepFunc
	if universal {
		phase1 = omegaAG(sigma0)
	} else {
		phase1 = omegaEG(sigma0)
	}
	pi1, err := nu(sigma0, phase1)
	if err != nil {
		return nil, err
	}

	sigma1, err := tauLTS(lts, pi1)
	if err != nil {
		return nil, err
	}
	goalPolicy := pi1.Goals()

	return mu(sigma1, omegaEF(goalPolicy, sigma1, ScopeMin))
}

// Sat is the core API's pure policy-synthesis entry point: spec.md §6,
// §4.9. It initializes scope to min, as sat_top does.
func Sat(lts *LTS, f Formula) (Policy, error) {
	return sat(lts, f, ScopeMin)
}

// Induced computes the LTS that Π carves out of lts — spec.md §4.5,
// §6's induced(Σ, Π) → Σ'.
func Induced(lts *LTS, pi Policy) (*LTS, error) {
	return inducedLTS(lts, pi)
}
