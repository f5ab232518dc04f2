package planner

// stepFunc is a monotone step over policies, the kind ω constructors in
// omega.go build: spec.md §4.6.
type stepFunc func(Policy) Policy

// fixpt repeatedly applies step to seed until two consecutive iterates
// are structurally equal, then returns that fixed point. Monotonicity
// of step is a precondition supplied by the ω constructors; finiteness
// of the (S, A) universe guarantees termination. As a backstop against
// a step function that is not actually monotone, fixpt fails with
// Invariant if it exceeds bound iterations — spec.md §8 invariant 5
// promises termination within |universe(Σ)| + 1 iterations.
func fixpt(seed Policy, bound int, step stepFunc) (Policy, error) {
	x := seed
	for i := 0; i <= bound; i++ {
		next := step(x)
		if next.Equal(x) {
			return x, nil
		}
		x = next
	}
	return nil, errInvariant("fixed-point iteration did not converge within the safety bound")
}

// mu computes the least fixed point of step over lts's universe,
// seeded from ∅ — spec.md §4.6.
func mu(lts *LTS, step stepFunc) (Policy, error) {
	return fixpt(NewPolicy(), fixpointBound(lts), step)
}

// nu computes the greatest fixed point of step over lts's universe,
// seeded from universe(Σ) — spec.md §4.6.
func nu(lts *LTS, step stepFunc) (Policy, error) {
	return fixpt(lts.Universe(), fixpointBound(lts), step)
}

func fixpointBound(lts *LTS) int {
	return len(lts.Universe()) + 1
}
