package planner

// omegaEU builds the ω step function that realizes eu(Ψ, Φ): each
// iterate grows by weak-preimage stepping backward from X, restricted
// to states where Ψ holds, pruned against the scope's accumulator
// discipline, then unioned with the Φ goal policy that seeds every
// path's base case — spec.md §4.8.
//
// Naming note: spec.md §4.8 writes this constructor generically as
// ω_eu(Φ_policy, Ψ_policy, Σ), where "Φ_policy" restricts the
// preimage step and "Ψ_policy" is unioned in as the seed — the
// opposite pairing from eu(Ψ, Φ)'s own argument names in §4.7
// ("Δ_Ψ = dom(sat(Ψ))", "goal seed sat(Φ)"). We resolve the
// naming collision by semantics rather than position: alongPolicy is
// the along-the-path restriction (sat(Ψ) for eu(Ψ,Φ)) and goalPolicy
// is the base-case seed (sat(Φ)), which is what makes
// sat(ag(eu(or(p,q), r))) mean "reach r while p∨q holds along the
// way" (spec.md §8 T4) rather than the reverse.
func omegaEU(alongPolicy, goalPolicy Policy, lts *LTS, scope Scope) stepFunc {
	alongStates := alongPolicy.Dom()
	return func(x Policy) Policy {
		stepped := wpi(lts, x).Inter(alongStates)
		pruned := stepped.Prune(x, scope)
		return pruned.Union(x).Union(goalPolicy)
	}
}

// omegaAU is omegaEU's universal-quantifier twin, using spi instead of
// wpi: spec.md §4.8.
func omegaAU(alongPolicy, goalPolicy Policy, lts *LTS, scope Scope) stepFunc {
	alongStates := alongPolicy.Dom()
	return func(x Policy) Policy {
		stepped := spi(lts, x).Inter(alongStates)
		pruned := stepped.Prune(x, scope)
		return pruned.Union(x).Union(goalPolicy)
	}
}

// omegaEF builds the ω step function that realizes ef(Φ): weak
// preimage stepping backward from X, pruned, unioned with X and the Φ
// goal policy — spec.md §4.8. Used standalone for ef(Φ), and as the
// μ-phase of eg/ag's two-phase construction (spec.md §4.7 step 6).
func omegaEF(goalPolicy Policy, lts *LTS, scope Scope) stepFunc {
	return func(x Policy) Policy {
		pruned := wpi(lts, x).Prune(x, scope)
		return pruned.Union(x).Union(goalPolicy)
	}
}

// omegaAF is omegaEF's universal-quantifier twin, using spi: spec.md
// §4.8.
func omegaAF(goalPolicy Policy, lts *LTS, scope Scope) stepFunc {
	return func(x Policy) Policy {
		pruned := spi(lts, x).Prune(x, scope)
		return pruned.Union(x).Union(goalPolicy)
	}
}

// omegaEG builds the partial step function driven by ν to realize
// eg(Φ)'s phase-1 trap/escape removal: a pair survives only while it
// remains a weak-preimage witness against the shrinking accumulator —
// spec.md §4.8. It never prunes: ν-iteration shrinks toward a
// greatest fixed point and must not drop coverage mid-flight.
func omegaEG(lts *LTS) stepFunc {
	universe := lts.Universe()
	return func(x Policy) Policy {
		return wpi(lts, x).Intersection(universe)
	}
}

// omegaAG is omegaEG's universal-quantifier twin, using spi: spec.md
// §4.8.
func omegaAG(lts *LTS) stepFunc {
	universe := lts.Universe()
	return func(x Policy) Policy {
		return spi(lts, x).Intersection(universe)
	}
}
