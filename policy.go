package planner

// Policy is a set of (state, action) pairs: spec.md §3's Π. A (S, τ)
// pair marks S as a goal / live-end. The set representation allows
// several actions at one state; no operation in this package collapses
// a policy to a single action per state.
type Policy map[Pair]struct{}

// NewPolicy returns an empty Policy.
func NewPolicy() Policy { return make(Policy) }

// PolicyOf builds a Policy from a list of pairs.
func PolicyOf(pairs ...Pair) Policy {
	p := make(Policy, len(pairs))
	for _, pr := range pairs {
		p[pr] = struct{}{}
	}
	return p
}

// Add inserts pair into the policy.
func (p Policy) Add(pair Pair) { p[pair] = struct{}{} }

// Contains reports whether pair is a member.
func (p Policy) Contains(pair Pair) bool {
	_, ok := p[pair]
	return ok
}

// Clone returns an independent copy.
func (p Policy) Clone() Policy {
	out := make(Policy, len(p))
	for k := range p {
		out[k] = struct{}{}
	}
	return out
}

// Equal reports structural equality, the comparison fixpt uses to
// detect that an iteration has stabilized.
func (p Policy) Equal(other Policy) bool {
	if len(p) != len(other) {
		return false
	}
	for k := range p {
		if _, ok := other[k]; !ok {
			return false
		}
	}
	return true
}

// Sorted returns the policy's pairs in canonical order: by state, then
// by action.
func (p Policy) Sorted() []Pair {
	out := make([]Pair, 0, len(p))
	for pr := range p {
		out = append(out, pr)
	}
	sortPairs(out)
	return out
}

func sortPairs(ps []Pair) {
	for i := 1; i < len(ps); i++ {
		for j := i; j > 0; j-- {
			a, b := ps[j-1], ps[j]
			if a.State < b.State || (a.State == b.State && a.Action < b.Action) {
				break
			}
			ps[j-1], ps[j] = ps[j], ps[j-1]
		}
	}
}

// Union returns p ∪ other.
func (p Policy) Union(other Policy) Policy {
	out := p.Clone()
	for k := range other {
		out[k] = struct{}{}
	}
	return out
}

// Intersection returns p ∩ other.
func (p Policy) Intersection(other Policy) Policy {
	out := NewPolicy()
	small, big := Policy(p), other
	if len(other) < len(p) {
		small, big = other, p
	}
	for k := range small {
		if _, ok := big[k]; ok {
			out[k] = struct{}{}
		}
	}
	return out
}

// Difference returns p \ other.
func (p Policy) Difference(other Policy) Policy {
	out := NewPolicy()
	for pr := range p {
		if _, ok := other[pr]; !ok {
			out[pr] = struct{}{}
		}
	}
	return out
}

// Dom returns dom(Π): the set of source states appearing in the
// policy (spec.md §4.3).
func (p Policy) Dom() StateSet {
	out := NewStateSet()
	for pr := range p {
		out.Add(pr.State)
	}
	return out
}

// Inter retains only pairs whose state lies in delta (spec.md §4.3:
// inter(Π, Δ) → Π').
func (p Policy) Inter(delta StateSet) Policy {
	out := NewPolicy()
	for pr := range p {
		if delta.Contains(pr.State) {
			out[pr] = struct{}{}
		}
	}
	return out
}

// Scope selects whether prune discards pairs already covered by the
// accumulator (Min, the μ-iteration discipline) or passes its input
// through unchanged (Max, the ν-iteration discipline). It is carried
// as an explicit parameter through the evaluator rather than as a
// global, per spec.md §5 and §9 — the evaluator must support a nested
// eg/ag saving and restoring the caller's scope around its own
// min-mode μ-phase.
type Scope int

const (
	ScopeMin Scope = iota
	ScopeMax
)

// Prune implements spec.md §4.3's prune(Π, Π_acc): in ScopeMin it
// drops pairs whose state is already covered by acc, so μ-iteration
// only ever adds pairs for states not yet settled, guaranteeing
// monotone growth to a fixed point. In ScopeMax it is the identity —
// ν-iteration is shrinking toward a greatest fixed point and must not
// drop coverage mid-flight.
func (p Policy) Prune(acc Policy, scope Scope) Policy {
	if scope == ScopeMax {
		return p
	}
	accDom := acc.Dom()
	out := NewPolicy()
	for pr := range p {
		if !accDom.Contains(pr.State) {
			out[pr] = struct{}{}
		}
	}
	return out
}

// Goals keeps only τ-marked pairs: the live-ends of the policy.
func (p Policy) Goals() Policy {
	out := NewPolicy()
	for pr := range p {
		if pr.Action == Tau {
			out[pr] = struct{}{}
		}
	}
	return out
}
