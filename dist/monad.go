package dist

// PointMass returns the distribution assigning weight 1 to a and 0 to
// everything else. Its support is exactly {a}.
func PointMass[O comparable](a O) *Dist[O] {
	return PointMassFunc(a, equalComparable[O])
}

// PointMassFunc is PointMass for outcome types compared by eq.
func PointMassFunc[O any](a O, eq func(O, O) bool) *Dist[O] {
	// A one-outcome domain with weight 1 satisfies both invariants
	// trivially, so this constructor cannot fail.
	return &Dist[O]{
		outcomes: []O{a},
		weights:  []float64{1},
		eq:       eq,
	}
}

// Bind pushes p through the kernel f, producing the distribution with
//
//	weight(b) = Σ_a p(a) · f(a)(b)
//
// The outcome domain of the result is the union of the domains of f(a)
// over the domain of p, deduplicated under the kernel outputs' equality.
// The double sum may be evaluated in any order; summation over
// non-negative reals is commutative up to rounding, and the result is
// re-validated against the package invariants like every other
// construction.
//
// Bind fails with ErrCodeOutOfRange if f returns nil for some outcome.
func Bind[A, B any](p *Dist[A], f func(A) *Dist[B]) (*Dist[B], error) {
	const op = "dist.Bind"
	parts := make([]*Dist[B], len(p.outcomes))
	for i, a := range p.outcomes {
		parts[i] = f(a)
		if parts[i] == nil {
			return nil, newOutOfRangeError(op, "kernel returned nil for outcome at index %d", i)
		}
	}
	eqB := parts[0].eq

	var domain []B
	for _, part := range parts {
		for _, b := range part.outcomes {
			seen := false
			for _, have := range domain {
				if eqB(have, b) {
					seen = true
					break
				}
			}
			if !seen {
				domain = append(domain, b)
			}
		}
	}

	weights := make([]float64, len(domain))
	for k, b := range domain {
		total := 0.0
		for i := range p.outcomes {
			total += p.weights[i] * parts[i].Value(b)
		}
		weights[k] = total
	}
	return NewFunc(domain, weights, eqB)
}

// Map pushes p forward through g, relabeling outcomes and merging the
// mass of outcomes that g identifies:
//
//	weight(b) = Σ_{a : g(a)=b} p(a)
//
// Map is Bind with a point-mass kernel.
func Map[A any, B comparable](p *Dist[A], g func(A) B) (*Dist[B], error) {
	return Bind(p, func(a A) *Dist[B] { return PointMass(g(a)) })
}

// MapFunc is Map for result types compared by eq.
func MapFunc[A, B any](p *Dist[A], g func(A) B, eq func(B, B) bool) (*Dist[B], error) {
	return Bind(p, func(a A) *Dist[B] { return PointMassFunc(g(a), eq) })
}
