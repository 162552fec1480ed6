package dist

// Mix returns the convex combination of p and q with mixing weight w:
//
//	weight(x) = w·p(x) + (1−w)·q(x)
//
// over the union of the two domains. Fails with ErrCodeOutOfRange if w is
// outside [0,1].
//
// Mix(p, q, 1) equals p, Mix(p, q, w) equals Mix(q, p, 1−w), and
// Mix(p, p, w) equals p for every w.
func Mix[O any](p, q *Dist[O], w float64) (*Dist[O], error) {
	const op = "dist.Mix"
	if w < 0 || w > 1 {
		return nil, newOutOfRangeError(op, "mixing weight %v outside [0,1]", w)
	}
	domain := make([]O, len(p.outcomes))
	copy(domain, p.outcomes)
	for _, x := range q.outcomes {
		if p.index(x) < 0 {
			domain = append(domain, x)
		}
	}
	weights := make([]float64, len(domain))
	for i, x := range domain {
		weights[i] = w*p.Value(x) + (1-w)*q.Value(x)
	}
	return NewFunc(domain, weights, p.eq)
}

// MixN mixes a family of distributions along an index distribution:
//
//	weight(a) = Σ_i index(i) · family(i)(a)
//
// It generalizes Mix to an arbitrary finite index set and specializes back
// to Mix when the index domain has two elements. MixN is exactly Bind of
// the index distribution through the family.
func MixN[I, A any](index *Dist[I], family func(I) *Dist[A]) (*Dist[A], error) {
	return Bind(index, family)
}

// NestedMixWeights computes the reweighting that flattens a nested mixture:
//
//	Mix(p, Mix(q, r, wq), wp) = Mix(Mix(p, q, wr), r, ws)
//
// where ws = 1 − (1−wp)(1−wq) and wr = wp/ws. The returned collapsed flag
// is true exactly when ws = 0, i.e. wp = 0 and wq = 0 simultaneously; in
// that case the nested mixture already reduces to r directly and no
// reweighting exists, so callers must branch on the flag instead of
// dividing. Fails with ErrCodeOutOfRange if either input weight is outside
// [0,1].
func NestedMixWeights(wp, wq float64) (wr, ws float64, collapsed bool, err error) {
	const op = "dist.NestedMixWeights"
	if wp < 0 || wp > 1 {
		return 0, 0, false, newOutOfRangeError(op, "mixing weight %v outside [0,1]", wp)
	}
	if wq < 0 || wq > 1 {
		return 0, 0, false, newOutOfRangeError(op, "mixing weight %v outside [0,1]", wq)
	}
	ws = 1 - (1-wp)*(1-wq)
	if ws == 0 {
		return 0, 0, true, nil
	}
	return wp / ws, ws, false, nil
}

// Uniform returns the distribution assigning weight 1/n to each of the n
// given outcomes. Fails with ErrCodeEmptyDomain if outcomes is empty and
// ErrCodeOutOfRange if an outcome repeats.
func Uniform[O comparable](outcomes []O) (*Dist[O], error) {
	const op = "dist.Uniform"
	if len(outcomes) == 0 {
		return nil, newEmptyDomainError(op, "outcome domain is empty")
	}
	weights := make([]float64, len(outcomes))
	for i := range weights {
		weights[i] = 1 / float64(len(outcomes))
	}
	return New(outcomes, weights)
}

// UniformOn returns the distribution over domain that is uniform on the
// subset and zero elsewhere: weight 1/|subset| on subset members, 0 on the
// rest. Fails with ErrCodeEmptyDomain if subset is empty and
// ErrCodeOutOfRange if subset repeats an outcome or reaches outside the
// domain.
func UniformOn[O comparable](domain, subset []O) (*Dist[O], error) {
	const op = "dist.UniformOn"
	if len(subset) == 0 {
		return nil, newEmptyDomainError(op, "subset is empty")
	}
	member := make(map[O]bool, len(subset))
	for i, x := range subset {
		if member[x] {
			return nil, newOutOfRangeError(op, "subset outcome at index %d repeats", i)
		}
		member[x] = true
	}
	weights := make([]float64, len(domain))
	found := 0
	for i, x := range domain {
		if member[x] {
			weights[i] = 1 / float64(len(subset))
			found++
		}
	}
	if found != len(subset) {
		return nil, newOutOfRangeError(op, "subset contains outcomes outside the domain")
	}
	return New(domain, weights)
}

// Binary returns the two-outcome distribution with weight 1−p on a and
// weight p on b. Fails with ErrCodeOutOfRange if p is outside [0,1] or if
// a and b coincide.
func Binary[O comparable](p float64, a, b O) (*Dist[O], error) {
	const op = "dist.Binary"
	if p < 0 || p > 1 {
		return nil, newOutOfRangeError(op, "weight %v outside [0,1]", p)
	}
	return New([]O{a, b}, []float64{1 - p, p})
}

// Characterize recovers the Binary parameterization of a two-outcome
// distribution: it returns p, a, b such that Binary(p, a, b) reconstructs
// d, with a and b in domain order. This is the inverse of Binary and the
// named conversion other layers use to move between representations.
// Fails with ErrCodeOutOfRange if the domain does not have exactly two
// outcomes.
func Characterize[O any](d *Dist[O]) (p float64, a, b O, err error) {
	const op = "dist.Characterize"
	if d.Len() != 2 {
		var zero O
		return 0, zero, zero, newOutOfRangeError(op, "domain has %d outcomes, want 2", d.Len())
	}
	return d.weights[1], d.outcomes[0], d.outcomes[1], nil
}
