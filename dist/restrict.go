package dist

// Restrict removes x from the support of d and renormalizes:
//
//	weight(y) = 0            if y = x
//	weight(y) = d(y)/(1−d(x)) otherwise
//
// The outcome domain is unchanged; only the mass moves. Fails with
// ErrCodeDivisionByZero when x carries all the mass (the complement
// 1−d(x) is exactly zero).
//
// If d(x) = 0 the result equals d; when d(x) ≠ 0 the support shrinks by
// exactly one outcome.
func Restrict[O any](d *Dist[O], x O) (*Dist[O], error) {
	const op = "dist.Restrict"
	idx := d.index(x)
	comp := 1.0
	if idx >= 0 {
		comp = 1 - d.weights[idx]
	}
	if comp == 0 {
		return nil, newDivisionByZeroError(op, "outcome carries weight 1, complement is zero")
	}
	weights := make([]float64, len(d.weights))
	for i, w := range d.weights {
		weights[i] = w / comp
	}
	if idx >= 0 {
		weights[idx] = 0
	}
	return NewFunc(d.outcomes, weights, d.eq)
}

// DeleteIndex removes outcome j from an integer-indexed distribution and
// closes the gap: the domain must be exactly {0, …, n}, and the result is
// the distribution over {0, …, n−1} with
//
//	weight(i) = d(i)/(1−d(j))   for i < j
//	weight(i) = d(i+1)/(1−d(j)) for i ≥ j
//
// i.e. Restrict composed with the re-indexing that shifts every index
// above j down by one. Fails with ErrCodeOutOfRange if the domain is not
// an initial segment of the naturals or j is outside it, and with
// ErrCodeDivisionByZero when d(j) = 1.
func DeleteIndex(d *Dist[int], j int) (*Dist[int], error) {
	const op = "dist.DeleteIndex"
	n := d.Len()
	for i := 0; i < n; i++ {
		if d.index(i) < 0 {
			return nil, newOutOfRangeError(op, "domain is not {0..%d}: missing index %d", n-1, i)
		}
	}
	if j < 0 || j >= n {
		return nil, newOutOfRangeError(op, "index %d outside domain {0..%d}", j, n-1)
	}
	comp := 1 - d.Value(j)
	if comp == 0 {
		return nil, newDivisionByZeroError(op, "index %d carries weight 1, complement is zero", j)
	}
	outcomes := make([]int, n-1)
	weights := make([]float64, n-1)
	for i := 0; i < n-1; i++ {
		outcomes[i] = i
		if i < j {
			weights[i] = d.Value(i) / comp
		} else {
			weights[i] = d.Value(i+1) / comp
		}
	}
	return New(outcomes, weights)
}

// DeleteLast is DeleteIndex at the maximal index.
func DeleteLast(d *Dist[int]) (*Dist[int], error) {
	return DeleteIndex(d, d.Len()-1)
}

// Permute pulls d back along a permutation of its domain:
//
//	weight(x) = d(σ(x))
//
// σ must map the domain bijectively onto itself; otherwise Permute fails
// with ErrCodeOutOfRange. The action satisfies the group laws:
// Permute(d, id) = d and Permute(Permute(d, σ), τ) = Permute(d, τ∘σ).
func Permute[O any](d *Dist[O], sigma func(O) O) (*Dist[O], error) {
	const op = "dist.Permute"
	images := make([]O, len(d.outcomes))
	for i, x := range d.outcomes {
		y := sigma(x)
		if d.index(y) < 0 {
			return nil, newOutOfRangeError(op, "permutation maps outcome at index %d outside the domain", i)
		}
		for k := 0; k < i; k++ {
			if d.eq(images[k], y) {
				return nil, newOutOfRangeError(op, "permutation is not injective: indices %d and %d collide", k, i)
			}
		}
		images[i] = y
	}
	weights := make([]float64, len(d.outcomes))
	for i := range d.outcomes {
		weights[i] = d.Value(images[i])
	}
	return NewFunc(d.outcomes, weights, d.eq)
}
