package dist

import "slices"

// This file handles distributions over fixed-length outcome vectors
// ([]A with every outcome the same length). The head/tail and init/last
// splits are lossless re-indexings, not probabilistic operations: they
// relabel each vector bijectively and move no mass between distinct
// outcomes.

// vectorLength returns the common length of all outcome vectors, or -1 if
// lengths disagree.
func vectorLength[A any](d *Dist[[]A]) int {
	n := len(d.outcomes[0])
	for _, v := range d.outcomes[1:] {
		if len(v) != n {
			return -1
		}
	}
	return n
}

// ToBivariate splits each length-(n+1) vector outcome into its head and
// tail, producing a joint distribution over Pair[A, []A]. It is inverted
// exactly by FromBivariate. Fails with ErrCodeOutOfRange unless every
// outcome is a non-empty vector of the same length.
func ToBivariate[A comparable](d *Dist[[]A]) (*Dist[Pair[A, []A]], error) {
	const op = "dist.ToBivariate"
	n := vectorLength(d)
	if n < 0 {
		return nil, newOutOfRangeError(op, "outcome vectors have mixed lengths")
	}
	if n == 0 {
		return nil, newOutOfRangeError(op, "outcome vectors are empty, no head to split off")
	}
	eq := pairEqual(equalComparable[A], slices.Equal[[]A])
	return MapFunc(d, func(v []A) Pair[A, []A] {
		return Pair[A, []A]{Left: v[0], Right: slices.Clone(v[1:])}
	}, eq)
}

// FromBivariate rejoins a head/tail joint distribution into a distribution
// over the concatenated vectors. It is the inverse of ToBivariate. Fails
// with ErrCodeOutOfRange unless every tail has the same length.
func FromBivariate[A comparable](j *Dist[Pair[A, []A]]) (*Dist[[]A], error) {
	const op = "dist.FromBivariate"
	n := len(j.outcomes[0].Right)
	for _, p := range j.outcomes[1:] {
		if len(p.Right) != n {
			return nil, newOutOfRangeError(op, "tail vectors have mixed lengths")
		}
	}
	return MapFunc(j, func(p Pair[A, []A]) []A {
		v := make([]A, 0, len(p.Right)+1)
		v = append(v, p.Left)
		return append(v, p.Right...)
	}, slices.Equal[[]A])
}

// ToBivariateLast splits each vector into its init and last element,
// the mirror image of ToBivariate. Inverted by FromBivariateLast.
func ToBivariateLast[A comparable](d *Dist[[]A]) (*Dist[Pair[[]A, A]], error) {
	const op = "dist.ToBivariateLast"
	n := vectorLength(d)
	if n < 0 {
		return nil, newOutOfRangeError(op, "outcome vectors have mixed lengths")
	}
	if n == 0 {
		return nil, newOutOfRangeError(op, "outcome vectors are empty, no last element to split off")
	}
	eq := pairEqual(slices.Equal[[]A], equalComparable[A])
	return MapFunc(d, func(v []A) Pair[[]A, A] {
		return Pair[[]A, A]{Left: slices.Clone(v[:len(v)-1]), Right: v[len(v)-1]}
	}, eq)
}

// FromBivariateLast rejoins an init/last joint distribution into a
// distribution over the concatenated vectors, inverting ToBivariateLast.
func FromBivariateLast[A comparable](j *Dist[Pair[[]A, A]]) (*Dist[[]A], error) {
	const op = "dist.FromBivariateLast"
	n := len(j.outcomes[0].Left)
	for _, p := range j.outcomes[1:] {
		if len(p.Left) != n {
			return nil, newOutOfRangeError(op, "init vectors have mixed lengths")
		}
	}
	return MapFunc(j, func(p Pair[[]A, A]) []A {
		v := make([]A, 0, len(p.Left)+1)
		v = append(v, p.Left...)
		return append(v, p.Right)
	}, slices.Equal[[]A])
}

// HeadOf returns the distribution of the first coordinate of a vector
// distribution: the left marginal of its head/tail split.
func HeadOf[A comparable](d *Dist[[]A]) (*Dist[A], error) {
	j, err := ToBivariate(d)
	if err != nil {
		return nil, err
	}
	return MarginalLeft(j)
}

// TailOf returns the distribution of the tail of a vector distribution:
// the right marginal of its head/tail split.
func TailOf[A comparable](d *Dist[[]A]) (*Dist[[]A], error) {
	j, err := ToBivariate(d)
	if err != nil {
		return nil, err
	}
	return MarginalRightFunc(j, slices.Equal[[]A])
}

// Tuple builds the independent n-fold product of p: the distribution over
// length-n vectors with
//
//	weight(v) = Π_{i<n} p(v_i)
//
// Tuple(p, 0) is the point mass on the empty vector. For n ≥ 1 the
// construction proceeds by the recursive law the decomposition operations
// expose: Tuple(p, n+1) is Product of p (head) with Tuple(p, n) (tail),
// rejoined through FromBivariate, so HeadOf(Tuple(p, n+1)) = p and
// TailOf(Tuple(p, n+1)) = Tuple(p, n) by construction.
//
// Fails with ErrCodeOutOfRange if n is negative. The domain has
// Len(p)^n outcomes; callers bound n accordingly.
func Tuple[A comparable](p *Dist[A], n int) (*Dist[[]A], error) {
	const op = "dist.Tuple"
	if n < 0 {
		return nil, newOutOfRangeError(op, "tuple length %d is negative", n)
	}
	cur := PointMassFunc([]A{}, slices.Equal[[]A])
	for i := 0; i < n; i++ {
		j, err := Product(p, func(A) *Dist[[]A] { return cur })
		if err != nil {
			return nil, err
		}
		cur, err = FromBivariate(j)
		if err != nil {
			return nil, err
		}
	}
	return cur, nil
}
