package dist

// Pair is an ordered pair of outcomes. A Dist over Pair[A, B] is a joint
// (bivariate) distribution; its marginals are recovered by pushing forward
// along the projections.
type Pair[A, B any] struct {
	Left  A
	Right B
}

func pairEqual[A, B any](eqA func(A, A) bool, eqB func(B, B) bool) func(Pair[A, B], Pair[A, B]) bool {
	return func(x, y Pair[A, B]) bool {
		return eqA(x.Left, y.Left) && eqB(x.Right, y.Right)
	}
}

// Product builds the joint distribution of p and the kernel q:
//
//	weight(a, b) = p(a) · q(a)(b)
//
// The kernel is evaluated on every domain outcome of p, so it must be
// total on the domain. When q is constant, the left marginal of the
// product is p and the right marginal is the constant value of q.
//
// Fails with ErrCodeOutOfRange if the kernel returns nil.
func Product[A, B any](p *Dist[A], q func(A) *Dist[B]) (*Dist[Pair[A, B]], error) {
	const op = "dist.Product"
	parts := make([]*Dist[B], len(p.outcomes))
	for i, a := range p.outcomes {
		parts[i] = q(a)
		if parts[i] == nil {
			return nil, newOutOfRangeError(op, "kernel returned nil for outcome at index %d", i)
		}
	}
	eq := pairEqual(p.eq, parts[0].eq)

	// Distinct left components keep the pairs distinct, so no
	// deduplication across kernel domains is needed.
	var outcomes []Pair[A, B]
	var weights []float64
	for i, a := range p.outcomes {
		for k, b := range parts[i].outcomes {
			outcomes = append(outcomes, Pair[A, B]{Left: a, Right: b})
			weights = append(weights, p.weights[i]*parts[i].weights[k])
		}
	}
	return NewFunc(outcomes, weights, eq)
}

// MarginalLeft sums a joint distribution over its right component:
//
//	weight(a) = Σ_b j(a, b)
//
// If the left marginal of a is zero, every joint weight (a, b) is zero:
// a sum of non-negative terms is zero only when each term is.
func MarginalLeft[A comparable, B any](j *Dist[Pair[A, B]]) (*Dist[A], error) {
	return Map(j, func(p Pair[A, B]) A { return p.Left })
}

// MarginalRight sums a joint distribution over its left component.
func MarginalRight[A any, B comparable](j *Dist[Pair[A, B]]) (*Dist[B], error) {
	return Map(j, func(p Pair[A, B]) B { return p.Right })
}

// MarginalLeftFunc is MarginalLeft for left components compared by eq.
func MarginalLeftFunc[A, B any](j *Dist[Pair[A, B]], eq func(A, A) bool) (*Dist[A], error) {
	return MapFunc(j, func(p Pair[A, B]) A { return p.Left }, eq)
}

// MarginalRightFunc is MarginalRight for right components compared by eq.
func MarginalRightFunc[A, B any](j *Dist[Pair[A, B]], eq func(B, B) bool) (*Dist[B], error) {
	return MapFunc(j, func(p Pair[A, B]) B { return p.Right }, eq)
}
