package dist

import "math"

// Tolerance is the maximum allowed deviation of a weight vector's sum
// from 1. It applies uniformly to every factory in this package; there is
// no per-call override, so all distributions in a process share the same
// numeric contract.
const Tolerance = 1e-9

// Dist is a finite probability distribution over outcomes of type O.
//
// A Dist consists of an ordered outcome domain and a parallel weight
// vector. The ordering is fixed at construction and purely presentational;
// it makes iteration deterministic but carries no probabilistic meaning.
//
// Dist values are immutable. Combinators never modify their inputs; they
// construct new values through the same validated factories.
type Dist[O any] struct {
	outcomes []O
	weights  []float64
	eq       func(O, O) bool
}

// New constructs a distribution over comparable outcomes.
//
// Fails with ErrCodeEmptyDomain if outcomes is empty, ErrCodeOutOfRange if
// an outcome appears twice or the weight vector length does not match, and
// ErrCodeInvalidWeights if any weight is negative or the sum deviates from
// 1 beyond Tolerance.
func New[O comparable](outcomes []O, weights []float64) (*Dist[O], error) {
	return NewFunc(outcomes, weights, equalComparable[O])
}

// NewFunc constructs a distribution over outcomes compared by eq.
//
// This is the factory for outcome types that are not comparable in the Go
// sense, such as slice-valued outcomes; the vector layer builds tuple
// distributions through it with slices.Equal. eq must be an equivalence
// relation over the domain.
func NewFunc[O any](outcomes []O, weights []float64, eq func(O, O) bool) (*Dist[O], error) {
	const op = "dist.New"
	if eq == nil {
		return nil, newOutOfRangeError(op, "equality function is nil")
	}
	if len(outcomes) == 0 {
		return nil, newEmptyDomainError(op, "outcome domain is empty")
	}
	if len(outcomes) != len(weights) {
		return nil, newOutOfRangeError(op, "%d outcomes but %d weights", len(outcomes), len(weights))
	}
	for i := 1; i < len(outcomes); i++ {
		for j := 0; j < i; j++ {
			if eq(outcomes[i], outcomes[j]) {
				return nil, newOutOfRangeError(op, "outcome at index %d duplicates index %d", i, j)
			}
		}
	}
	total := 0.0
	for i, w := range weights {
		if w < 0 || math.IsNaN(w) {
			return nil, newInvalidWeightsError(op, "weight %v at index %d is not non-negative", w, i)
		}
		total += w
	}
	if math.Abs(total-1) > Tolerance {
		return nil, newInvalidWeightsError(op, "weights sum to %v, want 1 within %v", total, Tolerance)
	}
	d := &Dist[O]{
		outcomes: make([]O, len(outcomes)),
		weights:  make([]float64, len(weights)),
		eq:       eq,
	}
	copy(d.outcomes, outcomes)
	copy(d.weights, weights)
	return d, nil
}

// Len returns the size of the outcome domain.
func (d *Dist[O]) Len() int { return len(d.outcomes) }

// Outcomes returns a copy of the outcome domain in construction order.
func (d *Dist[O]) Outcomes() []O {
	out := make([]O, len(d.outcomes))
	copy(out, d.outcomes)
	return out
}

// Weights returns a copy of the weight vector, parallel to Outcomes.
func (d *Dist[O]) Weights() []float64 {
	out := make([]float64, len(d.weights))
	copy(out, d.weights)
	return out
}

// Value returns the weight of x. Outcomes outside the domain have weight 0;
// the distribution extends to the zero function beyond its domain, which is
// what lets consumers probe arbitrary outcomes. The result is always in
// [0,1].
func (d *Dist[O]) Value(x O) float64 {
	i := d.index(x)
	if i < 0 {
		return 0
	}
	return d.weights[i]
}

// Support returns the outcomes with nonzero weight, in domain order.
// It is never empty: the sum-to-one invariant forces at least one
// positive weight.
func (d *Dist[O]) Support() []O {
	var out []O
	for i, w := range d.weights {
		if w != 0 {
			out = append(out, d.outcomes[i])
		}
	}
	return out
}

// SupportSize returns the number of outcomes with nonzero weight.
func (d *Dist[O]) SupportSize() int {
	n := 0
	for _, w := range d.weights {
		if w != 0 {
			n++
		}
	}
	return n
}

// DominatedBy reports whether d is dominated by p: every outcome with zero
// weight under p also has zero weight under d. Higher layers use this as a
// precondition check before renormalizing by a complement weight; it is
// never enforced structurally.
func (d *Dist[O]) DominatedBy(p *Dist[O]) bool {
	for i, w := range d.weights {
		if w != 0 && p.Value(d.outcomes[i]) == 0 {
			return false
		}
	}
	return true
}

// Equal reports whether d and other have the same outcome domain (as sets,
// under d's equality) and assign each outcome the same weight within
// Tolerance.
func (d *Dist[O]) Equal(other *Dist[O]) bool {
	if other == nil || len(d.outcomes) != len(other.outcomes) {
		return false
	}
	for i, x := range d.outcomes {
		j := other.index(x)
		if j < 0 {
			return false
		}
		if math.Abs(d.weights[i]-other.weights[j]) > Tolerance {
			return false
		}
	}
	return true
}

// index returns the domain position of x, or -1 if absent.
func (d *Dist[O]) index(x O) int {
	for i, o := range d.outcomes {
		if d.eq(o, x) {
			return i
		}
	}
	return -1
}

func equalComparable[O comparable](a, b O) bool { return a == b }
