package dist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Valid(t *testing.T) {
	d, err := New([]string{"heads", "tails"}, []float64{0.5, 0.5})
	require.NoError(t, err)

	assert.Equal(t, 2, d.Len())
	assert.Equal(t, 0.5, d.Value("heads"))
	assert.Equal(t, 0.5, d.Value("tails"))
}

func TestNew_InvalidInputs(t *testing.T) {
	tests := []struct {
		name     string
		outcomes []string
		weights  []float64
		check    func(error) bool
	}{
		{
			name:     "empty domain",
			outcomes: nil,
			weights:  nil,
			check:    IsEmptyDomain,
		},
		{
			name:     "length mismatch",
			outcomes: []string{"a", "b"},
			weights:  []float64{1},
			check:    IsOutOfRange,
		},
		{
			name:     "duplicate outcome",
			outcomes: []string{"a", "a"},
			weights:  []float64{0.5, 0.5},
			check:    IsOutOfRange,
		},
		{
			name:     "negative weight",
			outcomes: []string{"a", "b"},
			weights:  []float64{1.5, -0.5},
			check:    IsInvalidWeights,
		},
		{
			name:     "sum below one",
			outcomes: []string{"a", "b"},
			weights:  []float64{0.4, 0.4},
			check:    IsInvalidWeights,
		},
		{
			name:     "sum above one",
			outcomes: []string{"a", "b"},
			weights:  []float64{0.7, 0.7},
			check:    IsInvalidWeights,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.outcomes, tt.weights)
			require.Error(t, err)
			assert.True(t, tt.check(err), "unexpected error: %v", err)
		})
	}
}

func TestNew_SumWithinTolerance(t *testing.T) {
	// A deviation below Tolerance is accepted.
	d, err := New([]string{"a", "b"}, []float64{0.5, 0.5 + 1e-12})
	require.NoError(t, err)
	assert.Equal(t, 2, d.Len())
}

func TestNew_CopiesInputs(t *testing.T) {
	outcomes := []string{"a", "b"}
	weights := []float64{0.5, 0.5}
	d, err := New(outcomes, weights)
	require.NoError(t, err)

	// Mutating the caller's slices must not affect the distribution.
	outcomes[0] = "mutated"
	weights[0] = 99

	assert.Equal(t, 0.5, d.Value("a"))
	assert.Equal(t, []string{"a", "b"}, d.Outcomes())
}

func TestValue_UnknownOutcomeIsZero(t *testing.T) {
	d, err := New([]string{"a", "b"}, []float64{0.5, 0.5})
	require.NoError(t, err)

	assert.Equal(t, 0.0, d.Value("missing"))
}

func TestSupport_SkipsZeroWeights(t *testing.T) {
	d, err := New([]string{"a", "b", "c"}, []float64{0.5, 0, 0.5})
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "c"}, d.Support())
	assert.Equal(t, 2, d.SupportSize())
}

func TestSupport_NeverEmpty(t *testing.T) {
	d := PointMass("only")
	assert.Equal(t, []string{"only"}, d.Support())
}

func TestDominatedBy(t *testing.T) {
	p, err := New([]string{"a", "b", "c"}, []float64{0.5, 0.5, 0})
	require.NoError(t, err)
	q, err := New([]string{"a", "b", "c"}, []float64{1, 0, 0})
	require.NoError(t, err)

	assert.True(t, q.DominatedBy(p), "q's support is inside p's")
	assert.False(t, p.DominatedBy(q), "p has mass where q vanishes")

	// Every distribution dominates itself.
	assert.True(t, p.DominatedBy(p))
}

func TestEqual(t *testing.T) {
	p, err := New([]string{"a", "b"}, []float64{0.25, 0.75})
	require.NoError(t, err)

	// Same weights in a different domain order.
	q, err := New([]string{"b", "a"}, []float64{0.75, 0.25})
	require.NoError(t, err)
	assert.True(t, p.Equal(q))

	r, err := New([]string{"a", "b"}, []float64{0.5, 0.5})
	require.NoError(t, err)
	assert.False(t, p.Equal(r))

	s, err := New([]string{"a", "c"}, []float64{0.25, 0.75})
	require.NoError(t, err)
	assert.False(t, p.Equal(s))

	assert.False(t, p.Equal(nil))
}
