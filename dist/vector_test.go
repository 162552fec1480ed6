package dist

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustNewVec(t *testing.T, outcomes [][]string, weights []float64) *Dist[[]string] {
	t.Helper()
	d, err := NewFunc(outcomes, weights, slices.Equal[[]string])
	require.NoError(t, err)
	return d
}

func TestTuple_Square(t *testing.T) {
	p, err := Binary(0.5, "heads", "tails")
	require.NoError(t, err)

	sq, err := Tuple(p, 2)
	require.NoError(t, err)

	require.Equal(t, 4, sq.Len())
	for _, v := range sq.Outcomes() {
		assert.InDelta(t, 0.25, sq.Value(v), Tolerance, "vector %v", v)
	}
}

func TestTuple_WeightsAreProducts(t *testing.T) {
	p, err := Binary(0.25, "a", "b")
	require.NoError(t, err)

	cube, err := Tuple(p, 3)
	require.NoError(t, err)

	require.Equal(t, 8, cube.Len())
	assert.InDelta(t, 0.75*0.75*0.75, cube.Value([]string{"a", "a", "a"}), Tolerance)
	assert.InDelta(t, 0.75*0.25*0.75, cube.Value([]string{"a", "b", "a"}), Tolerance)
	assert.InDelta(t, 0.25*0.25*0.25, cube.Value([]string{"b", "b", "b"}), Tolerance)
}

func TestTuple_Empty(t *testing.T) {
	p, err := Binary(0.5, "heads", "tails")
	require.NoError(t, err)

	d, err := Tuple(p, 0)
	require.NoError(t, err)

	require.Equal(t, 1, d.Len())
	assert.Equal(t, 1.0, d.Value([]string{}))
	assert.Equal(t, 1.0, d.Value(nil), "nil and empty vectors are the same outcome")
}

func TestTuple_NegativeLength(t *testing.T) {
	p, err := Binary(0.5, "heads", "tails")
	require.NoError(t, err)

	_, err = Tuple(p, -1)
	require.Error(t, err)
	assert.True(t, IsOutOfRange(err))
}

// TestTuple_Decomposition checks headOf(tuple(P,n+1)) = P and
// tailOf(tuple(P,n+1)) = tuple(P,n).
func TestTuple_Decomposition(t *testing.T) {
	p, err := Binary(0.25, "a", "b")
	require.NoError(t, err)

	cube, err := Tuple(p, 3)
	require.NoError(t, err)

	head, err := HeadOf(cube)
	require.NoError(t, err)
	assert.True(t, head.Equal(p))

	tail, err := TailOf(cube)
	require.NoError(t, err)
	square, err := Tuple(p, 2)
	require.NoError(t, err)
	assert.True(t, tail.Equal(square))
}

func TestToBivariate_RoundTrip(t *testing.T) {
	d := mustNewVec(t, [][]string{
		{"a", "a"},
		{"a", "b"},
		{"b", "a"},
		{"b", "b"},
	}, []float64{0.5, 0.25, 0.125, 0.125})

	j, err := ToBivariate(d)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, j.Value(Pair[string, []string]{"a", []string{"a"}}), Tolerance)
	assert.InDelta(t, 0.25, j.Value(Pair[string, []string]{"a", []string{"b"}}), Tolerance)

	back, err := FromBivariate(j)
	require.NoError(t, err)
	assert.True(t, back.Equal(d))
}

func TestToBivariateLast_RoundTrip(t *testing.T) {
	d := mustNewVec(t, [][]string{
		{"a", "a"},
		{"a", "b"},
		{"b", "a"},
		{"b", "b"},
	}, []float64{0.5, 0.25, 0.125, 0.125})

	j, err := ToBivariateLast(d)
	require.NoError(t, err)
	assert.InDelta(t, 0.25, j.Value(Pair[[]string, string]{[]string{"a"}, "b"}), Tolerance)

	back, err := FromBivariateLast(j)
	require.NoError(t, err)
	assert.True(t, back.Equal(d))
}

func TestToBivariate_Errors(t *testing.T) {
	mixed := mustNewVec(t, [][]string{
		{"a"},
		{"a", "b"},
	}, []float64{0.5, 0.5})

	_, err := ToBivariate(mixed)
	require.Error(t, err)
	assert.True(t, IsOutOfRange(err))

	empty := mustNewVec(t, [][]string{{}}, []float64{1})
	_, err = ToBivariate(empty)
	require.Error(t, err)
	assert.True(t, IsOutOfRange(err))

	_, err = ToBivariateLast(empty)
	require.Error(t, err)
	assert.True(t, IsOutOfRange(err))
}

// TestTuple_SmallRoundTrips exercises the split/join bijections
// exhaustively for small vector lengths.
func TestTuple_SmallRoundTrips(t *testing.T) {
	p, err := Binary(0.25, "x", "y")
	require.NoError(t, err)

	for n := 1; n <= 4; n++ {
		d, err := Tuple(p, n)
		require.NoError(t, err)

		headTail, err := ToBivariate(d)
		require.NoError(t, err)
		back, err := FromBivariate(headTail)
		require.NoError(t, err)
		assert.True(t, back.Equal(d), "head/tail round trip at n=%d", n)

		initLast, err := ToBivariateLast(d)
		require.NoError(t, err)
		back, err = FromBivariateLast(initLast)
		require.NoError(t, err)
		assert.True(t, back.Equal(d), "init/last round trip at n=%d", n)
	}
}

func TestTuple_Normalization(t *testing.T) {
	p, err := New([]string{"a", "b", "c"}, []float64{0.5, 0.25, 0.25})
	require.NoError(t, err)

	d, err := Tuple(p, 4)
	require.NoError(t, err)

	total := 0.0
	for _, w := range d.Weights() {
		assert.GreaterOrEqual(t, w, 0.0)
		total += w
	}
	assert.InDelta(t, 1.0, total, Tolerance)
	assert.Equal(t, 81, d.Len())
}
