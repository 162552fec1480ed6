package dist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCardinalityBounds(t *testing.T) {
	lower, upper, err := CardinalityBounds(0.1, 0.4, 0.5, 0.9)
	require.NoError(t, err)

	assert.InDelta(t, 1.25, lower, Tolerance)
	assert.InDelta(t, 9.0, upper, Tolerance)
}

func TestCardinalityBounds_Errors(t *testing.T) {
	_, _, err := CardinalityBounds(0, 0.4, 0.5, 0.9)
	require.Error(t, err)
	assert.True(t, IsOutOfRange(err))

	_, _, err = CardinalityBounds(0.1, -0.4, 0.5, 0.9)
	require.Error(t, err)
	assert.True(t, IsOutOfRange(err))
}

// TestCardinalityBounds_AgainstTuple derives the bounds from an actual
// tuple distribution and checks the true set size lands inside them.
func TestCardinalityBounds_AgainstTuple(t *testing.T) {
	p, err := Binary(0.25, "a", "b")
	require.NoError(t, err)

	cube, err := Tuple(p, 3)
	require.NoError(t, err)

	// S: vectors with exactly one "b". Each has weight 0.75^2 * 0.25.
	var sum float64
	size := 0
	for _, v := range cube.Outcomes() {
		ones := 0
		for _, x := range v {
			if x == "b" {
				ones++
			}
		}
		if ones == 1 {
			sum += cube.Value(v)
			size++
		}
	}
	require.Equal(t, 3, size)

	per := 0.75 * 0.75 * 0.25
	lower, upper, err := CardinalityBounds(per, per, sum, sum)
	require.NoError(t, err)

	assert.LessOrEqual(t, lower, float64(size)+Tolerance)
	assert.GreaterOrEqual(t, upper, float64(size)-Tolerance)
	assert.InDelta(t, float64(size), lower, 1e-6)
	assert.InDelta(t, float64(size), upper, 1e-6)
}
