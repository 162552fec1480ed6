package specfile

import (
	"testing"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func compileEntry(t *testing.T, src, name string) (cue.Value, error) {
	t.Helper()
	ctx := cuecontext.New()
	v := ctx.CompileString(src)
	require.NoError(t, v.Err())
	return v.LookupPath(cue.ParsePath("dist." + name)), nil
}

func TestCompile_Valid(t *testing.T) {
	v, _ := compileEntry(t, `dist: coin: {
		outcomes: ["heads", "tails"]
		weights: [0.5, 0.5]
	}`, "coin")

	d, err := Compile("coin", v)
	require.NoError(t, err)

	assert.Equal(t, 2, d.Len())
	assert.Equal(t, 0.5, d.Value("heads"))
	assert.Equal(t, 0.5, d.Value("tails"))
}

func TestCompile_MissingFields(t *testing.T) {
	tests := []struct {
		name  string
		src   string
		field string
	}{
		{
			name:  "missing outcomes",
			src:   `dist: d: {weights: [1.0]}`,
			field: "outcomes",
		},
		{
			name:  "missing weights",
			src:   `dist: d: {outcomes: ["a"]}`,
			field: "weights",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, _ := compileEntry(t, tt.src, "d")
			_, err := Compile("d", v)
			require.Error(t, err)

			cErr, ok := err.(*CompileError)
			require.True(t, ok, "expected CompileError, got %T", err)
			assert.Equal(t, tt.field, cErr.Field)
			assert.Equal(t, "d", cErr.Entry)
		})
	}
}

func TestCompile_InvalidWeights(t *testing.T) {
	v, _ := compileEntry(t, `dist: d: {
		outcomes: ["a", "b"]
		weights: [0.25, 0.25]
	}`, "d")

	_, err := Compile("d", v)
	require.Error(t, err)

	cErr, ok := err.(*CompileError)
	require.True(t, ok)
	assert.Contains(t, cErr.Message, "INVALID_WEIGHTS")
}

func TestCompile_NormalizesLabels(t *testing.T) {
	// "é" as a precomposed rune and as "e" + combining acute are the
	// same outcome after NFC normalization, so this entry duplicates it.
	v, _ := compileEntry(t, `dist: d: {
		outcomes: ["é", "é"]
		weights: [0.5, 0.5]
	}`, "d")

	_, err := Compile("d", v)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OUT_OF_RANGE")
}

func TestCompile_NonStringOutcome(t *testing.T) {
	v, _ := compileEntry(t, `dist: d: {
		outcomes: [1, 2]
		weights: [0.5, 0.5]
	}`, "d")

	_, err := Compile("d", v)
	require.Error(t, err)

	cErr, ok := err.(*CompileError)
	require.True(t, ok)
	assert.Equal(t, "outcomes", cErr.Field)
}
