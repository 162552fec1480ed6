package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMix_JSON(t *testing.T) {
	buf, err := runCommand(t, "json", "mix", catalogDir, "pair", "skew", "-p", "0.5")
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)

	data, errM := json.Marshal(resp.Data)
	require.NoError(t, errM)
	var result MixResult
	require.NoError(t, json.Unmarshal(data, &result))

	// Union of the two domains, left first.
	require.Len(t, result.Rows, 4)
	byOutcome := map[string]float64{}
	for _, r := range result.Rows {
		byOutcome[r.Outcome] = r.Weight
	}
	assert.InDelta(t, 0.25, byOutcome["a1"], 1e-9)
	assert.InDelta(t, 0.25, byOutcome["a2"], 1e-9)
	assert.InDelta(t, 0.4, byOutcome["b1"], 1e-9)
	assert.InDelta(t, 0.1, byOutcome["b2"], 1e-9)
}

func TestMix_DefaultWeight(t *testing.T) {
	buf, err := runCommand(t, "text", "mix", catalogDir, "coin", "coin")
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "mix(coin, coin, 0.5)")
}

func TestMix_WeightOutOfRange(t *testing.T) {
	buf, err := runCommand(t, "text", "mix", catalogDir, "coin", "skew", "-p", "1.5")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, buf.String(), "OUT_OF_RANGE")
}
