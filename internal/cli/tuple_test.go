package cli

import (
	"encoding/json"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTuple_TextGolden(t *testing.T) {
	buf, err := runCommand(t, "text", "tuple", catalogDir, "coin", "-n", "2")
	require.NoError(t, err)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "tuple_coin", buf.Bytes())
}

func TestTuple_EmptyVector(t *testing.T) {
	buf, err := runCommand(t, "json", "tuple", catalogDir, "coin", "-n", "0")
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))

	data, errM := json.Marshal(resp.Data)
	require.NoError(t, errM)
	var result TupleResult
	require.NoError(t, json.Unmarshal(data, &result))

	require.Len(t, result.Rows, 1)
	assert.Equal(t, "()", result.Rows[0].Outcome)
	assert.Equal(t, 1.0, result.Rows[0].Weight)
}

func TestTuple_DomainLimit(t *testing.T) {
	buf, err := runCommand(t, "text", "tuple", catalogDir, "quad", "-n", "10")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, buf.String(), "exceeds")
}

func TestTuple_NegativeLength(t *testing.T) {
	buf, err := runCommand(t, "text", "tuple", catalogDir, "coin", "-n", "-1")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, buf.String(), "OUT_OF_RANGE")
}
