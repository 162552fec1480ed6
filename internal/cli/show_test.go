package cli

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var catalogDir = filepath.Join("testdata", "catalog")

func runCommand(t *testing.T, format string, args ...string) (*bytes.Buffer, error) {
	t.Helper()
	buf := &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append(args, "--format", format))
	err := cmd.Execute()
	return buf, err
}

func TestShow_TextGolden(t *testing.T) {
	buf, err := runCommand(t, "text", "show", catalogDir, "coin")
	require.NoError(t, err)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "show_coin", buf.Bytes())
}

func TestShow_JSON(t *testing.T) {
	buf, err := runCommand(t, "json", "show", catalogDir, "skew")
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.NotEmpty(t, resp.RunID, "JSON responses carry a run id")

	data, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	var result ShowResult
	require.NoError(t, json.Unmarshal(data, &result))

	assert.Equal(t, "skew", result.Name)
	assert.Equal(t, 2, result.Outcomes)
	assert.Equal(t, 2, result.SupportSize)
	require.Len(t, result.Rows, 2)
	assert.Equal(t, "b1", result.Rows[0].Outcome)
	assert.InDelta(t, 0.8, result.Rows[0].Weight, 1e-9)
}

func TestShow_UnknownName(t *testing.T) {
	buf, err := runCommand(t, "text", "show", catalogDir, "nope")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, buf.String(), "not found")
}

func TestShow_MissingCatalog(t *testing.T) {
	_, err := runCommand(t, "text", "show", filepath.Join("testdata", "nope"), "coin")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
