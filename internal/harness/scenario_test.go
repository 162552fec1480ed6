package harness

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scenarioPath(name string) string {
	return filepath.Join("testdata", "scenarios", name)
}

// writeScenario drops scenario YAML next to a catalog dir so path
// resolution works, and returns the scenario file path.
func writeScenario(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "catalog"), 0o755))
	cue := `dist: coin: {
	outcomes: ["heads", "tails"]
	weights: [0.5, 0.5]
}
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "catalog", "dists.cue"), []byte(cue), 0o644))
	path := filepath.Join(dir, "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadScenario_Valid(t *testing.T) {
	s, err := LoadScenario(scenarioPath("restrict_roundtrip.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "restrict_roundtrip", s.Name)
	require.Len(t, s.Steps, 1)
	assert.Equal(t, OpRestrict, s.Steps[0].Op)
	assert.Equal(t, "c2", s.Steps[0].Outcome)
	assert.Len(t, s.Assertions, 4)
	assert.DirExists(t, s.Catalog, "catalog resolves relative to the scenario file")
}

func TestLoadScenario_UnknownField(t *testing.T) {
	path := writeScenario(t, `name: typo
description: catches misspelled keys
catalog: catalog
steps:
  - op: restrict
    dist: coin
    outcome: heads
    save: r
assertion:
  - type: total
    dist: r
`)
	_, err := LoadScenario(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "assertion")
}

func TestLoadScenario_MissingFields(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "no steps",
			body: "name: x\ndescription: d\ncatalog: catalog\nassertions:\n  - type: total\n    dist: coin\n",
			want: "steps list is required",
		},
		{
			name: "no assertions",
			body: "name: x\ndescription: d\ncatalog: catalog\nsteps:\n  - op: tuple\n    dist: coin\n    n: 2\n    save: sq\n",
			want: "assertions list is required",
		},
		{
			name: "mix without weight",
			body: "name: x\ndescription: d\ncatalog: catalog\nsteps:\n  - op: mix\n    dist: coin\n    with: coin\n    save: m\nassertions:\n  - type: total\n    dist: m\n",
			want: "p is required for mix",
		},
		{
			name: "step without save",
			body: "name: x\ndescription: d\ncatalog: catalog\nsteps:\n  - op: tuple\n    dist: coin\n    n: 2\nassertions:\n  - type: total\n    dist: coin\n",
			want: "save is required",
		},
		{
			name: "unknown op",
			body: "name: x\ndescription: d\ncatalog: catalog\nsteps:\n  - op: convolve\n    dist: coin\n    save: c\nassertions:\n  - type: total\n    dist: c\n",
			want: "unknown op",
		},
		{
			name: "unknown assertion type",
			body: "name: x\ndescription: d\ncatalog: catalog\nsteps:\n  - op: tuple\n    dist: coin\n    n: 2\n    save: sq\nassertions:\n  - type: entropy\n    dist: sq\n",
			want: "unknown assertion type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeScenario(t, tt.body)
			_, err := LoadScenario(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadScenario_MissingCatalog(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scenario.yaml")
	body := "name: x\ndescription: d\ncatalog: nope\nsteps:\n  - op: tuple\n    dist: coin\n    n: 2\n    save: sq\nassertions:\n  - type: total\n    dist: sq\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	_, err := LoadScenario(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "catalog directory not found")
}
