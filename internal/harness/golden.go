package harness

import (
	"encoding/json"
	"strconv"
	"testing"

	"github.com/sebdah/goldie/v2"
)

// Snapshot captures the full pipeline output of a scenario execution.
// Weights render as their shortest round-tripping decimal so snapshots
// stay byte-stable across platforms.
type Snapshot struct {
	ScenarioName string         `json:"scenario_name"`
	Steps        []snapshotStep `json:"steps"`
}

type snapshotStep struct {
	Op   string        `json:"op"`
	Save string        `json:"save"`
	Rows []snapshotRow `json:"rows"`
}

type snapshotRow struct {
	Label  string `json:"label"`
	Weight string `json:"weight"`
}

// NewSnapshot converts a scenario result into its golden form.
func NewSnapshot(scenarioName string, result *Result) *Snapshot {
	steps := make([]snapshotStep, len(result.Steps))
	for i, st := range result.Steps {
		rows := make([]snapshotRow, len(st.Rows))
		for j, r := range st.Rows {
			rows[j] = snapshotRow{
				Label:  r.Label,
				Weight: strconv.FormatFloat(r.Weight, 'g', -1, 64),
			}
		}
		steps[i] = snapshotStep{Op: st.Op, Save: st.Save, Rows: rows}
	}
	return &Snapshot{ScenarioName: scenarioName, Steps: steps}
}

// RunWithGolden executes a scenario and compares its pipeline output
// against a golden file in testdata/golden/{scenario.Name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
//
// Returns an error if the scenario itself fails to run or an
// assertion fails; golden mismatches fail the test via goldie.
func RunWithGolden(t *testing.T, scenario *Scenario) error {
	t.Helper()

	result, err := Run(scenario)
	if err != nil {
		return err
	}
	if !result.Pass {
		return &AssertionError{
			Type:     "scenario",
			Expected: "all assertions pass",
			Actual:   strconv.Itoa(len(result.Errors)) + " assertion failure(s): " + result.Errors[0],
		}
	}

	data, err := json.MarshalIndent(NewSnapshot(scenario.Name, result), "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, scenario.Name, data)

	return nil
}
