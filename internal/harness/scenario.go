package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Scenario defines one distribution pipeline test.
// Scenarios load named distributions from a CUE catalog, run a
// sequence of combinator steps and assert on the results.
type Scenario struct {
	// Name uniquely identifies this scenario. Also names the golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Catalog is the CUE catalog directory, relative to the scenario file.
	Catalog string `yaml:"catalog"`

	// Steps is the pipeline of combinator applications, run in order.
	// Each step reads its operands from the catalog or from earlier
	// saved results and stores its output under Save.
	Steps []Step `yaml:"steps"`

	// Assertions validate the saved results after all steps have run.
	Assertions []Assertion `yaml:"assertions"`
}

// Step is a single combinator application.
type Step struct {
	// Op is the combinator to apply:
	// mix, restrict, tuple, product, marginal_left, marginal_right,
	// head, tail.
	Op string `yaml:"op"`

	// Dist names the primary operand. Saved results shadow catalog
	// entries of the same name.
	Dist string `yaml:"dist"`

	// With names the second operand (mix, product).
	With string `yaml:"with,omitempty"`

	// P is the mixing weight (mix).
	P *float64 `yaml:"p,omitempty"`

	// N is the vector length (tuple).
	N *int `yaml:"n,omitempty"`

	// Outcome is the outcome to remove (restrict).
	Outcome string `yaml:"outcome,omitempty"`

	// Save is the name the step's result is stored under.
	Save string `yaml:"save"`
}

// Assertion validates a saved or catalog distribution.
type Assertion struct {
	// Type specifies the assertion:
	// - "weight": the named outcome carries the given weight
	// - "support_size": the distribution has exactly Count support outcomes
	// - "total": the weights sum to one within tolerance
	// - "equals": two distributions agree as weight functions
	// - "count_bounds": the counting inequality brackets Count
	Type string `yaml:"type"`

	// Dist names the distribution under test (all types except count_bounds).
	Dist string `yaml:"dist,omitempty"`

	// Outcome is the outcome whose weight is checked (weight). Vector
	// outcomes are written comma-joined, the empty vector as "()".
	Outcome string `yaml:"outcome,omitempty"`

	// Value is the expected weight (weight).
	Value float64 `yaml:"value,omitempty"`

	// Count is the expected support size (support_size) or the
	// cardinality the bounds must bracket (count_bounds).
	Count int `yaml:"count,omitempty"`

	// Other names the distribution compared against (equals).
	Other string `yaml:"other,omitempty"`

	// Per-outcome and total weight bounds (count_bounds).
	PerLow  float64 `yaml:"per_low,omitempty"`
	PerHigh float64 `yaml:"per_high,omitempty"`
	SumLow  float64 `yaml:"sum_low,omitempty"`
	SumHigh float64 `yaml:"sum_high,omitempty"`
}

// Step op constants.
const (
	OpMix           = "mix"
	OpRestrict      = "restrict"
	OpTuple         = "tuple"
	OpProduct       = "product"
	OpMarginalLeft  = "marginal_left"
	OpMarginalRight = "marginal_right"
	OpHead          = "head"
	OpTail          = "tail"
)

// Assertion type constants.
const (
	AssertWeight      = "weight"
	AssertSupportSize = "support_size"
	AssertTotal       = "total"
	AssertEquals      = "equals"
	AssertCountBounds = "count_bounds"
)

// LoadScenario reads and parses a scenario YAML file. The catalog path
// is resolved relative to the scenario file's directory. Returns an
// error if the file is malformed, contains unknown fields (typos), or
// is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	// Strict field validation catches typos like "assertion:" vs "assertions:".
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if !filepath.IsAbs(scenario.Catalog) {
		scenario.Catalog = filepath.Join(filepath.Dir(path), scenario.Catalog)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if s.Description == "" {
		return fmt.Errorf("description is required")
	}
	if s.Catalog == "" {
		return fmt.Errorf("catalog is required")
	}
	if _, err := os.Stat(s.Catalog); os.IsNotExist(err) {
		return fmt.Errorf("catalog directory not found: %s", s.Catalog)
	}
	if len(s.Steps) == 0 {
		return fmt.Errorf("steps list is required and must be non-empty")
	}
	if len(s.Assertions) == 0 {
		return fmt.Errorf("assertions list is required and must be non-empty")
	}

	for i, step := range s.Steps {
		if err := validateStep(i, &step); err != nil {
			return err
		}
	}
	for i, assertion := range s.Assertions {
		if err := validateAssertion(i, &assertion); err != nil {
			return err
		}
	}

	return nil
}

// validateStep validates a single step based on its op.
func validateStep(index int, st *Step) error {
	if st.Op == "" {
		return fmt.Errorf("steps[%d]: op is required", index)
	}
	if st.Dist == "" {
		return fmt.Errorf("steps[%d]: dist is required", index)
	}
	if st.Save == "" {
		return fmt.Errorf("steps[%d]: save is required", index)
	}

	switch st.Op {
	case OpMix:
		if st.With == "" {
			return fmt.Errorf("steps[%d]: with is required for mix", index)
		}
		if st.P == nil {
			return fmt.Errorf("steps[%d]: p is required for mix", index)
		}
	case OpRestrict:
		if st.Outcome == "" {
			return fmt.Errorf("steps[%d]: outcome is required for restrict", index)
		}
	case OpTuple:
		if st.N == nil {
			return fmt.Errorf("steps[%d]: n is required for tuple", index)
		}
	case OpProduct:
		if st.With == "" {
			return fmt.Errorf("steps[%d]: with is required for product", index)
		}
	case OpMarginalLeft, OpMarginalRight, OpHead, OpTail:
		// Single operand, nothing extra to check.
	default:
		return fmt.Errorf("steps[%d]: unknown op %q", index, st.Op)
	}

	return nil
}

// validateAssertion validates a single assertion based on its type.
func validateAssertion(index int, a *Assertion) error {
	if a.Type == "" {
		return fmt.Errorf("assertions[%d]: type is required", index)
	}

	switch a.Type {
	case AssertWeight:
		if a.Dist == "" {
			return fmt.Errorf("assertions[%d]: dist is required for weight", index)
		}
		if a.Outcome == "" {
			return fmt.Errorf("assertions[%d]: outcome is required for weight", index)
		}
	case AssertSupportSize:
		if a.Dist == "" {
			return fmt.Errorf("assertions[%d]: dist is required for support_size", index)
		}
		if a.Count < 0 {
			return fmt.Errorf("assertions[%d]: count must be non-negative for support_size", index)
		}
	case AssertTotal:
		if a.Dist == "" {
			return fmt.Errorf("assertions[%d]: dist is required for total", index)
		}
	case AssertEquals:
		if a.Dist == "" || a.Other == "" {
			return fmt.Errorf("assertions[%d]: dist and other are required for equals", index)
		}
	case AssertCountBounds:
		if a.PerLow <= 0 || a.PerHigh <= 0 {
			return fmt.Errorf("assertions[%d]: per_low and per_high must be positive for count_bounds", index)
		}
		if a.Count <= 0 {
			return fmt.Errorf("assertions[%d]: count is required for count_bounds", index)
		}
	default:
		return fmt.Errorf("assertions[%d]: unknown assertion type %q", index, a.Type)
	}

	return nil
}
