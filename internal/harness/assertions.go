package harness

import (
	"fmt"
	"math"
	"strings"

	"github.com/probelab/findist/dist"
	"github.com/probelab/findist/internal/specfile"
)

// AssertionError is returned when an assertion fails.
// It includes expected and actual values to help debug the failure.
type AssertionError struct {
	Type     string // Assertion type for categorization
	Expected string // Human-readable expected outcome
	Actual   string // Human-readable actual outcome
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	var buf strings.Builder
	fmt.Fprintf(&buf, "Assertion failed: %s\n", e.Type)
	fmt.Fprintf(&buf, "  Expected: %s\n", e.Expected)
	fmt.Fprintf(&buf, "  Actual: %s", e.Actual)
	return buf.String()
}

// assertWeight checks that the named outcome carries the expected
// weight within tolerance. Labels outside the domain carry weight 0.
func assertWeight(v value, assertion Assertion) error {
	actual := weightOf(v, assertion.Outcome)
	if math.Abs(actual-assertion.Value) > dist.Tolerance {
		return &AssertionError{
			Type:     AssertWeight,
			Expected: fmt.Sprintf("weight(%s, %s) = %v", assertion.Dist, assertion.Outcome, assertion.Value),
			Actual:   fmt.Sprintf("%v", actual),
		}
	}
	return nil
}

// assertSupportSize checks the number of nonzero-weight outcomes.
func assertSupportSize(v value, assertion Assertion) error {
	count := 0
	for _, r := range rowsOf(v) {
		if r.Weight != 0 {
			count++
		}
	}
	if count != assertion.Count {
		return &AssertionError{
			Type:     AssertSupportSize,
			Expected: fmt.Sprintf("support of %s has %d outcome(s)", assertion.Dist, assertion.Count),
			Actual:   fmt.Sprintf("%d outcome(s)", count),
		}
	}
	return nil
}

// assertTotal checks that the weights sum to one within tolerance.
func assertTotal(v value, assertion Assertion) error {
	sum := 0.0
	for _, r := range rowsOf(v) {
		sum += r.Weight
	}
	if math.Abs(sum-1) > dist.Tolerance {
		return &AssertionError{
			Type:     AssertTotal,
			Expected: fmt.Sprintf("weights of %s sum to 1", assertion.Dist),
			Actual:   fmt.Sprintf("%v", sum),
		}
	}
	return nil
}

// assertEquals checks that two distributions agree as weight
// functions. Comparison is by labelled rows so a saved result can be
// checked against a catalog entry regardless of outcome kind.
func assertEquals(a, b value, assertion Assertion) error {
	left := rowsOf(a)
	right := rowsOf(b)

	weights := map[string]float64{}
	for _, r := range left {
		weights[r.Label] = r.Weight
	}
	for _, r := range right {
		if math.Abs(weights[r.Label]-r.Weight) > dist.Tolerance {
			return &AssertionError{
				Type:     AssertEquals,
				Expected: fmt.Sprintf("%s and %s agree on %s", assertion.Dist, assertion.Other, r.Label),
				Actual:   fmt.Sprintf("%v vs %v", weights[r.Label], r.Weight),
			}
		}
		delete(weights, r.Label)
	}
	for label, w := range weights {
		if math.Abs(w) > dist.Tolerance {
			return &AssertionError{
				Type:     AssertEquals,
				Expected: fmt.Sprintf("%s carries no extra mass", assertion.Dist),
				Actual:   fmt.Sprintf("weight %v on %s", w, label),
			}
		}
	}
	return nil
}

// assertCountBounds checks that the counting inequality derived from
// the per-outcome and total weight bounds brackets the given
// cardinality.
func assertCountBounds(assertion Assertion) error {
	lower, upper, err := dist.CardinalityBounds(assertion.PerLow, assertion.PerHigh, assertion.SumLow, assertion.SumHigh)
	if err != nil {
		return &AssertionError{
			Type:     AssertCountBounds,
			Expected: "valid per-outcome bounds",
			Actual:   err.Error(),
		}
	}
	n := float64(assertion.Count)
	if n < lower || n > upper {
		return &AssertionError{
			Type:     AssertCountBounds,
			Expected: fmt.Sprintf("%v <= count <= %v", lower, upper),
			Actual:   fmt.Sprintf("count = %d", assertion.Count),
		}
	}
	return nil
}

// weightOf reads the weight a distribution assigns to a label.
func weightOf(v value, label string) float64 {
	for _, r := range rowsOf(v) {
		if r.Label == label {
			return r.Weight
		}
	}
	return 0
}

// EvaluateAssertions evaluates all assertions against the saved step
// results and the catalog. Returns a slice of error messages for
// failed assertions.
func EvaluateAssertions(vars env, catalog *specfile.Catalog, assertions []Assertion) []string {
	var errors []string

	for i, assertion := range assertions {
		var err error

		switch assertion.Type {
		case AssertWeight, AssertSupportSize, AssertTotal:
			v, lookupErr := lookup(vars, catalog, assertion.Dist)
			if lookupErr != nil {
				err = fmt.Errorf("assertion[%d]: %w", i, lookupErr)
				break
			}
			switch assertion.Type {
			case AssertWeight:
				err = assertWeight(v, assertion)
			case AssertSupportSize:
				err = assertSupportSize(v, assertion)
			case AssertTotal:
				err = assertTotal(v, assertion)
			}
		case AssertEquals:
			a, lookupErr := lookup(vars, catalog, assertion.Dist)
			if lookupErr != nil {
				err = fmt.Errorf("assertion[%d]: %w", i, lookupErr)
				break
			}
			b, lookupErr := lookup(vars, catalog, assertion.Other)
			if lookupErr != nil {
				err = fmt.Errorf("assertion[%d]: %w", i, lookupErr)
				break
			}
			err = assertEquals(a, b, assertion)
		case AssertCountBounds:
			err = assertCountBounds(assertion)
		default:
			err = fmt.Errorf("assertion[%d]: unknown assertion type %q", i, assertion.Type)
		}

		if err != nil {
			errors = append(errors, err.Error())
		}
	}

	return errors
}
