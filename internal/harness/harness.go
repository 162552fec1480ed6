package harness

import (
	"fmt"
	"strings"

	"github.com/probelab/findist/dist"
	"github.com/probelab/findist/internal/specfile"
)

// value is one pipeline operand. Exactly one field is set; the step
// ops dictate which kind they consume and produce.
type value struct {
	scalar *dist.Dist[string]
	joint  *dist.Dist[dist.Pair[string, string]]
	vector *dist.Dist[[]string]
}

// env maps saved step names to their results.
type env map[string]value

// Row is one labelled outcome of a step result. Joint outcomes render
// as "(a,b)", vector outcomes comma-joined with the empty vector as
// "()".
type Row struct {
	Label  string  `json:"label"`
	Weight float64 `json:"weight"`
}

// StepResult records the distribution a step produced.
type StepResult struct {
	Op   string `json:"op"`
	Save string `json:"save"`
	Rows []Row  `json:"rows"`
}

// Result is the outcome of a scenario execution.
type Result struct {
	// Pass indicates overall success. True if all assertions hold.
	Pass bool `json:"pass"`

	// Steps records every step's output in pipeline order. Used for
	// golden comparison.
	Steps []StepResult `json:"steps"`

	// Errors contains assertion failure messages. Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`
}

// NewResult creates a new passing result.
func NewResult() *Result {
	return &Result{
		Pass:  true,
		Steps: []StepResult{},
	}
}

// AddError adds an assertion failure and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}

// Run executes a scenario: loads the catalog, applies every step in
// order and evaluates the assertions. Step errors abort the run;
// assertion failures are collected into the result.
func Run(scenario *Scenario) (*Result, error) {
	catalog, errs := specfile.Load(scenario.Catalog, specfile.LoadModeFailFast)
	if len(errs) > 0 {
		return nil, fmt.Errorf("load catalog %s: %w", scenario.Catalog, errs[0])
	}

	vars := env{}
	result := NewResult()

	for i, step := range scenario.Steps {
		v, err := applyStep(vars, catalog, step)
		if err != nil {
			return nil, fmt.Errorf("steps[%d] (%s %s): %w", i, step.Op, step.Dist, err)
		}
		vars[step.Save] = v
		result.Steps = append(result.Steps, StepResult{
			Op:   step.Op,
			Save: step.Save,
			Rows: rowsOf(v),
		})
	}

	for _, msg := range EvaluateAssertions(vars, catalog, scenario.Assertions) {
		result.AddError(msg)
	}

	return result, nil
}

// applyStep runs one combinator and returns its result.
func applyStep(vars env, catalog *specfile.Catalog, step Step) (value, error) {
	switch step.Op {
	case OpMix:
		p, err := lookupScalar(vars, catalog, step.Dist)
		if err != nil {
			return value{}, err
		}
		q, err := lookupScalar(vars, catalog, step.With)
		if err != nil {
			return value{}, err
		}
		m, err := dist.Mix(p, q, *step.P)
		if err != nil {
			return value{}, err
		}
		return value{scalar: m}, nil

	case OpRestrict:
		p, err := lookupScalar(vars, catalog, step.Dist)
		if err != nil {
			return value{}, err
		}
		r, err := dist.Restrict(p, step.Outcome)
		if err != nil {
			return value{}, err
		}
		return value{scalar: r}, nil

	case OpTuple:
		p, err := lookupScalar(vars, catalog, step.Dist)
		if err != nil {
			return value{}, err
		}
		t, err := dist.Tuple(p, *step.N)
		if err != nil {
			return value{}, err
		}
		return value{vector: t}, nil

	case OpProduct:
		p, err := lookupScalar(vars, catalog, step.Dist)
		if err != nil {
			return value{}, err
		}
		q, err := lookupScalar(vars, catalog, step.With)
		if err != nil {
			return value{}, err
		}
		j, err := dist.Product(p, func(string) *dist.Dist[string] { return q })
		if err != nil {
			return value{}, err
		}
		return value{joint: j}, nil

	case OpMarginalLeft:
		j, err := lookupJoint(vars, step.Dist)
		if err != nil {
			return value{}, err
		}
		m, err := dist.MarginalLeft(j)
		if err != nil {
			return value{}, err
		}
		return value{scalar: m}, nil

	case OpMarginalRight:
		j, err := lookupJoint(vars, step.Dist)
		if err != nil {
			return value{}, err
		}
		m, err := dist.MarginalRight(j)
		if err != nil {
			return value{}, err
		}
		return value{scalar: m}, nil

	case OpHead:
		v, err := lookupVector(vars, step.Dist)
		if err != nil {
			return value{}, err
		}
		h, err := dist.HeadOf(v)
		if err != nil {
			return value{}, err
		}
		return value{scalar: h}, nil

	case OpTail:
		v, err := lookupVector(vars, step.Dist)
		if err != nil {
			return value{}, err
		}
		tl, err := dist.TailOf(v)
		if err != nil {
			return value{}, err
		}
		return value{vector: tl}, nil

	default:
		return value{}, fmt.Errorf("unknown op %q", step.Op)
	}
}

// lookupScalar resolves a name to a string-outcome distribution.
// Saved results shadow catalog entries.
func lookupScalar(vars env, catalog *specfile.Catalog, name string) (*dist.Dist[string], error) {
	if v, ok := vars[name]; ok {
		if v.scalar == nil {
			return nil, fmt.Errorf("%s is not a scalar distribution", name)
		}
		return v.scalar, nil
	}
	if d, ok := catalog.Get(name); ok {
		return d, nil
	}
	return nil, fmt.Errorf("distribution %s not found", name)
}

// lookupJoint resolves a name to a pair-outcome distribution.
// Joints only exist as step results, never as catalog entries.
func lookupJoint(vars env, name string) (*dist.Dist[dist.Pair[string, string]], error) {
	v, ok := vars[name]
	if !ok {
		return nil, fmt.Errorf("distribution %s not found", name)
	}
	if v.joint == nil {
		return nil, fmt.Errorf("%s is not a joint distribution", name)
	}
	return v.joint, nil
}

// lookupVector resolves a name to a vector-outcome distribution.
func lookupVector(vars env, name string) (*dist.Dist[[]string], error) {
	v, ok := vars[name]
	if !ok {
		return nil, fmt.Errorf("distribution %s not found", name)
	}
	if v.vector == nil {
		return nil, fmt.Errorf("%s is not a vector distribution", name)
	}
	return v.vector, nil
}

// lookup resolves a name to any kind of distribution for assertions.
func lookup(vars env, catalog *specfile.Catalog, name string) (value, error) {
	if v, ok := vars[name]; ok {
		return v, nil
	}
	if d, ok := catalog.Get(name); ok {
		return value{scalar: d}, nil
	}
	return value{}, fmt.Errorf("distribution %s not found", name)
}

// rowsOf renders a distribution as labelled rows in domain order.
func rowsOf(v value) []Row {
	switch {
	case v.scalar != nil:
		outcomes := v.scalar.Outcomes()
		weights := v.scalar.Weights()
		rows := make([]Row, len(outcomes))
		for i, x := range outcomes {
			rows[i] = Row{Label: x, Weight: weights[i]}
		}
		return rows
	case v.joint != nil:
		outcomes := v.joint.Outcomes()
		weights := v.joint.Weights()
		rows := make([]Row, len(outcomes))
		for i, x := range outcomes {
			rows[i] = Row{Label: fmt.Sprintf("(%s,%s)", x.Left, x.Right), Weight: weights[i]}
		}
		return rows
	case v.vector != nil:
		outcomes := v.vector.Outcomes()
		weights := v.vector.Weights()
		rows := make([]Row, len(outcomes))
		for i, x := range outcomes {
			rows[i] = Row{Label: vectorLabel(x), Weight: weights[i]}
		}
		return rows
	default:
		return nil
	}
}

// vectorLabel renders a vector outcome, e.g. "heads,tails".
func vectorLabel(v []string) string {
	if len(v) == 0 {
		return "()"
	}
	return strings.Join(v, ",")
}
