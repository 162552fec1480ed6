package specfile

import (
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/token"
	"golang.org/x/text/unicode/norm"

	"github.com/probelab/findist/dist"
)

// CompileError describes a malformed catalog entry, pointing back at the
// CUE source where possible.
type CompileError struct {
	// Entry is the catalog name of the distribution ("dist.<name>").
	Entry string

	// Field is the offending field within the entry, if known.
	Field string

	// Message is a human-readable description.
	Message string

	// Pos is the CUE source position, if available.
	Pos token.Pos
}

func (e *CompileError) Error() string {
	where := e.Entry
	if e.Field != "" {
		where = where + "." + e.Field
	}
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s", e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(), where, e.Message)
	}
	return fmt.Sprintf("%s: %s", where, e.Message)
}

// Compile parses a single catalog entry into a distribution.
//
// The CUE value should be the entry struct itself, e.g.:
//
//	ctx := cuecontext.New()
//	v := ctx.CompileString(`dist: coin: {...}`)
//	d, err := specfile.Compile("coin", v.LookupPath(cue.ParsePath("dist.coin")))
func Compile(name string, v cue.Value) (*dist.Dist[string], error) {
	if err := v.Err(); err != nil {
		return nil, &CompileError{Entry: name, Message: err.Error(), Pos: v.Pos()}
	}

	outcomes, err := compileOutcomes(name, v)
	if err != nil {
		return nil, err
	}
	weights, err := compileWeights(name, v)
	if err != nil {
		return nil, err
	}

	d, newErr := dist.New(outcomes, weights)
	if newErr != nil {
		return nil, &CompileError{Entry: name, Message: newErr.Error(), Pos: v.Pos()}
	}
	return d, nil
}

func compileOutcomes(name string, v cue.Value) ([]string, error) {
	outVal := v.LookupPath(cue.ParsePath("outcomes"))
	if !outVal.Exists() {
		return nil, &CompileError{Entry: name, Field: "outcomes", Message: "outcomes is required", Pos: v.Pos()}
	}
	iter, err := outVal.List()
	if err != nil {
		return nil, &CompileError{Entry: name, Field: "outcomes", Message: "outcomes must be a list", Pos: outVal.Pos()}
	}
	var outcomes []string
	for iter.Next() {
		s, err := iter.Value().String()
		if err != nil {
			return nil, &CompileError{
				Entry:   name,
				Field:   "outcomes",
				Message: fmt.Sprintf("outcome is not a string: %v", err),
				Pos:     iter.Value().Pos(),
			}
		}
		outcomes = append(outcomes, norm.NFC.String(s))
	}
	return outcomes, nil
}

func compileWeights(name string, v cue.Value) ([]float64, error) {
	wVal := v.LookupPath(cue.ParsePath("weights"))
	if !wVal.Exists() {
		return nil, &CompileError{Entry: name, Field: "weights", Message: "weights is required", Pos: v.Pos()}
	}
	iter, err := wVal.List()
	if err != nil {
		return nil, &CompileError{Entry: name, Field: "weights", Message: "weights must be a list", Pos: wVal.Pos()}
	}
	var weights []float64
	for iter.Next() {
		w, err := iter.Value().Float64()
		if err != nil {
			return nil, &CompileError{
				Entry:   name,
				Field:   "weights",
				Message: fmt.Sprintf("weight is not a number: %v", err),
				Pos:     iter.Value().Pos(),
			}
		}
		weights = append(weights, w)
	}
	return weights, nil
}
