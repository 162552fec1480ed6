package cli

import (
	"fmt"
	"io"
	"math"

	"github.com/spf13/cobra"

	"github.com/probelab/findist/dist"
)

// maxTupleOutcomes caps the size of the rendered product domain; the
// domain grows as |outcomes|^n and a table past this size is unreadable
// anyway.
const maxTupleOutcomes = 4096

// TupleResult is the payload of the tuple command.
type TupleResult struct {
	Name     string      `json:"name"`
	N        int         `json:"n"`
	Outcomes int         `json:"outcomes"`
	Rows     []WeightRow `json:"rows"`
}

func (r *TupleResult) renderText(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "tuple(%s, %d): %d outcome(s)\n", r.Name, r.N, r.Outcomes); err != nil {
		return err
	}
	return renderRows(w, r.Rows)
}

// NewTupleCommand creates the tuple command.
func NewTupleCommand(rootOpts *RootOptions) *cobra.Command {
	var n int

	cmd := &cobra.Command{
		Use:   "tuple <catalog-dir> <name>",
		Short: "Build the independent n-fold product of a distribution",
		Long: `Compute the independent n-fold product of a catalog distribution:
the distribution over length-n outcome vectors whose weight is the
product of the per-coordinate weights.`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTuple(rootOpts, args[0], args[1], n, cmd)
		},
	}

	cmd.Flags().IntVarP(&n, "length", "n", 2, "vector length")

	return cmd
}

func runTuple(opts *RootOptions, dir, name string, n int, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	catalog, err := loadCatalog(formatter, dir)
	if err != nil {
		return err
	}
	p, err := getDist(formatter, catalog, name)
	if err != nil {
		return err
	}

	if n >= 0 && math.Pow(float64(p.Len()), float64(n)) > maxTupleOutcomes {
		msg := fmt.Sprintf("tuple domain %d^%d exceeds the %d-outcome limit", p.Len(), n, maxTupleOutcomes)
		if err := formatter.Error(string(dist.ErrCodeOutOfRange), msg, nil); err != nil {
			return err
		}
		return NewExitError(ExitCommandError, msg)
	}

	t, tupleErr := dist.Tuple(p, n)
	if tupleErr != nil {
		if err := formatter.Error(string(errCodeOf(tupleErr)), tupleErr.Error(), nil); err != nil {
			return err
		}
		return WrapExitError(ExitCommandError, "tuple failed", tupleErr)
	}

	outcomes := t.Outcomes()
	weights := t.Weights()
	rows := make([]WeightRow, len(outcomes))
	for i, v := range outcomes {
		rows[i] = WeightRow{Outcome: vectorLabel(v), Weight: weights[i]}
	}

	return formatter.Success(&TupleResult{
		Name:     name,
		N:        n,
		Outcomes: t.Len(),
		Rows:     rows,
	})
}
