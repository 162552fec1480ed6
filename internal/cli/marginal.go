package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/probelab/findist/dist"
)

// MarginalResult is the payload of the marginal command.
type MarginalResult struct {
	Left          string      `json:"left"`
	Right         string      `json:"right"`
	Joint         []WeightRow `json:"joint"`
	MarginalLeft  []WeightRow `json:"marginal_left"`
	MarginalRight []WeightRow `json:"marginal_right"`
	Recovered     bool        `json:"recovered"`
}

func (r *MarginalResult) renderText(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "product(%s, %s)\n", r.Left, r.Right); err != nil {
		return err
	}
	if err := renderRows(w, r.Joint); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "marginal left:"); err != nil {
		return err
	}
	if err := renderRows(w, r.MarginalLeft); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "marginal right:"); err != nil {
		return err
	}
	if err := renderRows(w, r.MarginalRight); err != nil {
		return err
	}
	if r.Recovered {
		_, err := fmt.Fprintln(w, "✓ marginals recover both factors")
		return err
	}
	_, err := fmt.Fprintln(w, "✗ marginals do not recover the factors")
	return err
}

// NewMarginalCommand creates the marginal command.
func NewMarginalCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "marginal <catalog-dir> <left> <right>",
		Short: "Build an independent product and project both marginals",
		Long: `Build the independent product of two catalog distributions and
project it back onto both coordinates. With an independent product the
marginals recover the factors exactly; the command reports the check.`,
		Args:          cobra.ExactArgs(3),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMarginal(rootOpts, args[0], args[1], args[2], cmd)
		},
	}

	return cmd
}

func runMarginal(opts *RootOptions, dir, left, right string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	catalog, err := loadCatalog(formatter, dir)
	if err != nil {
		return err
	}
	p, err := getDist(formatter, catalog, left)
	if err != nil {
		return err
	}
	q, err := getDist(formatter, catalog, right)
	if err != nil {
		return err
	}

	joint, prodErr := dist.Product(p, func(string) *dist.Dist[string] { return q })
	if prodErr != nil {
		if err := formatter.Error(string(errCodeOf(prodErr)), prodErr.Error(), nil); err != nil {
			return err
		}
		return WrapExitError(ExitCommandError, "product failed", prodErr)
	}

	ml, err := dist.MarginalLeft(joint)
	if err != nil {
		return WrapExitError(ExitCommandError, "left marginal failed", err)
	}
	mr, err := dist.MarginalRight(joint)
	if err != nil {
		return WrapExitError(ExitCommandError, "right marginal failed", err)
	}

	outcomes := joint.Outcomes()
	weights := joint.Weights()
	jointRows := make([]WeightRow, len(outcomes))
	for i, pr := range outcomes {
		jointRows[i] = WeightRow{
			Outcome: fmt.Sprintf("(%s,%s)", pr.Left, pr.Right),
			Weight:  weights[i],
		}
	}

	return formatter.Success(&MarginalResult{
		Left:          left,
		Right:         right,
		Joint:         jointRows,
		MarginalLeft:  rowsOf(ml),
		MarginalRight: rowsOf(mr),
		Recovered:     ml.Equal(p) && mr.Equal(q),
	})
}
