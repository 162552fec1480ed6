package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/probelab/findist/dist"
)

// MixResult is the payload of the mix command.
type MixResult struct {
	Left   string      `json:"left"`
	Right  string      `json:"right"`
	Weight float64     `json:"weight"`
	Rows   []WeightRow `json:"rows"`
}

func (r *MixResult) renderText(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "mix(%s, %s, %s)\n", r.Left, r.Right, formatWeight(r.Weight)); err != nil {
		return err
	}
	return renderRows(w, r.Rows)
}

// NewMixCommand creates the mix command.
func NewMixCommand(rootOpts *RootOptions) *cobra.Command {
	var weight float64

	cmd := &cobra.Command{
		Use:   "mix <catalog-dir> <left> <right>",
		Short: "Convex-combine two distributions",
		Long: `Compute the convex combination of two catalog distributions:
weight(x) = p·left(x) + (1−p)·right(x), over the union of the domains.`,
		Args:          cobra.ExactArgs(3),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMix(rootOpts, args[0], args[1], args[2], weight, cmd)
		},
	}

	cmd.Flags().Float64VarP(&weight, "weight", "p", 0.5, "mixing weight for the left distribution, in [0,1]")

	return cmd
}

func runMix(opts *RootOptions, dir, left, right string, weight float64, cmd *cobra.Command) error {
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

	m, mixErr := dist.Mix(p, q, weight)
	if mixErr != nil {
		if err := formatter.Error(string(errCodeOf(mixErr)), mixErr.Error(), nil); err != nil {
			return err
		}
		return WrapExitError(ExitCommandError, "mix failed", mixErr)
	}

	return formatter.Success(&MixResult{
		Left:   left,
		Right:  right,
		Weight: weight,
		Rows:   rowsOf(m),
	})
}

// errCodeOf extracts the dist error code for CLI error rendering.
func errCodeOf(err error) dist.ErrorCode {
	switch {
	case dist.IsInvalidWeights(err):
		return dist.ErrCodeInvalidWeights
	case dist.IsEmptyDomain(err):
		return dist.ErrCodeEmptyDomain
	case dist.IsDivisionByZero(err):
		return dist.ErrCodeDivisionByZero
	case dist.IsOutOfRange(err):
		return dist.ErrCodeOutOfRange
	default:
		return "UNKNOWN"
	}
}
