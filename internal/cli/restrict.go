package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/probelab/findist/dist"
)

// RestrictResult is the payload of the restrict command.
type RestrictResult struct {
	Name        string      `json:"name"`
	Removed     string      `json:"removed"`
	SupportSize int         `json:"support_size"`
	Rows        []WeightRow `json:"rows"`
}

func (r *RestrictResult) renderText(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "restrict(%s, %s): support %d\n", r.Name, r.Removed, r.SupportSize); err != nil {
		return err
	}
	return renderRows(w, r.Rows)
}

// NewRestrictCommand creates the restrict command.
func NewRestrictCommand(rootOpts *RootOptions) *cobra.Command {
	var outcome string

	cmd := &cobra.Command{
		Use:   "restrict <catalog-dir> <name>",
		Short: "Remove an outcome and renormalize",
		Long: `Remove an outcome from a distribution's support and renormalize
the remaining weights by the complement of its mass. Fails when the
outcome carries all the mass.`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRestrict(rootOpts, args[0], args[1], outcome, cmd)
		},
	}

	cmd.Flags().StringVarP(&outcome, "outcome", "x", "", "outcome to remove (required)")
	cmd.MarkFlagRequired("outcome")

	return cmd
}

func runRestrict(opts *RootOptions, dir, name, outcome string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	catalog, err := loadCatalog(formatter, dir)
	if err != nil {
		return err
	}
	p, err := getDist(formatter, catalog, name)
	if err != nil {
		return err
	}

	r, restrictErr := dist.Restrict(p, outcome)
	if restrictErr != nil {
		if err := formatter.Error(string(errCodeOf(restrictErr)), restrictErr.Error(), nil); err != nil {
			return err
		}
		return WrapExitError(ExitCommandError, "restrict failed", restrictErr)
	}

	return formatter.Success(&RestrictResult{
		Name:        name,
		Removed:     outcome,
		SupportSize: r.SupportSize(),
		Rows:        rowsOf(r),
	})
}
