package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// ShowResult is the payload of the show command.
type ShowResult struct {
	Name        string      `json:"name"`
	Outcomes    int         `json:"outcomes"`
	SupportSize int         `json:"support_size"`
	Rows        []WeightRow `json:"rows"`
}

func (r *ShowResult) renderText(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "%s: %d outcome(s), support %d\n", r.Name, r.Outcomes, r.SupportSize); err != nil {
		return err
	}
	return renderRows(w, r.Rows)
}

// NewShowCommand creates the show command.
func NewShowCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <catalog-dir> <name>",
		Short: "Print a distribution's weight table",
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(rootOpts, args[0], args[1], cmd)
		},
	}

	return cmd
}

func runShow(opts *RootOptions, dir, name string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	catalog, err := loadCatalog(formatter, dir)
	if err != nil {
		return err
	}
	d, err := getDist(formatter, catalog, name)
	if err != nil {
		return err
	}

	return formatter.Success(&ShowResult{
		Name:        name,
		Outcomes:    d.Len(),
		SupportSize: d.SupportSize(),
		Rows:        rowsOf(d),
	})
}
