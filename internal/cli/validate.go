package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/probelab/findist/internal/specfile"
)

// ValidationResult holds validation results for a catalog.
type ValidationResult struct {
	Valid     bool     `json:"valid"`
	Dists     []string `json:"dists,omitempty"`
	FileCount int      `json:"file_count"`
	Errors    []string `json:"errors,omitempty"`
}

func (r *ValidationResult) renderText(w io.Writer) error {
	if r.Valid {
		_, err := fmt.Fprintf(w, "✓ catalog valid: %d distribution(s) in %d file(s)\n", len(r.Dists), r.FileCount)
		return err
	}
	for _, e := range r.Errors {
		if _, err := fmt.Fprintf(w, "✗ %s\n", e); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "%d error(s)\n", len(r.Errors))
	return err
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <catalog-dir>",
		Short: "Validate every distribution in a catalog",
		Long: `Validate a CUE distribution catalog.

Each entry is checked against the distribution invariants: non-negative
weights summing to one over a duplicate-free outcome domain. All
malformed entries are reported, not just the first.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runValidate(opts *RootOptions, dir string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	catalog, errs := specfile.Load(dir, specfile.LoadModeCollectAll)

	// Load-level failures (missing directory, no files) are command
	// errors, not validation failures.
	if catalog == nil {
		code := specfile.ErrCodeGeneric
		var loadErr *specfile.LoadError
		if errors.As(errs[0], &loadErr) {
			code = loadErr.Code
		}
		if err := formatter.Error(code, errs[0].Error(), nil); err != nil {
			return err
		}
		return WrapExitError(ExitCommandError, code, errs[0])
	}

	formatter.VerboseLog("Found %d CUE file(s) in %s", catalog.FileCount, dir)

	result := &ValidationResult{
		Valid:     len(errs) == 0,
		Dists:     catalog.Names,
		FileCount: catalog.FileCount,
	}
	for _, e := range errs {
		result.Errors = append(result.Errors, e.Error())
	}

	if err := formatter.Success(result); err != nil {
		return err
	}
	if !result.Valid {
		return NewExitError(ExitFailure, fmt.Sprintf("%d invalid catalog entr(ies)", len(result.Errors)))
	}
	return nil
}
