package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // Validation failure (malformed catalog entries)
	ExitCommandError = 2 // Command error (missing paths, unknown names, bad flags)
)

// ExitError represents an error with a specific exit code.
// Use this to return errors with meaningful exit codes from CLI commands.
type ExitError struct {
	Code    int    // Exit code (use ExitFailure or ExitCommandError)
	Message string // Error message
	Err     error  // Underlying error (optional)
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitFailure (1) if the error is not an ExitError.
func GetExitCode(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// OutputFormatter handles JSON vs text output for CLI commands.
type OutputFormatter struct {
	Format    string
	Writer    io.Writer
	ErrWriter io.Writer // Separate writer for verbose/diagnostic output
	Verbose   bool
	RunID     string // correlates the JSON response with logs; empty in text mode
}

// newFormatter builds a formatter from the root options and the command's
// configured writers. JSON responses carry a fresh run ID.
func newFormatter(opts *RootOptions, cmd *cobra.Command) *OutputFormatter {
	f := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}
	if f.Format == "json" {
		f.RunID = NewRunID()
	}
	return f
}

// NewRunID generates a unique identifier for one CLI invocation.
// Uses UUIDv7 so run IDs sort by creation time.
func NewRunID() string {
	return uuid.Must(uuid.NewV7()).String()
}

// CLIResponse is the standard JSON response format for CLI output.
type CLIResponse struct {
	Status string    `json:"status"`           // "ok" or "error"
	Data   any       `json:"data,omitempty"`   // success payload
	Error  *CLIError `json:"error,omitempty"`  // error details
	RunID  string    `json:"run_id,omitempty"` // invocation correlation id
}

// CLIError is the error structure for CLI responses.
type CLIError struct {
	Code    string `json:"code"`              // "E001", "E002", etc.
	Message string `json:"message"`           // human-readable message
	Details any    `json:"details,omitempty"` // additional context
}

// Success outputs a successful result in the configured format.
// Payloads with a richer human-readable form implement textRenderer.
func (f *OutputFormatter) Success(data any) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(CLIResponse{
			Status: "ok",
			Data:   data,
			RunID:  f.RunID,
		})
	}
	if r, ok := data.(textRenderer); ok {
		return r.renderText(f.Writer)
	}
	_, err := fmt.Fprintln(f.Writer, data)
	return err
}

// Error outputs an error in the configured format.
func (f *OutputFormatter) Error(code, message string, details any) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(CLIResponse{
			Status: "error",
			Error: &CLIError{
				Code:    code,
				Message: message,
				Details: details,
			},
			RunID: f.RunID,
		})
	}
	_, err := fmt.Fprintf(f.Writer, "error %s: %s\n", code, message)
	return err
}

// VerboseLog writes a diagnostic line to the error writer when verbose
// output is enabled. Diagnostics never mix into JSON on the main writer.
func (f *OutputFormatter) VerboseLog(format string, args ...any) {
	if !f.Verbose {
		return
	}
	w := f.ErrWriter
	if w == nil {
		w = f.Writer
	}
	fmt.Fprintf(w, format+"\n", args...)
}

// textRenderer is implemented by payloads that have a human-readable
// representation beyond their JSON form.
type textRenderer interface {
	renderText(w io.Writer) error
}

// WeightRow is one outcome/weight line of a rendered distribution.
type WeightRow struct {
	Outcome string  `json:"outcome"`
	Weight  float64 `json:"weight"`
}

// formatWeight renders a weight with the shortest representation that
// round-trips, keeping text output stable across runs.
func formatWeight(w float64) string {
	return strconv.FormatFloat(w, 'g', -1, 64)
}

// renderRows writes an aligned outcome/weight table.
func renderRows(w io.Writer, rows []WeightRow) error {
	width := len("outcome")
	for _, r := range rows {
		if len(r.Outcome) > width {
			width = len(r.Outcome)
		}
	}
	if _, err := fmt.Fprintf(w, "%-*s  weight\n", width, "outcome"); err != nil {
		return err
	}
	for _, r := range rows {
		if _, err := fmt.Fprintf(w, "%-*s  %s\n", width, r.Outcome, formatWeight(r.Weight)); err != nil {
			return err
		}
	}
	return nil
}

// vectorLabel renders a vector outcome for display, e.g. "heads,tails".
func vectorLabel(v []string) string {
	if len(v) == 0 {
		return "()"
	}
	return strings.Join(v, ",")
}
