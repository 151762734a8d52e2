package cli

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/toyz/mirror/internal/errors"
)

// DiagnosticReporter provides user-friendly progress and error reporting
type DiagnosticReporter struct {
	verbose bool
	quiet   bool
	out     io.Writer
	errOut  io.Writer
}

// NewDiagnosticReporter creates a new diagnostic reporter
func NewDiagnosticReporter(verbose, quiet bool) *DiagnosticReporter {
	return &DiagnosticReporter{
		verbose: verbose,
		quiet:   quiet,
		out:     os.Stdout,
		errOut:  os.Stderr,
	}
}

// ReportProgress prints a progress line unless running quiet
func (r *DiagnosticReporter) ReportProgress(format string, args ...interface{}) {
	if r.quiet {
		return
	}
	fmt.Fprintf(r.out, format+"\n", args...)
}

// ReportSuccess prints a green success marker line
func (r *DiagnosticReporter) ReportSuccess(format string, args ...interface{}) {
	if r.quiet {
		return
	}
	green := color.New(color.FgGreen, color.Bold)
	green.Fprint(r.out, "✓ ")
	fmt.Fprintf(r.out, format+"\n", args...)
}

// ReportWarning prints a warning line unless running quiet
func (r *DiagnosticReporter) ReportWarning(message string) {
	if r.quiet {
		return
	}
	yellow := color.New(color.FgYellow, color.Bold)
	yellow.Fprint(r.errOut, "! ")
	fmt.Fprintf(r.errOut, "%s\n", message)
}

// ReportError provides comprehensive error reporting with location, code and
// suggestions when the error carries them
func (r *DiagnosticReporter) ReportError(err error) {
	red := color.New(color.FgRed, color.Bold)
	red.Fprint(r.errOut, "ERROR: ")
	fmt.Fprintf(r.errOut, "Generation Failed\n\n")

	var coded *errors.Error
	if stderrors.As(err, &coded) {
		r.reportCodedError(coded)
	} else {
		fmt.Fprintf(r.errOut, "Message: %s\n", err.Error())
	}
	fmt.Fprintf(r.errOut, "\n")
}

func (r *DiagnosticReporter) reportCodedError(err *errors.Error) {
	fmt.Fprintf(r.errOut, "Type: %s\n", err.Code.String())
	fmt.Fprintf(r.errOut, "Message: %s\n", err.Message)

	if !err.Loc.IsEmpty() {
		fmt.Fprintf(r.errOut, "Location: %s\n", err.Loc.String())
	}
	if r.verbose && err.Cause != nil {
		fmt.Fprintf(r.errOut, "Underlying cause: %s\n", err.Cause.Error())
	}
	if len(err.Hints) > 0 {
		fmt.Fprintf(r.errOut, "\nSuggestions:\n")
		for _, hint := range err.Hints {
			fmt.Fprintf(r.errOut, "  - %s\n", hint)
		}
	}
}
