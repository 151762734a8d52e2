package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/toyz/mirror/internal/errors"
)

func capturedReporter(verbose, quiet bool) (*DiagnosticReporter, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	r := NewDiagnosticReporter(verbose, quiet)
	r.out = &out
	r.errOut = &errOut
	return r, &out, &errOut
}

func TestReporter_QuietSuppressesNonErrors(t *testing.T) {
	r, out, errOut := capturedReporter(false, true)

	r.ReportProgress("working on %s", "api.yaml")
	r.ReportSuccess("generated %s", "UserAPI")
	r.ReportWarning("nothing to generate")

	assert.Empty(t, out.String())
	assert.Empty(t, errOut.String())
}

func TestReporter_WarningPrintedWhenNotQuiet(t *testing.T) {
	r, _, errOut := capturedReporter(false, false)

	r.ReportWarning("nothing to generate")
	assert.Contains(t, errOut.String(), "nothing to generate")
}

func TestReporter_ErrorsAlwaysPrinted(t *testing.T) {
	r, _, errOut := capturedReporter(false, true)

	err := errors.New(errors.ValidationErrorCode, "model file declares no module").
		WithLocation(errors.SourceLocation{File: "api.yaml"}).
		WithSuggestion("add a top-level module entry")
	r.ReportError(err)

	assert.Contains(t, errOut.String(), "ValidationError")
	assert.Contains(t, errOut.String(), "model file declares no module")
	assert.Contains(t, errOut.String(), "api.yaml")
	assert.Contains(t, errOut.String(), "add a top-level module entry")
}
