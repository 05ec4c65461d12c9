package ssbparse

import "fmt"

// Severity classifies a Diagnostic the same way a compiler front end would:
// Error is always fatal when Options.Warnings is set, Warning is reported
// but never blocks best-effort parsing.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Stage names which section of the document a Diagnostic was raised from,
// so a caller collecting many Diagnostics across a large script can group
// or filter them by where they came from.
type Stage string

const (
	StageFrame  Stage = "frame"
	StageStyles Stage = "styles"
	StageEvents Stage = "events"
)

// Diagnostic is one parse-time finding: a located, severity-tagged message.
// Non-fatal findings (Options.Warnings == false) accumulate into the slice
// Parse returns instead of aborting; fatal ones are also wrapped into the
// returned error via errors.Is(err, ssberr.ErrScriptSyntax).
type Diagnostic struct {
	Severity Severity
	Stage    Stage
	Message  string
	Path     string
	Line     int
}

func (d Diagnostic) Error() string {
	if d.Path != "" && d.Line > 0 {
		return fmt.Sprintf("%s:%d: %s", d.Path, d.Line, d.Message)
	}
	return d.Message
}

// HasErrors reports whether diags contains an Error-severity entry.
func HasErrors(diags []Diagnostic) bool {
	for _, d := range diags {
		if d.Severity == SeverityError {
			return true
		}
	}
	return false
}

// parseError carries a Diagnostic through the standard error interface so a
// fatal parse failure can still be unwrapped to ssberr.ErrScriptSyntax while
// the non-fatal path extracts the Diagnostic directly instead of
// re-parsing the error string.
type parseError struct {
	diag Diagnostic
	wrap error
}

func (e *parseError) Error() string { return e.diag.Error() }
func (e *parseError) Unwrap() error { return e.wrap }
