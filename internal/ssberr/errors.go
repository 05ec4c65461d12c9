// Package ssberr holds the sentinel error kinds shared between the script
// parser and the renderer façade, so callers can classify a failure with
// errors.Is without either package importing the other.
package ssberr

import "errors"

var (
	// ErrScriptRead means the script file could not be opened or read.
	// Fatal, reported at construction.
	ErrScriptRead = errors.New("script read")

	// ErrScriptSyntax means a line or tag failed to parse. Fatal only when
	// warnings are requested; otherwise the offending tag is dropped and a
	// best-effort parse continues.
	ErrScriptSyntax = errors.New("script syntax")

	// ErrExpressionEval means a deform/animate formula failed to evaluate.
	// Never surfaced to a caller; degrades silently (progress/coordinate
	// unchanged).
	ErrExpressionEval = errors.New("expression eval")

	// ErrTextureMissing means a texture= file could not be loaded. Never
	// surfaced to a caller; the texture step is skipped.
	ErrTextureMissing = errors.New("texture missing")

	// ErrUnsupportedFormat means set_target was given an unknown pixel
	// format. Fatal to that call.
	ErrUnsupportedFormat = errors.New("unsupported format")
)
