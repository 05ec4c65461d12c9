// Package font defines a platform-neutral glyph-shaping interface and a
// github.com/go-text/typesetting-backed implementation, mirroring the
// pluggable TextRenderer interface pattern that keeps a font backend
// (SDL_ttf, in the ancestor code this is adapted from) behind an interface
// instead of hard-wiring it.
package font

import "nitro-core-dx/internal/path"

// Metrics are line metrics in the same units as Attrs.Size (pixels).
type Metrics struct {
	Height       float64
	Ascent       float64
	Descent      float64
	InternalLead float64
	ExternalLead float64
}

// Attrs selects a font face.
type Attrs struct {
	Family                             string
	Bold, Italic, Underline, Strikeout bool
	Size                               float64
	RTL                                bool
}

// Shaper yields per-glyph outlines, advance widths and line metrics for one
// resolved font face. Implementations must be safe for concurrent use by
// distinct callers (no shared mutable state across Renderer instances).
type Shaper interface {
	Metrics() Metrics
	// Width returns the total advance width of text, in pixels, including
	// inter-glyph kerning/shaping the backend applies (font-space is added
	// by the layout engine, not here).
	Width(text string) float64
	// AppendOutline shapes text and appends its glyph outlines to dst, with
	// the text origin (baseline start) at (originX, originY).
	AppendOutline(dst *path.Path, text string, originX, originY float64)
}

// Loader resolves (family, bold, italic) to font file bytes. Discovery
// itself is deliberately out of scope here; callers supply their own
// loader (e.g. backed by fontconfig, a bundled font, or a fixed file).
type Loader func(family string, bold, italic bool) ([]byte, error)
