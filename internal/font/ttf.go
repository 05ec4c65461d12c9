package font

import (
	"bytes"
	"fmt"

	"github.com/go-text/typesetting/di"
	gotextfont "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/opentype/api"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"

	"nitro-core-dx/internal/path"
)

// ttfShaper shapes text with github.com/go-text/typesetting, the same
// OpenType/HarfBuzz-family stack fyne.io/fyne pulls in transitively for
// glyph layout. fixed.Int26_6's native 1/64 sub-pixel granularity gives
// outlines and advances ample precision without a separate upscale pass.
type ttfShaper struct {
	face   gotextfont.Face
	attrs  Attrs
	shaper shaping.HarfbuzzShaper
	upem   float64
}

var _ Shaper = (*ttfShaper)(nil)

// NewShaper parses a font face with data supplied by load and returns a
// Shaper bound to attrs (family is informational past this point; the
// loader already resolved it to concrete bytes).
func NewShaper(attrs Attrs, load Loader) (Shaper, error) {
	data, err := load(attrs.Family, attrs.Bold, attrs.Italic)
	if err != nil {
		return nil, fmt.Errorf("font: load %q: %w", attrs.Family, err)
	}
	face, err := gotextfont.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("font: parse %q: %w", attrs.Family, err)
	}
	return &ttfShaper{face: face, attrs: attrs, upem: float64(face.Upem())}, nil
}

func (s *ttfShaper) ppem() fixed.Int26_6 {
	return fixed.Int26_6(s.attrs.Size*64 + 0.5)
}

func (s *ttfShaper) direction() di.Direction {
	if s.attrs.RTL {
		return di.DirectionRTL
	}
	return di.DirectionLTR
}

func (s *ttfShaper) shapeLine(text string) shaping.Output {
	runes := []rune(text)
	in := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: s.direction(),
		Face:      s.face,
		Size:      s.ppem(),
		Script:    language.Common,
		Language:  language.NewLanguage("und"),
	}
	return s.shaper.Shape(in)
}

// Metrics reports the face's line metrics at attrs.Size, read off the
// shaper's own LineBounds (the same field the gio text shaper uses to
// accumulate line ascent/descent across runs).
func (s *ttfShaper) Metrics() Metrics {
	out := s.shapeLine(" ")
	ascent := fixedToFloat(out.LineBounds.Ascent)
	descent := fixedToFloat(-out.LineBounds.Descent)
	gap := fixedToFloat(out.LineBounds.Gap)
	return Metrics{
		Height:       ascent + descent + gap,
		Ascent:       ascent,
		Descent:      descent,
		InternalLead: gap * 0.5,
		ExternalLead: gap * 0.5,
	}
}

func (s *ttfShaper) Width(text string) float64 {
	if text == "" {
		return 0
	}
	out := s.shapeLine(text)
	return fixedToFloat(out.Advance)
}

// AppendOutline shapes text into glyphs and appends each glyph's outline
// segments to dst as cubic path operations (quadratics are degree-elevated
// to cubics, since path.Path only carries move/line/cubic/arc/close), in
// left-to-right pen order starting at (originX, originY).
func (s *ttfShaper) AppendOutline(dst *path.Path, text string, originX, originY float64) {
	if text == "" {
		return
	}
	out := s.shapeLine(text)
	pen := originX
	scale := s.attrs.Size / s.upem

	for _, g := range out.Glyphs {
		if outline, ok := s.face.GlyphData(g.GlyphID).(api.GlyphOutline); ok {
			appendGlyphSegments(dst, outline.Segments, pen+fixedToFloat(g.XOffset), originY-fixedToFloat(g.YOffset), scale)
		}
		pen += fixedToFloat(g.XAdvance)
	}
}

func appendGlyphSegments(dst *path.Path, segs []api.Segment, ox, oy, scale float64) {
	tx := func(p api.SegmentPoint) (float64, float64) {
		return ox + float64(p.X)*scale, oy - float64(p.Y)*scale
	}
	var curX, curY float64
	for _, seg := range segs {
		switch seg.Op {
		case api.SegmentOpMoveTo:
			x, y := tx(seg.Args[0])
			dst.MoveTo(x, y)
			curX, curY = x, y
		case api.SegmentOpLineTo:
			x, y := tx(seg.Args[0])
			dst.LineTo(x, y)
			curX, curY = x, y
		case api.SegmentOpQuadTo:
			cx, cy := tx(seg.Args[0])
			x, y := tx(seg.Args[1])
			// Degree-elevate the quadratic to a cubic: c1 = p0 + 2/3(c-p0),
			// c2 = p1 + 2/3(c-p1).
			c1x, c1y := curX+2.0/3.0*(cx-curX), curY+2.0/3.0*(cy-curY)
			c2x, c2y := x+2.0/3.0*(cx-x), y+2.0/3.0*(cy-y)
			dst.CubicTo(c1x, c1y, c2x, c2y, x, y)
			curX, curY = x, y
		case api.SegmentOpCubeTo:
			c1x, c1y := tx(seg.Args[0])
			c2x, c2y := tx(seg.Args[1])
			x, y := tx(seg.Args[2])
			dst.CubicTo(c1x, c1y, c2x, c2y, x, y)
			curX, curY = x, y
		}
	}
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
