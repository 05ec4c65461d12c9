package state

import (
	"nitro-core-dx/internal/expr"
	"nitro-core-dx/internal/path"
	"nitro-core-dx/internal/ssb"
)

// Apply mutates s according to tag and reports whether the position group
// or the stencil mode changed, mirroring a CPU's instruction switch (one
// case per opcode, each touching only the fields it owns).
func (s *State) Apply(tag ssb.Tag, innerMS, innerDuration float64) (posChanged, stencilChanged bool) {
	switch tag.Kind {
	case ssb.TagFontFamily:
		s.FontFamily = tag.FontFamily
	case ssb.TagFontStyle:
		s.Bold, s.Italic, s.Underline, s.Strikeout = tag.Bold, tag.Italic, tag.Underline, tag.Strikeout
	case ssb.TagFontSize:
		s.FontSize = tag.FontSize
	case ssb.TagFontSpace:
		s.SpaceH, s.SpaceV = tag.SpaceH, tag.SpaceV
	case ssb.TagLineWidth:
		s.LineWidth = tag.LineWidth
	case ssb.TagLineStyle:
		s.LineJoin, s.LineCap = tag.LineJoin, tag.LineCap
	case ssb.TagLineDash:
		s.Dashes = append([]float64(nil), tag.Dashes...)
		s.DashOffset = tag.DashOffset
	case ssb.TagMode:
		s.Mode = tag.Mode
	case ssb.TagDeform:
		s.DeformExprX, s.DeformExprY = tag.DeformExprX, tag.DeformExprY
	case ssb.TagPosition:
		setPosition(s, tag)
		posChanged = true
	case ssb.TagAlign:
		s.Align = tag.Align
	case ssb.TagMargin:
		s.MarginH, s.MarginV = tag.MarginH, tag.MarginV
	case ssb.TagDirection:
		s.Direction = tag.Direction
	case ssb.TagIdentity:
		s.Matrix = path.Identity()
	case ssb.TagAffine:
		s.Matrix = s.Matrix.Mul(affineMatrix(tag))
	case ssb.TagColor:
		s.Colors = resizeColors(tag.Colors)
	case ssb.TagAlpha:
		s.Alphas = resizeAlphas(tag.Alphas)
	case ssb.TagLineColor:
		s.LineColors = resizeColors(tag.Colors)
	case ssb.TagLineAlpha:
		s.LineAlphas = resizeAlphas(tag.Alphas)
	case ssb.TagTexture:
		s.TextureFile = tag.TextureFile
	case ssb.TagTexFill:
		s.TexFillX, s.TexFillY, s.TexWrap = tag.TexFillX, tag.TexFillY, tag.TexWrap
	case ssb.TagBlend:
		s.Blend = tag.Blend
	case ssb.TagBlur:
		s.BlurH, s.BlurV = tag.BlurH, tag.BlurV
	case ssb.TagStencil:
		if s.Stencil != tag.Stencil {
			stencilChanged = true
		}
		s.Stencil = tag.Stencil
	case ssb.TagFade:
		applyFade(s, tag, innerMS, innerDuration)
	case ssb.TagAnimate:
		stencilChanged = applyAnimate(s, tag, innerMS, innerDuration)
	case ssb.TagKaraoke:
		applyKaraoke(s, tag)
	case ssb.TagKaraokeColor:
		s.KaraokeColor = tag.KaraokeColor
	case ssb.TagKaraokeMode:
		s.KaraokeStyle = tag.KaraokeStyle
	}
	return posChanged, stencilChanged
}

func setPosition(s *State, tag ssb.Tag) {
	if ssb.IsUnset(tag.PosX) && ssb.IsUnset(tag.PosY) {
		s.PosX, s.PosY = ssb.Unset, ssb.Unset
		return
	}
	s.PosX, s.PosY = tag.PosX, tag.PosY
}

func affineMatrix(tag ssb.Tag) path.Matrix {
	switch tag.AffineOp {
	case ssb.AffineTranslate:
		return path.Translate(tag.Args[0], tag.Args[1])
	case ssb.AffineScale:
		return path.Scale(tag.Args[0], tag.Args[1])
	case ssb.AffineRotate:
		return path.Rotate(tag.Args[0])
	case ssb.AffineRotateXY:
		return path.RotateXY(tag.Args[0], tag.Args[1])
	case ssb.AffineRotateYX:
		return path.RotateYX(tag.Args[0], tag.Args[1])
	case ssb.AffineShear:
		return path.Shear(tag.Args[0], tag.Args[1])
	case ssb.AffineTransform:
		return path.Matrix{A: tag.Args[0], B: tag.Args[1], C: tag.Args[2], D: tag.Args[3], E: tag.Args[4], F: tag.Args[5]}
	}
	return path.Identity()
}

// resizeColors implements the "resize to 1 vs resize to 4" rule: zero or
// one colour is copied through as is, two or more become exactly 4
// entries. A short input is broadcast in corner order
// TL,TR,BR,BL: the last given entry continues to BR, then BL wraps back to
// the first entry, so a 2-value `cl=c0,c1` fills {c0,c1,c1,c0}, not
// {c0,c1,c1,c1}.
func resizeColors(in []ssb.Color) []ssb.Color {
	if len(in) <= 1 {
		return append([]ssb.Color(nil), in...)
	}
	out := make([]ssb.Color, 4)
	for i := range out {
		switch {
		case i < len(in):
			out[i] = in[i]
		case i == len(out)-1:
			out[i] = in[0]
		default:
			out[i] = in[len(in)-1]
		}
	}
	return out
}

func resizeAlphas(in []float64) []float64 {
	if len(in) == 0 {
		return []float64{1}
	}
	if len(in) == 1 || in[0] < 0 {
		v := in[0]
		if v < 0 {
			v = -v
		}
		return []float64{v}
	}
	out := make([]float64, 4)
	for i := range out {
		switch {
		case i < len(in):
			out[i] = in[i]
		case i == len(out)-1:
			out[i] = in[0]
		default:
			out[i] = in[len(in)-1]
		}
	}
	return out
}

// applyFade multiplies every fill and line alpha by the fade progress.
// Fade has no effect when invoked from inside animate (callers must not
// route an animate's inner fade tag here; see applyAnimate).
func applyFade(s *State, tag ssb.Tag, innerMS, innerDuration float64) {
	s.FadeInMS, s.FadeOutMS = tag.FadeInMS, tag.FadeOutMS
	p := FadeProgress(tag.FadeInMS, tag.FadeOutMS, innerMS, innerDuration)
	if p >= 1 {
		return
	}
	for i := range s.Alphas {
		s.Alphas[i] *= p
	}
	for i := range s.LineAlphas {
		s.LineAlphas[i] *= p
	}
}

// FadeProgress computes the fade-in/fade-out progress value: ramping up
// during the first fadeInMS, steady at 1 in the middle, ramping down
// during the last fadeOutMS before innerDuration.
func FadeProgress(fadeInMS, fadeOutMS, innerMS, innerDuration float64) float64 {
	if fadeInMS > 0 && innerMS < fadeInMS {
		return innerMS / fadeInMS
	}
	if fadeOutMS > 0 && innerDuration-innerMS < fadeOutMS {
		return (innerDuration - innerMS) / fadeOutMS
	}
	return 1
}

func applyKaraoke(s *State, tag ssb.Tag) {
	switch tag.KaraokeAdvance {
	case ssb.KaraokeDuration:
		if s.KaraokeStartMS < 0 {
			s.KaraokeStartMS = 0
		} else {
			s.KaraokeStartMS += s.KaraokeDurationMS
		}
		s.KaraokeDurationMS = tag.KaraokeMS
	case ssb.KaraokeSet:
		s.KaraokeStartMS = tag.KaraokeMS
		s.KaraokeDurationMS = 0
	}
}

// applyAnimate resolves the animate window, computes progress, and
// interpolates or switches each inner tag into s. Returns whether a
// stencil-mode inner tag switched (the only way animate can change
// stencil_changed).
func applyAnimate(s *State, tag ssb.Tag, innerMS, innerDuration float64) bool {
	start, end := tag.AnimStart, tag.AnimEnd
	switch {
	case ssb.IsUnset(start) && ssb.IsUnset(end):
		start, end = 0, innerDuration
	default:
		if start < 0 {
			start = innerDuration + start
		}
		if end < 0 {
			end = innerDuration + end
		}
	}

	p := 0.0
	if end != start {
		p = (innerMS - start) / (end - start)
	}
	if p < 0 {
		p = 0
	}
	if p > 1 {
		p = 1
	}

	if tag.AnimExpr != "" {
		if e, err := expr.Parse(tag.AnimExpr); err == nil {
			if v, err := e.Eval(map[string]float64{"t": p}); err == nil {
				p = v
			}
		}
	}

	stencilChanged := false
	for i := range tag.AnimInner {
		if animateInnerTag(s, tag.AnimInner[i], p) {
			stencilChanged = true
		}
	}
	return stencilChanged
}
