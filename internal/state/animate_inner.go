package state

import (
	"nitro-core-dx/internal/path"
	"nitro-core-dx/internal/ssb"
)

func lerp(a, b, p float64) float64 { return a + (b-a)*p }

// animateInnerTag applies one of an animate tag's inner tags to s at
// progress p, interpolating numeric fields and switching discrete fields
// only once p reaches 1. Reports whether it changed the stencil mode.
func animateInnerTag(s *State, tag ssb.Tag, p float64) (stencilChanged bool) {
	switch tag.Kind {
	case ssb.TagFontSize:
		s.FontSize = lerp(s.FontSize, tag.FontSize, p)
	case ssb.TagFontSpace:
		s.SpaceH = lerp(s.SpaceH, tag.SpaceH, p)
		s.SpaceV = lerp(s.SpaceV, tag.SpaceV, p)
	case ssb.TagLineWidth:
		s.LineWidth = lerp(s.LineWidth, tag.LineWidth, p)
	case ssb.TagMargin:
		s.MarginH = lerp(s.MarginH, tag.MarginH, p)
		s.MarginV = lerp(s.MarginV, tag.MarginV, p)
	case ssb.TagBlur:
		s.BlurH = lerp(s.BlurH, tag.BlurH, p)
		s.BlurV = lerp(s.BlurV, tag.BlurV, p)
	case ssb.TagLineDash:
		s.DashOffset = lerp(s.DashOffset, tag.DashOffset, p)
		if len(s.Dashes) == len(tag.Dashes) {
			out := make([]float64, len(s.Dashes))
			for i := range out {
				out[i] = lerp(s.Dashes[i], tag.Dashes[i], p)
			}
			s.Dashes = out
		} else if p >= 1 {
			s.Dashes = append([]float64(nil), tag.Dashes...)
		}
	case ssb.TagTexFill:
		s.TexFillX = lerp(s.TexFillX, tag.TexFillX, p)
		s.TexFillY = lerp(s.TexFillY, tag.TexFillY, p)
		if p >= 1 {
			s.TexWrap = tag.TexWrap
		}
	case ssb.TagColor:
		s.Colors = lerpColors(s.Colors, resizeColors(tag.Colors), p)
	case ssb.TagAlpha:
		s.Alphas = lerpAlphas(s.Alphas, resizeAlphas(tag.Alphas), p)
	case ssb.TagLineColor:
		s.LineColors = lerpColors(s.LineColors, resizeColors(tag.Colors), p)
	case ssb.TagLineAlpha:
		s.LineAlphas = lerpAlphas(s.LineAlphas, resizeAlphas(tag.Alphas), p)
	case ssb.TagAffine:
		s.Matrix = s.Matrix.Mul(animatedAffineDelta(tag, p))

	case ssb.TagFontFamily:
		if p >= 1 {
			s.FontFamily = tag.FontFamily
		}
	case ssb.TagFontStyle:
		if p >= 1 {
			s.Bold, s.Italic, s.Underline, s.Strikeout = tag.Bold, tag.Italic, tag.Underline, tag.Strikeout
		}
	case ssb.TagMode:
		if p >= 1 {
			s.Mode = tag.Mode
		}
	case ssb.TagLineStyle:
		if p >= 1 {
			s.LineJoin, s.LineCap = tag.LineJoin, tag.LineCap
		}
	case ssb.TagAlign:
		if p >= 1 {
			s.Align = tag.Align
		}
	case ssb.TagDirection:
		if p >= 1 {
			s.Direction = tag.Direction
		}
	case ssb.TagTexture:
		if p >= 1 {
			s.TextureFile = tag.TextureFile
		}
	case ssb.TagBlend:
		if p >= 1 {
			s.Blend = tag.Blend
		}
	case ssb.TagStencil:
		if p >= 1 && s.Stencil != tag.Stencil {
			s.Stencil = tag.Stencil
			stencilChanged = true
		}
	case ssb.TagKaraokeColor:
		if p >= 1 {
			s.KaraokeColor = tag.KaraokeColor
		}
	case ssb.TagKaraokeMode:
		if p >= 1 {
			s.KaraokeStyle = tag.KaraokeStyle
		}
	case ssb.TagPosition:
		// Not continuously interpolable; treated as discrete like the
		// other enum/one-shot tags above.
		if p >= 1 {
			setPosition(s, tag)
		}
	case ssb.TagIdentity:
		if p >= 1 {
			s.Matrix = path.Identity()
		}

	case ssb.TagFade, ssb.TagAnimate, ssb.TagKaraoke:
		// Ignored inside animate.
	}
	return stencilChanged
}

func lerpColors(cur, target []ssb.Color, p float64) []ssb.Color {
	if len(cur) != len(target) {
		// Arity mismatch: hold the current value until the switch point
		// rather than indexing out of range.
		if p < 1 {
			return cur
		}
		return target
	}
	out := make([]ssb.Color, len(cur))
	for i := range out {
		out[i] = ssb.Color{
			R: lerpByte(cur[i].R, target[i].R, p),
			G: lerpByte(cur[i].G, target[i].G, p),
			B: lerpByte(cur[i].B, target[i].B, p),
		}
	}
	return out
}

func lerpAlphas(cur, target []float64, p float64) []float64 {
	if len(cur) != len(target) {
		if p < 1 {
			return cur
		}
		return target
	}
	out := make([]float64, len(cur))
	for i := range out {
		out[i] = lerp(cur[i], target[i], p)
	}
	return out
}

// animatedAffineDelta builds the interpolated-toward-target delta matrix
// for an affine inner tag: diagonal terms ease from 1 (identity) toward
// their target value via 1+p*(v-1), everything else eases from 0 toward
// its target via p*v. At p=0 this is the identity (no-op multiply); at
// p=1 it is exactly the tag's own affine matrix.
func animatedAffineDelta(tag ssb.Tag, p float64) path.Matrix {
	target := affineMatrix(tag)
	return path.Matrix{
		A: 1 + p*(target.A-1),
		B: p * target.B,
		C: p * target.C,
		D: 1 + p*(target.D-1),
		E: p * target.E,
		F: p * target.F,
	}
}

func lerpByte(a, b uint8, p float64) uint8 {
	v := lerp(float64(a), float64(b), p)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
