package path

import (
	"image"
	"image/color"

	"golang.org/x/image/vector"

	"nitro-core-dx/internal/ssb"
)

// rasterizeCoverage builds an antialiased scanline rasterizer over polys,
// translated so that (originX,originY) lands at pixel (0,0) of a w x h
// surface, using golang.org/x/image/vector.
func rasterizeCoverage(polys []Polyline, w, h int, originX, originY float64) *vector.Rasterizer {
	z := vector.NewRasterizer(w, h)
	for _, pl := range polys {
		if len(pl.Pts) == 0 {
			continue
		}
		p0 := pl.Pts[0]
		z.MoveTo(float32(p0.X-originX), float32(p0.Y-originY))
		for _, p := range pl.Pts[1:] {
			z.LineTo(float32(p.X-originX), float32(p.Y-originY))
		}
		z.ClosePath()
	}
	return z
}

// CornerColor is one corner of a 4-corner colour/alpha pattern.
type CornerColor struct {
	R, G, B uint8
	A       float64 // 0..1
}

// FillSolid rasterizes polys (non-zero winding, antialiased) into a w x h
// premultiplied ARGB32 tile (represented as *image.RGBA, Go's native
// premultiplied-alpha layout), filled uniformly with col.
func FillSolid(polys []Polyline, w, h int, originX, originY float64, col CornerColor) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	z := rasterizeCoverage(polys, w, h, originX, originY)
	src := image.NewUniform(color.NRGBA{R: col.R, G: col.G, B: col.B, A: uint8(clamp01(col.A) * 255)})
	z.Draw(dst, dst.Bounds(), src, image.Point{})
	return dst
}

// FillMeshGradient rasterizes polys into a w x h tile filled with a
// bilinear 4-corner gradient (TL,TR,BR,BL) spanning the untransformed
// extents rectangle (rectW x rectH, anchored at rectOriginX/Y in the same
// space as originX/Y).
func FillMeshGradient(polys []Polyline, w, h int, originX, originY float64, rectOriginX, rectOriginY, rectW, rectH float64, corners [4]CornerColor) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	z := rasterizeCoverage(polys, w, h, originX, originY)
	src := &meshGradientImage{
		bounds:   image.Rect(0, 0, w, h),
		originX:  originX - rectOriginX,
		originY:  originY - rectOriginY,
		w:        rectW,
		h:        rectH,
		corners:  corners,
	}
	z.Draw(dst, dst.Bounds(), src, image.Point{})
	return dst
}

// FillPattern rasterizes polys into a w x h tile sampled from srcImg, whose
// sample coordinates are srcImg-space = inverse(matrix) applied to
// tile-space, with wrap applied per wrapMode.
func FillPattern(polys []Polyline, w, h int, originX, originY float64, srcImg image.Image, matrix Matrix, wrapMode ssb.WrapMode) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	z := rasterizeCoverage(polys, w, h, originX, originY)
	src := &patternImage{
		bounds:  image.Rect(0, 0, w, h),
		originX: originX,
		originY: originY,
		src:     srcImg,
		inv:     invert(matrix),
		wrap:    wrapMode,
	}
	z.Draw(dst, dst.Bounds(), src, image.Point{})
	return dst
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func invert(m Matrix) Matrix {
	det := m.A*m.D - m.B*m.C
	if det == 0 {
		return Identity()
	}
	ia := m.D / det
	ib := -m.B / det
	ic := -m.C / det
	id := m.A / det
	ie := -(m.E*ia + m.F*ic)
	ifv := -(m.E*ib + m.F*id)
	return Matrix{A: ia, B: ib, C: ic, D: id, E: ie, F: ifv}
}

type meshGradientImage struct {
	bounds  image.Rectangle
	originX, originY float64
	w, h    float64
	corners [4]CornerColor // TL, TR, BR, BL
}

func (m *meshGradientImage) ColorModel() color.Model { return color.NRGBAModel }
func (m *meshGradientImage) Bounds() image.Rectangle { return m.bounds }

func (m *meshGradientImage) At(px, py int) color.Color {
	x := float64(px) + m.originX
	y := float64(py) + m.originY
	u, v := 0.0, 0.0
	if m.w > 0 {
		u = clamp01(x / m.w)
	}
	if m.h > 0 {
		v = clamp01(y / m.h)
	}
	top := lerpCorner(m.corners[0], m.corners[1], u)
	bot := lerpCorner(m.corners[3], m.corners[2], u)
	c := lerpCorner(top, bot, v)
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(clamp01(c.A) * 255)}
}

func lerpCorner(a, b CornerColor, t float64) CornerColor {
	l := func(x, y uint8) uint8 { return uint8(float64(x) + (float64(y)-float64(x))*t) }
	return CornerColor{
		R: l(a.R, b.R),
		G: l(a.G, b.G),
		B: l(a.B, b.B),
		A: a.A + (b.A-a.A)*t,
	}
}

type patternImage struct {
	bounds           image.Rectangle
	originX, originY float64
	src              image.Image
	inv              Matrix
	wrap             ssb.WrapMode
}

func (p *patternImage) ColorModel() color.Model { return color.NRGBAModel }
func (p *patternImage) Bounds() image.Rectangle { return p.bounds }

func (p *patternImage) At(px, py int) color.Color {
	x := float64(px) + p.originX
	y := float64(py) + p.originY
	sx, sy := p.inv.Apply(x, y)

	sb := p.src.Bounds()
	sw, sh := sb.Dx(), sb.Dy()
	if sw == 0 || sh == 0 {
		return color.NRGBA{}
	}
	ix, oky := wrapCoord(sx, sw, p.wrap)
	iy, okx := wrapCoord(sy, sh, p.wrap)
	if !oky || !okx {
		return color.NRGBA{}
	}
	return p.src.At(sb.Min.X+ix, sb.Min.Y+iy)
}

// wrapCoord maps a continuous source coordinate into [0,size) per wrap
// mode. ok is false only for WrapClamp-style "outside" handling is not
// applicable here (clamp always succeeds); it exists so future wrap modes
// that can legitimately miss (e.g. a hard edge) have a place to signal it.
func wrapCoord(v float64, size int, wrap ssb.WrapMode) (int, bool) {
	if size <= 0 {
		return 0, false
	}
	switch wrap {
	case ssb.WrapClamp:
		i := int(v)
		if i < 0 {
			i = 0
		}
		if i >= size {
			i = size - 1
		}
		return i, true
	case ssb.WrapRepeat, ssb.WrapFlow:
		i := int(v) % size
		if i < 0 {
			i += size
		}
		return i, true
	case ssb.WrapMirror:
		period := size * 2
		i := int(v) % period
		if i < 0 {
			i += period
		}
		if i >= size {
			i = period - 1 - i
		}
		return i, true
	default:
		return 0, false
	}
}
