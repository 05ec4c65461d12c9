package raster

import (
	"image"

	"nitro-core-dx/internal/path"
	"nitro-core-dx/internal/ssb"
	"nitro-core-dx/internal/state"
)

// applyKaraoke recolors tile in place once karaoke tracking is active.
// localExtents is the geometry's untransformed extents (the same space the
// mesh-gradient fill uses); fullMatrix is the transform already baked into
// the tile's polygons; tileOriginX/Y are the absolute coordinates the
// tile's top-left pixel sits at, matching the FillSolid call that produced
// it, so a freshly rasterized mask lines up pixel-for-pixel.
func applyKaraoke(tile *image.RGBA, tileOriginX, tileOriginY float64, localExtents path.Extents, fullMatrix path.Matrix, st *state.State, elapsedMS float64) {
	if st.KaraokeStartMS < 0 {
		return
	}
	karaokeEnd := st.KaraokeStartMS + st.KaraokeDurationMS
	col := karaokeCornerColor(st)

	switch {
	case elapsedMS >= karaokeEnd:
		full := solidMask(tile.Bounds(), col)
		composeAtop(tile, full)
	case elapsedMS >= st.KaraokeStartMS:
		p := 0.0
		if st.KaraokeDurationMS > 0 {
			p = (elapsedMS - st.KaraokeStartMS) / st.KaraokeDurationMS
		}
		if p < 0 {
			p = 0
		}
		if p > 1 {
			p = 1
		}
		rectPolys := path.Flatten(subRectPath(localExtents, p, st.Direction))
		rectPolys = transformPolys(rectPolys, fullMatrix)
		mask := path.FillSolid(rectPolys, tile.Bounds().Dx(), tile.Bounds().Dy(), tileOriginX, tileOriginY, col)
		composeAtop(tile, mask)
	}
}

func karaokeCornerColor(st *state.State) path.CornerColor {
	c := st.KaraokeColor
	return path.CornerColor{R: c.R, G: c.G, B: c.B, A: 1}
}

func solidMask(b image.Rectangle, col path.CornerColor) *image.RGBA {
	img := image.NewRGBA(b)
	a := uint8(255)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			i := img.PixOffset(x, y)
			img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = col.R, col.G, col.B, a
		}
	}
	return img
}

// subRectPath builds the revealed sub-rectangle of extents at progress p,
// oriented by direction: LTR/TTB reveal from their leading edge (left,
// top); RTL reveals from the right edge leftward.
func subRectPath(ext path.Extents, p float64, dir ssb.Direction) *path.Path {
	minX, minY, maxX, maxY := ext.MinX, ext.MinY, ext.MaxX, ext.MaxY
	switch dir {
	case ssb.DirRTL:
		minX = maxX - p*ext.Width()
	case ssb.DirTTB:
		maxY = minY + p*ext.Height()
	default: // DirLTR
		maxX = minX + p*ext.Width()
	}
	p2 := path.New()
	p2.MoveTo(minX, minY)
	p2.LineTo(maxX, minY)
	p2.LineTo(maxX, maxY)
	p2.LineTo(minX, maxY)
	p2.Close()
	return p2
}

func transformPolys(polys []path.Polyline, m path.Matrix) []path.Polyline {
	return path.TransformPolylines(polys, m)
}
