package raster

import (
	"image"

	"nitro-core-dx/internal/path"
	"nitro-core-dx/internal/ssb"
	"nitro-core-dx/internal/state"
)

// fillColors expands a tag's colour/alpha pair into the four corners
// FillMeshGradient expects (TL,TR,BR,BL), broadcasting a scalar side against
// a 4-entry side. solid reports whether both colours and alphas are scalar,
// letting the caller take the cheaper FillSolid path.
func fillColors(colors []ssb.Color, alphas []float64) ([4]path.CornerColor, bool) {
	var out [4]path.CornerColor
	solid := len(colors) <= 1 && len(alphas) <= 1
	for i := 0; i < 4; i++ {
		c := cornerOf(colors, i)
		a := alphaOf(alphas, i)
		out[i] = path.CornerColor{R: c.R, G: c.G, B: c.B, A: a}
	}
	return out, solid
}

func cornerOf(colors []ssb.Color, i int) ssb.Color {
	switch len(colors) {
	case 0:
		return ssb.Color{}
	case 4:
		return colors[i]
	default:
		return colors[0]
	}
}

func alphaOf(alphas []float64, i int) float64 {
	switch len(alphas) {
	case 0:
		return 1
	case 4:
		return alphas[i]
	default:
		return alphas[0]
	}
}

// applyTextureFill samples the texture= image over transformed (the
// geometry's own already-transformed shape, so texture coverage matches the
// fill exactly) and atop-composites it onto tile, recolouring without
// altering the antialiased shape the solid/gradient fill already produced.
// texfill= anchors the image's origin at (localExtents.MinX+TexFillX,
// localExtents.MinY+TexFillY) in the geometry's own local space before the
// state/frame transform is applied, so the texture moves and scales with the
// geometry exactly like its fill colour would.
func applyTextureFill(tile *image.RGBA, transformed []path.Polyline, localExtents path.Extents, full path.Matrix, originX, originY float64, st *state.State, cfg Config) {
	img, err := cfg.Textures.LoadScaled(st.TextureFile, scaleOrOne(cfg.FrameScale))
	if err != nil {
		return
	}
	anchor := path.Translate(localExtents.MinX+st.TexFillX, localExtents.MinY+st.TexFillY)
	matrix := anchor.Mul(full)

	b := tile.Bounds()
	pattern := path.FillPattern(transformed, b.Dx(), b.Dy(), originX, originY, img, matrix, st.TexWrap)
	composeAtop(tile, pattern)
}
