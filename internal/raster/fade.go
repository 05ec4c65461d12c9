package raster

import (
	"image"

	"nitro-core-dx/internal/state"
)

// ApplyFade scales a tile's alpha (and its premultiplied colour channels) by
// the fade ratio appropriate to innerMS, given the tile's own fade window.
// A renderer calls this once per tile per frame, whether the tile was just
// produced by RasterizeEvent or replayed from the event cache, so a cached
// tile's fade level always tracks the frame it is blended into rather than
// the frame it was first rasterized on.
func ApplyFade(img *image.RGBA, fadeInMS, fadeOutMS, innerMS, innerDuration float64) {
	if img == nil {
		return
	}
	ratio := state.FadeProgress(fadeInMS, fadeOutMS, innerMS, innerDuration)
	if ratio >= 1 {
		return
	}
	if ratio <= 0 {
		clearAlpha(img)
		return
	}
	scaleAlpha(img, ratio)
}

func clearAlpha(img *image.RGBA) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			off := img.PixOffset(x, y)
			img.Pix[off], img.Pix[off+1], img.Pix[off+2], img.Pix[off+3] = 0, 0, 0, 0
		}
	}
}

func scaleAlpha(img *image.RGBA, ratio float64) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			off := img.PixOffset(x, y)
			for c := 0; c < 4; c++ {
				img.Pix[off+c] = clampByte(int(float64(img.Pix[off+c])*ratio + 0.5))
			}
		}
	}
}
