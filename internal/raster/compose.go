package raster

import "image"

// composeOver, composeDestIn, composeDestOut, composeAtop and composeXorOpaque are
// Porter-Duff operators on two same-size, same-origin premultiplied ARGB32
// tiles, used internally to build border bands, karaoke overlays and
// stencil masks out of simpler fills.

func composeOver(dst, src *image.RGBA) {
	forEachPixelPair(dst, src, func(d, s []byte) {
		a := int(s[3])
		inv := 255 - a
		for c := 0; c < 4; c++ {
			d[c] = clampByte(int(s[c]) + int(d[c])*inv/255)
		}
	})
}

// composeDestIn keeps dst only where src has coverage, scaling dst's
// alpha (and premultiplied channels) by src's alpha fraction.
func composeDestIn(dst, src *image.RGBA) {
	forEachPixelPair(dst, src, func(d, s []byte) {
		a := int(s[3])
		for c := 0; c < 4; c++ {
			d[c] = clampByte(int(d[c]) * a / 255)
		}
	})
}

// composeDestOut erases dst wherever src has coverage.
func composeDestOut(dst, src *image.RGBA) {
	forEachPixelPair(dst, src, func(d, s []byte) {
		inv := 255 - int(s[3])
		for c := 0; c < 4; c++ {
			d[c] = clampByte(int(d[c]) * inv / 255)
		}
	})
}

// composeAtop paints src over dst but clipped to dst's existing coverage
// (used for the karaoke "fully sung" recolour, which should not spill
// outside the glyph/shape it recolours).
func composeAtop(dst, src *image.RGBA) {
	forEachPixelPair(dst, src, func(d, s []byte) {
		da := int(d[3])
		sa := int(s[3])
		inv := 255 - sa
		for c := 0; c < 4; c++ {
			d[c] = clampByte(int(s[c])*da/255 + int(d[c])*inv/255)
		}
	})
}

// composeXorOpaque inverts every channel of dst (alpha and premultiplied
// colour alike), i.e. XOR against a fully opaque source. Stencil.ApplyUnset
// does its own alpha inversion and does not call it.
func composeXorOpaque(dst *image.RGBA) {
	b := dst.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			i := dst.PixOffset(x, y)
			for c := 0; c < 4; c++ {
				dst.Pix[i+c] = 255 - dst.Pix[i+c]
			}
		}
	}
}

func forEachPixelPair(dst, src *image.RGBA, fn func(d, s []byte)) {
	b := dst.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			di := dst.PixOffset(x, y)
			si := src.PixOffset(x, y)
			fn(dst.Pix[di:di+4:di+4], src.Pix[si:si+4:si+4])
		}
	}
}

func clampByte(v int) byte {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return byte(v)
}
