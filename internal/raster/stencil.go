package raster

import "image"

// Stencil is the event's A8 scratch mask, sized to the destination frame.
// Its lifetime matches one render() call's stencil scratch: cleared at the
// start of every event and again once the event finishes (source over
// transparent).
type Stencil struct {
	W, H int
	Pix  []byte
}

// NewStencil allocates a cleared stencil covering a w x h destination.
func NewStencil(w, h int) *Stencil {
	return &Stencil{W: w, H: h, Pix: make([]byte, w*h)}
}

// Clear resets every stencil pixel to fully unset (0).
func (s *Stencil) Clear() {
	for i := range s.Pix {
		s.Pix[i] = 0
	}
}

// Resize reallocates the stencil for a new destination size, used by
// set_target.
func (s *Stencil) Resize(w, h int) {
	s.W, s.H = w, h
	s.Pix = make([]byte, w*h)
}

// forEachOverlap iterates the pixels of tile (origin tileX,tileY) that
// overlap the stencil, calling fn with the stencil index and the tile's
// alpha byte at that pixel.
func (s *Stencil) forEachOverlap(tile *image.RGBA, tileX, tileY int, fn func(stencilIdx int, tileAlpha byte)) {
	b := tile.Bounds()
	for ty := b.Min.Y; ty < b.Max.Y; ty++ {
		dy := tileY + (ty - b.Min.Y)
		if dy < 0 || dy >= s.H {
			continue
		}
		for tx := b.Min.X; tx < b.Max.X; tx++ {
			dx := tileX + (tx - b.Min.X)
			if dx < 0 || dx >= s.W {
				continue
			}
			a := tile.Pix[tile.PixOffset(tx, ty)+3]
			fn(dy*s.W+dx, a)
		}
	}
}

// ApplySet additively ORs (saturating add) the tile's alpha into the
// stencil; the tile is not blended onto the frame.
func (s *Stencil) ApplySet(tile *image.RGBA, tileX, tileY int) {
	s.forEachOverlap(tile, tileX, tileY, func(i int, a byte) {
		s.Pix[i] = clampByte(int(s.Pix[i]) + int(a))
	})
}

// ApplyUnset inverts the tile's alpha (XOR with opaque) then intersects it
// with the existing stencil; the tile is not blended onto the frame.
func (s *Stencil) ApplyUnset(tile *image.RGBA, tileX, tileY int) {
	s.forEachOverlap(tile, tileX, tileY, func(i int, a byte) {
		inv := 255 - int(a)
		s.Pix[i] = byte(int(s.Pix[i]) * inv / 255)
	})
}

// MaskInside multiplies tile's alpha (and premultiplied channels) by the
// stencil's coverage fraction, in place (DEST_IN by the stencil).
func (s *Stencil) MaskInside(tile *image.RGBA, tileX, tileY int) {
	s.maskBy(tile, tileX, tileY, false)
}

// MaskOutside multiplies tile's alpha by the inverse stencil coverage, in
// place (DEST_OUT by the stencil).
func (s *Stencil) MaskOutside(tile *image.RGBA, tileX, tileY int) {
	s.maskBy(tile, tileX, tileY, true)
}

func (s *Stencil) maskBy(tile *image.RGBA, tileX, tileY int, invert bool) {
	b := tile.Bounds()
	for ty := b.Min.Y; ty < b.Max.Y; ty++ {
		dy := tileY + (ty - b.Min.Y)
		for tx := b.Min.X; tx < b.Max.X; tx++ {
			dx := tileX + (tx - b.Min.X)
			i := tile.PixOffset(tx, ty)
			var m int
			if dy < 0 || dy >= s.H || dx < 0 || dx >= s.W {
				m = 0
			} else {
				m = int(s.Pix[dy*s.W+dx])
			}
			if invert {
				m = 255 - m
			}
			for c := 0; c < 4; c++ {
				tile.Pix[i+c] = clampByte(int(tile.Pix[i+c]) * m / 255)
			}
		}
	}
}
