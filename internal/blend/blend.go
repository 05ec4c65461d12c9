// Package blend composites a premultiplied ARGB32 tile onto a bottom-up
// BGR/BGRX/BGRA destination frame, one pixel format x blend mode pair at a
// time, mirroring the per-opcode switch style used for the render state
// machine.
package blend

import (
	"image"

	"nitro-core-dx/internal/ssb"
)

// Format is the destination frame's pixel layout.
type Format int

const (
	FormatBGR Format = iota
	FormatBGRX
	FormatBGRA
)

func (f Format) bytesPerPixel() int {
	if f == FormatBGR {
		return 3
	}
	return 4
}

// Frame is a bottom-up destination surface: row 0 in pix is the bottom
// scanline, matching the layout most video sinks hand the renderer.
type Frame struct {
	Pix    []byte
	Stride int
	Width  int
	Height int
	Format Format
}

func (f *Frame) rowOffset(y int) int {
	// bottom-up: the last row in the buffer is y=0 in image space.
	return (f.Height - 1 - y) * f.Stride
}

// Tile composites src onto dst at (dstX,dstY) using mode, clipping to the
// destination bounds. Pixels with source alpha 0 are skipped.
func Tile(dst *Frame, dstX, dstY int, src *image.RGBA, mode ssb.BlendMode) {
	sb := src.Bounds()
	for sy := 0; sy < sb.Dy(); sy++ {
		dy := dstY + sy
		if dy < 0 || dy >= dst.Height {
			continue
		}
		rowOff := dst.rowOffset(dy)
		srcRow := sb.Min.Y + sy
		for sx := 0; sx < sb.Dx(); sx++ {
			dx := dstX + sx
			if dx < 0 || dx >= dst.Width {
				continue
			}
			i := src.PixOffset(sb.Min.X+sx, srcRow)
			sr, sg, sbch, sa := src.Pix[i], src.Pix[i+1], src.Pix[i+2], src.Pix[i+3]
			if sa == 0 {
				continue
			}
			// src is RGBA; destination channel order is BGR(X/A).
			blendPixel(dst, rowOff+dx*dst.Format.bytesPerPixel(), sbch, sg, sr, sa, mode)
		}
	}
}

func blendPixel(dst *Frame, off int, sB, sG, sR, sA byte, mode ssb.BlendMode) {
	p := dst.Pix
	hasAlpha := dst.Format == FormatBGRA
	dB, dG, dR := p[off], p[off+1], p[off+2]
	var dA byte = 255
	if hasAlpha {
		dA = p[off+3]
	}

	var outB, outG, outR, outA byte
	switch mode {
	case ssb.BlendAdd:
		outB, outG, outR = addByte(dB, sB), addByte(dG, sG), addByte(dR, sR)
		outA = addByte(dA, sA)
	case ssb.BlendSub:
		outB, outG, outR = subByte(dB, sB), subByte(dG, sG), subByte(dR, sR)
		outA = dA
	case ssb.BlendMul:
		outB, outG, outR, outA = blendUnpremultiplied(dB, dG, dR, dA, sB, sG, sR, sA, mulChannel)
	case ssb.BlendScreen:
		outB, outG, outR, outA = blendUnpremultiplied(dB, dG, dR, dA, sB, sG, sR, sA, screenChannel)
	case ssb.BlendDiff:
		outB, outG, outR, outA = blendUnpremultiplied(dB, dG, dR, dA, sB, sG, sR, sA, diffChannel)
	default: // ssb.BlendOver
		outB, outG, outR, outA = over(dB, sB, sA), over(dG, sG, sA), over(dR, sR, sA), over(dA, sA, sA)
	}

	p[off], p[off+1], p[off+2] = outB, outG, outR
	if hasAlpha {
		p[off+3] = outA
	}
}

func over(d, s, a byte) byte {
	inv := 255 - a
	return clampAdd(int(s), int(d)*int(inv)/255)
}

func addByte(d, s byte) byte { return clampAdd(int(d), int(s)) }

func subByte(d, s byte) byte {
	v := int(d) - int(s)
	if v < 0 {
		v = 0
	}
	return byte(v)
}

func clampAdd(a, b int) byte {
	v := a + b
	if v > 255 {
		return 255
	}
	if v < 0 {
		return 0
	}
	return byte(v)
}

func mulChannel(dPrime, sPrime int) int { return dPrime * sPrime / 255 }

func screenChannel(dPrime, sPrime int) int {
	return 255 - (255-dPrime)*(255-sPrime)/255
}

func diffChannel(dPrime, sPrime int) int {
	v := dPrime - sPrime
	if v < 0 {
		v = -v
	}
	return v
}

// blendUnpremultiplied unpremultiplies dst by dA, applies ch to each
// unpremultiplied channel against the (already-unpremultiplied, since src
// is solid-alpha-per-pixel premultiplied-by-its-own-alpha) source channel,
// then over-composites the result by the source alpha, updating dst alpha
// via the usual over rule.
func blendUnpremultiplied(dB, dG, dR, dA, sB, sG, sR, sA byte, ch func(d, s int) int) (byte, byte, byte, byte) {
	dBp, dGp, dRp := unpremul(dB, dA), unpremul(dG, dA), unpremul(dR, dA)
	sBp, sGp, sRp := unpremul(sB, sA), unpremul(sG, sA), unpremul(sR, sA)

	mixedB := ch(dBp, sBp)
	mixedG := ch(dGp, sGp)
	mixedR := ch(dRp, sRp)

	inv := 255 - int(sA)
	outB := clampAdd(mixedB*int(sA)/255, int(dB)*inv/255)
	outG := clampAdd(mixedG*int(sA)/255, int(dG)*inv/255)
	outR := clampAdd(mixedR*int(sA)/255, int(dR)*inv/255)
	outA := over(dA, sA, sA)
	return outB, outG, outR, outA
}

func unpremul(c, a byte) int {
	if a == 0 {
		return 0
	}
	v := int(c) * 255 / int(a)
	if v > 255 {
		return 255
	}
	return v
}
