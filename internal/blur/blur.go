// Package blur implements the separable box blur applied to rasterized
// tiles: one horizontal pass, one vertical pass, each parallelised across
// row/column stripes the way the logger fans log entries out across a
// worker goroutine, joined with a WaitGroup before returning.
package blur

import (
	"image"
	"runtime"
	"sync"
)

// Box applies a separable box blur with radius blurH horizontally and
// blurV vertically to an ARGB32 (premultiplied, *image.RGBA) tile in
// place. Both zero is a no-op.
func Box(img *image.RGBA, blurH, blurV float64) {
	if blurH <= 0 && blurV <= 0 {
		return
	}
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return
	}
	if blurH > 0 {
		blurHorizontal(img, blurH)
	}
	if blurV > 0 {
		blurVertical(img, blurV)
	}
}

// BoxAlpha applies the same kernel to an A8 (single-channel) surface, used
// for stencil and karaoke masks.
func BoxAlpha(pix []uint8, stride, w, h int, blurH, blurV float64) {
	if (blurH <= 0 && blurV <= 0) || w == 0 || h == 0 {
		return
	}
	if blurH > 0 {
		blurAlphaRows(pix, stride, w, h, blurH)
	}
	if blurV > 0 {
		blurAlphaCols(pix, stride, w, h, blurV)
	}
}

// kernel returns the 1D kernel weights for the given blur radius: a
// rectangle of 1s of width 2*radius+1 with fractional border weights
// (1-(radius-blur)) on the two outermost taps, normalised to sum to 1.
func kernel(blurRadius float64) (weights []float64, radius int) {
	radius = int(ceil(blurRadius))
	if radius == 0 {
		return []float64{1}, 0
	}
	n := 2*radius + 1
	w := make([]float64, n)
	border := 1 - (float64(radius) - blurRadius)
	for i := range w {
		w[i] = 1
	}
	w[0] = border
	w[n-1] = border
	sum := 0.0
	for _, v := range w {
		sum += v
	}
	if sum > 0 {
		for i := range w {
			w[i] /= sum
		}
	}
	return w, radius
}

func ceil(v float64) float64 {
	i := float64(int(v))
	if v > i {
		return i + 1
	}
	return i
}

func numWorkers(rows int) int {
	n := runtime.NumCPU()
	if n > rows {
		n = rows
	}
	if n < 1 {
		n = 1
	}
	return n
}

// forEachStripe partitions [0,total) into contiguous stripes, one per
// worker, running fn(start,end) on each in its own goroutine and blocking
// until all finish.
func forEachStripe(total int, fn func(start, end int)) {
	workers := numWorkers(total)
	stripe := (total + workers - 1) / workers
	var wg sync.WaitGroup
	for start := 0; start < total; start += stripe {
		end := start + stripe
		if end > total {
			end = total
		}
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
	}
	wg.Wait()
}

func clampIdx(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

func blurHorizontal(img *image.RGBA, blurRadius float64) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	weights, radius := kernel(blurRadius)
	src := make([]uint8, len(img.Pix))
	copy(src, img.Pix)

	forEachStripe(h, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			rowOff := y * img.Stride
			for x := 0; x < w; x++ {
				var r, g, bl, a float64
				for k, wt := range weights {
					sx := clampIdx(x+k-radius, w)
					i := rowOff + sx*4
					r += float64(src[i]) * wt
					g += float64(src[i+1]) * wt
					bl += float64(src[i+2]) * wt
					a += float64(src[i+3]) * wt
				}
				i := rowOff + x*4
				img.Pix[i] = uint8(r + 0.5)
				img.Pix[i+1] = uint8(g + 0.5)
				img.Pix[i+2] = uint8(bl + 0.5)
				img.Pix[i+3] = uint8(a + 0.5)
			}
		}
	})
}

func blurVertical(img *image.RGBA, blurRadius float64) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	weights, radius := kernel(blurRadius)
	src := make([]uint8, len(img.Pix))
	copy(src, img.Pix)

	forEachStripe(w, func(x0, x1 int) {
		for x := x0; x < x1; x++ {
			for y := 0; y < h; y++ {
				var r, g, bl, a float64
				for k, wt := range weights {
					sy := clampIdx(y+k-radius, h)
					i := sy*img.Stride + x*4
					r += float64(src[i]) * wt
					g += float64(src[i+1]) * wt
					bl += float64(src[i+2]) * wt
					a += float64(src[i+3]) * wt
				}
				i := y*img.Stride + x*4
				img.Pix[i] = uint8(r + 0.5)
				img.Pix[i+1] = uint8(g + 0.5)
				img.Pix[i+2] = uint8(bl + 0.5)
				img.Pix[i+3] = uint8(a + 0.5)
			}
		}
	})
}

func blurAlphaRows(pix []uint8, stride, w, h int, blurRadius float64) {
	weights, radius := kernel(blurRadius)
	src := make([]uint8, len(pix))
	copy(src, pix)
	forEachStripe(h, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			rowOff := y * stride
			for x := 0; x < w; x++ {
				var a float64
				for k, wt := range weights {
					sx := clampIdx(x+k-radius, w)
					a += float64(src[rowOff+sx]) * wt
				}
				pix[rowOff+x] = uint8(a + 0.5)
			}
		}
	})
}

func blurAlphaCols(pix []uint8, stride, w, h int, blurRadius float64) {
	weights, radius := kernel(blurRadius)
	src := make([]uint8, len(pix))
	copy(src, pix)
	forEachStripe(w, func(x0, x1 int) {
		for x := x0; x < x1; x++ {
			for y := 0; y < h; y++ {
				var a float64
				for k, wt := range weights {
					sy := clampIdx(y+k-radius, h)
					a += float64(src[sy*stride+x]) * wt
				}
				pix[y*stride+x] = uint8(a + 0.5)
			}
		}
	})
}
