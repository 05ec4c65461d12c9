package blur

import (
	"image"
	"testing"
)

func solidTile(w, h int, r, g, b, a uint8) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := img.PixOffset(x, y)
			img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = r, g, b, a
		}
	}
	return img
}

func TestBoxZeroRadiusIsNoOp(t *testing.T) {
	img := solidTile(4, 4, 10, 20, 30, 200)
	before := append([]uint8(nil), img.Pix...)
	Box(img, 0, 0)
	for i := range before {
		if img.Pix[i] != before[i] {
			t.Fatalf("expected (0,0) blur to be a no-op, pixel %d changed %d->%d", i, before[i], img.Pix[i])
		}
	}
}

func TestBoxPreservesUniformColor(t *testing.T) {
	img := solidTile(10, 10, 50, 60, 70, 255)
	Box(img, 2, 2)
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			i := img.PixOffset(x, y)
			if img.Pix[i] != 50 || img.Pix[i+1] != 60 || img.Pix[i+2] != 70 || img.Pix[i+3] != 255 {
				t.Fatalf("blurring a uniform tile should leave it uniform, got %v at (%d,%d)", img.Pix[i:i+4], x, y)
			}
		}
	}
}

func TestBoxSmoothsASharpEdge(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 1))
	for x := 0; x < 10; x++ {
		i := img.PixOffset(x, 0)
		if x < 5 {
			img.Pix[i+3] = 255
		}
	}
	Box(img, 2, 0)
	mid := img.PixOffset(5, 0)
	if img.Pix[mid+3] == 0 || img.Pix[mid+3] == 255 {
		t.Errorf("expected a blurred edge to sit strictly between 0 and 255, got %d", img.Pix[mid+3])
	}
}

func TestBoxAlphaSmoothsMask(t *testing.T) {
	stride, w, h := 10, 10, 1
	pix := make([]uint8, stride*h)
	for x := 0; x < 5; x++ {
		pix[x] = 255
	}
	BoxAlpha(pix, stride, w, h, 2, 0)
	if pix[5] == 0 || pix[5] == 255 {
		t.Errorf("expected blurred alpha mask edge strictly between 0 and 255, got %d", pix[5])
	}
}

func TestKernelNormalizesToOne(t *testing.T) {
	weights, radius := kernel(1.5)
	if radius != 2 {
		t.Fatalf("expected ceil(1.5)=2, got %d", radius)
	}
	sum := 0.0
	for _, w := range weights {
		sum += w
	}
	if sum < 0.999 || sum > 1.001 {
		t.Errorf("expected kernel weights to normalise to 1, got %v", sum)
	}
}
