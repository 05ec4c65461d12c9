package raster

import (
	"image"
	"testing"
)

func TestApplyFadeScalesAlphaByCurrentProgress(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	setPixel(img, 0, 0, 200, 100, 50, 200)

	ApplyFade(img, 200, 200, 100, 1000) // halfway through a 200ms fade-in

	off := img.PixOffset(0, 0)
	if got := img.Pix[off+3]; got != 100 {
		t.Errorf("alpha: got %d, want 100", got)
	}
}

func TestApplyFadeIsANoOpOutsideAnyFadeWindow(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	setPixel(img, 0, 0, 200, 100, 50, 200)

	ApplyFade(img, 0, 0, 500, 1000)

	off := img.PixOffset(0, 0)
	if img.Pix[off+3] != 200 {
		t.Errorf("expected no change without a fade window, got %d", img.Pix[off+3])
	}
}

func TestApplyFadeErasesTileAtStartOfFadeIn(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	setPixel(img, 0, 0, 200, 100, 50, 200)

	ApplyFade(img, 200, 0, 0, 1000) // t at the very start of fade-in: fully transparent
	off := img.PixOffset(0, 0)
	for c := 0; c < 4; c++ {
		if img.Pix[off+c] != 0 {
			t.Fatalf("expected full erasure at the start of fade-in, got %v", img.Pix[off:off+4])
		}
	}
}
