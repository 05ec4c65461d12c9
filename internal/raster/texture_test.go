package raster

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func writeTestPNG(t *testing.T, dir, name string, w, h int) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, image.White)
		}
	}
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestTextureLoaderLoadMemoizes(t *testing.T) {
	dir := t.TempDir()
	writeTestPNG(t, dir, "a.png", 4, 4)
	l := NewTextureLoader(dir)

	img1, err := l.Load("a.png")
	if err != nil {
		t.Fatal(err)
	}
	img2, err := l.Load("a.png")
	if err != nil {
		t.Fatal(err)
	}
	if img1 != img2 {
		t.Error("expected the second Load to return the memoized image")
	}
}

func TestTextureLoaderLoadScaledResizes(t *testing.T) {
	dir := t.TempDir()
	writeTestPNG(t, dir, "a.png", 10, 10)
	l := NewTextureLoader(dir)

	img, err := l.LoadScaled("a.png", 2.0)
	if err != nil {
		t.Fatal(err)
	}
	b := img.Bounds()
	if b.Dx() != 20 || b.Dy() != 20 {
		t.Fatalf("expected a 20x20 scaled image, got %dx%d", b.Dx(), b.Dy())
	}
}

func TestTextureLoaderLoadScaledSkipsNearIdentityScale(t *testing.T) {
	dir := t.TempDir()
	writeTestPNG(t, dir, "a.png", 10, 10)
	l := NewTextureLoader(dir)

	original, err := l.Load("a.png")
	if err != nil {
		t.Fatal(err)
	}
	scaled, err := l.LoadScaled("a.png", 1.0)
	if err != nil {
		t.Fatal(err)
	}
	if original != scaled {
		t.Error("expected scale=1 to return the unscaled image unchanged")
	}
}

func TestTextureLoaderLoadMissingFileIsTextureMissing(t *testing.T) {
	l := NewTextureLoader(t.TempDir())
	if _, err := l.Load("nope.png"); err == nil {
		t.Fatal("expected an error for a missing texture file")
	}
}
