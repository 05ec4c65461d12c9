// Package raster ties the path engine, font shaper and layout engine
// together into the two-pass per-event rasterizer described by the render
// pipeline: a sizing pass that builds the layout tree, and a drawing pass
// that assembles each geometry's overlay tile.
package raster

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/jsummers/gobmp"
	"github.com/nfnt/resize"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"nitro-core-dx/internal/ssberr"
)

// TextureLoader resolves a texture= tag's filename (relative to the
// script's source directory) to a decoded image, lazily, keeping every
// decoded and rescaled image for the loader's lifetime (so across render
// calls of the Renderer that owns it); failures are reported to the
// caller, which must treat them as a silent skip of the texture step per
// the renderer's resource-lifecycle contract.
type TextureLoader struct {
	sourceDir string
	mu        sync.Mutex
	decoded   map[string]image.Image
	scaled    map[scaledKey]image.Image
}

type scaledKey struct {
	name  string
	scale float64
}

// NewTextureLoader builds a loader that resolves relative paths against
// sourceDir (the script's own directory).
func NewTextureLoader(sourceDir string) *TextureLoader {
	return &TextureLoader{
		sourceDir: sourceDir,
		decoded:   make(map[string]image.Image),
		scaled:    make(map[scaledKey]image.Image),
	}
}

// Load decodes the texture at name (format dispatched by extension: SVG via
// oksvg/rasterx, BMP via gobmp, PNG/JPEG via the standard library),
// memoizing the result for the lifetime of this loader.
func (l *TextureLoader) Load(name string) (image.Image, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.loadLocked(name)
}

func (l *TextureLoader) loadLocked(name string) (image.Image, error) {
	if img, ok := l.decoded[name]; ok {
		return img, nil
	}

	p := name
	if !filepath.IsAbs(p) {
		p = filepath.Join(l.sourceDir, name)
	}
	data, err := os.ReadFile(p)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %s", ssberr.ErrTextureMissing, name, err)
	}

	var img image.Image
	switch strings.ToLower(filepath.Ext(p)) {
	case ".svg":
		img, err = decodeSVG(data)
	case ".bmp":
		img, err = gobmp.Decode(bytes.NewReader(data))
	default:
		img, _, err = image.Decode(bytes.NewReader(data))
	}
	if err != nil {
		return nil, fmt.Errorf("%w: decode %q: %s", ssberr.ErrTextureMissing, name, err)
	}
	l.decoded[name] = img
	return img, nil
}

// LoadScaled is Load followed by a resample to scale x the source's native
// size, so a texture fill matches the destination's effective resolution
// (FrameScale) instead of forcing the path engine's matrix sampling to
// upscale a source bitmap far past its native resolution. scale <= 0 or
// within 1% of 1 returns the unscaled image.
func (l *TextureLoader) LoadScaled(name string, scale float64) (image.Image, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	img, err := l.loadLocked(name)
	if err != nil {
		return nil, err
	}
	if scale <= 0 || math.Abs(scale-1) < 0.01 {
		return img, nil
	}

	key := scaledKey{name: name, scale: scale}
	if cached, ok := l.scaled[key]; ok {
		return cached, nil
	}
	b := img.Bounds()
	w := uint(math.Max(1, math.Round(float64(b.Dx())*scale)))
	h := uint(math.Max(1, math.Round(float64(b.Dy())*scale)))
	resized := resize.Resize(w, h, img, resize.Bilinear)
	l.scaled[key] = resized
	return resized, nil
}

// svgRasterSize is the pixel size SVG textures are rasterized at; surface
// patterns are resampled by the path engine's own wrap/matrix sampling, so
// a fixed, moderately high base resolution is enough headroom for upscale.
const svgRasterSize = 512

func decodeSVG(data []byte) (image.Image, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(data), oksvg.WarnErrorMode)
	if err != nil {
		return nil, err
	}
	w, h := svgRasterSize, svgRasterSize
	icon.SetTarget(0, 0, float64(w), float64(h))
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, dst, dst.Bounds())
	raster := rasterx.NewDasher(w, h, scanner)
	icon.Draw(raster, 1.0)
	return dst, nil
}
