// Package renderer ties the parser, state machine, rasterizer, cache and
// blend packages into the one stateful façade a host calls per frame,
// grounded on a console emulator's Emulator struct: a handful of owned
// subsystems wired together at construction and driven by one per-frame
// entry point.
package renderer

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"nitro-core-dx/internal/blend"
	"nitro-core-dx/internal/cache"
	"nitro-core-dx/internal/debug"
	"nitro-core-dx/internal/font"
	"nitro-core-dx/internal/raster"
	"nitro-core-dx/internal/ssb"
	"nitro-core-dx/internal/ssberr"
	"nitro-core-dx/internal/ssbparse"
)

// Format is the destination frame's pixel layout, shared with the blend
// package so a caller never has to convert between the two.
type Format = blend.Format

const (
	FormatBGR  = blend.FormatBGR
	FormatBGRX = blend.FormatBGRX
	FormatBGRA = blend.FormatBGRA
)

// Renderer holds one parsed script, its destination target, and the
// scratch state (stencil surface, tile cache, font/texture caches) a
// render call reuses frame to frame. Not safe for concurrent Render calls;
// distinct Renderers are fully independent.
type Renderer struct {
	script *ssb.Script

	width, height int
	format        Format
	frameScale    float64

	stencil  *raster.Stencil
	tiles    *cache.Cache
	fonts    *font.Cache
	textures *raster.TextureLoader

	logger *debug.Logger
}

// New parses the script at scriptPath and builds a Renderer targeting
// (width,height,format). warnings makes a bad tag/value fatal instead of
// silently dropped.
func New(width, height int, format Format, scriptPath string, warnings bool) (*Renderer, error) {
	data, err := readScriptFile(scriptPath)
	if err != nil {
		return nil, err
	}
	return build(width, height, format, data, scriptPath, filepath.Dir(scriptPath), warnings)
}

// NewFromMemory is New without a filesystem read, for hosts that already
// hold the script text (e.g. embedded in a project file). sourceDir still
// anchors relative texture= paths.
func NewFromMemory(width, height int, format Format, data []byte, sourceDir string, warnings bool) (*Renderer, error) {
	return build(width, height, format, data, "<memory>", sourceDir, warnings)
}

func build(width, height int, format Format, data []byte, path, sourceDir string, warnings bool) (*Renderer, error) {
	if err := validateFormat(format); err != nil {
		return nil, err
	}

	script, diagnostics, err := ssbparse.Parse(data, path, sourceDir, ssbparse.Options{Warnings: warnings})
	if err != nil {
		return nil, err
	}
	script.SourceDir = sourceDir

	logger := debug.NewLogger(4096)
	logger.SetMinLevel(debug.LogLevelError)
	for _, c := range []debug.Component{debug.ComponentParse, debug.ComponentCache, debug.ComponentSystem} {
		logger.SetComponentEnabled(c, true)
	}
	for _, d := range diagnostics {
		logger.LogParse(debug.LogLevelWarning, d.Error(), map[string]interface{}{"stage": string(d.Stage)})
	}

	r := &Renderer{
		script:   script,
		fonts:    font.NewCache(font.DefaultLoader),
		textures: raster.NewTextureLoader(sourceDir),
		logger:   logger,
	}
	if err := r.SetTarget(width, height, format); err != nil {
		return nil, err
	}
	return r, nil
}

func readScriptFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %s", ssberr.ErrScriptRead, path, err)
	}
	return data, nil
}

// Warnings returns the warnings collected while parsing the script, in the
// non-fatal case (warnings=false at construction).
func (r *Renderer) Warnings() []string {
	var out []string
	for _, e := range r.logger.GetEntries() {
		if e.Component == debug.ComponentParse {
			out = append(out, e.Message)
		}
	}
	return out
}

// Width and Height return the currently configured target dimensions, so a
// caller that only holds a raw pointer + stride (e.g. the C ABI) can size
// its buffer view without tracking the target itself.
func (r *Renderer) Width() int  { return r.width }
func (r *Renderer) Height() int { return r.height }

// SetTarget reallocates the stencil scratch surface and drops the tile
// cache, since cached tiles are only valid for the destination size they
// were rasterized against.
func (r *Renderer) SetTarget(width, height int, format Format) error {
	if err := validateFormat(format); err != nil {
		return err
	}
	r.width, r.height, r.format = width, height, format
	if r.script.FrameWidth > 0 {
		r.frameScale = float64(width) / float64(r.script.FrameWidth)
	} else {
		r.frameScale = 1
	}

	if r.stencil == nil {
		r.stencil = raster.NewStencil(width, height)
	} else {
		r.stencil.Resize(width, height)
	}
	if r.tiles == nil {
		r.tiles = cache.New(cache.DefaultCapacity)
	} else {
		r.tiles.Clear()
	}
	r.fonts.Clear()
	r.logger.LogSystem(debug.LogLevelInfo, "target reallocated", map[string]interface{}{
		"width": width, "height": height,
	})
	return nil
}

func validateFormat(format Format) error {
	switch format {
	case FormatBGR, FormatBGRX, FormatBGRA:
		return nil
	default:
		return fmt.Errorf("%w: format %v", ssberr.ErrUnsupportedFormat, format)
	}
}

// Render composites every event active at tMS onto frameBytes (stride in
// bytes), in script order, tile by tile, in insertion order within each
// event. Never returns an error: clipped tiles, zero-area geometries and
// out-of-range times simply produce no output.
func (r *Renderer) Render(frameBytes []byte, stride int, tMS float64) {
	dst := &blend.Frame{
		Pix:    frameBytes,
		Stride: stride,
		Width:  r.width,
		Height: r.height,
		Format: r.format,
	}

	frameW, frameH := r.script.FrameWidth, r.script.FrameHeight
	if frameW <= 0 {
		frameW, frameH = r.width, r.height
	}
	cfg := raster.Config{
		FrameWidth:  frameW,
		FrameHeight: frameH,
		FrameScale:  r.frameScale,
		Fonts:       r.fonts,
		Textures:    r.textures,
		Stencil:     r.stencil,
	}

	for _, ev := range r.script.Events {
		if !ev.Active(tMS) {
			continue
		}
		r.renderEvent(dst, ev, tMS, cfg)
		r.stencil.Clear()
	}
}

func (r *Renderer) renderEvent(dst *blend.Frame, ev *ssb.Event, tMS float64, cfg raster.Config) {
	var tiles []cache.Tile
	if ev.StaticTags {
		if cached, ok := r.tiles.Get(ev); ok {
			tiles = cached
			r.logger.LogCache(debug.LogLevelDebug, "replayed", nil)
		} else {
			tiles = raster.RasterizeEvent(ev, tMS, cfg)
			if len(tiles) > 0 {
				r.tiles.Add(ev, tiles)
			}
		}
	} else {
		tiles = raster.RasterizeEvent(ev, tMS, cfg)
	}

	innerMS := tMS - ev.StartMS
	innerDuration := ev.EndMS - ev.StartMS
	for _, tile := range tiles {
		img := cloneImage(tile.Image)
		raster.ApplyFade(img, tile.FadeInMS, tile.FadeOutMS, innerMS, innerDuration)
		blend.Tile(dst, tile.X, tile.Y, img, tile.Blend)
	}
}

// cloneImage copies a cached tile's pixels before fading them, so the
// cache keeps holding the tile at full strength for the next frame's
// replay instead of accumulating fade across repeated renders.
func cloneImage(src *image.RGBA) *image.RGBA {
	out := image.NewRGBA(src.Bounds())
	copy(out.Pix, src.Pix)
	return out
}
