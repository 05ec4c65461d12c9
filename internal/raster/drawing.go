package raster

import (
	"image"
	"math"

	"nitro-core-dx/internal/blur"
	"nitro-core-dx/internal/cache"
	"nitro-core-dx/internal/font"
	"nitro-core-dx/internal/layout"
	"nitro-core-dx/internal/path"
	"nitro-core-dx/internal/ssb"
	"nitro-core-dx/internal/state"
)

// Config parameterises one renderer instance's raster passes.
type Config struct {
	// FrameWidth/FrameHeight is the script's own declared frame size (or,
	// when the script declares none, the destination size with Scale left
	// at 1).
	FrameWidth, FrameHeight int
	// FrameScale converts script-space coordinates to destination pixels;
	// 1 when the script has no frame size of its own.
	FrameScale float64

	Fonts    *font.Cache
	Textures *TextureLoader
	Stencil  *Stencil
}

// RasterizeEvent runs both sizing and drawing passes for one active event
// at tMS, returning the tiles it produced in object order.
func RasterizeEvent(ev *ssb.Event, tMS float64, cfg Config) []cache.Tile {
	innerMS := tMS - ev.StartMS
	innerDuration := ev.EndMS - ev.StartMS

	sizing := sizeEvent(ev, innerMS, cfg)
	if len(sizing.groups) == 0 {
		return nil
	}
	slots := flattenLayout(sizing)

	st := state.New()
	var tiles []cache.Tile
	groupIdx := -1

	for idx, obj := range ev.Objects {
		switch obj.Kind {
		case ssb.ObjTag:
			posChanged, _ := st.Apply(*obj.Tag, innerMS, innerDuration)
			if posChanged {
				groupIdx++
			}
		case ssb.ObjGeometry:
			if groupIdx < 0 {
				groupIdx = 0
			}
			fs, ok := slots[idx]
			if !ok {
				continue
			}
			g := sizing.layout.Groups[fs.groupIdx]
			meta := sizing.groups[fs.groupIdx]
			ax, ay := groupAnchor(meta, g, cfg)
			localX := ax + fs.lineOffX + fs.slot.OffX
			localY := ay + fs.lineOffY + fs.slot.OffY

			t := drawGeometry(obj.Geometry, fs.slot, st, localX, localY, innerMS, innerDuration, cfg)
			if t != nil {
				tiles = append(tiles, *t)
			}
		}
	}
	return tiles
}

type flatSlot struct {
	slot                 layout.GeometrySlot
	groupIdx             int
	lineOffX, lineOffY   float64
}

func flattenLayout(res sizingResult) map[int]flatSlot {
	for gi := range res.layout.Groups {
		meta := res.groups[gi]
		layout.ApplyGroupAlignment(&res.layout.Groups[gi], meta.align, meta.direction)
	}
	out := make(map[int]flatSlot)
	for gi := range res.layout.Groups {
		g := res.layout.Groups[gi]
		for _, ln := range g.Lines {
			for _, slot := range ln.Geometries {
				out[slot.Index] = flatSlot{slot: slot, groupIdx: gi, lineOffX: ln.GroupOffX, lineOffY: ln.GroupOffY}
			}
		}
	}
	return out
}

// groupAnchor resolves a position group's drawing anchor in script-space
// coordinates (the same space geometry points are authored in): an explicit
// position tag is used verbatim, otherwise AutoAnchor derives one from the
// frame size, alignment and margins, all already in script space (see
// wrapLimits). The whole local path — anchor included — is scaled to
// destination pixels later, alongside the rest of the geometry's transform.
func groupAnchor(meta groupMeta, g layout.Group, cfg Config) (float64, float64) {
	if ssb.IsUnset(meta.posX) || ssb.IsUnset(meta.posY) {
		return layout.AutoAnchor(meta.align, g.W, g.H, float64(cfg.FrameWidth), float64(cfg.FrameHeight), meta.marginH, meta.marginV, 1)
	}
	return meta.posX, meta.posY
}

// deformProgress has no other natural clock among the tags, so it tracks
// the same innerMS/innerDuration ratio fade and animate otherwise default
// to when given no explicit window.
func deformProgress(innerMS, innerDuration float64) float64 {
	if innerDuration <= 0 {
		return 0
	}
	p := innerMS / innerDuration
	if p < 0 {
		p = 0
	}
	if p > 1 {
		p = 1
	}
	return p
}

// drawGeometry rasterizes one geometry's fill/border/texture/karaoke/blur
// stack and hands back the tile a renderer should cache and replay.
//
// Fade is deliberately NOT baked into the returned pixels: the tile's alpha
// is built at full (pre-fade) strength and FadeInMS/FadeOutMS are carried as
// metadata only, so a renderer can call ApplyFade against whatever t_ms a
// cached tile is replayed at instead of freezing the fade level from the
// frame the tile was first rasterized on. st.Alphas/st.LineAlphas already
// have the CURRENT frame's fade ratio multiplied in by state.Apply, so
// fadeRatio below undoes exactly that before the fill runs.
func drawGeometry(g *ssb.Geometry, slot layout.GeometrySlot, st *state.State, x, y, innerMS, innerDuration float64, cfg Config) *cache.Tile {
	scale := scaleOrOne(cfg.FrameScale)

	fadeRatio := state.FadeProgress(st.FadeInMS, st.FadeOutMS, innerMS, innerDuration)
	if fadeRatio <= 0 {
		return nil
	}

	local := buildLocalPath(g, slot, st, cfg.Fonts, x, y)
	polys := path.Flatten(local)
	if len(polys) == 0 {
		return nil
	}

	if st.DeformExprX != "" || st.DeformExprY != "" {
		p := deformProgress(innerMS, innerDuration)
		polys = path.Deform(polys, st.DeformExprX, st.DeformExprY, p)
	}

	localExtents := path.ExtentsOf(polys)

	full := st.Matrix.Mul(path.Scale(scale, scale))
	transformed := path.TransformPolylines(polys, full)
	ext := path.ExtentsOf(transformed)

	padH := math.Ceil(maxF(st.BlurH, st.LineWidth/2) * scale)
	padV := math.Ceil(maxF(st.BlurV, st.LineWidth/2) * scale)

	tileX := int(math.Floor(ext.MinX - padH))
	tileY := int(math.Floor(ext.MinY - padV))
	tileW := int(math.Ceil(ext.Width())) + 2*int(padH)
	tileH := int(math.Ceil(ext.Height())) + 2*int(padV)
	if tileW <= 0 || tileH <= 0 {
		return nil
	}
	originX, originY := float64(tileX), float64(tileY)

	tile := compositeShape(transformed, localExtents, full, tileW, tileH, originX, originY, st, cfg, fadeRatio)
	if tile == nil {
		return nil
	}

	if st.TextureFile != "" && cfg.Textures != nil {
		applyTextureFill(tile, transformed, localExtents, full, originX, originY, st, cfg)
	}

	if st.KaraokeStartMS >= 0 {
		applyKaraoke(tile, originX, originY, localExtents, full, st, innerMS)
	}

	blurTile(tile, st.BlurH*scale, st.BlurV*scale)

	if cfg.Stencil != nil {
		switch st.Stencil {
		case ssb.StencilInside:
			cfg.Stencil.MaskInside(tile, tileX, tileY)
		case ssb.StencilOutside:
			cfg.Stencil.MaskOutside(tile, tileX, tileY)
		case ssb.StencilSet:
			cfg.Stencil.ApplySet(tile, tileX, tileY)
			return nil
		case ssb.StencilUnset:
			cfg.Stencil.ApplyUnset(tile, tileX, tileY)
			return nil
		}
	}

	return &cache.Tile{
		Image:     tile,
		X:         tileX,
		Y:         tileY,
		Blend:     st.Blend,
		FadeInMS:  st.FadeInMS,
		FadeOutMS: st.FadeOutMS,
	}
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func buildLocalPath(g *ssb.Geometry, slot layout.GeometrySlot, st *state.State, fonts *font.Cache, x, y float64) *path.Path {
	if g.Kind == ssb.GeomText {
		p := path.New()
		shaper, err := fonts.Get(font.Attrs{
			Family: st.FontFamily, Bold: st.Bold, Italic: st.Italic,
			Size: st.FontSize, RTL: st.Direction == ssb.DirRTL,
		})
		if err != nil {
			return p
		}
		m := shaper.Metrics()
		shaper.AppendOutline(p, slot.Text, x, y+m.Ascent)
		return p
	}
	p := path.FromGeometry(g, st.LineWidth)
	return translatePath(p, x, y)
}

func translatePath(p *path.Path, dx, dy float64) *path.Path {
	out := path.New()
	for _, op := range p.Ops {
		switch op.Kind {
		case path.OpMove:
			out.MoveTo(op.X+dx, op.Y+dy)
		case path.OpLine:
			out.LineTo(op.X+dx, op.Y+dy)
		case path.OpCubic:
			out.CubicTo(op.CX1+dx, op.CY1+dy, op.CX2+dx, op.CY2+dy, op.X+dx, op.Y+dy)
		case path.OpArc:
			out.ArcTo(op.CenterX+dx, op.CenterY+dy, op.Degrees)
		case path.OpClose:
			out.Close()
		}
	}
	return out
}

// compositeShape renders the fill/stroke/border combination for mode. fadeRatio
// undoes the fade state.Apply already multiplied into st.Alphas/st.LineAlphas,
// so the pixels it produces are at full, un-faded strength (see drawGeometry).
func compositeShape(transformed []path.Polyline, localExtents path.Extents, full path.Matrix, w, h int, originX, originY float64, st *state.State, cfg Config, fadeRatio float64) *image.RGBA {
	corners, solid := fillColors(st.Colors, st.Alphas)
	lineCorners, lineSolid := fillColors(st.LineColors, st.LineAlphas)
	unfade(&corners, fadeRatio)
	unfade(&lineCorners, fadeRatio)
	scale := scaleOrOne(cfg.FrameScale)

	fillImg := func() *image.RGBA {
		if solid {
			return path.FillSolid(transformed, w, h, originX, originY, corners[0])
		}
		return path.FillMeshGradient(transformed, w, h, originX, originY, localExtents.MinX, localExtents.MinY, localExtents.Width(), localExtents.Height(), corners)
	}
	strokeImg := func(width float64) *image.RGBA {
		strokePolys := path.Stroke(transformed, path.StrokeOptions{
			Width: width * scale, Cap: st.LineCap, Join: st.LineJoin,
			Dashes: scaledDashes(st.Dashes, scale), DashOffset: st.DashOffset * scale,
		})
		if lineSolid {
			return path.FillSolid(strokePolys, w, h, originX, originY, lineCorners[0])
		}
		return path.FillMeshGradient(strokePolys, w, h, originX, originY, localExtents.MinX, localExtents.MinY, localExtents.Width(), localExtents.Height(), lineCorners)
	}

	var out *image.RGBA
	switch st.Mode {
	case ssb.ModeWire, ssb.ModeBoxed:
		// Boxed draws identically to Wire (a stroke of the geometry's own
		// path, not a bounding-box rectangle): the source renderer only
		// special-cases Fill, leaving Wire and Boxed to share one draw
		// path.
		out = strokeImg(st.LineWidth)
	default: // ModeFill
		out = fillImg()
		if st.LineWidth > 0 {
			border := strokeImg(st.LineWidth)
			composeOver(out, border)
		}
	}
	return out
}

// unfade divides each corner's alpha by ratio, recovering the strength a
// fade tag had before state.Apply scaled it down for the current frame.
func unfade(corners *[4]path.CornerColor, ratio float64) {
	if ratio >= 1 {
		return
	}
	for i := range corners {
		corners[i].A /= ratio
	}
}

func scaledDashes(in []float64, scale float64) []float64 {
	if len(in) == 0 {
		return nil
	}
	out := make([]float64, len(in))
	for i, v := range in {
		out[i] = v * scale
	}
	return out
}

func blurTile(img *image.RGBA, h, v float64) {
	if h <= 0 && v <= 0 {
		return
	}
	blur.Box(img, h, v)
}
