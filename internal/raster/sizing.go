package raster

import (
	"nitro-core-dx/internal/font"
	"nitro-core-dx/internal/layout"
	"nitro-core-dx/internal/path"
	"nitro-core-dx/internal/ssb"
	"nitro-core-dx/internal/state"
)

// groupMeta captures the render state that was active at the moment a
// position group began, which pass 2 needs to resolve that group's anchor
// (auto vs declared position) without re-deriving it from a full replay.
type groupMeta struct {
	align            int
	posX, posY       float64
	marginH, marginV float64
	direction        ssb.Direction
}

// sizingResult is everything pass 1 produces for one event.
type sizingResult struct {
	layout layout.Layout
	groups []groupMeta
}

// sizeEvent runs pass 1: walk the object sequence once, feeding every
// geometry's extents into a layout.Builder, opening a new position group
// whenever a position tag fires.
func sizeEvent(ev *ssb.Event, innerMS float64, cfg Config) sizingResult {
	st := state.New()
	innerDuration := ev.EndMS - ev.StartMS

	var b *layout.Builder
	var groups []groupMeta

	openGroup := func() {
		wrapW, wrapH := cfg.wrapLimits(st)
		if b == nil {
			b = layout.NewBuilder(st.Direction, wrapW, wrapH)
		} else {
			b.BeginGroup()
		}
		groups = append(groups, groupMeta{
			align: st.Align, posX: st.PosX, posY: st.PosY,
			marginH: st.MarginH, marginV: st.MarginV, direction: st.Direction,
		})
	}

	for idx, obj := range ev.Objects {
		switch obj.Kind {
		case ssb.ObjTag:
			posChanged, _ := st.Apply(*obj.Tag, innerMS, innerDuration)
			if posChanged {
				openGroup()
			}
		case ssb.ObjGeometry:
			if b == nil {
				openGroup()
			}
			sizeGeometry(b, idx, obj.Geometry, st, cfg.Fonts)
		}
	}

	if b == nil {
		return sizingResult{}
	}
	return sizingResult{layout: b.Finish(), groups: groups}
}

func sizeGeometry(b *layout.Builder, idx int, g *ssb.Geometry, st *state.State, fonts *font.Cache) {
	switch g.Kind {
	case ssb.GeomText:
		shaper, err := fonts.Get(font.Attrs{
			Family: st.FontFamily, Bold: st.Bold, Italic: st.Italic,
			Size: st.FontSize, RTL: st.Direction == ssb.DirRTL,
		})
		if err != nil {
			return
		}
		m := shaper.Metrics()
		b.AddText(idx, g.Text, m.Height, m.ExternalLead, st.SpaceH, st.SpaceV, shaper.Width)
	default:
		p := path.FromGeometry(g, st.LineWidth)
		ext := path.ExtentsOf(path.Flatten(p))
		b.AddBox(idx, ext.Width(), ext.Height(), st.SpaceH, st.SpaceV)
	}
}

// wrapLimits computes the frame-relative wrap box from the current
// margins: in script space when position is still auto at this point and a
// frame scale is known, otherwise in destination pixels.
func (cfg Config) wrapLimits(st *state.State) (float64, float64) {
	scale := 1.0
	if ssb.IsUnset(st.PosX) && cfg.FrameScale > 0 {
		scale = cfg.FrameScale
	}
	frame := scaleOrOne(cfg.FrameScale)
	w := float64(cfg.FrameWidth)*frame/scaleOrOne(scale) - 2*st.MarginH
	h := float64(cfg.FrameHeight)*frame/scaleOrOne(scale) - 2*st.MarginV
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return w, h
}

func scaleOrOne(s float64) float64 {
	if s <= 0 {
		return 1
	}
	return s
}
