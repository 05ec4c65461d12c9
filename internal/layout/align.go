package layout

import "nitro-core-dx/internal/ssb"

// HAlign/VAlign are the two components a numpad align value decomposes
// into: horizontal left/center/right and vertical bottom/middle/top.
type HAlign int

const (
	HLeft HAlign = iota
	HCenter
	HRight
)

type VAlign int

const (
	VBottom VAlign = iota
	VMiddle
	VTop
)

// DecomposeAlign splits a numpad align value (1..9) into its horizontal and
// vertical components. Values outside 1..9 fall back to bottom-center.
func DecomposeAlign(align int) (HAlign, VAlign) {
	if align < 1 || align > 9 {
		return HCenter, VBottom
	}
	return HAlign((align - 1) % 3), VAlign((align - 1) / 3)
}

// ApplyAlignment justifies each line within its group along the
// cross-stacking axis: for LTR/RTL (lines stacked vertically) this is
// horizontal left/center/right text justification; TTB lines are already
// centered character-by-character in Finish, so horizontal justification of
// the column itself is a no-op here.
func ApplyAlignment(l *Layout, align int, dir ssb.Direction) {
	for gi := range l.Groups {
		ApplyGroupAlignment(&l.Groups[gi], align, dir)
	}
}

// ApplyGroupAlignment justifies the lines of a single group. Each group may
// have been opened under a different align value, so the rasterizer
// applies this per group rather than once for the whole layout.
func ApplyGroupAlignment(g *Group, align int, dir ssb.Direction) {
	if dir == ssb.DirTTB {
		return
	}
	h, _ := DecomposeAlign(align)
	for li := range g.Lines {
		ln := &g.Lines[li]
		switch h {
		case HLeft:
			ln.GroupOffX = 0
		case HCenter:
			ln.GroupOffX = (g.W - ln.W) / 2
		case HRight:
			ln.GroupOffX = g.W - ln.W
		}
	}
}

// AutoAnchor computes the drawing anchor for a group when position is
// unset, from the frame size, alignment and margins. scale is the
// frame-to-destination scale factor (1 when no frame scale is known, in
// which case margins and the frame size are already in destination
// pixels).
func AutoAnchor(align int, groupW, groupH, frameW, frameH, marginH, marginV, scale float64) (x, y float64) {
	h, v := DecomposeAlign(align)
	fw, fh := frameW*scale, frameH*scale
	mh, mv := marginH*scale, marginV*scale

	switch h {
	case HLeft:
		x = mh
	case HCenter:
		x = (fw - groupW) / 2
	case HRight:
		x = fw - groupW - mh
	}
	switch v {
	case VTop:
		y = mv
	case VMiddle:
		y = (fh - groupH) / 2
	case VBottom:
		y = fh - groupH - mv
	}
	return x, y
}
