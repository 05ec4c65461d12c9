// Package layout turns an event's per-group geometry stream into sized,
// wrapped, aligned boxes ready for rasterization. It mirrors the sizing and
// wrap-modulo arithmetic style used elsewhere in the tree for tile/row
// geometry, generalized from pixel grids to script-space boxes.
package layout

import "nitro-core-dx/internal/ssb"

// Box is an axis-aligned extent.
type Box struct {
	W, H float64
}

// GeometrySlot is one geometry's placement within its line.
type GeometrySlot struct {
	OffX, OffY float64
	W, H       float64

	// Index is the position of the originating ssb.Object within the
	// event's object list, so the rasterizer can look up the geometry and
	// the render state snapshot that produced this slot.
	Index int

	// Text is set when this slot was produced by AddText: the word (LTR/RTL)
	// or single character (TTB) substring this slot draws. Empty for
	// point/path geometries.
	Text string
}

// Line is a sequence of geometries laid out along the direction's primary
// axis, plus the spacing to add before the next line.
type Line struct {
	Geometries   []GeometrySlot
	W, H         float64
	SpacingAfter float64

	// GroupOffX/GroupOffY is this line's position within its group, filled
	// in by Finish once every line's size is known.
	GroupOffX, GroupOffY float64
}

// Group is one position group: one or more lines, started whenever a
// position tag fires (position_changed).
type Group struct {
	Lines []Line
	W, H  float64
}

// Layout is the full per-event result: one or more groups in object order.
type Layout struct {
	Groups []Group
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func clamp0(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

// recomputeGroupSize derives a group's (W,H) from its lines, per direction:
// LTR/RTL stack lines vertically (width = max line width, height = sum of
// line heights+spacing); TTB stacks lines (columns) horizontally (height =
// max line height, width = sum of line widths+spacing).
func recomputeGroupSize(g *Group, dir ssb.Direction) {
	var w, h float64
	for i := range g.Lines {
		ln := &g.Lines[i]
		spacing := 0.0
		if i > 0 {
			spacing = g.Lines[i-1].SpacingAfter
		}
		if dir == ssb.DirTTB {
			ln.GroupOffX, ln.GroupOffY = w+spacing, 0
			h = maxF(h, ln.H)
			w += ln.W + spacing
		} else {
			ln.GroupOffX, ln.GroupOffY = 0, h+spacing
			w = maxF(w, ln.W)
			h += ln.H + spacing
		}
	}
	g.W, g.H = w, h
}
