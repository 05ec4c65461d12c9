package layout

import (
	"strings"
	"unicode"

	"nitro-core-dx/internal/ssb"
)

// Builder accumulates one event's geometries into groups, lines and
// geometry slots, applying wrap and (at Finish) per-line centering.
type Builder struct {
	dir                  ssb.Direction
	wrapWidth, wrapHeight float64
	groups               []Group
}

// NewBuilder starts a fresh layout for one event. wrapWidth/wrapHeight of 0
// mean "no wrap limit" along that axis.
func NewBuilder(dir ssb.Direction, wrapWidth, wrapHeight float64) *Builder {
	b := &Builder{dir: dir, wrapWidth: wrapWidth, wrapHeight: wrapHeight}
	b.BeginGroup()
	return b
}

// BeginGroup starts a new position group. Called whenever a position tag
// reports position_changed.
func (b *Builder) BeginGroup() {
	b.groups = append(b.groups, Group{})
}

func (b *Builder) currentGroup() *Group {
	return &b.groups[len(b.groups)-1]
}

// unit is one addressable box along the stacking axis before it is placed
// into a line.
type unit struct {
	index   int
	primary float64 // extent along the line's stacking axis
	cross   float64 // extent across the stacking axis
	text    string
}

func (b *Builder) vertical() bool { return b.dir == ssb.DirTTB }

func (b *Builder) wrapLimit() float64 {
	if b.vertical() {
		return b.wrapHeight
	}
	return b.wrapWidth
}

// addUnit places u at the end of the current group's current line, wrapping
// into a new line first if it would not fit. closingSpacing is the spacing
// recorded on a line when a wrap closes it.
func (b *Builder) addUnit(u unit, closingSpacing float64) {
	g := b.currentGroup()
	if len(g.Lines) == 0 {
		g.Lines = append(g.Lines, Line{})
	}
	ln := &g.Lines[len(g.Lines)-1]
	vertical := b.vertical()

	cur := ln.W
	if vertical {
		cur = ln.H
	}
	limit := b.wrapLimit()
	if limit > 0 && len(ln.Geometries) > 0 && cur+u.primary > limit {
		ln.SpacingAfter = closingSpacing
		g.Lines = append(g.Lines, Line{})
		ln = &g.Lines[len(g.Lines)-1]
		cur = 0
	}

	slot := GeometrySlot{Index: u.index, Text: u.text}
	if vertical {
		slot.OffY, slot.OffX = cur, 0
		slot.H, slot.W = u.primary, u.cross
		ln.H = cur + u.primary
		ln.W = maxF(ln.W, u.cross)
	} else {
		slot.OffX, slot.OffY = cur, 0
		slot.W, slot.H = u.primary, u.cross
		ln.W = cur + u.primary
		ln.H = maxF(ln.H, u.cross)
	}
	ln.Geometries = append(ln.Geometries, slot)
}

// BreakLine forces a new line in the current group, used for an explicit
// newline within a text geometry. spacing is recorded on the line being
// closed.
func (b *Builder) BreakLine(spacing float64) {
	g := b.currentGroup()
	if len(g.Lines) == 0 {
		g.Lines = append(g.Lines, Line{})
		return
	}
	g.Lines[len(g.Lines)-1].SpacingAfter = spacing
	g.Lines = append(g.Lines, Line{})
}

// AddBox adds one non-text geometry (points or path) of extent (w,h),
// clamped to non-negative. index identifies the originating object.
func (b *Builder) AddBox(index int, w, h, spaceH, spaceV float64) {
	w, h = clamp0(w), clamp0(h)
	closing := spaceV
	if b.vertical() {
		closing = spaceH
	}
	if b.vertical() {
		b.addUnit(unit{index: index, primary: h, cross: w}, closing)
	} else {
		b.addUnit(unit{index: index, primary: w, cross: h}, closing)
	}
}

// AddText lays out one text geometry: LTR/RTL wraps whole words along line
// width, TTB places each rune on its own sub-line stacked along height.
// widthFn returns the shaped width of a string (already including the
// shaper's own internal spacing); spaceH/spaceV add the extra per-character
// and per-line gaps on top of that.
func (b *Builder) AddText(index int, text string, lineHeight, externalLead, spaceH, spaceV float64, widthFn func(string) float64) {
	scriptLines := strings.Split(text, "\n")
	for i, sl := range scriptLines {
		if i > 0 {
			closing := externalLead + spaceV
			if b.vertical() {
				closing = spaceH
			}
			b.BreakLine(closing)
		}
		if b.vertical() {
			b.addTTBLine(index, sl, lineHeight, spaceH, spaceV, widthFn)
		} else {
			b.addHorizontalLine(index, sl, lineHeight, externalLead, spaceH, spaceV, widthFn)
		}
	}
}

func (b *Builder) addHorizontalLine(index int, line string, lineHeight, externalLead, spaceH, spaceV float64, widthFn func(string) float64) {
	for _, word := range splitWords(line) {
		w := widthFn(word)
		if spaceH != 0 {
			n := len([]rune(word))
			if n > 1 {
				w += float64(n-1) * spaceH
			}
		}
		b.addUnit(unit{index: index, primary: clamp0(w), cross: lineHeight, text: word}, externalLead+spaceV)
	}
}

func (b *Builder) addTTBLine(index int, line string, lineHeight, spaceH, spaceV float64, widthFn func(string) float64) {
	for _, r := range line {
		ch := string(r)
		b.addUnit(unit{index: index, primary: clamp0(lineHeight + spaceV), cross: clamp0(widthFn(ch)), text: ch}, spaceH)
	}
}

// splitWords breaks a line into units of "optional leading spaces + a
// non-space run", so the run of spaces preceding a word travels with it
// (the inter-word gap becomes part of the following word's own width).
func splitWords(line string) []string {
	runes := []rune(line)
	var words []string
	i := 0
	for i < len(runes) {
		start := i
		for i < len(runes) && unicode.IsSpace(runes[i]) {
			i++
		}
		for i < len(runes) && !unicode.IsSpace(runes[i]) {
			i++
		}
		if i > start {
			words = append(words, string(runes[start:i]))
		} else {
			break
		}
	}
	return words
}

// Finish closes out the layout: recomputes every group's total size and,
// for TTB, centers each character horizontally within its line's width.
func (b *Builder) Finish() Layout {
	for gi := range b.groups {
		g := &b.groups[gi]
		if b.vertical() {
			for li := range g.Lines {
				ln := &g.Lines[li]
				for si := range ln.Geometries {
					slot := &ln.Geometries[si]
					slot.OffX = (ln.W - slot.W) / 2
				}
			}
		}
		recomputeGroupSize(g, b.dir)
	}
	return Layout{Groups: b.groups}
}
