package layout

import (
	"testing"

	"nitro-core-dx/internal/ssb"
)

func TestAddBoxAccumulatesLineWidth(t *testing.T) {
	b := NewBuilder(ssb.DirLTR, 0, 0)
	b.AddBox(0, 10, 20, 0, 0)
	b.AddBox(1, 15, 5, 0, 0)
	l := b.Finish()
	if len(l.Groups) != 1 || len(l.Groups[0].Lines) != 1 {
		t.Fatalf("expected one group with one line, got %+v", l)
	}
	ln := l.Groups[0].Lines[0]
	if ln.W != 25 {
		t.Errorf("expected accumulated width 25, got %v", ln.W)
	}
	if ln.H != 20 {
		t.Errorf("expected line height to be the tallest box (20), got %v", ln.H)
	}
	if ln.Geometries[1].OffX != 10 {
		t.Errorf("expected second box offset at 10, got %v", ln.Geometries[1].OffX)
	}
}

func TestAddBoxWrapsAtWidthLimit(t *testing.T) {
	b := NewBuilder(ssb.DirLTR, 20, 0)
	b.AddBox(0, 10, 5, 0, 0)
	b.AddBox(1, 15, 5, 0, 0)
	l := b.Finish()
	if len(l.Groups[0].Lines) != 2 {
		t.Fatalf("expected wrap to produce 2 lines, got %d", len(l.Groups[0].Lines))
	}
	if l.Groups[0].Lines[0].W != 10 {
		t.Errorf("expected first line to keep only the first box, got width %v", l.Groups[0].Lines[0].W)
	}
}

func TestAddBoxNeverWrapsAnEmptyLine(t *testing.T) {
	b := NewBuilder(ssb.DirLTR, 5, 0)
	b.AddBox(0, 50, 5, 0, 0)
	l := b.Finish()
	if len(l.Groups[0].Lines) != 1 {
		t.Fatalf("a single oversized box must not wrap against an empty line, got %d lines", len(l.Groups[0].Lines))
	}
}

func TestBeginGroupStartsANewGroup(t *testing.T) {
	b := NewBuilder(ssb.DirLTR, 0, 0)
	b.AddBox(0, 10, 10, 0, 0)
	b.BeginGroup()
	b.AddBox(1, 20, 20, 0, 0)
	l := b.Finish()
	if len(l.Groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(l.Groups))
	}
	if l.Groups[1].W != 20 {
		t.Errorf("expected second group sized from its own box, got %v", l.Groups[1].W)
	}
}

func TestAddTextWordSplitAndWrap(t *testing.T) {
	width := func(s string) float64 { return float64(len([]rune(s))) * 10 }
	b := NewBuilder(ssb.DirLTR, 55, 0)
	b.AddText(0, "aa bb cc", 16, 2, 0, 0, width)
	l := b.Finish()
	g := l.Groups[0]
	if len(g.Lines) < 2 {
		t.Fatalf("expected the third word to wrap onto a new line, got %d lines", len(g.Lines))
	}
	first := g.Lines[0]
	if len(first.Geometries) != 2 {
		t.Errorf("expected 2 words on the first line, got %d", len(first.Geometries))
	}
	if first.Geometries[0].Text != "aa" || first.Geometries[1].Text != " bb" {
		t.Errorf("expected leading space to travel with its word, got %q %q", first.Geometries[0].Text, first.Geometries[1].Text)
	}
}

func TestAddTextExplicitNewlineAlwaysBreaks(t *testing.T) {
	width := func(s string) float64 { return float64(len([]rune(s))) * 10 }
	b := NewBuilder(ssb.DirLTR, 0, 0)
	b.AddText(0, "one\ntwo", 16, 2, 0, 0, width)
	l := b.Finish()
	if len(l.Groups[0].Lines) != 2 {
		t.Fatalf("expected an explicit newline to force 2 lines, got %d", len(l.Groups[0].Lines))
	}
}

func TestAddTextTTBStacksCharactersAndCentersThem(t *testing.T) {
	width := func(s string) float64 {
		if s == "W" {
			return 20
		}
		return 10
	}
	b := NewBuilder(ssb.DirTTB, 0, 0)
	b.AddText(0, "iW", 16, 0, 0, 4, width)
	l := b.Finish()
	ln := l.Groups[0].Lines[0]
	if len(ln.Geometries) != 2 {
		t.Fatalf("expected one sub-line per character, got %d", len(ln.Geometries))
	}
	if ln.W != 20 {
		t.Errorf("expected line width to be the widest character, got %v", ln.W)
	}
	if ln.Geometries[1].OffY != 20 {
		t.Errorf("expected second char stacked after height+spaceV (16+4), got %v", ln.Geometries[1].OffY)
	}
	if ln.Geometries[0].OffX != 5 {
		t.Errorf("expected narrow char centered within the 20-wide line, got %v", ln.Geometries[0].OffX)
	}
}

func TestApplyAlignmentJustifiesLinesWithinGroup(t *testing.T) {
	width := func(s string) float64 { return float64(len([]rune(s))) * 10 }
	b := NewBuilder(ssb.DirLTR, 0, 0)
	b.AddText(0, "aa\nbbbb", 16, 0, 0, 0, width)
	l := b.Finish()
	ApplyAlignment(&l, 3, ssb.DirLTR) // right-aligned
	g := l.Groups[0]
	if g.Lines[0].GroupOffX != 20 {
		t.Errorf("expected short line (width 20) right-justified within the 40-wide group, got offX=%v", g.Lines[0].GroupOffX)
	}
}

func TestDecomposeAlignNumpadConvention(t *testing.T) {
	h, v := DecomposeAlign(7)
	if h != HLeft || v != VTop {
		t.Errorf("expected align 7 to be top-left, got h=%v v=%v", h, v)
	}
	h, v = DecomposeAlign(2)
	if h != HCenter || v != VBottom {
		t.Errorf("expected align 2 to be bottom-center, got h=%v v=%v", h, v)
	}
}

func TestAutoAnchorCentersWithinFrame(t *testing.T) {
	x, y := AutoAnchor(5, 100, 20, 1000, 500, 10, 10, 1)
	if x != 450 {
		t.Errorf("expected horizontally centered x=450, got %v", x)
	}
	if y != 240 {
		t.Errorf("expected vertically centered y=240, got %v", y)
	}
}

func TestAutoAnchorAppliesMarginOnEdges(t *testing.T) {
	x, y := AutoAnchor(1, 100, 20, 1000, 500, 10, 15, 1)
	if x != 10 {
		t.Errorf("expected left margin applied, got x=%v", x)
	}
	if y != 465 {
		t.Errorf("expected bottom margin applied (500-20-15), got y=%v", y)
	}
}
