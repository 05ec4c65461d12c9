package path

import (
	"math"
	"testing"

	"nitro-core-dx/internal/ssb"
)

func TestFlattenLineSegmentLength(t *testing.T) {
	p := New().MoveTo(0, 0).LineTo(100, 0)
	polys := Flatten(p)
	if len(polys) != 1 {
		t.Fatalf("expected 1 polyline, got %d", len(polys))
	}
	pts := polys[0].Pts
	for i := 1; i < len(pts); i++ {
		d := math.Hypot(pts[i].X-pts[i-1].X, pts[i].Y-pts[i-1].Y)
		if d > maxSegmentLength+1e-9 {
			t.Errorf("segment %d length %v exceeds max %v", i, d, maxSegmentLength)
		}
	}
}

func TestExtents(t *testing.T) {
	p := New().MoveTo(10, 20).LineTo(50, 20).LineTo(50, 80).LineTo(10, 80).Close()
	e := ExtentsOf(Flatten(p))
	if e.MinX != 10 || e.MinY != 20 || e.MaxX != 50 || e.MaxY != 80 {
		t.Errorf("unexpected extents: %+v", e)
	}
	if e.Width() != 40 || e.Height() != 60 {
		t.Errorf("unexpected width/height: %v/%v", e.Width(), e.Height())
	}
}

func TestExtentsClampedNonNegative(t *testing.T) {
	e := Extents{MinX: 10, MaxX: 5, MinY: 10, MaxY: 5}
	if e.Width() != 0 || e.Height() != 0 {
		t.Errorf("expected clamped zero extents, got %v/%v", e.Width(), e.Height())
	}
}

func TestTransformTranslate(t *testing.T) {
	p := New().MoveTo(0, 0).LineTo(10, 0)
	polys := TransformPolylines(Flatten(p), Translate(5, 5))
	last := polys[0].Pts[len(polys[0].Pts)-1]
	if last.X != 15 || last.Y != 5 {
		t.Errorf("unexpected transformed point: %+v", last)
	}
}

func TestDeformAppliesPerVertex(t *testing.T) {
	p := New().MoveTo(0, 0).LineTo(0, 10)
	polys := Flatten(p)
	out := Deform(polys, "x + t*10", "y", 1.0)
	if out[0].Pts[0].X != 10 {
		t.Errorf("expected deform x+t*10 at t=1 to shift x by 10, got %v", out[0].Pts[0].X)
	}
}

func TestDeformKeepsOriginalOnParseFailure(t *testing.T) {
	p := New().MoveTo(1, 2).LineTo(3, 4)
	polys := Flatten(p)
	out := Deform(polys, "x +", "y", 0.5)
	if out[0].Pts[0] != polys[0].Pts[0] {
		t.Errorf("expected unchanged vertex on parse failure, got %+v want %+v", out[0].Pts[0], polys[0].Pts[0])
	}
}

func TestStrokeProducesClosedOutline(t *testing.T) {
	p := New().MoveTo(0, 0).LineTo(100, 0)
	outlines := Stroke(Flatten(p), StrokeOptions{Width: 4, Cap: ssb.CapFlat, Join: ssb.JoinRound})
	if len(outlines) == 0 {
		t.Fatal("expected at least one outline polygon")
	}
	e := ExtentsOf(outlines)
	if e.Height() < 3.9 || e.Height() > 4.1 {
		t.Errorf("expected stroke height ~4, got %v", e.Height())
	}
}

func TestFillSolidProducesOpaqueCenter(t *testing.T) {
	p := New().MoveTo(0, 0).LineTo(20, 0).LineTo(20, 20).LineTo(0, 20).Close()
	img := FillSolid(Flatten(p), 20, 20, 0, 0, CornerColor{R: 255, A: 1})
	r, g, b, a := img.At(10, 10).RGBA()
	if a == 0 {
		t.Fatalf("expected opaque pixel at center, got alpha=0")
	}
	if r == 0 || g != 0 || b != 0 {
		t.Errorf("expected red fill, got (%d,%d,%d)", r, g, b)
	}
}

func TestBuildFromGeometryPoints(t *testing.T) {
	g := &ssb.Geometry{Kind: ssb.GeomPoints, Points: []ssb.Point{{X: 5, Y: 5}}}
	p := FromGeometry(g, 1)
	polys := Flatten(p)
	e := ExtentsOf(polys)
	if e.Width() != 1 || e.Height() != 1 {
		t.Errorf("expected unit square extents, got %v x %v", e.Width(), e.Height())
	}
}
