package ssbparse

import (
	"testing"

	"nitro-core-dx/internal/ssb"
)

func TestParseGeometryBracketPoints(t *testing.T) {
	g, err := parseGeometryBracket("0,0 100,0 100,100 0,100")
	if err != nil {
		t.Fatal(err)
	}
	if g.Kind != ssb.GeomPoints || len(g.Points) != 4 {
		t.Fatalf("got %+v", g)
	}
	if g.Points[2].X != 100 || g.Points[2].Y != 100 {
		t.Errorf("got %+v", g.Points[2])
	}
}

func TestParseGeometryBracketPath(t *testing.T) {
	g, err := parseGeometryBracket("m 0,0 l 100,0 100,100 z")
	if err != nil {
		t.Fatal(err)
	}
	if g.Kind != ssb.GeomPath {
		t.Fatalf("got kind %v", g.Kind)
	}
	if len(g.Path) != 4 {
		t.Fatalf("got %d ops, want 4 (move, line, line, close)", len(g.Path))
	}
	if g.Path[0].Kind != ssb.PathMove || g.Path[3].Kind != ssb.PathClose {
		t.Errorf("got %+v", g.Path)
	}
}

func TestParseGeometryBracketCurve(t *testing.T) {
	g, err := parseGeometryBracket("m 0,0 c 10,10 20,10 30,0")
	if err != nil {
		t.Fatal(err)
	}
	if len(g.Path) != 2 || g.Path[1].Kind != ssb.PathCurve {
		t.Fatalf("got %+v", g.Path)
	}
	if g.Path[1].CX1 != 10 || g.Path[1].X != 30 {
		t.Errorf("got %+v", g.Path[1])
	}
}

func TestParseGeometryBracketArc(t *testing.T) {
	g, err := parseGeometryBracket("a 50,50 180")
	if err != nil {
		t.Fatal(err)
	}
	if len(g.Path) != 1 || g.Path[0].Kind != ssb.PathArc || g.Path[0].Degrees != 180 {
		t.Fatalf("got %+v", g.Path)
	}
}

func TestParseGeometryBracketEmpty(t *testing.T) {
	g, err := parseGeometryBracket("")
	if err != nil {
		t.Fatal(err)
	}
	if g.Kind != ssb.GeomPoints || len(g.Points) != 0 {
		t.Errorf("got %+v", g)
	}
}
