package ssbparse

import (
	"testing"

	"nitro-core-dx/internal/ssb"
)

func TestParseTagPosition(t *testing.T) {
	tag, err := parseTag("pos", "100,200", true)
	if err != nil {
		t.Fatal(err)
	}
	if tag.Kind != ssb.TagPosition || tag.PosX != 100 || tag.PosY != 200 {
		t.Errorf("got %+v", tag)
	}
}

func TestParseTagPositionBareResetsToAuto(t *testing.T) {
	tag, err := parseTag("pos", "", false)
	if err != nil {
		t.Fatal(err)
	}
	if !ssb.IsUnset(tag.PosX) || !ssb.IsUnset(tag.PosY) {
		t.Errorf("expected unset coordinates, got %+v", tag)
	}
}

func TestParseTagColorSingle(t *testing.T) {
	tag, err := parseTag("cl", "FF00FF", true)
	if err != nil {
		t.Fatal(err)
	}
	if len(tag.Colors) != 1 || tag.Colors[0].R != 0xFF || tag.Colors[0].G != 0x00 || tag.Colors[0].B != 0xFF {
		t.Errorf("got %+v", tag.Colors)
	}
}

func TestParseTagColorFourCorner(t *testing.T) {
	tag, err := parseTag("cl", "FF0000,0000FF", true)
	if err != nil {
		t.Fatal(err)
	}
	if len(tag.Colors) != 2 {
		t.Fatalf("got %d colours, want 2", len(tag.Colors))
	}
	if tag.Colors[0].R != 0xFF || tag.Colors[1].B != 0xFF {
		t.Errorf("got %+v", tag.Colors)
	}
}

func TestParseTagLineDash(t *testing.T) {
	tag, err := parseTag("ld", "5,10,5", true)
	if err != nil {
		t.Fatal(err)
	}
	if tag.DashOffset != 5 {
		t.Errorf("offset: got %v, want 5", tag.DashOffset)
	}
	if len(tag.Dashes) != 2 || tag.Dashes[0] != 10 || tag.Dashes[1] != 5 {
		t.Errorf("dashes: got %v", tag.Dashes)
	}
}

func TestParseTagAnimateColorOnly(t *testing.T) {
	tag, err := parseTag("ani", "(cl=FF0000)", true)
	if err != nil {
		t.Fatal(err)
	}
	if tag.Kind != ssb.TagAnimate {
		t.Fatalf("got kind %v", tag.Kind)
	}
	if !ssb.IsUnset(tag.AnimStart) || !ssb.IsUnset(tag.AnimEnd) {
		t.Errorf("expected default window, got start=%v end=%v", tag.AnimStart, tag.AnimEnd)
	}
	if len(tag.AnimInner) != 1 || tag.AnimInner[0].Kind != ssb.TagColor {
		t.Fatalf("got inner %+v", tag.AnimInner)
	}
}

func TestParseTagAnimateWindowAndRotate(t *testing.T) {
	tag, err := parseTag("ani", "0,1000,(rz=360)", true)
	if err != nil {
		t.Fatal(err)
	}
	if tag.AnimStart != 0 || tag.AnimEnd != 1000 {
		t.Errorf("window: got start=%v end=%v", tag.AnimStart, tag.AnimEnd)
	}
	if len(tag.AnimInner) != 1 || tag.AnimInner[0].Kind != ssb.TagAffine || tag.AnimInner[0].AffineOp != ssb.AffineRotate {
		t.Fatalf("got inner %+v", tag.AnimInner)
	}
	if tag.AnimInner[0].Args[0] != 360 {
		t.Errorf("degrees: got %v", tag.AnimInner[0].Args[0])
	}
}

func TestParseTagRotateXYAndYX(t *testing.T) {
	xy, err := parseTag("rxy", "30,45", true)
	if err != nil {
		t.Fatal(err)
	}
	if xy.Kind != ssb.TagAffine || xy.AffineOp != ssb.AffineRotateXY {
		t.Fatalf("rxy: got %+v", xy)
	}
	if xy.Args[0] != 30 || xy.Args[1] != 45 {
		t.Errorf("rxy angles: got %v,%v", xy.Args[0], xy.Args[1])
	}

	yx, err := parseTag("ryx", "45,30", true)
	if err != nil {
		t.Fatal(err)
	}
	if yx.Kind != ssb.TagAffine || yx.AffineOp != ssb.AffineRotateYX {
		t.Fatalf("ryx: got %+v", yx)
	}
	if yx.Args[0] != 45 || yx.Args[1] != 30 {
		t.Errorf("ryx angles: got %v,%v", yx.Args[0], yx.Args[1])
	}
}

func TestParseTagListSemicolonSeparated(t *testing.T) {
	tags, err := parseTagList("pos=10,20;cl=FF0000;lw=2")
	if err != nil {
		t.Fatal(err)
	}
	if len(tags) != 3 {
		t.Fatalf("got %d tags, want 3", len(tags))
	}
	if tags[0].Kind != ssb.TagPosition || tags[1].Kind != ssb.TagColor || tags[2].Kind != ssb.TagLineWidth {
		t.Errorf("got kinds %v %v %v", tags[0].Kind, tags[1].Kind, tags[2].Kind)
	}
}

func TestParseTagListKeepsNestedSemicolonsInsideAnimate(t *testing.T) {
	tags, err := parseTagList("ani=(rz=360;cl=FF0000);lw=2")
	if err != nil {
		t.Fatal(err)
	}
	if len(tags) != 2 {
		t.Fatalf("got %d tags, want 2 (the nested ';' must not split the outer list)", len(tags))
	}
	if len(tags[0].AnimInner) != 2 {
		t.Errorf("got %d inner tags, want 2", len(tags[0].AnimInner))
	}
}

func TestParseTagUnknownKeyIsAnError(t *testing.T) {
	if _, err := parseTag("bogus", "1", true); err == nil {
		t.Error("expected an error for an unknown tag key")
	}
}
