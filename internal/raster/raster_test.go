package raster

import (
	"testing"

	"nitro-core-dx/internal/ssb"
)

func TestRasterizeEventProducesATileForAPositionedPoint(t *testing.T) {
	ev := &ssb.Event{
		StartMS: 0,
		EndMS:   1000,
		Objects: []ssb.Object{
			{Kind: ssb.ObjTag, Tag: &ssb.Tag{Kind: ssb.TagPosition, PosX: 10.5, PosY: 5.5}},
			{Kind: ssb.ObjGeometry, Geometry: &ssb.Geometry{Kind: ssb.GeomPoints, Points: []ssb.Point{{X: 0, Y: 0}}}},
		},
	}
	cfg := Config{FrameWidth: 100, FrameHeight: 100}

	tiles := RasterizeEvent(ev, 500, cfg)
	if len(tiles) != 1 {
		t.Fatalf("expected 1 tile, got %d", len(tiles))
	}
	tile := tiles[0]
	if tile.X != 9 || tile.Y != 4 {
		t.Fatalf("expected tile origin (9,4), got (%d,%d)", tile.X, tile.Y)
	}
	b := tile.Image.Bounds()
	if b.Dx() != 3 || b.Dy() != 3 {
		t.Fatalf("expected a 3x3 tile, got %dx%d", b.Dx(), b.Dy())
	}

	insideOff := tile.Image.PixOffset(1, 1)
	if a := tile.Image.Pix[insideOff+3]; a != 255 {
		t.Errorf("expected the pixel fully inside the unit square to be opaque, got alpha=%d", a)
	}
	outsideOff := tile.Image.PixOffset(0, 0)
	if a := tile.Image.Pix[outsideOff+3]; a != 0 {
		t.Errorf("expected the pixel outside the unit square to be transparent, got alpha=%d", a)
	}
	if tile.Blend != ssb.BlendOver {
		t.Errorf("expected the default blend mode, got %v", tile.Blend)
	}
}

func TestRasterizeEventReturnsNoTilesForAnEmptyEvent(t *testing.T) {
	ev := &ssb.Event{StartMS: 0, EndMS: 1000}
	cfg := Config{FrameWidth: 100, FrameHeight: 100}

	if tiles := RasterizeEvent(ev, 500, cfg); tiles != nil {
		t.Errorf("expected no tiles for an event with no geometry, got %d", len(tiles))
	}
}

func TestRasterizeEventHonoursExplicitBlendMode(t *testing.T) {
	ev := &ssb.Event{
		StartMS: 0,
		EndMS:   1000,
		Objects: []ssb.Object{
			{Kind: ssb.ObjTag, Tag: &ssb.Tag{Kind: ssb.TagPosition, PosX: 10.5, PosY: 5.5}},
			{Kind: ssb.ObjTag, Tag: &ssb.Tag{Kind: ssb.TagBlend, Blend: ssb.BlendAdd}},
			{Kind: ssb.ObjGeometry, Geometry: &ssb.Geometry{Kind: ssb.GeomPoints, Points: []ssb.Point{{X: 0, Y: 0}}}},
		},
	}
	cfg := Config{FrameWidth: 100, FrameHeight: 100}

	tiles := RasterizeEvent(ev, 500, cfg)
	if len(tiles) != 1 {
		t.Fatalf("expected 1 tile, got %d", len(tiles))
	}
	if tiles[0].Blend != ssb.BlendAdd {
		t.Errorf("expected blend=add to carry through to the tile, got %v", tiles[0].Blend)
	}
}
