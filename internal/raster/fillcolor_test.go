package raster

import (
	"testing"

	"nitro-core-dx/internal/ssb"
)

func TestFillColorsIsSolidForScalarColorAndAlpha(t *testing.T) {
	corners, solid := fillColors([]ssb.Color{{R: 10, G: 20, B: 30}}, []float64{0.5})
	if !solid {
		t.Fatal("expected a scalar colour/alpha pair to be reported solid")
	}
	for i, c := range corners {
		if c.R != 10 || c.G != 20 || c.B != 30 || c.A != 0.5 {
			t.Fatalf("corner %d: got %+v", i, c)
		}
	}
}

func TestFillColorsExpandsFourCornerColors(t *testing.T) {
	colors := []ssb.Color{{R: 1}, {R: 2}, {R: 3}, {R: 4}}
	corners, solid := fillColors(colors, []float64{1})
	if solid {
		t.Fatal("expected 4-corner colours to not be reported solid")
	}
	for i := range corners {
		if corners[i].R != byte(i+1) {
			t.Errorf("corner %d: got R=%d, want %d", i, corners[i].R, i+1)
		}
		if corners[i].A != 1 {
			t.Errorf("corner %d: expected the scalar alpha broadcast to all corners, got %v", i, corners[i].A)
		}
	}
}

func TestFillColorsDefaultsToOpaqueWhenAlphaIsUnset(t *testing.T) {
	corners, _ := fillColors([]ssb.Color{{R: 5}}, nil)
	if corners[0].A != 1 {
		t.Errorf("expected default alpha 1 when no alpha tag has fired, got %v", corners[0].A)
	}
}
