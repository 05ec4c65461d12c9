package state

import (
	"testing"

	"nitro-core-dx/internal/path"
	"nitro-core-dx/internal/ssb"
)

func TestApplyFontSize(t *testing.T) {
	s := New()
	s.Apply(ssb.Tag{Kind: ssb.TagFontSize, FontSize: 42}, 0, 1000)
	if s.FontSize != 42 {
		t.Errorf("expected FontSize 42, got %v", s.FontSize)
	}
}

func TestApplyPositionAutoSentinel(t *testing.T) {
	s := New()
	posChanged, _ := s.Apply(ssb.Tag{Kind: ssb.TagPosition, PosX: ssb.Unset, PosY: ssb.Unset}, 0, 1000)
	if !posChanged {
		t.Fatal("expected posChanged on any position tag")
	}
	if !ssb.IsUnset(s.PosX) || !ssb.IsUnset(s.PosY) {
		t.Errorf("expected auto position, got (%v,%v)", s.PosX, s.PosY)
	}
}

func TestApplyAffineComposesRatherThanReplaces(t *testing.T) {
	s := New()
	s.Apply(ssb.Tag{Kind: ssb.TagAffine, AffineOp: ssb.AffineTranslate, Args: [6]float64{10, 0}}, 0, 1000)
	s.Apply(ssb.Tag{Kind: ssb.TagAffine, AffineOp: ssb.AffineTranslate, Args: [6]float64{0, 5}}, 0, 1000)
	x, y := s.Matrix.Apply(0, 0)
	if x != 10 || y != 5 {
		t.Errorf("expected composed translation (10,5), got (%v,%v)", x, y)
	}
}

func TestApplyIdentityResetsMatrix(t *testing.T) {
	s := New()
	s.Apply(ssb.Tag{Kind: ssb.TagAffine, AffineOp: ssb.AffineScale, Args: [6]float64{2, 2}}, 0, 1000)
	s.Apply(ssb.Tag{Kind: ssb.TagIdentity}, 0, 1000)
	if s.Matrix != path.Identity() {
		t.Errorf("expected identity matrix, got %+v", s.Matrix)
	}
}

func TestApplyColorSingleValueSentinel(t *testing.T) {
	s := New()
	s.Apply(ssb.Tag{Kind: ssb.TagAlpha, Alphas: []float64{-0.5}}, 0, 1000)
	if len(s.Alphas) != 1 || s.Alphas[0] != 0.5 {
		t.Errorf("expected single alpha 0.5, got %+v", s.Alphas)
	}
}

func TestApplyColorFourCorner(t *testing.T) {
	s := New()
	colors := []ssb.Color{{R: 1}, {R: 2}, {R: 3}, {R: 4}}
	s.Apply(ssb.Tag{Kind: ssb.TagColor, Colors: colors}, 0, 1000)
	if len(s.Colors) != 4 {
		t.Fatalf("expected 4 colors, got %d", len(s.Colors))
	}
}

func TestApplyColorTwoValueWrapsBottomLeftToFirst(t *testing.T) {
	s := New()
	c0, c1 := ssb.Color{R: 1}, ssb.Color{R: 2}
	s.Apply(ssb.Tag{Kind: ssb.TagColor, Colors: []ssb.Color{c0, c1}}, 0, 1000)
	want := [4]ssb.Color{c0, c1, c1, c0}
	got := [4]ssb.Color{s.Colors[0], s.Colors[1], s.Colors[2], s.Colors[3]}
	if got != want {
		t.Errorf("expected TL,TR,BR,BL = %+v, got %+v", want, got)
	}
}

func TestApplyAlphaTwoValueWrapsBottomLeftToFirst(t *testing.T) {
	s := New()
	s.Apply(ssb.Tag{Kind: ssb.TagAlpha, Alphas: []float64{0.2, 0.8}}, 0, 1000)
	want := [4]float64{0.2, 0.8, 0.8, 0.2}
	got := [4]float64{s.Alphas[0], s.Alphas[1], s.Alphas[2], s.Alphas[3]}
	if got != want {
		t.Errorf("expected TL,TR,BR,BL = %+v, got %+v", want, got)
	}
}

func TestFadeProgressRamps(t *testing.T) {
	if p := FadeProgress(200, 200, 0, 1000); p != 0 {
		t.Errorf("expected p=0 at start of fade-in, got %v", p)
	}
	if p := FadeProgress(200, 200, 100, 1000); p != 0.5 {
		t.Errorf("expected p=0.5 halfway through fade-in, got %v", p)
	}
	if p := FadeProgress(200, 200, 500, 1000); p != 1 {
		t.Errorf("expected steady p=1 in the middle, got %v", p)
	}
	if p := FadeProgress(200, 200, 900, 1000); p != 0.5 {
		t.Errorf("expected p=0.5 halfway through fade-out, got %v", p)
	}
}

func TestApplyFadeScalesAlphas(t *testing.T) {
	s := New()
	s.Apply(ssb.Tag{Kind: ssb.TagFade, FadeInMS: 200, FadeOutMS: 200}, 100, 1000)
	if s.Alphas[0] != 0.5 {
		t.Errorf("expected alpha scaled to 0.5, got %v", s.Alphas[0])
	}
}

func TestApplyKaraokeDurationAccumulates(t *testing.T) {
	s := New()
	s.Apply(ssb.Tag{Kind: ssb.TagKaraoke, KaraokeAdvance: ssb.KaraokeDuration, KaraokeMS: 300}, 0, 1000)
	if s.KaraokeStartMS != 0 || s.KaraokeDurationMS != 300 {
		t.Fatalf("unexpected karaoke state after first duration: start=%v dur=%v", s.KaraokeStartMS, s.KaraokeDurationMS)
	}
	s.Apply(ssb.Tag{Kind: ssb.TagKaraoke, KaraokeAdvance: ssb.KaraokeDuration, KaraokeMS: 200}, 0, 1000)
	if s.KaraokeStartMS != 300 || s.KaraokeDurationMS != 200 {
		t.Errorf("expected start to advance by previous duration, got start=%v dur=%v", s.KaraokeStartMS, s.KaraokeDurationMS)
	}
}

func TestApplyKaraokeSet(t *testing.T) {
	s := New()
	s.Apply(ssb.Tag{Kind: ssb.TagKaraoke, KaraokeAdvance: ssb.KaraokeSet, KaraokeMS: 750}, 0, 1000)
	if s.KaraokeStartMS != 750 || s.KaraokeDurationMS != 0 {
		t.Errorf("expected start=750 dur=0, got start=%v dur=%v", s.KaraokeStartMS, s.KaraokeDurationMS)
	}
}

func TestApplyAnimateInterpolatesNumericTag(t *testing.T) {
	s := New()
	s.FontSize = 10
	anim := ssb.Tag{
		Kind:      ssb.TagAnimate,
		AnimStart: ssb.Unset,
		AnimEnd:   ssb.Unset,
		AnimInner: []ssb.Tag{{Kind: ssb.TagFontSize, FontSize: 30}},
	}
	s.Apply(anim, 500, 1000)
	if s.FontSize != 20 {
		t.Errorf("expected halfway interpolation to 20, got %v", s.FontSize)
	}
}

func TestApplyAnimateSwitchesDiscreteTagOnlyAtEnd(t *testing.T) {
	s := New()
	s.Mode = ssb.ModeFill
	anim := ssb.Tag{
		Kind:      ssb.TagAnimate,
		AnimStart: ssb.Unset,
		AnimEnd:   ssb.Unset,
		AnimInner: []ssb.Tag{{Kind: ssb.TagMode, Mode: ssb.ModeWire}},
	}
	s.Apply(anim, 500, 1000)
	if s.Mode != ssb.ModeFill {
		t.Errorf("expected mode unchanged before animate window ends, got %v", s.Mode)
	}
	s.Apply(anim, 1000, 1000)
	if s.Mode != ssb.ModeWire {
		t.Errorf("expected mode switched at window end, got %v", s.Mode)
	}
}

func TestApplyAnimateIgnoresNestedFadeAndKaraoke(t *testing.T) {
	s := New()
	anim := ssb.Tag{
		Kind:      ssb.TagAnimate,
		AnimStart: ssb.Unset,
		AnimEnd:   ssb.Unset,
		AnimInner: []ssb.Tag{
			{Kind: ssb.TagFade, FadeInMS: 100, FadeOutMS: 100},
			{Kind: ssb.TagKaraoke, KaraokeAdvance: ssb.KaraokeSet, KaraokeMS: 50},
		},
	}
	s.Apply(anim, 500, 1000)
	if s.Alphas[0] != 1 {
		t.Errorf("expected fade inside animate to be ignored, alpha=%v", s.Alphas[0])
	}
	if s.KaraokeStartMS != -1 {
		t.Errorf("expected karaoke inside animate to be ignored, start=%v", s.KaraokeStartMS)
	}
}

func TestApplyAnimateNegativeBoundsOffsetFromDuration(t *testing.T) {
	s := New()
	s.FontSize = 0
	anim := ssb.Tag{
		Kind:      ssb.TagAnimate,
		AnimStart: -200, // offset from inner_duration: window starts at 800
		AnimEnd:   1000,
		AnimInner: []ssb.Tag{{Kind: ssb.TagFontSize, FontSize: 100}},
	}
	s.Apply(anim, 900, 1000)
	if s.FontSize <= 0 || s.FontSize >= 100 {
		t.Errorf("expected partial progress within the offset window, got %v", s.FontSize)
	}
}
