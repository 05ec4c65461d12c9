// Package state implements the render state machine: a mutable cursor of
// style/position fields that ssb.Tag objects mutate as a script's object
// sequence is walked, grounded on a CPU's register/flag mutation style
// (GetRegister/SetRegister, SetFlag) generalized from a fixed register
// file to a style record.
package state

import (
	"nitro-core-dx/internal/path"
	"nitro-core-dx/internal/ssb"
)

// State is the full style/position cursor carried across one event's
// object sequence. The initial state at the start of an event is the one
// New returns (default font size 20 et al.), mirroring how a CPU's
// registers start at a documented reset value rather than a Go zero value.
type State struct {
	FontFamily                         string
	Bold, Italic, Underline, Strikeout bool
	FontSize                           float64
	SpaceH, SpaceV                     float64

	LineWidth  float64
	LineJoin   ssb.LineJoin
	LineCap    ssb.LineCap
	Dashes     []float64
	DashOffset float64

	Mode ssb.GeometryMode

	DeformExprX, DeformExprY string

	// PosX/PosY are ssb.Unset when position is "auto".
	PosX, PosY       float64
	Align            int
	MarginH, MarginV float64
	Direction        ssb.Direction

	Matrix path.Matrix

	Colors     []ssb.Color
	Alphas     []float64
	LineColors []ssb.Color
	LineAlphas []float64

	TextureFile        string
	TexFillX, TexFillY float64
	TexWrap            ssb.WrapMode

	Blend ssb.BlendMode

	BlurH, BlurV float64

	Stencil ssb.StencilMode

	FadeInMS, FadeOutMS float64

	// KaraokeStartMS is negative while no karaoke tag has been applied yet.
	KaraokeStartMS    float64
	KaraokeDurationMS float64
	KaraokeColor      ssb.Color
	KaraokeStyle      ssb.KaraokeStyle
}

// New returns a State with the engine's documented reset values.
func New() *State {
	return &State{
		FontFamily:     "sans-serif",
		FontSize:       20,
		LineWidth:      1,
		Align:          2, // bottom-center, numpad convention
		Matrix:         path.Identity(),
		Colors:         []ssb.Color{{R: 255, G: 255, B: 255}},
		Alphas:         []float64{1},
		LineColors:     []ssb.Color{{}},
		LineAlphas:     []float64{1},
		KaraokeStartMS: -1,
		PosX:           ssb.Unset,
		PosY:           ssb.Unset,
	}
}

// Clone returns a deep copy, used before pass 2 re-walks an event's object
// sequence from the same starting point pass 1 used.
func (s *State) Clone() *State {
	out := *s
	out.Dashes = append([]float64(nil), s.Dashes...)
	out.Colors = append([]ssb.Color(nil), s.Colors...)
	out.Alphas = append([]float64(nil), s.Alphas...)
	out.LineColors = append([]ssb.Color(nil), s.LineColors...)
	out.LineAlphas = append([]float64(nil), s.LineAlphas...)
	return &out
}
