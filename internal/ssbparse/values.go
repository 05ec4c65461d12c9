package ssbparse

import (
	"fmt"
	"strconv"
	"strings"

	"nitro-core-dx/internal/ssb"
)

func parseFloats(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	out := make([]float64, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return nil, fmt.Errorf("bad number %q: %w", p, err)
		}
		out = append(out, v)
	}
	return out, nil
}

func parseFloat1(s string, def float64) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return def
	}
	return v
}

func parseColors(s string) ([]ssb.Color, error) {
	parts := strings.Split(s, ",")
	out := make([]ssb.Color, 0, len(parts))
	for _, p := range parts {
		c, err := parseHexColor(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

func parseHexColor(s string) (ssb.Color, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return ssb.Color{}, fmt.Errorf("bad colour %q: want 6 hex digits", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return ssb.Color{}, fmt.Errorf("bad colour %q: %w", s, err)
	}
	return ssb.Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

func parseDirection(s string) ssb.Direction {
	switch strings.ToLower(s) {
	case "rtl":
		return ssb.DirRTL
	case "ttb":
		return ssb.DirTTB
	default:
		return ssb.DirLTR
	}
}

func parseMode(s string) ssb.GeometryMode {
	switch strings.ToLower(s) {
	case "wire":
		return ssb.ModeWire
	case "boxed":
		return ssb.ModeBoxed
	default:
		return ssb.ModeFill
	}
}

func parseWrap(s string) ssb.WrapMode {
	switch strings.ToLower(s) {
	case "repeat":
		return ssb.WrapRepeat
	case "mirror":
		return ssb.WrapMirror
	case "flow":
		return ssb.WrapFlow
	default:
		return ssb.WrapClamp
	}
}

func parseBlend(s string) ssb.BlendMode {
	switch strings.ToLower(s) {
	case "add":
		return ssb.BlendAdd
	case "sub":
		return ssb.BlendSub
	case "mul":
		return ssb.BlendMul
	case "screen":
		return ssb.BlendScreen
	case "diff":
		return ssb.BlendDiff
	default:
		return ssb.BlendOver
	}
}

func parseStencil(s string) ssb.StencilMode {
	switch strings.ToLower(s) {
	case "set":
		return ssb.StencilSet
	case "unset":
		return ssb.StencilUnset
	case "inside":
		return ssb.StencilInside
	case "outside":
		return ssb.StencilOutside
	default:
		return ssb.StencilOff
	}
}

func parseKaraokeStyle(s string) ssb.KaraokeStyle {
	switch strings.ToLower(s) {
	case "solid":
		return ssb.KaraokeSolid
	case "glow":
		return ssb.KaraokeGlow
	default:
		return ssb.KaraokeFill
	}
}

func parseLineJoin(s string) ssb.LineJoin {
	switch strings.ToLower(s) {
	case "bevel":
		return ssb.JoinBevel
	case "miter":
		return ssb.JoinMiter
	default:
		return ssb.JoinRound
	}
}

func parseLineCap(s string) ssb.LineCap {
	switch strings.ToLower(s) {
	case "flat":
		return ssb.CapFlat
	case "square":
		return ssb.CapSquare
	default:
		return ssb.CapRound
	}
}
