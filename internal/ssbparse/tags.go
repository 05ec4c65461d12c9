package ssbparse

import (
	"fmt"
	"strings"

	"nitro-core-dx/internal/ssb"
)

// parseTagList parses one {...} block's content (already stripped of the
// braces) into its constituent tags, in order.
func parseTagList(s string) ([]ssb.Tag, error) {
	var tags []ssb.Tag
	for _, tok := range splitTopLevel(s, ';') {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		key, value, hasValue := splitKeyValue(tok)
		tag, err := parseTag(key, value, hasValue)
		if err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}
	return tags, nil
}

// parseTag parses one key=value (or bare key) token into a Tag. Unknown
// keys are reported so the caller can decide, per warnings mode, whether to
// drop them or fail the parse.
func parseTag(key, value string, hasValue bool) (ssb.Tag, error) {
	switch key {
	case "ff":
		return ssb.Tag{Kind: ssb.TagFontFamily, FontFamily: value}, nil
	case "fst":
		flags := strings.Split(value, ",")
		t := ssb.Tag{Kind: ssb.TagFontStyle}
		for _, f := range flags {
			switch strings.TrimSpace(f) {
			case "b":
				t.Bold = true
			case "i":
				t.Italic = true
			case "u":
				t.Underline = true
			case "s":
				t.Strikeout = true
			}
		}
		return t, nil
	case "fz":
		return ssb.Tag{Kind: ssb.TagFontSize, FontSize: parseFloat1(value, 20)}, nil
	case "fsp":
		f, err := parseFloats(value)
		if err != nil {
			return ssb.Tag{}, err
		}
		return ssb.Tag{Kind: ssb.TagFontSpace, SpaceH: at(f, 0), SpaceV: at(f, 1)}, nil
	case "lw":
		return ssb.Tag{Kind: ssb.TagLineWidth, LineWidth: parseFloat1(value, 1)}, nil
	case "ls":
		parts := strings.Split(value, ",")
		return ssb.Tag{Kind: ssb.TagLineStyle, LineJoin: parseLineJoin(partAt(parts, 0)), LineCap: parseLineCap(partAt(parts, 1))}, nil
	case "ld":
		f, err := parseFloats(value)
		if err != nil {
			return ssb.Tag{}, err
		}
		if len(f) == 0 {
			return ssb.Tag{}, fmt.Errorf("ld: expected offset and at least one dash")
		}
		return ssb.Tag{Kind: ssb.TagLineDash, DashOffset: f[0], Dashes: f[1:]}, nil
	case "mode":
		return ssb.Tag{Kind: ssb.TagMode, Mode: parseMode(value)}, nil
	case "deform":
		parts := splitTopLevel(value, ',')
		return ssb.Tag{Kind: ssb.TagDeform, DeformExprX: unwrapParen(partAt(parts, 0)), DeformExprY: unwrapParen(partAt(parts, 1))}, nil
	case "pos":
		if !hasValue {
			return ssb.Tag{Kind: ssb.TagPosition, PosX: ssb.Unset, PosY: ssb.Unset}, nil
		}
		f, err := parseFloats(value)
		if err != nil {
			return ssb.Tag{}, err
		}
		return ssb.Tag{Kind: ssb.TagPosition, PosX: at(f, 0), PosY: at(f, 1)}, nil
	case "align":
		return ssb.Tag{Kind: ssb.TagAlign, Align: int(parseFloat1(value, 2))}, nil
	case "margin":
		f, err := parseFloats(value)
		if err != nil {
			return ssb.Tag{}, err
		}
		return ssb.Tag{Kind: ssb.TagMargin, MarginH: at(f, 0), MarginV: at(f, 1)}, nil
	case "dir":
		return ssb.Tag{Kind: ssb.TagDirection, Direction: parseDirection(value)}, nil
	case "identity":
		return ssb.Tag{Kind: ssb.TagIdentity}, nil
	case "tx":
		f, err := parseFloats(value)
		if err != nil {
			return ssb.Tag{}, err
		}
		return ssb.Tag{Kind: ssb.TagAffine, AffineOp: ssb.AffineTranslate, Args: [6]float64{at(f, 0), at(f, 1)}}, nil
	case "sc":
		f, err := parseFloats(value)
		if err != nil {
			return ssb.Tag{}, err
		}
		return ssb.Tag{Kind: ssb.TagAffine, AffineOp: ssb.AffineScale, Args: [6]float64{at(f, 0), at(f, 1)}}, nil
	case "rz":
		return ssb.Tag{Kind: ssb.TagAffine, AffineOp: ssb.AffineRotate, Args: [6]float64{parseFloat1(value, 0)}}, nil
	case "rxy":
		f, err := parseFloats(value)
		if err != nil {
			return ssb.Tag{}, err
		}
		return ssb.Tag{Kind: ssb.TagAffine, AffineOp: ssb.AffineRotateXY, Args: [6]float64{at(f, 0), at(f, 1)}}, nil
	case "ryx":
		f, err := parseFloats(value)
		if err != nil {
			return ssb.Tag{}, err
		}
		return ssb.Tag{Kind: ssb.TagAffine, AffineOp: ssb.AffineRotateYX, Args: [6]float64{at(f, 0), at(f, 1)}}, nil
	case "sh":
		f, err := parseFloats(value)
		if err != nil {
			return ssb.Tag{}, err
		}
		return ssb.Tag{Kind: ssb.TagAffine, AffineOp: ssb.AffineShear, Args: [6]float64{at(f, 0), at(f, 1)}}, nil
	case "tf":
		f, err := parseFloats(value)
		if err != nil {
			return ssb.Tag{}, err
		}
		var args [6]float64
		for i := 0; i < 6 && i < len(f); i++ {
			args[i] = f[i]
		}
		return ssb.Tag{Kind: ssb.TagAffine, AffineOp: ssb.AffineTransform, Args: args}, nil
	case "cl":
		c, err := parseColors(value)
		if err != nil {
			return ssb.Tag{}, err
		}
		return ssb.Tag{Kind: ssb.TagColor, Colors: c}, nil
	case "al":
		f, err := parseFloats(value)
		if err != nil {
			return ssb.Tag{}, err
		}
		return ssb.Tag{Kind: ssb.TagAlpha, Alphas: f}, nil
	case "lc":
		c, err := parseColors(value)
		if err != nil {
			return ssb.Tag{}, err
		}
		return ssb.Tag{Kind: ssb.TagLineColor, Colors: c}, nil
	case "la":
		f, err := parseFloats(value)
		if err != nil {
			return ssb.Tag{}, err
		}
		return ssb.Tag{Kind: ssb.TagLineAlpha, Alphas: f}, nil
	case "texture":
		return ssb.Tag{Kind: ssb.TagTexture, TextureFile: value}, nil
	case "texfill":
		parts := splitTopLevel(value, ',')
		return ssb.Tag{
			Kind: ssb.TagTexFill,
			TexFillX: parseFloat1(partAt(parts, 0), 0), TexFillY: parseFloat1(partAt(parts, 1), 0),
			TexWrap: parseWrap(partAt(parts, 2)),
		}, nil
	case "blend":
		return ssb.Tag{Kind: ssb.TagBlend, Blend: parseBlend(value)}, nil
	case "blur":
		f, err := parseFloats(value)
		if err != nil {
			return ssb.Tag{}, err
		}
		return ssb.Tag{Kind: ssb.TagBlur, BlurH: at(f, 0), BlurV: at(f, 1)}, nil
	case "stencil":
		return ssb.Tag{Kind: ssb.TagStencil, Stencil: parseStencil(value)}, nil
	case "fade":
		f, err := parseFloats(value)
		if err != nil {
			return ssb.Tag{}, err
		}
		return ssb.Tag{Kind: ssb.TagFade, FadeInMS: at(f, 0), FadeOutMS: at(f, 1)}, nil
	case "ani":
		return parseAnimate(value)
	case "k":
		parts := splitTopLevel(value, ',')
		advance := ssb.KaraokeDuration
		if strings.TrimSpace(partAt(parts, 0)) == "set" {
			advance = ssb.KaraokeSet
		}
		return ssb.Tag{Kind: ssb.TagKaraoke, KaraokeAdvance: advance, KaraokeMS: parseFloat1(partAt(parts, 1), 0)}, nil
	case "kc":
		c, err := parseHexColor(value)
		if err != nil {
			return ssb.Tag{}, err
		}
		return ssb.Tag{Kind: ssb.TagKaraokeColor, KaraokeColor: c}, nil
	case "km":
		return ssb.Tag{Kind: ssb.TagKaraokeMode, KaraokeStyle: parseKaraokeStyle(value)}, nil
	}
	return ssb.Tag{}, fmt.Errorf("unknown tag %q", key)
}

// parseAnimate parses "ani=[start,end,][expr,](inner;inner;...)". The
// leading comma-separated arguments before the trailing parenthesized inner
// tag list are, by count: 0 -> default window and no expression; 1 -> an
// expression only; 2 -> start,end; 3 -> start,end,expression.
func parseAnimate(value string) (ssb.Tag, error) {
	parts := splitTopLevel(value, ',')
	if len(parts) == 0 {
		return ssb.Tag{}, fmt.Errorf("ani: missing inner tag list")
	}
	inner := unwrapParen(parts[len(parts)-1])
	args := parts[:len(parts)-1]

	t := ssb.Tag{Kind: ssb.TagAnimate, AnimStart: ssb.Unset, AnimEnd: ssb.Unset}
	switch len(args) {
	case 1:
		t.AnimExpr = strings.TrimSpace(args[0])
	case 2:
		t.AnimStart = parseFloat1(args[0], ssb.Unset)
		t.AnimEnd = parseFloat1(args[1], ssb.Unset)
	case 3:
		t.AnimStart = parseFloat1(args[0], ssb.Unset)
		t.AnimEnd = parseFloat1(args[1], ssb.Unset)
		t.AnimExpr = strings.TrimSpace(args[2])
	}

	innerTags, err := parseTagList(inner)
	if err != nil {
		return ssb.Tag{}, fmt.Errorf("ani: %w", err)
	}
	t.AnimInner = innerTags
	return t, nil
}

func at(f []float64, i int) float64 {
	if i < len(f) {
		return f[i]
	}
	return 0
}

func partAt(parts []string, i int) string {
	if i < len(parts) {
		return strings.TrimSpace(parts[i])
	}
	return ""
}
