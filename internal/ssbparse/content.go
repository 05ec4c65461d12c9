package ssbparse

import (
	"fmt"
	"strings"

	"nitro-core-dx/internal/ssb"
)

const maxStyleExpansions = 64

// expandStyles replaces every "\name\" reference with the named style's raw
// content, recursively, up to maxStyleExpansions deep to guard against a
// reference cycle.
func expandStyles(text string, styles map[string]string) (string, error) {
	for i := 0; i < maxStyleExpansions; i++ {
		expanded, changed := expandStylesOnce(text, styles)
		if !changed {
			return expanded, nil
		}
		text = expanded
	}
	return "", fmt.Errorf("style expansion exceeded %d levels (possible cycle)", maxStyleExpansions)
}

func expandStylesOnce(text string, styles map[string]string) (string, bool) {
	var b strings.Builder
	changed := false
	for i := 0; i < len(text); {
		if text[i] == '\\' && i+1 < len(text) && text[i+1] != '{' {
			if end := strings.IndexByte(text[i+1:], '\\'); end >= 0 {
				name := text[i+1 : i+1+end]
				if content, ok := styles[name]; ok {
					b.WriteString(content)
					i = i + 1 + end + 1
					changed = true
					continue
				}
			}
		}
		b.WriteByte(text[i])
		i++
	}
	return b.String(), changed
}

// parseObjects parses one event's already style-expanded text into its
// object sequence: literal runs become GeomText objects (with \n and \t
// escapes expanded), "{...}" blocks become one or more Tag objects, and
// "[...]" blocks become one Geometry object.
func parseObjects(text string) ([]ssb.Object, error) {
	var objs []ssb.Object
	var literal strings.Builder

	flush := func() {
		if literal.Len() == 0 {
			return
		}
		objs = append(objs, ssb.Object{Kind: ssb.ObjGeometry, Geometry: &ssb.Geometry{Kind: ssb.GeomText, Text: literal.String()}})
		literal.Reset()
	}

	for i := 0; i < len(text); {
		switch {
		case strings.HasPrefix(text[i:], `\{`):
			literal.WriteByte('{')
			i += 2
		case strings.HasPrefix(text[i:], `\n`):
			literal.WriteByte('\n')
			i += 2
		case strings.HasPrefix(text[i:], `\t`):
			literal.WriteString("    ")
			i += 2
		case text[i] == '{':
			end := strings.IndexByte(text[i:], '}')
			if end < 0 {
				return nil, fmt.Errorf("unterminated tag block starting at byte %d", i)
			}
			flush()
			tags, err := parseTagList(text[i+1 : i+end])
			if err != nil {
				return nil, err
			}
			for _, t := range tags {
				tc := t
				objs = append(objs, ssb.Object{Kind: ssb.ObjTag, Tag: &tc})
			}
			i += end + 1
		case text[i] == '[':
			end := strings.IndexByte(text[i:], ']')
			if end < 0 {
				return nil, fmt.Errorf("unterminated geometry block starting at byte %d", i)
			}
			flush()
			g, err := parseGeometryBracket(text[i+1 : i+end])
			if err != nil {
				return nil, err
			}
			objs = append(objs, ssb.Object{Kind: ssb.ObjGeometry, Geometry: g})
			i += end + 1
		default:
			literal.WriteByte(text[i])
			i++
		}
	}
	flush()
	return objs, nil
}
