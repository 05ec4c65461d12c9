package font

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// systemFontDirs is a best-effort list of common system font locations,
// generalized from a fixed file list to a directory list since family
// names here are arbitrary.
var systemFontDirs = []string{
	"/usr/share/fonts/truetype/dejavu",
	"/usr/share/fonts/truetype/liberation",
	"/usr/share/fonts/TTF",
	"/usr/share/fonts/truetype/noto",
	"/usr/share/fonts/truetype",
	"/System/Library/Fonts",
	"C:/Windows/Fonts",
}

// DefaultLoader resolves a family name to a font file by a best-effort
// case-insensitive filename match under systemFontDirs, preferring a Bold/
// Italic variant file when requested. It is the fallback used when a
// renderer is not given an explicit font.Loader; production deployments
// normally supply their own (fontconfig, an embedded face, asset bundle).
// Font discovery beyond this best-effort match is out of scope.
func DefaultLoader(family string, bold, italic bool) ([]byte, error) {
	want := strings.ToLower(strings.ReplaceAll(family, " ", ""))
	var plain, styled string

	for _, dir := range systemFontDirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			name := e.Name()
			lower := strings.ToLower(name)
			if !strings.HasSuffix(lower, ".ttf") && !strings.HasSuffix(lower, ".otf") {
				continue
			}
			if !strings.Contains(lower, want) {
				continue
			}
			full := filepath.Join(dir, name)
			isBoldFile := strings.Contains(lower, "bold")
			isItalicFile := strings.Contains(lower, "italic") || strings.Contains(lower, "oblique")
			if isBoldFile == bold && isItalicFile == italic {
				styled = full
			} else if !isBoldFile && !isItalicFile && plain == "" {
				plain = full
			}
		}
	}

	path := styled
	if path == "" {
		path = plain
	}
	if path == "" {
		return nil, fmt.Errorf("font: no system font matching %q under %v", family, systemFontDirs)
	}
	return os.ReadFile(path)
}
