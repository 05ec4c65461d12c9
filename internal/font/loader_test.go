package font

import (
	"os"
	"path/filepath"
	"testing"
)

func withFakeFontDir(t *testing.T, files map[string]string) {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("writing fake font %s: %v", name, err)
		}
	}
	orig := systemFontDirs
	systemFontDirs = []string{dir}
	t.Cleanup(func() { systemFontDirs = orig })
}

func TestDefaultLoaderMatchesStyledVariant(t *testing.T) {
	withFakeFontDir(t, map[string]string{
		"DejaVuSans.ttf":      "plain-bytes",
		"DejaVuSans-Bold.ttf": "bold-bytes",
		"Unrelated.ttf":       "nope",
	})

	got, err := DefaultLoader("DejaVuSans", true, false)
	if err != nil {
		t.Fatalf("DefaultLoader: %v", err)
	}
	if string(got) != "bold-bytes" {
		t.Errorf("expected bold variant bytes, got %q", got)
	}
}

func TestDefaultLoaderFallsBackToPlain(t *testing.T) {
	withFakeFontDir(t, map[string]string{
		"DejaVuSans.ttf": "plain-bytes",
	})

	got, err := DefaultLoader("DejaVuSans", true, true)
	if err != nil {
		t.Fatalf("DefaultLoader: %v", err)
	}
	if string(got) != "plain-bytes" {
		t.Errorf("expected fallback to plain bytes, got %q", got)
	}
}

func TestDefaultLoaderNoMatch(t *testing.T) {
	withFakeFontDir(t, map[string]string{
		"DejaVuSans.ttf": "plain-bytes",
	})

	if _, err := DefaultLoader("NoSuchFamily", false, false); err == nil {
		t.Fatal("expected an error for an unmatched family")
	}
}

func TestNewShaperPropagatesLoadError(t *testing.T) {
	boom := func(family string, bold, italic bool) ([]byte, error) {
		return nil, os.ErrNotExist
	}
	if _, err := NewShaper(Attrs{Family: "Anything", Size: 24}, boom); err == nil {
		t.Fatal("expected NewShaper to propagate the loader error")
	}
}
