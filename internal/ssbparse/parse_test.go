package ssbparse

import (
	"strings"
	"testing"

	"nitro-core-dx/internal/ssb"
)

const sampleScript = `#META
Title: Sample
Author: tester
Version: 1

#FRAME
Width: 1920
Height: 1080

#STYLES
main: {ff=Arial;fz=48;cl=FFFFFF}

#EVENTS
// a comment line, ignored
00:00:01.000-00:00:04.000|main||\main\Hello, world!
00:00:05.000-00:00:06.500||note text|{pos=100,200}Static line
`

func TestParseFullScript(t *testing.T) {
	script, warnings, err := Parse([]byte(sampleScript), "sample.ssb", "/scripts", Options{})
	if err != nil {
		t.Fatalf("unexpected error: %s (warnings: %v)", err, warnings)
	}
	if script.Title != "Sample" || script.Author != "tester" || script.Version != "1" {
		t.Errorf("meta: got %+v", script)
	}
	if script.FrameWidth != 1920 || script.FrameHeight != 1080 {
		t.Errorf("frame: got %dx%d", script.FrameWidth, script.FrameHeight)
	}
	if len(script.Events) != 2 {
		t.Fatalf("got %d events, want 2", len(script.Events))
	}

	first := script.Events[0]
	if first.StartMS != 1000 || first.EndMS != 4000 {
		t.Errorf("event 0 times: got %v-%v", first.StartMS, first.EndMS)
	}
	if len(first.Objects) == 0 {
		t.Fatal("event 0: expected expanded style objects")
	}
	if first.Objects[0].Kind != ssb.ObjTag || first.Objects[0].Tag.Kind != ssb.TagFontFamily {
		t.Errorf("event 0: expected the style's tags to lead, got %+v", first.Objects[0])
	}

	second := script.Events[1]
	if second.Note != "note text" {
		t.Errorf("event 1 note: got %q", second.Note)
	}
	if !second.StaticTags {
		t.Error("event 1 should be eligible for caching (no karaoke/animate)")
	}
}

func TestParseDropsBadEventLineInNonWarningsMode(t *testing.T) {
	src := `#EVENTS
garbage line with no delimiters
00:00:01.000-00:00:02.000|||text
`
	script, warnings, err := Parse([]byte(src), "sample.ssb", "", Options{Warnings: false})
	if err != nil {
		t.Fatalf("unexpected fatal error: %s", err)
	}
	if len(script.Events) != 1 {
		t.Fatalf("got %d events, want 1 (the bad line should be dropped)", len(script.Events))
	}
	if len(warnings) == 0 {
		t.Error("expected a warning to be recorded for the dropped line")
	}
}

func TestParseFailsFastInWarningsMode(t *testing.T) {
	src := `#EVENTS
garbage line with no delimiters
`
	_, _, err := Parse([]byte(src), "sample.ssb", "", Options{Warnings: true})
	if err == nil {
		t.Fatal("expected a fatal error in warnings mode")
	}
	if !strings.Contains(err.Error(), "sample.ssb") {
		t.Errorf("expected the error to name the source path, got %q", err.Error())
	}
}

func TestParseDynamicEventIsNotStatic(t *testing.T) {
	src := `#EVENTS
00:00:00.000-00:00:01.000|||{k=500}karaoke text
`
	script, _, err := Parse([]byte(src), "", "", Options{})
	if err != nil {
		t.Fatal(err)
	}
	if len(script.Events) != 1 {
		t.Fatalf("got %d events, want 1", len(script.Events))
	}
	if script.Events[0].StaticTags {
		t.Error("a karaoke tag should make the event dynamic")
	}
}

func TestParseDiagnosticCarriesStageAndLocation(t *testing.T) {
	src := `#EVENTS
garbage line with no delimiters
`
	_, warnings, err := Parse([]byte(src), "sample.ssb", "", Options{Warnings: false})
	if err != nil {
		t.Fatalf("unexpected fatal error: %s", err)
	}
	if len(warnings) != 1 {
		t.Fatalf("got %d diagnostics, want 1", len(warnings))
	}
	d := warnings[0]
	if d.Severity != SeverityWarning {
		t.Errorf("severity: got %q, want %q", d.Severity, SeverityWarning)
	}
	if d.Stage != StageEvents {
		t.Errorf("stage: got %q, want %q", d.Stage, StageEvents)
	}
	if d.Path != "sample.ssb" || d.Line != 2 {
		t.Errorf("location: got %s:%d, want sample.ssb:2", d.Path, d.Line)
	}
}

func TestHasErrorsDistinguishesSeverity(t *testing.T) {
	warnOnly := []Diagnostic{{Severity: SeverityWarning}}
	if HasErrors(warnOnly) {
		t.Error("expected no errors among warnings only")
	}
	withError := []Diagnostic{{Severity: SeverityWarning}, {Severity: SeverityError}}
	if !HasErrors(withError) {
		t.Error("expected HasErrors to find the Error-severity entry")
	}
}

func TestParseStripsBOMAndComments(t *testing.T) {
	src := "\xEF\xBB\xBF#EVENTS\n// leading comment\n00:00:00.000-00:00:01.000|||hi\n"
	script, _, err := Parse([]byte(src), "", "", Options{})
	if err != nil {
		t.Fatal(err)
	}
	if len(script.Events) != 1 {
		t.Fatalf("got %d events, want 1", len(script.Events))
	}
}
