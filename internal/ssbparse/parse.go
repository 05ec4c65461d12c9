// Package ssbparse parses the SSB script text format (#META/#FRAME/#STYLES/
// #EVENTS sections, inline tag lists) into the typed ssb.Script model,
// grounded on a two-pass line-oriented assembler: a first pass
// that resolves sections and styles, a second that builds events against
// the now-expanded text.
package ssbparse

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"nitro-core-dx/internal/ssb"
	"nitro-core-dx/internal/ssberr"
)

// Options controls how parse failures are handled.
type Options struct {
	// Warnings, when true, makes a bad tag/value fatal (ssberr.ErrScriptSyntax).
	// When false the offending tag is dropped and parsing continues
	// best-effort.
	Warnings bool
}

type section int

const (
	sectionNone section = iota
	sectionMeta
	sectionFrame
	sectionStyles
	sectionEvents
)

type parser struct {
	opts        Options
	path        string
	script      *ssb.Script
	diagnostics []Diagnostic
}

// Parse parses SSB script source read from data. path is used only for
// error messages and to resolve relative texture paths (via sourceDir). The
// returned Diagnostics are every non-fatal finding collected along the way.
// Frame and style findings are collected in either mode; with
// Options.Warnings set, the first bad event line aborts parsing with an
// error instead of becoming a Diagnostic.
func Parse(data []byte, path, sourceDir string, opts Options) (*ssb.Script, []Diagnostic, error) {
	data = stripBOM(data)
	p := &parser{
		opts: opts,
		path: path,
		script: &ssb.Script{
			Styles:    make(map[string]string),
			SourceDir: sourceDir,
		},
	}

	cur := sectionNone
	var eventLines []lineAt

	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		raw := scanner.Text()
		line := strings.TrimRight(raw, "\r")
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "//") {
			continue
		}
		if s, ok := sectionHeader(trimmed); ok {
			cur = s
			continue
		}

		switch cur {
		case sectionMeta:
			p.parseMetaLine(trimmed)
		case sectionFrame:
			p.parseFrameLine(trimmed, lineNo)
		case sectionStyles:
			p.parseStyleLine(trimmed, lineNo)
		case sectionEvents:
			eventLines = append(eventLines, lineAt{text: trimmed, line: lineNo})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("%w: %s: %s", ssberr.ErrScriptRead, path, err)
	}

	for _, el := range eventLines {
		ev, err := p.parseEventLine(el.text, el.line)
		if err != nil {
			if p.opts.Warnings {
				return nil, p.diagnostics, err
			}
			d := diagnosticOf(err)
			d.Severity = SeverityWarning
			p.diagnostics = append(p.diagnostics, d)
			continue
		}
		if ev != nil {
			p.script.Events = append(p.script.Events, ev)
		}
	}

	return p.script, p.diagnostics, nil
}

// diagnosticOf extracts the Diagnostic a *parseError carries, or wraps a
// plain error (e.g. from a package that doesn't know about Diagnostic) as a
// Warning with no location.
func diagnosticOf(err error) Diagnostic {
	var pe *parseError
	if errors.As(err, &pe) {
		return pe.diag
	}
	return Diagnostic{Severity: SeverityWarning, Stage: StageEvents, Message: err.Error()}
}

type lineAt struct {
	text string
	line int
}

func stripBOM(data []byte) []byte {
	return bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF})
}

func sectionHeader(line string) (section, bool) {
	switch strings.ToUpper(line) {
	case "#META":
		return sectionMeta, true
	case "#FRAME":
		return sectionFrame, true
	case "#STYLES":
		return sectionStyles, true
	case "#EVENTS":
		return sectionEvents, true
	}
	return sectionNone, false
}

func (p *parser) parseMetaLine(line string) {
	key, val, ok := splitFieldColon(line)
	if !ok {
		return
	}
	switch strings.ToLower(key) {
	case "title":
		p.script.Title = val
	case "author":
		p.script.Author = val
	case "description":
		p.script.Description = val
	case "version":
		p.script.Version = val
	}
}

func (p *parser) parseFrameLine(line string, lineNo int) {
	key, val, ok := splitFieldColon(line)
	if !ok {
		return
	}
	n, err := strconv.Atoi(strings.TrimSpace(val))
	if err != nil {
		p.diagnostics = append(p.diagnostics, p.diagAt(StageFrame, lineNo, "bad frame value %q: %s", val, err))
		return
	}
	switch strings.ToLower(key) {
	case "width":
		p.script.FrameWidth = n
	case "height":
		p.script.FrameHeight = n
	}
}

func (p *parser) parseStyleLine(line string, lineNo int) {
	key, val, ok := splitFieldColon(line)
	if !ok {
		p.diagnostics = append(p.diagnostics, p.diagAt(StageStyles, lineNo, "malformed style line %q", line))
		return
	}
	p.script.Styles[key] = val
}

func splitFieldColon(line string) (key, value string, ok bool) {
	i := strings.IndexByte(line, ':')
	if i < 0 {
		return "", "", false
	}
	return strings.TrimSpace(line[:i]), strings.TrimSpace(line[i+1:]), true
}

// parseEventLine parses one "start-end|style|note|text" line.
func (p *parser) parseEventLine(line string, lineNo int) (*ssb.Event, error) {
	fields := strings.SplitN(line, "|", 4)
	if len(fields) < 4 {
		return nil, p.errf(lineNo, "expected start-end|style|note|text, got %q", line)
	}
	times := strings.SplitN(fields[0], "-", 2)
	if len(times) != 2 {
		return nil, p.errf(lineNo, "expected start-end, got %q", fields[0])
	}
	start, err := parseTime(times[0])
	if err != nil {
		return nil, p.errf(lineNo, "%s", err)
	}
	end, err := parseTime(times[1])
	if err != nil {
		return nil, p.errf(lineNo, "%s", err)
	}
	if !(start < end) {
		return nil, p.errf(lineNo, "event start %v must be before end %v", start, end)
	}

	text := fields[3]
	if style := strings.TrimSpace(fields[1]); style != "" {
		if content, ok := p.script.Styles[style]; ok {
			text = content + text
		}
	}
	expanded, err := expandStyles(text, p.script.Styles)
	if err != nil {
		return nil, p.errf(lineNo, "%s", err)
	}

	objs, err := parseObjects(expanded)
	if err != nil {
		return nil, p.errf(lineNo, "%s", err)
	}

	return &ssb.Event{
		StartMS:    start,
		EndMS:      end,
		StaticTags: !ssb.HasDynamicTag(objs),
		Objects:    objs,
		Note:       fields[2],
	}, nil
}

// diagAt builds a Warning-severity Diagnostic located at line, for the
// non-fatal best-effort path.
func (p *parser) diagAt(stage Stage, line int, format string, args ...any) Diagnostic {
	return Diagnostic{
		Severity: SeverityWarning,
		Stage:    stage,
		Message:  fmt.Sprintf(format, args...),
		Path:     p.path,
		Line:     line,
	}
}

// errf builds a fatal, Error-severity event-stage Diagnostic, wrapped so
// errors.Is(err, ssberr.ErrScriptSyntax) still holds for callers that only
// care about the sentinel.
func (p *parser) errf(line int, format string, args ...any) error {
	diag := Diagnostic{
		Severity: SeverityError,
		Stage:    StageEvents,
		Message:  fmt.Sprintf(format, args...),
		Path:     p.path,
		Line:     line,
	}
	return &parseError{diag: diag, wrap: fmt.Errorf("%w: %s", ssberr.ErrScriptSyntax, diag.Error())}
}
