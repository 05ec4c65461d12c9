// Package ssb defines the typed script model: events, tags and geometries
// parsed from an SSB ("Substation Beta") subtitle script.
package ssb

import "math"

// Unset is the sentinel for "not specified" numeric fields (position
// coordinates, animate window bounds). It is never a meaningful coordinate.
const Unset = math.MaxFloat64

// IsUnset reports whether v is the Unset sentinel.
func IsUnset(v float64) bool {
	return v == Unset
}

// Script is the parsed, immutable representation of one SSB document.
type Script struct {
	Title       string
	Author      string
	Description string
	Version     string

	// FrameWidth/FrameHeight is the script's intended frame size; 0 means
	// "unscaled" (render at the destination frame's own size).
	FrameWidth  int
	FrameHeight int

	// Styles maps a style name to its raw inline-tag content, for \name\
	// expansion during parsing.
	Styles map[string]string

	Events []*Event

	// SourceDir is the directory the script was loaded from, used to
	// resolve relative texture paths. Owned per-Script/per-Renderer,
	// never global.
	SourceDir string
}

// Event is a single timed rendering unit.
type Event struct {
	StartMS float64
	EndMS   float64

	// StaticTags is false iff any object is a karaoke tag or an animate
	// tag at any depth. Static events are eligible for tile caching.
	StaticTags bool

	Objects []Object

	// Note is an opaque annotation field carried from the script, never
	// interpreted by the renderer.
	Note string
}

// Active reports whether the event is visible at tMS.
func (e *Event) Active(tMS float64) bool {
	return tMS >= e.StartMS && tMS < e.EndMS
}

// ObjectKind discriminates the Object sum type.
type ObjectKind int

const (
	ObjTag ObjectKind = iota
	ObjGeometry
)

// Object is either a Tag or a Geometry; exactly one of Tag/Geometry is set,
// selected by Kind.
type Object struct {
	Kind     ObjectKind
	Tag      *Tag
	Geometry *Geometry
}

// HasDynamicTag reports whether any object in objs is a karaoke or animate
// tag. animate's inner tags are never dynamic themselves (fade, nested
// animate and karaoke(duration|set) are ignored once inside an animate),
// but the outer animate tag itself still makes the event dynamic.
func HasDynamicTag(objs []Object) bool {
	for _, o := range objs {
		if o.Kind != ObjTag || o.Tag == nil {
			continue
		}
		switch o.Tag.Kind {
		case TagKaraoke, TagAnimate:
			return true
		}
	}
	return false
}
