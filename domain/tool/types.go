package tool

import (
	"github.com/soocke/image-label-go/domain/annotation"
	"github.com/soocke/image-label-go/domain/geometry"
)

// Mode selects which shape the next draw gesture produces.
type Mode int

const (
	ModeBox Mode = iota
	ModePoint
	ModePolygon
)

func (m Mode) String() string {
	switch m {
	case ModeBox:
		return "box"
	case ModePoint:
		return "point"
	case ModePolygon:
		return "polygon"
	default:
		return "unknown"
	}
}

// Kind maps the mode to the annotation kind it commits.
func (m Mode) Kind() annotation.Kind {
	switch m {
	case ModePoint:
		return annotation.KindPoint
	case ModePolygon:
		return annotation.KindPolygon
	default:
		return annotation.KindBox
	}
}

// ModeFromString parses the wire/config form of a mode. Unknown strings fall
// back to box, the original default.
func ModeFromString(s string) Mode {
	switch s {
	case "point":
		return ModePoint
	case "polygon":
		return ModePolygon
	default:
		return ModeBox
	}
}

// State enumerates the drawing states. Point mode never leaves StateIdle: its
// commit happens directly on pointer-down.
type State int

const (
	StateIdle State = iota
	StateDrawingBox
	StateDrawingPolygon
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDrawingBox:
		return "drawing-box"
	case StateDrawingPolygon:
		return "drawing-polygon"
	default:
		return "unknown"
	}
}

// Preview describes the in-progress shape for rendering, in display space.
// For a box Points is {start, current}; for a polygon the accumulated
// vertices plus the current pointer position last.
type Preview struct {
	Kind   annotation.Kind
	Points []geometry.Point
}

// CommitFunc receives a finished shape: relative [0,1] points ready for the
// annotation store. Commits are the sole path from drawing into the store.
type CommitFunc func(kind annotation.Kind, pts []geometry.Point)

// StateListener is called on each state transition.
type StateListener func(prev, next State)
