package tool

import (
	"log/slog"

	"github.com/soocke/image-label-go/domain/annotation"
	"github.com/soocke/image-label-go/domain/geometry"
)

const (
	// Minimum relative extent per axis for a committed box. Drags smaller than
	// this are accidental clicks and are discarded without comment.
	MinBoxExtent = 0.01
	// Pixel distance to the first vertex that closes a polygon.
	CloseDistance = 10.0
)

// Machine interprets pointer and keyboard events against the active drawing
// mode. At most one shape is in progress at any time; every event is handled
// to completion on the calling goroutine (the UI event loop), so no locking
// is needed. Gesture coordinates stay in display space and are converted to
// relative space only at commit.
type Machine struct {
	mode   Mode
	state  State
	logger *slog.Logger

	displayW, displayH float64

	boxStart geometry.Point
	pointer  geometry.Point
	vertices []geometry.Point

	commit    CommitFunc
	listeners []StateListener

	minExtent float64
	closeDist float64
}

// NewMachine returns a machine in StateIdle with the given initial mode.
// The commit callback may be nil while wiring; SetCommit installs it later.
func NewMachine(mode Mode, logger *slog.Logger) *Machine {
	return &Machine{
		mode:      mode,
		state:     StateIdle,
		logger:    logger,
		minExtent: MinBoxExtent,
		closeDist: CloseDistance,
	}
}

// SetCommit installs the commit sink.
func (m *Machine) SetCommit(fn CommitFunc) {
	if m == nil {
		return
	}
	m.commit = fn
}

// SetThresholds overrides the default box extent and polygon close distance.
// Non-positive values keep the current setting.
func (m *Machine) SetThresholds(minExtent, closeDist float64) {
	if m == nil {
		return
	}
	if minExtent > 0 {
		m.minExtent = minExtent
	}
	if closeDist > 0 {
		m.closeDist = closeDist
	}
}

// AddListener registers a transition listener.
func (m *Machine) AddListener(l StateListener) {
	if m == nil || l == nil {
		return
	}
	m.listeners = append(m.listeners, l)
}

// SetSurface records the current display dimensions used for the
// display→relative conversion at commit time.
func (m *Machine) SetSurface(w, h float64) {
	if m == nil {
		return
	}
	m.displayW, m.displayH = w, h
}

// Mode returns the active drawing mode.
func (m *Machine) Mode() Mode {
	if m == nil {
		return ModeBox
	}
	return m.mode
}

// State returns the current drawing state.
func (m *Machine) State() State {
	if m == nil {
		return StateIdle
	}
	return m.state
}

// SetMode switches the drawing mode. Any in-progress shape is discarded
// without committing.
func (m *Machine) SetMode(mode Mode) {
	if m == nil || m.mode == mode {
		return
	}
	m.discard("mode switch")
	m.mode = mode
	if m.logger != nil {
		m.logger.Debug("tool mode changed", "mode", mode.String())
	}
}

// ItemChanged discards any in-progress shape when navigation moves to a
// different item.
func (m *Machine) ItemChanged() {
	if m == nil {
		return
	}
	m.discard("item change")
}

// PointerDown starts or extends a draw gesture at the display-space position.
func (m *Machine) PointerDown(p geometry.Point) {
	if m == nil {
		return
	}
	m.pointer = p
	switch m.mode {
	case ModeBox:
		if m.state == StateIdle {
			m.boxStart = p
			m.transition(StateDrawingBox)
		}
	case ModePoint:
		// Immediate commit, no persistent state.
		m.commitShape(annotation.KindPoint, []geometry.Point{p})
	case ModePolygon:
		if m.state != StateIdle && m.state != StateDrawingPolygon {
			return
		}
		if len(m.vertices) >= 3 && geometry.Dist(p, m.vertices[0]) <= m.closeDist {
			m.closePolygon()
			return
		}
		m.vertices = append(m.vertices, p)
		if m.state == StateIdle {
			m.transition(StateDrawingPolygon)
		}
	}
}

// PointerMove updates the live preview position during a gesture.
func (m *Machine) PointerMove(p geometry.Point) {
	if m == nil {
		return
	}
	m.pointer = p
}

// PointerUp finishes a box gesture. Boxes below the minimum extent are
// discarded silently: a 2px drag is a click, not a shape.
func (m *Machine) PointerUp(p geometry.Point) {
	if m == nil {
		return
	}
	m.pointer = p
	if m.state != StateDrawingBox {
		return
	}
	tl, br := geometry.NormalizeRect(m.boxStart, p)
	rtl := geometry.ToRelative(tl, m.displayW, m.displayH)
	rbr := geometry.ToRelative(br, m.displayW, m.displayH)
	m.transition(StateIdle)
	if rbr.X-rtl.X <= m.minExtent || rbr.Y-rtl.Y <= m.minExtent {
		if m.logger != nil {
			m.logger.Debug("degenerate box discarded", "w", rbr.X-rtl.X, "h", rbr.Y-rtl.Y)
		}
		return
	}
	m.deliver(annotation.KindBox, []geometry.Point{rtl, rbr})
}

// KeyEnter closes an in-progress polygon with at least three vertices.
func (m *Machine) KeyEnter() {
	if m == nil {
		return
	}
	if m.state == StateDrawingPolygon && len(m.vertices) >= 3 {
		m.closePolygon()
	}
}

// KeyEscape closes a polygon with enough vertices, otherwise discards it.
func (m *Machine) KeyEscape() {
	if m == nil {
		return
	}
	if m.state != StateDrawingPolygon {
		return
	}
	if len(m.vertices) >= 3 {
		m.closePolygon()
		return
	}
	m.discard("escape")
}

// Preview returns the in-progress shape for rendering, if any.
func (m *Machine) Preview() (Preview, bool) {
	if m == nil {
		return Preview{}, false
	}
	switch m.state {
	case StateDrawingBox:
		return Preview{Kind: annotation.KindBox, Points: []geometry.Point{m.boxStart, m.pointer}}, true
	case StateDrawingPolygon:
		pts := make([]geometry.Point, len(m.vertices), len(m.vertices)+1)
		copy(pts, m.vertices)
		pts = append(pts, m.pointer)
		return Preview{Kind: annotation.KindPolygon, Points: pts}, true
	default:
		return Preview{}, false
	}
}

// VertexCount reports accumulated polygon vertices, for HUD display.
func (m *Machine) VertexCount() int {
	if m == nil {
		return 0
	}
	return len(m.vertices)
}

func (m *Machine) closePolygon() {
	pts := m.vertices
	m.vertices = nil
	m.transition(StateIdle)
	rel := make([]geometry.Point, len(pts))
	for i, p := range pts {
		rel[i] = geometry.ToRelative(p, m.displayW, m.displayH)
	}
	m.deliver(annotation.KindPolygon, rel)
}

// commitShape converts and delivers a shape that needs no state (points).
func (m *Machine) commitShape(kind annotation.Kind, pts []geometry.Point) {
	rel := make([]geometry.Point, len(pts))
	for i, p := range pts {
		rel[i] = geometry.ToRelative(p, m.displayW, m.displayH)
	}
	m.deliver(kind, rel)
}

func (m *Machine) deliver(kind annotation.Kind, rel []geometry.Point) {
	if m.commit != nil {
		m.commit(kind, rel)
	}
}

func (m *Machine) discard(reason string) {
	if m.state == StateIdle {
		m.vertices = nil
		return
	}
	if m.logger != nil {
		m.logger.Debug("in-progress shape discarded", "reason", reason, "state", m.state.String())
	}
	m.vertices = nil
	m.transition(StateIdle)
}

func (m *Machine) transition(next State) {
	prev := m.state
	if prev == next {
		return
	}
	m.state = next
	if m.logger != nil {
		m.logger.Debug("tool state transition", "from", prev.String(), "to", next.String())
	}
	for _, l := range m.listeners {
		l(prev, next)
	}
}
