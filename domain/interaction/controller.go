package interaction

import (
	"log/slog"

	"github.com/soocke/image-label-go/domain/annotation"
	"github.com/soocke/image-label-go/domain/geometry"
)

// DefaultHandleRadius is the pixel radius for grabbing corner and vertex
// handles, and for hitting point bodies.
const DefaultHandleRadius = 8.0

// Gesture enumerates the edit gestures over existing annotations.
type Gesture int

const (
	GestureNone Gesture = iota
	GestureMove
	GestureResize // box corner drag
	GestureVertex // polygon vertex or point drag
)

func (g Gesture) String() string {
	switch g {
	case GestureNone:
		return "none"
	case GestureMove:
		return "move"
	case GestureResize:
		return "resize"
	case GestureVertex:
		return "vertex"
	default:
		return "unknown"
	}
}

// Result reports the outcome of a pointer-down routed to the controller.
type Result struct {
	Hit      string // id of the shape hit, "" for empty canvas
	Captured bool   // a gesture began and now holds pointer capture
}

// Controller runs selection and edit gestures over one item's annotation set.
// A gesture captures input from press to release; intermediate positions only
// move the preview, and the store is updated once on release. Like the tool
// machine it is strictly synchronous.
type Controller struct {
	set    *annotation.Set
	logger *slog.Logger

	displayW, displayH float64
	handleRadius       float64

	gesture Gesture
	id      string
	handle  int
	start   geometry.Point
	orig    []geometry.Point // display-space points at gesture start
	preview []geometry.Point // display-space points under the current drag
}

// NewController returns a controller with the default handle radius.
func NewController(logger *slog.Logger) *Controller {
	return &Controller{logger: logger, handleRadius: DefaultHandleRadius}
}

// SetHandleRadius overrides the grab radius; non-positive keeps the default.
func (c *Controller) SetHandleRadius(r float64) {
	if c == nil || r <= 0 {
		return
	}
	c.handleRadius = r
}

// SetSurface records the current display dimensions.
func (c *Controller) SetSurface(w, h float64) {
	if c == nil {
		return
	}
	c.displayW, c.displayH = w, h
}

// SetSet points the controller at the current item's annotation set. Any
// in-flight gesture is abandoned without committing.
func (c *Controller) SetSet(set *annotation.Set) {
	if c == nil {
		return
	}
	c.set = set
	c.reset()
}

// Active reports whether a gesture currently holds capture.
func (c *Controller) Active() bool { return c != nil && c.gesture != GestureNone }

// PointerDown hit-tests the set and begins a gesture when something editable
// is under the pointer. selectedID is the currently selected annotation; its
// handles take priority over body hits. Topmost shapes (later in z-order) win
// body hits.
func (c *Controller) PointerDown(p geometry.Point, selectedID string) Result {
	if c == nil || c.set == nil || c.gesture != GestureNone {
		return Result{}
	}
	// Handles of the selected shape first.
	if selectedID != "" {
		if a := c.set.Find(selectedID); a != nil {
			if h := hitHandle(a, p, c.displayW, c.displayH, c.handleRadius); h >= 0 {
				c.begin(a, p, h)
				return Result{Hit: a.ID, Captured: true}
			}
		}
	}
	// Body hits, topmost first.
	items := c.set.Items()
	for i := len(items) - 1; i >= 0; i-- {
		a := &items[i]
		if hitBody(a, p, c.displayW, c.displayH, c.handleRadius) {
			c.begin(a, p, -1)
			return Result{Hit: a.ID, Captured: true}
		}
	}
	return Result{}
}

// PointerMove advances the active gesture's preview.
func (c *Controller) PointerMove(p geometry.Point) {
	if c == nil || c.gesture == GestureNone {
		return
	}
	switch c.gesture {
	case GestureMove:
		d := geometry.Point{X: p.X - c.start.X, Y: p.Y - c.start.Y}
		c.preview = geometry.Translate(c.orig, d)
	case GestureResize:
		c.preview = resizeBox(c.orig, c.handle, p)
	case GestureVertex:
		c.preview = clone(c.orig)
		if c.handle >= 0 && c.handle < len(c.preview) {
			c.preview[c.handle] = p
		}
	}
}

// PointerUp finishes the gesture, committing the final geometry to the store.
// Returns the id of the updated annotation, or "" when nothing changed.
func (c *Controller) PointerUp(p geometry.Point) string {
	if c == nil || c.gesture == GestureNone {
		return ""
	}
	c.PointerMove(p)
	id := c.id
	final := c.preview
	gesture := c.gesture
	c.reset()
	if len(final) == 0 {
		return ""
	}
	a := c.set.Find(id)
	if a == nil {
		return ""
	}
	if a.Kind == annotation.KindBox && len(final) == 2 {
		// Re-normalize so corner drags past the opposite edge keep the
		// top-left/bottom-right invariant.
		final[0], final[1] = geometry.NormalizeRect(final[0], final[1])
	}
	rel := make([]geometry.Point, len(final))
	for i, dp := range final {
		rel[i] = geometry.ToRelative(dp, c.displayW, c.displayH)
	}
	if !c.set.Update(id, rel) {
		return ""
	}
	if c.logger != nil {
		c.logger.Debug("gesture committed", "gesture", gesture.String(), "id", id)
	}
	return id
}

// Preview returns the display-space points of the shape being dragged.
func (c *Controller) Preview() (id string, pts []geometry.Point, ok bool) {
	if c == nil || c.gesture == GestureNone || len(c.preview) == 0 {
		return "", nil, false
	}
	return c.id, c.preview, true
}

func (c *Controller) begin(a *annotation.Annotation, p geometry.Point, handle int) {
	c.id = a.ID
	c.handle = handle
	c.start = p
	c.orig = displayPoints(a, c.displayW, c.displayH)
	c.preview = clone(c.orig)
	switch {
	case handle < 0:
		c.gesture = GestureMove
	case a.Kind == annotation.KindBox:
		c.gesture = GestureResize
	default:
		c.gesture = GestureVertex
	}
	if c.logger != nil {
		c.logger.Debug("gesture started", "gesture", c.gesture.String(), "id", c.id, "handle", handle)
	}
}

func (c *Controller) reset() {
	c.gesture = GestureNone
	c.id = ""
	c.handle = -1
	c.orig = nil
	c.preview = nil
}

// resizeBox moves one corner of the two-point box to the pointer, leaving the
// opposite corner fixed. The result may be momentarily unordered; ordering is
// restored at commit.
func resizeBox(orig []geometry.Point, handle int, p geometry.Point) []geometry.Point {
	if len(orig) != 2 {
		return clone(orig)
	}
	tl, br := orig[0], orig[1]
	switch handle {
	case HandleTopLeft:
		tl = p
	case HandleTopRight:
		tl.Y = p.Y
		br.X = p.X
	case HandleBottomRight:
		br = p
	case HandleBottomLeft:
		tl.X = p.X
		br.Y = p.Y
	}
	return []geometry.Point{tl, br}
}

func clone(pts []geometry.Point) []geometry.Point {
	out := make([]geometry.Point, len(pts))
	copy(out, pts)
	return out
}
