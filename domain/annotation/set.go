package annotation

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/soocke/image-label-go/domain/geometry"
)

// Set is one item's ordered annotation collection. Insertion order is the
// z-order for rendering and hit-testing (later entries sit on top). All
// mutations are synchronous; the hosting event loop serializes access.
type Set struct {
	items   []Annotation
	created int // monotonic creation counter, drives palette cycling
	palette *Palette
	logger  *slog.Logger
}

// NewSet returns an empty set using the given palette for color assignment.
// A nil palette falls back to the fixed default cycle.
func NewSet(palette *Palette, logger *slog.Logger) *Set {
	return &Set{palette: palette, logger: logger}
}

// Add appends a new annotation with a fresh unique id and a deterministic
// color. The geometry invariant is enforced here: invalid point counts (or an
// unordered box) are rejected with a nil return and no mutation. Callers are
// responsible for area/vertex thresholds before calling.
func (s *Set) Add(kind Kind, label string, pts []geometry.Point, dims geometry.Dims) *Annotation {
	if s == nil || !validGeometry(kind, pts) {
		return nil
	}
	a := Annotation{
		ID:        uuid.NewString(),
		Kind:      kind,
		Label:     label,
		Color:     s.palette.ColorFor(label, s.created),
		Points:    clonePoints(pts),
		ImageDims: dims,
	}
	s.items = append(s.items, a)
	s.created++
	if s.logger != nil {
		s.logger.Debug("annotation added", "id", a.ID, "kind", kind.String(), "label", label)
	}
	return &s.items[len(s.items)-1]
}

// Update replaces the points of the annotation with the given id, preserving
// id, kind, label and color. Unknown ids and invalid geometry are no-ops.
func (s *Set) Update(id string, pts []geometry.Point) bool {
	if s == nil {
		return false
	}
	for i := range s.items {
		if s.items[i].ID != id {
			continue
		}
		if !validGeometry(s.items[i].Kind, pts) {
			return false
		}
		s.items[i].Points = clonePoints(pts)
		return true
	}
	return false
}

// Remove deletes the annotation with the given id; absent ids are a no-op.
func (s *Set) Remove(id string) bool {
	if s == nil {
		return false
	}
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return true
		}
	}
	return false
}

// Clear empties the set. The creation counter keeps running so colors stay a
// function of creation order across the whole item lifetime.
func (s *Set) Clear() {
	if s == nil {
		return
	}
	s.items = nil
}

// Find returns the annotation with the given id, or nil.
func (s *Set) Find(id string) *Annotation {
	if s == nil {
		return nil
	}
	for i := range s.items {
		if s.items[i].ID == id {
			return &s.items[i]
		}
	}
	return nil
}

// Len reports the number of annotations in the set.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.items)
}

// Items returns a snapshot copy in z-order. Mutating the copy does not affect
// the set.
func (s *Set) Items() []Annotation {
	if s == nil || len(s.items) == 0 {
		return nil
	}
	out := make([]Annotation, len(s.items))
	copy(out, s.items)
	for i := range out {
		out[i].Points = clonePoints(s.items[i].Points)
	}
	return out
}

// Replace swaps in a previously persisted annotation list, e.g. on initial
// load. The creation counter resumes past the restored length.
func (s *Set) Replace(items []Annotation) {
	if s == nil {
		return
	}
	s.items = make([]Annotation, len(items))
	copy(s.items, items)
	if s.created < len(items) {
		s.created = len(items)
	}
}
