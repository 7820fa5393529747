package annotation

import "log/slog"

// Collection owns the per-item annotation sets and undo stacks, keyed by item
// source identifier. Navigation between items never touches the sets; each
// item keeps its own list until explicitly cleared or deleted from.
type Collection struct {
	sets    map[string]*Set
	undos   map[string]*UndoStack
	palette *Palette
	logger  *slog.Logger
}

// NewCollection returns an empty collection sharing one palette across items.
func NewCollection(palette *Palette, logger *slog.Logger) *Collection {
	return &Collection{
		sets:    make(map[string]*Set),
		undos:   make(map[string]*UndoStack),
		palette: palette,
		logger:  logger,
	}
}

// Set returns the annotation set for src, creating it on first use.
func (c *Collection) Set(src string) *Set {
	if c == nil {
		return nil
	}
	s, ok := c.sets[src]
	if !ok {
		s = NewSet(c.palette, c.logger)
		c.sets[src] = s
	}
	return s
}

// Undo returns the undo stack for src, creating it on first use.
func (c *Collection) Undo(src string) *UndoStack {
	if c == nil {
		return nil
	}
	u, ok := c.undos[src]
	if !ok {
		u = &UndoStack{}
		c.undos[src] = u
	}
	return u
}

// AnnotatedCount reports how many of the given items carry at least one
// annotation. Used for progress display.
func (c *Collection) AnnotatedCount(srcs []string) int {
	if c == nil {
		return 0
	}
	n := 0
	for _, src := range srcs {
		if s, ok := c.sets[src]; ok && s.Len() > 0 {
			n++
		}
	}
	return n
}

// Reset drops every item's annotations and undo history.
func (c *Collection) Reset() {
	if c == nil {
		return
	}
	c.sets = make(map[string]*Set)
	c.undos = make(map[string]*UndoStack)
}
