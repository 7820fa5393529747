package annotation

// UndoStack records "add" commits for one item, most recent last. Only adds
// are undoable: there is no redo and no reversal of move/resize/delete. That
// is a deliberate scope limit of the design, not an oversight.
type UndoStack struct {
	ids []string
}

// Push records a freshly added annotation id.
func (u *UndoStack) Push(id string) {
	if u == nil || id == "" {
		return
	}
	u.ids = append(u.ids, id)
}

// Pop removes and returns the most recent id. ok is false on an empty stack.
func (u *UndoStack) Pop() (id string, ok bool) {
	if u == nil || len(u.ids) == 0 {
		return "", false
	}
	id = u.ids[len(u.ids)-1]
	u.ids = u.ids[:len(u.ids)-1]
	return id, true
}

// Drop removes the given id from the stack wherever it sits, so deleting an
// annotation by hand cannot later resurrect a stale undo entry.
func (u *UndoStack) Drop(id string) {
	if u == nil {
		return
	}
	for i := len(u.ids) - 1; i >= 0; i-- {
		if u.ids[i] == id {
			u.ids = append(u.ids[:i], u.ids[i+1:]...)
		}
	}
}

// Clear empties the stack.
func (u *UndoStack) Clear() {
	if u == nil {
		return
	}
	u.ids = nil
}

// Len reports the number of undoable adds.
func (u *UndoStack) Len() int {
	if u == nil {
		return 0
	}
	return len(u.ids)
}
