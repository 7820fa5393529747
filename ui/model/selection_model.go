package model

// SelectionModel holds the currently selected annotation id, at most one.
// It is cleared when the item changes, when the selected annotation is
// removed, or when the user presses on empty canvas. The zero value is an
// empty selection and usable.
type SelectionModel struct {
	id string
}

// Select makes id the current selection.
func (m *SelectionModel) Select(id string) {
	if m == nil {
		return
	}
	m.id = id
}

// Clear empties the selection.
func (m *SelectionModel) Clear() {
	if m == nil {
		return
	}
	m.id = ""
}

// ClearIf empties the selection only when it matches id.
func (m *SelectionModel) ClearIf(id string) {
	if m == nil || m.id != id {
		return
	}
	m.id = ""
}

// Selected returns the selected id, or "" when nothing is selected.
func (m *SelectionModel) Selected() string {
	if m == nil {
		return ""
	}
	return m.id
}

// Has reports whether something is selected.
func (m *SelectionModel) Has() bool { return m != nil && m.id != "" }
