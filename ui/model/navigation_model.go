package model

// NavigationModel tracks the current item index over a fixed-size dataset.
// Prev/Next are clamped no-ops at the bounds; the view disables the buttons
// instead of surfacing an error. The zero value is an empty dataset.
type NavigationModel struct {
	index int
	total int
}

// NewNavigationModel returns a model over total items, positioned at 0.
func NewNavigationModel(total int) *NavigationModel {
	if total < 0 {
		total = 0
	}
	return &NavigationModel{total: total}
}

// Index returns the current item index.
func (m *NavigationModel) Index() int {
	if m == nil {
		return 0
	}
	return m.index
}

// Total returns the dataset size.
func (m *NavigationModel) Total() int {
	if m == nil {
		return 0
	}
	return m.total
}

// CanPrev reports whether a previous item exists.
func (m *NavigationModel) CanPrev() bool { return m != nil && m.index > 0 }

// CanNext reports whether a following item exists.
func (m *NavigationModel) CanNext() bool { return m != nil && m.index < m.total-1 }

// Prev moves to the previous item; returns true when the index changed.
func (m *NavigationModel) Prev() bool {
	if !m.CanPrev() {
		return false
	}
	m.index--
	return true
}

// Next moves to the following item; returns true when the index changed.
func (m *NavigationModel) Next() bool {
	if !m.CanNext() {
		return false
	}
	m.index++
	return true
}

// Reset returns to the first item.
func (m *NavigationModel) Reset() {
	if m == nil {
		return
	}
	m.index = 0
}

// Progress returns labeling progress given the count of annotated items:
// annotated/total in [0,1]. An empty dataset reports 0.
func (m *NavigationModel) Progress(annotated int) float64 {
	if m == nil || m.total == 0 {
		return 0
	}
	if annotated < 0 {
		annotated = 0
	}
	if annotated > m.total {
		annotated = m.total
	}
	return float64(annotated) / float64(m.total)
}
