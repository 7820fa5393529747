package model

import "testing"

func TestNavigation_BoundsAreNoops(t *testing.T) {
	m := NewNavigationModel(3)
	if m.Prev() {
		t.Fatal("prev at index 0 must be a no-op")
	}
	if !m.Next() || m.Index() != 1 {
		t.Fatalf("next failed, index=%d", m.Index())
	}
	m.Next()
	if m.Next() {
		t.Fatal("next at last index must be a no-op")
	}
	if m.Index() != 2 {
		t.Fatalf("index drifted to %d", m.Index())
	}
}

func TestNavigation_CanFlags(t *testing.T) {
	m := NewNavigationModel(2)
	if m.CanPrev() || !m.CanNext() {
		t.Fatal("wrong flags at first item")
	}
	m.Next()
	if !m.CanPrev() || m.CanNext() {
		t.Fatal("wrong flags at last item")
	}
}

func TestNavigation_SingleAndEmptyDataset(t *testing.T) {
	one := NewNavigationModel(1)
	if one.CanPrev() || one.CanNext() {
		t.Fatal("single item dataset has nowhere to go")
	}
	empty := NewNavigationModel(0)
	if empty.Next() || empty.Prev() {
		t.Fatal("empty dataset navigation must be a no-op")
	}
}

func TestNavigation_Progress(t *testing.T) {
	m := NewNavigationModel(4)
	if got := m.Progress(1); got != 0.25 {
		t.Fatalf("expected 0.25, got %v", got)
	}
	if got := m.Progress(9); got != 1 {
		t.Fatalf("over-count should clamp to 1, got %v", got)
	}
	if got := NewNavigationModel(0).Progress(0); got != 0 {
		t.Fatalf("empty dataset progress should be 0, got %v", got)
	}
}

func TestSelectionModel(t *testing.T) {
	s := &SelectionModel{}
	if s.Has() {
		t.Fatal("zero value should be empty")
	}
	s.Select("a")
	if s.Selected() != "a" {
		t.Fatalf("unexpected selection %q", s.Selected())
	}
	s.ClearIf("b")
	if !s.Has() {
		t.Fatal("ClearIf with other id must not clear")
	}
	s.ClearIf("a")
	if s.Has() {
		t.Fatal("ClearIf with matching id must clear")
	}
}
