package view

import (
	"fmt"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// NavBar shows prev/next controls, the current item and dataset progress.
type NavBar interface {
	SetNavState(canPrev, canNext bool)
	SetProgress(annotated, total int, fraction float64)
	SetItemLabel(index, total int, src string)
}

// NavHandlers are invoked on navigation button presses.
type NavHandlers struct {
	OnPrev func()
	OnNext func()
}

type navBar struct {
	prevBtn     *ButtonWidget
	nextBtn     *ButtonWidget
	itemLbl     *LabelWidget
	progressLbl *LabelWidget
}

// NewNavBar creates the navigation row at the given grid row.
func NewNavBar(row int, h NavHandlers) NavBar {
	v := &navBar{}
	frame := Frame()
	Grid(frame, Row(row), Column(0), Columnspan(4), Sticky("we"), Padx("0.3m"), Pady("0.3m"))
	v.prevBtn = Button(Txt("< Prev"), Command(func() {
		if h.OnPrev != nil {
			h.OnPrev()
		}
	}))
	Grid(v.prevBtn, In(frame), Row(0), Column(0), Sticky("w"), Padx("0.2m"))
	v.itemLbl = Label(Width(40), Anchor("center"))
	Grid(v.itemLbl, In(frame), Row(0), Column(1), Sticky("we"), Padx("0.2m"))
	v.nextBtn = Button(Txt("Next >"), Command(func() {
		if h.OnNext != nil {
			h.OnNext()
		}
	}))
	Grid(v.nextBtn, In(frame), Row(0), Column(2), Sticky("w"), Padx("0.2m"))
	v.progressLbl = Label(Width(24), Anchor("e"))
	Grid(v.progressLbl, In(frame), Row(0), Column(3), Sticky("e"), Padx("0.2m"))
	return v
}

func (v *navBar) SetNavState(canPrev, canNext bool) {
	if v == nil {
		return
	}
	setEnabled(v.prevBtn, canPrev)
	setEnabled(v.nextBtn, canNext)
}

func (v *navBar) SetProgress(annotated, total int, fraction float64) {
	if v == nil || v.progressLbl == nil {
		return
	}
	v.progressLbl.Configure(Txt(fmt.Sprintf("Annotated: %d/%d (%.0f%%)", annotated, total, fraction*100)))
}

func (v *navBar) SetItemLabel(index, total int, src string) {
	if v == nil || v.itemLbl == nil {
		return
	}
	if total == 0 {
		v.itemLbl.Configure(Txt("no items"))
		return
	}
	v.itemLbl.Configure(Txt(fmt.Sprintf("[%d/%d] %s", index+1, total, src)))
}

func setEnabled(b *ButtonWidget, enabled bool) {
	if b == nil {
		return
	}
	state := "disabled"
	if enabled {
		state = "normal"
	}
	b.Configure(State(state))
}
