package presenter

import (
	"github.com/soocke/image-label-go/ui/model"
)

// AnnotatedCounter reports how many of the given items carry annotations.
type AnnotatedCounter interface {
	AnnotatedCount(srcs []string) int
}

// ItemSwitcher is notified after the navigation index changed so the drawing
// pipeline can re-target the new item.
type ItemSwitcher interface {
	ItemChanged()
}

// NavigationView reflects navigation state: button enablement and progress.
type NavigationView interface {
	SetNavState(canPrev, canNext bool)
	SetProgress(annotated, total int, fraction float64)
	SetItemLabel(index, total int, src string)
}

// NavigationPresenter owns prev/next movement and progress display.
type NavigationPresenter struct {
	nav    *model.NavigationModel
	coll   AnnotatedCounter
	srcs   []string
	canvas ItemSwitcher
	view   NavigationView
}

func NewNavigationPresenter(nav *model.NavigationModel, coll AnnotatedCounter, srcs []string, canvas ItemSwitcher, view NavigationView) *NavigationPresenter {
	return &NavigationPresenter{nav: nav, coll: coll, srcs: srcs, canvas: canvas, view: view}
}

// Prev moves to the previous item. At the first item it is a no-op; the
// view's button should already be disabled.
func (p *NavigationPresenter) Prev() {
	if p == nil || p.nav == nil {
		return
	}
	if p.nav.Prev() {
		p.afterMove()
	}
}

// Next moves to the following item; clamped like Prev.
func (p *NavigationPresenter) Next() {
	if p == nil || p.nav == nil {
		return
	}
	if p.nav.Next() {
		p.afterMove()
	}
}

// Reset returns to the first item, e.g. after clearing all annotations.
func (p *NavigationPresenter) Reset() {
	if p == nil || p.nav == nil {
		return
	}
	p.nav.Reset()
	p.afterMove()
}

// Refresh pushes the current navigation state and progress to the view.
func (p *NavigationPresenter) Refresh() {
	if p == nil || p.view == nil || p.nav == nil {
		return
	}
	p.view.SetNavState(p.nav.CanPrev(), p.nav.CanNext())
	annotated := 0
	if p.coll != nil {
		annotated = p.coll.AnnotatedCount(p.srcs)
	}
	p.view.SetProgress(annotated, p.nav.Total(), p.nav.Progress(annotated))
	src := ""
	if i := p.nav.Index(); i >= 0 && i < len(p.srcs) {
		src = p.srcs[i]
	}
	p.view.SetItemLabel(p.nav.Index(), p.nav.Total(), src)
}

func (p *NavigationPresenter) afterMove() {
	if p.canvas != nil {
		p.canvas.ItemChanged()
	}
	p.Refresh()
}
