package presenter

import (
	"image"
	"log/slog"

	"github.com/soocke/image-label-go/domain/annotation"
	"github.com/soocke/image-label-go/domain/dataset"
	"github.com/soocke/image-label-go/domain/geometry"
	"github.com/soocke/image-label-go/domain/interaction"
	"github.com/soocke/image-label-go/domain/tool"
	"github.com/soocke/image-label-go/store"
	"github.com/soocke/image-label-go/ui/images"
	"github.com/soocke/image-label-go/ui/model"
)

// Maximum canvas dimensions; items are scaled down proportionally to fit.
const (
	maxCanvasW = 800
	maxCanvasH = 500
)

// CanvasView receives rendered canvas frames.
type CanvasView interface {
	UpdateCanvas(img image.Image)
}

// ShapePreviewView shows a crop of the selected shape; optional.
type ShapePreviewView interface {
	UpdateShapePreview(img image.Image)
	ResetShapePreview()
}

// Persister receives the full record snapshot after every committing
// mutation. Storage and conflict handling are its problem, not ours.
type Persister interface {
	Save(recs []store.Record) error
}

// CanvasPresenter routes pointer and keyboard events between the tool state
// machine, the interaction controller and the annotation collection, then
// re-renders and persists. All methods run on the UI event loop; each event
// is handled to completion before the next arrives.
type CanvasPresenter struct {
	logger   *slog.Logger
	provider *dataset.Provider
	coll     *annotation.Collection
	machine  *tool.Machine
	ctrl     *interaction.Controller
	sel      *model.SelectionModel
	nav      *model.NavigationModel
	persist  Persister

	view    CanvasView
	shape   ShapePreviewView
	label   string // active class label for new annotations
	handleR float64

	canvasW, canvasH int
	scaled           map[int]image.Image // per-index scaled base cache
}

// NewCanvasPresenter wires the drawing pipeline. view may be nil during
// tests; shape and status are optional.
func NewCanvasPresenter(
	logger *slog.Logger,
	provider *dataset.Provider,
	coll *annotation.Collection,
	machine *tool.Machine,
	ctrl *interaction.Controller,
	sel *model.SelectionModel,
	nav *model.NavigationModel,
	persist Persister,
) *CanvasPresenter {
	p := &CanvasPresenter{
		logger:   logger,
		provider: provider,
		coll:     coll,
		machine:  machine,
		ctrl:     ctrl,
		sel:      sel,
		nav:      nav,
		persist:  persist,
		handleR:  interaction.DefaultHandleRadius,
		scaled:   make(map[int]image.Image),
	}
	machine.SetCommit(p.onCommit)
	p.ItemChanged()
	return p
}

// AttachViews installs the view sinks and triggers an initial render.
func (p *CanvasPresenter) AttachViews(view CanvasView, shape ShapePreviewView) {
	if p == nil {
		return
	}
	p.view = view
	p.shape = shape
	p.Render()
}

// SetHandleRadius forwards the configured grab radius to rendering.
func (p *CanvasPresenter) SetHandleRadius(r float64) {
	if p == nil || r <= 0 {
		return
	}
	p.handleR = r
}

// SetClass sets the class label applied to subsequently drawn annotations.
func (p *CanvasPresenter) SetClass(label string) {
	if p == nil {
		return
	}
	p.label = label
}

// SetMode switches the drawing tool, discarding any in-progress shape.
func (p *CanvasPresenter) SetMode(m tool.Mode) {
	if p == nil {
		return
	}
	p.machine.SetMode(m)
	p.Render()
}

// Mode returns the active drawing mode.
func (p *CanvasPresenter) Mode() tool.Mode {
	if p == nil {
		return tool.ModeBox
	}
	return p.machine.Mode()
}

// Annotating reports whether a draw or edit gesture is underway. The session
// presenter polls this for active-time tracking.
func (p *CanvasPresenter) Annotating() bool {
	if p == nil {
		return false
	}
	return p.machine.State() != tool.StateIdle || p.ctrl.Active()
}

// ItemChanged re-targets the pipeline at the current navigation index:
// uncommitted drawing is discarded, selection cleared, surfaces resized.
func (p *CanvasPresenter) ItemChanged() {
	if p == nil {
		return
	}
	p.machine.ItemChanged()
	p.sel.Clear()
	set := p.currentSet()
	p.ctrl.SetSet(set)
	it := p.currentItem()
	if it != nil && !it.Failed() {
		p.canvasW, p.canvasH = images.FitSize(it.Dims.Width, it.Dims.Height, maxCanvasW, maxCanvasH)
	} else {
		p.canvasW, p.canvasH = maxCanvasW, maxCanvasH
	}
	p.machine.SetSurface(float64(p.canvasW), float64(p.canvasH))
	p.ctrl.SetSurface(float64(p.canvasW), float64(p.canvasH))
	p.Render()
}

// PointerDown routes a press at display position (x, y).
func (p *CanvasPresenter) PointerDown(x, y float64) {
	if p == nil || p.drawingDisabled() {
		return
	}
	pos := geometry.Point{X: x, Y: y}
	// An open polygon owns every press until it closes or is discarded.
	if p.machine.State() == tool.StateDrawingPolygon {
		p.machine.PointerDown(pos)
		p.Render()
		return
	}
	res := p.ctrl.PointerDown(pos, p.sel.Selected())
	if res.Captured {
		p.sel.Select(res.Hit)
		p.Render()
		return
	}
	// Empty canvas: clear selection and hand the press to the drawing tool.
	p.sel.Clear()
	p.machine.PointerDown(pos)
	p.Render()
}

// PointerMove advances whichever gesture holds capture.
func (p *CanvasPresenter) PointerMove(x, y float64) {
	if p == nil || p.drawingDisabled() {
		return
	}
	pos := geometry.Point{X: x, Y: y}
	if p.ctrl.Active() {
		p.ctrl.PointerMove(pos)
		p.Render()
		return
	}
	p.machine.PointerMove(pos)
	if p.machine.State() != tool.StateIdle {
		p.Render()
	}
}

// PointerUp finishes the captured gesture.
func (p *CanvasPresenter) PointerUp(x, y float64) {
	if p == nil || p.drawingDisabled() {
		return
	}
	pos := geometry.Point{X: x, Y: y}
	if p.ctrl.Active() {
		if id := p.ctrl.PointerUp(pos); id != "" {
			p.save()
		}
		p.Render()
		return
	}
	p.machine.PointerUp(pos)
	p.Render()
}

// KeyEnter closes an in-progress polygon.
func (p *CanvasPresenter) KeyEnter() {
	if p == nil || p.drawingDisabled() {
		return
	}
	p.machine.KeyEnter()
	p.Render()
}

// KeyEscape closes or discards an in-progress polygon.
func (p *CanvasPresenter) KeyEscape() {
	if p == nil || p.drawingDisabled() {
		return
	}
	p.machine.KeyEscape()
	p.Render()
}

// Delete removes the selected annotation. With no selection it is a no-op.
func (p *CanvasPresenter) Delete() {
	if p == nil || !p.sel.Has() {
		return
	}
	id := p.sel.Selected()
	set := p.currentSet()
	if set.Remove(id) {
		p.currentUndo().Drop(id)
		p.sel.Clear()
		p.save()
	}
	p.Render()
}

// Undo reverses the most recent add on the current item, if any.
func (p *CanvasPresenter) Undo() {
	if p == nil {
		return
	}
	id, ok := p.currentUndo().Pop()
	if !ok {
		return
	}
	p.currentSet().Remove(id)
	p.sel.ClearIf(id)
	p.save()
	p.Render()
}

// ClearItem removes every annotation on the current item.
func (p *CanvasPresenter) ClearItem() {
	if p == nil {
		return
	}
	p.currentSet().Clear()
	p.currentUndo().Clear()
	p.sel.Clear()
	p.save()
	p.Render()
}

// onCommit receives finished shapes from the tool machine.
func (p *CanvasPresenter) onCommit(kind annotation.Kind, pts []geometry.Point) {
	it := p.currentItem()
	if it == nil {
		return
	}
	a := p.currentSet().Add(kind, p.label, pts, it.Dims)
	if a == nil {
		return
	}
	p.currentUndo().Push(a.ID)
	p.save()
}

// Render rasterizes the current item and pushes it to the views.
func (p *CanvasPresenter) Render() {
	if p == nil || p.view == nil {
		return
	}
	it := p.currentItem()
	f := images.Frame{
		W: p.canvasW, H: p.canvasH,
		HandleRadius: int(p.handleR),
	}
	switch {
	case it == nil:
		f.ErrorText = "no items"
	case it.Failed():
		f.ErrorText = "failed to load " + it.Src
	default:
		f.Base = p.scaledBase(p.nav.Index(), it)
		f.Items = p.currentSet().Items()
		f.SelectedID = p.sel.Selected()
		p.applyEditPreview(&f)
		if prev, ok := p.machine.Preview(); ok {
			f.Preview = prev.Points
			f.PreviewKind = prev.Kind
			f.HasPreview = true
		}
	}
	p.view.UpdateCanvas(images.Render(f))
	p.updateShapePreview(it)
}

// applyEditPreview swaps the dragged shape's stored points for the gesture
// preview so the drag is visible without touching the store.
func (p *CanvasPresenter) applyEditPreview(f *images.Frame) {
	id, pts, ok := p.ctrl.Preview()
	if !ok {
		return
	}
	for i := range f.Items {
		if f.Items[i].ID != id {
			continue
		}
		rel := make([]geometry.Point, len(pts))
		for j, dp := range pts {
			rel[j] = geometry.ToRelative(dp, float64(p.canvasW), float64(p.canvasH))
		}
		f.Items[i].Points = rel
		return
	}
}

func (p *CanvasPresenter) updateShapePreview(it *dataset.Item) {
	if p.shape == nil {
		return
	}
	if it == nil || it.Failed() || !p.sel.Has() {
		p.shape.ResetShapePreview()
		return
	}
	a := p.currentSet().Find(p.sel.Selected())
	base := p.scaledBase(p.nav.Index(), it)
	if a == nil || base == nil {
		p.shape.ResetShapePreview()
		return
	}
	crop, _, err := images.CropShape(base, a, 8)
	if err != nil {
		p.shape.ResetShapePreview()
		return
	}
	p.shape.UpdateShapePreview(images.ScaleToFit(crop, 160, 120))
}

func (p *CanvasPresenter) save() {
	if p.persist == nil {
		return
	}
	recs := store.Snapshot(p.provider.Srcs(), p.coll)
	if err := p.persist.Save(recs); err != nil && p.logger != nil {
		p.logger.Error("persist failed", "error", err)
	}
}

func (p *CanvasPresenter) drawingDisabled() bool {
	it := p.currentItem()
	return it == nil || it.Failed()
}

func (p *CanvasPresenter) currentItem() *dataset.Item {
	return p.provider.Item(p.nav.Index())
}

func (p *CanvasPresenter) currentSrc() string {
	if it := p.currentItem(); it != nil {
		return it.Src
	}
	return ""
}

func (p *CanvasPresenter) currentSet() *annotation.Set {
	return p.coll.Set(p.currentSrc())
}

func (p *CanvasPresenter) currentUndo() *annotation.UndoStack {
	return p.coll.Undo(p.currentSrc())
}

func (p *CanvasPresenter) scaledBase(idx int, it *dataset.Item) image.Image {
	if img, ok := p.scaled[idx]; ok {
		return img
	}
	if it.Image == nil {
		return nil
	}
	img := images.ScaleToFit(it.Image, maxCanvasW, maxCanvasH)
	p.scaled[idx] = img
	return img
}
