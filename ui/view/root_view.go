package view

import (
	"image"
	"log/slog"
	"time"

	"github.com/soocke/image-label-go/domain/tool"
	"github.com/soocke/image-label-go/ui/theme"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// Handlers collects every callback the root view forwards to presenters.
type Handlers struct {
	Pointer PointerHandlers
	Nav     NavHandlers
	Tool    ToolHandlers

	OnEnter  func()
	OnEscape func()
	OnUndo   func()
	OnDelete func()
	OnExit   func()

	// OnCaptureRegion opens the capture region overlay; nil hides the button
	// (file-backed datasets have no use for it).
	OnCaptureRegion func()
}

// RootView composes the top-level application layout and wires UI callbacks.
// It owns the subviews and implements the presenter view contracts by
// proxying to them.
type RootView struct {
	logger *slog.Logger

	// Subviews
	Canvas  AnnotationCanvas
	Preview ShapePreview
	Panel   ToolPanel
	Nav     NavBar
	Session SessionStats

	// Widgets
	StateLabel *LabelWidget
}

// UI abstracts the view operations the presenters require, decoupling them
// from the concrete RootView.
type UI interface {
	UpdateCanvas(img image.Image)
	UpdateShapePreview(img image.Image)
	ResetShapePreview()
	SetStateLabel(text string)
	SetNavState(canPrev, canNext bool)
	SetProgress(annotated, total int, fraction float64)
	SetItemLabel(index, total int, src string)
	SetSession(burst, total time.Duration)
}

var _ UI = (*RootView)(nil)

func NewRootView(logger *slog.Logger) *RootView {
	return &RootView{logger: logger}
}

// Build constructs the layout and binds the keyboard shortcuts.
func (rv *RootView) Build(classes []string, h Handlers) {
	if rv == nil {
		return
	}
	theme.InitStyles()

	// Row 0: session stats, state label.
	rv.Session = NewSessionStats(0, 0)
	rv.StateLabel = Label(Txt("Mode: box"), Borderwidth(1), Relief("ridge"))
	Grid(rv.StateLabel, Row(0), Column(2), Sticky("we"), Padx("0.4m"), Pady("0.3m"))
	exitBtn := Button(Txt("Exit"), Command(func() {
		if h.OnExit != nil {
			h.OnExit()
		}
	}))
	Grid(exitBtn, Row(0), Column(3), Sticky("ne"), Padx("0.3m"), Pady("0.3m"))
	darkBtn := Button(Txt("Dark"), Command(func() { theme.ToggleDark() }))
	Grid(darkBtn, Row(0), Column(5), Sticky("ne"), Padx("0.3m"), Pady("0.3m"))
	if h.OnCaptureRegion != nil {
		regionBtn := Button(Txt("Capture Region"), Command(h.OnCaptureRegion))
		Grid(regionBtn, Row(0), Column(4), Sticky("ne"), Padx("0.3m"), Pady("0.3m"))
	}

	// Rows 1..n: tool panel, then navigation, then the canvas.
	rv.Panel = NewToolPanel(classes, h.Tool, rv.logger)
	row := rv.Panel.Build(1)
	rv.Nav = NewNavBar(row, h.Nav)
	row++
	rv.Canvas = NewAnnotationCanvas(row, h.Pointer)
	rv.Preview = NewShapePreview(row, 4)

	// Keyboard shortcuts are global: the canvas label never takes focus.
	bindKey := func(seq string, fn func()) {
		if fn == nil {
			return
		}
		Bind(App, seq, Command(func() { fn() }))
	}
	bindKey("<Return>", h.OnEnter)
	bindKey("<Escape>", h.OnEscape)
	bindKey("<Delete>", h.OnDelete)
	bindKey("<Control-z>", h.OnUndo)
	bindKey("<Left>", h.Nav.OnPrev)
	bindKey("<Right>", h.Nav.OnNext)
}

// MarkMode highlights the active mode in the tool panel.
func (rv *RootView) MarkMode(m tool.Mode) {
	if rv != nil && rv.Panel != nil {
		rv.Panel.SetMode(m)
	}
}

// UpdateCanvas proxies the rendered frame to the canvas label.
func (rv *RootView) UpdateCanvas(img image.Image) {
	if rv != nil && rv.Canvas != nil {
		rv.Canvas.UpdateCanvas(img)
	}
}

// UpdateShapePreview proxies to the selected-shape preview.
func (rv *RootView) UpdateShapePreview(img image.Image) {
	if rv != nil && rv.Preview != nil {
		rv.Preview.UpdateShapePreview(img)
	}
}

// ResetShapePreview clears the selected-shape preview.
func (rv *RootView) ResetShapePreview() {
	if rv != nil && rv.Preview != nil {
		rv.Preview.ResetShapePreview()
	}
}

// SetStateLabel updates the mode/state label text.
func (rv *RootView) SetStateLabel(text string) {
	if rv != nil && rv.StateLabel != nil {
		rv.StateLabel.Configure(Txt(text))
	}
}

// SetNavState proxies button enablement to the navigation bar.
func (rv *RootView) SetNavState(canPrev, canNext bool) {
	if rv != nil && rv.Nav != nil {
		rv.Nav.SetNavState(canPrev, canNext)
	}
}

// SetProgress proxies dataset progress to the navigation bar.
func (rv *RootView) SetProgress(annotated, total int, fraction float64) {
	if rv != nil && rv.Nav != nil {
		rv.Nav.SetProgress(annotated, total, fraction)
	}
}

// SetItemLabel proxies the current item description to the navigation bar.
func (rv *RootView) SetItemLabel(index, total int, src string) {
	if rv != nil && rv.Nav != nil {
		rv.Nav.SetItemLabel(index, total, src)
	}
}

// SetSession updates burst and total annotating durations.
func (rv *RootView) SetSession(burst, total time.Duration) {
	if rv != nil && rv.Session != nil {
		rv.Session.SetSession(burst, total)
	}
}
