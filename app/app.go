package app

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"

	"github.com/soocke/image-label-go/config"
	"github.com/soocke/image-label-go/domain/dataset"
	"github.com/soocke/image-label-go/export"
	"github.com/soocke/image-label-go/store"
	"github.com/soocke/image-label-go/ui/presenter"
	"github.com/soocke/image-label-go/ui/view"
)

const tick = 100 * time.Millisecond

type app struct {
	c       *AppContainer
	cfgPath string
	overlay view.CaptureOverlay
	afterID string
}

// NewApp builds the container and prepares the Tk root window. cfgPath is
// where config changes (e.g. the capture region) are written back.
func NewApp(title string, cfg *config.Config, cfgPath string, provider *dataset.Provider, logger *slog.Logger) *app {
	a := &app{c: BuildContainer(cfg, provider, logger), cfgPath: cfgPath}
	App.WmTitle(title)
	WmProtocol(App, "WM_DELETE_WINDOW", a.exitHandler)
	return a
}

// Start builds the widgets, attaches presenters and runs the Tk main loop.
// It returns when the window closes.
func (a *app) Start() {
	c := a.c
	cp := c.CanvasPresenter

	h := view.Handlers{
		Pointer: view.PointerHandlers{
			Down: cp.PointerDown,
			Move: cp.PointerMove,
			Up:   cp.PointerUp,
		},
		Nav: view.NavHandlers{
			OnPrev: c.NavPresenter.Prev,
			OnNext: c.NavPresenter.Next,
		},
		Tool: view.ToolHandlers{
			OnMode:   cp.SetMode,
			OnClass:  cp.SetClass,
			OnUndo:   cp.Undo,
			OnDelete: cp.Delete,
			OnClear:  cp.ClearItem,
			OnReset:  a.resetAll,
			OnExport: a.exportAll,
		},
		OnEnter:  cp.KeyEnter,
		OnEscape: cp.KeyEscape,
		OnUndo:   cp.Undo,
		OnDelete: cp.Delete,
		OnExit:   a.exitHandler,
	}
	if c.Config.CaptureScreen {
		a.overlay = view.NewCaptureOverlay(c.Config, a.cfgPath, c.Logger)
		h.OnCaptureRegion = a.overlay.OpenOrFocus
	}

	c.RootView.Build(c.Config.Classes, h)
	c.RootView.MarkMode(cp.Mode())
	cp.AttachViews(c.RootView, c.RootView)
	c.NavPresenter.Refresh()

	c.Loop = presenter.NewLoop(c.SessionPresenter, c.ToolPresenter, c.NavPresenter, a.scheduleUpdate)
	a.scheduleUpdate()

	App.Wait()
}

func (a *app) update() {
	if a.c.Loop != nil {
		a.c.Loop.Tick()
	}
}

func (a *app) scheduleUpdate() {
	// Stay on Tk's event loop thread.
	a.afterID = TclAfter(tick, func() { a.update() })
}

func (a *app) exitHandler() {
	if a.afterID != "" {
		TclAfterCancel(a.afterID)
	}
	Destroy(App)
}

// resetAll drops every annotation across the dataset and returns to the
// first item. The emptied state is persisted immediately.
func (a *app) resetAll() {
	c := a.c
	c.Collection.Reset()
	if err := c.Store.Save(store.Snapshot(c.Provider.Srcs(), c.Collection)); err != nil {
		c.Logger.Error("persist failed after reset", "error", err)
	}
	c.NavPresenter.Reset()
}

// exportAll writes the JSON export and, when classes are configured, YOLO
// label files alongside it.
func (a *app) exportAll() {
	c := a.c
	recs := store.Snapshot(c.Provider.Srcs(), c.Collection)
	if err := export.WriteJSON(c.Config.ExportPath, recs, 0, 0); err != nil {
		c.Logger.Error("export failed", "path", c.Config.ExportPath, "error", err)
		return
	}
	c.Logger.Info("export written", "path", c.Config.ExportPath)
	if len(c.Config.Classes) == 0 {
		return
	}
	dir := yoloDir(c.Config.ExportPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		c.Logger.Error("yolo export dir failed", "dir", dir, "error", err)
		return
	}
	for _, rec := range recs {
		if len(rec.Elements) == 0 {
			continue
		}
		name := strings.TrimSuffix(filepath.Base(rec.Src), filepath.Ext(rec.Src)) + ".txt"
		if err := export.WriteYOLO(filepath.Join(dir, name), rec, c.Config.Classes); err != nil {
			c.Logger.Error("yolo export failed", "src", rec.Src, "error", err)
		}
	}
}

// yoloDir derives the YOLO label directory from the JSON export path.
func yoloDir(exportPath string) string {
	base := strings.TrimSuffix(exportPath, filepath.Ext(exportPath))
	return fmt.Sprintf("%s_labels", base)
}
