package app

import (
	"log/slog"

	"github.com/soocke/image-label-go/config"
	"github.com/soocke/image-label-go/domain/annotation"
	"github.com/soocke/image-label-go/domain/dataset"
	"github.com/soocke/image-label-go/domain/interaction"
	"github.com/soocke/image-label-go/domain/tool"
	"github.com/soocke/image-label-go/store"
	"github.com/soocke/image-label-go/ui/model"
	"github.com/soocke/image-label-go/ui/presenter"
	"github.com/soocke/image-label-go/ui/view"
)

// AppContainer assembles models, domain services, presenters and the root
// view.
type AppContainer struct {
	Config   *config.Config
	Logger   *slog.Logger
	Provider *dataset.Provider

	Collection *annotation.Collection
	Machine    *tool.Machine
	Controller *interaction.Controller
	Selection  *model.SelectionModel
	Navigation *model.NavigationModel
	Session    *model.SessionModel
	Store      *store.File
	RootView   *view.RootView
	UI         view.UI

	// Presenters
	CanvasPresenter  *presenter.CanvasPresenter
	ToolPresenter    *presenter.ToolPresenter
	NavPresenter     *presenter.NavigationPresenter
	SessionPresenter *presenter.SessionPresenter
	Loop             *presenter.Loop
}

// BuildContainer constructs all components over the given dataset. Previously
// saved annotations are restored from the store before any presenter runs.
func BuildContainer(cfg *config.Config, provider *dataset.Provider, logger *slog.Logger) *AppContainer {
	c := &AppContainer{Config: cfg, Logger: logger, Provider: provider}

	c.Store = store.NewFile(cfg.AnnotationsPath, logger)
	c.Collection = annotation.NewCollection(annotation.NewPalette(classColors(cfg)), logger)
	if recs, err := c.Store.Load(); err != nil {
		logger.Error("annotation restore failed", "path", c.Store.Path(), "error", err)
	} else {
		for src, items := range recs {
			c.Collection.Set(src).Replace(items)
		}
	}

	c.Machine = tool.NewMachine(tool.ModeFromString(cfg.Mode), logger)
	c.Machine.SetThresholds(cfg.BoxMinExtent, cfg.PolygonCloseDist)
	c.Controller = interaction.NewController(logger)
	c.Controller.SetHandleRadius(cfg.HandleRadius)

	c.Selection = &model.SelectionModel{}
	c.Navigation = model.NewNavigationModel(provider.Len())
	c.Session = model.NewSessionModel()

	c.CanvasPresenter = presenter.NewCanvasPresenter(
		logger, provider, c.Collection, c.Machine, c.Controller,
		c.Selection, c.Navigation, c.Store,
	)
	c.CanvasPresenter.SetHandleRadius(cfg.HandleRadius)
	if len(cfg.Classes) > 0 {
		c.CanvasPresenter.SetClass(cfg.Classes[0])
	}

	// View; widgets are created by Build once Tk is running.
	c.RootView = view.NewRootView(logger)
	c.UI = c.RootView

	c.ToolPresenter = presenter.NewToolPresenter(c.Machine, c.RootView)
	c.Machine.AddListener(func(prev, next tool.State) { c.ToolPresenter.OnState(next) })
	c.NavPresenter = presenter.NewNavigationPresenter(
		c.Navigation, c.Collection, provider.Srcs(), c.CanvasPresenter, c.RootView,
	)
	c.SessionPresenter = presenter.NewSessionPresenter(c.Session, c.CanvasPresenter, c.RootView)
	return c
}

// classColors resolves the label→color mapping: explicit config colors win,
// otherwise each configured class gets a deterministic generated color.
func classColors(cfg *config.Config) map[string]string {
	if m := cfg.LabelColors(); m != nil {
		return m
	}
	if len(cfg.Classes) == 0 {
		return nil
	}
	gen := annotation.ClassColors(len(cfg.Classes))
	m := make(map[string]string, len(cfg.Classes))
	for i, cls := range cfg.Classes {
		m[cls] = gen[i]
	}
	return m
}
