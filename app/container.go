package app

import (
	"fmt"
	"log/slog"

	"github.com/soocke/digitpad-go/config"
	"github.com/soocke/digitpad-go/domain/classify"
	"github.com/soocke/digitpad-go/domain/grid"
	"github.com/soocke/digitpad-go/domain/nn"
	"github.com/soocke/digitpad-go/ui/images"
	"github.com/soocke/digitpad-go/ui/layout"
	"github.com/soocke/digitpad-go/ui/model"
	"github.com/soocke/digitpad-go/ui/presenter"
	"github.com/soocke/digitpad-go/ui/theme"
	"github.com/soocke/digitpad-go/ui/view"
)

// AppContainer assembles models, presenters and the view.
type AppContainer struct {
	Config     *config.Config
	Logger     *slog.Logger
	Layout     layout.Layout
	Model      classify.Model
	Board      *model.BoardModel
	Session    *model.SessionModel
	Classifier *classify.Adapter
	Snapshots  *images.SnapshotWriter
	View       *view.BoardView

	// Presenters
	BoardPresenter   *presenter.BoardPresenter
	SessionPresenter *presenter.SessionPresenter
	Input            *presenter.InputHandler
	Loop             *presenter.Loop
}

// BuildContainer loads the model named by cfg and wires every component.
// A missing or invalid model file is returned as an error.
func BuildContainer(cfg *config.Config, logger *slog.Logger) (*AppContainer, error) {
	net, err := nn.Load(cfg.ModelPath)
	if err != nil {
		return nil, fmt.Errorf("load model: %w", err)
	}
	if logger != nil {
		logger.Info("model loaded", "path", cfg.ModelPath, "outputs", net.Outputs())
		logger.Debug("model summary", "layers", net.Summary())
	}
	return NewContainer(cfg, logger, net), nil
}

// NewContainer wires components around an already loaded model.
func NewContainer(cfg *config.Config, logger *slog.Logger, m classify.Model) *AppContainer {
	c := &AppContainer{Config: cfg, Logger: logger, Layout: cfg.Layout(), Model: m}
	c.Board = model.NewBoardModel()
	c.Session = model.NewSessionModel()
	c.Classifier = classify.NewAdapter(m)
	c.View = view.NewBoardView(c.Layout, theme.DefaultPalette())

	c.BoardPresenter = presenter.NewBoardPresenter(c.Board, c.Classifier, logger)
	c.SessionPresenter = presenter.NewSessionPresenter(c.Session, logger)
	c.BoardPresenter.AddResultListener(c.SessionPresenter.Classified)
	if cfg.SnapshotDir != "" {
		c.Snapshots = images.NewSnapshotWriter(cfg.SnapshotDir)
		c.BoardPresenter.SetSnapshot(func(g *grid.Grid, digit int) error {
			path, err := c.Snapshots.Write(g, digit)
			if err == nil && logger != nil {
				logger.Debug("snapshot written", "path", path)
			}
			return err
		})
	}
	c.Input = presenter.NewInputHandler(c.Layout, c.BoardPresenter)
	c.Loop = presenter.NewLoop(c.Input, c.BoardPresenter, c.View)
	c.Loop.Session = c.SessionPresenter
	return c
}
