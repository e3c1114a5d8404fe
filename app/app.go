package app

import (
	"context"
	"fmt"
	"image"
	"log/slog"
	"time"

	"github.com/soocke/digitpad-go/assets"
	"github.com/soocke/digitpad-go/config"
	"github.com/soocke/digitpad-go/debug"
	"github.com/soocke/digitpad-go/ui/terminal"
	"github.com/soocke/digitpad-go/ui/theme"
	"github.com/soocke/digitpad-go/ui/tkwindow"
	"github.com/soocke/digitpad-go/ui/window"
)

// Title is the window title.
const Title = "Digit Pad"

// App owns the container and runs the selected frontend.
type App struct {
	container *AppContainer
	config    *config.Config
	logger    *slog.Logger
	font      []byte // window and tk frontends
}

// NewApp loads the model and, for the graphical frontends, the font.
// Resource loading errors are returned.
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	c, err := BuildContainer(cfg, logger)
	if err != nil {
		return nil, err
	}
	a := &App{container: c, config: cfg, logger: logger}
	if cfg.Frontend != config.FrontendTerminal {
		if a.font, err = assets.FontTTF(cfg.FontPath); err != nil {
			return nil, err
		}
	}
	return a, nil
}

// Container exposes the wired components.
func (a *App) Container() *AppContainer { return a.container }

// Run blocks until the frontend quits (nil) or the frame loop fails.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	if a.config.Debug {
		debug.StartGoroutineLogger(ctx, 5*time.Second, a.logger)
		debug.StartMemLogger(ctx, 5*time.Second, a.logger)
	}
	loop := a.container.Loop
	var err error
	switch a.config.Frontend {
	case config.FrontendTerminal:
		err = terminal.Run(ctx, terminal.Options{TPS: a.config.TPS}, loop, a.logger)
	case config.FrontendTk:
		err = tkwindow.Run(ctx, tkwindow.Options{
			Title:     Title,
			TPS:       a.config.TPS,
			FontTTF:   a.font,
			SmallSize: a.config.SmallFontSize,
			LargeSize: a.config.LargeFontSize,
			Cursor:    theme.DefaultPalette().Cursor,
		}, a.container.Layout, loop, a.logger)
	default:
		err = window.Run(ctx, window.Options{
			Title:     Title,
			Size:      image.Pt(a.config.WindowWidth, a.config.WindowHeight),
			TPS:       a.config.TPS,
			FontTTF:   a.font,
			SmallSize: a.config.SmallFontSize,
			LargeSize: a.config.LargeFontSize,
		}, loop, a.logger)
	}
	a.container.SessionPresenter.Report()
	if err != nil {
		return fmt.Errorf("%s frontend: %w", a.config.Frontend, err)
	}
	if a.logger != nil {
		a.logger.Info("quit", "frames", loop.Frames())
	}
	return nil
}
