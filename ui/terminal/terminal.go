// Package terminal runs the drawing pad full-screen in a terminal with mouse input.
// Layout pixels are mapped onto character cells: one column spans CellWidth
// pixels and one row spans CellHeight pixels.
package terminal

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/soocke/digitpad-go/ui/presenter"
	"github.com/soocke/digitpad-go/ui/view"
)

const (
	CellWidth  = 5
	CellHeight = 10
)

// Options configure the terminal frontend.
type Options struct {
	TPS int
}

// Run opens the terminal screen and blocks until the user quits, ctx is cancelled
// or the loop fails.
func Run(ctx context.Context, opts Options, loop *presenter.Loop, logger *slog.Logger) error {
	s, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := s.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	return RunScreen(ctx, s, opts, loop, logger)
}

// RunScreen drives loop on an initialized screen and finalizes it on return.
// Esc, Ctrl-C, q and a cancelled ctx quit with a nil error.
func RunScreen(ctx context.Context, s tcell.Screen, opts Options, loop *presenter.Loop, logger *slog.Logger) error {
	defer s.Fini()
	s.EnableMouse()
	s.HideCursor()

	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := s.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	tps := opts.TPS
	if tps <= 0 {
		tps = 60
	}
	ticker := time.NewTicker(time.Second / time.Duration(tps))
	defer ticker.Stop()

	if logger != nil {
		w, h := s.Size()
		logger.Info("terminal frontend started", "cols", w, "rows", h, "tps", tps)
	}
	c := &canvas{screen: s}
	render := func() {
		loop.Render(c)
		s.Show()
	}
	render()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			switch e := ev.(type) {
			case *tcell.EventKey:
				if isQuit(e) {
					return nil
				}
			case *tcell.EventResize:
				s.Sync()
			case *tcell.EventMouse:
				if err := loop.Tick(pointer(e)); err != nil {
					return err
				}
			}
		case <-ticker.C:
			render()
		}
	}
}

func isQuit(e *tcell.EventKey) bool {
	switch e.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return e.Rune() == 'q'
	}
	return false
}

func pointer(e *tcell.EventMouse) presenter.Pointer {
	x, y := e.Position()
	return presenter.Pointer{Pos: ToPixel(x, y), Down: e.Buttons()&tcell.Button1 != 0}
}

// ToPixel returns the layout pixel at the center of terminal cell (col, row).
func ToPixel(col, row int) image.Point {
	return image.Pt(col*CellWidth+CellWidth/2, row*CellHeight+CellHeight/2)
}

// ToCell returns the terminal cell containing layout pixel p.
func ToCell(p image.Point) (col, row int) {
	return floorDiv(p.X, CellWidth), floorDiv(p.Y, CellHeight)
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}

func tcellColor(c color.Color) tcell.Color {
	r, g, b, _ := c.RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}

// canvas renders onto character cells. Outlines are not drawn.
type canvas struct {
	screen tcell.Screen
}

func (c *canvas) Fill(clr color.Color) {
	st := tcell.StyleDefault.Background(tcellColor(clr))
	w, h := c.screen.Size()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c.screen.SetContent(x, y, ' ', nil, st)
		}
	}
}

// FillRect paints every cell whose center lies in r.
func (c *canvas) FillRect(r image.Rectangle, clr color.Color) {
	st := tcell.StyleDefault.Background(tcellColor(clr))
	x0, y0 := ToCell(r.Min)
	x1, y1 := ToCell(r.Max)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if ToPixel(x, y).In(r) {
				c.screen.SetContent(x, y, ' ', nil, st)
			}
		}
	}
}

func (c *canvas) StrokeRect(image.Rectangle, color.Color) {}

// DrawText centers s on the cell containing center, keeping each cell's background.
func (c *canvas) DrawText(s string, size view.TextSize, center image.Point, clr color.Color) {
	runes := []rune(s)
	cx, cy := ToCell(center)
	x0 := cx - len(runes)/2
	fg := tcellColor(clr)
	for i, r := range runes {
		x := x0 + i
		_, _, old, _ := c.screen.GetContent(x, cy)
		_, bg, _ := old.Decompose()
		st := tcell.StyleDefault.Foreground(fg).Background(bg).Bold(size == view.TextLarge)
		c.screen.SetContent(x, cy, r, nil, st)
	}
}
