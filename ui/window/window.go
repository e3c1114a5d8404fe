// Package window runs the drawing pad in a desktop window.
package window

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/soocke/digitpad-go/ui/presenter"
	"github.com/soocke/digitpad-go/ui/view"
)

// Options configure the window.
type Options struct {
	Title     string
	Size      image.Point
	TPS       int
	FontTTF   []byte
	SmallSize float64
	LargeSize float64
}

// Game adapts a presenter.Loop to ebiten.Game.
type Game struct {
	ctx    context.Context
	loop   *presenter.Loop
	size   image.Point
	canvas *canvas
}

var _ ebiten.Game = (*Game)(nil)

// NewGame parses the font and returns a game driving loop until ctx is done.
func NewGame(ctx context.Context, opts Options, loop *presenter.Loop) (*Game, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(opts.FontTTF))
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	c := &canvas{
		small: &text.GoTextFace{Source: src, Size: opts.SmallSize},
		large: &text.GoTextFace{Source: src, Size: opts.LargeSize},
	}
	return &Game{ctx: ctx, loop: loop, size: opts.Size, canvas: c}, nil
}

// Update samples the pointer and advances the loop. A returned error ends RunGame;
// a cancelled context ends it cleanly.
func (g *Game) Update() error {
	if g.ctx != nil && g.ctx.Err() != nil {
		return ebiten.Termination
	}
	x, y := ebiten.CursorPosition()
	p := presenter.Pointer{Pos: image.Pt(x, y), Down: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)}
	return g.loop.Tick(p)
}

// Draw renders the current frame.
func (g *Game) Draw(screen *ebiten.Image) {
	g.canvas.dst = screen
	g.loop.Render(g.canvas)
	g.canvas.dst = nil
}

// Layout keeps the logical screen at the configured size; the window scales it.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.size.X, g.size.Y
}

// Run opens the window and blocks until it is closed, ctx is cancelled or the loop fails.
func Run(ctx context.Context, opts Options, loop *presenter.Loop, logger *slog.Logger) error {
	g, err := NewGame(ctx, opts, loop)
	if err != nil {
		return err
	}
	ebiten.SetWindowSize(opts.Size.X, opts.Size.Y)
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetTPS(opts.TPS)
	if logger != nil {
		logger.Info("window frontend started", "width", opts.Size.X, "height", opts.Size.Y, "tps", opts.TPS)
	}
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}

// canvas draws onto the ebiten screen for the duration of one Draw call.
type canvas struct {
	dst   *ebiten.Image
	small *text.GoTextFace
	large *text.GoTextFace
}

func (c *canvas) Fill(clr color.Color) { c.dst.Fill(clr) }

func (c *canvas) FillRect(r image.Rectangle, clr color.Color) {
	vector.DrawFilledRect(c.dst, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), clr, false)
}

// StrokeRect draws a 1px outline inside r.
func (c *canvas) StrokeRect(r image.Rectangle, clr color.Color) {
	vector.StrokeRect(c.dst, float32(r.Min.X)+0.5, float32(r.Min.Y)+0.5, float32(r.Dx())-1, float32(r.Dy())-1, 1, clr, false)
}

func (c *canvas) DrawText(s string, size view.TextSize, center image.Point, clr color.Color) {
	face := c.small
	if size == view.TextLarge {
		face = c.large
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(center.X), float64(center.Y))
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(c.dst, s, face, op)
}
