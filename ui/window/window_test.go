package window

import (
	"context"
	"errors"
	"image"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestGame_UpdateStopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	g := &Game{ctx: ctx}
	if err := g.Update(); !errors.Is(err, ebiten.Termination) {
		t.Fatalf("Update after cancel = %v, want ebiten.Termination", err)
	}
}

func TestGame_Layout(t *testing.T) {
	g := &Game{size: image.Pt(600, 400)}
	if w, h := g.Layout(1200, 800); w != 600 || h != 400 {
		t.Fatalf("Layout = %d,%d", w, h)
	}
}
