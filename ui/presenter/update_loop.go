package presenter

import (
	"time"

	"github.com/soocke/digitpad-go/domain/grid"
	"github.com/soocke/digitpad-go/ui/view"
)

// FrameView draws one complete frame.
type FrameView interface {
	Draw(c view.Canvas, g *grid.Grid, digit int, hasDigit bool)
}

// Loop aggregates the input handler, board presenter and view, and is driven
// once per frame by a frontend: Tick with the pointer sample, then Render.
// The zero value is usable (methods are nil-safe).
type Loop struct {
	Input   *InputHandler
	Board   *BoardPresenter
	View    FrameView
	Session *SessionPresenter // optional
	Now     func() time.Time  // defaults to time.Now
	frames  uint64
}

func NewLoop(input *InputHandler, board *BoardPresenter, v FrameView) *Loop {
	return &Loop{Input: input, Board: board, View: v}
}

// Tick feeds one pointer sample through the input handler.
func (l *Loop) Tick(p Pointer) error {
	if l == nil {
		return nil
	}
	l.frames++
	now := time.Now
	if l.Now != nil {
		now = l.Now
	}
	l.Session.Tick(p.Down, now())
	if l.Input != nil {
		return l.Input.Handle(p)
	}
	return nil
}

// Render draws the current board state onto c.
func (l *Loop) Render(c view.Canvas) {
	if l == nil || l.View == nil || c == nil {
		return
	}
	digit, ok := l.Board.Result()
	l.View.Draw(c, l.Board.Grid(), digit, ok)
}

// Frames returns the number of ticks processed.
func (l *Loop) Frames() uint64 {
	if l == nil {
		return 0
	}
	return l.frames
}
