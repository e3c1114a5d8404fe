package presenter

import (
	"image"

	"github.com/soocke/digitpad-go/ui/layout"
)

// Pointer is one sample of the pointer position and primary button.
type Pointer struct {
	Pos  image.Point
	Down bool
}

// Actions are the board operations the input handler dispatches to.
type Actions interface {
	Paint(row, col int)
	Reset()
	Classify() error
}

// InputHandler turns pointer samples into paint strokes and button actions.
// Painting follows the held button; buttons fire only on the press edge.
type InputHandler struct {
	layout  layout.Layout
	actions Actions
	wasDown bool
}

// NewInputHandler returns a handler hit-testing against l.
func NewInputHandler(l layout.Layout, actions Actions) *InputHandler {
	return &InputHandler{layout: l, actions: actions}
}

// Handle processes one pointer sample. It returns the classify error, if any.
func (h *InputHandler) Handle(p Pointer) error {
	if h == nil || h.actions == nil {
		return nil
	}
	pressed := p.Down && !h.wasDown
	h.wasDown = p.Down
	if p.Down {
		if row, col, ok := h.layout.CellAt(p.Pos); ok {
			h.actions.Paint(row, col)
		}
	}
	if !pressed {
		return nil
	}
	b, ok := h.layout.ButtonAt(p.Pos)
	if !ok {
		return nil
	}
	switch b.Action {
	case layout.ActionReset:
		h.actions.Reset()
	case layout.ActionClassify:
		return h.actions.Classify()
	}
	return nil
}
