package presenter

import (
	"image"

	"github.com/soocke/digitpad-go/ui/layout"
)

// KeyPointer synthesizes pointer samples from keyboard input for frontends that
// only deliver key events. A cursor walks the grid and a held key keeps the pen down.
type KeyPointer struct {
	layout   layout.Layout
	row, col int
	down     bool
	pending  []Pointer
}

// NewKeyPointer returns a pointer with the cursor on the center cell.
func NewKeyPointer(l layout.Layout) *KeyPointer {
	rows, cols := l.Dims()
	return &KeyPointer{layout: l, row: rows / 2, col: cols / 2}
}

// Move shifts the cursor by (dr, dc) cells, clamped to the grid.
func (k *KeyPointer) Move(dr, dc int) {
	if k == nil {
		return
	}
	rows, cols := k.layout.Dims()
	k.row = clamp(k.row+dr, 0, rows-1)
	k.col = clamp(k.col+dc, 0, cols-1)
}

// SetDown holds or lifts the pen.
func (k *KeyPointer) SetDown(down bool) {
	if k != nil {
		k.down = down
	}
}

// Press queues a full click on the button tagged a. Unknown actions are ignored.
func (k *KeyPointer) Press(a layout.Action) {
	if k == nil {
		return
	}
	for _, b := range k.layout.Buttons() {
		if b.Action != a {
			continue
		}
		c := center(b.Rect)
		k.pending = append(k.pending, Pointer{Pos: c}, Pointer{Pos: c, Down: true}, Pointer{Pos: c})
		return
	}
}

// Samples drains queued clicks and appends the current cursor sample.
func (k *KeyPointer) Samples() []Pointer {
	if k == nil {
		return nil
	}
	out := append(k.pending, Pointer{Pos: center(k.Cursor()), Down: k.down})
	k.pending = nil
	return out
}

// Cursor is the pixel rectangle of the cell under the cursor.
func (k *KeyPointer) Cursor() image.Rectangle {
	if k == nil {
		return image.Rectangle{}
	}
	return k.layout.CellRect(k.row, k.col)
}

func center(r image.Rectangle) image.Point {
	return image.Pt((r.Min.X+r.Max.X)/2, (r.Min.Y+r.Max.Y)/2)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
