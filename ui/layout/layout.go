// Package layout holds the fixed screen geometry of the drawing pad and
// answers hit-testing queries against it.
package layout

import "image"

// Action tags a button.
type Action int

const (
	ActionReset Action = iota + 1
	ActionClassify
)

func (a Action) String() string {
	switch a {
	case ActionReset:
		return "reset"
	case ActionClassify:
		return "classify"
	default:
		return "none"
	}
}

// Button is a clickable region with its label and action.
type Button struct {
	Rect   image.Rectangle
	Label  string
	Action Action
}

// Spec carries the raw geometry a Layout is built from.
type Spec struct {
	Size         image.Point // window size
	Origin       image.Point // top-left of the grid
	Rows, Cols   int
	CellSize     int
	ButtonSize   image.Point
	ResetAt      image.Point // top-left of the reset button
	ClassifyAt   image.Point // top-left of the classify button
	ResultCenter image.Point
}

// Layout is an immutable value; copy it freely.
type Layout struct {
	spec Spec
}

// New returns the layout for s.
func New(s Spec) Layout { return Layout{spec: s} }

// Size returns the window size.
func (l Layout) Size() image.Point { return l.spec.Size }

// Dims returns the grid rows and columns.
func (l Layout) Dims() (rows, cols int) { return l.spec.Rows, l.spec.Cols }

// GridRect is the area covered by all cells.
func (l Layout) GridRect() image.Rectangle {
	s := l.spec
	return image.Rectangle{Min: s.Origin, Max: s.Origin.Add(image.Pt(s.Cols*s.CellSize, s.Rows*s.CellSize))}
}

// CellRect returns the pixel rectangle of cell (row, col).
func (l Layout) CellRect(row, col int) image.Rectangle {
	s := l.spec
	min := s.Origin.Add(image.Pt(col*s.CellSize, row*s.CellSize))
	return image.Rectangle{Min: min, Max: min.Add(image.Pt(s.CellSize, s.CellSize))}
}

// CellAt maps a point to the cell containing it. Points outside the grid report ok=false.
func (l Layout) CellAt(p image.Point) (row, col int, ok bool) {
	if l.spec.CellSize <= 0 || !p.In(l.GridRect()) {
		return 0, 0, false
	}
	d := p.Sub(l.spec.Origin)
	return d.Y / l.spec.CellSize, d.X / l.spec.CellSize, true
}

// Buttons returns the reset and classify buttons. A fresh slice is built on every call.
func (l Layout) Buttons() []Button {
	s := l.spec
	return []Button{
		{Rect: image.Rectangle{Min: s.ResetAt, Max: s.ResetAt.Add(s.ButtonSize)}, Label: "Reset", Action: ActionReset},
		{Rect: image.Rectangle{Min: s.ClassifyAt, Max: s.ClassifyAt.Add(s.ButtonSize)}, Label: "Classify", Action: ActionClassify},
	}
}

// ButtonAt returns the button containing p, if any.
func (l Layout) ButtonAt(p image.Point) (Button, bool) {
	for _, b := range l.Buttons() {
		if p.In(b.Rect) {
			return b, true
		}
	}
	return Button{}, false
}

// ResultCenter is where the predicted digit is centered.
func (l Layout) ResultCenter() image.Point { return l.spec.ResultCenter }
