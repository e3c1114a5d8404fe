package layout

import (
	"image"
	"testing"
)

// defaultLayout mirrors the stock 600x400 window geometry.
func defaultLayout() Layout {
	return New(Spec{
		Size:         image.Pt(600, 400),
		Origin:       image.Pt(20, 20),
		Rows:         28,
		Cols:         28,
		CellSize:     10,
		ButtonSize:   image.Pt(100, 30),
		ResetAt:      image.Pt(30, 330),
		ClassifyAt:   image.Pt(150, 330),
		ResultCenter: image.Pt(450, 100),
	})
}

func TestLayout_GridGeometry(t *testing.T) {
	l := defaultLayout()
	if got := l.GridRect(); got != image.Rect(20, 20, 300, 300) {
		t.Fatalf("unexpected grid rect %v", got)
	}
	if got := l.CellRect(2, 3); got != image.Rect(50, 40, 60, 50) {
		t.Fatalf("unexpected cell rect %v", got)
	}
}

func TestLayout_CellAt(t *testing.T) {
	l := defaultLayout()
	cases := []struct {
		p        image.Point
		row, col int
		ok       bool
	}{
		{image.Pt(20, 20), 0, 0, true},
		{image.Pt(29, 29), 0, 0, true},
		{image.Pt(30, 20), 0, 1, true},
		{image.Pt(75, 76), 5, 5, true},
		{image.Pt(299, 299), 27, 27, true},
		{image.Pt(300, 150), 0, 0, false},
		{image.Pt(19, 150), 0, 0, false},
		{image.Pt(150, 300), 0, 0, false},
		{image.Pt(-5, -5), 0, 0, false},
	}
	for _, c := range cases {
		row, col, ok := l.CellAt(c.p)
		if ok != c.ok || (ok && (row != c.row || col != c.col)) {
			t.Fatalf("CellAt(%v) = (%d,%d,%v), want (%d,%d,%v)", c.p, row, col, ok, c.row, c.col, c.ok)
		}
	}
}

func TestLayout_ButtonHitTesting(t *testing.T) {
	l := defaultLayout()
	if b, ok := l.ButtonAt(image.Pt(80, 345)); !ok || b.Action != ActionReset {
		t.Fatalf("expected reset hit, got %v ok=%v", b.Action, ok)
	}
	if b, ok := l.ButtonAt(image.Pt(200, 345)); !ok || b.Action != ActionClassify {
		t.Fatalf("expected classify hit, got %v ok=%v", b.Action, ok)
	}
	misses := []image.Point{
		image.Pt(140, 345), // gap between buttons
		image.Pt(80, 329),  // above
		image.Pt(80, 360),  // bottom edge is exclusive
		image.Pt(130, 345), // right edge of reset is exclusive
		image.Pt(450, 100),
	}
	for _, p := range misses {
		if b, ok := l.ButtonAt(p); ok {
			t.Fatalf("point %v unexpectedly hit %v", p, b.Action)
		}
	}
}

func TestLayout_ButtonsFreshEachCall(t *testing.T) {
	l := defaultLayout()
	a := l.Buttons()
	a[0].Rect = image.Rectangle{}
	b := l.Buttons()
	if b[0].Rect.Empty() {
		t.Fatalf("Buttons must not share state between calls")
	}
	if b[0].Label != "Reset" || b[1].Label != "Classify" {
		t.Fatalf("unexpected labels %q %q", b[0].Label, b[1].Label)
	}
	if ActionClassify.String() != "classify" || Action(0).String() != "none" {
		t.Fatalf("unexpected action names")
	}
}
