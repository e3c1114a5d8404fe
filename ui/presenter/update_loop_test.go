package presenter

import (
	"image"
	"image/color"
	"testing"
	"time"

	"github.com/soocke/digitpad-go/domain/grid"
	"github.com/soocke/digitpad-go/ui/model"
	"github.com/soocke/digitpad-go/ui/view"
)

type nopCanvas struct{}

func (nopCanvas) Fill(color.Color)                                         {}
func (nopCanvas) FillRect(image.Rectangle, color.Color)                    {}
func (nopCanvas) StrokeRect(image.Rectangle, color.Color)                  {}
func (nopCanvas) DrawText(string, view.TextSize, image.Point, color.Color) {}

type mockFrameView struct {
	draws    int
	grid     *grid.Grid
	digit    int
	hasDigit bool
}

func (v *mockFrameView) Draw(_ view.Canvas, g *grid.Grid, digit int, hasDigit bool) {
	v.draws++
	v.grid, v.digit, v.hasDigit = g, digit, hasDigit
}

func TestLoop_TickAndRender(t *testing.T) {
	board := model.NewBoardModel()
	bp := NewBoardPresenter(board, &mockClassifier{digit: 0}, testLogger())
	fv := &mockFrameView{}
	loop := NewLoop(NewInputHandler(testLayout(), bp), bp, fv)

	// Idle frame.
	loop.Render(nopCanvas{})
	if fv.draws != 1 || fv.hasDigit {
		t.Fatalf("idle render %+v", fv)
	}

	// Paint (5,5), release, click classify.
	steps := []Pointer{
		{Pos: image.Pt(75, 75), Down: true},
		{Pos: image.Pt(75, 75)},
		{Pos: classifyPt, Down: true},
	}
	for _, s := range steps {
		if err := loop.Tick(s); err != nil {
			t.Fatalf("tick: %v", err)
		}
	}
	loop.Render(nopCanvas{})
	if !fv.hasDigit || fv.digit != 0 {
		t.Fatalf("classified render %+v", fv)
	}
	if fv.grid.At(5, 5) != grid.BrushCenter {
		t.Fatalf("paint did not reach the grid")
	}
	if loop.Frames() != 3 {
		t.Fatalf("frames=%d", loop.Frames())
	}

	// Release, then reset.
	_ = loop.Tick(Pointer{Pos: resetPt})
	_ = loop.Tick(Pointer{Pos: resetPt, Down: true})
	loop.Render(nopCanvas{})
	if fv.hasDigit || !fv.grid.Empty() {
		t.Fatalf("reset render %+v", fv)
	}
}

func TestLoop_NilSafe(t *testing.T) {
	var l *Loop
	if err := l.Tick(Pointer{}); err != nil || l.Frames() != 0 {
		t.Fatalf("nil loop misbehaved")
	}
	l.Render(nopCanvas{})
}

func TestLoop_FeedsSession(t *testing.T) {
	board := model.NewBoardModel()
	bp := NewBoardPresenter(board, &mockClassifier{digit: 2}, testLogger())
	sess := model.NewSessionModel()
	sp := NewSessionPresenter(sess, testLogger())
	bp.AddResultListener(sp.Classified)
	loop := NewLoop(NewInputHandler(testLayout(), bp), bp, &mockFrameView{})
	loop.Session = sp
	now := time.Unix(0, 0)
	loop.Now = func() time.Time { return now }

	_ = loop.Tick(Pointer{Pos: image.Pt(75, 75), Down: true})
	now = now.Add(500 * time.Millisecond)
	_ = loop.Tick(Pointer{Pos: image.Pt(85, 75)})
	_ = loop.Tick(Pointer{Pos: classifyPt, Down: true})

	if _, total := sess.Values(); total != 500*time.Millisecond {
		t.Fatalf("pen-down total = %v", total)
	}
	if sess.Results()[2] != 1 {
		t.Fatalf("results = %v", sess.Results())
	}
}
