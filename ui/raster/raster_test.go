package raster

import (
	"image"
	"image/color"
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/soocke/digitpad-go/domain/grid"
	"github.com/soocke/digitpad-go/ui/layout"
	"github.com/soocke/digitpad-go/ui/theme"
	"github.com/soocke/digitpad-go/ui/view"
)

func testLayout() layout.Layout {
	return layout.New(layout.Spec{
		Size:         image.Pt(600, 400),
		Origin:       image.Pt(20, 20),
		Rows:         grid.Rows,
		Cols:         grid.Cols,
		CellSize:     10,
		ButtonSize:   image.Pt(100, 30),
		ResetAt:      image.Pt(30, 330),
		ClassifyAt:   image.Pt(150, 330),
		ResultCenter: image.Pt(450, 100),
	})
}

func newCanvas(t *testing.T) *Canvas {
	t.Helper()
	c, err := New(image.Pt(600, 400), goregular.TTF, 20, 40)
	if err != nil {
		t.Fatalf("new canvas: %v", err)
	}
	return c
}

func TestNew_RejectsBadFont(t *testing.T) {
	if _, err := New(image.Pt(10, 10), []byte("not a font"), 20, 40); err == nil {
		t.Fatalf("expected font parse error")
	}
}

func TestCanvas_StrokeRectOutlinesOnly(t *testing.T) {
	c := newCanvas(t)
	red := color.RGBA{R: 0xff, A: 0xff}
	c.Fill(color.Black)
	c.StrokeRect(image.Rect(10, 10, 20, 20), red)
	img := c.Image()
	for _, p := range []image.Point{{10, 10}, {19, 10}, {10, 19}, {19, 19}, {15, 10}} {
		if got := img.RGBAAt(p.X, p.Y); got != red {
			t.Fatalf("edge %v = %v", p, got)
		}
	}
	if got := img.RGBAAt(15, 15); got != (color.RGBA{A: 0xff}) {
		t.Fatalf("interior = %v", got)
	}
	if got := img.RGBAAt(20, 20); got != (color.RGBA{A: 0xff}) {
		t.Fatalf("outside = %v", got)
	}
}

func TestCanvas_BoardFrame(t *testing.T) {
	c := newCanvas(t)
	g := grid.New()
	g.Paint(5, 5)
	view.NewBoardView(testLayout(), theme.DefaultPalette()).Draw(c, g, 7, true)
	img := c.Image()

	if got := img.RGBAAt(75, 75); got != (color.RGBA{R: 5, G: 5, B: 5, A: 0xff}) {
		t.Fatalf("painted cell = %v", got)
	}
	if got := img.RGBAAt(105, 75); got != (color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}) {
		t.Fatalf("blank cell = %v", got)
	}
	if got := img.RGBAAt(70, 75); got != (color.RGBA{A: 0xff}) {
		t.Fatalf("cell border = %v", got)
	}
	if n := countDark(img, image.Rect(30, 330, 130, 360)); n == 0 {
		t.Fatalf("reset label not drawn")
	}
	if n := countBright(img, image.Rect(400, 50, 500, 150)); n == 0 {
		t.Fatalf("result digit not drawn")
	}
}

func countDark(img *image.RGBA, r image.Rectangle) int {
	n := 0
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if img.RGBAAt(x, y).R < 0x80 {
				n++
			}
		}
	}
	return n
}

func countBright(img *image.RGBA, r image.Rectangle) int {
	n := 0
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if img.RGBAAt(x, y).R >= 0x80 {
				n++
			}
		}
	}
	return n
}
