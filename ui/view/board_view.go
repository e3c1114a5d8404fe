package view

import (
	"image"
	"strconv"

	"github.com/soocke/digitpad-go/domain/grid"
	"github.com/soocke/digitpad-go/ui/layout"
	"github.com/soocke/digitpad-go/ui/theme"
)

// BoardView renders the grid, the buttons and the classification result.
type BoardView struct {
	layout  layout.Layout
	palette theme.Palette
}

// NewBoardView returns a view drawing with l and p.
func NewBoardView(l layout.Layout, p theme.Palette) *BoardView {
	return &BoardView{layout: l, palette: p}
}

// Draw renders one frame: background, cells, buttons, then the digit if present.
func (v *BoardView) Draw(c Canvas, g *grid.Grid, digit int, hasDigit bool) {
	if v == nil || c == nil {
		return
	}
	c.Fill(v.palette.Background)
	v.drawGrid(c, g)
	for _, b := range v.layout.Buttons() {
		c.FillRect(b.Rect, v.palette.Button)
		c.DrawText(b.Label, TextSmall, center(b.Rect), v.palette.ButtonText)
	}
	if hasDigit {
		c.DrawText(strconv.Itoa(digit), TextLarge, v.layout.ResultCenter(), v.palette.Result)
	}
}

func (v *BoardView) drawGrid(c Canvas, g *grid.Grid) {
	rows, cols := v.layout.Dims()
	for r := 0; r < rows; r++ {
		for col := 0; col < cols; col++ {
			rect := v.layout.CellRect(r, col)
			if ink := g.At(r, col); ink > 0 {
				c.FillRect(rect, theme.Shade(ink))
			} else {
				c.FillRect(rect, v.palette.Cell)
			}
			c.StrokeRect(rect, v.palette.CellBorder)
		}
	}
}

func center(r image.Rectangle) image.Point {
	return image.Pt((r.Min.X+r.Max.X)/2, (r.Min.Y+r.Max.Y)/2)
}
