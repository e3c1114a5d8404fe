package theme

// Centralized colors for the drawing pad. Views take a Palette value instead
// of reading package state so frontends can render the same frame.

import (
	"fmt"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Palette hex values.
const (
	ColorBg         = "#000000" // frame background
	ColorCell       = "#ffffff" // untouched cell
	ColorCellBorder = "#000000"
	ColorButton     = "#ffffff"
	ColorButtonText = "#000000"
	ColorResult     = "#ffffff"
	ColorCursor     = "#ef4444" // keyboard cursor outline (tk frontend)
)

// Palette holds resolved colors used by the board view.
type Palette struct {
	Background color.Color
	Cell       color.Color
	CellBorder color.Color
	Button     color.Color
	ButtonText color.Color
	Result     color.Color
	Cursor     color.Color
}

// DefaultPalette returns the standard black-background palette.
func DefaultPalette() Palette {
	return Palette{
		Background: MustHex(ColorBg),
		Cell:       MustHex(ColorCell),
		CellBorder: MustHex(ColorCellBorder),
		Button:     MustHex(ColorButton),
		ButtonText: MustHex(ColorButtonText),
		Result:     MustHex(ColorResult),
		Cursor:     MustHex(ColorCursor),
	}
}

// Shade maps an ink intensity in [0, 1] to a gray level; more ink is darker.
func Shade(intensity float64) color.Gray {
	if intensity < 0 {
		intensity = 0
	}
	if intensity > 1 {
		intensity = 1
	}
	return color.Gray{Y: uint8(math.Round(255 - intensity*255))}
}

// Hex parses "#rrggbb" into an opaque color.
func Hex(s string) (color.RGBA, error) {
	// colorful also takes "#rgb" and stops short on truncated input.
	if len(s) != 7 {
		return color.RGBA{}, fmt.Errorf("invalid color %q", s)
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}

// MustHex is Hex for package constants; it panics on malformed input.
func MustHex(s string) color.RGBA {
	c, err := Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}
