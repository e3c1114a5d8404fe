package view

import (
	"image"
	"image/color"
)

// TextSize selects one of the two loaded font sizes.
type TextSize int

const (
	TextSmall TextSize = iota // button labels
	TextLarge                 // classification result
)

// Canvas is the frame buffer a frontend hands to the view each frame.
// Coordinates are layout pixels.
type Canvas interface {
	Fill(c color.Color)
	FillRect(r image.Rectangle, c color.Color)
	StrokeRect(r image.Rectangle, c color.Color)
	DrawText(s string, size TextSize, center image.Point, c color.Color)
}
