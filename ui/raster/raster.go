// Package raster renders frames into an in-memory RGBA image, for frontends
// that display a picture rather than drawing on a GPU surface.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/soocke/digitpad-go/ui/view"
)

// Canvas implements view.Canvas over an *image.RGBA.
type Canvas struct {
	img   *image.RGBA
	small font.Face
	large font.Face
}

var _ view.Canvas = (*Canvas)(nil)

// New parses ttf and allocates a size.X by size.Y frame.
func New(size image.Point, ttf []byte, smallPt, largePt float64) (*Canvas, error) {
	f, err := opentype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	small, err := opentype.NewFace(f, &opentype.FaceOptions{Size: smallPt, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return nil, fmt.Errorf("small face: %w", err)
	}
	large, err := opentype.NewFace(f, &opentype.FaceOptions{Size: largePt, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return nil, fmt.Errorf("large face: %w", err)
	}
	return &Canvas{img: image.NewRGBA(image.Rectangle{Max: size}), small: small, large: large}, nil
}

// Image returns the frame. It is reused between frames.
func (c *Canvas) Image() *image.RGBA { return c.img }

func (c *Canvas) Fill(clr color.Color) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(clr), image.Point{}, draw.Src)
}

func (c *Canvas) FillRect(r image.Rectangle, clr color.Color) {
	draw.Draw(c.img, r.Intersect(c.img.Bounds()), image.NewUniform(clr), image.Point{}, draw.Over)
}

// StrokeRect draws a 1px outline inside r.
func (c *Canvas) StrokeRect(r image.Rectangle, clr color.Color) {
	if r.Empty() {
		return
	}
	edges := []image.Rectangle{
		{Min: r.Min, Max: image.Pt(r.Max.X, r.Min.Y+1)},
		{Min: image.Pt(r.Min.X, r.Max.Y-1), Max: r.Max},
		{Min: r.Min, Max: image.Pt(r.Min.X+1, r.Max.Y)},
		{Min: image.Pt(r.Max.X-1, r.Min.Y), Max: r.Max},
	}
	for _, e := range edges {
		c.FillRect(e, clr)
	}
}

// DrawText centers s on center, horizontally by advance and vertically by the face metrics.
func (c *Canvas) DrawText(s string, size view.TextSize, center image.Point, clr color.Color) {
	face := c.small
	if size == view.TextLarge {
		face = c.large
	}
	m := face.Metrics()
	adv := font.MeasureString(face, s)
	d := &font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(clr),
		Face: face,
		Dot: fixed.Point26_6{
			X: fixed.I(center.X) - adv/2,
			Y: fixed.I(center.Y) + (m.Ascent-m.Descent)/2,
		},
	}
	d.DrawString(s)
}
