package tkwindow

import (
	"image/color"

	"github.com/soocke/digitpad-go/ui/images"
	"github.com/soocke/digitpad-go/ui/presenter"
	"github.com/soocke/digitpad-go/ui/raster"
)

// driver advances the loop from keyboard samples and produces the frame to show.
type driver struct {
	loop   *presenter.Loop
	keys   *presenter.KeyPointer
	canvas *raster.Canvas
	cursor color.Color
}

// step feeds the queued samples through the loop and returns the frame as PNG.
// A loop error stops feeding and is returned without a frame.
func (d *driver) step() ([]byte, error) {
	for _, p := range d.keys.Samples() {
		if err := d.loop.Tick(p); err != nil {
			return nil, err
		}
	}
	d.loop.Render(d.canvas)
	if d.cursor != nil {
		d.canvas.StrokeRect(d.keys.Cursor(), d.cursor)
	}
	return images.EncodePNG(d.canvas.Image()), nil
}
