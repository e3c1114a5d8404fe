package images

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/soocke/digitpad-go/domain/grid"
)

func TestGridImage_Intensities(t *testing.T) {
	g := grid.New()
	g.Paint(5, 5)
	img := GridImage(g)
	if b := img.Bounds(); b.Dx() != 28 || b.Dy() != 28 {
		t.Fatalf("unexpected bounds %v", b)
	}
	if y := img.GrayAt(5, 5).Y; y != 250 {
		t.Fatalf("center = %d want 250", y)
	}
	if y := img.GrayAt(6, 5).Y; y != 220 {
		t.Fatalf("right neighbour = %d want 220", y)
	}
	if y := img.GrayAt(6, 6).Y; y != 190 {
		t.Fatalf("diagonal = %d want 190", y)
	}
	if y := img.GrayAt(0, 0).Y; y != 0 {
		t.Fatalf("empty cell = %d", y)
	}
}

func TestUpscale(t *testing.T) {
	g := grid.New()
	g.Paint(0, 0)
	up := Upscale(GridImage(g), 3)
	if b := up.Bounds(); b.Dx() != 84 || b.Dy() != 84 {
		t.Fatalf("unexpected bounds %v", b)
	}
	if up.GrayAt(2, 2).Y != 250 || up.GrayAt(3, 0).Y != 220 || up.GrayAt(6, 6).Y != 0 {
		t.Fatalf("unexpected upscaled pixels")
	}
	src := GridImage(g)
	if Upscale(src, 1) != src {
		t.Fatalf("factor 1 should return src")
	}
	// Sub-images scale from their own bounds into a zero-origin result.
	sub := Upscale(src.SubImage(image.Rect(1, 1, 3, 3)).(*image.Gray), 2)
	if sub.Bounds() != image.Rect(0, 0, 4, 4) || sub.GrayAt(1, 1).Y != 190 || sub.GrayAt(2, 2).Y != 0 {
		t.Fatalf("unexpected sub-image upscale %v", sub.Bounds())
	}
}

func TestSnapshotWriter_Write(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "snaps")
	w := NewSnapshotWriter(dir)
	g := grid.New()
	g.Paint(10, 10)
	if _, err := w.Write(g, 3); err != nil {
		t.Fatalf("first write: %v", err)
	}
	path, err := w.Write(g, 7)
	if err != nil {
		t.Fatalf("second write: %v", err)
	}
	if filepath.Base(path) != "digit-2-7.png" {
		t.Fatalf("unexpected name %s", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 280 || b.Dy() != 280 {
		t.Fatalf("unexpected size %v", b)
	}
}

func TestSnapshotWriter_Disabled(t *testing.T) {
	var w *SnapshotWriter
	if p, err := w.Write(grid.New(), 1); p != "" || err != nil {
		t.Fatalf("nil writer wrote %q err=%v", p, err)
	}
}
