package images

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"os"
	"path/filepath"

	"github.com/soocke/digitpad-go/domain/grid"
)

// SnapshotScale is the upscale factor applied to saved grids.
const SnapshotScale = 10

// GridImage renders g as the network sees it: ink is bright on black.
func GridImage(g *grid.Grid) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, grid.Cols, grid.Rows))
	for r := 0; r < grid.Rows; r++ {
		for c := 0; c < grid.Cols; c++ {
			img.SetGray(c, r, color.Gray{Y: uint8(math.Round(g.At(r, c) * 255))})
		}
	}
	return img
}

// SnapshotWriter saves classified grids as numbered PNG files in a directory.
type SnapshotWriter struct {
	dir string
	seq int
}

// NewSnapshotWriter returns a writer for dir. The directory is created on first write.
func NewSnapshotWriter(dir string) *SnapshotWriter {
	return &SnapshotWriter{dir: dir}
}

// Write stores g as digit-<seq>-<digit>.png and returns the path written.
func (w *SnapshotWriter) Write(g *grid.Grid, digit int) (string, error) {
	if w == nil || w.dir == "" {
		return "", nil
	}
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return "", fmt.Errorf("create snapshot dir: %w", err)
	}
	w.seq++
	path := filepath.Join(w.dir, fmt.Sprintf("digit-%d-%d.png", w.seq, digit))
	data := EncodePNG(Upscale(GridImage(g), SnapshotScale))
	if len(data) == 0 {
		return "", fmt.Errorf("encode snapshot %s", path)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write snapshot: %w", err)
	}
	return path, nil
}
