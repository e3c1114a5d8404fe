package assets

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/image/font/gofont/goregular"
)

// ErrFontEmpty is returned when a font file has no content.
var ErrFontEmpty = errors.New("font file is empty")

// FontTTF returns the TrueType bytes to render text with. An empty path
// selects the built-in Go Regular face.
func FontTTF(path string) ([]byte, error) {
	if path == "" {
		return goregular.TTF, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load font %s: %w", path, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("load font %s: %w", path, ErrFontEmpty)
	}
	return data, nil
}
