package config

import (
	"encoding/json"
	"image"
	"os"

	"github.com/soocke/digitpad-go/domain/grid"
	"github.com/soocke/digitpad-go/ui/layout"
)

// Frontend names accepted in Config.Frontend.
const (
	FrontendWindow   = "window"
	FrontendTerminal = "terminal"
	FrontendTk       = "tk"
)

// Config holds runtime configuration for the drawing pad.
// Fields may be loaded from a JSON file and overridden by command-line flags.
type Config struct {
	Debug    bool   `json:"debug"`
	Frontend string `json:"frontend"`

	// Resources
	ModelPath   string `json:"model_path"`
	FontPath    string `json:"font_path"` // empty selects the built-in Go font
	LogPath     string `json:"log_path"`  // terminal frontend only
	SnapshotDir string `json:"snapshot_dir"`

	// Frame rate (ticks per second)
	TPS int `json:"tps"`

	// Window and layout geometry in pixels
	WindowWidth     int `json:"window_width"`
	WindowHeight    int `json:"window_height"`
	GridOffset      int `json:"grid_offset"`
	CellSize        int `json:"cell_size"`
	ButtonWidth     int `json:"button_width"`
	ButtonHeight    int `json:"button_height"`
	ButtonGap       int `json:"button_gap"` // space between grid bottom and buttons
	ResetButtonX    int `json:"reset_button_x"`
	ClassifyButtonX int `json:"classify_button_x"`
	ResultInsetX    int `json:"result_inset_x"` // distance of the result center from the right edge
	ResultY         int `json:"result_y"`

	// Font sizes in points
	SmallFontSize float64 `json:"small_font_size"`
	LargeFontSize float64 `json:"large_font_size"`
}

// DefaultConfig returns a Config populated with standard defaults.
func DefaultConfig() *Config {
	return &Config{
		Debug:           false,
		Frontend:        FrontendWindow,
		ModelPath:       "model.json",
		FontPath:        "assets/OpenSansRegular.ttf",
		LogPath:         "digitpad.log",
		SnapshotDir:     "",
		TPS:             60,
		WindowWidth:     600,
		WindowHeight:    400,
		GridOffset:      20,
		CellSize:        10,
		ButtonWidth:     100,
		ButtonHeight:    30,
		ButtonGap:       30,
		ResetButtonX:    30,
		ClassifyButtonX: 150,
		ResultInsetX:    150,
		ResultY:         100,
		SmallFontSize:   20,
		LargeFontSize:   40,
	}
}

// Validate clamps/normalizes values to safe ranges.
func (c *Config) Validate() error {
	d := DefaultConfig()
	switch c.Frontend {
	case FrontendWindow, FrontendTerminal, FrontendTk:
	default:
		c.Frontend = d.Frontend
	}
	if c.TPS <= 0 || c.TPS > 240 {
		c.TPS = d.TPS
	}
	if c.WindowWidth <= 0 {
		c.WindowWidth = d.WindowWidth
	}
	if c.WindowHeight <= 0 {
		c.WindowHeight = d.WindowHeight
	}
	if c.GridOffset < 0 {
		c.GridOffset = d.GridOffset
	}
	if c.CellSize <= 0 {
		c.CellSize = d.CellSize
	}
	if c.ButtonWidth <= 0 {
		c.ButtonWidth = d.ButtonWidth
	}
	if c.ButtonHeight <= 0 {
		c.ButtonHeight = d.ButtonHeight
	}
	if c.ButtonGap < 0 {
		c.ButtonGap = d.ButtonGap
	}
	if c.SmallFontSize <= 0 {
		c.SmallFontSize = d.SmallFontSize
	}
	if c.LargeFontSize <= 0 {
		c.LargeFontSize = d.LargeFontSize
	}
	return nil
}

// Layout snapshots the geometry fields into an immutable layout value.
func (c *Config) Layout() layout.Layout {
	gridBottom := c.GridOffset + grid.Rows*c.CellSize
	buttonY := gridBottom + c.ButtonGap
	return layout.New(layout.Spec{
		Size:         image.Pt(c.WindowWidth, c.WindowHeight),
		Origin:       image.Pt(c.GridOffset, c.GridOffset),
		Rows:         grid.Rows,
		Cols:         grid.Cols,
		CellSize:     c.CellSize,
		ButtonSize:   image.Pt(c.ButtonWidth, c.ButtonHeight),
		ResetAt:      image.Pt(c.ResetButtonX, buttonY),
		ClassifyAt:   image.Pt(c.ClassifyButtonX, buttonY),
		ResultCenter: image.Pt(c.WindowWidth-c.ResultInsetX, c.ResultY),
	})
}

// Load attempts to read configuration from the given JSON file path. If the file does not
// exist it returns DefaultConfig(). On JSON error it returns defaults with the error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	defer f.Close()
	dec := json.NewDecoder(f)
	if err := dec.Decode(cfg); err != nil {
		return DefaultConfig(), err
	}
	_ = cfg.Validate()
	return cfg, nil
}

// Save writes the configuration to the given path in JSON format.
func (c *Config) Save(path string) error {
	_ = c.Validate()
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}
