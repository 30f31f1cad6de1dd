package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	colorful "github.com/lucasb-eyer/go-colorful"

	"linestorm/internal/raster"
)

// Surface kinds.
const (
	SurfaceWindow = "window"
	SurfaceWebP   = "webp"
)

// Config holds all canvas, frame loop and output settings.
type Config struct {
	// Canvas
	Width  int    `json:"width" toml:"width"`
	Height int    `json:"height" toml:"height"`
	Title  string `json:"title" toml:"title"`

	// Frame loop
	FPS           int    `json:"fps" toml:"fps"`
	LinesPerFrame int    `json:"lines_per_frame" toml:"lines_per_frame"`
	LineColor     string `json:"line_color" toml:"line_color"`
	MaxFrames     int    `json:"max_frames" toml:"max_frames"`
	Seed          uint64 `json:"seed" toml:"seed"`

	// Optional image blitted over the lines every frame
	OverlayImage string `json:"overlay_image" toml:"overlay_image"`
	OverlayX     int    `json:"overlay_x" toml:"overlay_x"`
	OverlayY     int    `json:"overlay_y" toml:"overlay_y"`

	// Output
	Surface     string  `json:"surface" toml:"surface"`
	OutputDir   string  `json:"output_dir" toml:"output_dir"`
	RecordEvery int     `json:"record_every" toml:"record_every"`
	Scale       float64 `json:"scale" toml:"scale"`
}

// Load reads a JSON or TOML config file, chosen by extension.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	default:
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := json.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}
	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	Surface   string
	OutputDir string
	FPS       int
	Lines     int
	MaxFrames int
	Seed      uint64
}

// Resolve applies CLI overrides, then fills empty fields with defaults.
// Defaults match the classic demo: 800x600 at 120 FPS, 1000 red lines.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.Surface != "" {
		c.Surface = flags.Surface
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.FPS > 0 {
		c.FPS = flags.FPS
	}
	if flags.Lines > 0 {
		c.LinesPerFrame = flags.Lines
	}
	if flags.MaxFrames > 0 {
		c.MaxFrames = flags.MaxFrames
	}
	if flags.Seed != 0 {
		c.Seed = flags.Seed
	}

	if c.Width <= 0 {
		c.Width = 800
	}
	if c.Height <= 0 {
		c.Height = 600
	}
	if c.Title == "" {
		c.Title = "Pixel Drawing"
	}
	if c.FPS <= 0 {
		c.FPS = 120
	}
	if c.LinesPerFrame <= 0 {
		c.LinesPerFrame = 1000
	}
	if c.LineColor == "" {
		c.LineColor = "#ff0000"
	}
	if c.Surface == "" {
		c.Surface = SurfaceWindow
	}
	if c.Surface == SurfaceWebP {
		if c.OutputDir == "" {
			c.OutputDir = "frames"
		}
		if c.RecordEvery <= 0 {
			c.RecordEvery = 1
		}
		if c.Scale <= 0 {
			c.Scale = 1
		}
		// A headless run needs an end.
		if c.MaxFrames <= 0 {
			c.MaxFrames = 120
		}
	}
}

// Validate reports settings that Resolve cannot repair.
func (c *Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("canvas size %dx%d must be positive", c.Width, c.Height))
	}
	if c.FPS <= 0 {
		errs = append(errs, fmt.Errorf("fps %d must be positive", c.FPS))
	}
	if c.LinesPerFrame < 0 {
		errs = append(errs, fmt.Errorf("lines_per_frame %d must not be negative", c.LinesPerFrame))
	}
	if _, err := c.Color(); err != nil {
		errs = append(errs, err)
	}
	switch c.Surface {
	case SurfaceWindow, SurfaceWebP:
	default:
		errs = append(errs, fmt.Errorf("unknown surface %q (want %q or %q)", c.Surface, SurfaceWindow, SurfaceWebP))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Color returns LineColor as an opaque packed ARGB value.
func (c *Config) Color() (uint32, error) {
	clr, err := colorful.Hex(c.LineColor)
	if err != nil {
		return 0, fmt.Errorf("line_color %q: %w", c.LineColor, err)
	}
	r, g, b := clr.RGB255()
	return raster.PackARGB(r, g, b, 0xff), nil
}
