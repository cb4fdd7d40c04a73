package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid")

// Mode selects which input drives the sequence.
type Mode string

const (
	ModeDrag   Mode = "drag"
	ModeScroll Mode = "scroll"
)

// Config is the viewer configuration, normally read from spinview.yaml.
type Config struct {
	Frames      int     `yaml:"frames"`
	BasePath    string  `yaml:"base_path"`
	Extension   string  `yaml:"extension"`
	Sensitivity float64 `yaml:"sensitivity"`
	Mode        Mode    `yaml:"mode"`
	// ScrollLength is the virtual scroll distance, in pixels, that spans the
	// whole sequence in scroll mode.
	ScrollLength float64 `yaml:"scroll_length"`
	MaxInFlight  int     `yaml:"max_in_flight"`
	Autoplay     string  `yaml:"autoplay"`

	Window     WindowSpec `yaml:"window"`
	Background string     `yaml:"background"`
}

type WindowSpec struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// Default returns the configuration of the bundled revuelto sequence.
func Default() Config {
	return Config{
		Frames:       181,
		BasePath:     "public/images/revuelto-sequence/frame-",
		Extension:    "jpg",
		Sensitivity:  5,
		Mode:         ModeDrag,
		ScrollLength: 4000,
		Window: WindowSpec{
			Title:  "spinview",
			Width:  1280,
			Height: 720,
		},
		Background: "#000000",
	}
}

// Load reads a YAML file over the defaults. Fields missing from the file keep
// their default value.
func Load(filename string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(filename)
	if err != nil {
		return cfg, fmt.Errorf("config: load %s: %w", filename, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: unmarshal %s: %w", filename, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", filename, err)
	}
	return cfg, nil
}

// Validate checks the configuration and normalizes the extension.
func (c *Config) Validate() error {
	c.Extension = strings.TrimPrefix(strings.TrimSpace(c.Extension), ".")
	c.Mode = Mode(strings.ToLower(strings.TrimSpace(string(c.Mode))))

	switch {
	case c.Frames <= 0:
		return fmt.Errorf("%w: frames must be positive, got %d", ErrInvalidConfig, c.Frames)
	case c.Frames > 999:
		// Locators are zero padded to three digits.
		return fmt.Errorf("%w: frames must be at most 999, got %d", ErrInvalidConfig, c.Frames)
	case c.BasePath == "":
		return fmt.Errorf("%w: base_path is required", ErrInvalidConfig)
	case c.Extension == "":
		return fmt.Errorf("%w: extension is required", ErrInvalidConfig)
	case c.Sensitivity < 0:
		return fmt.Errorf("%w: sensitivity must not be negative, got %v", ErrInvalidConfig, c.Sensitivity)
	case c.Mode != ModeDrag && c.Mode != ModeScroll:
		return fmt.Errorf("%w: unknown mode %q", ErrInvalidConfig, c.Mode)
	case c.ScrollLength <= 0:
		return fmt.Errorf("%w: scroll_length must be positive, got %v", ErrInvalidConfig, c.ScrollLength)
	case c.MaxInFlight < 0:
		return fmt.Errorf("%w: max_in_flight must not be negative, got %d", ErrInvalidConfig, c.MaxInFlight)
	}
	if _, err := ParseColor(c.Background); err != nil {
		return fmt.Errorf("%w: background: %v", ErrInvalidConfig, err)
	}
	return nil
}

// BackgroundColor returns the parsed background color, black if unset.
func (c Config) BackgroundColor() color.RGBA {
	col, err := ParseColor(c.Background)
	if err != nil {
		return color.RGBA{A: 0xff}
	}
	return col
}

// ParseColor parses "#rrggbb" or "#rrggbbaa". An empty string is opaque black.
func ParseColor(s string) (color.RGBA, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if s == "" {
		return color.RGBA{A: 0xff}, nil
	}
	if len(s) != 6 && len(s) != 8 {
		return color.RGBA{}, fmt.Errorf("bad color %q", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("bad color %q", s)
	}
	if len(s) == 6 {
		v = v<<8 | 0xff
	}
	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}
