// Package config loads the rdclock settings file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/philipparndt/rdclock/pkg/geometry"
	"github.com/philipparndt/rdclock/pkg/gesture"
)

const (
	appDir   = "rdclock"
	fileName = "config.toml"
)

// Config is the settings file layout
type Config struct {
	Gesture GestureConfig `toml:"gesture"`
	Display DisplayConfig `toml:"display"`
	Log     LogConfig     `toml:"log"`
}

// GestureConfig tunes drag and long-press recognition
type GestureConfig struct {
	LongPress      Duration `toml:"long_press"`
	MoveThreshold  float64  `toml:"move_threshold"`
	TouchAlwaysAdd bool     `toml:"touch_always_add"`
}

// DisplayConfig describes the clock face layout as fractions of the face radius
type DisplayConfig struct {
	// InnerRadius is the hole in the middle of the segment ring
	InnerRadius float64 `toml:"inner_radius"`
	// OuterRadius is the outer edge of the segment ring
	OuterRadius float64 `toml:"outer_radius"`
	// MarkerRing is where the tear markers sit
	MarkerRing float64 `toml:"marker_ring"`
	// MarkerHitRadius is the tear marker touch target in pixels
	MarkerHitRadius float64 `toml:"marker_hit_radius"`
}

// LogConfig controls logging
type LogConfig struct {
	Debug bool `toml:"debug"`
}

// Duration decodes TOML strings such as "500ms"
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = parsed
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the built-in settings
func Default() Config {
	g := gesture.DefaultSettings()
	return Config{
		Gesture: GestureConfig{
			LongPress:      Duration{g.LongPress},
			MoveThreshold:  g.MoveThreshold,
			TouchAlwaysAdd: g.TouchAlwaysAdd,
		},
		Display: DisplayConfig{
			InnerRadius:     0.35,
			OuterRadius:     0.8,
			MarkerRing:      0.9,
			MarkerHitRadius: 14,
		},
	}
}

// DefaultPath returns the settings file location under the user config directory
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = filepath.Join(os.Getenv("HOME"), ".config")
	}
	return filepath.Join(dir, appDir, fileName)
}

// Load reads a settings file on top of the defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := Decode(string(data), &cfg); err != nil {
		return Default(), fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// Decode parses TOML into cfg and validates the result
func Decode(data string, cfg *Config) error {
	if _, err := toml.Decode(data, cfg); err != nil {
		return err
	}
	return cfg.Validate()
}

// Validate checks value ranges
func (c Config) Validate() error {
	if c.Gesture.LongPress.Duration <= 0 {
		return fmt.Errorf("gesture.long_press must be positive, got %s", c.Gesture.LongPress)
	}
	if c.Gesture.MoveThreshold < 0 {
		return fmt.Errorf("gesture.move_threshold must not be negative, got %v", c.Gesture.MoveThreshold)
	}
	if c.Display.InnerRadius < 0 || c.Display.InnerRadius >= 1 {
		return fmt.Errorf("display.inner_radius must be in [0,1), got %v", c.Display.InnerRadius)
	}
	if c.Display.OuterRadius <= c.Display.InnerRadius || c.Display.OuterRadius > 1 {
		return fmt.Errorf("display.outer_radius must be in (inner_radius,1], got %v", c.Display.OuterRadius)
	}
	if c.Display.MarkerRing <= 0 {
		return fmt.Errorf("display.marker_ring must be positive, got %v", c.Display.MarkerRing)
	}
	if c.Display.MarkerHitRadius <= 0 {
		return fmt.Errorf("display.marker_hit_radius must be positive, got %v", c.Display.MarkerHitRadius)
	}
	return nil
}

// GestureSettings converts the gesture section for the controller
func (c Config) GestureSettings() gesture.Settings {
	return gesture.Settings{
		LongPress:      c.Gesture.LongPress.Duration,
		MoveThreshold:  c.Gesture.MoveThreshold,
		TouchAlwaysAdd: c.Gesture.TouchAlwaysAdd,
	}
}

// Layout converts the display section for hit testing and drawing
func (d DisplayConfig) Layout() geometry.Layout {
	return geometry.Layout{
		InnerRadius:     d.InnerRadius,
		OuterRadius:     d.OuterRadius,
		MarkerRing:      d.MarkerRing,
		MarkerHitRadius: d.MarkerHitRadius,
	}
}

// Save writes the settings file, creating its directory
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
