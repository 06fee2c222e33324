package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg != Default() {
		t.Errorf("expected defaults, got %+v", cfg)
	}
	if cfg.Gesture.LongPress.Duration != 500*time.Millisecond {
		t.Errorf("expected 500ms long press, got %s", cfg.Gesture.LongPress)
	}
}

func TestLoadOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[gesture]
long_press = "750ms"
touch_always_add = false

[log]
debug = true
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Gesture.LongPress.Duration != 750*time.Millisecond {
		t.Errorf("expected 750ms, got %s", cfg.Gesture.LongPress)
	}
	if cfg.Gesture.TouchAlwaysAdd {
		t.Error("expected touch_always_add=false")
	}
	if cfg.Gesture.MoveThreshold != 10 {
		t.Errorf("unset keys should keep defaults, got move_threshold=%v", cfg.Gesture.MoveThreshold)
	}
	if !cfg.Log.Debug {
		t.Error("expected debug logging")
	}

	settings := cfg.GestureSettings()
	if settings.LongPress != 750*time.Millisecond || settings.TouchAlwaysAdd {
		t.Errorf("unexpected gesture settings %+v", settings)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := map[string]string{
		"bad duration":   "[gesture]\nlong_press = \"soon\"\n",
		"zero duration":  "[gesture]\nlong_press = \"0s\"\n",
		"negative move":  "[gesture]\nmove_threshold = -1.0\n",
		"inner too big":  "[display]\ninner_radius = 1.5\n",
		"outer < inner":  "[display]\ninner_radius = 0.5\nouter_radius = 0.4\n",
		"malformed toml": "[gesture\n",
	}

	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
				t.Fatal(err)
			}

			cfg, err := Load(path)
			if err == nil {
				t.Fatal("expected an error")
			}
			if cfg != Default() {
				t.Errorf("a rejected file should fall back to defaults, got %+v", cfg)
			}
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg := Default()
	cfg.Gesture.LongPress.Duration = 300 * time.Millisecond
	cfg.Display.MarkerHitRadius = 20

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded != cfg {
		t.Errorf("expected %+v, got %+v", cfg, loaded)
	}
}

func TestSaveReportsWriteFailure(t *testing.T) {
	// A directory in place of the file cannot be created as a file
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.Mkdir(path, 0o755); err != nil {
		t.Fatal(err)
	}

	if err := Save(path, Default()); err == nil {
		t.Error("expected an error when the file cannot be written")
	}
}
