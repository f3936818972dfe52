package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}

	if cfg.PinchThreshold != 0.04 {
		t.Errorf("PinchThreshold = %g, want 0.04", cfg.PinchThreshold)
	}
	if cfg.CursorSmoothing != 0.85 {
		t.Errorf("CursorSmoothing = %g, want 0.85", cfg.CursorSmoothing)
	}
	if cfg.Handedness != "Right" {
		t.Errorf("Handedness = %q, want %q", cfg.Handedness, "Right")
	}
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg != Default() {
		t.Errorf("missing file should yield defaults, got %+v", cfg)
	}
}

func TestLoad_OverridesFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "pinch_threshold: 0.06\nscroll_speed: 20\nhandedness: Left\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.PinchThreshold != 0.06 {
		t.Errorf("PinchThreshold = %g, want 0.06", cfg.PinchThreshold)
	}
	if cfg.ScrollSpeed != 20 {
		t.Errorf("ScrollSpeed = %d, want 20", cfg.ScrollSpeed)
	}
	if cfg.Handedness != "Left" {
		t.Errorf("Handedness = %q, want Left", cfg.Handedness)
	}
	// Untouched fields keep their defaults
	if cfg.SwipeThreshold != 0.15 {
		t.Errorf("SwipeThreshold = %g, want default 0.15", cfg.SwipeThreshold)
	}
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("pinch_threshold: [oops"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed yaml")
	}
}

func TestValidate_RejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative pinch threshold", func(c *Config) { c.PinchThreshold = -0.01 }},
		{"zero pinch threshold", func(c *Config) { c.PinchThreshold = 0 }},
		{"negative swipe threshold", func(c *Config) { c.SwipeThreshold = -1 }},
		{"zero scroll speed", func(c *Config) { c.ScrollSpeed = 0 }},
		{"negative scroll interval", func(c *Config) { c.ScrollInterval = -0.05 }},
		{"negative click debounce", func(c *Config) { c.ClickDebounceTime = -0.5 }},
		{"negative swipe debounce", func(c *Config) { c.SwipeDebounceTime = -0.5 }},
		{"smoothing of one", func(c *Config) { c.CursorSmoothing = 1.0 }},
		{"negative smoothing", func(c *Config) { c.CursorSmoothing = -0.1 }},
		{"negative movement threshold", func(c *Config) { c.MinMovementThreshold = -2 }},
		{"bad handedness", func(c *Config) { c.Handedness = "Both" }},
		{"zero motion threshold", func(c *Config) { c.MotionThreshold = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestApplySetting(t *testing.T) {
	cfg := Default()

	if err := cfg.ApplySetting("pinch_threshold", "0.08"); err != nil {
		t.Fatalf("ApplySetting() error = %v", err)
	}
	if cfg.PinchThreshold != 0.08 {
		t.Errorf("PinchThreshold = %g, want 0.08", cfg.PinchThreshold)
	}

	if err := cfg.ApplySetting("scroll_speed", "15"); err != nil {
		t.Fatalf("ApplySetting() error = %v", err)
	}
	if cfg.ScrollSpeed != 15 {
		t.Errorf("ScrollSpeed = %d, want 15", cfg.ScrollSpeed)
	}

	if err := cfg.ApplySetting("mirror_frame", "false"); err != nil {
		t.Fatalf("ApplySetting() error = %v", err)
	}
	if cfg.MirrorFrame {
		t.Error("MirrorFrame should be false")
	}

	if err := cfg.ApplySetting("no_such_key", "1"); err == nil {
		t.Error("expected error for unknown setting key")
	}
	if err := cfg.ApplySetting("scroll_speed", "fast"); err == nil {
		t.Error("expected error for unparsable value")
	}
}

func TestDurationAccessors(t *testing.T) {
	cfg := Default()

	if got := cfg.ScrollIntervalDuration().Milliseconds(); got != 50 {
		t.Errorf("ScrollIntervalDuration = %dms, want 50ms", got)
	}
	if got := cfg.ClickDebounce().Milliseconds(); got != 500 {
		t.Errorf("ClickDebounce = %dms, want 500ms", got)
	}
	if got := cfg.SwipeDebounce().Milliseconds(); got != 500 {
		t.Errorf("SwipeDebounce = %dms, want 500ms", got)
	}
}
