// Package config holds the tunable parameters for the Mudra cursor control pipeline.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the full set of process-start tunables. It is built once at
// startup, validated eagerly, and never mutated afterwards: the dispatcher
// and motion shaping read it by value.
//
// Time-valued fields are in seconds, matching how the thresholds are
// usually discussed and tuned.
type Config struct {
	// PinchThreshold is the normalized thumb-index distance below which a
	// pinch (click) is detected.
	PinchThreshold float64 `yaml:"pinch_threshold" json:"pinch_threshold"`

	// SwipeThreshold is the normalized rightward centroid displacement that
	// triggers the browser-back swipe while scrolling.
	SwipeThreshold float64 `yaml:"swipe_threshold" json:"swipe_threshold"`

	// ScrollSpeed is the magnitude of one scroll tick, in scroll units.
	ScrollSpeed int `yaml:"scroll_speed" json:"scroll_speed"`

	// ScrollInterval is the minimum time between scroll ticks, in seconds.
	ScrollInterval float64 `yaml:"scroll_interval" json:"scroll_interval"`

	// ClickDebounceTime is the minimum time between clicks, in seconds.
	ClickDebounceTime float64 `yaml:"click_debounce_time" json:"click_debounce_time"`

	// SwipeDebounceTime is the minimum time between swipes, in seconds.
	SwipeDebounceTime float64 `yaml:"swipe_debounce_time" json:"swipe_debounce_time"`

	// CursorSmoothing is the exponential smoothing factor for cursor
	// movement, in [0,1). Higher is smoother.
	CursorSmoothing float64 `yaml:"cursor_smoothing" json:"cursor_smoothing"`

	// MinMovementThreshold is the pixel delta below which cursor moves are
	// suppressed to avoid flooding the OS with sub-pixel jitter.
	MinMovementThreshold float64 `yaml:"min_movement_threshold" json:"min_movement_threshold"`

	// Handedness selects which hand drives the pipeline ("Left" or "Right").
	Handedness string `yaml:"handedness" json:"handedness"`

	// CameraID is the capture device index.
	CameraID int `yaml:"camera_id" json:"camera_id"`

	// MirrorFrame flips frames horizontally so the cursor tracks the hand
	// like a mirror.
	MirrorFrame bool `yaml:"mirror_frame" json:"mirror_frame"`

	// MotionThreshold is the percentage of changed pixels that switches the
	// pipeline from idle to active frame rate.
	MotionThreshold float64 `yaml:"motion_threshold" json:"motion_threshold"`

	// ListenAddr is the HTTP server address.
	ListenAddr string `yaml:"listen_addr" json:"listen_addr"`
}

// Default returns the configuration the application ships with.
func Default() Config {
	return Config{
		PinchThreshold:       0.04,
		SwipeThreshold:       0.15,
		ScrollSpeed:          10,
		ScrollInterval:       0.05,
		ClickDebounceTime:    0.5,
		SwipeDebounceTime:    0.5,
		CursorSmoothing:      0.85,
		MinMovementThreshold: 2,
		Handedness:           "Right",
		CameraID:             0,
		MirrorFrame:          true,
		MotionThreshold:      1.0,
		ListenAddr:           ":8080",
	}
}

// Load reads the YAML config file at path over the defaults. A missing file
// is not an error: the defaults are returned unchanged.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config yaml: %w", err)
	}

	return cfg, nil
}

// Validate rejects configurations that would produce undefined gesture
// behavior. Callers treat a failure as fatal at startup.
func (c Config) Validate() error {
	if c.PinchThreshold <= 0 {
		return fmt.Errorf("pinch_threshold must be positive, got %g", c.PinchThreshold)
	}
	if c.SwipeThreshold <= 0 {
		return fmt.Errorf("swipe_threshold must be positive, got %g", c.SwipeThreshold)
	}
	if c.ScrollSpeed <= 0 {
		return fmt.Errorf("scroll_speed must be positive, got %d", c.ScrollSpeed)
	}
	if c.ScrollInterval < 0 {
		return fmt.Errorf("scroll_interval must not be negative, got %g", c.ScrollInterval)
	}
	if c.ClickDebounceTime < 0 {
		return fmt.Errorf("click_debounce_time must not be negative, got %g", c.ClickDebounceTime)
	}
	if c.SwipeDebounceTime < 0 {
		return fmt.Errorf("swipe_debounce_time must not be negative, got %g", c.SwipeDebounceTime)
	}
	if c.CursorSmoothing < 0 || c.CursorSmoothing >= 1 {
		return fmt.Errorf("cursor_smoothing must be in [0,1), got %g", c.CursorSmoothing)
	}
	if c.MinMovementThreshold < 0 {
		return fmt.Errorf("min_movement_threshold must not be negative, got %g", c.MinMovementThreshold)
	}
	if c.Handedness != "Left" && c.Handedness != "Right" {
		return fmt.Errorf("handedness must be %q or %q, got %q", "Left", "Right", c.Handedness)
	}
	if c.MotionThreshold <= 0 {
		return fmt.Errorf("motion_threshold must be positive, got %g", c.MotionThreshold)
	}
	return nil
}

// ScrollIntervalDuration returns ScrollInterval as a time.Duration.
func (c Config) ScrollIntervalDuration() time.Duration {
	return seconds(c.ScrollInterval)
}

// ClickDebounce returns ClickDebounceTime as a time.Duration.
func (c Config) ClickDebounce() time.Duration {
	return seconds(c.ClickDebounceTime)
}

// SwipeDebounce returns SwipeDebounceTime as a time.Duration.
func (c Config) SwipeDebounce() time.Duration {
	return seconds(c.SwipeDebounceTime)
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

// ApplySetting overrides a single field from its settings-store key. Used to
// layer persisted overrides on top of the file config at startup.
func (c *Config) ApplySetting(key, value string) error {
	switch key {
	case "pinch_threshold":
		return parseFloat(value, &c.PinchThreshold)
	case "swipe_threshold":
		return parseFloat(value, &c.SwipeThreshold)
	case "scroll_speed":
		return parseInt(value, &c.ScrollSpeed)
	case "scroll_interval":
		return parseFloat(value, &c.ScrollInterval)
	case "click_debounce_time":
		return parseFloat(value, &c.ClickDebounceTime)
	case "swipe_debounce_time":
		return parseFloat(value, &c.SwipeDebounceTime)
	case "cursor_smoothing":
		return parseFloat(value, &c.CursorSmoothing)
	case "min_movement_threshold":
		return parseFloat(value, &c.MinMovementThreshold)
	case "handedness":
		c.Handedness = value
		return nil
	case "camera_id":
		return parseInt(value, &c.CameraID)
	case "mirror_frame":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("setting %s: %w", key, err)
		}
		c.MirrorFrame = b
		return nil
	case "motion_threshold":
		return parseFloat(value, &c.MotionThreshold)
	case "listen_addr":
		c.ListenAddr = value
		return nil
	default:
		return fmt.Errorf("unknown setting %q", key)
	}
}

func parseFloat(value string, dst *float64) error {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return err
	}
	*dst = f
	return nil
}

func parseInt(value string, dst *int) error {
	n, err := strconv.Atoi(value)
	if err != nil {
		return err
	}
	*dst = n
	return nil
}
