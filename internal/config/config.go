// Package config loads runtime configuration from environment
// variables. Gesture-to-action bindings and gesture thresholds are
// fixed constants and deliberately absent here.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the runtime options for the control loop.
type Config struct {
	// CameraID selects the capture device.
	CameraID int `env:"MUDRA_CAMERA_ID" envDefault:"0"`

	// MotionThreshold is the percent of changed pixels that counts as
	// motion for the idle gate.
	MotionThreshold float64 `env:"MUDRA_MOTION_THRESHOLD" envDefault:"1.0"`

	// JournalPath enables the SQLite action journal when non-empty.
	JournalPath string `env:"MUDRA_JOURNAL_PATH"`

	// Preview shows the camera preview window with the gesture overlay.
	Preview bool `env:"MUDRA_PREVIEW" envDefault:"true"`

	// NoTray disables the system tray control surface.
	NoTray bool `env:"MUDRA_NO_TRAY" envDefault:"false"`

	// ZoomCooldown rate-limits the zoom key chord. Zero (the default)
	// re-fires the chord on every qualifying frame.
	ZoomCooldown time.Duration `env:"MUDRA_ZOOM_COOLDOWN" envDefault:"0s"`
}

// Load parses the configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
