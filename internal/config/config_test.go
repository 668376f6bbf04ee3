package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.CameraID != 0 {
		t.Errorf("CameraID = %d, want 0", cfg.CameraID)
	}
	if cfg.MotionThreshold != 1.0 {
		t.Errorf("MotionThreshold = %f, want 1.0", cfg.MotionThreshold)
	}
	if cfg.JournalPath != "" {
		t.Errorf("JournalPath = %q, want empty (journal disabled)", cfg.JournalPath)
	}
	if !cfg.Preview {
		t.Error("Preview should default to true")
	}
	if cfg.NoTray {
		t.Error("NoTray should default to false")
	}
	if cfg.ZoomCooldown != 0 {
		t.Errorf("ZoomCooldown = %v, want 0 (reference repeat-fire behavior)", cfg.ZoomCooldown)
	}
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("MUDRA_CAMERA_ID", "2")
	t.Setenv("MUDRA_MOTION_THRESHOLD", "0.5")
	t.Setenv("MUDRA_JOURNAL_PATH", "/tmp/mudra.db")
	t.Setenv("MUDRA_PREVIEW", "false")
	t.Setenv("MUDRA_NO_TRAY", "true")
	t.Setenv("MUDRA_ZOOM_COOLDOWN", "250ms")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.CameraID != 2 {
		t.Errorf("CameraID = %d, want 2", cfg.CameraID)
	}
	if cfg.MotionThreshold != 0.5 {
		t.Errorf("MotionThreshold = %f, want 0.5", cfg.MotionThreshold)
	}
	if cfg.JournalPath != "/tmp/mudra.db" {
		t.Errorf("JournalPath = %q", cfg.JournalPath)
	}
	if cfg.Preview {
		t.Error("Preview should be disabled")
	}
	if !cfg.NoTray {
		t.Error("NoTray should be enabled")
	}
	if cfg.ZoomCooldown != 250*time.Millisecond {
		t.Errorf("ZoomCooldown = %v, want 250ms", cfg.ZoomCooldown)
	}
}

func TestLoad_InvalidValue(t *testing.T) {
	t.Setenv("MUDRA_CAMERA_ID", "not-a-number")

	if _, err := Load(); err == nil {
		t.Error("Load() should fail on an unparsable value")
	}
}
