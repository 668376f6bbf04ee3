package gesture

import (
	"testing"
	"time"
)

func TestSession_AllowClick(t *testing.T) {
	s := NewSession()
	base := time.Unix(1000, 0)

	if !s.allowClick(base, ClickCooldown) {
		t.Fatal("first click should always be allowed")
	}
	if s.allowClick(base.Add(499*time.Millisecond), ClickCooldown) {
		t.Error("click inside the cooldown window should be suppressed")
	}
	if !s.allowClick(base.Add(500*time.Millisecond), ClickCooldown) {
		t.Error("click at exactly the cooldown boundary should be allowed")
	}
}

func TestSession_SuppressedClickKeepsWindow(t *testing.T) {
	s := NewSession()
	base := time.Unix(1000, 0)

	s.allowClick(base, ClickCooldown)

	// A suppressed attempt must not restart the window
	s.allowClick(base.Add(400*time.Millisecond), ClickCooldown)
	if !s.allowClick(base.Add(600*time.Millisecond), ClickCooldown) {
		t.Error("window should be measured from the last accepted click")
	}
}

func TestSession_TogglePause(t *testing.T) {
	s := NewSession()

	if s.Paused() {
		t.Fatal("sessions start unpaused")
	}
	if !s.TogglePause() {
		t.Error("first toggle should pause")
	}
	if s.TogglePause() {
		t.Error("second toggle should resume")
	}
}

func TestControl_StopFiresOnce(t *testing.T) {
	s := NewSession()

	calls := 0
	c := NewControl(s, func() { calls++ })

	c.Stop()
	c.Stop()
	if calls != 1 {
		t.Errorf("stop callback ran %d times, want 1", calls)
	}
}

func TestControl_PauseReflectsSession(t *testing.T) {
	s := NewSession()
	c := NewControl(s, nil)

	if c.TogglePause() != true {
		t.Error("control toggle should report the new paused state")
	}
	if !s.Paused() {
		t.Error("control toggle must reach the session flag")
	}
	if !c.Paused() {
		t.Error("control should observe the session flag")
	}
}
