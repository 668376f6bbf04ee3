package gesture

import (
	"image"
	"sync/atomic"
	"time"

	"github.com/ayusman/mudra/internal/input"
)

// Session is the cross-frame state for one run of the control loop:
// click debounce timestamp, drag bookkeeping and the pause flag.
//
// The debounce and drag fields are only touched by the frame loop's
// goroutine (resolver calls are sequential), so they are plain fields.
// The pause flag is also toggled from the tray goroutine and is atomic.
type Session struct {
	lastAction time.Time
	dragActive bool
	dragAnchor image.Point

	paused atomic.Bool
}

// NewSession creates the session state for a run.
func NewSession() *Session {
	return &Session{}
}

// DragActive reports whether a press-and-hold is currently held.
// While true, a mouse-down has been issued that is not yet matched by a
// mouse-up; the frame loop must guarantee the release on shutdown.
func (s *Session) DragActive() bool {
	return s.dragActive
}

// DragAnchor returns the screen point at which the current drag was
// started. Only meaningful while DragActive is true.
func (s *Session) DragAnchor() image.Point {
	return s.dragAnchor
}

// startDrag records a press-and-hold at the given anchor.
func (s *Session) startDrag(anchor image.Point) {
	s.dragActive = true
	s.dragAnchor = anchor
}

// endDrag clears the drag state.
func (s *Session) endDrag() {
	s.dragActive = false
	s.dragAnchor = image.Point{}
}

// allowClick applies the click debounce: it returns true and records
// now as the last action time iff the cooldown has elapsed since the
// previous accepted click. The window is shared by left and right click.
func (s *Session) allowClick(now time.Time, cooldown time.Duration) bool {
	if !s.lastAction.IsZero() && now.Sub(s.lastAction) < cooldown {
		return false
	}
	s.lastAction = now
	return true
}

// ReleaseDrag issues a mouse-up through inj if a drag is held and
// clears the drag state. It reports whether a release was issued. The
// frame loop calls this on every shutdown path so the pointer button is
// never left stuck down.
func (s *Session) ReleaseDrag(inj input.Injector) bool {
	if !s.dragActive {
		return false
	}
	inj.MouseUp()
	s.endDrag()
	return true
}

// Paused reports whether gesture processing is paused.
func (s *Session) Paused() bool {
	return s.paused.Load()
}

// TogglePause flips the pause flag and returns the new value.
func (s *Session) TogglePause() bool {
	for {
		old := s.paused.Load()
		if s.paused.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// Control is the restricted session handle given to the tray. It
// exposes only the pause toggle and the stop signal, never the drag or
// debounce state.
type Control struct {
	session *Session
	stop    func()
}

// NewControl creates a control handle over the session. The stop
// function is invoked at most once, when Stop is called.
func NewControl(session *Session, stop func()) *Control {
	return &Control{session: session, stop: stop}
}

// TogglePause flips the pause flag and returns the new value.
func (c *Control) TogglePause() bool {
	return c.session.TogglePause()
}

// Paused reports whether gesture processing is paused.
func (c *Control) Paused() bool {
	return c.session.Paused()
}

// Stop signals the frame loop to shut down.
func (c *Control) Stop() {
	if c.stop != nil {
		stop := c.stop
		c.stop = nil
		stop()
	}
}
