// Package tray provides the system tray control surface for gesture
// control: show window, pause/resume and exit. It is optional; when the
// tray cannot start, the control loop runs without it.
package tray

import (
	"sync"

	"github.com/getlantern/systray"
)

// Tray represents the system tray application.
type Tray struct {
	onShow   func()
	onToggle func() bool // returns the new paused state
	onQuit   func()
	mu       sync.RWMutex

	// Menu items stored for later updates
	menuPause  *systray.MenuItem
	menuStatus *systray.MenuItem
}

// New creates a new Tray instance.
func New() *Tray {
	return &Tray{}
}

// OnShow sets the callback for the show-window menu item.
func (t *Tray) OnShow(fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onShow = fn
}

// OnTogglePause sets the callback for the pause/resume menu item. The
// callback returns the new paused state.
func (t *Tray) OnTogglePause(fn func() bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onToggle = fn
}

// OnQuit sets the callback for the exit menu item.
func (t *Tray) OnQuit(fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onQuit = fn
}

// Run starts the system tray. Blocks until systray.Quit() is called.
func (t *Tray) Run() {
	systray.Run(t.onReady, t.onExit)
}

// Quit tears the tray down, unblocking Run.
func (t *Tray) Quit() {
	systray.Quit()
}

// onReady sets up the menu structure.
func (t *Tray) onReady() {
	systray.SetTitle("Mudra")
	systray.SetTooltip("Mudra Gesture Control")

	menuShow := systray.AddMenuItem("Show Window", "Focus the preview window")
	systray.AddSeparator()

	t.menuPause = systray.AddMenuItem("Pause", "Pause or resume gesture control")
	t.menuStatus = systray.AddMenuItem("Status: ready", "Last dispatched action")
	t.menuStatus.Disable()
	systray.AddSeparator()

	menuQuit := systray.AddMenuItem("Exit", "Quit Mudra")

	go func() {
		for {
			select {
			case <-menuShow.ClickedCh:
				t.handleShow()
			case <-t.menuPause.ClickedCh:
				t.handleToggle()
			case <-menuQuit.ClickedCh:
				t.handleQuit()
				return
			}
		}
	}()
}

// onExit is called when the system tray is about to exit.
func (t *Tray) onExit() {}

func (t *Tray) handleShow() {
	t.mu.RLock()
	callback := t.onShow
	t.mu.RUnlock()

	if callback != nil {
		callback()
	}
}

func (t *Tray) handleToggle() {
	t.mu.RLock()
	callback := t.onToggle
	t.mu.RUnlock()

	if callback == nil {
		return
	}

	// Callback runs outside the lock to prevent deadlocks
	paused := callback()
	if paused {
		t.menuPause.SetTitle("Resume")
	} else {
		t.menuPause.SetTitle("Pause")
	}
}

func (t *Tray) handleQuit() {
	t.mu.RLock()
	callback := t.onQuit
	t.mu.RUnlock()

	if callback != nil {
		callback()
	}

	systray.Quit()
}

// SetStatus updates the status line shown in the menu.
func (t *Tray) SetStatus(status string) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if t.menuStatus != nil {
		if status == "" {
			t.menuStatus.SetTitle("Status: ready")
		} else {
			t.menuStatus.SetTitle("Status: " + status)
		}
	}
}
