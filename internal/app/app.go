// Package app wires capture, detection, gesture resolution and input
// injection into the single-threaded frame loop that drives them.
package app

import (
	"log"
	"sync"
	"time"

	"github.com/ayusman/mudra/internal/capture"
	"github.com/ayusman/mudra/internal/detector"
	"github.com/ayusman/mudra/internal/gesture"
	"github.com/ayusman/mudra/internal/input"
	"github.com/ayusman/mudra/internal/store"
)

// Config holds the collaborators and options for the frame loop.
type Config struct {
	Camera   capture.Camera
	Detector detector.Detector
	Injector input.Injector

	// Journal is the optional action journal; nil disables recording.
	Journal *store.Store

	// Preview is the optional preview surface; nil runs headless.
	Preview Preview

	// ScreenWidth and ScreenHeight are the display dimensions gestures
	// map onto.
	ScreenWidth  int
	ScreenHeight int

	// MotionThreshold is the percent pixel change that counts as
	// motion for the idle gate.
	MotionThreshold float64

	// ZoomCooldown rate-limits the zoom chord; zero fires every frame.
	ZoomCooldown time.Duration

	// OnStatus, if set, receives the operator-facing status line when
	// it changes (wired to the tray menu).
	OnStatus func(status string)
}

// App owns the session state and runs the frame loop.
type App struct {
	config  Config
	camera  capture.Camera
	motion  *capture.MotionDetector
	det     detector.Detector
	inj     input.Injector
	session *gesture.Session
	single  *gesture.SingleHand
	twoHand *gesture.TwoHand
	journal *store.Journal

	sessionID string

	mu       sync.Mutex
	stopCh   chan struct{}
	stopOnce *sync.Once
	doneCh   chan struct{}
}

// New creates an App from the given configuration.
func New(config Config) *App {
	session := gesture.NewSession()

	a := &App{
		config:  config,
		camera:  config.Camera,
		motion:  capture.NewMotionDetector(config.MotionThreshold),
		det:     config.Detector,
		inj:     config.Injector,
		session: session,
		single:  gesture.NewSingleHand(config.Injector, config.ScreenWidth, config.ScreenHeight),
		twoHand: gesture.NewTwoHand(config.Injector, config.ScreenWidth, config.ScreenHeight, config.ZoomCooldown),
	}

	if config.Journal != nil {
		a.journal = config.Journal.Journal()
	}

	return a
}

// Control returns the restricted session handle for the tray: pause
// toggle and stop signal only.
func (a *App) Control() *gesture.Control {
	return gesture.NewControl(a.session, a.RequestStop)
}

// Session returns the session state. Intended for tests.
func (a *App) Session() *gesture.Session {
	return a.session
}

// SetStatusSink sets the callback receiving status updates. Must be
// called before Start.
func (a *App) SetStatusSink(fn func(status string)) {
	a.config.OnStatus = fn
}

// Start opens the camera and launches the frame loop. It is a no-op if
// the loop is already running.
func (a *App) Start() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.stopCh != nil {
		return nil
	}

	if err := a.camera.Open(); err != nil {
		return err
	}
	a.camera.SetFPS(capture.IdleFPS)

	if a.journal != nil {
		id, err := a.journal.BeginSession(a.config.ScreenWidth, a.config.ScreenHeight)
		if err != nil {
			log.Printf("Journal disabled: %v", err)
			a.journal = nil
		} else {
			a.sessionID = id
		}
	}

	a.stopCh = make(chan struct{})
	a.stopOnce = &sync.Once{}
	a.doneCh = make(chan struct{})
	go a.runLoop()

	log.Println("Gesture control loop started")
	return nil
}

// RequestStop signals the frame loop to shut down. Safe to call from
// any goroutine and more than once. Teardown runs on the loop's own
// goroutine so it covers every exit path.
func (a *App) RequestStop() {
	a.mu.Lock()
	stopOnce := a.stopOnce
	stopCh := a.stopCh
	a.mu.Unlock()

	if stopOnce == nil {
		return
	}
	stopOnce.Do(func() { close(stopCh) })
}

// Wait blocks until the frame loop has exited and teardown completed.
func (a *App) Wait() {
	a.mu.Lock()
	doneCh := a.doneCh
	a.mu.Unlock()

	if doneCh != nil {
		<-doneCh
	}
}

// Stop signals the loop and waits for teardown.
func (a *App) Stop() {
	a.RequestStop()
	a.Wait()
}

// teardown releases every held resource. It runs exactly once, from
// the loop goroutine, on every exit path. Order matters: the forced
// drag release comes first so the pointer button is never left down.
func (a *App) teardown() {
	if a.session.ReleaseDrag(a.inj) {
		log.Println("Forced release of held drag on shutdown")
	}

	if err := a.camera.Close(); err != nil {
		log.Printf("Error closing camera: %v", err)
	}

	a.motion.Close()

	if a.det != nil {
		if err := a.det.Close(); err != nil {
			log.Printf("Error closing detector: %v", err)
		}
	}

	if a.config.Preview != nil {
		if err := a.config.Preview.Close(); err != nil {
			log.Printf("Error closing preview: %v", err)
		}
	}

	if a.journal != nil {
		if err := a.journal.EndSession(a.sessionID); err != nil {
			log.Printf("Error closing journal session: %v", err)
		}
	}

	a.mu.Lock()
	a.stopCh = nil
	a.stopOnce = nil
	a.mu.Unlock()

	log.Println("Gesture control loop stopped")
}

// setStatus forwards a status change to the configured sink.
func (a *App) setStatus(status string) {
	if a.config.OnStatus != nil {
		a.config.OnStatus(status)
	}
}

// record appends a dispatched decision to the journal when enabled.
func (a *App) record(d gesture.Decision) {
	if a.journal == nil || d.Kind == gesture.KindNone {
		return
	}
	if err := a.journal.Record(a.sessionID, string(d.Kind), d.Point.X, d.Point.Y, d.Amount); err != nil {
		log.Printf("Journal write failed: %v", err)
	}
}
