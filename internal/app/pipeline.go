package app

import (
	"log"
	"time"

	"gocv.io/x/gocv"

	"github.com/ayusman/mudra/internal/capture"
	"github.com/ayusman/mudra/internal/gesture"
)

// IdleTimeout is how long without motion before the loop drops back to
// the idle frame rate and stops running the landmark detector.
const IdleTimeout = 2 * time.Second

// runLoop is the single logical thread of the system. One frame is
// fully processed before the next begins: key poll, pause check,
// capture, mirror, motion gate, detect, resolve, dispatch, journal,
// overlay. A slow detector therefore directly throttles the dispatch
// rate. Teardown is deferred so every exit path releases the camera,
// the detector and any held drag.
func (a *App) runLoop() {
	defer close(a.doneCh)
	defer a.teardown()

	activeMode := false
	lastMotion := time.Now()
	status := "Gesture Control Ready"

	frameInterval := time.Second / time.Duration(capture.IdleFPS)
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-a.stopCh:
			return
		case <-ticker.C:
		}

		// At most one key per iteration
		if a.config.Preview != nil {
			switch a.config.Preview.PollKey() {
			case KeyQuit:
				return
			case KeyPause:
				a.session.TogglePause()
			}
		}

		if a.session.Paused() {
			if a.config.Preview != nil {
				a.config.Preview.ShowPaused()
			}
			a.setStatus("Paused")
			continue
		}

		frame, err := a.camera.ReadFrame()
		if err != nil {
			// Non-fatal: log and retry on the next tick
			log.Printf("Error reading frame: %v", err)
			continue
		}

		// Mirror for a selfie view so on-screen motion matches the
		// operator's own left/right.
		gocv.Flip(*frame, frame, 1)

		motionDetected, _ := a.motion.Detect(frame)
		if motionDetected {
			lastMotion = time.Now()
			if !activeMode {
				activeMode = true
				a.camera.SetFPS(capture.ActiveFPS)
				frameInterval = time.Second / time.Duration(capture.ActiveFPS)
				ticker.Reset(frameInterval)
				log.Println("Switched to active mode")
			}
		} else if activeMode && time.Since(lastMotion) > IdleTimeout {
			activeMode = false
			a.camera.SetFPS(capture.IdleFPS)
			frameInterval = time.Second / time.Duration(capture.IdleFPS)
			ticker.Reset(frameInterval)
			log.Println("Switched to idle mode")
		}

		if !activeMode || a.det == nil {
			if a.config.Preview != nil {
				a.config.Preview.Show(frame, nil, status, "Idle")
			}
			frame.Close()
			continue
		}

		hands, err := a.det.Detect(frame)
		if err != nil {
			log.Printf("Error detecting hands: %v", err)
			frame.Close()
			continue
		}

		// Zero hands is the normal no-gesture state, not an error. A
		// held drag stays held until a two-hand mismatch frame or
		// shutdown releases it.
		mode := "No hands detected"
		decision := gesture.None

		switch len(hands) {
		case 1:
			mode = "One hand"
			decision = a.single.Resolve(a.session, &hands[0])
		case 2:
			mode = "Two hands"
			decision = a.twoHand.Resolve(a.session, &hands[0], &hands[1])
		}

		if decision.Kind != gesture.KindNone {
			status = decision.Status()
			a.setStatus(status)
			a.record(decision)
		}

		if a.config.Preview != nil {
			a.config.Preview.Show(frame, hands, status, mode)
		}
		frame.Close()
	}
}
