package app

import (
	"path/filepath"
	"testing"
	"time"

	"gocv.io/x/gocv"

	"github.com/ayusman/mudra/internal/capture"
	"github.com/ayusman/mudra/internal/detector"
	"github.com/ayusman/mudra/internal/gesture"
	"github.com/ayusman/mudra/internal/input"
	"github.com/ayusman/mudra/internal/store"
)

// testFrames builds an alternating black/white frame pair so every
// frame reports motion and the loop stays in active mode.
func testFrames(t *testing.T) []*gocv.Mat {
	t.Helper()

	black := gocv.NewMatWithSize(480, 640, gocv.MatTypeCV8UC3)
	white := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(255, 255, 255, 0), 480, 640, gocv.MatTypeCV8UC3)
	t.Cleanup(func() {
		black.Close()
		white.Close()
	})
	return []*gocv.Mat{&black, &white}
}

func TestApp_DragLifecycleThroughLoop(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	open := detector.OpenHand()
	pointing := detector.PointingHand(0.3, 0.4)
	fist := detector.Fist()

	det := detector.NewMockDetector()
	det.SetFrames([][]detector.Hand{
		{open, pointing},
		{open, pointing},
		{open, fist}, // pose breaks; repeats from here on
	})

	rec := input.NewRecorder()
	a := New(Config{
		Camera:       capture.NewMockCamera(testFrames(t), true),
		Detector:     det,
		Injector:     rec,
		ScreenWidth:  1920,
		ScreenHeight: 1080,
	})

	if err := a.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	// Idle ticks are 200ms and the first frames establish the motion
	// baseline and mode switch; give the loop room to reach the
	// mismatch frame.
	time.Sleep(2 * time.Second)
	a.Stop()

	if got := rec.Count("down"); got != 1 {
		t.Errorf("mouse-down count = %d, want 1", got)
	}
	if got := rec.Count("up"); got != 1 {
		t.Errorf("mouse-up count = %d, want 1", got)
	}
	if a.Session().DragActive() {
		t.Error("drag should not be active after the loop processed the pose break")
	}
}

func TestApp_ShutdownForcesDragRelease(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	open := detector.OpenHand()
	pointing := detector.PointingHand(0.3, 0.4)

	det := detector.NewMockDetector()
	det.SetHands([]detector.Hand{open, pointing})

	rec := input.NewRecorder()
	a := New(Config{
		Camera:       capture.NewMockCamera(testFrames(t), true),
		Detector:     det,
		Injector:     rec,
		ScreenWidth:  1920,
		ScreenHeight: 1080,
	})

	if err := a.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	time.Sleep(1500 * time.Millisecond)

	// Stop mid-drag: teardown must release the held button exactly once
	a.Stop()

	if got := rec.Count("down"); got != 1 {
		t.Errorf("mouse-down count = %d, want 1", got)
	}
	if a.Session().DragActive() {
		t.Error("drag still active after shutdown")
	}
	if got := rec.Count("up"); got != 1 {
		t.Errorf("mouse-up count = %d, want exactly 1 from teardown", got)
	}
}

func TestApp_JournalRecordsDispatchedActions(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	st, err := store.New(filepath.Join(t.TempDir(), "journal.db"))
	if err != nil {
		t.Fatalf("store.New() error = %v", err)
	}
	defer st.Close()

	det := detector.NewMockDetector()
	pointing := detector.PointingHand(0.5, 0.5)
	det.SetHands([]detector.Hand{pointing})

	a := New(Config{
		Camera:       capture.NewMockCamera(testFrames(t), true),
		Detector:     det,
		Injector:     input.NewRecorder(),
		Journal:      st,
		ScreenWidth:  1920,
		ScreenHeight: 1080,
	})

	if err := a.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	time.Sleep(1500 * time.Millisecond)
	a.Stop()

	events, err := st.Journal().Events(a.sessionID)
	if err != nil {
		t.Fatalf("Events() error = %v", err)
	}
	if len(events) == 0 {
		t.Fatal("no events recorded for cursor moves")
	}
	for _, e := range events {
		if e.Kind != string(gesture.KindMoveCursor) {
			t.Errorf("event kind = %s, want %s", e.Kind, gesture.KindMoveCursor)
		}
		if e.X != 960 || e.Y != 570 {
			t.Errorf("event target = (%d, %d), want (960, 570)", e.X, e.Y)
		}
	}

	sess, err := st.Journal().GetSession(a.sessionID)
	if err != nil {
		t.Fatalf("GetSession() error = %v", err)
	}
	if !sess.EndedAt.Valid {
		t.Error("session end not stamped on shutdown")
	}
}

func TestApp_StartIsIdempotent(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	a := New(Config{
		Camera:       capture.NewMockCamera(testFrames(t), true),
		Detector:     detector.NewMockDetector(),
		Injector:     input.NewRecorder(),
		ScreenWidth:  1920,
		ScreenHeight: 1080,
	})

	if err := a.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if err := a.Start(); err != nil {
		t.Errorf("second Start() error = %v", err)
	}
	a.Stop()
}

func TestApp_ControlStopsLoop(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	a := New(Config{
		Camera:       capture.NewMockCamera(testFrames(t), true),
		Detector:     detector.NewMockDetector(),
		Injector:     input.NewRecorder(),
		ScreenWidth:  1920,
		ScreenHeight: 1080,
	})

	if err := a.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	ctrl := a.Control()
	if ctrl.TogglePause() != true {
		t.Error("control toggle should pause the session")
	}

	done := make(chan struct{})
	go func() {
		a.Wait()
		close(done)
	}()

	ctrl.Stop()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("loop did not stop after Control.Stop()")
	}
}
