package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/ayusman/mudra/internal/app"
	"github.com/ayusman/mudra/internal/capture"
	"github.com/ayusman/mudra/internal/config"
	"github.com/ayusman/mudra/internal/detector"
	"github.com/ayusman/mudra/internal/input"
	"github.com/ayusman/mudra/internal/store"
	"github.com/ayusman/mudra/internal/tray"
)

func main() {
	fmt.Println("Mudra - Hand Gesture Mouse & Keyboard Control")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	screenWidth, screenHeight := input.ScreenSize()
	log.Printf("Screen size: %dx%d", screenWidth, screenHeight)

	// Optional action journal
	var st *store.Store
	if cfg.JournalPath != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.JournalPath), 0755); err != nil {
			log.Fatalf("Failed to create journal directory: %v", err)
		}
		st, err = store.New(cfg.JournalPath)
		if err != nil {
			log.Fatalf("Failed to open action journal: %v", err)
		}
		defer st.Close()
		log.Printf("Recording actions to %s", cfg.JournalPath)
	}

	// Try MediaPipe first, fall back to the mock detector so the loop
	// still runs (without gestures) when the service is missing
	var det detector.Detector
	if mp, err := detector.NewMediaPipeDetector(detector.DefaultConfig()); err == nil {
		det = mp
		log.Println("Using MediaPipe hand detection")
	} else {
		log.Printf("MediaPipe not available (%v), using mock detector", err)
		det = detector.NewMockDetector()
	}

	var preview app.Preview
	if cfg.Preview {
		preview = app.NewWindowPreview()
	}

	application := app.New(app.Config{
		Camera:          capture.NewCamera(cfg.CameraID),
		Detector:        det,
		Injector:        input.NewRobot(),
		Journal:         st,
		Preview:         preview,
		ScreenWidth:     screenWidth,
		ScreenHeight:    screenHeight,
		MotionThreshold: cfg.MotionThreshold,
		ZoomCooldown:    cfg.ZoomCooldown,
	})

	// OS signals stop the loop like the quit key does; teardown runs
	// on the loop goroutine either way
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		application.RequestStop()
	}()

	if cfg.NoTray {
		if err := application.Start(); err != nil {
			log.Fatalf("Failed to start gesture control: %v", err)
		}
		application.Wait()
		return
	}

	t := tray.New()
	ctrl := application.Control()
	t.OnTogglePause(ctrl.TogglePause)
	t.OnQuit(ctrl.Stop)
	t.OnShow(func() {
		if preview != nil {
			preview.Focus()
		}
	})
	application.SetStatusSink(t.SetStatus)

	if err := application.Start(); err != nil {
		log.Fatalf("Failed to start gesture control: %v", err)
	}

	// Tear the tray down when the loop exits (quit key or signal)
	go func() {
		application.Wait()
		t.Quit()
	}()

	t.Run()
	application.Stop()
}
