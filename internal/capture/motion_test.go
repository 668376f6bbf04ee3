package capture

import (
	"testing"

	"gocv.io/x/gocv"
)

func TestNewMotionDetector(t *testing.T) {
	md := NewMotionDetector(2.5)
	defer md.Close()

	if md.threshold != 2.5 {
		t.Errorf("threshold = %f, want 2.5", md.threshold)
	}
	if md.initialized {
		t.Error("motion detector should not be initialized initially")
	}
}

func TestNewMotionDetector_DefaultThreshold(t *testing.T) {
	md := NewMotionDetector(0)
	defer md.Close()

	if md.threshold != DefaultMotionThreshold {
		t.Errorf("threshold = %f, want default %f", md.threshold, DefaultMotionThreshold)
	}
}

func TestMotionDetector_FirstFrameIsBaseline(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that requires GoCV Mat creation")
	}

	md := NewMotionDetector(1.0)
	defer md.Close()

	frame := gocv.NewMatWithSize(480, 640, gocv.MatTypeCV8UC3)
	defer frame.Close()

	if detected, _ := md.Detect(&frame); detected {
		t.Error("first frame should establish the baseline, not report motion")
	}
}

func TestMotionDetector_NoMotionOnIdenticalFrames(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that requires GoCV Mat creation")
	}

	md := NewMotionDetector(1.0)
	defer md.Close()

	frame1 := gocv.NewMatWithSize(480, 640, gocv.MatTypeCV8UC3)
	defer frame1.Close()
	frame2 := gocv.NewMatWithSize(480, 640, gocv.MatTypeCV8UC3)
	defer frame2.Close()

	md.Detect(&frame1)
	if detected, percent := md.Detect(&frame2); detected {
		t.Errorf("identical frames reported motion (%.2f%% change)", percent)
	}
}

func TestMotionDetector_DetectsSceneChange(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that requires GoCV Mat creation")
	}

	md := NewMotionDetector(1.0)
	defer md.Close()

	black := gocv.NewMatWithSize(480, 640, gocv.MatTypeCV8UC3)
	defer black.Close()
	white := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(255, 255, 255, 0), 480, 640, gocv.MatTypeCV8UC3)
	defer white.Close()

	md.Detect(&black)
	if detected, percent := md.Detect(&white); !detected {
		t.Errorf("black-to-white change not detected (%.2f%% change)", percent)
	}
}

func TestMotionDetector_Reset(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that requires GoCV Mat creation")
	}

	md := NewMotionDetector(1.0)
	defer md.Close()

	frame := gocv.NewMatWithSize(480, 640, gocv.MatTypeCV8UC3)
	defer frame.Close()

	md.Detect(&frame)
	md.Reset()

	if detected, _ := md.Detect(&frame); detected {
		t.Error("frame after Reset should re-establish the baseline")
	}
}

func TestMotionDetector_NilFrame(t *testing.T) {
	md := NewMotionDetector(1.0)
	defer md.Close()

	if detected, percent := md.Detect(nil); detected || percent != 0 {
		t.Errorf("nil frame reported motion (%v, %.2f)", detected, percent)
	}
}
