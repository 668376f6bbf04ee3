package detector

import (
	"gocv.io/x/gocv"
)

// MockDetector is a test implementation of the Detector interface.
// It allows tests to control the detection results, optionally playing
// back a different hand set per frame.
type MockDetector struct {
	frames [][]Hand
	index  int
	err    error
}

// NewMockDetector creates a new MockDetector instance.
func NewMockDetector() *MockDetector {
	return &MockDetector{}
}

// SetHands sets a single hand set returned by every Detect call.
func (m *MockDetector) SetHands(hands []Hand) {
	m.frames = [][]Hand{hands}
	m.index = 0
}

// SetFrames sets a sequence of hand sets, one per Detect call.
// The last entry repeats once the sequence is exhausted.
func (m *MockDetector) SetFrames(frames [][]Hand) {
	m.frames = frames
	m.index = 0
}

// SetError sets the error that will be returned by Detect.
func (m *MockDetector) SetError(err error) {
	m.err = err
}

// Detect returns the pre-configured hands or error.
func (m *MockDetector) Detect(frame *gocv.Mat) ([]Hand, error) {
	if m.err != nil {
		return nil, m.err
	}
	if len(m.frames) == 0 {
		return nil, nil
	}
	hands := m.frames[m.index]
	if m.index < len(m.frames)-1 {
		m.index++
	}
	return hands, nil
}

// Close is a no-op for the mock detector.
func (m *MockDetector) Close() error {
	return nil
}

// Fixture geometry. Fingers sit in columns to the left of the thumb,
// with PIP (IP for the thumb) joints on a common row. An extended finger
// places its tip above the joint row, a flexed finger below it.
const (
	fixtureJointY    = 0.60
	fixtureExtendedY = 0.40
	fixtureFlexedY   = 0.70
)

var fixtureFingerX = [5]float64{0.64, 0.55, 0.50, 0.45, 0.40} // thumb..pinky

// handWithFingers builds a Hand with the given fingers extended.
// Order: thumb, index, middle, ring, little.
func handWithFingers(extended [5]bool) Hand {
	h := Hand{
		Handedness: "Right",
		Score:      0.95,
	}

	h.Points[Wrist] = Point3D{X: 0.5, Y: 0.85}

	tips := [5]int{ThumbTip, IndexTip, MiddleTip, RingTip, PinkyTip}
	joints := [5]int{ThumbIP, IndexPIP, MiddlePIP, RingPIP, PinkyPIP}
	bases := [5]int{ThumbMCP, IndexMCP, MiddleMCP, RingMCP, PinkyMCP}

	for f := 0; f < 5; f++ {
		x := fixtureFingerX[f]
		h.Points[bases[f]] = Point3D{X: x, Y: 0.75}
		h.Points[joints[f]] = Point3D{X: x, Y: fixtureJointY}

		tipY := fixtureFlexedY
		if extended[f] {
			tipY = fixtureExtendedY
		}
		h.Points[tips[f]] = Point3D{X: x, Y: tipY}
	}

	// Remaining intermediate joints, between joint row and tip
	h.Points[ThumbCMC] = Point3D{X: 0.58, Y: 0.80}
	h.Points[IndexDIP] = midpoint(h.Points[IndexPIP], h.Points[IndexTip])
	h.Points[MiddleDIP] = midpoint(h.Points[MiddlePIP], h.Points[MiddleTip])
	h.Points[RingDIP] = midpoint(h.Points[RingPIP], h.Points[RingTip])
	h.Points[PinkyDIP] = midpoint(h.Points[PinkyPIP], h.Points[PinkyTip])

	return h
}

func midpoint(a, b Point3D) Point3D {
	return Point3D{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2, Z: (a.Z + b.Z) / 2}
}

// OpenHand returns a hand with all five fingers extended.
func OpenHand() Hand {
	return handWithFingers([5]bool{true, true, true, true, true})
}

// PointingHand returns a hand with only the index finger extended and
// its tip at the given normalized position. The PIP joint is placed
// below the tip so the finger classifies as extended.
func PointingHand(x, y float64) Hand {
	h := handWithFingers([5]bool{false, true, false, false, false})
	h.Points[IndexTip] = Point3D{X: x, Y: y}
	h.Points[IndexPIP] = Point3D{X: x, Y: y + 0.15}
	h.Points[IndexDIP] = Point3D{X: x, Y: y + 0.07}
	return h
}

// PeaceHand returns a hand with index and middle fingers extended, both
// tips at the given normalized position (ring and little flexed).
func PeaceHand(x, y float64) Hand {
	h := handWithFingers([5]bool{false, true, true, false, false})
	for _, tip := range []int{IndexTip, MiddleTip} {
		h.Points[tip] = Point3D{X: x, Y: y}
	}
	for _, pip := range []int{IndexPIP, MiddlePIP} {
		h.Points[pip] = Point3D{X: x, Y: y + 0.15}
	}
	return h
}

// HornsHand returns a hand with index and little fingers extended, both
// tips at the given normalized X (middle and ring flexed).
func HornsHand(x float64) Hand {
	h := handWithFingers([5]bool{false, true, false, false, true})
	for _, tip := range []int{IndexTip, PinkyTip} {
		h.Points[tip] = Point3D{X: x, Y: fixtureExtendedY}
	}
	for _, pip := range []int{IndexPIP, PinkyPIP} {
		h.Points[pip] = Point3D{X: x, Y: fixtureJointY}
	}
	return h
}

// PinchHand returns a hand with the thumb tip touching the middle tip
// and no fingers extended.
func PinchHand() Hand {
	h := handWithFingers([5]bool{false, false, false, false, false})
	h.Points[MiddleTip] = Point3D{X: 0.50, Y: fixtureFlexedY}
	h.Points[ThumbTip] = Point3D{X: 0.51, Y: fixtureFlexedY}
	return h
}

// Fist returns a hand with no fingers extended and no pinch.
func Fist() Hand {
	return handWithFingers([5]bool{false, false, false, false, false})
}
