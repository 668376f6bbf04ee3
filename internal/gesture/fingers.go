// Package gesture classifies detected hand landmarks into control
// gestures and dispatches the matching OS input action.
package gesture

import (
	"math"

	"github.com/ayusman/mudra/internal/detector"
)

// FingerState is the per-frame pose of one hand: which fingers are
// extended plus the thumb-to-middle pinch distance. It is a pure
// projection of a single frame's landmarks and carries no identity
// across frames.
type FingerState struct {
	Thumb  bool
	Index  bool
	Middle bool
	Ring   bool
	Little bool

	// Pinch is the Euclidean distance between the thumb tip and the
	// middle finger tip in normalized (x, y) image space.
	Pinch float64
}

// ClassifyFingers derives the FingerState for one hand. A finger counts
// as extended iff its tip is strictly above its PIP joint in image space
// (the thumb compares against its IP joint). This is a single-frame
// geometric threshold: when the hand is rotated so that image-space "up"
// no longer matches anatomical extension, classification degrades
// silently. Known limitation, not corrected.
func ClassifyFingers(hand *detector.Hand) FingerState {
	p := &hand.Points

	return FingerState{
		Thumb:  p[detector.ThumbTip].Y < p[detector.ThumbIP].Y,
		Index:  p[detector.IndexTip].Y < p[detector.IndexPIP].Y,
		Middle: p[detector.MiddleTip].Y < p[detector.MiddlePIP].Y,
		Ring:   p[detector.RingTip].Y < p[detector.RingPIP].Y,
		Little: p[detector.PinkyTip].Y < p[detector.PinkyPIP].Y,
		Pinch:  pinchDistance(p[detector.ThumbTip], p[detector.MiddleTip]),
	}
}

// pinchDistance measures thumb-tip to middle-tip distance in 2D
// normalized space. Z is ignored.
func pinchDistance(thumb, middle detector.Point3D) float64 {
	dx := thumb.X - middle.X
	dy := thumb.Y - middle.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// AllExtended reports whether all five fingers are extended (open hand).
func (f FingerState) AllExtended() bool {
	return f.Thumb && f.Index && f.Middle && f.Ring && f.Little
}

// IndexOnly reports whether the index finger is extended while middle,
// ring and little are flexed. The thumb is not considered.
func (f FingerState) IndexOnly() bool {
	return f.Index && !f.Middle && !f.Ring && !f.Little
}

// IndexMiddle reports whether index and middle are extended while ring
// and little are flexed (peace sign). The thumb is not considered.
func (f FingerState) IndexMiddle() bool {
	return f.Index && f.Middle && !f.Ring && !f.Little
}

// IndexLittle reports whether index and little are extended while
// middle and ring are flexed. The thumb is not considered.
func (f FingerState) IndexLittle() bool {
	return f.Index && f.Little && !f.Middle && !f.Ring
}
