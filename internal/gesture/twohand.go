package gesture

import (
	"time"

	"github.com/ayusman/mudra/internal/detector"
	"github.com/ayusman/mudra/internal/input"
)

// TwoHand resolves two-hand poses: selection drag and zoom.
//
// Hands arrive in detector order. The qualifying poses are tested with
// hand1 as the open ("holding") hand and hand2 as the pointing hand;
// the ordering carries no dominant-hand meaning, only the pose each
// hand currently exhibits matters.
//
// Precedence is fixed and must not be reordered:
// selection drag > release-on-mismatch > zoom > none.
// The release branch fires whenever the drag pose stops matching while
// a drag is held, whatever pose replaced it.
type TwoHand struct {
	inj     input.Injector
	screenW int
	screenH int

	// zoomCooldown rate-limits the zoom key chord. Zero preserves the
	// reference behavior of firing on every qualifying frame.
	zoomCooldown time.Duration
	lastZoom     time.Time

	now func() time.Time
}

// NewTwoHand creates a two-hand resolver dispatching to inj. A positive
// zoomCooldown debounces the zoom chord; zero fires it every frame.
func NewTwoHand(inj input.Injector, screenW, screenH int, zoomCooldown time.Duration) *TwoHand {
	return &TwoHand{
		inj:          inj,
		screenW:      screenW,
		screenH:      screenH,
		zoomCooldown: zoomCooldown,
		now:          time.Now,
	}
}

// Resolve classifies both hands and issues at most one action.
func (r *TwoHand) Resolve(s *Session, hand1, hand2 *detector.Hand) Decision {
	fs1 := ClassifyFingers(hand1)
	fs2 := ClassifyFingers(hand2)

	switch {
	case fs1.AllExtended() && fs2.IndexOnly():
		return r.drag(s, hand1, hand2)

	case s.DragActive():
		// The drag pose broke; release exactly once.
		s.ReleaseDrag(r.inj)
		return Decision{Kind: KindDragEnd}

	case fs1.AllExtended() && fs2.IndexMiddle():
		return r.zoom(hand2)
	}

	return None
}

// drag starts or continues a selection drag. The open hand's index tip
// fixes the anchor; the pointing hand's index tip drives the live end,
// so one hand holds the start while the other extends the selection.
func (r *TwoHand) drag(s *Session, hand1, hand2 *detector.Hand) Decision {
	started := false
	if !s.DragActive() {
		anchor := mapToScreen(hand1.Points[detector.IndexTip], r.screenW, r.screenH)
		r.inj.MouseDown(anchor.X, anchor.Y)
		s.startDrag(anchor)
		started = true
	}

	end := mapToScreen(hand2.Points[detector.IndexTip], r.screenW, r.screenH)
	r.inj.MoveCursor(end.X, end.Y, 0)

	if started {
		return Decision{Kind: KindDragStart, Point: s.DragAnchor()}
	}
	return Decision{Kind: KindDragMove, Point: end}
}

// zoom issues a zoom key chord keyed off the pointing hand's height:
// fingers in the upper half of the frame zoom in, lower half out.
func (r *TwoHand) zoom(hand2 *detector.Hand) Decision {
	if r.zoomCooldown > 0 {
		now := r.now()
		if !r.lastZoom.IsZero() && now.Sub(r.lastZoom) < r.zoomCooldown {
			return None
		}
		r.lastZoom = now
	}

	meanY := (hand2.Points[detector.IndexTip].Y + hand2.Points[detector.MiddleTip].Y) / 2
	if meanY < 0.5 {
		r.inj.KeyChord("ctrl", "+")
		return Decision{Kind: KindZoomIn}
	}
	r.inj.KeyChord("ctrl", "-")
	return Decision{Kind: KindZoomOut}
}
