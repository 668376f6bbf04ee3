package gesture

import (
	"time"

	"github.com/ayusman/mudra/internal/detector"
	"github.com/ayusman/mudra/internal/input"
)

// Fixed gesture constants. These are deliberately not configurable;
// the bindings themselves are part of the design.
const (
	// ScrollSpeed is the magnitude of one scroll step.
	ScrollSpeed = 50
	// ClickCooldown is the debounce window between accepted clicks.
	ClickCooldown = 500 * time.Millisecond
	// PinchThreshold is the thumb-to-middle distance below which a
	// pinch registers, in normalized units.
	PinchThreshold = 0.05
	// CursorYOffset shifts the commanded cursor below the fingertip
	// so the finger does not cover what it points at.
	CursorYOffset = 30
	// CursorEase is the duration of the eased cursor glide.
	CursorEase = 100 * time.Millisecond
)

// singleRule is one entry of the single-hand rule table: a predicate
// over the frame's finger state and the action to run when it matches.
type singleRule struct {
	name  string
	match func(fs FingerState) bool
	apply func(r *SingleHand, s *Session, hand *detector.Hand) Decision
}

// SingleHand resolves one-hand poses to input commands. Rules are
// ranked; the first match wins and later rules are not evaluated, even
// when the matched rule's debounce gate suppresses its action.
type SingleHand struct {
	inj     input.Injector
	screenW int
	screenH int
	rules   []singleRule

	// now is stubbed in tests to drive the debounce window.
	now func() time.Time
}

// NewSingleHand creates a single-hand resolver dispatching to inj and
// mapping normalized coordinates to a screenW x screenH display.
func NewSingleHand(inj input.Injector, screenW, screenH int) *SingleHand {
	r := &SingleHand{
		inj:     inj,
		screenW: screenW,
		screenH: screenH,
		now:     time.Now,
	}

	r.rules = []singleRule{
		{
			name:  "cursor",
			match: FingerState.IndexOnly,
			apply: (*SingleHand).moveCursor,
		},
		{
			name:  "scroll-vertical",
			match: FingerState.IndexMiddle,
			apply: (*SingleHand).scrollVertical,
		},
		{
			name:  "scroll-horizontal",
			match: FingerState.IndexLittle,
			apply: (*SingleHand).scrollHorizontal,
		},
		{
			name:  "left-click",
			match: FingerState.AllExtended,
			apply: (*SingleHand).leftClick,
		},
		{
			name:  "right-click",
			match: func(fs FingerState) bool { return fs.Pinch < PinchThreshold },
			apply: (*SingleHand).rightClick,
		},
	}

	return r
}

// Resolve classifies the hand and runs the first matching rule,
// issuing the OS action and returning the decision taken. Returns None
// when no rule matches or the matched click was debounced.
func (r *SingleHand) Resolve(s *Session, hand *detector.Hand) Decision {
	fs := ClassifyFingers(hand)

	for _, rule := range r.rules {
		if rule.match(fs) {
			return rule.apply(r, s, hand)
		}
	}
	return None
}

func (r *SingleHand) moveCursor(s *Session, hand *detector.Hand) Decision {
	target := mapToScreen(hand.Points[detector.IndexTip], r.screenW, r.screenH)
	target.Y += CursorYOffset
	r.inj.MoveCursor(target.X, target.Y, CursorEase)
	return Decision{Kind: KindMoveCursor, Point: target}
}

func (r *SingleHand) scrollVertical(s *Session, hand *detector.Hand) Decision {
	meanY := (hand.Points[detector.IndexTip].Y + hand.Points[detector.MiddleTip].Y) / 2
	if meanY >= 0.5 {
		// Fingers in the lower half of the frame scroll down.
		r.inj.Scroll(-ScrollSpeed, input.AxisVertical)
		return Decision{Kind: KindScrollDown, Amount: -ScrollSpeed}
	}
	r.inj.Scroll(ScrollSpeed, input.AxisVertical)
	return Decision{Kind: KindScrollUp, Amount: ScrollSpeed}
}

func (r *SingleHand) scrollHorizontal(s *Session, hand *detector.Hand) Decision {
	meanX := (hand.Points[detector.IndexTip].X + hand.Points[detector.PinkyTip].X) / 2
	if meanX >= 0.5 {
		r.inj.Scroll(ScrollSpeed, input.AxisHorizontal)
		return Decision{Kind: KindScrollRight, Amount: ScrollSpeed}
	}
	r.inj.Scroll(-ScrollSpeed, input.AxisHorizontal)
	return Decision{Kind: KindScrollLeft, Amount: -ScrollSpeed}
}

func (r *SingleHand) leftClick(s *Session, hand *detector.Hand) Decision {
	if !s.allowClick(r.now(), ClickCooldown) {
		return None
	}
	r.inj.Click(input.ButtonLeft)
	return Decision{Kind: KindLeftClick}
}

func (r *SingleHand) rightClick(s *Session, hand *detector.Hand) Decision {
	if !s.allowClick(r.now(), ClickCooldown) {
		return None
	}
	r.inj.Click(input.ButtonRight)
	return Decision{Kind: KindRightClick}
}
