package input

import (
	"time"

	"github.com/go-vgo/robotgo"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// glideStep is how often the pointer position is updated during an
// eased MoveCursor glide.
const glideStep = 10 * time.Millisecond

// Robot injects input through robotgo. It is the production Injector.
type Robot struct{}

// NewRobot creates a robotgo-backed injector.
func NewRobot() *Robot {
	return &Robot{}
}

// ScreenSize returns the primary display size in pixels.
func ScreenSize() (width, height int) {
	return robotgo.GetScreenSize()
}

// MoveCursor moves the pointer to (x, y). With a positive duration the
// move is animated with an ease-out tween so the cursor glides instead
// of jumping; gesture jitter reads as drift rather than teleporting.
func (r *Robot) MoveCursor(x, y int, duration time.Duration) {
	if duration <= 0 {
		robotgo.Move(x, y)
		return
	}

	fromX, fromY := robotgo.Location()
	seconds := float32(duration.Seconds())
	tweenX := gween.New(float32(fromX), float32(x), seconds, ease.OutQuad)
	tweenY := gween.New(float32(fromY), float32(y), seconds, ease.OutQuad)

	ticker := time.NewTicker(glideStep)
	defer ticker.Stop()

	dt := float32(glideStep.Seconds())
	for {
		<-ticker.C
		px, doneX := tweenX.Update(dt)
		py, doneY := tweenY.Update(dt)
		robotgo.Move(int(px), int(py))
		if doneX && doneY {
			return
		}
	}
}

// Click presses and releases the given button.
func (r *Robot) Click(button Button) {
	robotgo.Click(string(button))
}

// MouseDown moves to (x, y) and presses the left button.
func (r *Robot) MouseDown(x, y int) {
	robotgo.Move(x, y)
	robotgo.Toggle("left", "down")
}

// MouseUp releases the left button.
func (r *Robot) MouseUp() {
	robotgo.Toggle("left", "up")
}

// Scroll scrolls by amount along the given axis. Amounts use the
// wheel convention: positive is up on the vertical axis and right on
// the horizontal axis.
func (r *Robot) Scroll(amount int, axis Axis) {
	if axis == AxisHorizontal {
		robotgo.Scroll(amount, 0)
		return
	}
	robotgo.Scroll(0, amount)
}

// KeyChord taps key while holding modifier.
func (r *Robot) KeyChord(modifier, key string) {
	robotgo.KeyTap(key, modifier)
}
