// Package input defines the OS input-injection boundary: the commands
// gesture resolution emits and the robotgo-backed implementation that
// performs them.
package input

import "time"

// Button identifies a mouse button.
type Button string

const (
	ButtonLeft  Button = "left"
	ButtonRight Button = "right"
)

// Axis identifies a scroll direction.
type Axis int

const (
	// AxisVertical scrolls the wheel; positive amounts scroll up,
	// negative down.
	AxisVertical Axis = iota
	// AxisHorizontal scrolls sideways; positive amounts scroll right,
	// negative left.
	AxisHorizontal
)

// Injector accepts synthetic mouse/keyboard commands. Implementations
// must tolerate being called once per frame from a single goroutine.
type Injector interface {
	// MoveCursor moves the pointer to (x, y) in screen pixels. A
	// positive duration glides the pointer there with an ease-out
	// curve; zero jumps immediately.
	MoveCursor(x, y int, duration time.Duration)

	// Click presses and releases the given button at the current
	// pointer position.
	Click(button Button)

	// MouseDown moves the pointer to (x, y) and presses the left
	// button without releasing it.
	MouseDown(x, y int)

	// MouseUp releases the left button at the current position.
	MouseUp()

	// Scroll scrolls by amount along the given axis.
	Scroll(amount int, axis Axis)

	// KeyChord taps key while holding modifier (e.g. "ctrl", "+").
	KeyChord(modifier, key string)
}
