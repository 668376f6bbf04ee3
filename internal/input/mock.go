package input

import (
	"fmt"
	"time"
)

// Recorder is a test Injector that records every command it receives.
type Recorder struct {
	Commands []string
}

// NewRecorder creates an empty command recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Reset clears the recorded commands.
func (r *Recorder) Reset() {
	r.Commands = r.Commands[:0]
}

// Count returns how many commands with the given prefix were recorded.
func (r *Recorder) Count(prefix string) int {
	n := 0
	for _, c := range r.Commands {
		if len(c) >= len(prefix) && c[:len(prefix)] == prefix {
			n++
		}
	}
	return n
}

// Last returns the most recent command, or "" if none were recorded.
func (r *Recorder) Last() string {
	if len(r.Commands) == 0 {
		return ""
	}
	return r.Commands[len(r.Commands)-1]
}

func (r *Recorder) MoveCursor(x, y int, duration time.Duration) {
	r.Commands = append(r.Commands, fmt.Sprintf("move %d %d %s", x, y, duration))
}

func (r *Recorder) Click(button Button) {
	r.Commands = append(r.Commands, fmt.Sprintf("click %s", button))
}

func (r *Recorder) MouseDown(x, y int) {
	r.Commands = append(r.Commands, fmt.Sprintf("down %d %d", x, y))
}

func (r *Recorder) MouseUp() {
	r.Commands = append(r.Commands, "up")
}

func (r *Recorder) Scroll(amount int, axis Axis) {
	dir := "v"
	if axis == AxisHorizontal {
		dir = "h"
	}
	r.Commands = append(r.Commands, fmt.Sprintf("scroll %s %d", dir, amount))
}

func (r *Recorder) KeyChord(modifier, key string) {
	r.Commands = append(r.Commands, fmt.Sprintf("key %s %s", modifier, key))
}
