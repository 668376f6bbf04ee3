package input

import (
	"testing"
	"time"
)

func TestRecorder(t *testing.T) {
	rec := NewRecorder()

	rec.MoveCursor(100, 200, 100*time.Millisecond)
	rec.Click(ButtonLeft)
	rec.Click(ButtonRight)
	rec.MouseDown(10, 20)
	rec.MouseUp()
	rec.Scroll(-50, AxisVertical)
	rec.Scroll(50, AxisHorizontal)
	rec.KeyChord("ctrl", "+")

	want := []string{
		"move 100 200 100ms",
		"click left",
		"click right",
		"down 10 20",
		"up",
		"scroll v -50",
		"scroll h 50",
		"key ctrl +",
	}

	if len(rec.Commands) != len(want) {
		t.Fatalf("recorded %d commands, want %d", len(rec.Commands), len(want))
	}
	for i, w := range want {
		if rec.Commands[i] != w {
			t.Errorf("command %d = %q, want %q", i, rec.Commands[i], w)
		}
	}

	if got := rec.Count("click"); got != 2 {
		t.Errorf("Count(click) = %d, want 2", got)
	}
	if got := rec.Count("scroll v"); got != 1 {
		t.Errorf("Count(scroll v) = %d, want 1", got)
	}
	if got := rec.Last(); got != "key ctrl +" {
		t.Errorf("Last() = %q", got)
	}

	rec.Reset()
	if len(rec.Commands) != 0 || rec.Last() != "" {
		t.Error("Reset() should clear recorded commands")
	}
}
