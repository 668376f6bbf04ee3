package gesture

import (
	"image"

	"github.com/ayusman/mudra/internal/detector"
)

// Kind identifies the gesture decision produced for one frame. At most
// one decision is produced per frame per hand-count branch.
type Kind string

const (
	KindNone        Kind = "none"
	KindMoveCursor  Kind = "move_cursor"
	KindScrollUp    Kind = "scroll_up"
	KindScrollDown  Kind = "scroll_down"
	KindScrollLeft  Kind = "scroll_left"
	KindScrollRight Kind = "scroll_right"
	KindLeftClick   Kind = "left_click"
	KindRightClick  Kind = "right_click"
	KindDragStart   Kind = "drag_start"
	KindDragMove    Kind = "drag_move"
	KindDragEnd     Kind = "drag_end"
	KindZoomIn      Kind = "zoom_in"
	KindZoomOut     Kind = "zoom_out"
)

// Decision is the outcome of resolving one frame's pose. Point and
// Amount are only meaningful for the kinds that carry them (cursor and
// drag targets in screen pixels, scroll amounts in scroll units).
type Decision struct {
	Kind   Kind
	Point  image.Point
	Amount int
}

// None is the no-gesture decision.
var None = Decision{Kind: KindNone}

// mapToScreen maps a normalized landmark position to screen pixels.
func mapToScreen(p detector.Point3D, screenW, screenH int) image.Point {
	return image.Point{
		X: int(p.X * float64(screenW)),
		Y: int(p.Y * float64(screenH)),
	}
}

// Status returns the operator-facing status line for the decision,
// shown in the preview overlay and the tray menu.
func (d Decision) Status() string {
	switch d.Kind {
	case KindMoveCursor:
		return "Mouse Control"
	case KindScrollUp:
		return "Scrolling Up"
	case KindScrollDown:
		return "Scrolling Down"
	case KindScrollLeft:
		return "Scrolling Left"
	case KindScrollRight:
		return "Scrolling Right"
	case KindLeftClick:
		return "Left Click"
	case KindRightClick:
		return "Right Click"
	case KindDragStart:
		return "Selection Started"
	case KindDragMove:
		return "Selection Active"
	case KindDragEnd:
		return "Selection Completed"
	case KindZoomIn:
		return "Zoom In"
	case KindZoomOut:
		return "Zoom Out"
	}
	return ""
}
