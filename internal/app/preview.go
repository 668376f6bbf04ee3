package app

import (
	"image"
	"image/color"

	"gocv.io/x/gocv"

	"github.com/ayusman/mudra/internal/detector"
)

// Key is a key press picked up by the preview window, at most one per
// loop iteration.
type Key int

const (
	KeyNone Key = iota
	KeyPause
	KeyQuit
)

// Preview is the optional on-screen surface: it renders the mirrored
// camera frame with the gesture overlay and polls for key input. A nil
// Preview runs the loop headless, with control via tray and signals
// only.
type Preview interface {
	// Show renders a frame with landmark and status overlays.
	Show(frame *gocv.Mat, hands []detector.Hand, status, mode string)

	// ShowPaused renders the paused card.
	ShowPaused()

	// PollKey returns at most one pressed key.
	PollKey() Key

	// Focus raises the window.
	Focus()

	// Close destroys the window.
	Close() error
}

// windowPreview renders through a GoCV window.
type windowPreview struct {
	window *gocv.Window
}

// NewWindowPreview opens the preview window.
func NewWindowPreview() Preview {
	return &windowPreview{
		window: gocv.NewWindow("Mudra Gesture Control"),
	}
}

var (
	overlayGreen = color.RGBA{G: 255}
	overlayWhite = color.RGBA{R: 255, G: 255, B: 255}
	overlayBlue  = color.RGBA{B: 255}
	overlayRed   = color.RGBA{R: 255}
)

// Show draws the guide lines, landmark dots and status text onto the
// frame, then displays it. The frame is modified in place; the loop is
// done with it afterwards.
func (p *windowPreview) Show(frame *gocv.Mat, hands []detector.Hand, status, mode string) {
	width := frame.Cols()
	height := frame.Rows()

	// Guide lines marking the scroll-direction midlines
	gocv.Line(frame, image.Pt(0, height/2-20), image.Pt(width, height/2-20), overlayGreen, 2)
	gocv.Line(frame, image.Pt(width/2, 0), image.Pt(width/2, height), overlayGreen, 2)

	for i := range hands {
		for _, pt := range hands[i].Points {
			px := image.Pt(int(pt.X*float64(width)), int(pt.Y*float64(height)))
			gocv.Circle(frame, px, 4, overlayBlue, -1)
		}
	}

	gocv.PutText(frame, status, image.Pt(10, height-20),
		gocv.FontHersheySimplex, 0.7, overlayWhite, 2)
	gocv.PutText(frame, mode, image.Pt(width-200, 30),
		gocv.FontHersheySimplex, 0.7, overlayRed, 2)
	gocv.PutText(frame, "Press 'P' to pause, 'Q' to quit", image.Pt(10, height-50),
		gocv.FontHersheySimplex, 0.6, overlayWhite, 1)

	p.window.IMShow(*frame)
}

// ShowPaused replaces the feed with a paused card.
func (p *windowPreview) ShowPaused() {
	card := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(255, 255, 255, 0), 400, 600, gocv.MatTypeCV8UC3)
	defer card.Close()

	gocv.PutText(&card, "PAUSED", image.Pt(200, 200),
		gocv.FontHersheySimplex, 2, overlayRed, 3)
	gocv.PutText(&card, "Press 'P' to resume", image.Pt(150, 250),
		gocv.FontHersheySimplex, 1, overlayRed, 2)

	p.window.IMShow(card)
}

// PollKey services the window event loop and returns a recognized key.
func (p *windowPreview) PollKey() Key {
	switch p.window.WaitKey(1) {
	case 'q', 'Q':
		return KeyQuit
	case 'p', 'P':
		return KeyPause
	}
	return KeyNone
}

// Focus raises the preview window.
func (p *windowPreview) Focus() {
	// HighGUI has no portable raise call; re-showing on the next frame
	// is the best available behavior.
}

// Close destroys the window.
func (p *windowPreview) Close() error {
	return p.window.Close()
}
