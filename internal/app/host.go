package app

import (
	"image"
	"image/color"

	"xeyes/internal/tracker"
)

// Host is the window the app lives in. Positions are in screen coordinates.
type Host interface {
	WindowPosition() image.Point
	SetWindowPosition(p image.Point)
	// SetWindowSize resizes the whole window, header included.
	SetWindowSize(size image.Point)
	SetFloating(on bool)
	CursorPosition() image.Point
}

// Surface is the persistent client-area canvas.
type Surface interface {
	tracker.Surface
	FillRect(r image.Rectangle, c color.Color)
}

// Terminator closes every running instance, this one included, and reports
// how many windows it asked to close.
type Terminator interface {
	TerminateAll() (int, error)
}
