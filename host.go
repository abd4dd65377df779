package main

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// windowHost is the ebiten window as seen by the app. ebiten reports window
// positions relative to the current monitor, so cursor positions are
// reported in the same frame.
type windowHost struct{}

func (windowHost) WindowPosition() image.Point {
	return image.Pt(ebiten.WindowPosition())
}

func (windowHost) SetWindowPosition(p image.Point) {
	ebiten.SetWindowPosition(p.X, p.Y)
}

func (windowHost) SetWindowSize(size image.Point) {
	ebiten.SetWindowSize(size.X, size.Y)
}

func (windowHost) SetFloating(on bool) {
	ebiten.SetWindowFloating(on)
}

func (h windowHost) CursorPosition() image.Point {
	return h.WindowPosition().Add(image.Pt(ebiten.CursorPosition()))
}
