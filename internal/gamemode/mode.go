// Package gamemode tracks what the pointer is currently doing to the window.
package gamemode

import (
	"image"
)

type Mode int

const (
	Idle     Mode = iota // Eyes follow the pointer, clicks go to the eyes
	Dragging             // Left button held, window follows the pointer
	Menu                 // System menu open
	About                // About box open
)

func (m Mode) String() string {
	switch m {
	case Idle:
		return "idle"
	case Dragging:
		return "dragging"
	case Menu:
		return "menu"
	case About:
		return "about"
	default:
		return "unknown"
	}
}

// Allowed transitions. Anything not listed is ignored.
var transitions = map[Mode][]Mode{
	Idle:     {Dragging, Menu, About},
	Dragging: {Idle},
	Menu:     {Idle, About},
	About:    {Idle},
}

// Machine holds the current mode. The zero value is Idle.
type Machine struct {
	mode Mode
}

func (m *Machine) Mode() Mode {
	return m.mode
}

func (m *Machine) Is(mode Mode) bool {
	return m.mode == mode
}

// To switches to next and reports whether the transition was allowed.
func (m *Machine) To(next Mode) bool {
	for _, allowed := range transitions[m.mode] {
		if allowed == next {
			m.mode = next
			return true
		}
	}
	return false
}

// Overlay reports whether the mode draws on top of the eyes and needs the
// whole window to take input.
func (m Mode) Overlay() bool {
	return m == Menu || m == About
}

// Drag remembers where the window was grabbed, relative to its top-left corner.
type Drag struct {
	Grab image.Point
}

// Target is the window position that keeps the grab point under the pointer.
// window is the current window position and cursor the pointer position
// relative to that window.
func (d Drag) Target(window, cursor image.Point) image.Point {
	return window.Add(cursor).Sub(d.Grab)
}
