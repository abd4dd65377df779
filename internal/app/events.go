package app

import "image"

// EventKind is what happened to the window.
type EventKind int

const (
	Tick        EventKind = iota // once per host tick, samples the cursor
	Resize                       // frame size changed, Size holds the new size
	ButtonDown                   // left button pressed at Pos
	ButtonUp                     // left button released at Pos
	PointerMove                  // pointer moved to Pos
	RightClick                   // right button released
	MenuKey                      // F10, Alt+Space or the context-menu key
	Cancel                       // Escape
	Confirm                      // Enter
	DefaultSize                  // menu command
	AlwaysOnTop                  // menu command
	TerminateAll                 // menu command
	About                        // menu command
	Close                        // menu command or window-manager close
	Up                           // arrow up, moves the menu highlight
	Down                         // arrow down, moves the menu highlight
)

var eventNames = map[EventKind]string{
	Tick:         "tick",
	Resize:       "resize",
	ButtonDown:   "button down",
	ButtonUp:     "button up",
	PointerMove:  "pointer move",
	RightClick:   "right click",
	MenuKey:      "menu key",
	Cancel:       "cancel",
	Confirm:      "confirm",
	DefaultSize:  "default size",
	AlwaysOnTop:  "always on top",
	TerminateAll: "terminate all",
	About:        "about",
	Close:        "close",
	Up:           "up",
	Down:         "down",
}

func (k EventKind) String() string {
	if s, ok := eventNames[k]; ok {
		return s
	}
	return "unknown"
}

// Event is one input to the app. Pos is in window coordinates.
type Event struct {
	Kind EventKind
	Pos  image.Point
	Size image.Point
}
