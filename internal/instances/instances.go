// Package instances finds every running xeyes window and asks it to close.
package instances

import (
	"strings"

	"xeyes/internal/logging"
)

// Identity is what marks a top-level window as one of ours.
type Identity struct {
	Title string
	Class string
}

// Match reports whether a window with the given title and class belongs to id.
// Class wins when both sides have one; otherwise the title must match exactly.
func (id Identity) Match(title, class string) bool {
	if id.Class != "" && class != "" && strings.EqualFold(id.Class, class) {
		return true
	}
	return id.Title != "" && title == id.Title
}

// Terminator closes matching windows through the platform backend.
type Terminator struct {
	id  Identity
	log *logging.Logger
}

// New returns a terminator for windows matching id.
func New(id Identity, log *logging.Logger) *Terminator {
	return &Terminator{id: id, log: log}
}

// TerminateAll asks every matching window, this process's included, to close.
// It returns how many windows were asked.
func (t *Terminator) TerminateAll() (int, error) {
	return terminate(t.id, t.log)
}
