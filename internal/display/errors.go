package display

import "github.com/pkg/errors"

var (
	// ErrUnsupported is returned when the platform has no monitor backend.
	ErrUnsupported = errors.New("monitor enumeration not supported")

	// ErrNoMonitors is returned when a backend reports nothing usable.
	ErrNoMonitors = errors.New("no monitors found")
)
