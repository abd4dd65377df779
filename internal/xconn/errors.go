package xconn

import "github.com/pkg/errors"

// ErrNoDisplay is returned when there is no X display to connect to.
var ErrNoDisplay = errors.New("no X display")
