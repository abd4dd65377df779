package instances

import "github.com/pkg/errors"

// ErrUnsupported is returned on platforms without a way to reach other instances.
var ErrUnsupported = errors.New("terminate all not supported on this platform")
