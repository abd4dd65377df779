//go:build !windows && !linux && !freebsd && !openbsd && !netbsd && !dragonfly

package instances

import "xeyes/internal/logging"

func terminate(Identity, *logging.Logger) (int, error) {
	return 0, ErrUnsupported
}
