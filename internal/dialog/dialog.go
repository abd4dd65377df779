// Package dialog reports fatal startup errors to the user.
package dialog

import "xeyes/internal/logging"

// ShowError reports a fatal error. On Windows it blocks on a message box,
// elsewhere the error goes to the log.
func ShowError(title string, err error, log *logging.Logger) {
	log.Error("%s: %v", title, err)
	if derr := showNative(title, err.Error()); derr != nil {
		log.Debug("error dialog: %v", derr)
	}
}
