package dialog

import "xeyes/internal/winapi"

func showNative(title, text string) error {
	return winapi.MessageBox(title, text)
}
