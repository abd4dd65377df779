//go:build !windows

package dialog

func showNative(string, string) error {
	return nil
}
