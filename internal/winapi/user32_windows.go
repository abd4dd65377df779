package winapi

import (
	"image"
	"syscall"
	"unsafe"

	"github.com/pkg/errors"
	"golang.org/x/sys/windows"
)

var (
	user32 = windows.NewLazySystemDLL("user32.dll")

	procPostMessageW        = user32.NewProc("PostMessageW")
	procEnumDisplayMonitors = user32.NewProc("EnumDisplayMonitors")
	procGetMonitorInfoW     = user32.NewProc("GetMonitorInfoW")
)

const (
	wmClose                = 0x0010
	monitorInfoFPrimary    = 0x1
	displayDeviceMirroring = 0x8
	mbOK                   = 0x0
	mbIconError            = 0x10
)

// ErrPostMessageFailed is returned when PostMessageW returns 0.
var ErrPostMessageFailed = errors.New("PostMessageW failed")

type rect struct {
	Left, Top, Right, Bottom int32
}

func (r rect) image() image.Rectangle {
	return image.Rect(int(r.Left), int(r.Top), int(r.Right), int(r.Bottom))
}

type monitorInfoExW struct {
	Size    uint32
	Monitor rect
	Work    rect
	Flags   uint32
	Device  [32]uint16
}

// MonitorInfo is one display as reported by GetMonitorInfoW.
type MonitorInfo struct {
	Device    string
	Bounds    image.Rectangle
	Primary   bool
	Mirroring bool
}

// Monitors lists the displays in EnumDisplayMonitors order.
func Monitors() ([]MonitorInfo, error) {
	var out []MonitorInfo

	cb := syscall.NewCallback(func(hMonitor, hdc, lprc, data uintptr) uintptr {
		var mi monitorInfoExW
		mi.Size = uint32(unsafe.Sizeof(mi))
		if ret, _, _ := procGetMonitorInfoW.Call(hMonitor, uintptr(unsafe.Pointer(&mi))); ret == 0 {
			return 1
		}
		out = append(out, MonitorInfo{
			Device:    windows.UTF16ToString(mi.Device[:]),
			Bounds:    mi.Monitor.image(),
			Primary:   mi.Flags&monitorInfoFPrimary != 0,
			Mirroring: mi.Flags == displayDeviceMirroring,
		})
		return 1
	})

	if ret, _, err := procEnumDisplayMonitors.Call(0, 0, cb, 0); ret == 0 {
		return nil, errors.Wrap(err, "EnumDisplayMonitors")
	}
	return out, nil
}

// Window is a top-level window.
type Window struct {
	HWND  windows.HWND
	Title string
	Class string
}

// TopLevelWindows lists every visible top-level window.
func TopLevelWindows() ([]Window, error) {
	var out []Window

	cb := syscall.NewCallback(func(hwnd windows.HWND, lparam uintptr) uintptr {
		if !windows.IsWindowVisible(hwnd) {
			return 1
		}
		out = append(out, Window{
			HWND:  hwnd,
			Title: windowText(hwnd),
			Class: className(hwnd),
		})
		return 1
	})

	if err := windows.EnumWindows(cb, nil); err != nil {
		return nil, errors.Wrap(err, "EnumWindows")
	}
	return out, nil
}

func windowText(hwnd windows.HWND) string {
	buf := make([]uint16, 256)
	n, err := windows.GetWindowText(hwnd, &buf[0], int32(len(buf)))
	if err != nil || n == 0 {
		return ""
	}
	return windows.UTF16ToString(buf[:n])
}

func className(hwnd windows.HWND) string {
	buf := make([]uint16, 256)
	n, err := windows.GetClassName(hwnd, &buf[0], int32(len(buf)))
	if err != nil || n == 0 {
		return ""
	}
	return windows.UTF16ToString(buf[:n])
}

// PostClose posts WM_CLOSE to hwnd.
func PostClose(hwnd windows.HWND) error {
	ret, _, err := procPostMessageW.Call(uintptr(hwnd), wmClose, 0, 0)
	if ret == 0 {
		return errors.Wrapf(ErrPostMessageFailed, "hwnd 0x%x: %v", uintptr(hwnd), err)
	}
	return nil
}

// MessageBox shows a blocking error dialog.
func MessageBox(caption, text string) error {
	t, err := windows.UTF16PtrFromString(text)
	if err != nil {
		return err
	}
	c, err := windows.UTF16PtrFromString(caption)
	if err != nil {
		return err
	}
	_, err = windows.MessageBox(0, t, c, mbOK|mbIconError)
	return err
}
