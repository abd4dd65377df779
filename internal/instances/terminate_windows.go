package instances

import (
	"xeyes/internal/logging"
	"xeyes/internal/winapi"
)

func terminate(id Identity, log *logging.Logger) (int, error) {
	wins, err := winapi.TopLevelWindows()
	if err != nil {
		return 0, err
	}

	n := 0
	for _, w := range wins {
		if !id.Match(w.Title, w.Class) {
			continue
		}
		if err := winapi.PostClose(w.HWND); err != nil {
			log.Debug("%v", err)
			continue
		}
		log.Debug("asked 0x%x (%q) to close", uintptr(w.HWND), w.Title)
		n++
	}
	return n, nil
}
