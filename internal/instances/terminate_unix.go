//go:build linux || freebsd || openbsd || netbsd || dragonfly

package instances

import (
	"xeyes/internal/logging"
	"xeyes/internal/xconn"
)

func terminate(id Identity, log *logging.Logger) (int, error) {
	c, err := xconn.Open()
	if err != nil {
		return 0, err
	}
	defer c.Close()

	wins, err := c.ClientList()
	if err != nil {
		return 0, err
	}

	n := 0
	for _, w := range wins {
		_, class := c.WindowClass(w)
		title := c.WindowName(w)
		if !id.Match(title, class) {
			continue
		}
		if err := c.SendDelete(w); err != nil {
			log.Debug("%v", err)
			continue
		}
		log.Debug("asked 0x%x (%q) to close", uint32(w), title)
		n++
	}
	return n, nil
}
