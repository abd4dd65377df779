//go:build linux || freebsd || openbsd || netbsd || dragonfly

package display

import (
	"image"

	"github.com/jezek/xgb/randr"
	"github.com/jezek/xgb/xproto"
	"github.com/pkg/errors"

	"xeyes/internal/xconn"
)

// platformMonitors lists active CRTCs through RandR.
func platformMonitors() ([]Monitor, error) {
	c, err := xconn.Open()
	if err != nil {
		return nil, err
	}
	defer c.Close()

	if err := randr.Init(c.Conn); err != nil {
		return nil, errors.Wrap(err, "randr extension")
	}
	res, err := randr.GetScreenResourcesCurrent(c.Conn, c.Root).Reply()
	if err != nil {
		return nil, errors.Wrap(err, "randr screen resources")
	}

	var mons []Monitor
	for _, crtc := range res.Crtcs {
		info, err := randr.GetCrtcInfo(c.Conn, crtc, res.ConfigTimestamp).Reply()
		if err != nil {
			continue
		}
		// No mode means the CRTC is disabled.
		if info.Mode == 0 || len(info.Outputs) == 0 {
			continue
		}
		mons = append(mons, Monitor{
			Name:   outputName(c, info.Outputs[0], res.ConfigTimestamp),
			Bounds: image.Rect(int(info.X), int(info.Y), int(info.X)+int(info.Width), int(info.Y)+int(info.Height)),
		})
	}

	primary := ""
	if p, err := randr.GetOutputPrimary(c.Conn, c.Root).Reply(); err == nil && p.Output != 0 {
		primary = outputName(c, p.Output, res.ConfigTimestamp)
	}
	return normalize(mons, primary), nil
}

func outputName(c *xconn.Client, out randr.Output, ts xproto.Timestamp) string {
	info, err := randr.GetOutputInfo(c.Conn, out, ts).Reply()
	if err != nil {
		return ""
	}
	return string(info.Name)
}
