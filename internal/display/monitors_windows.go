package display

import (
	"xeyes/internal/winapi"
)

// platformMonitors lists monitors through EnumDisplayMonitors, skipping
// mirroring pseudo-monitors.
func platformMonitors() ([]Monitor, error) {
	infos, err := winapi.Monitors()
	if err != nil {
		return nil, err
	}
	mons := make([]Monitor, 0, len(infos))
	for _, mi := range infos {
		if mi.Mirroring {
			continue
		}
		mons = append(mons, Monitor{Name: mi.Device, Bounds: mi.Bounds})
	}
	return normalize(mons, ""), nil
}
