package display

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"xeyes/internal/logging"
)

// currentMonitor reports ebiten's current monitor at the origin.
func currentMonitor() []Monitor {
	m := ebiten.Monitor()
	if m == nil {
		return nil
	}
	w, h := m.Size()
	return []Monitor{{Name: m.Name(), Bounds: image.Rect(0, 0, w, h)}}
}

// Place moves the window to p. ebiten positions windows relative to a
// monitor, so the placement's monitor is matched to one of ebiten's by name,
// then by index.
func Place(p Placement, mons []Monitor, log *logging.Logger) {
	if p.Monitor < 0 || p.Monitor >= len(mons) {
		ebiten.SetWindowPosition(p.Position.X, p.Position.Y)
		return
	}

	if m := matchMonitor(ebiten.AppendMonitors(nil), mons[p.Monitor].Name, p.Monitor); m != nil {
		ebiten.SetMonitor(m)
	} else {
		log.Debug("no ebiten monitor for %q, placing on the current one", mons[p.Monitor].Name)
	}
	ebiten.SetWindowPosition(p.Offset.X, p.Offset.Y)
}

type named interface {
	Name() string
}

func matchMonitor[M named](candidates []M, name string, index int) M {
	var zero M
	for _, c := range candidates {
		if name != "" && c.Name() == name {
			return c
		}
	}
	if index >= 0 && index < len(candidates) {
		return candidates[index]
	}
	return zero
}
