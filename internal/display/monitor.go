// Package display enumerates monitors and resolves the startup window placement.
package display

import (
	"image"

	"xeyes/internal/config"
	"xeyes/internal/logging"
)

// Monitor is one physical display in virtual-screen coordinates.
type Monitor struct {
	Name   string
	Bounds image.Rectangle
}

// Placement is where the window goes at startup.
type Placement struct {
	// Position is the window's top-left corner in virtual-screen coordinates.
	Position image.Point
	// Size is the client area size.
	Size image.Point

	// Monitor is the index of the monitor holding Position, or -1.
	Monitor int
	// Offset is Position relative to that monitor's origin.
	Offset image.Point

	// Defaulted is set when the request was dropped for the default placement.
	Defaulted bool
}

// Union is the bounding box of all monitors.
func Union(mons []Monitor) image.Rectangle {
	var u image.Rectangle
	for i, m := range mons {
		if i == 0 {
			u = m.Bounds
			continue
		}
		u = u.Union(m.Bounds)
	}
	return u
}

// Resolve turns a requested geometry on a 1-based monitor into a placement.
// A monitor that does not exist, or a top-left corner outside every monitor's
// combined bounds, gives the default geometry instead. The size is capped at
// the combined bounds.
func Resolve(g config.Geometry, monitor int, mons []Monitor) Placement {
	idx := monitor - 1
	if idx < 0 || idx >= len(mons) {
		return defaultPlacement(mons)
	}

	pos := mons[idx].Bounds.Min.Add(g.Offset)
	u := Union(mons)
	// Far edges are inclusive.
	if pos.X < u.Min.X || pos.X > u.Max.X || pos.Y < u.Min.Y || pos.Y > u.Max.Y {
		return defaultPlacement(mons)
	}
	size := image.Pt(min(g.Size.X, u.Dx()), min(g.Size.Y, u.Dy()))
	return locate(Placement{Position: pos, Size: size}, mons)
}

func defaultPlacement(mons []Monitor) Placement {
	d := config.DefaultGeometry()
	p := locate(Placement{Position: d.Offset, Size: d.Size}, mons)
	p.Defaulted = true
	return p
}

// locate fills in the monitor holding p.Position, falling back to the first
// monitor for positions on a far edge or in a gap between monitors.
func locate(p Placement, mons []Monitor) Placement {
	p.Monitor = -1
	p.Offset = p.Position
	for i, m := range mons {
		if p.Position.In(m.Bounds) {
			p.Monitor = i
			break
		}
	}
	if p.Monitor < 0 && len(mons) > 0 {
		p.Monitor = 0
	}
	if p.Monitor >= 0 {
		p.Offset = p.Position.Sub(mons[p.Monitor].Bounds.Min)
	}
	return p
}

// Monitors returns the platform's monitor list, or the current monitor at the
// origin when the platform backend fails.
func Monitors(log *logging.Logger) []Monitor {
	mons, err := platformMonitors()
	if err == nil && len(mons) == 0 {
		err = ErrNoMonitors
	}
	if err != nil {
		log.Debug("monitor backend: %v, using the current monitor", err)
		return currentMonitor()
	}
	for i, m := range mons {
		log.Debug("monitor %d: %s %v", i+1, m.Name, m.Bounds)
	}
	return mons
}

// normalize drops disabled and mirrored outputs, moves the primary monitor to
// the front and caps the list at config.MaxMonitor.
func normalize(mons []Monitor, primary string) []Monitor {
	out := make([]Monitor, 0, len(mons))
	seen := make(map[image.Rectangle]bool)
	for _, m := range mons {
		if m.Bounds.Empty() || seen[m.Bounds] {
			continue
		}
		seen[m.Bounds] = true
		out = append(out, m)
	}
	for i, m := range out {
		if primary != "" && m.Name == primary && i > 0 {
			copy(out[1:i+1], out[0:i])
			out[0] = m
			break
		}
	}
	if len(out) > config.MaxMonitor {
		out = out[:config.MaxMonitor]
	}
	return out
}
