// Package shape builds the window's visible region: the two eyes plus an
// optional title strip.
package shape

import (
	"image"

	"xeyes/internal/logging"
)

// Mode selects whether the title strip is part of the region.
type Mode int

const (
	TitleHidden Mode = iota
	TitleShown
)

// Toggle flips between shown and hidden.
func (m Mode) Toggle() Mode {
	if m == TitleShown {
		return TitleHidden
	}
	return TitleShown
}

func (m Mode) String() string {
	if m == TitleShown {
		return "title shown"
	}
	return "title hidden"
}

// Applier hands a region to the host window.
type Applier interface {
	ApplyRegion(r Region) error
}

// Frame describes the window in its own coordinates. Client is the client
// area's size and Inset is where the client area starts inside the window.
type Frame struct {
	Size   image.Point
	Client image.Point
	Inset  image.Point
}

// Clipper computes and applies the window region.
type Clipper struct {
	Mode Mode

	// Legacy leaves the window rectangular while the title strip is shown.
	Legacy bool

	applier Applier
	log     *logging.Logger
	current Region
}

// NewClipper returns a clipper applying regions through a.
func NewClipper(a Applier, mode Mode, legacy bool, log *logging.Logger) *Clipper {
	return &Clipper{
		Mode:    mode,
		Legacy:  legacy,
		applier: a,
		log:     log,
	}
}

// Compute builds the region for f in window coordinates.
func (c *Clipper) Compute(f Frame) Region {
	if c.Legacy && c.Mode == TitleShown {
		return Region{Full: true}
	}

	w, h := f.Client.X, f.Client.Y
	l := image.Rectangle{
		Min: image.Pt(1, 1),
		Max: image.Pt(int(float64(w/2)-float64(w)*0.025+1), h),
	}
	r := image.Rectangle{
		Min: image.Pt(int(float64(l.Max.X)+float64(w)*0.05)-1, 1),
		Max: image.Pt(w-1, h),
	}

	reg := Region{Prims: []Primitive{
		{Kind: Ellipse, Bounds: l.Add(f.Inset)},
		{Kind: Ellipse, Bounds: r.Add(f.Inset)},
	}}
	if c.Mode == TitleShown {
		reg.Prims = append(reg.Prims, Primitive{
			Kind:   Rect,
			Bounds: image.Rect(0, 0, f.Size.X, f.Inset.Y),
		})
	}
	return reg
}

// Apply recomputes the region for f and pushes it to the window. Failures are
// logged and otherwise ignored; the next resize or toggle tries again.
func (c *Clipper) Apply(f Frame) Region {
	c.current = c.Compute(f)
	if c.applier != nil {
		if err := c.applier.ApplyRegion(c.current); err != nil && c.log != nil {
			c.log.Debug("apply region: %v", err)
		}
	}
	return c.current
}

// Current is the region last applied.
func (c *Clipper) Current() Region {
	return c.current
}
