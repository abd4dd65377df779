package entity

import "image"

// Left and Right index the two eyes.
const (
	Left = iota
	Right
	NumEyes
)

// Smallest client area that still yields a pupil strictly inside its socket.
const (
	MinClientWidth  = 40
	MinClientHeight = 30
)

// Largest client area. The eyes are drawn on one offscreen image of this size.
const (
	MaxClientWidth  = 8192
	MaxClientHeight = 8192
)

// Eye is one socket plus the pupil last painted inside it.
type Eye struct {
	Center image.Point // socket center, client coordinates
	Prev   image.Rectangle
}

// Geometry is the per-size layout shared by the painter and the tracker.
type Geometry struct {
	Outer  [NumEyes]image.Rectangle // black socket ellipses
	Inner  [NumEyes]image.Rectangle // white socket ellipses
	Travel image.Point              // max pupil displacement per axis
	Pupil  image.Point              // pupil half-extents
}

// Pair holds both eyes and the geometry they were laid out with.
type Pair struct {
	Eyes [NumEyes]Eye
	Geo  Geometry
}

// Layout computes socket ellipses, centers and pupil sizes for a client area of w x h.
func Layout(w, h int) (Geometry, [NumEyes]image.Point) {
	var g Geometry

	l := image.Rectangle{
		Min: image.Pt(1, 1),
		Max: image.Pt(int(float64(w/2)-float64(w)*0.025), h),
	}
	r := image.Rectangle{
		Min: image.Pt(int(float64(l.Max.X)+float64(w)*0.05), 1),
		Max: image.Pt(w-1, h),
	}
	g.Outer = [NumEyes]image.Rectangle{l, r}

	dx, dy := w/2/10, h/10
	for i, o := range g.Outer {
		g.Inner[i] = image.Rectangle{
			Min: image.Pt(o.Min.X+dx, o.Min.Y+dy),
			Max: image.Pt(o.Max.X-dx, o.Max.Y-dy),
		}
	}

	li, ri := g.Inner[Left], g.Inner[Right]
	var centers [NumEyes]image.Point
	centers[Left] = image.Pt((li.Max.X+li.Min.X)/2+1, (li.Min.Y+li.Max.Y)/2+1)
	centers[Right] = image.Pt((ri.Max.X+ri.Min.X)/2+1, centers[Left].Y)

	// Both eyes share the left socket's proportions.
	g.Travel = image.Pt(
		int(float64((li.Max.X-li.Min.X)/2)/1.7),
		int(float64((li.Max.Y-li.Min.Y)/2)/1.7),
	)
	g.Pupil = image.Pt(int(float64(g.Travel.X)/2.5), int(float64(g.Travel.Y)/2.5))

	return g, centers
}

// Relayout recomputes the geometry for a new client size and forgets the
// painted pupils, since the sockets are about to be painted over them.
func (p *Pair) Relayout(w, h int) {
	geo, centers := Layout(w, h)
	p.Geo = geo
	for i := range p.Eyes {
		p.Eyes[i].Center = centers[i]
		p.Eyes[i].Prev = image.Rectangle{}
	}
}

// Painted reports whether the eye has a pupil on screen that must be erased first.
func (e *Eye) Painted() bool {
	return e.Prev.Min.X < e.Prev.Max.X
}
