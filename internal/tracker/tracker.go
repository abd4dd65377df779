// Package tracker moves the pupils toward the cursor and repaints the sockets.
package tracker

import (
	"image"
	"image/color"
	"math"

	"xeyes/internal/entity"
)

var (
	ColSocket = color.RGBA{0x00, 0x00, 0x00, 0xff}
	ColWhite  = color.RGBA{0xff, 0xff, 0xff, 0xff}
	ColPupil  = color.RGBA{0x00, 0x00, 0x00, 0xff}
)

// Surface is a persistent drawing target in client coordinates.
// Whatever is drawn stays until drawn over.
type Surface interface {
	FillEllipse(r image.Rectangle, c color.Color)
}

// Tracker owns the eye pair and the last cursor sample.
type Tracker struct {
	pair    entity.Pair
	last    image.Point
	sampled bool
}

// New lays out the eyes for a client area of w x h.
func New(w, h int) *Tracker {
	t := &Tracker{}
	t.pair.Relayout(w, h)
	return t
}

// Eyes returns a copy of the current eye state.
func (t *Tracker) Eyes() entity.Pair {
	return t.pair
}

// Update points both pupils at cursor. cursor is in screen coordinates and
// origin is the screen position of the client area's top-left corner.
// It reports whether anything was drawn.
func (t *Tracker) Update(s Surface, cursor, origin image.Point, force bool) bool {
	if t.sampled && cursor == t.last && !force {
		return false
	}
	t.last, t.sampled = cursor, true

	geo := t.pair.Geo
	for i := range t.pair.Eyes {
		eye := &t.pair.Eyes[i]
		rel := cursor.Sub(origin).Sub(eye.Center)
		center := eye.Center.Add(Displacement(rel, geo.Travel))
		box := image.Rectangle{
			Min: center.Sub(geo.Pupil),
			Max: center.Add(geo.Pupil),
		}

		if eye.Painted() {
			s.FillEllipse(eye.Prev, ColWhite)
		}
		s.FillEllipse(box, ColPupil)
		eye.Prev = box
	}
	return true
}

// Displacement returns the pupil offset for a cursor at rel from the socket
// center. The offset follows the direction of rel scaled to travel, but never
// goes past the cursor itself.
func Displacement(rel, travel image.Point) image.Point {
	if rel == (image.Point{}) {
		return image.Point{}
	}
	x, y := float64(rel.X), float64(rel.Y)
	l := math.Sqrt(x*x + y*y)

	d := image.Pt(int(x/l*float64(travel.X)), int(y/l*float64(travel.Y)))
	if sq(d) > sq(rel) {
		return rel
	}
	return d
}

func sq(p image.Point) int {
	return p.X*p.X + p.Y*p.Y
}

// Repaint lays the eyes out for a w x h client area, paints both sockets and
// redraws the pupils regardless of cursor movement.
func (t *Tracker) Repaint(s Surface, w, h int, cursor, origin image.Point) {
	t.pair.Relayout(w, h)

	geo := t.pair.Geo
	for _, r := range geo.Outer {
		s.FillEllipse(r, ColSocket)
	}
	for _, r := range geo.Inner {
		s.FillEllipse(r, ColWhite)
	}

	t.Update(s, cursor, origin, true)
}
