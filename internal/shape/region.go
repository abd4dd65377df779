package shape

import "image"

// Kind is the type of a region primitive.
type Kind int

const (
	Ellipse Kind = iota
	Rect
)

func (k Kind) String() string {
	switch k {
	case Ellipse:
		return "ellipse"
	case Rect:
		return "rect"
	default:
		return "unknown"
	}
}

// Primitive is an ellipse inscribed in Bounds, or Bounds itself.
type Primitive struct {
	Kind   Kind
	Bounds image.Rectangle
}

// Region is the union of its primitives. A Full region has no primitives and
// covers the whole window.
type Region struct {
	Full  bool
	Prims []Primitive
}

// Contains reports whether the pixel at p belongs to the region.
func (r Region) Contains(p image.Point) bool {
	if r.Full {
		return true
	}
	for _, pr := range r.Prims {
		if pr.contains(p) {
			return true
		}
	}
	return false
}

func (pr Primitive) contains(p image.Point) bool {
	b := pr.Bounds
	if !p.In(b) {
		return false
	}
	if pr.Kind == Rect {
		return true
	}
	rx := float64(b.Dx()) / 2
	ry := float64(b.Dy()) / 2
	dx := (float64(p.X) + 0.5 - float64(b.Min.X)) - rx
	dy := (float64(p.Y) + 0.5 - float64(b.Min.Y)) - ry
	return dx*dx/(rx*rx)+dy*dy/(ry*ry) <= 1
}

// Equal reports whether both regions are built from the same primitives.
func (r Region) Equal(o Region) bool {
	if r.Full != o.Full || len(r.Prims) != len(o.Prims) {
		return false
	}
	for i := range r.Prims {
		if r.Prims[i] != o.Prims[i] {
			return false
		}
	}
	return true
}
