package canvas

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/errors"

	"xeyes/internal/shape"
)

// ErrEmptyRegion is returned for a clipped region with nothing in it.
var ErrEmptyRegion = errors.New("empty window region")

// Mask clips drawing to the window region. It is the window's shape.Applier:
// pixels outside the region end up fully transparent.
type Mask struct {
	region shape.Region
	img    *ebiten.Image
	stale  bool
}

// ApplyRegion stores r. The mask image is rebuilt on the next Apply.
func (m *Mask) ApplyRegion(r shape.Region) error {
	if !r.Full && len(r.Prims) == 0 {
		return ErrEmptyRegion
	}
	m.region = r
	m.stale = true
	return nil
}

// Region is the region last applied.
func (m *Mask) Region() shape.Region { return m.region }

// Apply clears everything on dst outside the region.
func (m *Mask) Apply(dst *ebiten.Image) {
	if m.region.Full || len(m.region.Prims) == 0 {
		return
	}
	size := dst.Bounds().Size()
	if m.img == nil || m.img.Bounds().Size() != size {
		if m.img != nil {
			m.img.Deallocate()
		}
		m.img = ebiten.NewImage(size.X, size.Y)
		m.stale = true
	}
	if m.stale {
		m.img.Clear()
		for _, p := range m.region.Prims {
			switch p.Kind {
			case shape.Ellipse:
				fillEllipse(m.img, p.Bounds, color.White)
			case shape.Rect:
				fillRect(m.img, p.Bounds, color.White)
			}
		}
		m.stale = false
	}

	op := &ebiten.DrawImageOptions{}
	op.Blend = ebiten.BlendDestinationIn
	dst.DrawImage(m.img, op)
}
