package canvas

import (
	"image"
	"math"
	"testing"

	"github.com/pkg/errors"

	"xeyes/internal/shape"
)

func TestEllipsePointsStayInBounds(t *testing.T) {
	rects := []image.Rectangle{
		image.Rect(1, 1, 71, 100),
		image.Rect(85, 11, 142, 90),
		image.Rect(31, 43, 43, 59),
		image.Rect(0, 0, 2, 2),
	}
	for _, r := range rects {
		pts := ellipsePoints(r)
		if len(pts) < 16 {
			t.Errorf("%v: only %d points", r, len(pts))
		}
		for _, p := range pts {
			x, y := float64(p[0]), float64(p[1])
			if x < float64(r.Min.X)-1e-3 || x > float64(r.Max.X)+1e-3 ||
				y < float64(r.Min.Y)-1e-3 || y > float64(r.Max.Y)+1e-3 {
				t.Errorf("%v: point %v outside", r, p)
			}
		}
	}
}

func TestEllipsePointsTouchEdges(t *testing.T) {
	r := image.Rect(10, 20, 50, 40)
	pts := ellipsePoints(r)

	// The first point is the rightmost one.
	if math.Abs(float64(pts[0][0])-50) > 1e-3 || math.Abs(float64(pts[0][1])-30) > 1e-3 {
		t.Errorf("first point = %v, want (50, 30)", pts[0])
	}
}

func TestMaskRejectsEmptyRegion(t *testing.T) {
	var m Mask
	if err := m.ApplyRegion(shape.Region{}); !errors.Is(err, ErrEmptyRegion) {
		t.Errorf("ApplyRegion(empty) = %v", err)
	}

	full := shape.Region{Full: true}
	if err := m.ApplyRegion(full); err != nil {
		t.Fatalf("ApplyRegion(full) = %v", err)
	}
	if !m.Region().Full {
		t.Error("region not stored")
	}
}

func TestMaskWithClipper(t *testing.T) {
	m := &Mask{}
	c := shape.NewClipper(m, shape.TitleShown, false, nil)
	r := c.Apply(shape.Frame{Size: image.Pt(150, 118), Client: image.Pt(150, 100), Inset: image.Pt(0, 18)})

	if !m.Region().Equal(r) {
		t.Errorf("mask region = %+v, want %+v", m.Region(), r)
	}
	if !m.stale {
		t.Error("mask not marked for rebuild")
	}
}
