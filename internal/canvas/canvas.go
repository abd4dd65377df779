// Package canvas draws the eyes, the window chrome and the shape mask with ebiten.
package canvas

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Canvas is the persistent client-area image. What is drawn stays until
// drawn over, so the eyes only repaint what moved.
type Canvas struct {
	img  *ebiten.Image
	size image.Point
}

// New allocates a canvas of the given size.
func New(size image.Point) *Canvas {
	c := &Canvas{}
	c.Ensure(size)
	return c
}

// Ensure reallocates the canvas when size changed. The new canvas is blank.
func (c *Canvas) Ensure(size image.Point) bool {
	if c.img != nil && size == c.size {
		return false
	}
	if c.img != nil {
		c.img.Deallocate()
	}
	c.img = ebiten.NewImage(max(size.X, 1), max(size.Y, 1))
	c.size = size
	return true
}

func (c *Canvas) Image() *ebiten.Image { return c.img }

func (c *Canvas) FillEllipse(r image.Rectangle, col color.Color) {
	fillEllipse(c.img, r, col)
}

func (c *Canvas) FillRect(r image.Rectangle, col color.Color) {
	fillRect(c.img, r, col)
}

func fillRect(dst *ebiten.Image, r image.Rectangle, col color.Color) {
	if r.Empty() {
		return
	}
	vector.FillRect(dst, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), col, false)
}

// fillEllipse fills the ellipse inscribed in r.
func fillEllipse(dst *ebiten.Image, r image.Rectangle, col color.Color) {
	if r.Empty() {
		return
	}
	pts := ellipsePoints(r)
	var path vector.Path
	path.MoveTo(pts[0][0], pts[0][1])
	for _, p := range pts[1:] {
		path.LineTo(p[0], p[1])
	}
	path.Close()

	op := &vector.DrawPathOptions{}
	op.ColorScale.ScaleWithColor(col)
	vector.FillPath(dst, &path, nil, op)
}

// ellipsePoints approximates the ellipse inscribed in r with a closed polygon.
func ellipsePoints(r image.Rectangle) [][2]float32 {
	cx := float64(r.Min.X+r.Max.X) / 2
	cy := float64(r.Min.Y+r.Max.Y) / 2
	rx := float64(r.Dx()) / 2
	ry := float64(r.Dy()) / 2

	n := int(math.Ceil(math.Pi * (rx + ry) / 2))
	n = min(max(n, 16), 256)

	pts := make([][2]float32, n)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = [2]float32{float32(cx + rx*math.Cos(a)), float32(cy + ry*math.Sin(a))}
	}
	return pts
}
