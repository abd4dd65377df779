package canvas

import (
	"image"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"xeyes/internal/app"
)

var (
	ColStrip     = color.RGBA{0x2b, 0x2b, 0x2b, 0xff}
	ColMenu      = color.RGBA{0xf0, 0xf0, 0xf0, 0xff}
	ColBorder    = color.RGBA{0x80, 0x80, 0x80, 0xff}
	ColHighlight = color.RGBA{0x33, 0x66, 0xcc, 0xff}
	ColText      = color.RGBA{0x10, 0x10, 0x10, 0xff}
)

var face = text.NewGoXFace(basicfont.Face7x13)

// Chrome draws everything that is not the eyes: the title strip, the system
// menu and the about box.
type Chrome struct {
	Title string
	about []string
}

// NewChrome returns chrome for a window titled title.
func NewChrome(title string, about []string) *Chrome {
	return &Chrome{Title: title, about: about}
}

func drawText(dst *ebiten.Image, s string, x, y int, col color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(col)
	op.LineSpacing = app.GlyphHeight
	text.Draw(dst, s, face, op)
}

func strokeRect(dst *ebiten.Image, r image.Rectangle, col color.Color) {
	vector.StrokeRect(dst, float32(r.Min.X)+0.5, float32(r.Min.Y)+0.5, float32(r.Dx()-1), float32(r.Dy()-1), 1, col, false)
}

// DrawTitle paints the title strip across the top of a frameWidth wide window.
func (c *Chrome) DrawTitle(dst *ebiten.Image, frameWidth int) {
	strip := image.Rect(0, 0, frameWidth, app.HeaderHeight)
	fillRect(dst, strip, ColStrip)

	icon, closeBox := app.TitleBoxes(frameWidth)

	// Menu icon: a tiny pair of eyes.
	cy := float32(icon.Min.Y+icon.Max.Y) / 2
	cx := float32(icon.Min.X+icon.Max.X) / 2
	vector.FillCircle(dst, cx-3.5, cy, 3.5, color.White, true)
	vector.FillCircle(dst, cx+3.5, cy, 3.5, color.White, true)
	vector.FillCircle(dst, cx-2.5, cy+1, 1.5, color.Black, true)
	vector.FillCircle(dst, cx+4.5, cy+1, 1.5, color.Black, true)

	if x := icon.Max.X + 3; x+len(c.Title)*6 < closeBox.Min.X {
		ebitenutil.DebugPrintAt(dst, c.Title, x, 1)
	}

	in := closeBox.Inset(5)
	vector.StrokeLine(dst, float32(in.Min.X), float32(in.Min.Y), float32(in.Max.X), float32(in.Max.Y), 1.5, color.White, true)
	vector.StrokeLine(dst, float32(in.Max.X), float32(in.Min.Y), float32(in.Min.X), float32(in.Max.Y), 1.5, color.White, true)
}

// DrawMenu paints the open system menu. checked reports the state of
// checkable items.
func (c *Chrome) DrawMenu(dst *ebiten.Image, m *app.Menu, checked func(app.EventKind) bool) {
	b := m.Bounds()
	fillRect(dst, b, ColMenu)
	strokeRect(dst, b, ColBorder)

	for i, it := range m.Items {
		r := m.ItemBounds(i)
		if it.Separator {
			y := float32(r.Min.Y+r.Max.Y) / 2
			vector.StrokeLine(dst, float32(r.Min.X+2), y, float32(r.Max.X-2), y, 1, ColBorder, false)
			continue
		}

		fg := color.Color(ColText)
		if i == m.Hover {
			fillRect(dst, r.Inset(1), ColHighlight)
			fg = color.White
		}
		if it.Checkable && checked(it.Cmd) {
			x, y := float32(r.Min.X+3), float32(r.Min.Y+8)
			vector.StrokeLine(dst, x, y, x+2.5, y+3, 1.5, fg, true)
			vector.StrokeLine(dst, x+2.5, y+3, x+7, y-3, 1.5, fg, true)
		}
		drawText(dst, it.Label, r.Min.X+12, r.Min.Y+1, fg)
	}
}

// DrawAbout paints the about box over a window of size frame.
func (c *Chrome) DrawAbout(dst *ebiten.Image, frame image.Point) {
	box, ok := app.AboutLayout(frame)
	fillRect(dst, box, ColMenu)
	strokeRect(dst, box, ColBorder)

	drawText(dst, strings.Join(c.about, "\n"), box.Min.X+4, box.Min.Y+4, ColText)

	fillRect(dst, ok, ColMenu)
	strokeRect(dst, ok, ColText)
	label := "OK"
	lw := len(label) * app.GlyphWidth
	drawText(dst, label, ok.Min.X+(ok.Dx()-lw)/2, ok.Min.Y+(ok.Dy()-app.GlyphHeight)/2, ColText)
}
