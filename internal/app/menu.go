package app

import (
	"image"
	"unicode/utf8"
)

// Chrome metrics, in pixels. Glyphs are 7x13 like basicfont.Face7x13.
const (
	HeaderHeight = 18
	GlyphWidth   = 7
	GlyphHeight  = 13

	itemHeight      = 16
	separatorHeight = 8
	checkColumn     = 12
	rightPad        = 4
)

// Item is one system menu entry. A separator has no command.
type Item struct {
	Label     string
	Cmd       EventKind
	Separator bool
	Checkable bool
}

var menuItems = []Item{
	{Label: "Default Size", Cmd: DefaultSize},
	{Label: "Always on Top", Cmd: AlwaysOnTop, Checkable: true},
	{Label: "Terminate all xeyes", Cmd: TerminateAll},
	{Separator: true},
	{Label: "About Xeyes...", Cmd: About},
	{Label: "Close", Cmd: Close},
}

// Menu is the system menu drawn over the window below the title strip.
type Menu struct {
	Items  []Item
	Origin image.Point

	// Hover is the highlighted item, or -1.
	Hover int
}

// NewMenu returns the system menu with its top-left corner at origin.
func NewMenu(origin image.Point) *Menu {
	return &Menu{
		Items:  menuItems,
		Origin: origin,
		Hover:  -1,
	}
}

func (m *Menu) width() int {
	n := 0
	for _, it := range m.Items {
		if l := utf8.RuneCountInString(it.Label); l > n {
			n = l
		}
	}
	return checkColumn + n*GlyphWidth + rightPad
}

// ItemBounds returns the rectangle of item i in window coordinates.
func (m *Menu) ItemBounds(i int) image.Rectangle {
	y := m.Origin.Y
	for j := 0; j < i; j++ {
		y += m.Items[j].height()
	}
	return image.Rect(m.Origin.X, y, m.Origin.X+m.width(), y+m.Items[i].height())
}

// Bounds is the whole menu in window coordinates.
func (m *Menu) Bounds() image.Rectangle {
	if len(m.Items) == 0 {
		return image.Rectangle{Min: m.Origin, Max: m.Origin}
	}
	return m.ItemBounds(0).Union(m.ItemBounds(len(m.Items) - 1))
}

// ItemAt returns the selectable item under p.
func (m *Menu) ItemAt(p image.Point) (int, bool) {
	for i, it := range m.Items {
		if it.Separator {
			continue
		}
		if p.In(m.ItemBounds(i)) {
			return i, true
		}
	}
	return -1, false
}

// Step moves Hover by dir, skipping separators and wrapping around.
func (m *Menu) Step(dir int) {
	n := len(m.Items)
	if n == 0 {
		return
	}
	i := m.Hover
	if i < 0 && dir < 0 {
		i = 0
	}
	for range n {
		i = ((i+dir)%n + n) % n
		if !m.Items[i].Separator {
			m.Hover = i
			return
		}
	}
}

func (it Item) height() int {
	if it.Separator {
		return separatorHeight
	}
	return itemHeight
}

// TitleBoxes returns the menu icon box and the close box on the title strip
// of a window frameWidth wide.
func TitleBoxes(frameWidth int) (icon, closeBox image.Rectangle) {
	icon = image.Rect(0, 0, HeaderHeight, HeaderHeight)
	closeBox = image.Rect(frameWidth-HeaderHeight, 0, frameWidth, HeaderHeight)
	return icon, closeBox
}

// AboutLayout places the about box and its OK button inside a frame of the
// given size.
func AboutLayout(frame image.Point) (box, ok image.Rectangle) {
	box = image.Rect(0, 0, frame.X, frame.Y).Inset(2)
	const w, h = 40, 16
	x := box.Min.X + (box.Dx()-w)/2
	y := box.Max.Y - h - 4
	ok = image.Rect(x, y, x+w, y+h)
	return box, ok
}
