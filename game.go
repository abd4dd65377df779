package main

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"xeyes/internal/app"
	"xeyes/internal/canvas"
	"xeyes/internal/gamemode"
	"xeyes/internal/logging"
)

// Game adapts the app to ebiten's loop
type Game struct {
	app    *app.App
	canvas *canvas.Canvas
	mask   *canvas.Mask
	chrome *canvas.Chrome
	log    *logging.Logger

	cursor      image.Point // last cursor position in window coordinates
	outside     image.Point // window size ebiten last reported
	seenOutside image.Point
	passThrough bool
}

func NewGame(a *app.App, cv *canvas.Canvas, mask *canvas.Mask, chrome *canvas.Chrome, log *logging.Logger) *Game {
	return &Game{
		app:    a,
		canvas: cv,
		mask:   mask,
		chrome: chrome,
		log:    log,
		cursor: image.Pt(-1, -1),
	}
}

// Update: input, then one tracker tick
func (g *Game) Update() error {
	if ebiten.IsWindowBeingClosed() {
		g.app.Dispatch(app.Event{Kind: app.Close})
	}

	if g.outside != g.seenOutside && g.outside.X > 0 && g.outside.Y > 0 {
		g.seenOutside = g.outside
		g.app.Dispatch(app.Event{Kind: app.Resize, Size: g.outside})
	}

	g.pollPointer()
	g.pollKeys()

	// A resize or Default Size drops the canvas; the tick below repaints it.
	g.canvas.Ensure(g.app.Client())
	g.app.Dispatch(app.Event{Kind: app.Tick})

	g.updatePassThrough()

	if g.app.Done() {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) pollPointer() {
	cursor := image.Pt(ebiten.CursorPosition())
	if cursor != g.cursor {
		g.cursor = cursor
		g.app.Dispatch(app.Event{Kind: app.PointerMove, Pos: cursor})
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.app.Dispatch(app.Event{Kind: app.ButtonDown, Pos: cursor})
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.app.Dispatch(app.Event{Kind: app.ButtonUp, Pos: cursor})
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonRight) {
		g.app.Dispatch(app.Event{Kind: app.RightClick, Pos: cursor})
	}
}

func (g *Game) pollKeys() {
	alt := ebiten.IsKeyPressed(ebiten.KeyAlt)
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyF10),
		inpututil.IsKeyJustPressed(ebiten.KeyContextMenu),
		alt && inpututil.IsKeyJustPressed(ebiten.KeySpace):
		g.app.Dispatch(app.Event{Kind: app.MenuKey})
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		g.app.Dispatch(app.Event{Kind: app.Cancel})
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter),
		inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter):
		g.app.Dispatch(app.Event{Kind: app.Confirm})
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp):
		g.app.Dispatch(app.Event{Kind: app.Up})
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown):
		g.app.Dispatch(app.Event{Kind: app.Down})
	}
}

// updatePassThrough lets clicks outside the eyes reach the desktop
func (g *Game) updatePassThrough() {
	pass := g.app.PassThrough(g.cursor)
	if pass == g.passThrough {
		return
	}
	g.passThrough = pass
	ebiten.SetWindowMousePassthrough(pass)
}

// Draw: title strip, eyes, mask, then overlays
func (g *Game) Draw(screen *ebiten.Image) {
	frame := g.app.Frame()

	if g.app.TitleShown() {
		g.chrome.DrawTitle(screen, frame.Size.X)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(frame.Inset.X), float64(frame.Inset.Y))
	screen.DrawImage(g.canvas.Image(), op)

	g.mask.Apply(screen)

	switch g.app.Mode() {
	case gamemode.Menu:
		g.chrome.DrawMenu(screen, g.app.Menu(), g.app.Checked)
	case gamemode.About:
		g.chrome.DrawAbout(screen, frame.Size)
	}
}

// Layout: one logical pixel per window pixel
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.outside = image.Pt(outsideWidth, outsideHeight)
	size := g.app.Frame().Size
	return size.X, size.Y
}
