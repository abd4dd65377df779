// Package app routes window events to the eyes, the window shape and the
// system menu.
package app

import (
	"image"
	"time"

	"xeyes/internal/config"
	"xeyes/internal/entity"
	"xeyes/internal/gamemode"
	"xeyes/internal/logging"
	"xeyes/internal/shape"
	"xeyes/internal/tracker"
)

// Double-click limits.
const (
	DoubleClickTime     = 500 * time.Millisecond
	DoubleClickDistance = 4
)

// Options configures a new App.
type Options struct {
	Client      image.Point // initial client area size
	ShowTitle   bool
	Legacy      bool
	AlwaysOnTop bool

	Applier    shape.Applier
	Terminator Terminator
	Log        *logging.Logger

	// Now defaults to time.Now.
	Now func() time.Time
}

type handler func(a *App, ev Event)

// App is the whole running program state.
type App struct {
	host Host
	surf Surface
	term Terminator
	log  *logging.Logger
	now  func() time.Time

	clip  *shape.Clipper
	eyes  *tracker.Tracker
	modes gamemode.Machine
	drag  gamemode.Drag
	menu  *Menu

	client   image.Point
	lastWin  image.Point // window position seen by the last tick
	floating bool
	dirty    bool
	done     bool

	lastClick    time.Time
	lastClickPos image.Point
	clicked      bool

	handlers map[EventKind]handler
}

// New builds the app. Nothing touches the host until Start.
func New(host Host, surf Surface, opts Options) *App {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Log == nil {
		opts.Log = logging.Discard()
	}
	mode := shape.TitleHidden
	if opts.ShowTitle {
		mode = shape.TitleShown
	}
	client := clampClient(opts.Client)

	a := &App{
		host:     host,
		surf:     surf,
		term:     opts.Terminator,
		log:      opts.Log,
		now:      opts.Now,
		clip:     shape.NewClipper(opts.Applier, mode, opts.Legacy, opts.Log),
		eyes:     tracker.New(client.X, client.Y),
		client:   client,
		floating: opts.AlwaysOnTop,
	}
	a.handlers = map[EventKind]handler{
		Tick:         (*App).onTick,
		Resize:       (*App).onResize,
		ButtonDown:   (*App).onButtonDown,
		ButtonUp:     (*App).onButtonUp,
		PointerMove:  (*App).onPointerMove,
		RightClick:   (*App).onRightClick,
		MenuKey:      (*App).onMenuKey,
		Cancel:       (*App).onCancel,
		Confirm:      (*App).onConfirm,
		Up:           (*App).onUp,
		Down:         (*App).onDown,
		DefaultSize:  (*App).onDefaultSize,
		AlwaysOnTop:  (*App).onAlwaysOnTop,
		TerminateAll: (*App).onTerminateAll,
		About:        (*App).onAbout,
		Close:        (*App).onClose,
	}
	return a
}

// Start applies the initial region and stacking, and schedules the first paint.
func (a *App) Start() {
	a.host.SetFloating(a.floating)
	a.clip.Apply(a.Frame())
	a.dirty = true
	a.log.Debug("started: client %v, %v, floating %v", a.client, a.clip.Mode, a.floating)
}

// Dispatch routes ev to its handler. Events after Close are dropped.
func (a *App) Dispatch(ev Event) {
	if a.done {
		return
	}
	h, ok := a.handlers[ev.Kind]
	if !ok {
		a.log.Debug("unhandled event %v", ev.Kind)
		return
	}
	h(a, ev)
}

// Done reports whether the app has been closed.
func (a *App) Done() bool { return a.done }

// Frame is the window layout: the header strip on top of the client area.
func (a *App) Frame() shape.Frame {
	inset := image.Pt(0, HeaderHeight)
	return shape.Frame{
		Size:   a.client.Add(inset),
		Client: a.client,
		Inset:  inset,
	}
}

// Region is the visible window region last applied.
func (a *App) Region() shape.Region { return a.clip.Current() }

// Mode is the current interaction mode.
func (a *App) Mode() gamemode.Mode { return a.modes.Mode() }

// Menu returns the open system menu, or nil.
func (a *App) Menu() *Menu {
	if !a.modes.Is(gamemode.Menu) {
		return nil
	}
	return a.menu
}

// TitleShown reports whether the title strip is part of the window.
func (a *App) TitleShown() bool { return a.clip.Mode == shape.TitleShown }

// Floating reports whether the window is kept above others.
func (a *App) Floating() bool { return a.floating }

// Client is the client area size.
func (a *App) Client() image.Point { return a.client }

// Eyes returns the current eye state.
func (a *App) Eyes() entity.Pair { return a.eyes.Eyes() }

// Checked reports the check mark state of a checkable menu command.
func (a *App) Checked(cmd EventKind) bool {
	return cmd == AlwaysOnTop && a.floating
}

// PassThrough reports whether pointer input at p, in window coordinates,
// should fall through to whatever is below the window.
func (a *App) PassThrough(p image.Point) bool {
	if !a.modes.Is(gamemode.Idle) {
		return false
	}
	return !a.clip.Current().Contains(p)
}

func (a *App) origin() image.Point {
	return a.host.WindowPosition().Add(a.Frame().Inset)
}

func (a *App) onTick(Event) {
	cursor := a.host.CursorPosition()
	win := a.host.WindowPosition()
	moved := win != a.lastWin
	a.lastWin = win
	if a.dirty {
		a.repaint(cursor)
		return
	}
	// A moved window changes the eyes' view of a still cursor.
	a.eyes.Update(a.surf, cursor, a.origin(), moved)
}

func (a *App) repaint(cursor image.Point) {
	a.dirty = false
	if a.clip.Legacy && a.TitleShown() {
		a.surf.FillRect(image.Rect(0, 0, a.client.X, a.client.Y), tracker.ColWhite)
	}
	a.eyes.Repaint(a.surf, a.client.X, a.client.Y, cursor, a.origin())
}

func (a *App) onResize(ev Event) {
	client := clampClient(ev.Size.Sub(a.Frame().Inset))
	if client == a.client {
		return
	}
	a.resize(client)
}

func (a *App) resize(client image.Point) {
	a.client = client
	a.clip.Apply(a.Frame())
	a.dirty = true
	a.log.Debug("client resized to %v", client)
}

func (a *App) toggleTitle() {
	a.clip.Mode = a.clip.Mode.Toggle()
	a.clip.Apply(a.Frame())
	a.dirty = true
	a.log.Debug("%v", a.clip.Mode)
}

func (a *App) onButtonDown(ev Event) {
	switch a.modes.Mode() {
	case gamemode.Menu:
		if i, ok := a.menu.ItemAt(ev.Pos); ok {
			a.activate(i)
			return
		}
		a.modes.To(gamemode.Idle)
	case gamemode.About:
		_, okBox := AboutLayout(a.Frame().Size)
		if ev.Pos.In(okBox) {
			a.modes.To(gamemode.Idle)
		}
	case gamemode.Idle:
		if a.TitleShown() {
			icon, closeBox := TitleBoxes(a.Frame().Size.X)
			if ev.Pos.In(icon) {
				a.openMenu()
				return
			}
			if ev.Pos.In(closeBox) {
				a.Dispatch(Event{Kind: Close})
				return
			}
		}
		if a.doubleClick(ev.Pos) {
			a.toggleTitle()
			return
		}
		a.drag = gamemode.Drag{Grab: ev.Pos}
		a.modes.To(gamemode.Dragging)
	}
}

// doubleClick records a press at p and reports whether it completes a double-click.
func (a *App) doubleClick(p image.Point) bool {
	now := a.now()
	d := p.Sub(a.lastClickPos)
	double := a.clicked &&
		now.Sub(a.lastClick) <= DoubleClickTime &&
		abs(d.X) <= DoubleClickDistance && abs(d.Y) <= DoubleClickDistance

	if double {
		a.clicked = false
		return true
	}
	a.clicked = true
	a.lastClick = now
	a.lastClickPos = p
	return false
}

func (a *App) onButtonUp(Event) {
	if a.modes.Is(gamemode.Dragging) {
		a.modes.To(gamemode.Idle)
	}
}

func (a *App) onPointerMove(ev Event) {
	switch a.modes.Mode() {
	case gamemode.Dragging:
		win := a.host.WindowPosition()
		if target := a.drag.Target(win, ev.Pos); target != win {
			a.host.SetWindowPosition(target)
		}
	case gamemode.Menu:
		if i, ok := a.menu.ItemAt(ev.Pos); ok {
			a.menu.Hover = i
		} else {
			a.menu.Hover = -1
		}
	}
}

func (a *App) onRightClick(Event) {
	switch a.modes.Mode() {
	case gamemode.Idle:
		a.toggleTitle()
	case gamemode.Menu:
		a.modes.To(gamemode.Idle)
	}
}

func (a *App) onMenuKey(Event) {
	switch a.modes.Mode() {
	case gamemode.Idle:
		a.openMenu()
	case gamemode.Menu:
		a.modes.To(gamemode.Idle)
	}
}

func (a *App) onCancel(Event) {
	if a.modes.Mode().Overlay() {
		a.modes.To(gamemode.Idle)
	}
}

func (a *App) onConfirm(Event) {
	switch a.modes.Mode() {
	case gamemode.Menu:
		if a.menu.Hover >= 0 {
			a.activate(a.menu.Hover)
		}
	case gamemode.About:
		a.modes.To(gamemode.Idle)
	}
}

func (a *App) onUp(Event) {
	if a.modes.Is(gamemode.Menu) {
		a.menu.Step(-1)
	}
}

func (a *App) onDown(Event) {
	if a.modes.Is(gamemode.Menu) {
		a.menu.Step(1)
	}
}

func (a *App) openMenu() {
	if a.modes.To(gamemode.Menu) {
		a.menu = NewMenu(image.Pt(0, HeaderHeight))
	}
}

// activate closes the menu and runs item i.
func (a *App) activate(i int) {
	it := a.menu.Items[i]
	if it.Separator {
		return
	}
	if it.Cmd != About {
		a.modes.To(gamemode.Idle)
	}
	a.Dispatch(Event{Kind: it.Cmd})
}

func (a *App) onDefaultSize(Event) {
	client := image.Pt(config.DefaultWidth, config.DefaultHeight)
	a.host.SetWindowSize(client.Add(a.Frame().Inset))
	a.resize(client)
}

func (a *App) onAlwaysOnTop(Event) {
	a.floating = !a.floating
	a.host.SetFloating(a.floating)
	a.log.Debug("always on top: %v", a.floating)
}

func (a *App) onTerminateAll(Event) {
	if a.term == nil {
		a.Dispatch(Event{Kind: Close})
		return
	}
	n, err := a.term.TerminateAll()
	if err != nil {
		a.log.Info("terminate all: %v", err)
	}
	if err != nil || n == 0 {
		a.Dispatch(Event{Kind: Close})
		return
	}
	a.log.Info("asked %d windows to close", n)
}

func (a *App) onAbout(Event) {
	a.modes.To(gamemode.About)
}

func (a *App) onClose(Event) {
	a.log.Debug("closing")
	a.done = true
}

func clampClient(p image.Point) image.Point {
	p.X = min(max(p.X, entity.MinClientWidth), entity.MaxClientWidth)
	p.Y = min(max(p.Y, entity.MinClientHeight), entity.MaxClientHeight)
	return p
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
