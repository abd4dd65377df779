// Package xconn is a small X11 client used for monitor and window queries.
// Connections are short lived: open, query, close.
package xconn

import (
	"encoding/binary"
	"os"
	"strings"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
	"github.com/pkg/errors"
)

// Client wraps one X connection and its interned atoms.
type Client struct {
	Conn  *xgb.Conn
	Root  xproto.Window
	atoms map[string]xproto.Atom
}

var startupAtoms = []string{
	"_NET_CLIENT_LIST",
	"_NET_WM_NAME",
	"WM_NAME",
	"WM_CLASS",
	"WM_PROTOCOLS",
	"WM_DELETE_WINDOW",
	"UTF8_STRING",
}

// Open connects to $DISPLAY and interns the atoms the package uses.
func Open() (*Client, error) {
	if os.Getenv("DISPLAY") == "" {
		return nil, ErrNoDisplay
	}
	conn, err := xgb.NewConn()
	if err != nil {
		return nil, errors.Wrap(err, "connect to X server")
	}

	c := &Client{
		Conn:  conn,
		Root:  xproto.Setup(conn).DefaultScreen(conn).Root,
		atoms: make(map[string]xproto.Atom),
	}
	for _, name := range startupAtoms {
		if _, err := c.Atom(name); err != nil {
			conn.Close()
			return nil, err
		}
	}
	return c, nil
}

func (c *Client) Close() {
	c.Conn.Close()
}

// Atom returns the atom for name, interning it on first use.
func (c *Client) Atom(name string) (xproto.Atom, error) {
	if a, ok := c.atoms[name]; ok {
		return a, nil
	}
	reply, err := xproto.InternAtom(c.Conn, false, uint16(len(name)), name).Reply()
	if err != nil {
		return 0, errors.Wrapf(err, "intern atom %s", name)
	}
	c.atoms[name] = reply.Atom
	return reply.Atom, nil
}

// Property reads up to length 32-bit units of a window property.
func (c *Client) Property(w xproto.Window, atom, typ xproto.Atom, length uint32) ([]byte, error) {
	reply, err := xproto.GetProperty(c.Conn, false, w, atom, typ, 0, length).Reply()
	if err != nil {
		return nil, err
	}
	return reply.Value, nil
}

// ClientList returns the managed top-level windows from _NET_CLIENT_LIST, or
// the root window's children when no window manager publishes the list.
func (c *Client) ClientList() ([]xproto.Window, error) {
	data, err := c.Property(c.Root, c.atoms["_NET_CLIENT_LIST"], xproto.AtomWindow, 1<<16)
	if err == nil && len(data) >= 4 {
		return decodeWindows(data), nil
	}

	tree, err := xproto.QueryTree(c.Conn, c.Root).Reply()
	if err != nil {
		return nil, errors.Wrap(err, "query root children")
	}
	return tree.Children, nil
}

// WindowName returns _NET_WM_NAME, falling back to WM_NAME.
func (c *Client) WindowName(w xproto.Window) string {
	data, err := c.Property(w, c.atoms["_NET_WM_NAME"], c.atoms["UTF8_STRING"], 256)
	if err == nil && len(data) > 0 {
		return strings.TrimRight(string(data), "\x00")
	}

	data, err = c.Property(w, c.atoms["WM_NAME"], xproto.AtomString, 256)
	if err == nil && len(data) > 0 {
		return strings.TrimRight(string(data), "\x00")
	}
	return ""
}

// WindowClass returns the two WM_CLASS strings.
func (c *Client) WindowClass(w xproto.Window) (instance, class string) {
	data, err := c.Property(w, c.atoms["WM_CLASS"], xproto.AtomString, 256)
	if err != nil {
		return "", ""
	}
	return splitClass(data)
}

// SendDelete asks w to close itself through WM_DELETE_WINDOW.
func (c *Client) SendDelete(w xproto.Window) error {
	ev := xproto.ClientMessageEvent{
		Format: 32,
		Window: w,
		Type:   c.atoms["WM_PROTOCOLS"],
		Data: xproto.ClientMessageDataUnionData32New([]uint32{
			uint32(c.atoms["WM_DELETE_WINDOW"]),
			uint32(xproto.TimeCurrentTime),
			0, 0, 0,
		}),
	}
	err := xproto.SendEventChecked(c.Conn, false, w, xproto.EventMaskNoEvent, string(ev.Bytes())).Check()
	return errors.Wrapf(err, "send WM_DELETE_WINDOW to 0x%x", uint32(w))
}

func decodeWindows(data []byte) []xproto.Window {
	out := make([]xproto.Window, 0, len(data)/4)
	for i := 0; i+4 <= len(data); i += 4 {
		out = append(out, xproto.Window(binary.LittleEndian.Uint32(data[i:])))
	}
	return out
}

func splitClass(data []byte) (instance, class string) {
	parts := strings.Split(strings.TrimRight(string(data), "\x00"), "\x00")
	if len(parts) >= 1 {
		instance = parts[0]
	}
	if len(parts) >= 2 {
		class = parts[1]
	}
	return instance, class
}
