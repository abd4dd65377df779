package config

import "image"

// Geometry is a requested window placement. Offset is relative to the chosen
// monitor's origin and Size is the client area size.
type Geometry struct {
	Offset image.Point
	Size   image.Point
}

// Startup defaults.
const (
	DefaultX       = 0
	DefaultY       = 0
	DefaultWidth   = 150
	DefaultHeight  = 100
	DefaultMonitor = 1
	MaxMonitor     = 32
)

// DefaultGeometry is the placement used when nothing else applies.
func DefaultGeometry() Geometry {
	return Geometry{
		Offset: image.Pt(DefaultX, DefaultY),
		Size:   image.Pt(DefaultWidth, DefaultHeight),
	}
}

// ApplyGeometry updates g from an X-style geometry token:
//
//	WIDTHxHEIGHT+XOFF+YOFF
//	WIDTHxHEIGHT
//	+XOFF+YOFF
//
// The forms are tried in that order, each with sscanf semantics, so trailing
// garbage after a complete match is ignored. It reports whether any form matched.
func ApplyGeometry(g *Geometry, token string) bool {
	if v, ok := scan(token, "%dx%d+%d+%d"); ok {
		g.Size = image.Pt(v[0], v[1])
		g.Offset = image.Pt(v[2], v[3])
		return true
	}
	if v, ok := scan(token, "%dx%d"); ok {
		g.Size = image.Pt(v[0], v[1])
		return true
	}
	if v, ok := scan(token, "+%d+%d"); ok {
		g.Offset = image.Pt(v[0], v[1])
		return true
	}
	return false
}

// ParseMonitor returns the monitor number in token, or DefaultMonitor when it is
// out of [1, MaxMonitor]. ok is false when token holds no number at all.
func ParseMonitor(token string) (n int, ok bool) {
	v, ok := scan(token, "%d")
	if !ok {
		return DefaultMonitor, false
	}
	if v[0] < DefaultMonitor || v[0] > MaxMonitor {
		return DefaultMonitor, true
	}
	return v[0], true
}

// scan matches s against format, where %d is an optionally signed decimal
// preceded by optional spaces and every other byte must match literally.
// Only a complete match of format succeeds.
func scan(s, format string) ([]int, bool) {
	var out []int
	i := 0
	for f := 0; f < len(format); f++ {
		if format[f] == '%' && f+1 < len(format) && format[f+1] == 'd' {
			f++
			n, next, ok := scanInt(s, i)
			if !ok {
				return nil, false
			}
			out = append(out, n)
			i = next
			continue
		}
		if i >= len(s) || s[i] != format[f] {
			return nil, false
		}
		i++
	}
	return out, true
}

func scanInt(s string, i int) (int, int, bool) {
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	neg := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}
	start := i
	n := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		if n < 1<<30 {
			n = n*10 + int(s[i]-'0')
		}
		i++
	}
	if i == start {
		return 0, i, false
	}
	if neg {
		n = -n
	}
	return n, i, true
}
