package display

import (
	"image"
	"testing"

	"xeyes/internal/config"
)

var (
	single = []Monitor{{Name: "eDP-1", Bounds: image.Rect(0, 0, 1920, 1080)}}
	dual   = []Monitor{
		{Name: "eDP-1", Bounds: image.Rect(0, 0, 1920, 1080)},
		{Name: "HDMI-1", Bounds: image.Rect(1920, 0, 3840, 1440)},
	}
)

func geom(w, h, x, y int) config.Geometry {
	return config.Geometry{Size: image.Pt(w, h), Offset: image.Pt(x, y)}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name    string
		g       config.Geometry
		monitor int
		mons    []Monitor
		pos     image.Point
		size    image.Point
		onMon   int
		offset  image.Point
		def     bool
	}{
		{
			name: "defaults", g: config.DefaultGeometry(), monitor: 1, mons: single,
			pos: image.Pt(0, 0), size: image.Pt(150, 100), onMon: 0, offset: image.Pt(0, 0),
		},
		{
			name: "second monitor offset", g: geom(300, 200, 50, 50), monitor: 2, mons: dual,
			pos: image.Pt(1970, 50), size: image.Pt(300, 200), onMon: 1, offset: image.Pt(50, 50),
		},
		{
			name: "monitor out of range", g: geom(300, 200, 50, 50), monitor: 2, mons: single,
			pos: image.Pt(0, 0), size: image.Pt(150, 100), onMon: 0, offset: image.Pt(0, 0), def: true,
		},
		{
			name: "off screen", g: geom(300, 200, 5000, 5000), monitor: 1, mons: single,
			pos: image.Pt(0, 0), size: image.Pt(150, 100), onMon: 0, offset: image.Pt(0, 0), def: true,
		},
		{
			name: "negative offset", g: geom(300, 200, -10, 0), monitor: 1, mons: single,
			pos: image.Pt(0, 0), size: image.Pt(150, 100), onMon: 0, offset: image.Pt(0, 0), def: true,
		},
		{
			name: "far edge is inside", g: geom(300, 200, 1920, 1080), monitor: 1, mons: single,
			pos: image.Pt(1920, 1080), size: image.Pt(300, 200), onMon: 0, offset: image.Pt(1920, 1080),
		},
		{
			name: "offset spills onto the next monitor", g: geom(150, 100, 2000, 10), monitor: 1, mons: dual,
			pos: image.Pt(2000, 10), size: image.Pt(150, 100), onMon: 1, offset: image.Pt(80, 10),
		},
		{
			name: "oversized request capped to the screens", g: geom(20000, 20000, 10, 10), monitor: 1, mons: dual,
			pos: image.Pt(10, 10), size: image.Pt(3840, 1440), onMon: 0, offset: image.Pt(10, 10),
		},
		{
			name: "no monitors", g: geom(300, 200, 50, 50), monitor: 1, mons: nil,
			pos: image.Pt(0, 0), size: image.Pt(150, 100), onMon: -1, offset: image.Pt(0, 0), def: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Resolve(tt.g, tt.monitor, tt.mons)
			if p.Position != tt.pos || p.Size != tt.size {
				t.Errorf("placement = %v %v, want %v %v", p.Position, p.Size, tt.pos, tt.size)
			}
			if p.Monitor != tt.onMon || p.Offset != tt.offset {
				t.Errorf("monitor %d offset %v, want %d %v", p.Monitor, p.Offset, tt.onMon, tt.offset)
			}
			if p.Defaulted != tt.def {
				t.Errorf("Defaulted = %v, want %v", p.Defaulted, tt.def)
			}
		})
	}
}

func TestUnion(t *testing.T) {
	if got := Union(dual); got != image.Rect(0, 0, 3840, 1440) {
		t.Errorf("Union = %v", got)
	}
	if got := Union(nil); !got.Empty() {
		t.Errorf("Union(nil) = %v", got)
	}
}

func TestNormalize(t *testing.T) {
	in := []Monitor{
		{Name: "DP-1", Bounds: image.Rect(0, 0, 1920, 1080)},
		{Name: "DP-2", Bounds: image.Rect(0, 0, 1920, 1080)}, // mirror of DP-1
		{Name: "off", Bounds: image.Rectangle{}},
		{Name: "HDMI-1", Bounds: image.Rect(1920, 0, 3840, 1080)},
	}
	got := normalize(in, "HDMI-1")

	want := []string{"HDMI-1", "DP-1"}
	if len(got) != len(want) {
		t.Fatalf("normalize = %+v", got)
	}
	for i := range want {
		if got[i].Name != want[i] {
			t.Errorf("monitor %d = %s, want %s", i, got[i].Name, want[i])
		}
	}
}

func TestNormalizeCaps(t *testing.T) {
	var in []Monitor
	for i := 0; i < config.MaxMonitor+5; i++ {
		in = append(in, Monitor{Bounds: image.Rect(i*100, 0, i*100+100, 100)})
	}
	if got := normalize(in, ""); len(got) != config.MaxMonitor {
		t.Errorf("normalize kept %d monitors, want %d", len(got), config.MaxMonitor)
	}
}

type fakeMonitor string

func (f fakeMonitor) Name() string { return string(f) }

func TestMatchMonitor(t *testing.T) {
	cands := []fakeMonitor{"A", "B", "C"}

	if got := matchMonitor(cands, "C", 0); got != "C" {
		t.Errorf("by name = %q", got)
	}
	if got := matchMonitor(cands, "Z", 1); got != "B" {
		t.Errorf("by index = %q", got)
	}
	if got := matchMonitor(cands, "", 7); got != "" {
		t.Errorf("no match = %q", got)
	}
}
