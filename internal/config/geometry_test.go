package config

import (
	"image"
	"reflect"
	"testing"

	"xeyes/internal/logging"
)

func TestApplyGeometry(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  Geometry
		ok    bool
	}{
		{"full", "300x200+50+60", Geometry{Offset: image.Pt(50, 60), Size: image.Pt(300, 200)}, true},
		{"size only", "300x200", Geometry{Offset: image.Pt(0, 0), Size: image.Pt(300, 200)}, true},
		{"offset only", "+50+60", Geometry{Offset: image.Pt(50, 60), Size: image.Pt(150, 100)}, true},
		{"negative offset", "+-20+10", Geometry{Offset: image.Pt(-20, 10), Size: image.Pt(150, 100)}, true},
		{"partial offset keeps size", "300x200+50", Geometry{Offset: image.Pt(0, 0), Size: image.Pt(300, 200)}, true},
		{"x-style negative falls back to size", "300x200-10-10", Geometry{Offset: image.Pt(0, 0), Size: image.Pt(300, 200)}, true},
		{"garbage", "big", DefaultGeometry(), false},
		{"empty", "", DefaultGeometry(), false},
		{"missing height", "300x", DefaultGeometry(), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := DefaultGeometry()
			ok := ApplyGeometry(&g, tt.token)
			if ok != tt.ok {
				t.Errorf("ApplyGeometry(%q) ok = %v, want %v", tt.token, ok, tt.ok)
			}
			if g != tt.want {
				t.Errorf("ApplyGeometry(%q) = %+v, want %+v", tt.token, g, tt.want)
			}
		})
	}
}

func TestParseMonitor(t *testing.T) {
	tests := []struct {
		token string
		want  int
		ok    bool
	}{
		{"2", 2, true},
		{"32", 32, true},
		{"33", 1, true},
		{"0", 1, true},
		{"-3", 1, true},
		{"two", 1, false},
	}
	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			n, ok := ParseMonitor(tt.token)
			if n != tt.want || ok != tt.ok {
				t.Errorf("ParseMonitor(%q) = %d, %v, want %d, %v", tt.token, n, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestNormalizeArgs(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{
			"x-style",
			[]string{"-geometry", "300x200+50+50", "-monitor", "2"},
			[]string{"--geometry=300x200+50+50", "--monitor=2"},
		},
		{
			"long flags pass through",
			[]string{"--geometry", "300x200", "--log-level", "debug"},
			[]string{"--geometry=300x200", "--log-level", "debug"},
		},
		{
			"dangling option dropped",
			[]string{"-monitor", "2", "-geometry"},
			[]string{"--monitor=2"},
		},
		{
			"option as value",
			[]string{"-geometry", "-monitor", "2"},
			[]string{"--geometry=-monitor", "2"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeArgs(tt.in); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("NormalizeArgs(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestApplyOptionsKeepsLastGoodValue(t *testing.T) {
	cfg := Default()
	ApplyOptions(cfg,
		[]string{"300x200+5+5", "nonsense"},
		[]string{"3", "x"},
		logging.Discard(),
	)

	if want := (Geometry{Offset: image.Pt(5, 5), Size: image.Pt(300, 200)}); cfg.Geometry != want {
		t.Errorf("Geometry = %+v, want %+v", cfg.Geometry, want)
	}
	if cfg.Monitor != 3 {
		t.Errorf("Monitor = %d, want 3", cfg.Monitor)
	}
}
