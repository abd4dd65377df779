package instances

import (
	"os"
	"testing"

	"xeyes/internal/logging"
)

func TestIdentityMatch(t *testing.T) {
	id := Identity{Title: "Xeyes", Class: "xeyes"}

	tests := []struct {
		name  string
		title string
		class string
		want  bool
	}{
		{"same title", "Xeyes", "", true},
		{"class any case", "something else", "XEYES", true},
		{"title with suffix", "Xeyes - 2", "", false},
		{"other class same title", "Xeyes", "GLFW30", true},
		{"unrelated", "Terminal", "kitty", false},
		{"empty window", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := id.Match(tt.title, tt.class); got != tt.want {
				t.Errorf("Match(%q, %q) = %v, want %v", tt.title, tt.class, got, tt.want)
			}
		})
	}
}

func TestEmptyIdentityMatchesNothing(t *testing.T) {
	var id Identity
	if id.Match("", "") || id.Match("Xeyes", "xeyes") {
		t.Error("empty identity matched a window")
	}
}

func TestTerminateAllNoDisplay(t *testing.T) {
	if os.Getenv("DISPLAY") != "" {
		t.Skip("DISPLAY set; would close real windows")
	}
	term := New(Identity{Title: "xeyes-test-window-that-does-not-exist"}, logging.Discard())
	if n, err := term.TerminateAll(); err == nil && n != 0 {
		t.Errorf("TerminateAll = %d, nil", n)
	}
}
