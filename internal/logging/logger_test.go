package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriter(&buf, WARN)

	l.Debug("debug %d", 1)
	l.Info("info %d", 2)
	l.Warn("warn %d", 3)
	l.Error("error %d", 4)

	out := buf.String()
	if strings.Contains(out, "debug 1") || strings.Contains(out, "info 2") {
		t.Errorf("messages below WARN were written:\n%s", out)
	}
	if !strings.Contains(out, "[WARN] warn 3") {
		t.Errorf("missing warn line:\n%s", out)
	}
	if !strings.Contains(out, "[ERROR] error 4") {
		t.Errorf("missing error line:\n%s", out)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{"debug", DEBUG, false},
		{"INFO", INFO, false},
		{"", INFO, false},
		{"warning", WARN, false},
		{"error", ERROR, false},
		{"loud", INFO, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestFileModeRotates(t *testing.T) {
	dir := t.TempDir()

	first := New(ModeFile, INFO, dir)
	first.Info("first run")
	if err := first.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}

	second := New(ModeFile, INFO, dir)
	second.Info("second run")
	defer second.Close()

	archived, err := os.ReadFile(filepath.Join(dir, "archive", "xeyes-1.log"))
	if err != nil {
		t.Fatalf("archive not written: %v", err)
	}
	if !strings.Contains(string(archived), "first run") {
		t.Errorf("archive = %q, want first run", archived)
	}

	current, err := os.ReadFile(filepath.Join(dir, "current.log"))
	if err != nil {
		t.Fatalf("current.log not written: %v", err)
	}
	if strings.Contains(string(current), "first run") || !strings.Contains(string(current), "second run") {
		t.Errorf("current.log = %q", current)
	}
}

func TestNilLoggerIsSilent(t *testing.T) {
	var l *Logger
	l.Info("nothing happens")
}

func TestCLIModeWritesToStderr(t *testing.T) {
	l := New(ModeCLI, INFO, "")
	defer l.Close()
	if l.out != os.Stderr {
		t.Errorf("cli logger writes to %v, want stderr", l.out)
	}
}
