package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
)

// Level represents the severity of a log message
type Level int

const (
	DEBUG Level = iota
	INFO
	WARN
	ERROR
)

func (l Level) String() string {
	switch l {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel maps "debug", "info", "warn" and "error" to a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return DEBUG, nil
	case "info", "":
		return INFO, nil
	case "warn", "warning":
		return WARN, nil
	case "error":
		return ERROR, nil
	default:
		return INFO, errors.Errorf("unknown log level %q", s)
	}
}

// Output modes.
const (
	ModeCLI  = "cli"
	ModeFile = "file"
)

const keepArchives = 8

// Logger writes leveled, timestamped lines to the console or to a rotating file
type Logger struct {
	level  Level
	mode   string
	logDir string
	out    io.Writer
	file   *os.File
	color  bool
	mu     sync.Mutex
}

// New creates a logger. In file mode logs go to logDir/current.log and the
// previous run is rotated into logDir/archive.
func New(mode string, level Level, logDir string) *Logger {
	l := &Logger{
		level:  level,
		mode:   mode,
		logDir: logDir,
		out:    os.Stderr,
		color:  true,
	}
	if mode == ModeFile {
		if err := l.openFile(); err != nil {
			fmt.Fprintf(os.Stderr, "logging to stderr: %v\n", err)
		}
	}
	return l
}

// NewWriter creates a plain logger writing to w, without colors.
func NewWriter(w io.Writer, level Level) *Logger {
	return &Logger{level: level, mode: ModeCLI, out: w}
}

// Discard returns a logger that drops everything.
func Discard() *Logger {
	return NewWriter(io.Discard, ERROR+1)
}

func (l *Logger) openFile() error {
	if err := os.MkdirAll(l.logDir, 0755); err != nil {
		return errors.Wrap(err, "create log directory")
	}
	l.rotate()

	f, err := os.OpenFile(filepath.Join(l.logDir, "current.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return errors.Wrap(err, "open log file")
	}
	l.file = f
	l.out = f
	l.color = false
	return nil
}

// rotate shifts archive/xeyes-N.log up by one and moves current.log to xeyes-1.log
func (l *Logger) rotate() {
	archive := filepath.Join(l.logDir, "archive")
	if err := os.MkdirAll(archive, 0755); err != nil {
		return
	}
	current := filepath.Join(l.logDir, "current.log")
	if _, err := os.Stat(current); err != nil {
		return
	}

	os.Remove(filepath.Join(archive, fmt.Sprintf("xeyes-%d.log", keepArchives)))
	for i := keepArchives - 1; i >= 1; i-- {
		old := filepath.Join(archive, fmt.Sprintf("xeyes-%d.log", i))
		if _, err := os.Stat(old); err == nil {
			os.Rename(old, filepath.Join(archive, fmt.Sprintf("xeyes-%d.log", i+1)))
		}
	}
	os.Rename(current, filepath.Join(archive, "xeyes-1.log"))
}

func (l *Logger) log(level Level, format string, args ...interface{}) {
	if l == nil || level < l.level {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	ts := time.Now().Format("15:04:05.000")
	msg := fmt.Sprintf(format, args...)

	if !l.color {
		fmt.Fprintf(l.out, "[%s] [%s] %s\n", ts, level, msg)
		return
	}

	const (
		reset  = "\033[0m"
		blue   = "\033[0;34m"
		green  = "\033[0;32m"
		yellow = "\033[1;33m"
		red    = "\033[0;31m"
	)
	var c string
	switch level {
	case DEBUG:
		c = blue
	case INFO:
		c = green
	case WARN:
		c = yellow
	case ERROR:
		c = red
	default:
		c = reset
	}
	fmt.Fprintf(l.out, "%s[%s] [%s]%s %s\n", c, ts, level, reset, msg)
}

// Debug logs a debug message
func (l *Logger) Debug(format string, args ...interface{}) {
	l.log(DEBUG, format, args...)
}

// Info logs an info message
func (l *Logger) Info(format string, args ...interface{}) {
	l.log(INFO, format, args...)
}

// Warn logs a warning message
func (l *Logger) Warn(format string, args ...interface{}) {
	l.log(WARN, format, args...)
}

// Error logs an error message
func (l *Logger) Error(format string, args ...interface{}) {
	l.log(ERROR, format, args...)
}

// Close closes the log file, if any
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file != nil {
		err := l.file.Close()
		l.file = nil
		l.out = os.Stderr
		return err
	}
	return nil
}
