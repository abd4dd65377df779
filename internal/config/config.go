package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Config holds everything read at startup
type Config struct {
	// Placement requested on the command line
	Geometry Geometry
	Monitor  int

	Window  WindowConfig
	Tracker TrackerConfig
	Log     LogConfig
}

// WindowConfig holds window behavior
type WindowConfig struct {
	AlwaysOnTop     bool
	ShowTitle       bool
	LegacyTitleClip bool // leave the window rectangular while the title is shown
}

// TrackerConfig holds cursor polling settings
type TrackerConfig struct {
	TPS int // cursor samples per second
}

// LogConfig holds logging settings
type LogConfig struct {
	Level string
	Mode  string // "cli" or "file"
	Dir   string
}

// TPS bounds.
const (
	MinTPS = 5
	MaxTPS = 240
)

// Default returns a Config with the built-in defaults
func Default() *Config {
	return &Config{
		Geometry: DefaultGeometry(),
		Monitor:  DefaultMonitor,
		Window: WindowConfig{
			AlwaysOnTop: true,
			ShowTitle:   true,
		},
		Tracker: TrackerConfig{TPS: 60},
		Log: LogConfig{
			Level: "info",
			Mode:  "cli",
			Dir:   "log",
		},
	}
}

// SetDefaults registers the defaults on v so env and file values layer on top.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("window.always_on_top", d.Window.AlwaysOnTop)
	v.SetDefault("window.show_title", d.Window.ShowTitle)
	v.SetDefault("window.legacy_title_clip", d.Window.LegacyTitleClip)
	v.SetDefault("tracker.tps", d.Tracker.TPS)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.mode", d.Log.Mode)
	v.SetDefault("log.dir", d.Log.Dir)
}

// NewViper returns a viper instance configured by Configure.
func NewViper(file string) *viper.Viper {
	v := viper.New()
	Configure(v, file)
	return v
}

// Configure sets defaults on v, makes it read XEYES_* variables and points it
// at the config file. file overrides the search path when not empty.
func Configure(v *viper.Viper, file string) {
	SetDefaults(v)

	v.SetEnvPrefix("XEYES")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		return
	}
	v.SetConfigName("xeyes")
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		v.AddConfigPath(filepath.Join(dir, "xeyes"))
	}
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "xeyes"))
	}
	v.AddConfigPath(".")
}

// Load reads the config file if there is one and decodes v into a Config.
// A missing file is fine; an unreadable or malformed one is not.
func Load(v *viper.Viper) (*Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, errors.Wrap(err, "read config file")
		}
	}

	cfg := Default()
	cfg.Window.AlwaysOnTop = v.GetBool("window.always_on_top")
	cfg.Window.ShowTitle = v.GetBool("window.show_title")
	cfg.Window.LegacyTitleClip = v.GetBool("window.legacy_title_clip")
	cfg.Tracker.TPS = v.GetInt("tracker.tps")
	cfg.Log.Level = v.GetString("log.level")
	cfg.Log.Mode = v.GetString("log.mode")
	cfg.Log.Dir = v.GetString("log.dir")

	cfg.Tracker.TPS = clampTPS(cfg.Tracker.TPS)
	return cfg, nil
}

func clampTPS(tps int) int {
	if tps < MinTPS {
		return MinTPS
	}
	if tps > MaxTPS {
		return MaxTPS
	}
	return tps
}

// Validate checks the parts of the config that can be wrong after loading
func (c *Config) Validate() error {
	if c.Monitor < DefaultMonitor || c.Monitor > MaxMonitor {
		return fmt.Errorf("monitor must be between %d and %d, got %d", DefaultMonitor, MaxMonitor, c.Monitor)
	}
	if c.Log.Mode != "cli" && c.Log.Mode != "file" {
		return fmt.Errorf("log mode must be cli or file, got %q", c.Log.Mode)
	}
	if c.Tracker.TPS < MinTPS || c.Tracker.TPS > MaxTPS {
		return fmt.Errorf("tps must be between %d and %d, got %d", MinTPS, MaxTPS, c.Tracker.TPS)
	}
	return nil
}

// String returns a string representation of the config
func (c *Config) String() string {
	return fmt.Sprintf(`Configuration:
  Geometry: %dx%d+%d+%d
  Monitor: %d
  Window:
    Always On Top: %v
    Show Title: %v
    Legacy Title Clip: %v
  Tracker:
    TPS: %d
  Log:
    Level: %s
    Mode: %s`,
		c.Geometry.Size.X, c.Geometry.Size.Y, c.Geometry.Offset.X, c.Geometry.Offset.Y,
		c.Monitor,
		c.Window.AlwaysOnTop,
		c.Window.ShowTitle,
		c.Window.LegacyTitleClip,
		c.Tracker.TPS,
		c.Log.Level,
		c.Log.Mode,
	)
}
