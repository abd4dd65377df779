package main

import (
	"image"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"xeyes/internal/app"
	"xeyes/internal/assets"
	"xeyes/internal/canvas"
	"xeyes/internal/config"
	"xeyes/internal/dialog"
	"xeyes/internal/display"
	"xeyes/internal/instances"
	"xeyes/internal/logging"
)

const WindowTitle = "Xeyes"

// options are the command-line values that are not bound to viper
type options struct {
	configFile string
	geometries []string
	monitors   []string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		dialog.ShowError(WindowTitle, err, logging.New(logging.ModeCLI, logging.INFO, ""))
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts options
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:   "xeyes [-geometry WxH+X+Y] [-monitor N]",
		Short: "A pair of eyes that follow the pointer",
		Long: `xeyes shows two eyes on the desktop that watch the mouse pointer.
Drag the eyes to move them, right-click or double-click to show or hide
the title strip, and use its menu for the remaining commands.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		FParseErrWhitelist: cobra.FParseErrWhitelist{
			UnknownFlags: true,
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := bindFlags(v, cmd); err != nil {
				return err
			}
			return run(v, opts)
		},
	}

	flags := rootCmd.Flags()
	flags.StringVar(&opts.configFile, "config", "", "config file (default: xeyes.yaml in $XDG_CONFIG_HOME/xeyes, ~/.config/xeyes or .)")
	flags.StringArrayVar(&opts.geometries, "geometry", nil, "window geometry: WIDTHxHEIGHT+XOFF+YOFF, WIDTHxHEIGHT or +XOFF+YOFF")
	flags.StringArrayVar(&opts.monitors, "monitor", nil, "1-based monitor the geometry offset is relative to")
	flags.String("log-level", "info", "log level: debug, info, warn or error")
	flags.Bool("legacy-title-clip", false, "leave the window rectangular while the title strip is shown")
	flags.Int("tps", 60, "cursor samples per second")

	rootCmd.SetArgs(config.NormalizeArgs(os.Args[1:]))
	return rootCmd
}

// flagKeys maps command-line flags to their config keys.
var flagKeys = map[string]string{
	"log-level":         "log.level",
	"legacy-title-clip": "window.legacy_title_clip",
	"tps":               "tracker.tps",
}

func bindFlags(v *viper.Viper, cmd *cobra.Command) error {
	for flag, key := range flagKeys {
		if err := v.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
			return errors.Wrapf(err, "bind --%s", flag)
		}
	}
	return nil
}

func run(v *viper.Viper, opts options) error {
	config.Configure(v, opts.configFile)
	cfg, err := config.Load(v)
	if err != nil {
		return err
	}

	level, levelErr := logging.ParseLevel(cfg.Log.Level)
	log := logging.New(cfg.Log.Mode, level, cfg.Log.Dir)
	defer log.Close()
	if levelErr != nil {
		log.Warn("%v, using info", levelErr)
	}

	config.ApplyOptions(cfg, opts.geometries, opts.monitors, log)
	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "invalid configuration")
	}
	log.Debug("%s", cfg)

	return runWindow(cfg, log)
}

func runWindow(cfg *config.Config, log *logging.Logger) error {
	mons := display.Monitors(log)
	place := display.Resolve(cfg.Geometry, cfg.Monitor, mons)
	if place.Defaulted {
		log.Info("requested placement %dx%d+%d+%d on monitor %d is unavailable, using the default",
			cfg.Geometry.Size.X, cfg.Geometry.Size.Y, cfg.Geometry.Offset.X, cfg.Geometry.Offset.Y, cfg.Monitor)
	}

	mask := &canvas.Mask{}
	cv := canvas.New(place.Size)
	a := app.New(windowHost{}, cv, app.Options{
		Client:      place.Size,
		ShowTitle:   cfg.Window.ShowTitle,
		Legacy:      cfg.Window.LegacyTitleClip,
		AlwaysOnTop: cfg.Window.AlwaysOnTop,
		Applier:     mask,
		Terminator:  instances.New(instances.Identity{Title: WindowTitle, Class: WindowTitle}, log),
		Log:         log,
	})

	frame := a.Frame()
	ebiten.SetWindowTitle(WindowTitle)
	ebiten.SetWindowDecorated(false)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetWindowSize(frame.Size.X, frame.Size.Y)
	ebiten.SetTPS(cfg.Tracker.TPS)
	if icon, err := assets.Icon(); err == nil {
		ebiten.SetWindowIcon([]image.Image{icon})
	} else {
		log.Debug("window icon: %v", err)
	}
	display.Place(place, mons, log)

	a.Start()
	game := NewGame(a, cv, mask, canvas.NewChrome(WindowTitle, assets.AboutLines()), log)

	err := ebiten.RunGameWithOptions(game, &ebiten.RunGameOptions{
		ScreenTransparent: true,
	})
	return errors.Wrap(err, "run window")
}
