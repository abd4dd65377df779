package config

import "xeyes/internal/logging"

// X-style option names accepted with a single dash.
var xOptions = map[string]string{
	"-geometry": "--geometry",
	"-monitor":  "--monitor",
}

var longOptions = map[string]bool{
	"--geometry": true,
	"--monitor":  true,
}

// NormalizeArgs rewrites X-style single-dash options into long flags and drops
// a trailing option that has no value, which X toolkits silently ignore.
func NormalizeArgs(args []string) []string {
	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		a := args[i]
		long, isX := xOptions[a]
		if !isX {
			if !longOptions[a] {
				out = append(out, a)
				continue
			}
			long = a
		}
		if i == len(args)-1 {
			break
		}
		// The next argument is always the value, even if it looks like an option.
		out = append(out, long+"="+args[i+1])
		i++
	}
	return out
}

// ApplyOptions folds -geometry and -monitor values into cfg in the order they
// were given. Malformed values are skipped and leave earlier values in place.
func ApplyOptions(cfg *Config, geometries, monitors []string, log *logging.Logger) {
	for _, g := range geometries {
		if !ApplyGeometry(&cfg.Geometry, g) {
			log.Debug("ignoring malformed geometry %q", g)
		}
	}
	for _, m := range monitors {
		n, ok := ParseMonitor(m)
		if !ok {
			log.Debug("ignoring malformed monitor %q", m)
			continue
		}
		cfg.Monitor = n
	}
}
