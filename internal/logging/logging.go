// Package logging builds the zerolog logger used by the lebedev command.
// Library packages never log; only cmd/ code takes a logger.
package logging

import (
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Environment overrides, applied after file and flag configuration.
const (
	EnvLogLevel   = "LEBEDEV_LOG_LEVEL"
	EnvLogFormat  = "LEBEDEV_LOG_FORMAT"
	EnvLogNoColor = "LEBEDEV_LOG_NOCOLOR"
)

// Output formats.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Config selects level and output format.
type Config struct {
	Level   string
	Format  string
	NoColor bool
}

// Default returns info level, console output, colors on.
func Default() Config {
	return Config{Level: "info", Format: FormatConsole}
}

// ApplyEnv overlays the LEBEDEV_LOG_* variables onto cfg. Unset or
// unparsable values leave the field untouched.
func ApplyEnv(cfg *Config) {
	applyEnvOverrides(cfg, os.Getenv)
}

func applyEnvOverrides(cfg *Config, getenv func(string) string) {
	if raw := getenv(EnvLogLevel); raw != "" {
		if _, ok := ParseLevel(raw); ok {
			cfg.Level = strings.ToLower(strings.TrimSpace(raw))
		}
	}
	switch f := strings.ToLower(strings.TrimSpace(getenv(EnvLogFormat))); f {
	case FormatConsole, FormatJSON:
		cfg.Format = f
	}
	if v, err := strconv.ParseBool(strings.TrimSpace(getenv(EnvLogNoColor))); err == nil {
		cfg.NoColor = v
	}
}

// ParseLevel maps a level name to a zerolog level. The second result is
// false for empty or unknown names.
func ParseLevel(raw string) (zerolog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "trace":
		return zerolog.TraceLevel, true
	case "debug":
		return zerolog.DebugLevel, true
	case "info":
		return zerolog.InfoLevel, true
	case "warn", "warning":
		return zerolog.WarnLevel, true
	case "error":
		return zerolog.ErrorLevel, true
	case "disabled", "off", "none":
		return zerolog.Disabled, true
	default:
		return zerolog.InfoLevel, false
	}
}

// New returns a logger writing to w, tagged with app.
func New(w io.Writer, app string, cfg Config) zerolog.Logger {
	out := w
	if cfg.Format != FormatJSON {
		out = zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: time.RFC3339,
			NoColor:    cfg.NoColor,
		}
	}
	level, ok := ParseLevel(cfg.Level)
	if !ok {
		level = zerolog.InfoLevel
	}

	return zerolog.New(out).Level(level).With().Timestamp().Str("app", app).Logger()
}
