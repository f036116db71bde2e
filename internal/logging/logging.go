// Package logging configures the zerolog logger used by clirequest hosts.
package logging

import (
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/rickgorman/clirequest/internal/environ"
)

const (
	// EnvLogLevel selects the minimum level: trace, debug, info, warn, error or disabled.
	EnvLogLevel = "CLIREQUEST_LOG_LEVEL"
	// EnvLogJSON switches from console output to plain JSON lines when true.
	EnvLogJSON = "CLIREQUEST_LOG_JSON"
)

// Config controls logger construction.
type Config struct {
	Level zerolog.Level
	JSON  bool
	Out   io.Writer
}

// DefaultConfig logs info and above to stderr through a console writer.
func DefaultConfig() Config {
	return Config{
		Level: zerolog.InfoLevel,
		Out:   os.Stderr,
	}
}

// FromSnapshot applies CLIREQUEST_LOG_LEVEL and CLIREQUEST_LOG_JSON from the
// snapshot on top of DefaultConfig. Unrecognised values are ignored.
func FromSnapshot(snap environ.Snapshot) Config {
	cfg := DefaultConfig()
	if raw, ok := snap.Lookup(EnvLogLevel); ok {
		if lvl, ok := parseLevel(raw); ok {
			cfg.Level = lvl
		}
	}
	if raw, ok := snap.Lookup(EnvLogJSON); ok {
		if v, ok := parseBool(raw); ok {
			cfg.JSON = v
		}
	}
	return cfg
}

// New builds a logger tagged with the app name.
func New(app string, cfg Config) zerolog.Logger {
	out := cfg.Out
	if out == nil {
		out = os.Stderr
	}
	if !cfg.JSON {
		out = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.RFC3339,
		}
	}
	return zerolog.New(out).
		Level(cfg.Level).
		With().
		Timestamp().
		Str("app", app).
		Logger()
}

func parseLevel(raw string) (zerolog.Level, bool) {
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

func parseBool(raw string) (bool, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false, false
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false
	}
	return v, true
}
