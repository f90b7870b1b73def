// Package logging builds the structured logger shared by the rs-* tools.
//
// It is a thin layer over log/slog: a level and a format chosen on the
// command line, written to stderr so stdout stays reserved for results.
//
//	log, err := logging.New(logging.Config{Level: "info", Output: os.Stderr})
//	log.Info("ingest finished", "reads", n)
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Formats accepted by Config.Format.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config selects level, format and destination.
type Config struct {
	Level  string // debug | info | warn | error (empty = info)
	Format string // text | json (empty = text)
	Quiet  bool   // raise the level to error
	Output io.Writer
}

// ParseLevel maps a level name to a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("invalid log level %q (want debug | info | warn | error)", s)
}

// New returns a logger for c.
func New(c Config) (*slog.Logger, error) {
	lvl, err := ParseLevel(c.Level)
	if err != nil {
		return nil, err
	}
	if c.Quiet && lvl < slog.LevelError {
		lvl = slog.LevelError
	}
	out := c.Output
	if out == nil {
		out = io.Discard
	}
	opts := &slog.HandlerOptions{Level: lvl}
	switch c.Format {
	case "", FormatText:
		return slog.New(slog.NewTextHandler(out, opts)), nil
	case FormatJSON:
		return slog.New(slog.NewJSONHandler(out, opts)), nil
	}
	return nil, fmt.Errorf("invalid log format %q (want text | json)", c.Format)
}

// Discard is a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
