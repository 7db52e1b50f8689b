// Package logging builds the slog logger used by the lithoprof CLI.
//
// Solver packages never log on their own; they accept an optional
// *slog.Logger through their options and default to discarding.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// Config selects the handler.
type Config struct {
	// Debug lowers the level to debug and adds source locations.
	Debug bool
	// JSON switches from the text handler to the JSON handler.
	JSON bool
	// File, when set, appends records to this path instead of Writer.
	File string
	// Writer receives records when File is empty; nil means os.Stderr.
	Writer io.Writer
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Setup builds a logger from cfg. The returned cleanup closes the log file,
// if any, and is never nil.
func Setup(cfg Config) (*slog.Logger, func() error, error) {
	cleanup := func() error { return nil }

	w := cfg.Writer
	if w == nil {
		w = os.Stderr
	}
	if cfg.File != "" {
		if dir := filepath.Dir(cfg.File); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return Discard(), cleanup, fmt.Errorf("logging.Setup: %w", err)
			}
		}
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return Discard(), cleanup, fmt.Errorf("logging.Setup: %w", err)
		}
		w = f
		cleanup = f.Close
	}

	opts := &slog.HandlerOptions{
		Level:       slog.LevelInfo,
		ReplaceAttr: utcTime,
	}
	if cfg.Debug {
		opts.Level = slog.LevelDebug
		opts.AddSource = true
	}

	var h slog.Handler
	if cfg.JSON {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}
	l := slog.New(h)
	l.Debug("logger.initialized", "json", cfg.JSON, "file", cfg.File)

	return l, cleanup, nil
}

func utcTime(_ []string, a slog.Attr) slog.Attr {
	if a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
		a.Value = slog.StringValue(a.Value.Time().UTC().Format(time.RFC3339Nano))
	}

	return a
}
