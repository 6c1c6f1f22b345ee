// Public domain.

// Package logger holds the program wide structured logger.
//
// Log records are diagnostics and go to stderr.  Results go to stdout or
// files and never through the logger.
package logger

import (
	"io"
	"log/slog"
	"os"
	"sync"
)

type Config struct {
	Debug bool
	Quiet bool      // warnings and errors only
	W     io.Writer // default os.Stderr
}

var (
	mu     sync.RWMutex
	global = slog.New(slog.NewTextHandler(io.Discard, nil))
)

// Setup replaces the global logger.
func Setup(cfg Config) *slog.Logger {
	w := cfg.W
	if w == nil {
		w = os.Stderr
	}
	level := slog.LevelInfo
	switch {
	case cfg.Debug:
		level = slog.LevelDebug
	case cfg.Quiet:
		level = slog.LevelWarn
	}
	h := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			// no timestamps
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	})
	l := slog.New(h)

	mu.Lock()
	global = l
	mu.Unlock()

	l.Debug("logger.initialized", "debug", cfg.Debug)
	return l
}

// L returns the global logger.  Before Setup it discards.
func L() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}
