package app

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/SillyFizy/grow/internal/config"
)

// NewLogger builds the process logger from cfg, installs it as the slog
// default and returns it. Output goes to stderr.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	logger := newLogger(os.Stderr, cfg)
	slog.SetDefault(logger)
	return logger
}

// newLogger writes JSON records for format "json" and text records with
// source locations for anything else. Unknown levels fall back to info.
func newLogger(w io.Writer, cfg config.LogConfig) *slog.Logger {
	jsonFormat := strings.EqualFold(strings.TrimSpace(cfg.Format), "json")
	opts := &slog.HandlerOptions{
		Level:     parseLevel(cfg.Level),
		AddSource: !jsonFormat,
	}

	var h slog.Handler = slog.NewTextHandler(w, opts)
	if jsonFormat {
		h = slog.NewJSONHandler(w, opts)
	}
	return slog.New(h).With(slog.String("app", "grow"))
}

func parseLevel(s string) slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo
	}
	return lvl
}
