package app

import (
	"io"
	"log/slog"
	"strings"
)

// defaultLogLevel keeps the console quiet: renderers write to the same
// stream as the logger.
const defaultLogLevel = slog.LevelWarn

// newLogger builds the process logger. Unknown levels fall back to
// defaultLogLevel; format is "json" or anything else for text. The global
// slog logger is left untouched.
func newLogger(levelStr, formatStr string, outW io.Writer) *slog.Logger {
	level := defaultLogLevel
	if levelStr != "" {
		if err := level.UnmarshalText([]byte(levelStr)); err != nil {
			level = defaultLogLevel
		}
	}

	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(formatStr, "json") {
		return slog.New(slog.NewJSONHandler(outW, opts))
	}
	return slog.New(slog.NewTextHandler(outW, opts))
}
