// Package logging configures the process-wide slog logger.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"appraiser/internal/configuration"

	"gopkg.in/natefinch/lumberjack.v2"
)

// ParseLevel maps a level name ("debug", "info", "warn", "warning", "error")
// to a slog.Level. Unknown names give Info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

type stdoutWriter struct {
	io.Writer
}

func (stdoutWriter) Close() error {
	return nil
}

// NewWriter returns the log destination: a rotating, compressed file when
// cfg.File is set, stdout otherwise. Closing stdout is a no-op.
func NewWriter(cfg configuration.LoggerConfig) io.WriteCloser {
	if cfg.File == "" {
		return stdoutWriter{os.Stdout}
	}

	return &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSize,
		MaxBackups: cfg.MaxBackups,
		Compress:   true,
	}
}

// NewLogger creates a JSON logger writing to out at the given level.
func NewLogger(level string, out io.Writer) *slog.Logger {
	handler := slog.NewJSONHandler(out, &slog.HandlerOptions{
		Level: ParseLevel(level),
	})
	return slog.New(handler)
}

// Setup builds the logger described by cfg and installs it as the slog
// default. The returned closer flushes and closes the destination.
func Setup(cfg configuration.LoggerConfig) io.Closer {
	out := NewWriter(cfg)
	slog.SetDefault(NewLogger(cfg.Level, out))
	return out
}
