// Package bootstrap wires up process-level dependencies shared by the
// storefront binaries.
package bootstrap

import (
	"fmt"
	"log/slog"
	"os"
)

// NewLogger creates a new slog.Logger instance with the specified log level,
// writing JSON to stdout.
func NewLogger(level string) *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, handlerOptions(level)))
}

// NewFileLogger creates a logger that appends JSON records to the given
// file. Interactive commands use this: a full-screen UI owns the terminal,
// so logs must go elsewhere. The returned closer flushes the file.
func NewFileLogger(level, path string) (*slog.Logger, func() error, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	logger := slog.New(slog.NewJSONHandler(f, handlerOptions(level)))
	return logger, f.Close, nil
}

// NewDiscardLogger returns a logger that drops everything. Used when no log
// file is configured for an interactive command.
func NewDiscardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func handlerOptions(level string) *slog.HandlerOptions {
	logLevel := toLevel(level)
	return &slog.HandlerOptions{
		AddSource: logLevel == slog.LevelDebug,
		Level:     logLevel,
	}
}

// toLevel converts a string representation of a log level to slog.Level.
func toLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
