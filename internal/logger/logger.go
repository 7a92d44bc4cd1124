// Package logger provides the process-wide structured logger.
package logger

import (
	"log/slog"
	"os"
)

// level defaults to Info; SetDebug lowers it to Debug.
var level slog.LevelVar

var log = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: &level}))

// SetDebug toggles debug-level logging.
func SetDebug(debug bool) {
	if debug {
		level.Set(slog.LevelDebug)
	} else {
		level.Set(slog.LevelInfo)
	}
}

// Default returns the underlying slog logger.
func Default() *slog.Logger {
	return log
}

// Debug logs at debug level.
func Debug(msg string, args ...any) {
	log.Debug(msg, args...)
}

// Info logs at info level.
func Info(msg string, args ...any) {
	log.Info(msg, args...)
}

// Warn logs at warn level.
func Warn(msg string, args ...any) {
	log.Warn(msg, args...)
}

// Error logs at error level.
func Error(msg string, args ...any) {
	log.Error(msg, args...)
}
