package fragnav

import (
	"log/slog"

	"github.com/BrandonKowalski/fragnav/pkg/fragnav/internal"
)

// LogOptions configures the package logger. Call Init before creating the
// first Controller; the log destination is fixed once the logger exists.
type LogOptions struct {
	LogPath     string // Full path for log file including filename (creates parent directories)
	LogLevel    string // "debug", "info", "warn" or "error" (default: error)
	QuietStderr bool   // Write only to LogPath, not stderr
}

// Init sets up the package logger.
func Init(options LogOptions) {
	if options.LogPath != "" {
		internal.SetLogPath(options.LogPath)
	}
	internal.SetQuietStderr(options.QuietStderr)

	if options.LogLevel != "" {
		internal.SetRawLogLevel(options.LogLevel)
	} else {
		internal.SetLogLevel(slog.LevelError)
	}
}

// Close flushes and closes the log file, if any.
func Close() {
	internal.CloseLogger()
}

// GetLogger returns the logger controllers use when Options.Logger is nil.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}
