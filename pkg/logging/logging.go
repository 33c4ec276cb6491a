// Package logging configures colored structured logging with tint for the
// default log/slog logger.
package logging

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// Setup installs a tint handler on the default slog logger at the given
// level name (debug, info, warn, error). Unknown names fall back to info.
func Setup(level string) {
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      parseLevel(level),
			TimeFormat: time.Kitchen,
		}),
	))
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
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
