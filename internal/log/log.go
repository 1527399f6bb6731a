// Package log builds [slog.Handler] values for the pathuri command.
package log

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	clog "github.com/charmbracelet/log"
)

const (
	JSONFormat   = "json"
	LogfmtFormat = "logfmt"
	TextFormat   = "text"
)

var (
	// ErrUnknownLevel is returned for an unrecognized log level.
	ErrUnknownLevel = errors.New("unknown log level")

	// ErrUnknownFormat is returned for an unrecognized log format.
	ErrUnknownFormat = errors.New("unknown log format")
)

// CreateHandler creates a [slog.Handler] writing to w from level and format
// strings. An empty format selects text.
func CreateHandler(w io.Writer, level, format string) (slog.Handler, error) {
	lvl, err := GetLevel(level)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(format) {
	case JSONFormat:
		return slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level: lvl,
		}), nil
	case LogfmtFormat:
		return newCharmHandler(w, lvl, clog.LogfmtFormatter), nil
	case TextFormat, "":
		return newCharmHandler(w, lvl, clog.TextFormatter), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// GetLevel parses a log level name.
// An empty name selects [slog.LevelWarn].
func GetLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "error":
		return slog.LevelError, nil
	case "warn", "warning", "":
		return slog.LevelWarn, nil
	case "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownLevel, level)
	}
}

func newCharmHandler(
	w io.Writer, level slog.Level, f clog.Formatter,
) slog.Handler {
	return clog.NewWithOptions(w, clog.Options{
		Level:     clog.Level(level),
		Formatter: f,
	})
}
