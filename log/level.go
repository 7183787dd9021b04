package log

import (
	"errors"
	"log/slog"
	"slices"
	"strings"
)

// Level is a log severity.
type Level string

const (
	// LevelDebug is the most verbose level.
	LevelDebug Level = "debug"
	// LevelInfo is the default level.
	LevelInfo Level = "info"
	// LevelWarn marks recoverable problems.
	LevelWarn Level = "warn"
	// LevelError marks failed operations.
	LevelError Level = "error"
	// LevelFatal marks conditions the caller should not continue from.
	LevelFatal Level = "fatal"
)

// SlogLevelFatal is the [slog.Level] used for [LevelFatal] records.
const SlogLevelFatal = slog.LevelError + 4

var (
	// ErrInvalidArgument indicates an invalid argument was provided.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrUnknownLogLevel indicates an unrecognized log level string.
	ErrUnknownLogLevel = errors.New("unknown log level")
	// ErrUnknownLogFormat indicates an unrecognized log format string.
	ErrUnknownLogFormat = errors.New("unknown log format")
	// ErrUnknownColorMode indicates an unrecognized color mode string.
	ErrUnknownColorMode = errors.New("unknown color mode")
	// ErrInvalidTimeFormat indicates a time format that is not a permutation
	// of %H, %M and %S.
	ErrInvalidTimeFormat = errors.New("invalid time format")
	// ErrFatal is returned after a [LevelFatal] message has been logged.
	ErrFatal = errors.New("fatal")
)

var allLevels = []Level{LevelDebug, LevelInfo, LevelWarn, LevelError, LevelFatal}

// ParseLevel parses a log level string. It is case insensitive and accepts
// "warning" for [LevelWarn].
func ParseLevel(level string) (Level, error) {
	lvl := Level(strings.ToLower(level))
	if lvl == "warning" {
		return LevelWarn, nil
	}

	if slices.Contains(allLevels, lvl) {
		return lvl, nil
	}

	return "", ErrUnknownLogLevel
}

// GetAllLevelStrings returns all valid level strings, least severe first.
func GetAllLevelStrings() []string {
	levels := make([]string, 0, len(allLevels))
	for _, l := range allLevels {
		levels = append(levels, string(l))
	}

	return levels
}

// Slog returns the [slog.Level] for l. Unknown levels map to
// [slog.LevelInfo].
func (l Level) Slog() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	case LevelFatal:
		return SlogLevelFatal
	}

	return slog.LevelInfo
}

// levelName returns the upper-case name used in rendered output.
func levelName(l slog.Level) string {
	if l >= SlogLevelFatal {
		return "FATAL"
	}

	return l.String()
}
