package logger

import "log/slog"

// Level selects which messages reach the log file.
type Level slog.Level

const (
	// LevelDebug adds per-path search diagnostics and device details.
	LevelDebug = Level(slog.LevelDebug)

	// LevelInfo records the session lifecycle: start, plugin loaded, audio running.
	LevelInfo = Level(slog.LevelInfo)

	// LevelError records failures only.
	LevelError = Level(slog.LevelError)
)

// ToSlogLevel converts Level to slog.Level.
func (l Level) ToSlogLevel() slog.Level {
	return slog.Level(l)
}

func (l Level) String() string {
	return slog.Level(l).String()
}

// LevelFromFlags maps --trace to LevelDebug and --debug to LevelInfo.
// Without either only errors are written.
func LevelFromFlags(debug, trace bool) Level {
	if trace {
		return LevelDebug
	}

	if debug {
		return LevelInfo
	}

	return LevelError
}
