package log

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/levenlabs/go-llog"
)

// SlogLevel maps an llog level onto the equivalent slog level.
func SlogLevel(l llog.Level) slog.Level {
	switch l {
	case llog.DebugLevel:
		return slog.LevelDebug
	case llog.InfoLevel:
		return slog.LevelInfo
	case llog.WarnLevel:
		return slog.LevelWarn
	case llog.ErrorLevel:
		return slog.LevelError
	default:
		panic(fmt.Errorf("unknown log level: %s", l.String()))
	}
}

// ConfigureFromFlags applies the level lflag parsed into llog to the default
// logger of this package and sets the slog default to a JSON logger writing
// to w at that level, which is also returned. It must be called after
// lflag.Configure.
func ConfigureFromFlags(w io.Writer) *slog.Logger {
	// lflag automatically sets llog's level, but we need to set the slog level
	level := SlogLevel(llog.GetLevel())
	SetDefaultLogLevel(level)

	logger := slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
	slog.Debug("logger configured", slog.String("level", level.String()))
	return logger
}
