// ABOUTME: Leveled printf-style logging backed by a slog.TextHandler on stderr.
// ABOUTME: Stdout stays reserved for encoded sequences; SetOutput redirects logs in tests.

package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync/atomic"
)

// Level constants matching slog levels.
const (
	LevelDebug = slog.LevelDebug
	LevelInfo  = slog.LevelInfo
	LevelWarn  = slog.LevelWarn
	LevelError = slog.LevelError
)

var (
	level  slog.LevelVar
	logger atomic.Pointer[slog.Logger]
)

func init() {
	level.Set(LevelInfo)
	SetOutput(os.Stderr)
}

// SetOutput sends log records to w. Timestamps are omitted so output is
// stable across runs.
func SetOutput(w io.Writer) {
	h := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: &level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) == 0 && a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	})
	logger.Store(slog.New(h))
}

// SetLevel sets the global log level.
func SetLevel(l slog.Level) {
	level.Set(l)
}

// GetLevel returns the current log level.
func GetLevel() slog.Level {
	return level.Level()
}

// ParseLevel maps "debug", "info", "warn" or "error" to a level.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return LevelInfo, fmt.Errorf("log level %q: %w", s, err)
	}
	return l, nil
}

// Logger returns the underlying structured logger.
func Logger() *slog.Logger {
	return logger.Load()
}

func logf(l slog.Level, format string, args ...any) {
	lg := logger.Load()
	ctx := context.Background()
	if !lg.Enabled(ctx, l) {
		return
	}
	lg.Log(ctx, l, fmt.Sprintf(format, args...))
}

// Debug logs a debug message if the level allows it.
func Debug(format string, args ...any) { logf(LevelDebug, format, args...) }

// Info logs an info message if the level allows it.
func Info(format string, args ...any) { logf(LevelInfo, format, args...) }

// Warn logs a warning message if the level allows it.
func Warn(format string, args ...any) { logf(LevelWarn, format, args...) }

// Error logs an error message.
func Error(format string, args ...any) { logf(LevelError, format, args...) }
