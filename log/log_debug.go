//go:build debug

package log

import (
	"context"
	"log/slog"
)

func init() {
	SetLogLevel(LevelDebug)
	defaultLogger.Warn("DEBUG")
}

// Debug logs at [LevelDebug]
func Debug(msg string, args ...any) {
	defaultLogger.Debug(msg, args...)
}

// alwaysDebug passes debug events through regardless of the level of the
// wrapped handler.
type alwaysDebug struct {
	slog.Handler
}

func (h alwaysDebug) Enabled(ctx context.Context, level slog.Level) bool {
	return level == slog.LevelDebug || h.Handler.Enabled(ctx, level)
}

func wrapHandler(h Handler) Handler { return alwaysDebug{h} }
