package graphics

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/tinyrange/gfx/internal/raylib"
)

type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(nopHandler{}))
}

// SetLogger configures the logger used by this package. By default nothing
// is logged; pass nil to restore that.
//
// The logger's lowest enabled level also decides how verbose raylib's own
// trace log is for windows opened afterwards.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

// traceLogLevel maps the current logger onto raylib's trace log levels.
func traceLogLevel() int32 {
	ctx := context.Background()
	l := Logger()
	switch {
	case l.Enabled(ctx, slog.LevelDebug):
		return raylib.LogDebug
	case l.Enabled(ctx, slog.LevelInfo):
		return raylib.LogInfo
	case l.Enabled(ctx, slog.LevelWarn):
		return raylib.LogWarning
	case l.Enabled(ctx, slog.LevelError):
		return raylib.LogError
	default:
		return raylib.LogNone
	}
}
