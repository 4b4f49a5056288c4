package morph

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler discards all records. Enabled returns false so callers skip
// formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// Log components. Every record carries one as the "component" attribute.
const (
	componentPipeline = "pipeline"
	componentCache    = "cache"
	componentLoader   = "loader"
)

// loggers holds the configured logger and its per component children, so
// that hot paths don't derive a child logger per record.
type loggers struct {
	base      *slog.Logger
	component map[string]*slog.Logger
}

func newLoggers(l *slog.Logger) *loggers {
	ls := &loggers{base: l, component: make(map[string]*slog.Logger, 3)}
	for _, c := range []string{componentPipeline, componentCache, componentLoader} {
		ls.component[c] = l.With("component", c)
	}
	return ls
}

var loggerPtr atomic.Pointer[loggers]

func init() {
	loggerPtr.Store(newLoggers(slog.New(nopHandler{})))
}

// SetLogger configures the logger used by the package. By default nothing is
// logged. Passing nil restores the default.
//
// Every record has a "component" attribute: "pipeline" for normalization and
// subpath matching, "cache" for the animation cache and "loader" for
// [Loader].
//
// Log levels used:
//   - [slog.LevelDebug]: path data construction, cache misses, precomputation,
//     superseded loads
//   - [slog.LevelWarn]: degenerate input that was clamped, such as a zero-size
//     bounding box
//
// SetLogger is safe for concurrent use.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	loggerPtr.Store(newLoggers(l))
}

// Logger returns the current logger. It is safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load().base
}

// logAttrs logs msg with the logger of component.
func logAttrs(component string, level slog.Level, msg string, attrs ...slog.Attr) {
	loggerPtr.Load().component[component].LogAttrs(context.Background(), level, msg, attrs...)
}
