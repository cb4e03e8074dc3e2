package microserial

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// The Enabled method returns false so the caller skips message formatting
// entirely, making disabled logging effectively zero-cost.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger creates a logger that silently discards all output.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called concurrently with logging from any goroutine.
var loggerPtr atomic.Pointer[slog.Logger]

var (
	hooksMu sync.Mutex
	hooks   []func(*slog.Logger)
)

func init() {
	l := newNopLogger()
	loggerPtr.Store(l)
}

// SetLogger configures the logger for microserial and all its sub-packages.
// By default, microserial produces no log output. Call SetLogger to enable
// logging.
//
// SetLogger is safe for concurrent use: it stores the new logger atomically.
// Pass nil to disable logging (restore default silent behavior).
//
// Log levels used by microserial:
//   - [slog.LevelDebug]: per-attempt configuration (backend mask, power preference)
//   - [slog.LevelInfo]: lifecycle events (adapter selected, renderer chosen)
//   - [slog.LevelWarn]: recoverable failures (attempt rejected, host failed)
//
// Example:
//
//	microserial.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)

	hooksMu.Lock()
	hs := append([]func(*slog.Logger){}, hooks...)
	hooksMu.Unlock()
	for _, h := range hs {
		h(l)
	}
}

// Logger returns the current logger used by microserial.
// Sub-packages (renderer/, backend/) call this to share the same logger
// configuration without introducing import cycles.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

// OnSetLogger registers fn to receive every logger passed to SetLogger.
// fn is called immediately with the current logger.
//
// Backend packages use this to route third-party GPU stacks through the same
// handler, for example:
//
//	func init() {
//	    microserial.OnSetLogger(hal.SetLogger)
//	}
func OnSetLogger(fn func(*slog.Logger)) {
	if fn == nil {
		return
	}
	hooksMu.Lock()
	hooks = append(hooks, fn)
	hooksMu.Unlock()
	fn(Logger())
}
