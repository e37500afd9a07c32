package wind

import (
	"log"
	"strconv"
	"sync/atomic"
	"testing"

	"go.uber.org/zap"
)

// Logger is the logging capability injected into the core at construction.
// Access lines and diagnostics stay separate so applications can route them
// to different sinks.
type Logger interface {
	// LogAccess records one completed request as "<METHOD> <URL> <STATUS>".
	LogAccess(method, url string, status Code)
	// LogInternalError records an unexpected failure in handler logic with
	// full diagnostic detail.
	LogInternalError(err error)
	// LogUnhandledCondition records an http condition outside the set the
	// responder maps directly; a generic response is still emitted.
	LogUnhandledCondition(err error)
}

type stdLogger struct{ *log.Logger }

func (l stdLogger) LogAccess(method, url string, status Code) {
	l.Logger.Printf("%s %s %d", method, url, status)
}

func (l stdLogger) LogInternalError(err error) {
	l.Logger.Printf("wind: internal error: %+v", err)
}

func (l stdLogger) LogUnhandledCondition(err error) {
	l.Logger.Printf("wind: unhandled http condition: %s", err)
}

// NewStdLogger adapts a standard library logger.
func NewStdLogger(l *log.Logger) Logger {
	return stdLogger{l}
}

type zapLogger struct {
	access *zap.Logger
	base   *zap.Logger
}

func (l zapLogger) LogAccess(method, url string, status Code) {
	l.access.Info(method+" "+url+" "+strconv.Itoa(int(status)),
		zap.String("method", method), zap.String("url", url), zap.Int("status", int(status)))
}

func (l zapLogger) LogInternalError(err error) {
	l.base.Error("internal error", zap.Error(err))
}

func (l zapLogger) LogUnhandledCondition(err error) {
	l.base.Warn("unhandled http condition", zap.Error(err))
}

// NewZapLogger adapts a zap logger, splitting access lines into a named
// "access" sub-logger.
func NewZapLogger(l *zap.Logger) Logger {
	return zapLogger{access: l.Named("access"), base: l.Named("wind")}
}

// TestLogger counts logger calls so tests can assert on them.
type TestLogger struct {
	tb testing.TB

	NumLogAccess             int64
	NumLogInternalError      int64
	NumLogUnhandledCondition int64
}

func NewTestLogger(tb testing.TB) *TestLogger {
	return &TestLogger{tb: tb}
}

func (l *TestLogger) LogAccess(method, url string, status Code) {
	atomic.AddInt64(&l.NumLogAccess, 1)
	l.tb.Logf("%s %s %d", method, url, status)
}

func (l *TestLogger) LogInternalError(err error) {
	atomic.AddInt64(&l.NumLogInternalError, 1)
	l.tb.Logf("wind: internal error: %+v", err)
}

func (l *TestLogger) LogUnhandledCondition(err error) {
	atomic.AddInt64(&l.NumLogUnhandledCondition, 1)
	l.tb.Logf("wind: unhandled http condition: %s", err)
}

var _ Logger = &TestLogger{}
