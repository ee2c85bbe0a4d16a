package brender

import (
	"log"
	"sync"
	"sync/atomic"
	"testing"
)

// Logger can be implemented to get informed about important states.
type Logger interface {
	LogUnhandledServeError(err error)
	LogImplicitFlushError(err error)
	LogRenderError(site Site, err error)
}

type stdLogger struct{ *log.Logger }

func (l stdLogger) LogUnhandledServeError(err error) {
	l.Logger.Printf("brender: unhandled server error: %s", err)
}

func (l stdLogger) LogImplicitFlushError(err error) {
	l.Logger.Printf("brender: error while flushing implicitly: %s", err)
}

func (l stdLogger) LogRenderError(site Site, err error) {
	l.Logger.Printf("brender: %s render error: %s", site, err)
}

// NewStdLogger returns a Logger that prints to l, or to the standard logger if l is nil.
func NewStdLogger(l *log.Logger) Logger {
	if l == nil {
		l = log.Default()
	}

	return stdLogger{l}
}

type TestLogger struct {
	tb testing.TB

	NumLogUnhandledServeError int64
	NumLogImplicitFlushError  int64
	NumLogRenderError         int64

	mu         sync.Mutex
	renderSite Site
	renderErr  error
}

func NewTestLogger(tb testing.TB) *TestLogger {
	return &TestLogger{tb: tb}
}

func (l *TestLogger) LogUnhandledServeError(err error) {
	atomic.AddInt64(&l.NumLogUnhandledServeError, 1)
	l.tb.Logf("brender: unhandled server error: %s", err)
}

func (l *TestLogger) LogImplicitFlushError(err error) {
	atomic.AddInt64(&l.NumLogImplicitFlushError, 1)
	l.tb.Logf("brender: error while flushing implicitly: %s", err)
}

func (l *TestLogger) LogRenderError(site Site, err error) {
	atomic.AddInt64(&l.NumLogRenderError, 1)
	l.tb.Logf("brender: %s render error: %s", site, err)

	l.mu.Lock()
	defer l.mu.Unlock()
	l.renderSite, l.renderErr = site, err
}

// LastRenderError returns the site and cause of the most recent render failure.
func (l *TestLogger) LastRenderError() (Site, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.renderSite, l.renderErr
}

var _ Logger = &TestLogger{}
