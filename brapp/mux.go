package brapp

import (
	"context"
	"net/http"

	"github.com/advdv/brender"
)

// Mux registers brender handlers on a standard library ServeMux. Every route gets a buffered response with the
// app's buffer limit, and the middleware registered through Use.
type Mux struct {
	logs        brender.Logger
	bufLimit    int
	mux         *http.ServeMux
	middlewares struct {
		captured bool
		buffered []brender.Middleware
	}
}

// NewMux creates a Mux configured from the environment.
func NewMux(env Environment, logs brender.Logger) *Mux {
	return NewMuxWith(env.bufferLimit(), logs, http.NewServeMux())
}

// NewMuxWith creates a Mux with custom settings.
func NewMuxWith(bufLimit int, logs brender.Logger, baseMux *http.ServeMux) *Mux {
	return &Mux{
		bufLimit: bufLimit,
		logs:     logs,
		mux:      baseMux,
	}
}

// Use allows providing of middleware.
func (m *Mux) Use(mw ...brender.Middleware) {
	if m.middlewares.captured {
		panic("brapp: cannot call Use() after calling Handle")
	}

	m.middlewares.buffered = append(m.middlewares.buffered, mw...)
}

// Handle handles the request given a handler. Further handlers run after it on the same response through
// [brender.Sequence], so they are skipped once a handler halts the response.
func (m *Mux) Handle(pattern string, handler brender.Handler, then ...brender.Handler) {
	if len(then) > 0 {
		handler = brender.Sequence(append([]brender.Handler{handler}, then...)...)
	}

	m.middlewares.captured = true
	m.mux.Handle(pattern, brender.ToStd(
		brender.Wrap(handler, m.middlewares.buffered...),
		m.bufLimit,
		m.logs,
	))
}

// HandleFunc handles the request given the pattern using functions, see [Mux.Handle].
func (m *Mux) HandleFunc(pattern string, handler brender.HandlerFunc, then ...brender.HandlerFunc) {
	hs := make([]brender.Handler, len(then))
	for i, h := range then {
		hs[i] = h
	}

	m.Handle(pattern, handler, hs...)
}

// HandleStd registers a standard library [http.Handler]. Middleware registered via [Mux.Use] is applied.
func (m *Mux) HandleStd(pattern string, handler http.Handler) {
	m.Handle(pattern, brender.HandlerFunc(func(_ context.Context, w brender.ResponseWriter, r *http.Request) error {
		handler.ServeHTTP(w, r)
		return nil
	}))
}

// ServeHTTP makes the mux implement the http.Handler interface.
func (m *Mux) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	m.mux.ServeHTTP(w, r)
}
