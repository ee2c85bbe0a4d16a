package brender

import (
	"context"
	"net/http"
)

// Handler mirrors http.Handler but it writes to a buffered response and may return an error.
type Handler interface {
	ServeBHTTP(ctx context.Context, w ResponseWriter, r *http.Request) error
}

// HandlerFunc allow casting a function to imple [Handler].
type HandlerFunc func(context.Context, ResponseWriter, *http.Request) error

// ServeBHTTP implements the [Handler] interface.
func (f HandlerFunc) ServeBHTTP(ctx context.Context, w ResponseWriter, r *http.Request) error {
	return f(ctx, w, r)
}

// BareHandler describes how middleware serves HTTP requests. It lacks the context argument of [Handler], the
// request's context is all there is at that point.
type BareHandler interface {
	ServeBareBHTTP(w ResponseWriter, r *http.Request) error
}

// BareHandlerFunc allow casting a function to an implementation of [BareHandler].
type BareHandlerFunc func(ResponseWriter, *http.Request) error

// ServeBareBHTTP implements the [BareHandler] interface.
func (f BareHandlerFunc) ServeBareBHTTP(w ResponseWriter, r *http.Request) error {
	return f(w, r)
}

// ToBare converts a handler into a bare handler that passes the request's context.
func ToBare(h Handler) BareHandler {
	return BareHandlerFunc(func(w ResponseWriter, r *http.Request) error {
		return h.ServeBHTTP(r.Context(), w, r)
	})
}

// Sequence runs the handlers in order on the same response. It stops at the first error, or as soon as the
// response is halted, for example by a failed [Try].
func Sequence(hs ...Handler) Handler {
	return HandlerFunc(func(ctx context.Context, w ResponseWriter, r *http.Request) error {
		for _, h := range hs {
			if w.Halted() {
				return nil
			}

			if err := h.ServeBHTTP(ctx, w, r); err != nil {
				return err
			}
		}

		return nil
	})
}

// ToStd converts a bare handler into a standard library http.Handler. The implementation
// creates a buffered response writer and flushes it implicitly after serving the request.
func ToStd(h BareHandler, bufLimit int, logs Logger) http.Handler {
	return http.HandlerFunc(func(resp http.ResponseWriter, req *http.Request) {
		bresp := NewResponseWriter(resp, bufLimit)
		defer bresp.Free()

		if err := h.ServeBareBHTTP(bresp, req); err != nil {
			writeError(bresp, err, logs)
		}

		if err := bresp.FlushBuffer(); err != nil {
			logs.LogImplicitFlushError(err)
		}
	})
}

// writeError replaces the buffered response with one describing err. Errors without a code, and server errors,
// are logged. Client errors expose their message, server errors only the status text.
func writeError(w *ResponseBuffer, err error, logs Logger) {
	code := CodeOf(err)
	if code == CodeUnknown || code >= CodeInternalServerError {
		logs.LogUnhandledServeError(err)
	}

	if w.flushed {
		return // part of the response is on the wire already
	}

	if code == CodeUnknown {
		code = CodeInternalServerError
	}

	msg := http.StatusText(int(code))
	if code < CodeInternalServerError {
		msg = err.Error()
	}

	w.Reset()
	http.Error(w, msg, int(code))
}
