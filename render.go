package brender

import (
	"errors"
	"net/http"
)

// RenderError is returned when a render routine fails. It owns the connection that was passed to the failing call
// so the caller can still respond with it. The connection is untouched apart from headers that were set before
// rendering started.
type RenderError[C Conn] struct {
	Conn C
	err  error
}

func (e *RenderError[C]) Error() string { return "failed to render template: " + e.err.Error() }
func (e *RenderError[C]) Unwrap() error { return e.err }

// Code reports the status a host should respond with when it receives this error unhandled.
func (e *RenderError[C]) Code() Code { return CodeInternalServerError }

// AsRenderError finds the first [RenderError] for connection type C in err's chain.
func AsRenderError[C Conn](err error) (*RenderError[C], bool) {
	var rerr *RenderError[C]
	ok := errors.As(err, &rerr)
	return rerr, ok
}

// ConnOf recovers the connection from a render error. It returns false if err does not carry a connection of
// type C.
func ConnOf[C Conn](err error) (conn C, ok bool) {
	rerr, ok := AsRenderError[C](err)
	if !ok {
		return conn, false
	}

	return rerr.Conn, true
}

// Render runs fn into a buffer and binds the result to conn as a 200 response. If fn fails the zero C is returned
// together with a *[RenderError] that holds the unmodified conn.
func Render[C Conn](conn C, fn RenderFunc) (C, error) {
	return RenderSize(conn, DefaultBufferSize, fn)
}

// RenderSize is [Render] with an estimate of the output size to preallocate the buffer with.
func RenderSize[C Conn](conn C, size int, fn RenderFunc) (C, error) {
	body, err := BufferSize(size, fn)
	if err != nil {
		var zero C
		return zero, &RenderError[C]{Conn: conn, err: err}
	}

	conn.SetStatus(http.StatusOK)
	conn.SetBody(body)

	return conn, nil
}

// RenderHTML is [Render] but it first sets the content type to [ContentTypeHTML]. The header is set before fn runs
// so it is also present on the connection inside a returned [RenderError].
func RenderHTML[C Conn](conn C, fn RenderFunc) (C, error) {
	return RenderHTMLSize(conn, DefaultBufferSize, fn)
}

// RenderHTMLSize is [RenderHTML] with a size estimate.
func RenderHTMLSize[C Conn](conn C, size int, fn RenderFunc) (C, error) {
	conn.Header().Set("Content-Type", ContentTypeHTML)
	return RenderSize(conn, size, fn)
}
