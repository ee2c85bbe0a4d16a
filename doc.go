// Package brender binds the output of synchronous template render routines to HTTP responses.
//
// # Overview
//
// Template engines that compile to Go code produce functions that write to an [io.Writer]. brender runs such a
// routine into an in-memory buffer and, only when it succeeds, attaches the bytes to the response. When it fails
// nothing has been sent yet, so the caller still owns a clean response to report the failure with.
//
// A minimal example:
//
//	func home(ctx context.Context, w brender.ResponseWriter, r *http.Request) error {
//	    if _, ok := brender.TryHTML(logs, w, func(o io.Writer) error {
//	        return templates.Home(o, "hello world")
//	    }); !ok {
//	        return nil // w is now a halted 500 response
//	    }
//	    return nil
//	}
//
// # Connections
//
// The response is abstracted as a [Conn]: something with a header, a status, a body and a halted flag. The binder
// never creates a Conn, it takes one and returns the same one on every path. [ResponseBuffer] is the Conn used by
// this package's handlers, other hosts implement Conn themselves (see the echorender package).
//
// # Call conventions
//
// The same primitive is exposed three ways:
//
//   - [Render] and [RenderHTML] return the connection, or a *[RenderError] that carries both the cause and the
//     connection. Use [ConnOf] or [AsRenderError] to get the connection back.
//   - [Bind] wraps a connection so the operations read as methods: Bind(w).Size(4096).RenderHTML(page).
//   - [Try] and [TryHTML] log the failure with the caller's file and line, turn the connection into a halted 500
//     response and report ok=false so the handler can return early.
//
// The HTML variants set "Content-Type: text/html; charset=utf-8" before rendering, so the header is present even
// on the connection of a failed render.
//
// # Buffering
//
// Render buffers start at [DefaultBufferSize] bytes. The Size variants take an estimate of the output size to
// avoid regrowing the buffer, the estimate never changes the output.
//
// # Handlers
//
// [Handler] mirrors http.Handler but writes to a buffered [ResponseWriter] and returns an error. [ToStd] turns a
// handler into an http.Handler that resets the buffer and writes an error response when the handler fails:
//
//   - errors with a [Code] (created with [NewError], or a *[RenderError]) respond with that status
//   - other errors are logged and become a 500 Internal Server Error
//
// [Sequence] chains handlers on one response and stops as soon as the response is halted, which is how a failed
// [Try] suppresses whatever would have run after it.
package brender
