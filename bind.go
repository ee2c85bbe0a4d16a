package brender

// Binder attaches the render operations to a single connection. It is a value type, the option methods return a
// modified copy.
//
//	conn, ok := brender.Bind(w).Logger(logs).TryHTML(page)
type Binder[C Conn] struct {
	conn C
	size int
	logs Logger
	skip int
}

// Bind starts a binder for conn with the default buffer size and no logger.
func Bind[C Conn](conn C) Binder[C] {
	return Binder[C]{conn: conn, size: DefaultBufferSize}
}

// Size sets the buffer size estimate.
func (b Binder[C]) Size(n int) Binder[C] {
	b.size = n
	return b
}

// Logger sets the logger that receives render failures of [Binder.Try] and [Binder.TryHTML].
func (b Binder[C]) Logger(logs Logger) Binder[C] {
	b.logs = logs
	return b
}

// AddCallerSkip makes Try and TryHTML report a call site n frames further up the stack. Helpers that call the
// binder on behalf of a handler use it so the handler's location is logged.
func (b Binder[C]) AddCallerSkip(n int) Binder[C] {
	b.skip += n
	return b
}

// Render calls [RenderSize] on the bound connection.
func (b Binder[C]) Render(fn RenderFunc) (C, error) {
	return RenderSize(b.conn, b.size, fn)
}

// RenderHTML calls [RenderHTMLSize] on the bound connection.
func (b Binder[C]) RenderHTML(fn RenderFunc) (C, error) {
	return RenderHTMLSize(b.conn, b.size, fn)
}

// Try calls [TrySize] on the bound connection.
func (b Binder[C]) Try(fn RenderFunc) (C, bool) {
	return try(b.logs, b.conn, b.size, false, fn, 2+b.skip)
}

// TryHTML calls [TryHTMLSize] on the bound connection.
func (b Binder[C]) TryHTML(fn RenderFunc) (C, bool) {
	return try(b.logs, b.conn, b.size, true, fn, 2+b.skip)
}
