package brender

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"sync"
)

// ErrBufferFull is returned by writes that would grow the response buffer past its limit.
var ErrBufferFull = errors.New("brender: response buffer is full")

// maxPooledBufferSize caps the capacity of buffers that are returned to the pool.
const maxPooledBufferSize = 64 * 1024

var bufPool = sync.Pool{
	New: func() any {
		return bytes.NewBuffer(make([]byte, 0, DefaultBufferSize))
	},
}

// ResponseWriter implements the http.ResponseWriter but the underlying bytes are buffered. This allows
// middleware to reset the writer and formulate a completely new response. It is also a [Conn], so rendered output
// can be bound to it directly.
type ResponseWriter interface {
	http.ResponseWriter
	Conn
	Reset()
	Free()
	FlushBuffer() error
	Halted() bool
	Status() int
}

// ResponseBuffer is the default [ResponseWriter].
type ResponseBuffer struct {
	resp   http.ResponseWriter
	buf    *bytes.Buffer
	header http.Header
	status int
	limit  int
	halted bool

	wroteHeader bool
	flushed     bool
}

// NewResponseWriter buffers writes for resp. Writes that grow the buffer past limit fail with [ErrBufferFull], a
// negative limit disables the check.
func NewResponseWriter(resp http.ResponseWriter, limit int) *ResponseBuffer {
	buf, _ := bufPool.Get().(*bytes.Buffer)
	return &ResponseBuffer{
		resp:   resp,
		buf:    buf,
		header: http.Header{},
		limit:  limit,
	}
}

func (w *ResponseBuffer) Header() http.Header { return w.header }

func (w *ResponseBuffer) Write(p []byte) (int, error) {
	if w.limit >= 0 && w.buf.Len()+len(p) > w.limit {
		return 0, ErrBufferFull
	}

	if w.status == 0 {
		w.status = http.StatusOK
	}

	return w.buf.Write(p)
}

// WriteHeader records the status code. Like the standard library only the first call has an effect.
func (w *ResponseBuffer) WriteHeader(statusCode int) {
	if w.status == 0 {
		w.status = statusCode
	}
}

// SetStatus overwrites the status code, unlike WriteHeader. It has no effect once the header was flushed.
func (w *ResponseBuffer) SetStatus(code int) { w.status = code }

// SetBody replaces the buffered body. The buffer takes ownership of body and the limit is not applied.
func (w *ResponseBuffer) SetBody(body []byte) {
	old := w.buf
	w.buf = bytes.NewBuffer(body)
	release(old)
}

// Halt marks the response as final, see [Sequence].
func (w *ResponseBuffer) Halt() { w.halted = true }

// Halted reports whether [ResponseBuffer.Halt] was called since the last reset.
func (w *ResponseBuffer) Halted() bool { return w.halted }

// Status returns the status code the response will be sent with.
func (w *ResponseBuffer) Status() int {
	if w.status == 0 {
		return http.StatusOK
	}

	return w.status
}

// Unwrap returns the underlying response writer, for http.ResponseController.
func (w *ResponseBuffer) Unwrap() http.ResponseWriter { return w.resp }

// Reset discards the buffered body, headers, status and halt flag. It panics if the response was already flushed
// explicitly since part of it has been sent.
func (w *ResponseBuffer) Reset() {
	if w.flushed {
		panic("brender: cannot reset, response already flushed")
	}

	w.buf.Reset()
	w.header = http.Header{}
	w.status = 0
	w.halted = false
}

// Flush implements http.Flusher.
func (w *ResponseBuffer) Flush() {
	_ = w.FlushError()
}

// FlushError sends what is buffered so far and flushes the underlying writer. After this the response can no
// longer be reset.
func (w *ResponseBuffer) FlushError() error {
	w.flushed = true
	if err := w.FlushBuffer(); err != nil {
		return err
	}

	if err := http.NewResponseController(w.resp).Flush(); err != nil && !errors.Is(err, http.ErrNotSupported) {
		return fmt.Errorf("flush underlying writer: %w", err)
	}

	return nil
}

// FlushBuffer writes the header (once) and the buffered body to the underlying writer.
func (w *ResponseBuffer) FlushBuffer() error {
	if !w.wroteHeader {
		dst := w.resp.Header()
		for k, v := range w.header {
			dst[k] = v
		}

		w.resp.WriteHeader(w.Status())
		w.wroteHeader = true
	}

	if w.buf.Len() < 1 {
		return nil
	}

	_, err := w.resp.Write(w.buf.Bytes())
	w.buf.Reset()
	if err != nil {
		return fmt.Errorf("write buffer to underlying writer: %w", err)
	}

	return nil
}

// Free returns the buffer to the pool. The writer must not be used afterwards.
func (w *ResponseBuffer) Free() {
	release(w.buf)
	w.buf = nil
}

func release(buf *bytes.Buffer) {
	if buf == nil || buf.Cap() > maxPooledBufferSize {
		return
	}

	buf.Reset()
	bufPool.Put(buf)
}

var _ ResponseWriter = &ResponseBuffer{}
