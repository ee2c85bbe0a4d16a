package brender

import (
	"bytes"
	"io"
)

// DefaultBufferSize is the initial capacity of a render buffer when no estimate is given.
const DefaultBufferSize = 1024

// RenderFunc writes a rendered template to w. Code generated by template engines usually has this shape, or can
// be adapted to it with a closure.
type RenderFunc func(w io.Writer) error

// Buffer calls fn exactly once with an in-memory sink and returns what it wrote.
func Buffer(fn RenderFunc) ([]byte, error) {
	return BufferSize(DefaultBufferSize, fn)
}

// BufferSize is like [Buffer] but preallocates size bytes. The size is a hint and never limits the output, a
// non-positive size falls back to [DefaultBufferSize].
func BufferSize(size int, fn RenderFunc) ([]byte, error) {
	if size <= 0 {
		size = DefaultBufferSize
	}

	buf := bytes.NewBuffer(make([]byte, 0, size))
	if err := fn(buf); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
