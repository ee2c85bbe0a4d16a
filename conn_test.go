package brender_test

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/advdv/brender"
)

// fakeConn records everything the binder does to it.
type fakeConn struct {
	header http.Header
	status int
	body   []byte
	halted bool
	route  string // not touched by the binder
}

func newFakeConn() *fakeConn {
	return &fakeConn{header: http.Header{}, route: "/home"}
}

func (c *fakeConn) Header() http.Header { return c.header }
func (c *fakeConn) SetStatus(code int)  { c.status = code }
func (c *fakeConn) SetBody(body []byte) { c.body = body }
func (c *fakeConn) Halt()               { c.halted = true }

var _ brender.Conn = &fakeConn{}

// countingRender returns a routine that writes s and counts its invocations.
func countingRender(s string, calls *int) brender.RenderFunc {
	return func(w io.Writer) error {
		*calls++
		_, err := io.WriteString(w, s)
		return err
	}
}

// failingRender writes a partial output and then fails with err.
func failingRender(err error, calls *int) brender.RenderFunc {
	return func(w io.Writer) error {
		*calls++
		fmt.Fprint(w, "<h1>partial")
		return err
	}
}

var errDisk = errors.New("disk on fire")
