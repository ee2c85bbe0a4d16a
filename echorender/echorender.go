// Package echorender binds rendered templates to echo responses.
package echorender

import (
	"errors"
	"net/http"

	"github.com/a-h/templ"
	"github.com/advdv/brender"
	"github.com/advdv/brender/view"
	"github.com/labstack/echo/v4"
)

// ErrCommitted is returned when committing a connection whose echo response was already written.
var ErrCommitted = errors.New("echorender: response already committed")

// ContentTypeText is set when a halted connection without a body is committed.
const ContentTypeText = "text/plain; charset=utf-8"

// Conn implements [brender.Conn] on top of an echo context. Header, status and body are held until [Conn.Commit],
// so a connection that is never committed leaves the echo response untouched.
type Conn struct {
	ctx    echo.Context
	header http.Header
	status int
	body   []byte
	halted bool
}

// NewConn wraps c.
func NewConn(c echo.Context) *Conn {
	return &Conn{ctx: c, header: http.Header{}}
}

func (c *Conn) Header() http.Header { return c.header }
func (c *Conn) SetStatus(code int)  { c.status = code }
func (c *Conn) SetBody(body []byte) { c.body = body }
func (c *Conn) Halt()               { c.halted = true }
func (c *Conn) Halted() bool        { return c.halted }

// Status returns the status that Commit will write.
func (c *Conn) Status() int {
	if c.status == 0 {
		return http.StatusOK
	}

	return c.status
}

// Commit copies the header onto the echo response and writes status and body. A halted connection without a body
// gets the status text as a plain text body.
func (c *Conn) Commit() error {
	resp := c.ctx.Response()
	if resp.Committed {
		return ErrCommitted
	}

	body := c.body
	if body == nil && c.halted {
		body = []byte(http.StatusText(c.Status()))
		c.header.Set(echo.HeaderContentType, ContentTypeText)
	}

	for k, vs := range c.header {
		resp.Header()[k] = vs
	}

	resp.WriteHeader(c.Status())
	if _, err := resp.Write(body); err != nil {
		return err
	}

	return nil
}

// Render renders t as HTML with the request's context and responds with status. If rendering fails nothing is
// written, no header is set and a 500 [echo.HTTPError] is returned with the render error as its internal error, so echo's error
// handler decides what the client sees.
func Render(c echo.Context, status int, t templ.Component) error {
	conn, err := brender.RenderHTML(NewConn(c), view.Templ(c.Request().Context(), t))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError).SetInternal(err)
	}

	conn.SetStatus(status)
	return conn.Commit()
}

type logger struct{ l echo.Logger }

func (l logger) LogUnhandledServeError(err error) {
	l.l.Errorf("brender: unhandled server error: %s", err)
}

func (l logger) LogImplicitFlushError(err error) {
	l.l.Errorf("brender: error while flushing implicitly: %s", err)
}

func (l logger) LogRenderError(site brender.Site, err error) {
	l.l.Errorf("brender: %s render error: %s", site, err)
}

// NewLogger reports brender diagnostics to an echo logger, usually c.Logger() or e.Logger.
func NewLogger(l echo.Logger) brender.Logger {
	return logger{l}
}
