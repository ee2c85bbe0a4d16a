package brender

import "net/http"

// ContentTypeHTML is the content type set by the HTML variants of the binder.
const ContentTypeHTML = "text/html; charset=utf-8"

// Conn is the response side of a request that rendered output can be bound to. It is implemented by the host
// server, the binder only ever consumes a Conn and hands the same value back.
type Conn interface {
	Header() http.Header
	SetStatus(code int)
	SetBody(body []byte)
	Halt()
}
