package brender

import (
	"net/http"
	"runtime"
	"strconv"
)

// Site identifies the code that asked for a render.
type Site struct {
	Func string
	File string
	Line int
}

func (s Site) String() string { return s.File + ":" + strconv.Itoa(s.Line) }

// callerSite returns the site skip frames above its caller.
func callerSite(skip int) Site {
	pc, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return Site{File: "???"}
	}

	site := Site{File: file, Line: line}
	if fn := runtime.FuncForPC(pc); fn != nil {
		site.Func = fn.Name()
	}

	return site
}

// Try renders fn into conn like [Render]. When rendering fails the cause is logged together with the caller's
// location, conn is turned into a halted 500 response and ok is false. Handlers are expected to return conn as-is
// in that case:
//
//	conn, ok := brender.Try(logs, conn, page)
//	if !ok {
//	    return conn
//	}
func Try[C Conn](logs Logger, conn C, fn RenderFunc) (C, bool) {
	return try(logs, conn, DefaultBufferSize, false, fn, 2)
}

// TrySize is [Try] with a size estimate.
func TrySize[C Conn](logs Logger, conn C, size int, fn RenderFunc) (C, bool) {
	return try(logs, conn, size, false, fn, 2)
}

// TryHTML is [Try] on top of [RenderHTML].
func TryHTML[C Conn](logs Logger, conn C, fn RenderFunc) (C, bool) {
	return try(logs, conn, DefaultBufferSize, true, fn, 2)
}

// TryHTMLSize is [TryHTML] with a size estimate.
func TryHTMLSize[C Conn](logs Logger, conn C, size int, fn RenderFunc) (C, bool) {
	return try(logs, conn, size, true, fn, 2)
}

func try[C Conn](logs Logger, conn C, size int, html bool, fn RenderFunc, skip int) (C, bool) {
	var err error
	if html {
		conn, err = RenderHTMLSize(conn, size, fn)
	} else {
		conn, err = RenderSize(conn, size, fn)
	}

	if err == nil {
		return conn, true
	}

	rerr, _ := AsRenderError[C](err)
	if logs != nil {
		logs.LogRenderError(callerSite(skip), rerr.Unwrap())
	}

	conn = rerr.Conn
	conn.SetStatus(http.StatusInternalServerError)
	conn.Halt()

	return conn, false
}
