package brapptest

import (
	"net/http"
	"net/http/httptest"

	"github.com/advdv/brender"
)

// CallHandler invokes a [brender.HandlerFunc] with a buffered response writer and
// returns the recorded response. It handles the boilerplate of wrapping
// [httptest.ResponseRecorder] in a [brender.ResponseWriter] and flushing the
// buffer afterward. A handler that halted its response after a failed render
// is recorded like any other response.
func CallHandler(handler brender.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	w := brender.NewResponseWriter(rec, -1)

	if err := handler(req.Context(), w, req); err != nil {
		panic("brapptest: handler returned error: " + err.Error())
	}

	if err := w.FlushBuffer(); err != nil {
		panic("brapptest: FlushBuffer failed: " + err.Error())
	}

	return rec
}
