// Package example implements example pages and middleware in an outside package.
package example

import (
	"context"
	"net/http"

	"github.com/advdv/brender"
	"go.uber.org/zap"
)

// ctxKey type scopes middlware values.
type ctxKey string

// Middleware provides an example for middleware that adds a request logger to the context.
func Middleware(logs *zap.Logger) brender.Middleware {
	return func(n brender.BareHandler) brender.BareHandler {
		return brender.BareHandlerFunc(func(w brender.ResponseWriter, r *http.Request) error {
			logs := logs.With(zap.String("method", r.Method), zap.String("path", r.URL.Path))

			ctx := context.WithValue(r.Context(), ctxKey("zap"), logs)

			return n.ServeBareBHTTP(w, r.WithContext(ctx))
		})
	}
}

// Log returns the logger added by [Middleware], or a no-op logger.
func Log(ctx context.Context) *zap.Logger {
	v, ok := ctx.Value(ctxKey("zap")).(*zap.Logger)
	if !ok {
		return zap.NewNop()
	}

	return v
}
