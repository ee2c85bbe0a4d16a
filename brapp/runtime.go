package brapp

import (
	"context"

	"github.com/advdv/brender"
	"go.uber.org/zap"
)

// Runtime provides access to app-scoped dependencies and renders with the app's logger and buffer settings.
// Inject this into handler constructors via fx instead of pulling from context.
//
// Example:
//
//	type Handlers struct {
//	    rt *brapp.Runtime[Env]
//	}
//
//	func (h *Handlers) Home(ctx context.Context, w brender.ResponseWriter, r *http.Request) error {
//	    if _, ok := h.rt.TryHTML(ctx, w, view.Templ(ctx, pages.Home())); !ok {
//	        return nil
//	    }
//	    return nil
//	}
type Runtime[E Environment] struct {
	env    E
	logger *zap.Logger
}

// NewRuntime creates a new Runtime with the given dependencies.
func NewRuntime[E Environment](env E, logger *zap.Logger) *Runtime[E] {
	return &Runtime[E]{env: env, logger: logger}
}

// Env returns the environment configuration.
func (r *Runtime[E]) Env() E {
	return r.env
}

// Logger returns the brender logger of the app.
func (r *Runtime[E]) Logger() brender.Logger {
	return NewBRenderLogger(r.logger)
}

// Render binds fn's output to w, see [brender.Render].
func (r *Runtime[E]) Render(w brender.ResponseWriter, fn brender.RenderFunc) (brender.ResponseWriter, error) {
	return brender.RenderSize(w, r.env.renderSize(), fn)
}

// RenderHTML binds fn's output to w as HTML, see [brender.RenderHTML].
func (r *Runtime[E]) RenderHTML(w brender.ResponseWriter, fn brender.RenderFunc) (brender.ResponseWriter, error) {
	return brender.RenderHTMLSize(w, r.env.renderSize(), fn)
}

// Try is [brender.Try] with a trace-correlated logger. Failures are also recorded on the span in ctx.
func (r *Runtime[E]) Try(
	ctx context.Context, w brender.ResponseWriter, fn brender.RenderFunc,
) (brender.ResponseWriter, bool) {
	return r.bind(ctx, w).Try(fn)
}

// TryHTML is [brender.TryHTML] with a trace-correlated logger. Failures are also recorded on the span in ctx.
func (r *Runtime[E]) TryHTML(
	ctx context.Context, w brender.ResponseWriter, fn brender.RenderFunc,
) (brender.ResponseWriter, bool) {
	return r.bind(ctx, w).TryHTML(fn)
}

func (r *Runtime[E]) bind(ctx context.Context, w brender.ResponseWriter) brender.Binder[brender.ResponseWriter] {
	logs := spanLogger{
		Logger: NewBRenderLogger(r.logger.With(traceFields(ctx)...)),
		ctx:    ctx,
	}

	return brender.Bind(w).Size(r.env.renderSize()).Logger(logs).AddCallerSkip(1)
}
