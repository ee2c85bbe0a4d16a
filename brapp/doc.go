// Package brapp provides a batteries-included host for serving brender handlers.
//
// # Overview
//
// brapp handles the boilerplate of setting up an HTTP server that renders pages with brender: environment
// parsing, structured logging, OpenTelemetry tracing and graceful shutdown. A complete application can be created in
// a single call:
//
//	brapp.NewApp[Env](func(m *brapp.Mux, h *Handlers) {
//	    m.HandleFunc("GET /{$}", h.Home)
//	    m.HandleFunc("GET /items/{id}", h.Item)
//	},
//	    brapp.WithFx(fx.Provide(NewHandlers)),
//	).Run()
//
// # Environment Configuration
//
// Define your environment by embedding [BaseEnvironment]:
//
//	type Env struct {
//	    brapp.BaseEnvironment
//	    Greeting string `env:"GREETING" envDefault:"world"`
//	}
//
// BaseEnvironment provides the following environment variables:
//
//	| Variable                 | Required | Default | Description                                        |
//	|--------------------------|----------|---------|----------------------------------------------------|
//	| BR_PORT                  | Yes      | -       | Port the HTTP server listens on                    |
//	| BR_SERVICE_NAME          | Yes      | -       | Service name for logging and tracing               |
//	| BR_READINESS_CHECK_PATH  | No       | /health | Health check endpoint, not buffered or traced      |
//	| BR_LOG_LEVEL             | No       | info    | Log level (debug, info, warn, error)               |
//	| BR_OTEL_EXPORTER         | No       | stdout  | Trace exporter: "stdout" or "none"                 |
//	| BR_BUFFER_LIMIT          | No       | -1      | Max bytes a handler may buffer, -1 for no limit    |
//	| BR_RENDER_SIZE           | No       | 1024    | Initial size of the render buffer                  |
//
// # Runtime
//
// [Runtime] provides access to app-scoped dependencies and should be injected into handler constructors via fx.
// Its render methods use BR_RENDER_SIZE for the buffer, and its Try methods log failures with trace correlation and
// record a "render.failed" event on the request span:
//
//	func (h *Handlers) Home(ctx context.Context, w brender.ResponseWriter, r *http.Request) error {
//	    if _, ok := h.rt.TryHTML(ctx, w, view.Templ(ctx, pages.Home())); !ok {
//	        return nil // w is a halted 500 response
//	    }
//	    return nil
//	}
//
// # Request Context
//
// [Log] returns a zap logger with the trace_id and span_id of the request, [Span] returns the request span.
//
// # Testing
//
// The brapptest package builds the same dependency graph with fxtest and provides env helpers.
package brapp
