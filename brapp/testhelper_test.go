package brapp_test

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/advdv/brender"
	"github.com/advdv/brender/brapp"
	"github.com/advdv/brender/internal/example"
	"github.com/advdv/brender/view"
)

// TestEnv is a test environment with app-specific fields beyond BaseEnvironment.
type TestEnv struct {
	brapp.BaseEnvironment
	Greeting string `env:"GREETING" envDefault:"world"`
}

// Handlers render the example pages through the runtime.
type Handlers struct {
	rt *brapp.Runtime[TestEnv]
}

func NewHandlers(rt *brapp.Runtime[TestEnv]) *Handlers {
	return &Handlers{rt: rt}
}

func (h *Handlers) Home(ctx context.Context, w brender.ResponseWriter, _ *http.Request) error {
	if _, ok := h.rt.TryHTML(ctx, w, view.Templ(ctx, example.Home(h.rt.Env().Greeting))); !ok {
		return nil
	}

	brapp.Log(ctx).Info("rendered home")
	return nil
}

func (h *Handlers) Broken(ctx context.Context, w brender.ResponseWriter, _ *http.Request) error {
	if _, ok := h.rt.TryHTML(ctx, w, view.Templ(ctx, example.Broken())); !ok {
		return nil
	}

	w.Header().Set("X-Unreachable", "1")
	return nil
}

func (h *Handlers) Context(ctx context.Context, w brender.ResponseWriter, _ *http.Request) error {
	brapp.Span(ctx).AddEvent("context-test")
	brapp.Log(ctx).Info("testing context features")

	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(map[string]any{
		"service_name": h.rt.Env().ServiceName,
		"span_valid":   brapp.Span(ctx).SpanContext().IsValid(),
	})
}

// doGet performs an HTTP GET with the given context.
func doGet(ctx context.Context, client *http.Client, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	return client.Do(req)
}
