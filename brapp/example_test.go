package brapp_test

import (
	"context"
	"net/http"

	"github.com/advdv/brender"
	"github.com/advdv/brender/brapp"
	"github.com/advdv/brender/internal/example"
	"github.com/advdv/brender/view"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Env defines the environment variables for the application.
// Embed brapp.BaseEnvironment to get the server fields.
type Env struct {
	brapp.BaseEnvironment
	Greeting string `env:"GREETING" envDefault:"world"`
}

// PageHandlers renders the pages of the site.
type PageHandlers struct {
	rt *brapp.Runtime[Env]
}

func NewPageHandlers(rt *brapp.Runtime[Env]) *PageHandlers {
	return &PageHandlers{rt: rt}
}

// Home renders a templ component.
// Demonstrates: Runtime.TryHTML for early return on a failed render, Log for trace-correlated logging.
func (h *PageHandlers) Home(ctx context.Context, w brender.ResponseWriter, _ *http.Request) error {
	if _, ok := h.rt.TryHTML(ctx, w, view.Templ(ctx, example.Home(h.rt.Env().Greeting))); !ok {
		return nil
	}

	brapp.Log(ctx).Info("rendered home", zap.String("greeting", h.rt.Env().Greeting))
	return nil
}

// Hello renders an html/template and returns the failure instead of halting.
// Demonstrates: Runtime.RenderHTML, whose error responds with a 500 through the handler chain.
func (h *PageHandlers) Hello(_ context.Context, w brender.ResponseWriter, r *http.Request) error {
	_, err := h.rt.RenderHTML(w, view.Template(example.GreetingTemplate(), example.Greeting{
		Title: "Hello",
		Name:  r.PathValue("name"),
	}))
	return err
}

// Example demonstrates a complete brapp application.
func Example() {
	brapp.NewApp[Env](
		func(m *brapp.Mux, h *PageHandlers) {
			m.HandleFunc("GET /{$}", h.Home)
			m.HandleFunc("GET /hello/{name}", h.Hello)
		},
		brapp.WithFx(fx.Provide(NewPageHandlers)),
	).Run()
}
