// Command brenderd serves the example pages with brapp.
package main

import (
	"context"
	"errors"
	"io/fs"
	"log"
	"net/http"

	"github.com/advdv/brender"
	"github.com/advdv/brender/brapp"
	"github.com/advdv/brender/internal/example"
	"github.com/advdv/brender/view"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Env is the environment of the demo server.
type Env struct {
	brapp.BaseEnvironment
	Greeting string `env:"BRENDERD_GREETING" envDefault:"world"`
}

// Pages renders the example pages.
type Pages struct {
	rt *brapp.Runtime[Env]
}

// NewPages creates the page handlers.
func NewPages(rt *brapp.Runtime[Env]) *Pages {
	return &Pages{rt: rt}
}

// Home renders the templ home page.
func (p *Pages) Home(ctx context.Context, w brender.ResponseWriter, _ *http.Request) error {
	brapp.Log(ctx).Info("rendering home", zap.String("greeting", p.rt.Env().Greeting))

	if _, ok := p.rt.TryHTML(ctx, w, view.Templ(ctx, example.Home(p.rt.Env().Greeting))); !ok {
		return nil
	}

	brapp.Log(ctx).Debug("home rendered")
	return nil
}

// Hello renders the html/template home page for the name in the path.
func (p *Pages) Hello(ctx context.Context, w brender.ResponseWriter, r *http.Request) error {
	if _, ok := p.rt.TryHTML(ctx, w, view.Template(example.GreetingTemplate(), example.Greeting{
		Title: "Hello",
		Name:  r.PathValue("name"),
	})); !ok {
		return nil
	}

	brapp.Log(ctx).Debug("hello rendered", zap.String("name", r.PathValue("name")))
	return nil
}

// Broken renders a page that always fails, the response is a halted 500.
func (p *Pages) Broken(ctx context.Context, w brender.ResponseWriter, _ *http.Request) error {
	if _, ok := p.rt.TryHTML(ctx, w, view.Templ(ctx, example.Broken())); !ok {
		return nil
	}

	brapp.Log(ctx).Warn("broken page rendered")
	return nil
}

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("brenderd: load .env: %v", err)
	}

	brapp.NewApp[Env](func(m *brapp.Mux, logger *zap.Logger, p *Pages) {
		m.Use(example.Middleware(logger))
		m.HandleFunc("GET /{$}", p.Home)
		m.HandleFunc("GET /hello/{name}", p.Hello)
		m.HandleFunc("GET /broken", p.Broken)
	},
		brapp.WithFx(fx.Provide(NewPages)),
	).Run()
}
