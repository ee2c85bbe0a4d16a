// Package brapptest provides test helpers for brapp applications.
//
// It constructs the identical DI graph as [brapp.NewApp] but uses
// [fxtest.App] which fails the test immediately on DI errors.
//
// Example:
//
//	brapptest.SetBaseEnv(t, 18091)
//	app := brapptest.New[TestEnv](t, routing, brapp.WithFx(fx.Provide(NewHandlers)))
//	app.RequireStart()
//	t.Cleanup(app.RequireStop)
package brapptest

import (
	"testing"

	"github.com/advdv/brender/brapp"
	"go.uber.org/fx/fxtest"
)

// App embeds *fxtest.App for testing brapp applications.
type App struct {
	*fxtest.App
}

// New creates a test app with the same DI graph as [brapp.NewApp].
func New[E brapp.Environment](t testing.TB, routing any, opts ...brapp.Option) *App {
	return &App{App: fxtest.New(t, brapp.FxOptions[E](routing, opts...)...)}
}
