// Package view turns template engine output into brender render routines.
package view

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"io"

	"github.com/a-h/templ"
	"github.com/advdv/brender"
)

// ErrNilTemplate is returned by routines built from a nil template.
var ErrNilTemplate = errors.New("view: template is nil")

// Templ renders a templ component with ctx. The component sees request-scoped values when ctx is the request's
// context.
func Templ(ctx context.Context, c templ.Component) brender.RenderFunc {
	return func(w io.Writer) error {
		if c == nil {
			return errors.New("view: component is nil")
		}

		if err := c.Render(ctx, w); err != nil {
			return fmt.Errorf("render templ component: %w", err)
		}

		return nil
	}
}

// Template executes t with data.
func Template(t *template.Template, data any) brender.RenderFunc {
	return TemplateName(t, "", data)
}

// TemplateName executes the template called name from the set t, or t itself if name is empty.
func TemplateName(t *template.Template, name string, data any) brender.RenderFunc {
	return func(w io.Writer) error {
		if t == nil {
			return ErrNilTemplate
		}

		if name == "" {
			return t.Execute(w, data)
		}

		return t.ExecuteTemplate(w, name, data)
	}
}
