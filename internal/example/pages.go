package example

import (
	"context"
	"errors"
	"html/template"
	"io"

	"github.com/a-h/templ"
)

// ErrBroken is returned by the [Broken] page.
var ErrBroken = errors.New("example: broken page")

var greeting = template.Must(template.New("greeting").Parse(
	`<!doctype html><title>{{.Title}}</title><h1>Hello, {{.Name}}!</h1>`))

// Greeting is the data for the [GreetingTemplate].
type Greeting struct {
	Title string
	Name  string
}

// GreetingTemplate returns the html/template version of the home page.
func GreetingTemplate() *template.Template {
	return greeting
}

// Home is the home page as a templ component.
func Home(name string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, "<!doctype html><title>Home</title><h1>Hello, "); err != nil {
			return err
		}

		if _, err := io.WriteString(w, templ.EscapeString(name)); err != nil {
			return err
		}

		_, err := io.WriteString(w, "!</h1>")
		return err
	})
}

// Broken writes part of a page and then fails.
func Broken() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, "<!doctype html><h1>half"); err != nil {
			return err
		}

		return ErrBroken
	})
}
