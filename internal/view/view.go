// Package view renders the server-side HTML pages through echo's
// Renderer hook.
package view

import (
	"embed"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"
)

//go:embed templates/*.html
var templates embed.FS

// Renderer executes the embedded templates by file name ("index.html").
type Renderer struct {
	templates *template.Template
}

// NewRenderer parses every embedded template. A parse error is a build
// defect, so it panics.
func NewRenderer() *Renderer {
	return &Renderer{
		templates: template.Must(template.ParseFS(templates, "templates/*.html")),
	}
}

func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}
