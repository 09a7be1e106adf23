// Package view renders the HTML pages. Templates are embedded in the
// binary and parsed once at construction.
package view

import (
	"embed"
	"html/template"
	"io"

	"github.com/xgumball/fwitter3clone/internal/model"
)

//go:embed templates/*.html
var templateFS embed.FS

// Renderer holds the parsed page templates.
type Renderer struct {
	list *template.Template
	form *template.Template
}

func NewRenderer() (*Renderer, error) {
	list, err := template.ParseFS(templateFS, "templates/list.html")
	if err != nil {
		return nil, err
	}
	form, err := template.ParseFS(templateFS, "templates/form.html")
	if err != nil {
		return nil, err
	}
	return &Renderer{list: list, form: form}, nil
}

// List writes the page enumerating every tweet.
func (r *Renderer) List(w io.Writer, tweets []model.Tweet) error {
	return r.list.Execute(w, struct{ Tweets []model.Tweet }{Tweets: tweets})
}

// Form writes the submission form page.
func (r *Renderer) Form(w io.Writer) error {
	return r.form.Execute(w, nil)
}
