package page

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Renderer executes the embedded layout. It is safe for concurrent use.
type Renderer struct {
	t *template.Template
}

// NewRenderer parses the embedded templates.
func NewRenderer() (*Renderer, error) {
	t, err := template.New("_root").ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{t: t}, nil
}

// Render writes the full document. Output is buffered so a template failure never
// leaves a half-written page on w.
func (r *Renderer) Render(w io.Writer, doc Document) error {
	return r.execute(w, "base", doc)
}

func (r *Renderer) execute(w io.Writer, name string, data any) error {
	var buf bytes.Buffer
	if err := r.t.ExecuteTemplate(&buf, name, data); err != nil {
		return fmt.Errorf("execute %s: %w", name, err)
	}
	_, err := buf.WriteTo(w)
	return err
}
