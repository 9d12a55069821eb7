package api

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"

	"github.com/waresmart/warehouse-console/internal/core/domain"
	"github.com/waresmart/warehouse-console/pkg/format"
)

//go:embed templates/*.html
var templateFS embed.FS

// pageFiles lists the files each named page is assembled from. Every set
// starts with base.html, whose "base" template is the entry point.
var pageFiles = map[string][]string{
	"login":       {"base.html", "login.html"},
	"error":       {"base.html", "error.html"},
	"dashboard":   {"base.html", "shell.html", "dashboard.html"},
	"users":       {"base.html", "shell.html", "users.html"},
	"placeholder": {"base.html", "shell.html", "placeholder.html"},
}

var templateFuncs = template.FuncMap{
	"number":    format.Number,
	"currency":  format.Currency,
	"compact":   format.Compact,
	"roleLabel": domain.RoleLabel,
}

// Renderer implements echo.Renderer over the embedded page templates.
type Renderer struct {
	pages map[string]*template.Template
}

func NewRenderer() (*Renderer, error) {
	pages := make(map[string]*template.Template, len(pageFiles))
	for name, files := range pageFiles {
		paths := make([]string, len(files))
		for i, f := range files {
			paths[i] = "templates/" + f
		}
		t, err := template.New(name).Funcs(templateFuncs).ParseFS(templateFS, paths...)
		if err != nil {
			return nil, fmt.Errorf("parse page %s: %w", name, err)
		}
		pages[name] = t
	}
	return &Renderer{pages: pages}, nil
}

func (r *Renderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("unknown page %q", name)
	}
	return t.ExecuteTemplate(w, "base", data)
}
