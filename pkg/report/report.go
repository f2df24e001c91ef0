// Package report renders report tables of plots as HTML fragments for the
// diagnostics web page and as plain text tables for terminals.
package report

import (
	"bytes"
	"embed"
	"html/template"
	"io/fs"
	"os"
	"strings"

	"github.com/pkg/errors"
)

//go:embed templates/*.tmpl
var embeddedTemplates embed.FS

// Vars are the variables available in every template.
type Vars struct {
	Title string
	// PlotTable is []plot.ReportRow for labelled tables or [][]string for image rows.
	PlotTable interface{}
	NumRows   int
	Cols      int
	ImgFormat string
}

// Renderer renders named templates.
type Renderer struct {
	templates fs.FS
}

// NewRenderer returns Renderer reading templates from templatePath,
// or from templates built into the binary when templatePath is empty.
func NewRenderer(templatePath string) (*Renderer, error) {
	if templatePath == "" {
		sub, err := fs.Sub(embeddedTemplates, "templates")
		if err != nil {
			return nil, errors.Wrap(err, "cannot open embedded templates")
		}
		return &Renderer{templates: sub}, nil
	}

	info, err := os.Stat(templatePath)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot open template path %q", templatePath)
	}
	if !info.IsDir() {
		return nil, errors.Errorf("template path %q is not a directory", templatePath)
	}
	return &Renderer{templates: os.DirFS(templatePath)}, nil
}

var funcs = template.FuncMap{
	"hasError": func(content string) bool {
		return strings.HasSuffix(content, " - Error")
	},
}

// Render executes template name with vars.
func (r *Renderer) Render(name string, vars Vars) (string, error) {
	tmpl, err := template.New(name).Funcs(funcs).ParseFS(r.templates, name)
	if err != nil {
		return "", errors.Wrapf(err, "cannot load template %q", name)
	}

	buffer := &bytes.Buffer{}
	if err := tmpl.Execute(buffer, vars); err != nil {
		return "", errors.Wrapf(err, "cannot render template %q", name)
	}
	return strings.TrimRight(buffer.String(), "\n"), nil
}

// StripNewlines removes line breaks from rendered HTML.
func StripNewlines(html string) string {
	return strings.Replace(html, "\n", "", -1)
}
