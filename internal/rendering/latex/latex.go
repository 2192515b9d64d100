package latex

import (
	"embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/c7harry/bayform/internal/types"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Render produces a complete standalone LaTeX document for doc in the given
// visual variant. The section order (skills, experience, education, projects,
// additional) and the omission of empty sections are fixed by a single shared
// skeleton template; the variants only supply preamble, header, and section
// title formatting.
func Render(doc types.ResumeDocument, tmpl types.LaTeXTemplate) (string, error) {
	parsed, err := parseVariant(tmpl)
	if err != nil {
		return "", err
	}

	var out strings.Builder
	if err := parsed.ExecuteTemplate(&out, "skeleton", buildTemplateData(doc)); err != nil {
		return "", fmt.Errorf("template error: failed to execute %s template: %w", tmpl, err)
	}
	return out.String(), nil
}

// parseVariant parses the shared skeleton together with one variant's
// formatting definitions.
func parseVariant(tmpl types.LaTeXTemplate) (*template.Template, error) {
	if !tmpl.Valid() {
		return nil, fmt.Errorf("template error: unknown LaTeX template: %q", tmpl)
	}

	parsed, err := template.New("resume").Funcs(template.FuncMap{
		"join": strings.Join,
	}).ParseFS(templateFS, "templates/skeleton.tex.tmpl", fmt.Sprintf("templates/%s.tex.tmpl", tmpl))
	if err != nil {
		return nil, fmt.Errorf("template error: failed to parse %s template: %w", tmpl, err)
	}
	return parsed, nil
}
