package rendering

import (
	"fmt"

	"github.com/c7harry/bayform/internal/rendering/doctree"
	"github.com/c7harry/bayform/internal/rendering/latex"
	"github.com/c7harry/bayform/internal/rendering/preview"
	"github.com/c7harry/bayform/internal/types"
)

// Format identifies a render output format.
type Format string

// Supported output formats.
const (
	FormatLaTeX   Format = "latex"
	FormatPDF     Format = "pdf"
	FormatPreview Format = "preview"
)

// Valid reports whether f is a known format.
func (f Format) Valid() bool {
	switch f {
	case FormatLaTeX, FormatPDF, FormatPreview:
		return true
	}
	return false
}

// Request selects a renderer by output format and template identifier.
// The template identifier is interpreted in the namespace of the format:
// LaTeX template ids for FormatLaTeX, PDF template ids otherwise.
type Request struct {
	Format   Format
	Template string
}

// Output holds the result of a render call. Exactly one of the payload
// fields is populated, matching Format.
type Output struct {
	Format  Format
	LaTeX   string
	PDF     []byte
	Preview string
}

// RenderLaTeX renders doc as standalone LaTeX source in the given variant.
func RenderLaTeX(doc types.ResumeDocument, tmpl types.LaTeXTemplate) (string, error) {
	return latex.Render(doc, tmpl)
}

// RenderPDF renders doc as single-page PDF bytes in the given variant.
func RenderPDF(doc types.ResumeDocument, tmpl types.PDFTemplate) ([]byte, error) {
	return doctree.RenderPDF(doc, tmpl)
}

// RenderPreview renders doc as a fixed-proportion terminal preview styled
// after the given PDF variant.
func RenderPreview(doc types.ResumeDocument, tmpl types.PDFTemplate) string {
	return preview.Render(doc, tmpl)
}

// Render dispatches a document to the renderer selected by req. Rendering is
// pure: the document is never mutated and repeated calls with a structurally
// equal document yield identical output, so callers may memoize or call
// concurrently without coordination.
func Render(doc types.ResumeDocument, req Request) (*Output, error) {
	switch req.Format {
	case FormatLaTeX:
		tmpl, err := types.ParseLaTeXTemplate(req.Template)
		if err != nil {
			return nil, &RenderError{Message: "invalid LaTeX template selection", Cause: err}
		}
		src, err := latex.Render(doc, tmpl)
		if err != nil {
			return nil, err
		}
		return &Output{Format: FormatLaTeX, LaTeX: src}, nil

	case FormatPDF:
		tmpl, err := types.ParsePDFTemplate(req.Template)
		if err != nil {
			return nil, &RenderError{Message: "invalid PDF template selection", Cause: err}
		}
		pdf, err := doctree.RenderPDF(doc, tmpl)
		if err != nil {
			return nil, err
		}
		return &Output{Format: FormatPDF, PDF: pdf}, nil

	case FormatPreview:
		tmpl, err := types.ParsePDFTemplate(req.Template)
		if err != nil {
			return nil, &RenderError{Message: "invalid preview template selection", Cause: err}
		}
		return &Output{Format: FormatPreview, Preview: preview.Render(doc, tmpl)}, nil
	}

	return nil, &RenderError{Message: fmt.Sprintf("unknown output format: %q", req.Format)}
}
