// Package delivery turns rendered outputs into files and clipboard text.
package delivery

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/c7harry/bayform/internal/types"
)

// sanitize collapses whitespace runs in a filename component to underscores.
func sanitize(s string) string {
	return strings.Join(strings.Fields(strings.TrimSpace(s)), "_")
}

// TexFilename returns the export filename for LaTeX source:
// {fullName}_Resume_{TemplateDisplayName}.tex with spaces as underscores.
func TexFilename(fullName string, tmpl types.LaTeXTemplate) string {
	return fmt.Sprintf("%s_Resume_%s.tex", sanitize(fullName), sanitize(tmpl.DisplayName()))
}

// PDFFilename returns the export filename for PDF output:
// {fullName}_Resume_{TemplateDisplayName}.pdf with spaces as underscores.
func PDFFilename(fullName string, tmpl types.PDFTemplate) string {
	return fmt.Sprintf("%s_Resume_%s.pdf", sanitize(fullName), sanitize(tmpl.DisplayName()))
}

// WriteTex writes LaTeX source under dir using the canonical filename and
// returns the full path.
func WriteTex(dir, fullName string, tmpl types.LaTeXTemplate, source string) (string, error) {
	path := filepath.Join(dir, TexFilename(fullName, tmpl))
	if err := os.WriteFile(path, []byte(source), 0644); err != nil {
		return "", fmt.Errorf("failed to write LaTeX file %s: %w", path, err)
	}
	return path, nil
}

// WritePDF writes PDF bytes under dir using the canonical filename and
// returns the full path.
func WritePDF(dir, fullName string, tmpl types.PDFTemplate, pdf []byte) (string, error) {
	path := filepath.Join(dir, PDFFilename(fullName, tmpl))
	if err := os.WriteFile(path, pdf, 0644); err != nil {
		return "", fmt.Errorf("failed to write PDF file %s: %w", path, err)
	}
	return path, nil
}

// CopyToClipboard places the rendered LaTeX source on the system clipboard.
// The content is identical to what WriteTex persists; only the medium differs.
func CopyToClipboard(source string) error {
	if err := clipboard.WriteAll(source); err != nil {
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}
	return nil
}
