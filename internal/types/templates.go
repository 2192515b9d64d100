package types

import "fmt"

// PDFTemplate identifies a visual template for PDF and preview rendering.
// This is a separate enumeration from LaTeXTemplate: the two namespaces share
// some names ("modern") but select disjoint renderers.
type PDFTemplate string

// PDF template identifiers.
const (
	PDFModern    PDFTemplate = "modern"
	PDFExecutive PDFTemplate = "executive"
	PDFCreative  PDFTemplate = "creative"
	PDFTech      PDFTemplate = "tech"
	PDFElegant   PDFTemplate = "elegant"
)

// PDFTemplates lists all PDF template identifiers in display order.
var PDFTemplates = []PDFTemplate{PDFModern, PDFExecutive, PDFCreative, PDFTech, PDFElegant}

// Valid reports whether t is a known PDF template identifier.
func (t PDFTemplate) Valid() bool {
	switch t {
	case PDFModern, PDFExecutive, PDFCreative, PDFTech, PDFElegant:
		return true
	}
	return false
}

// DisplayName returns the human-readable template label.
func (t PDFTemplate) DisplayName() string {
	switch t {
	case PDFModern:
		return "Modern"
	case PDFExecutive:
		return "Executive"
	case PDFCreative:
		return "Creative"
	case PDFTech:
		return "Tech"
	case PDFElegant:
		return "Elegant"
	}
	return string(t)
}

// ParsePDFTemplate converts a string identifier to a PDFTemplate.
func ParsePDFTemplate(s string) (PDFTemplate, error) {
	t := PDFTemplate(s)
	if !t.Valid() {
		return "", fmt.Errorf("unknown PDF template: %q", s)
	}
	return t, nil
}

// LaTeXTemplate identifies a visual variant for LaTeX source export.
type LaTeXTemplate string

// LaTeX template identifiers.
const (
	LaTeXModern  LaTeXTemplate = "modern"
	LaTeXClassic LaTeXTemplate = "classic"
	LaTeXMinimal LaTeXTemplate = "minimal"
)

// LaTeXTemplates lists all LaTeX template identifiers in display order.
var LaTeXTemplates = []LaTeXTemplate{LaTeXModern, LaTeXClassic, LaTeXMinimal}

// Valid reports whether t is a known LaTeX template identifier.
func (t LaTeXTemplate) Valid() bool {
	switch t {
	case LaTeXModern, LaTeXClassic, LaTeXMinimal:
		return true
	}
	return false
}

// DisplayName returns the human-readable template label.
func (t LaTeXTemplate) DisplayName() string {
	switch t {
	case LaTeXModern:
		return "Modern"
	case LaTeXClassic:
		return "Classic"
	case LaTeXMinimal:
		return "Minimal"
	}
	return string(t)
}

// ParseLaTeXTemplate converts a string identifier to a LaTeXTemplate.
func ParseLaTeXTemplate(s string) (LaTeXTemplate, error) {
	t := LaTeXTemplate(s)
	if !t.Valid() {
		return "", fmt.Errorf("unknown LaTeX template: %q", s)
	}
	return t, nil
}
