package doctree

import (
	"strings"
	"testing"

	"github.com/go-pdf/fpdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c7harry/bayform/internal/types"
)

func TestRenderPDF_AllVariantsProduceValidPDF(t *testing.T) {
	doc := sampleDocument()
	for _, tmpl := range types.PDFTemplates {
		pdf, err := RenderPDF(doc, tmpl)
		require.NoError(t, err, "variant %s", tmpl)
		require.NotEmpty(t, pdf, "variant %s", tmpl)
		assert.Equal(t, "%PDF", string(pdf[:4]), "variant %s", tmpl)
	}
}

func TestRenderPDF_Deterministic(t *testing.T) {
	doc := sampleDocument()
	first, err := RenderPDF(doc, types.PDFModern)
	require.NoError(t, err)
	second, err := RenderPDF(doc, types.PDFModern)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRenderPDF_UnknownTemplate(t *testing.T) {
	_, err := RenderPDF(sampleDocument(), types.PDFTemplate("classic"))
	assert.Error(t, err)
}

func TestRenderPDF_MinimalDocument(t *testing.T) {
	doc := types.ResumeDocument{
		PersonalInfo: types.PersonalInfo{FullName: "Jane Doe"},
	}
	for _, tmpl := range types.PDFTemplates {
		pdf, err := RenderPDF(doc, tmpl)
		require.NoError(t, err, "variant %s", tmpl)
		assert.NotEmpty(t, pdf, "variant %s", tmpl)
	}
}

func TestRenderPDF_LongAsideInNarrowColumn(t *testing.T) {
	doc := sampleDocument()
	doc.Projects = []types.Project{{
		Name: "Orchestrator",
		Technologies: []string{
			"Go", "Docker", "Kubernetes", "Terraform", "PostgreSQL",
			"Redis", "Kafka", "Prometheus", "Grafana", "OpenTelemetry",
		},
		Description: "Cluster scheduling service.",
	}}
	doc.Experience[0].Position = strings.Repeat("Principal ", 6) + "Engineer"

	for _, tmpl := range types.PDFTemplates {
		pdf, err := RenderPDF(doc, tmpl)
		require.NoError(t, err, "variant %s", tmpl)
		assert.Equal(t, "%PDF", string(pdf[:4]), "variant %s", tmpl)
	}
}

func TestLineWithAside_WideAsideWrapsToOwnLine(t *testing.T) {
	sheet, ok := SheetFor(types.PDFTech)
	require.True(t, ok)

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, margin)
	pdf.AddPage()
	w := &pdfWriter{pdf: pdf, sheet: sheet, tr: pdf.UnicodeTranslatorFromDescriptor("")}

	pdf.SetXY(margin, margin)
	start := pdf.GetY()
	aside := "Go, Docker, Kubernetes, Terraform, PostgreSQL, Redis, Kafka"
	w.lineWithAside("Orchestrator", aside, "B", sheet.BaseSize, sheet.Text, 40)

	require.False(t, pdf.Err())
	// The aside cannot share the line, so the main text and the aside each
	// take at least a line of their own.
	assert.GreaterOrEqual(t, pdf.GetY()-start, 2*lineHeight)
}

func TestLineWithAside_ShortAsideStaysInline(t *testing.T) {
	sheet, ok := SheetFor(types.PDFModern)
	require.True(t, ok)

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, margin)
	pdf.AddPage()
	w := &pdfWriter{pdf: pdf, sheet: sheet, tr: pdf.UnicodeTranslatorFromDescriptor("")}

	pdf.SetXY(margin, margin)
	start := pdf.GetY()
	w.lineWithAside("Engineer", "2020 - 2024", "B", sheet.BaseSize, sheet.Text, pageWidth-2*margin)

	require.False(t, pdf.Err())
	assert.InDelta(t, lineHeight, pdf.GetY()-start, 0.01)
}

func TestWritePDF_InputTreeNotMutated(t *testing.T) {
	sheet, _ := SheetFor(types.PDFElegant)
	tree := Build(sampleDocument(), sheet)

	before := collect(tree, KindHeading)
	_, err := WritePDF(tree, sheet)
	require.NoError(t, err)
	assert.Equal(t, before, collect(tree, KindHeading))
}
