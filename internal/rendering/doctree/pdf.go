package doctree

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/skip2/go-qrcode"

	"github.com/c7harry/bayform/internal/types"
)

// Page geometry in millimeters (ISO A4, portrait).
const (
	pageWidth  = 210.0
	pageHeight = 297.0
	margin     = 15.0
	lineHeight = 4.6
	gutter     = 5.0
	qrSize     = 18.0

	// minMainWidth is the narrowest cell the main text of a line may get
	// before its aside or label wraps onto a line of its own.
	minMainWidth = 20.0
)

// RenderPDF renders doc with the given template and serializes the result to
// PDF bytes. The call is pure: doc is never mutated and equal inputs produce
// identical trees.
func RenderPDF(doc types.ResumeDocument, tmpl types.PDFTemplate) ([]byte, error) {
	sheet, ok := SheetFor(tmpl)
	if !ok {
		return nil, fmt.Errorf("render error: unknown PDF template: %q", tmpl)
	}
	return WritePDF(Build(doc, sheet), sheet)
}

// WritePDF serializes a declarative tree onto a single fixed-size A4 page.
func WritePDF(tree *Node, sheet StyleSheet) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	// Fixed document timestamps and sorted resource catalogs keep repeated
	// renders byte-identical.
	pdf.SetCreationDate(time.Unix(0, 0).UTC())
	pdf.SetModificationDate(time.Unix(0, 0).UTC())
	pdf.SetCatalogSort(true)
	pdf.SetAutoPageBreak(false, margin)
	pdf.SetMargins(margin, margin, margin)
	pdf.AddPage()

	w := &pdfWriter{
		pdf:   pdf,
		sheet: sheet,
		tr:    pdf.UnicodeTranslatorFromDescriptor(""),
	}
	w.page(tree)

	if pdf.Err() {
		return nil, fmt.Errorf("render error: PDF serialization failed: %w", pdf.Error())
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render error: PDF output failed: %w", err)
	}
	return buf.Bytes(), nil
}

// pdfWriter walks the tree and issues fpdf drawing calls.
type pdfWriter struct {
	pdf   *fpdf.Fpdf
	sheet StyleSheet
	tr    func(string) string
}

func (w *pdfWriter) page(tree *Node) {
	contentWidth := pageWidth - 2*margin

	// Header block first, then columns.
	var columns []*Node
	for _, child := range tree.Children {
		if child.Kind == KindColumn {
			columns = append(columns, child)
			continue
		}
		w.headerNode(child, contentWidth)
	}

	top := w.pdf.GetY() + 2
	x := margin
	for _, col := range columns {
		width := col.Width * contentWidth
		w.column(col, x, top, width)
		x += width + gutter
	}
}

func (w *pdfWriter) headerNode(n *Node, width float64) {
	align := "L"
	if w.sheet.CenterHeader {
		align = "C"
	}

	switch n.Kind {
	case KindName:
		w.setFont("B", w.sheet.NameSize, w.sheet.Text)
		w.pdf.CellFormat(width, w.sheet.NameSize*0.45, w.tr(n.Text), "", 1, align, false, 0, "")
	case KindProfession:
		w.setFont("", w.sheet.BaseSize+2, w.sheet.Accent)
		w.pdf.CellFormat(width, lineHeight+1, w.tr(n.Text), "", 1, align, false, 0, "")
	case KindContact:
		w.setFont("", w.sheet.BaseSize, w.sheet.Subtle)
		w.pdf.MultiCell(width, lineHeight, w.tr(n.Text), "", align, false)
	case KindQR:
		w.qr(n.Text)
	case KindRule:
		y := w.pdf.GetY() + 1.5
		w.pdf.SetDrawColor(w.sheet.Accent.R, w.sheet.Accent.G, w.sheet.Accent.B)
		w.pdf.SetLineWidth(0.5)
		w.pdf.Line(margin, y, pageWidth-margin, y)
		w.pdf.SetY(y + 1)
	}
}

// qr draws the QR code in the top-right corner of the page. Encoding
// failures degrade to omission; a broken placeholder is never drawn.
func (w *pdfWriter) qr(source string) {
	png, err := qrcode.Encode(source, qrcode.Medium, 256)
	if err != nil {
		return
	}
	name := "qr-" + w.sheet.Template.DisplayName()
	opts := fpdf.ImageOptions{ImageType: "PNG"}
	w.pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(png))
	w.pdf.ImageOptions(name, pageWidth-margin-qrSize, margin, qrSize, qrSize, false, opts, 0, "")
}

func (w *pdfWriter) column(col *Node, x, top, width float64) {
	textX := x
	textWidth := width

	if col.Fill {
		fill := w.sheet.SidebarFill
		w.pdf.SetFillColor(fill.R, fill.G, fill.B)
		w.pdf.Rect(x, top, width, pageHeight-margin-top, "F")
		textX += 3
		textWidth -= 6
	}

	w.pdf.SetXY(textX, top+2)
	for _, n := range col.Children {
		w.pdf.SetX(textX)
		w.node(n, textX, textWidth)
	}
}

func (w *pdfWriter) node(n *Node, x, width float64) {
	switch n.Kind {
	case KindHeading:
		text := n.Text
		if w.sheet.HeadingUpper {
			text = upper(text)
		}
		w.pdf.SetY(w.pdf.GetY() + 1.5)
		w.pdf.SetX(x)
		w.setFont("B", w.sheet.HeadingSize, w.sheet.Accent)
		w.pdf.CellFormat(width, lineHeight+1, w.tr(text), "", 1, "L", false, 0, "")
		if w.sheet.HeadingRule {
			y := w.pdf.GetY()
			w.pdf.SetDrawColor(w.sheet.Accent.R, w.sheet.Accent.G, w.sheet.Accent.B)
			w.pdf.SetLineWidth(0.3)
			w.pdf.Line(x, y, x+width, y)
			w.pdf.SetY(y + 1)
		}

	case KindSubheading:
		w.pdf.SetY(w.pdf.GetY() + 0.5)
		w.pdf.SetX(x)
		w.lineWithAside(n.Text, n.Aside, "B", w.sheet.BaseSize+0.5, w.sheet.Accent, width)

	case KindEntry:
		w.pdf.SetX(x)
		w.lineWithAside(n.Text, n.Aside, "B", w.sheet.BaseSize, w.sheet.Text, width)

	case KindText:
		style := ""
		color := w.sheet.Text
		if n.Muted {
			style = "I"
			color = w.sheet.Subtle
		}
		w.setFont(style, w.sheet.BaseSize, color)
		w.pdf.MultiCell(width, lineHeight, w.tr(n.Text), "", "L", false)

	case KindBullet:
		w.setFont("", w.sheet.BaseSize, w.sheet.Accent)
		w.pdf.CellFormat(4, lineHeight, w.tr(w.sheet.BulletGlyph), "", 0, "L", false, 0, "")
		w.setFont("", w.sheet.BaseSize, w.sheet.Text)
		w.pdf.MultiCell(width-4, lineHeight, w.tr(n.Text), "", "L", false)

	case KindLabelValue:
		if n.Label != "" {
			w.setFont("B", w.sheet.BaseSize, w.sheet.Text)
			label := n.Label + ": "
			labelWidth := w.pdf.GetStringWidth(label) + 1
			if width-labelWidth < minMainWidth {
				// Label too wide for an inline value; stack them.
				w.pdf.MultiCell(width, lineHeight, w.tr(label), "", "L", false)
				w.pdf.SetX(x)
				w.setFont("", w.sheet.BaseSize, w.sheet.Text)
				w.pdf.MultiCell(width, lineHeight, w.tr(n.Text), "", "L", false)
				return
			}
			w.pdf.CellFormat(labelWidth, lineHeight, w.tr(label), "", 0, "L", false, 0, "")
			w.setFont("", w.sheet.BaseSize, w.sheet.Text)
			w.pdf.MultiCell(width-labelWidth, lineHeight, w.tr(n.Text), "", "L", false)
			return
		}
		w.setFont("", w.sheet.BaseSize, w.sheet.Text)
		w.pdf.MultiCell(width, lineHeight, w.tr(n.Text), "", "L", false)

	case KindRule:
		y := w.pdf.GetY() + 1
		w.pdf.SetDrawColor(w.sheet.Subtle.R, w.sheet.Subtle.G, w.sheet.Subtle.B)
		w.pdf.SetLineWidth(0.2)
		w.pdf.Line(x, y, x+width, y)
		w.pdf.SetY(y + 1)

	case KindSpacer:
		w.pdf.SetY(w.pdf.GetY() + 1.5)
	}
}

// lineWithAside draws a left-aligned main text with its right-aligned
// companion (dates, technologies) on the same line. An aside too wide for
// the column wraps onto its own line below the main text.
func (w *pdfWriter) lineWithAside(main, aside, style string, size float64, color RGB, width float64) {
	if aside == "" {
		w.setFont(style, size, color)
		w.pdf.MultiCell(width, lineHeight, w.tr(main), "", "L", false)
		return
	}

	x := w.pdf.GetX()
	w.setFont("I", size-0.5, w.sheet.Subtle)
	asideWidth := w.pdf.GetStringWidth(aside) + 2

	if width-asideWidth < minMainWidth {
		w.setFont(style, size, color)
		w.pdf.MultiCell(width, lineHeight, w.tr(main), "", "L", false)
		w.pdf.SetX(x)
		w.setFont("I", size-0.5, w.sheet.Subtle)
		w.pdf.MultiCell(width, lineHeight, w.tr(aside), "", "R", false)
		return
	}

	w.setFont(style, size, color)
	w.pdf.CellFormat(width-asideWidth, lineHeight, w.tr(main), "", 0, "L", false, 0, "")

	w.setFont("I", size-0.5, w.sheet.Subtle)
	w.pdf.CellFormat(asideWidth, lineHeight, w.tr(aside), "", 1, "R", false, 0, "")
}

func (w *pdfWriter) setFont(style string, size float64, color RGB) {
	w.pdf.SetFont(w.sheet.FontFamily, style, size)
	w.pdf.SetTextColor(color.R, color.G, color.B)
}

// upper uppercases ASCII letters; section titles are ASCII by construction.
func upper(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'a' && c <= 'z' {
			b[i] = c - 'a' + 'A'
		}
	}
	return string(b)
}
