// Package preview renders an on-screen approximation of the paginated PDF
// output. The frame keeps ISO A4 proportions regardless of terminal size, so
// the preview tracks what an export would produce rather than the viewport.
package preview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/c7harry/bayform/internal/rendering/doctree"
	"github.com/c7harry/bayform/internal/types"
)

// Fixed page frame in character cells. With a terminal cell roughly twice as
// tall as wide, 80x56 tracks the A4 height/width ratio of sqrt(2).
const (
	pageCols = 80
	pageRows = 56
)

// Render produces the terminal preview for doc in the given visual variant.
// It shares the declarative tree pipeline with the PDF renderer, so section
// order, grouping, and omission behavior are identical by construction.
func Render(doc types.ResumeDocument, tmpl types.PDFTemplate) string {
	sheet, ok := doctree.SheetFor(tmpl)
	if !ok {
		sheet, _ = doctree.SheetFor(types.PDFModern)
	}

	r := renderer{
		sheet:  sheet,
		accent: lipgloss.NewStyle().Foreground(hex(sheet.Accent)),
		subtle: lipgloss.NewStyle().Foreground(hex(sheet.Subtle)),
		bold:   lipgloss.NewStyle().Bold(true),
	}

	tree := doctree.Build(doc, sheet)
	content := r.page(tree)

	frame := lipgloss.NewStyle().
		Width(pageCols).
		Height(pageRows).
		Padding(1, 2).
		Border(lipgloss.NormalBorder()).
		BorderForeground(hex(sheet.Subtle))

	return frame.Render(clamp(content, pageRows-2))
}

type renderer struct {
	sheet  doctree.StyleSheet
	accent lipgloss.Style
	subtle lipgloss.Style
	bold   lipgloss.Style
}

func (r *renderer) page(tree *doctree.Node) string {
	contentWidth := pageCols - 4

	var header []string
	var columns []string
	for _, child := range tree.Children {
		if child.Kind == doctree.KindColumn {
			width := int(child.Width * float64(contentWidth))
			columns = append(columns, r.column(child, width))
			continue
		}
		if line := r.headerLine(child, contentWidth); line != "" {
			header = append(header, line)
		}
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, columns...)
	return strings.Join(header, "\n") + "\n" + body
}

func (r *renderer) headerLine(n *doctree.Node, width int) string {
	align := lipgloss.Left
	if r.sheet.CenterHeader {
		align = lipgloss.Center
	}
	place := func(s string) string {
		return lipgloss.PlaceHorizontal(width, align, s)
	}

	switch n.Kind {
	case doctree.KindName:
		return place(r.bold.Inherit(r.accent).Render(strings.ToUpper(n.Text)))
	case doctree.KindProfession:
		return place(r.accent.Render(n.Text))
	case doctree.KindContact:
		return place(r.subtle.Render(n.Text))
	case doctree.KindRule:
		return r.accent.Render(strings.Repeat("─", width))
	}
	// QR codes are a print decoration; the preview omits them.
	return ""
}

func (r *renderer) column(col *doctree.Node, width int) string {
	innerWidth := width - 1
	var lines []string
	for _, n := range col.Children {
		lines = append(lines, r.blockLines(n, innerWidth)...)
	}

	style := lipgloss.NewStyle().Width(width)
	if col.Fill {
		style = style.Background(hex(r.sheet.SidebarFill))
	}
	return style.Render(strings.Join(lines, "\n"))
}

func (r *renderer) blockLines(n *doctree.Node, width int) []string {
	switch n.Kind {
	case doctree.KindHeading:
		title := n.Text
		if r.sheet.HeadingUpper {
			title = strings.ToUpper(title)
		}
		lines := []string{"", r.bold.Inherit(r.accent).Render(title)}
		if r.sheet.HeadingRule {
			lines = append(lines, r.accent.Render(strings.Repeat("─", width)))
		}
		return lines

	case doctree.KindSubheading:
		return []string{r.withAside(r.bold.Inherit(r.accent).Render(n.Text), n.Aside, width)}

	case doctree.KindEntry:
		return []string{r.withAside(r.bold.Render(n.Text), n.Aside, width)}

	case doctree.KindText:
		if n.Muted {
			return []string{r.subtle.Italic(true).Render(n.Text)}
		}
		return []string{n.Text}

	case doctree.KindBullet:
		return []string{r.accent.Render(r.sheet.BulletGlyph) + " " + n.Text}

	case doctree.KindLabelValue:
		if n.Label != "" {
			return []string{r.bold.Render(n.Label+":") + " " + n.Text}
		}
		return []string{n.Text}

	case doctree.KindRule:
		return []string{r.subtle.Render(strings.Repeat("─", width))}

	case doctree.KindSpacer:
		return []string{""}
	}
	return nil
}

// withAside right-aligns the companion text (dates, technologies) on the
// same line as the main text, clipping the gap when the column is narrow.
func (r *renderer) withAside(main, aside string, width int) string {
	if aside == "" {
		return main
	}
	styled := r.subtle.Italic(true).Render(aside)
	gap := width - lipgloss.Width(main) - lipgloss.Width(styled)
	if gap < 1 {
		gap = 1
	}
	return main + strings.Repeat(" ", gap) + styled
}

// clamp truncates content to at most rows lines, keeping the page height
// fixed regardless of how much the document contains.
func clamp(content string, rows int) string {
	lines := strings.Split(content, "\n")
	if len(lines) <= rows {
		return content
	}
	return strings.Join(lines[:rows], "\n")
}

// hex converts a 24-bit color to a lipgloss hex color.
func hex(c doctree.RGB) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
}
