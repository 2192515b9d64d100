package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/c7harry/bayform/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintResumeSummary outputs a human-readable summary of a stored resume.
func (p *Printer) PrintResumeSummary(doc *types.ResumeDocument) {
	if doc == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Name:       %s\n", doc.PersonalInfo.FullName))
	if doc.PersonalInfo.Profession != "" {
		sb.WriteString(fmt.Sprintf("Profession: %s\n", doc.PersonalInfo.Profession))
	}
	if doc.PersonalInfo.Email != "" {
		sb.WriteString(fmt.Sprintf("Email:      %s\n", doc.PersonalInfo.Email))
	}
	sb.WriteString(fmt.Sprintf("Template:   %s\n", doc.Template.DisplayName()))
	sb.WriteString("\n")

	if len(doc.Experience) > 0 {
		sb.WriteString("Experience:\n")
		count := min(len(doc.Experience), maxItemsToShow)
		for i := 0; i < count; i++ {
			exp := doc.Experience[i]
			sb.WriteString(fmt.Sprintf("  • %s, %s\n", exp.Position, exp.Company))
		}
		if len(doc.Experience) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(doc.Experience)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(doc.Skills) > 0 {
		names := make([]string, 0, min(len(doc.Skills), maxItemsToShow))
		for i, skill := range doc.Skills {
			if i == maxItemsToShow {
				break
			}
			names = append(names, skill.Name)
		}
		sb.WriteString(fmt.Sprintf("Skills:     %s", strings.Join(names, ", ")))
		if len(doc.Skills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf(" (+%d more)", len(doc.Skills)-maxItemsToShow))
		}
		sb.WriteString("\n\n")
	}

	sb.WriteString(fmt.Sprintf("Sections:   %d education, %d projects, %d additional\n",
		len(doc.Education), len(doc.Projects), len(doc.AdditionalSections)))

	p.printBox("RESUME: "+doc.Name, strings.TrimRight(sb.String(), "\n"))
}
