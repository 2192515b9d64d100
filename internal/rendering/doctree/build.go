package doctree

import (
	"strings"

	"github.com/c7harry/bayform/internal/format"
	"github.com/c7harry/bayform/internal/grouping"
	"github.com/c7harry/bayform/internal/types"
)

// section is a named stack of nodes produced by the shared section pipeline.
type section struct {
	id    string
	nodes []*Node
}

// Canonical section identifiers, in contract order.
const (
	sectionSkills     = "skills"
	sectionExperience = "experience"
	sectionEducation  = "education"
	sectionProjects   = "projects"
	sectionAdditional = "additional"
)

// Build maps a resume document onto the declarative tree for one variant.
// Every variant renders the same canonical section set through this single
// pipeline; the style sheet only affects header composition, QR presence,
// and how the sections are distributed across columns.
func Build(doc types.ResumeDocument, sheet StyleSheet) *Node {
	page := newPage()

	page.add(text(KindName, doc.PersonalInfo.FullName))
	if doc.PersonalInfo.Profession != "" {
		page.add(text(KindProfession, doc.PersonalInfo.Profession))
	}
	if contact := format.ContactLine(doc.PersonalInfo, sheet.ContactDelimiter); contact != "" {
		page.add(text(KindContact, contact))
	}
	if sheet.ShowQR && doc.QREnabled() {
		page.add(text(KindQR, doc.QRSource()))
	}
	page.add(&Node{Kind: KindRule})

	sections := buildSections(doc)
	distribute(page, sections, sheet.Layout)
	return page
}

// buildSections produces the non-empty sections in canonical order:
// skills, experience, education, projects, additional.
func buildSections(doc types.ResumeDocument) []section {
	var sections []section

	if nodes := skillNodes(doc.Skills); len(nodes) > 0 {
		sections = append(sections, section{sectionSkills, append([]*Node{text(KindHeading, "Skills")}, nodes...)})
	}
	if nodes := experienceNodes(doc.Experience); len(nodes) > 0 {
		sections = append(sections, section{sectionExperience, append([]*Node{text(KindHeading, "Experience")}, nodes...)})
	}
	if nodes := educationNodes(doc.Education); len(nodes) > 0 {
		sections = append(sections, section{sectionEducation, append([]*Node{text(KindHeading, "Education")}, nodes...)})
	}
	if nodes := projectNodes(doc.Projects); len(nodes) > 0 {
		sections = append(sections, section{sectionProjects, append([]*Node{text(KindHeading, "Projects")}, nodes...)})
	}
	if nodes := additionalNodes(doc.AdditionalSections); len(nodes) > 0 {
		sections = append(sections, section{sectionAdditional, append([]*Node{text(KindHeading, "Additional")}, nodes...)})
	}

	return sections
}

func skillNodes(skills []types.Skill) []*Node {
	var nodes []*Node
	for _, group := range grouping.GroupSkills(skills) {
		nodes = append(nodes, &Node{
			Kind:  KindLabelValue,
			Label: group.Category,
			Text:  strings.Join(group.Items, ", "),
		})
	}
	return nodes
}

func experienceNodes(entries []types.Experience) []*Node {
	var nodes []*Node
	for _, group := range grouping.GroupByCompany(entries) {
		nodes = append(nodes, text(KindSubheading, group.Company))
		for _, e := range group.Entries {
			nodes = append(nodes, &Node{Kind: KindEntry, Text: e.Position, Aside: grouping.DateRange(e)})
			if e.Location != "" {
				nodes = append(nodes, &Node{Kind: KindText, Text: e.Location, Muted: true})
			}
			if e.Description != "" {
				nodes = append(nodes, text(KindText, e.Description))
			}
			for _, a := range e.Achievements {
				nodes = append(nodes, text(KindBullet, a))
			}
			nodes = append(nodes, &Node{Kind: KindSpacer})
		}
	}
	return nodes
}

func educationNodes(entries []types.Education) []*Node {
	var nodes []*Node
	for _, e := range entries {
		nodes = append(nodes, &Node{Kind: KindSubheading, Text: e.Institution, Aside: e.GraduationDate})

		degree := e.Degree
		if e.Field != "" {
			degree += " in " + e.Field
		}
		if e.GPA != "" {
			degree += " (GPA: " + e.GPA + ")"
		}
		if degree != "" {
			nodes = append(nodes, &Node{Kind: KindEntry, Text: degree})
		}
		if len(e.Honors) > 0 {
			nodes = append(nodes, &Node{Kind: KindText, Text: strings.Join(e.Honors, ", "), Muted: true})
		}
		nodes = append(nodes, &Node{Kind: KindSpacer})
	}
	return nodes
}

func projectNodes(projects []types.Project) []*Node {
	var nodes []*Node
	for _, p := range projects {
		nodes = append(nodes, &Node{Kind: KindSubheading, Text: p.Name, Aside: strings.Join(p.Technologies, ", ")})
		if p.Description != "" {
			nodes = append(nodes, text(KindText, p.Description))
		}
		if p.URL != "" {
			nodes = append(nodes, &Node{Kind: KindText, Text: p.URL, Muted: true})
		}
		if p.GitHub != "" {
			nodes = append(nodes, &Node{Kind: KindText, Text: p.GitHub, Muted: true})
		}
		nodes = append(nodes, &Node{Kind: KindSpacer})
	}
	return nodes
}

func additionalNodes(sections []types.AdditionalSection) []*Node {
	var nodes []*Node
	for _, group := range grouping.GroupAdditional(sections) {
		nodes = append(nodes, &Node{
			Kind:  KindLabelValue,
			Label: group.Category,
			Text:  strings.Join(group.Items, ", "),
		})
	}
	return nodes
}

// distribute places the sections into page columns according to the layout.
// Single-column layouts keep the full canonical order in one column.
// Multi-column layouts keep canonical order within each column; the section
// set itself never changes.
func distribute(page *Node, sections []section, layout Layout) {
	byID := make(map[string][]*Node, len(sections))
	order := make([]string, 0, len(sections))
	for _, s := range sections {
		byID[s.id] = s.nodes
		order = append(order, s.id)
	}

	fill := func(col *Node, ids []string) {
		for _, id := range ids {
			for _, n := range byID[id] {
				col.add(n)
			}
		}
	}

	switch layout {
	case LayoutTwoColumn:
		fill(page.addColumn(0.62, false), []string{sectionExperience, sectionProjects})
		fill(page.addColumn(0.38, false), []string{sectionSkills, sectionEducation, sectionAdditional})
	case LayoutSidebar:
		fill(page.addColumn(0.33, true), []string{sectionSkills, sectionAdditional})
		fill(page.addColumn(0.67, false), []string{sectionExperience, sectionEducation, sectionProjects})
	default:
		fill(page.addColumn(1.0, false), order)
	}
}
