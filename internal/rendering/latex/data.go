// Package latex renders a resume document to standalone LaTeX source in one
// of three visual variants.
package latex

import (
	"strings"

	"github.com/c7harry/bayform/internal/format"
	"github.com/c7harry/bayform/internal/grouping"
	"github.com/c7harry/bayform/internal/types"
)

// TemplateData is the fully escaped data structure passed to the LaTeX
// templates. All user text is escaped exactly once, here; templates must not
// escape again.
type TemplateData struct {
	Name         string
	Profession   string
	ContactItems []string
	SkillGroups  []SkillGroup
	Companies    []CompanySection
	Education    []EducationEntry
	Projects     []ProjectEntry
	Additional   []AdditionalGroup
}

// SkillGroup is one category of skills with its names pre-joined.
type SkillGroup struct {
	Category string
	Names    string
}

// CompanySection groups the roles held at one employer.
type CompanySection struct {
	Company string
	Roles   []RoleSection
}

// RoleSection is a single position within a company section.
type RoleSection struct {
	Position     string
	Location     string
	Dates        string
	Description  string
	Achievements []string
}

// EducationEntry is a single degree or certification.
type EducationEntry struct {
	Institution    string
	Degree         string
	Field          string
	GraduationDate string
	GPA            string
	Honors         []string
}

// ProjectEntry is a single project with its technologies pre-joined.
type ProjectEntry struct {
	Name         string
	Description  string
	Technologies string
	URL          string
	GitHub       string
}

// AdditionalGroup is a user-defined section with its items pre-joined.
type AdditionalGroup struct {
	Title string
	Items string
}

// buildTemplateData maps the document onto the escaped template structure.
// Sections with no underlying data come out as empty slices so the skeleton
// template omits them entirely.
func buildTemplateData(doc types.ResumeDocument) *TemplateData {
	data := &TemplateData{
		Name:         format.EscapeLaTeX(doc.PersonalInfo.FullName),
		Profession:   format.EscapeLaTeX(doc.PersonalInfo.Profession),
		ContactItems: format.EscapeLaTeXAll(format.ContactItems(doc.PersonalInfo)),
	}

	for _, group := range grouping.GroupSkills(doc.Skills) {
		data.SkillGroups = append(data.SkillGroups, SkillGroup{
			Category: format.EscapeLaTeX(group.Category),
			Names:    format.EscapeLaTeX(strings.Join(group.Items, ", ")),
		})
	}

	for _, group := range grouping.GroupByCompany(doc.Experience) {
		section := CompanySection{Company: format.EscapeLaTeX(group.Company)}
		for _, e := range group.Entries {
			section.Roles = append(section.Roles, RoleSection{
				Position:     format.EscapeLaTeX(e.Position),
				Location:     format.EscapeLaTeX(e.Location),
				Dates:        format.EscapeLaTeX(grouping.DateRange(e)),
				Description:  format.EscapeLaTeX(e.Description),
				Achievements: format.EscapeLaTeXAll(e.Achievements),
			})
		}
		data.Companies = append(data.Companies, section)
	}

	for _, e := range doc.Education {
		data.Education = append(data.Education, EducationEntry{
			Institution:    format.EscapeLaTeX(e.Institution),
			Degree:         format.EscapeLaTeX(e.Degree),
			Field:          format.EscapeLaTeX(e.Field),
			GraduationDate: format.EscapeLaTeX(e.GraduationDate),
			GPA:            format.EscapeLaTeX(e.GPA),
			Honors:         format.EscapeLaTeXAll(e.Honors),
		})
	}

	for _, p := range doc.Projects {
		data.Projects = append(data.Projects, ProjectEntry{
			Name:         format.EscapeLaTeX(p.Name),
			Description:  format.EscapeLaTeX(p.Description),
			Technologies: format.EscapeLaTeX(strings.Join(p.Technologies, ", ")),
			URL:          format.EscapeLaTeX(p.URL),
			GitHub:       format.EscapeLaTeX(p.GitHub),
		})
	}

	for _, group := range grouping.GroupAdditional(doc.AdditionalSections) {
		data.Additional = append(data.Additional, AdditionalGroup{
			Title: format.EscapeLaTeX(group.Category),
			Items: format.EscapeLaTeX(strings.Join(group.Items, ", ")),
		})
	}

	return data
}
