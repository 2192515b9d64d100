package observability

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"

	"github.com/c7harry/bayform/internal/types"
)

func TestPrintResumeSummary(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	doc := &types.ResumeDocument{
		Name: "primary",
		PersonalInfo: types.PersonalInfo{
			FullName:   "Jane Doe",
			Profession: "Software Engineer",
			Email:      "jane@example.com",
		},
		Experience: []types.Experience{
			{Company: "Acme Corp", Position: "Senior Engineer"},
		},
		Skills: []types.Skill{
			{Name: "Go", Category: "Languages"},
			{Name: "PostgreSQL", Category: "Databases"},
		},
		Template: types.PDFTech,
	}

	p.PrintResumeSummary(doc)
	output := buf.String()

	assert.Contains(t, output, "RESUME: primary")
	assert.Contains(t, output, "Jane Doe")
	assert.Contains(t, output, "Software Engineer")
	assert.Contains(t, output, "Senior Engineer, Acme Corp")
	assert.Contains(t, output, "Go, PostgreSQL")
	assert.Contains(t, output, "Tech")
}

func TestPrintResumeSummary_Nil(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintResumeSummary(nil)
	assert.Empty(t, buf.String())
}

func TestPrintResumeSummary_TruncatesLongLists(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	doc := &types.ResumeDocument{
		Name:         "crowded",
		PersonalInfo: types.PersonalInfo{FullName: "Jane Doe"},
	}
	for i := 0; i < 7; i++ {
		doc.Experience = append(doc.Experience, types.Experience{Company: "Co", Position: "Role"})
	}

	p.PrintResumeSummary(doc)
	assert.Contains(t, buf.String(), "... and 2 more")
}

func TestNewLogger_VerboseLevel(t *testing.T) {
	var buf bytes.Buffer

	logger := NewLogger(&buf, true)
	assert.Equal(t, log.DebugLevel, logger.GetLevel())

	logger = NewLogger(&buf, false)
	assert.Equal(t, log.InfoLevel, logger.GetLevel())
}
