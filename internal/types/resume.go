// Package types provides type definitions for structured resume data used throughout bayform.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// QRType identifies the target encoded into the optional header QR code.
type QRType string

// Valid QR code targets.
const (
	QRNone     QRType = "none"
	QRLinkedIn QRType = "linkedin"
	QRWebsite  QRType = "website"
)

// QRCode is a directive controlling the optional QR code in the header.
type QRCode struct {
	Enabled bool   `json:"enabled"`
	Type    QRType `json:"type" validate:"omitempty,oneof=none linkedin website"`
}

// PersonalInfo holds identity and contact fields for the resume header.
type PersonalInfo struct {
	FullName     string  `json:"fullName" validate:"required"`
	Profession   string  `json:"profession,omitempty"`
	Email        string  `json:"email,omitempty" validate:"omitempty,email"`
	Phone        string  `json:"phone,omitempty"`
	Location     string  `json:"location,omitempty"`
	Website      string  `json:"website,omitempty" validate:"omitempty,url"`
	LinkedIn     string  `json:"linkedin,omitempty"`
	ProfileImage string  `json:"profileImage,omitempty"`
	QRCode       *QRCode `json:"qrCode,omitempty"`
}

// Experience represents a single position held at a company.
type Experience struct {
	Company      string   `json:"company"`
	Position     string   `json:"position"`
	Location     string   `json:"location,omitempty"`
	StartDate    string   `json:"startDate,omitempty"`
	EndDate      string   `json:"endDate,omitempty"`
	Current      bool     `json:"current"`
	Description  string   `json:"description,omitempty"`
	Achievements []string `json:"achievements,omitempty"`
}

// Honors is a list of distinctions that tolerates a bare JSON string,
// since stored documents carry both shapes.
type Honors []string

// UnmarshalJSON accepts either a JSON array of strings or a single string.
func (h *Honors) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*h = list
		return nil
	}

	var single string
	if err := json.Unmarshal(data, &single); err != nil {
		return err
	}
	if single == "" {
		*h = nil
		return nil
	}
	*h = Honors{single}
	return nil
}

// Education represents a degree or certification entry.
type Education struct {
	Institution    string `json:"institution"`
	Degree         string `json:"degree"`
	Field          string `json:"field,omitempty"`
	GraduationDate string `json:"graduationDate,omitempty"`
	GPA            string `json:"gpa,omitempty"`
	Honors         Honors `json:"honors,omitempty"`
}

// Skill represents a single named skill under a free-form category label.
type Skill struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

// Project represents a personal or professional project entry.
type Project struct {
	Name         string   `json:"name"`
	Description  string   `json:"description,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
	URL          string   `json:"url,omitempty"`
	GitHub       string   `json:"github,omitempty"`
}

// AdditionalSection is a user-defined freeform grouping (e.g. "Languages").
type AdditionalSection struct {
	Title string   `json:"title"`
	Items []string `json:"items,omitempty"`
}

// ResumeDocument is the normalized in-memory value holding all resume
// content. Renderers treat it as immutable: every render call receives the
// document by value and produces a fresh output.
type ResumeDocument struct {
	ID                 uuid.UUID           `json:"id"`
	Name               string              `json:"name,omitempty"`
	PersonalInfo       PersonalInfo        `json:"personalInfo" validate:"required"`
	Experience         []Experience        `json:"experience,omitempty"`
	Education          []Education         `json:"education,omitempty"`
	Skills             []Skill             `json:"skills,omitempty"`
	Projects           []Project           `json:"projects,omitempty"`
	AdditionalSections []AdditionalSection `json:"additionalSections,omitempty"`
	Template           PDFTemplate         `json:"template,omitempty"`
	CreatedAt          time.Time           `json:"createdAt,omitempty"`
	UpdatedAt          time.Time           `json:"updatedAt,omitempty"`
}

// Validate validates the ResumeDocument's declared field constraints
// using the validator.
func (d *ResumeDocument) Validate() error {
	validate := validator.New()
	return validate.Struct(d)
}

// QREnabled reports whether the document requests a QR code and has a
// non-empty source for it. A missing source degrades to no QR code rather
// than a broken placeholder.
func (d *ResumeDocument) QREnabled() bool {
	qr := d.PersonalInfo.QRCode
	if qr == nil || !qr.Enabled {
		return false
	}
	switch qr.Type {
	case QRLinkedIn:
		return d.PersonalInfo.LinkedIn != ""
	case QRWebsite:
		return d.PersonalInfo.Website != ""
	default:
		return false
	}
}

// QRSource returns the URL the QR code should encode, or empty if disabled.
func (d *ResumeDocument) QRSource() string {
	if !d.QREnabled() {
		return ""
	}
	if d.PersonalInfo.QRCode.Type == QRLinkedIn {
		return d.PersonalInfo.LinkedIn
	}
	return d.PersonalInfo.Website
}
