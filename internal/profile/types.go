package profile

import (
	"encoding/json"
	"strings"

	"github.com/kalambet/olis/internal/attachment"
)

// Profile is the user's professional profile as collected during onboarding
// and edited from dashboard settings. JSON names match the browser client.
type Profile struct {
	Name           string `json:"name"`
	FullName       string `json:"fullName,omitempty"`
	LinkedInURL    string `json:"linkedinUrl"`
	AttachmentName string `json:"attachmentName"`
	Headline       string `json:"headline"`
	Summary        string `json:"summary,omitempty"`

	Location        string `json:"location,omitempty"`
	Industry        string `json:"industry,omitempty"`
	CurrentPosition string `json:"currentPosition,omitempty"`
	CurrentCompany  string `json:"currentCompany,omitempty"`

	Experience     []ExperienceEntry `json:"experience"`
	Education      []EducationEntry  `json:"education"`
	Skills         []string          `json:"skills"`
	Languages      []string          `json:"languages"`
	Certifications []string          `json:"certifications"`

	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Website string `json:"website,omitempty"`

	// Attachment is the uploaded PDF. Binary handles do not survive
	// serialization: it always marshals as null and is ignored on unmarshal.
	Attachment *attachment.Info `json:"-"`
}

// ExperienceEntry is one position in the work history.
type ExperienceEntry struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location,omitempty"`
	StartDate   string `json:"startDate,omitempty"`
	EndDate     string `json:"endDate,omitempty"`
	Description string `json:"description,omitempty"`
}

// EducationEntry is one school or degree.
type EducationEntry struct {
	School    string `json:"school"`
	Degree    string `json:"degree,omitempty"`
	Field     string `json:"field,omitempty"`
	StartDate string `json:"startDate,omitempty"`
	EndDate   string `json:"endDate,omitempty"`
}

// MarshalJSON writes the profile with an explicit null attachment.
func (p Profile) MarshalJSON() ([]byte, error) {
	type plain Profile
	return json.Marshal(struct {
		plain
		Attachment *struct{} `json:"attachment"`
	}{plain: plain(p)})
}

// DisplayName is FullName when set, otherwise Name.
func (p Profile) DisplayName() string {
	if strings.TrimSpace(p.FullName) != "" {
		return p.FullName
	}
	return p.Name
}

// HasAttachment reports whether a PDF is attached in this session.
func (p Profile) HasAttachment() bool {
	return p.Attachment != nil
}

// Post is one shared content item.
type Post struct {
	ID               string `json:"id"`
	Content          string `json:"content"`
	IsFeatured       bool   `json:"isFeatured"`
	MediaDescription string `json:"mediaDescription,omitempty"`
}

// Patch is a partial profile update; nil fields are left untouched.
type Patch struct {
	Name            *string            `json:"name,omitempty"`
	FullName        *string            `json:"fullName,omitempty"`
	LinkedInURL     *string            `json:"linkedinUrl,omitempty"`
	Headline        *string            `json:"headline,omitempty"`
	Summary         *string            `json:"summary,omitempty"`
	Location        *string            `json:"location,omitempty"`
	Industry        *string            `json:"industry,omitempty"`
	CurrentPosition *string            `json:"currentPosition,omitempty"`
	CurrentCompany  *string            `json:"currentCompany,omitempty"`
	Experience      *[]ExperienceEntry `json:"experience,omitempty"`
	Education       *[]EducationEntry  `json:"education,omitempty"`
	Skills          *[]string          `json:"skills,omitempty"`
	Languages       *[]string          `json:"languages,omitempty"`
	Certifications  *[]string          `json:"certifications,omitempty"`
	Email           *string            `json:"email,omitempty"`
	Phone           *string            `json:"phone,omitempty"`
	Website         *string            `json:"website,omitempty"`
}

// Apply copies every non-nil field of the patch onto p.
func (pt Patch) Apply(p *Profile) {
	setStr := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	setStr(&p.Name, pt.Name)
	setStr(&p.FullName, pt.FullName)
	setStr(&p.LinkedInURL, pt.LinkedInURL)
	setStr(&p.Headline, pt.Headline)
	setStr(&p.Summary, pt.Summary)
	setStr(&p.Location, pt.Location)
	setStr(&p.Industry, pt.Industry)
	setStr(&p.CurrentPosition, pt.CurrentPosition)
	setStr(&p.CurrentCompany, pt.CurrentCompany)
	setStr(&p.Email, pt.Email)
	setStr(&p.Phone, pt.Phone)
	setStr(&p.Website, pt.Website)

	if pt.Experience != nil {
		p.Experience = append([]ExperienceEntry(nil), (*pt.Experience)...)
	}
	if pt.Education != nil {
		p.Education = append([]EducationEntry(nil), (*pt.Education)...)
	}
	if pt.Skills != nil {
		p.Skills = append([]string(nil), (*pt.Skills)...)
	}
	if pt.Languages != nil {
		p.Languages = append([]string(nil), (*pt.Languages)...)
	}
	if pt.Certifications != nil {
		p.Certifications = append([]string(nil), (*pt.Certifications)...)
	}
}
