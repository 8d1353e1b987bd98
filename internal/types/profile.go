// Package types provides type definitions for structured data used throughout the portfolio-studio system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"time"

	"github.com/google/uuid"
)

// Canonical section identifiers used for dirty tracking and completeness
// reporting. BasicInfo covers name, title and about as a single unit.
const (
	SectionBasicInfo      = "basic-info"
	SectionSkills         = "skills"
	SectionExperience     = "experience"
	SectionEducation      = "education"
	SectionProjects       = "projects"
	SectionCertifications = "certifications"
	SectionAchievements   = "achievements"
	SectionLanguages      = "languages"
)

// Profile represents the durable, user-owned professional record.
// Collection fields are never nil after Normalize; templates rely on that.
type Profile struct {
	ID             uuid.UUID            `json:"id"`
	Name           string               `json:"name"`
	Title          string               `json:"title"`
	Email          string               `json:"email"`
	Phone          string               `json:"phone,omitempty"`
	Location       string               `json:"location,omitempty"`
	About          string               `json:"about"`
	Skills         []string             `json:"skills"`
	Experience     []ExperienceEntry    `json:"experience"`
	Education      []EducationEntry     `json:"education"`
	Projects       []ProjectEntry       `json:"projects"`
	Certifications []CertificationEntry `json:"certifications"`
	Achievements   []AchievementEntry   `json:"achievements"`
	Languages      []LanguageEntry      `json:"languages"`
	UpdatedAt      time.Time            `json:"updated_at"`
}

// ExperienceEntry represents a single work experience item
type ExperienceEntry struct {
	Company     string `json:"company"`
	Position    string `json:"position"`
	Duration    string `json:"duration"`
	Description string `json:"description,omitempty"`
}

// EducationEntry represents a single education item
type EducationEntry struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Year        string `json:"year,omitempty"`
	Grade       string `json:"grade,omitempty"`
}

// ProjectEntry represents a single portfolio project
type ProjectEntry struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	ImageURL    string   `json:"image_url,omitempty"`
	Link        string   `json:"link,omitempty"`
	Status      string   `json:"status,omitempty"`
}

// CertificationEntry represents a single certification item
type CertificationEntry struct {
	Name   string `json:"name"`
	Issuer string `json:"issuer,omitempty"`
	Year   string `json:"year,omitempty"`
}

// AchievementEntry represents a single achievement item
type AchievementEntry struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Year        string `json:"year,omitempty"`
}

// LanguageEntry represents a language with a proficiency label
type LanguageEntry struct {
	Name        string `json:"name"`
	Proficiency string `json:"proficiency,omitempty"`
}

// NewProfile creates an empty profile for the given identity with all
// collections initialized.
func NewProfile(id uuid.UUID, name, email string) *Profile {
	p := &Profile{
		ID:    id,
		Name:  name,
		Email: email,
	}
	p.Normalize()
	return p
}

// Normalize replaces nil collection fields with empty slices so that
// downstream consumers never see null collections.
func (p *Profile) Normalize() {
	if p.Skills == nil {
		p.Skills = []string{}
	}
	if p.Experience == nil {
		p.Experience = []ExperienceEntry{}
	}
	if p.Education == nil {
		p.Education = []EducationEntry{}
	}
	if p.Projects == nil {
		p.Projects = []ProjectEntry{}
	}
	if p.Certifications == nil {
		p.Certifications = []CertificationEntry{}
	}
	if p.Achievements == nil {
		p.Achievements = []AchievementEntry{}
	}
	if p.Languages == nil {
		p.Languages = []LanguageEntry{}
	}
	for i := range p.Projects {
		if p.Projects[i].Tags == nil {
			p.Projects[i].Tags = []string{}
		}
	}
}

// Clone returns a deep copy of the profile. The controller hands out clones
// so callers cannot mutate the working copy behind its back.
func (p *Profile) Clone() *Profile {
	if p == nil {
		return nil
	}
	clone := *p
	clone.Skills = append([]string{}, p.Skills...)
	clone.Experience = append([]ExperienceEntry{}, p.Experience...)
	clone.Education = append([]EducationEntry{}, p.Education...)
	clone.Projects = make([]ProjectEntry, len(p.Projects))
	for i, proj := range p.Projects {
		clone.Projects[i] = proj
		clone.Projects[i].Tags = append([]string{}, proj.Tags...)
	}
	clone.Certifications = append([]CertificationEntry{}, p.Certifications...)
	clone.Achievements = append([]AchievementEntry{}, p.Achievements...)
	clone.Languages = append([]LanguageEntry{}, p.Languages...)
	return &clone
}
