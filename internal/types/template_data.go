package types

// TemplateData is the derived, rendering-ready projection of a Profile (or of
// sample data). Instances are value copies: every profile change produces a
// new TemplateData, never an in-place patch, so a renderer that captured an
// earlier instance is not retroactively mutated.
type TemplateData struct {
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
}

// CompletionState reports whether a profile is complete enough for live
// rendering. Invariant: Complete is true exactly when MissingSections is empty.
type CompletionState struct {
	Complete        bool     `json:"complete"`
	MissingSections []string `json:"missing_sections"`
}
