package synthesis

import "github.com/jonathan/portfolio-studio/internal/types"

// Template identifiers for the built-in portfolio templates.
const (
	TemplateModern   = "modern"
	TemplateMinimal  = "minimal"
	TemplateCreative = "creative"
)

// DummyData returns the fixed sample record used for preview rendering of a
// template. The function is total and deterministic: unknown template ids
// fall back to the modern persona, and repeated calls with the same id
// return structurally identical data. Each call builds a fresh value so a
// caller mutating the result cannot poison later previews.
func DummyData(templateID string) types.TemplateData {
	switch templateID {
	case TemplateMinimal:
		return minimalPersona()
	case TemplateCreative:
		return creativePersona()
	default:
		return modernPersona()
	}
}

func modernPersona() types.TemplateData {
	return types.TemplateData{
		Name:     "Jordan Ellis",
		Title:    "Full-Stack Developer",
		Email:    "jordan.ellis@example.com",
		Phone:    "+1 555 010 0199",
		Location: "Austin, TX",
		About:    "Full-stack developer with six years of experience building data-heavy web applications, from schema design to pixel-level polish.",
		Skills:   []string{"Go", "TypeScript", "React", "PostgreSQL", "Docker", "GraphQL"},
		Experience: []types.ExperienceEntry{
			{Company: "Brightline Analytics", Position: "Senior Developer", Duration: "2021 - Present", Description: "Own the reporting platform serving 40k daily users; cut p95 dashboard load time from 4s to 800ms."},
			{Company: "Parcelo", Position: "Software Engineer", Duration: "2018 - 2021", Description: "Built the carrier-integration layer and the internal tooling the support team still lives in."},
		},
		Education: []types.EducationEntry{
			{Institution: "University of Texas at Austin", Degree: "B.S. Computer Science", Year: "2018", Grade: "3.7 GPA"},
		},
		Projects: []types.ProjectEntry{
			{Name: "Ledgerline", Description: "Open-source double-entry bookkeeping engine with a plain-text format.", Tags: []string{"Go", "CLI"}, Link: "https://github.com/example/ledgerline", Status: "active"},
			{Name: "Commute Radar", Description: "Real-time transit delay map for Austin built on GTFS feeds.", Tags: []string{"React", "Maps"}, Status: "completed"},
		},
		Certifications: []types.CertificationEntry{
			{Name: "AWS Solutions Architect Associate", Issuer: "Amazon Web Services", Year: "2022"},
		},
		Achievements: []types.AchievementEntry{
			{Title: "Hackathon Winner", Description: "First place, Austin Civic Hack 2023.", Year: "2023"},
		},
		Languages: []types.LanguageEntry{
			{Name: "English", Proficiency: "Native"},
			{Name: "Spanish", Proficiency: "Conversational"},
		},
	}
}

func minimalPersona() types.TemplateData {
	return types.TemplateData{
		Name:     "Sana Park",
		Title:    "Product Designer",
		Email:    "sana.park@example.com",
		Location: "Portland, OR",
		About:    "Product designer who believes the best interface is the one you stop noticing. Eight years across fintech and health.",
		Skills:   []string{"Figma", "Design Systems", "Prototyping", "User Research", "Accessibility"},
		Experience: []types.ExperienceEntry{
			{Company: "Alder Health", Position: "Lead Product Designer", Duration: "2020 - Present", Description: "Rebuilt the patient portal design system; WCAG AA across every flow."},
			{Company: "Copperbank", Position: "Product Designer", Duration: "2016 - 2020", Description: "Designed the onboarding flow that doubled activation."},
		},
		Education: []types.EducationEntry{
			{Institution: "Rhode Island School of Design", Degree: "BFA Graphic Design", Year: "2016"},
		},
		Projects: []types.ProjectEntry{
			{Name: "Tactile", Description: "A free icon set designed for low-vision users.", Tags: []string{"Accessibility", "Icons"}, Status: "active"},
		},
		Certifications: []types.CertificationEntry{},
		Achievements: []types.AchievementEntry{
			{Title: "Fast Company Innovation by Design", Description: "Finalist, health category.", Year: "2022"},
		},
		Languages: []types.LanguageEntry{
			{Name: "English", Proficiency: "Native"},
			{Name: "Korean", Proficiency: "Fluent"},
		},
	}
}

func creativePersona() types.TemplateData {
	return types.TemplateData{
		Name:     "Milo Reyes",
		Title:    "Motion Designer & Illustrator",
		Email:    "milo.reyes@example.com",
		Location: "Brooklyn, NY",
		About:    "I make brands move. Animation, illustration and the occasional mural, for clients who want work people remember.",
		Skills:   []string{"After Effects", "Cinema 4D", "Procreate", "Storyboarding", "Brand Identity"},
		Experience: []types.ExperienceEntry{
			{Company: "Studio Neon", Position: "Senior Motion Designer", Duration: "2019 - Present", Description: "Title sequences and launch films for streaming and sneaker brands."},
			{Company: "Freelance", Position: "Illustrator", Duration: "2015 - 2019", Description: "Editorial illustration for national magazines and indie game studios."},
		},
		Education: []types.EducationEntry{
			{Institution: "School of Visual Arts", Degree: "BFA Animation", Year: "2015"},
		},
		Projects: []types.ProjectEntry{
			{Name: "Loops", Description: "365 days of one-second animations.", Tags: []string{"Animation", "Personal"}, Link: "https://example.com/loops", Status: "completed"},
			{Name: "Bushwick Mural", Description: "Forty-foot community mural commissioned by the neighborhood council.", Tags: []string{"Mural"}, Status: "completed"},
		},
		Certifications: []types.CertificationEntry{},
		Achievements: []types.AchievementEntry{
			{Title: "Vimeo Staff Pick", Description: "Short film 'Static' selected.", Year: "2021"},
		},
		Languages: []types.LanguageEntry{
			{Name: "English", Proficiency: "Native"},
			{Name: "Tagalog", Proficiency: "Conversational"},
		},
	}
}
