// Package synthesis transforms profile records into the template-facing
// projection and decides when a profile is complete enough for live
// rendering. Everything here is a pure function over its inputs: no stored
// state, no side effects, so completeness is never cached and never stale.
package synthesis

import (
	"strings"

	"github.com/jonathan/portfolio-studio/internal/types"
)

// IsComplete reports whether the profile can drive a live portfolio render.
// It is a conjunction over exactly six conditions: name, title and about
// non-empty, and skills, experience and education each non-empty. Partial
// completion never counts.
func IsComplete(p *types.Profile) bool {
	return len(MissingSections(p)) == 0
}

// MissingSections evaluates the same six conditions as IsComplete and
// returns the failing ones grouped by category, in canonical order:
// basic-info, skills, experience, education. Name, title and about are
// reported together as the single basic-info unit.
func MissingSections(p *types.Profile) []string {
	missing := []string{}
	if p == nil {
		return []string{
			types.SectionBasicInfo,
			types.SectionSkills,
			types.SectionExperience,
			types.SectionEducation,
		}
	}

	if !hasBasicInfo(p) {
		missing = append(missing, types.SectionBasicInfo)
	}
	if len(p.Skills) == 0 {
		missing = append(missing, types.SectionSkills)
	}
	if len(p.Experience) == 0 {
		missing = append(missing, types.SectionExperience)
	}
	if len(p.Education) == 0 {
		missing = append(missing, types.SectionEducation)
	}
	return missing
}

// hasBasicInfo is all-or-nothing: name AND title AND about. Templates render
// the header as one block, so there is no finer granularity to report.
func hasBasicInfo(p *types.Profile) bool {
	return strings.TrimSpace(p.Name) != "" &&
		strings.TrimSpace(p.Title) != "" &&
		strings.TrimSpace(p.About) != ""
}

// Completion bundles IsComplete and MissingSections into a CompletionState.
func Completion(p *types.Profile) types.CompletionState {
	missing := MissingSections(p)
	return types.CompletionState{
		Complete:        len(missing) == 0,
		MissingSections: missing,
	}
}

// FromProfile produces the template-facing projection of a profile: a 1:1
// structural copy with element order preserved within every collection. It
// does not enforce completeness; callers gate the live rendering path behind
// IsComplete. An incomplete profile still yields a structurally valid
// TemplateData whose empty collections render as empty.
func FromProfile(p *types.Profile) types.TemplateData {
	if p == nil {
		p = &types.Profile{}
	}
	clone := p.Clone()
	clone.Normalize()

	return types.TemplateData{
		Name:           clone.Name,
		Title:          clone.Title,
		Email:          clone.Email,
		Phone:          clone.Phone,
		Location:       clone.Location,
		About:          clone.About,
		Skills:         clone.Skills,
		Experience:     clone.Experience,
		Education:      clone.Education,
		Projects:       clone.Projects,
		Certifications: clone.Certifications,
		Achievements:   clone.Achievements,
		Languages:      clone.Languages,
	}
}
