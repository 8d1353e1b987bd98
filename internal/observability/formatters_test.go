package observability

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/portfolio-studio/internal/types"
)

func TestPrintProfileSummary(t *testing.T) {
	profile := &types.Profile{
		Name:   "Jordan Ellis",
		Title:  "Backend Engineer",
		Email:  "jordan@example.com",
		Skills: []string{"Go", "SQL", "Docker", "Kubernetes", "Redis", "Kafka"},
		Experience: []types.ExperienceEntry{
			{Company: "Pipeworks", Position: "Engineer", Duration: "2022 - Present"},
		},
		Education: []types.EducationEntry{
			{Institution: "State University", Degree: "BSc CS", Year: "2021"},
		},
	}

	var out strings.Builder
	NewPrinter(&out).PrintProfileSummary(profile)
	got := out.String()

	assert.Contains(t, got, "PROFILE")
	assert.Contains(t, got, "Jordan Ellis")
	assert.Contains(t, got, "Pipeworks")
	assert.Contains(t, got, "... and 1 more")
}

func TestPrintProfileSummary_NilIsNoop(t *testing.T) {
	var out strings.Builder
	NewPrinter(&out).PrintProfileSummary(nil)
	assert.Empty(t, out.String())
}

func TestPrintCompletionReport(t *testing.T) {
	var out strings.Builder
	NewPrinter(&out).PrintCompletionReport(&types.Profile{Name: "X"})
	got := out.String()

	assert.Contains(t, got, "incomplete")
	assert.Contains(t, got, types.SectionBasicInfo)
	assert.Contains(t, got, types.SectionSkills)
}
