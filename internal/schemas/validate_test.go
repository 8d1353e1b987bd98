package schemas

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/jonathan/portfolio-studio/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateProfileJSON_AcceptsNormalizedProfile(t *testing.T) {
	p := types.NewProfile(uuid.New(), "Alex", "alex@example.com")
	doc, err := json.Marshal(p)
	require.NoError(t, err)

	assert.NoError(t, ValidateProfileJSON(doc))
}

func TestValidateProfileJSON_AcceptsFullProfile(t *testing.T) {
	p := types.NewProfile(uuid.New(), "Alex", "alex@example.com")
	p.Title = "Designer"
	p.About = "Hi"
	p.Skills = []string{"Figma"}
	p.Experience = []types.ExperienceEntry{{Company: "Acme", Position: "Designer", Duration: "2020-2023"}}
	p.Education = []types.EducationEntry{{Institution: "State U", Degree: "BFA", Year: "2020"}}
	p.Projects = []types.ProjectEntry{{Name: "Site", Description: "d", Tags: []string{"web"}}}

	doc, err := json.Marshal(p)
	require.NoError(t, err)

	assert.NoError(t, ValidateProfileJSON(doc))
}

func TestValidateProfileJSON_RejectsMalformedRecords(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"not an object", `[1,2,3]`},
		{"missing required fields", `{"name":"Alex"}`},
		{"bad id format", `{"id":"nope","name":"Alex","email":"a@b.c","skills":[],"experience":[],"education":[]}`},
		{"skills not strings", `{"id":"` + uuid.New().String() + `","name":"Alex","email":"a@b.c","skills":[1],"experience":[],"education":[]}`},
		{"experience entry missing company", `{"id":"` + uuid.New().String() + `","name":"Alex","email":"a@b.c","skills":[],"experience":[{"position":"Dev"}],"education":[]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateProfileJSON([]byte(tt.doc))
			require.Error(t, err)

			var ve *ValidationError
			assert.ErrorAs(t, err, &ve)
			assert.NotEmpty(t, ve.Errors)
		})
	}
}
