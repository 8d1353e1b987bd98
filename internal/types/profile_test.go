package types

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProfile_CollectionsNeverNil(t *testing.T) {
	p := NewProfile(uuid.New(), "Alex", "alex@example.com")

	assert.NotNil(t, p.Skills)
	assert.NotNil(t, p.Experience)
	assert.NotNil(t, p.Education)
	assert.NotNil(t, p.Projects)
	assert.NotNil(t, p.Certifications)
	assert.NotNil(t, p.Achievements)
	assert.NotNil(t, p.Languages)
	assert.Empty(t, p.Skills)
}

func TestProfile_NormalizeAfterUnmarshal(t *testing.T) {
	// A record written by an older build may omit collection fields entirely.
	raw := `{"id":"` + uuid.New().String() + `","name":"Alex","email":"alex@example.com","projects":[{"name":"Site","description":"d"}]}`

	var p Profile
	require.NoError(t, json.Unmarshal([]byte(raw), &p))
	p.Normalize()

	assert.NotNil(t, p.Skills)
	assert.NotNil(t, p.Languages)
	require.Len(t, p.Projects, 1)
	assert.NotNil(t, p.Projects[0].Tags, "project tags should be normalized too")
}

func TestProfile_CloneIsDeep(t *testing.T) {
	p := NewProfile(uuid.New(), "Alex", "alex@example.com")
	p.Skills = []string{"Go", "SQL"}
	p.Projects = []ProjectEntry{{Name: "Site", Tags: []string{"web"}}}

	clone := p.Clone()
	clone.Skills[0] = "Rust"
	clone.Projects[0].Tags[0] = "mobile"

	assert.Equal(t, "Go", p.Skills[0])
	assert.Equal(t, "web", p.Projects[0].Tags[0])
}

func TestLoginRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     LoginRequest
		wantErr bool
	}{
		{"valid", LoginRequest{Name: "Alex", Email: "alex@example.com"}, false},
		{"missing name", LoginRequest{Email: "alex@example.com"}, true},
		{"bad email", LoginRequest{Name: "Alex", Email: "not-an-email"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestResolveNavigationRequest_Validate(t *testing.T) {
	for _, decision := range []string{"save", "discard", "cancel"} {
		req := ResolveNavigationRequest{Decision: decision}
		assert.NoError(t, req.Validate(), decision)
	}

	req := ResolveNavigationRequest{Decision: "maybe"}
	assert.Error(t, req.Validate())
}
