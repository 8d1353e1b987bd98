package assist

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/portfolio-studio/internal/types"
)

func TestNew_NoAPIKeyFallsBackToLocal(t *testing.T) {
	s, err := New(context.Background(), "")
	require.NoError(t, err)
	defer s.Close()

	_, ok := s.(*localSuggester)
	assert.True(t, ok)
}

func TestLocalSuggester_DraftsFromProfile(t *testing.T) {
	p := &types.Profile{
		Name:     "Ada Lovelace",
		Title:    "Systems Engineer",
		Location: "London",
		Skills:   []string{"Go", "SQL", "Distributed Systems", "Kubernetes"},
		Experience: []types.ExperienceEntry{
			{Company: "Analytical Engines Ltd", Position: "Lead Engineer", Duration: "2021 - Present"},
		},
	}

	s := &localSuggester{}
	got, err := s.SuggestAbout(context.Background(), p)
	require.NoError(t, err)

	assert.Contains(t, got, "systems engineer")
	assert.Contains(t, got, "London")
	assert.Contains(t, got, "Go, SQL, Distributed Systems")
	assert.Contains(t, got, "Analytical Engines Ltd")
	assert.NotContains(t, got, "Kubernetes")
}

func TestLocalSuggester_SparseProfile(t *testing.T) {
	s := &localSuggester{}
	got, err := s.SuggestAbout(context.Background(), &types.Profile{Name: "X"})
	require.NoError(t, err)
	assert.Contains(t, got, "professional")
}

func TestLocalSuggester_NilProfile(t *testing.T) {
	s := &localSuggester{}
	_, err := s.SuggestAbout(context.Background(), nil)
	assert.Error(t, err)
}

func TestLocalSuggester_Deterministic(t *testing.T) {
	p := &types.Profile{Title: "Designer", Skills: []string{"Figma"}}
	s := &localSuggester{}

	a, err := s.SuggestAbout(context.Background(), p)
	require.NoError(t, err)
	b, err := s.SuggestAbout(context.Background(), p)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
