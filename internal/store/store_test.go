package store

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/jonathan/portfolio-studio/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleProfile() *types.Profile {
	p := types.NewProfile(uuid.New(), "Alex", "alex@example.com")
	p.Title = "Designer"
	p.About = "Hi"
	p.Skills = []string{"Figma", "Sketch"}
	p.Experience = []types.ExperienceEntry{{Company: "Acme", Position: "Designer", Duration: "2020-2023", Description: "Led design"}}
	p.Education = []types.EducationEntry{{Institution: "State U", Degree: "BFA", Year: "2020"}}
	return p
}

func TestStore_SaveLoadRoundtrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	p := sampleProfile()

	require.NoError(t, s.Save(ctx, p))

	loaded, err := s.Load(ctx, p.ID)
	require.NoError(t, err)

	assert.Equal(t, p.ID, loaded.ID)
	assert.Equal(t, p.Name, loaded.Name)
	assert.Equal(t, p.Title, loaded.Title)
	assert.Equal(t, p.About, loaded.About)
	assert.Equal(t, p.Skills, loaded.Skills)
	assert.Equal(t, p.Experience, loaded.Experience)
	assert.Equal(t, p.Education, loaded.Education)
	assert.Equal(t, p.Projects, loaded.Projects)
}

func TestStore_LoadMissingReturnsNotFound(t *testing.T) {
	s := openTestStore(t)

	_, err := s.Load(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_SaveOverwritesWholesale(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	p := sampleProfile()
	require.NoError(t, s.Save(ctx, p))

	// Second save drops a section entirely; the load must reflect that, not
	// a field-level merge.
	p.Skills = []string{}
	p.Title = "Senior Designer"
	require.NoError(t, s.Save(ctx, p))

	loaded, err := s.Load(ctx, p.ID)
	require.NoError(t, err)
	assert.Empty(t, loaded.Skills)
	assert.Equal(t, "Senior Designer", loaded.Title)
}

func TestStore_CorruptRecordTreatedAsNotFound(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	userID := uuid.New()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO profiles (user_id, record) VALUES (?, ?)`,
		userID.String(), `{"name": truncated`,
	)
	require.NoError(t, err)

	_, err = s.Load(ctx, userID)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)

	var corrupt *CorruptRecordError
	assert.ErrorAs(t, err, &corrupt)
	assert.Equal(t, userID, corrupt.UserID)
}

func TestStore_SchemaInvalidRecordTreatedAsNotFound(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	userID := uuid.New()

	// Valid JSON, but not a valid profile record.
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO profiles (user_id, record) VALUES (?, ?)`,
		userID.String(), `{"name": "Alex", "skills": "not-a-list"}`,
	)
	require.NoError(t, err)

	_, err = s.Load(ctx, userID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_ClearRemovesProfileAndExports(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	p := sampleProfile()

	require.NoError(t, s.Save(ctx, p))
	require.NoError(t, s.SaveExport(ctx, p.ID, "modern", "html", []byte("<html></html>")))

	require.NoError(t, s.Clear(ctx, p.ID))

	_, err := s.Load(ctx, p.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.LoadExport(ctx, p.ID, "modern", "html")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_ClearUnknownUserIsNoop(t *testing.T) {
	s := openTestStore(t)
	assert.NoError(t, s.Clear(context.Background(), uuid.New()))
}

func TestStore_ExportCacheRoundtrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	userID := uuid.New()

	require.NoError(t, s.SaveExport(ctx, userID, "minimal", "pdf", []byte{0x25, 0x50, 0x44, 0x46}))

	content, err := s.LoadExport(ctx, userID, "minimal", "pdf")
	require.NoError(t, err)
	assert.Equal(t, []byte{0x25, 0x50, 0x44, 0x46}, content)

	// Replacement, not accumulation.
	require.NoError(t, s.SaveExport(ctx, userID, "minimal", "pdf", []byte("v2")))
	content, err = s.LoadExport(ctx, userID, "minimal", "pdf")
	require.NoError(t, err)
	assert.Equal(t, []byte("v2"), content)
}

func TestStore_SaveRejectsNilAndUnidentifiedProfiles(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	err := s.Save(ctx, nil)
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrNotFound))

	p := &types.Profile{Name: "Alex"}
	assert.Error(t, s.Save(ctx, p))
}
