package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTracker_StartsClean(t *testing.T) {
	tracker := NewTracker()
	assert.False(t, tracker.IsDirty())
	assert.Empty(t, tracker.Sections())
}

func TestTracker_MarkDirtyIsIdempotent(t *testing.T) {
	tracker := NewTracker()
	tracker.MarkDirty("skills")
	tracker.MarkDirty("skills")
	tracker.MarkDirty("skills")

	assert.True(t, tracker.IsDirty())
	assert.Equal(t, []string{"skills"}, tracker.Sections())
}

func TestTracker_PreservesInsertionOrder(t *testing.T) {
	tracker := NewTracker()
	tracker.MarkDirty("experience")
	tracker.MarkDirty("basic-info")
	tracker.MarkDirty("skills")
	tracker.MarkDirty("experience") // re-edit, keeps original position

	assert.Equal(t, []string{"experience", "basic-info", "skills"}, tracker.Sections())
}

func TestTracker_ClearEmptiesEverything(t *testing.T) {
	tracker := NewTracker()
	tracker.MarkDirty("skills")
	tracker.Clear()

	assert.False(t, tracker.IsDirty())
	assert.Empty(t, tracker.Sections())

	// Marking after a clear starts a fresh ordering.
	tracker.MarkDirty("education")
	assert.Equal(t, []string{"education"}, tracker.Sections())
}

func TestTracker_IgnoresEmptySectionID(t *testing.T) {
	tracker := NewTracker()
	tracker.MarkDirty("")
	assert.False(t, tracker.IsDirty())
}

func TestTracker_SectionsReturnsSnapshot(t *testing.T) {
	tracker := NewTracker()
	tracker.MarkDirty("skills")

	snapshot := tracker.Sections()
	snapshot[0] = "mutated"

	assert.Equal(t, []string{"skills"}, tracker.Sections())
}
