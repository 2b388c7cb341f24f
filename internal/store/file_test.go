package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobflow/jobflow/internal/types"
)

func schemaPath(t *testing.T) string {
	t.Helper()
	path, err := filepath.Abs(filepath.Join("..", "..", "schemas", "state.schema.json"))
	require.NoError(t, err)
	require.FileExists(t, path)
	return path
}

func TestFileStore_LoadMissingFile(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "state.json"), WithSchemaPath(schemaPath(t)))

	state, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Nil(t, state.Profile)
	assert.Empty(t, state.Jobs)
}

func TestFileStore_SaveLoadRoundtrip(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "state.json"), WithSchemaPath(schemaPath(t)))
	ctx := context.Background()

	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	state := NewState()
	state.Profile = &types.UserProfile{
		ID:        "profile-1",
		Name:      "Ada Lovelace",
		Skills:    []string{"Go", "PostgreSQL"},
		CreatedAt: now,
		UpdatedAt: now,
	}
	state.RecordSearch(&types.SearchResult{
		Jobs: []types.JobListing{{
			ID: "job-1", Title: "Go Engineer", Company: "Acme",
		}},
		Source: "Himalayas",
	}, types.SearchParams{Query: "golang"}, now)

	require.NoError(t, s.Save(ctx, state))

	loaded, err := s.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, loaded.Profile)
	assert.Equal(t, "Ada Lovelace", loaded.Profile.Name)
	require.Len(t, loaded.Jobs, 1)
	assert.Equal(t, "Go Engineer", loaded.Jobs[0].Title)
	require.NotNil(t, loaded.LastSearch)
	assert.Equal(t, "Himalayas", loaded.LastSearch.Source)
	assert.Equal(t, "golang", loaded.LastSearch.Params.Query)
}

func TestFileStore_RejectsInvalidState(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	// A job missing its required title violates the schema.
	invalid := `{"jobs": [{"id": "job-1", "company": "Acme"}]}`
	require.NoError(t, os.WriteFile(path, []byte(invalid), 0o644))

	s := NewFileStore(path, WithSchemaPath(schemaPath(t)))
	_, err := s.Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid")
}

func TestFileStore_SaveCreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "state.json")
	s := NewFileStore(path, WithSchemaPath(schemaPath(t)))

	require.NoError(t, s.Save(context.Background(), NewState()))
	assert.FileExists(t, path)
}

func TestState_MarkApplied(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	state := NewState()
	state.Jobs = []types.JobListing{
		{ID: "job-1", Title: "Go Engineer", Company: "Acme"},
	}

	app, err := state.MarkApplied("job-1", "Dear Hiring Manager,", now)
	require.NoError(t, err)

	assert.Equal(t, "job-1", app.JobID)
	assert.Equal(t, types.StatusApplied, app.Status)
	assert.True(t, state.Jobs[0].Applied)
	require.NotNil(t, state.Jobs[0].AppliedAt)
	assert.Equal(t, now, *state.Jobs[0].AppliedAt)
	require.Len(t, state.Applications, 1)
}

func TestState_MarkApplied_UnknownJob(t *testing.T) {
	_, err := NewState().MarkApplied("nope", "", time.Now())
	require.Error(t, err)
}

func TestState_UpdateApplicationStatus(t *testing.T) {
	state := NewState()
	state.Jobs = []types.JobListing{{ID: "job-1", Title: "T", Company: "C"}}
	app, err := state.MarkApplied("job-1", "", time.Now())
	require.NoError(t, err)

	require.NoError(t, state.UpdateApplicationStatus(app.ID, types.StatusInterview))
	assert.Equal(t, types.StatusInterview, state.Applications[0].Status)

	assert.Error(t, state.UpdateApplicationStatus("missing", types.StatusRejected))
}

func TestSearchSchedule_DueAndAdvance(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	schedule := &SearchSchedule{
		Params:   types.SearchParams{Query: "golang"},
		Interval: 24 * time.Hour,
		NextRun:  now,
		Enabled:  true,
	}

	assert.True(t, schedule.Due(now))
	assert.False(t, schedule.Due(now.Add(-time.Minute)))

	schedule.Advance(now)
	assert.Equal(t, now.Add(24*time.Hour), schedule.NextRun)
	assert.False(t, schedule.Due(now))

	schedule.Enabled = false
	assert.False(t, schedule.Due(schedule.NextRun))

	var nilSchedule *SearchSchedule
	assert.False(t, nilSchedule.Due(now))
}
