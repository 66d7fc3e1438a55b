package repository

import (
	"context"
	"testing"
	"time"

	"github.com/dsorokina/kabinet/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noteTestSetup(t *testing.T) (*SQLiteNoteRepo, string) {
	t.Helper()
	database := testutil.NewTestDB(t)
	ctx := context.Background()

	clientRepo := NewSQLiteClientRepo(database)
	client := testutil.NewTestClient("Olga Smirnova")
	require.NoError(t, clientRepo.Create(ctx, client))

	return NewSQLiteNoteRepo(database), client.ID
}

func TestNoteRepo_CreateAndGetByID(t *testing.T) {
	repo, clientID := noteTestSetup(t)
	ctx := context.Background()

	note := testutil.NewTestNote(clientID, "prefers morning slots")
	require.NoError(t, repo.Create(ctx, note))

	fetched, err := repo.GetByID(ctx, note.ID)
	require.NoError(t, err)
	assert.Equal(t, note.ID, fetched.ID)
	assert.Equal(t, clientID, fetched.ClientID)
	assert.Equal(t, "prefers morning slots", fetched.Content)
}

func TestNoteRepo_ListByClient_NewestFirst(t *testing.T) {
	repo, clientID := noteTestSetup(t)
	ctx := context.Background()

	older := testutil.NewTestNote(clientID, "first",
		testutil.WithNoteCreatedAt(time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)))
	newer := testutil.NewTestNote(clientID, "second",
		testutil.WithNoteCreatedAt(time.Date(2025, 3, 2, 10, 0, 0, 0, time.UTC)))
	require.NoError(t, repo.Create(ctx, older))
	require.NoError(t, repo.Create(ctx, newer))

	notes, err := repo.ListByClient(ctx, clientID)
	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Equal(t, "second", notes[0].Content)
	assert.Equal(t, "first", notes[1].Content)
}

func TestNoteRepo_ListByOwner_ScopedToOwner(t *testing.T) {
	repo, clientID := noteTestSetup(t)
	ctx := context.Background()

	mine := testutil.NewTestNote(clientID, "mine")
	other := testutil.NewTestNote(clientID, "theirs", testutil.WithNoteOwner("owner-other"))
	require.NoError(t, repo.Create(ctx, mine))
	require.NoError(t, repo.Create(ctx, other))

	notes, err := repo.ListByOwner(ctx, testutil.TestOwner)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "mine", notes[0].Content)
}

func TestNoteRepo_Update(t *testing.T) {
	repo, clientID := noteTestSetup(t)
	ctx := context.Background()

	note := testutil.NewTestNote(clientID, "draft")
	require.NoError(t, repo.Create(ctx, note))

	note.Content = "final"
	note.UpdatedAt = time.Now().UTC()
	require.NoError(t, repo.Update(ctx, note))

	fetched, err := repo.GetByID(ctx, note.ID)
	require.NoError(t, err)
	assert.Equal(t, "final", fetched.Content)
}

func TestNoteRepo_UpdateMissing(t *testing.T) {
	repo, clientID := noteTestSetup(t)
	ctx := context.Background()

	note := testutil.NewTestNote(clientID, "never saved")
	err := repo.Update(ctx, note)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestNoteRepo_Delete(t *testing.T) {
	repo, clientID := noteTestSetup(t)
	ctx := context.Background()

	note := testutil.NewTestNote(clientID, "to remove")
	require.NoError(t, repo.Create(ctx, note))
	require.NoError(t, repo.Delete(ctx, note.ID))

	_, err := repo.GetByID(ctx, note.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
