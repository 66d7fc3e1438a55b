package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/dsorokina/kabinet/internal/domain"
	"github.com/dsorokina/kabinet/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sessionTestSetup creates the client a session must reference.
func sessionTestSetup(t *testing.T) (*sql.DB, *SQLiteSessionRepo, string) {
	t.Helper()
	database := testutil.NewTestDB(t)
	ctx := context.Background()

	clientRepo := NewSQLiteClientRepo(database)
	client := testutil.NewTestClient("Anna Petrova")
	require.NoError(t, clientRepo.Create(ctx, client))

	return database, NewSQLiteSessionRepo(database), client.ID
}

func TestSessionRepo_CreateAndGetByID(t *testing.T) {
	_, repo, clientID := sessionTestSetup(t)
	ctx := context.Background()

	sess := testutil.NewTestSession(clientID, time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC),
		testutil.WithStartTime("14:00"),
		testutil.WithSessionType("therapy"),
	)
	require.NoError(t, repo.Create(ctx, sess))

	fetched, err := repo.GetByID(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, sess.ID, fetched.ID)
	assert.Equal(t, clientID, fetched.ClientID)
	assert.Equal(t, "14:00", fetched.StartTime)
	assert.Equal(t, "therapy", fetched.Type)
	assert.Equal(t, domain.SessionScheduled, fetched.Status)
	assert.Equal(t, time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC), fetched.Date)
}

func TestSessionRepo_GetByID_NotFound(t *testing.T) {
	_, repo, _ := sessionTestSetup(t)

	_, err := repo.GetByID(context.Background(), "nonexistent")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSessionRepo_ListByDay_OrdersByStartTime(t *testing.T) {
	_, repo, clientID := sessionTestSetup(t)
	ctx := context.Background()

	day := time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC)
	late := testutil.NewTestSession(clientID, day, testutil.WithStartTime("16:00"))
	early := testutil.NewTestSession(clientID, day, testutil.WithStartTime("09:00"))
	otherDay := testutil.NewTestSession(clientID, day.AddDate(0, 0, 1))
	require.NoError(t, repo.Create(ctx, late))
	require.NoError(t, repo.Create(ctx, early))
	require.NoError(t, repo.Create(ctx, otherDay))

	sessions, err := repo.ListByDay(ctx, testutil.TestOwner, day)
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.Equal(t, "09:00", sessions[0].StartTime)
	assert.Equal(t, "16:00", sessions[1].StartTime)
}

func TestSessionRepo_ListByOwner_ScopesToOwner(t *testing.T) {
	database, repo, clientID := sessionTestSetup(t)
	ctx := context.Background()

	day := time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Create(ctx, testutil.NewTestSession(clientID, day)))

	// A second practitioner's client and session must stay invisible.
	clientRepo := NewSQLiteClientRepo(database)
	foreign := testutil.NewTestClient("Foreign", testutil.WithClientOwner("someone-else"))
	require.NoError(t, clientRepo.Create(ctx, foreign))
	require.NoError(t, repo.Create(ctx, testutil.NewTestSession(foreign.ID, day,
		testutil.WithSessionOwner("someone-else"))))

	sessions, err := repo.ListByOwner(ctx, testutil.TestOwner)
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, clientID, sessions[0].ClientID)
}

func TestSessionRepo_Update(t *testing.T) {
	_, repo, clientID := sessionTestSetup(t)
	ctx := context.Background()

	sess := testutil.NewTestSession(clientID, time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC))
	require.NoError(t, repo.Create(ctx, sess))

	sess.Status = domain.SessionCompleted
	sess.Comment = "went well"
	sess.UpdatedAt = time.Now().UTC()
	require.NoError(t, repo.Update(ctx, sess))

	fetched, err := repo.GetByID(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.SessionCompleted, fetched.Status)
	assert.Equal(t, "went well", fetched.Comment)
}

func TestSessionRepo_Delete(t *testing.T) {
	_, repo, clientID := sessionTestSetup(t)
	ctx := context.Background()

	sess := testutil.NewTestSession(clientID, time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC))
	require.NoError(t, repo.Create(ctx, sess))
	require.NoError(t, repo.Delete(ctx, sess.ID))

	_, err := repo.GetByID(ctx, sess.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
