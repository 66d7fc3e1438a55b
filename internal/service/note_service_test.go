package service

import (
	"context"
	"testing"

	"github.com/dsorokina/kabinet/internal/domain"
	"github.com/dsorokina/kabinet/internal/repository"
	"github.com/dsorokina/kabinet/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoteService_Create_RequiresKnownClient(t *testing.T) {
	r := setupRepos(t)
	ctx := context.Background()

	svc := NewNoteService(r.notes, r.clients, testLocale)

	err := svc.Create(ctx, &domain.Note{
		OwnerID:  testutil.TestOwner,
		ClientID: "no-such-client",
		Content:  "orphan",
	})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestNoteService_Create_RequiresContent(t *testing.T) {
	r := setupRepos(t)
	ctx := context.Background()

	client := mustClient(t, r, "Anna Petrova")
	svc := NewNoteService(r.notes, r.clients, testLocale)

	err := svc.Create(ctx, &domain.Note{OwnerID: testutil.TestOwner, ClientID: client.ID})
	assert.Error(t, err)
}

func TestNoteService_List_SearchContentAndClientName(t *testing.T) {
	r := setupRepos(t)
	ctx := context.Background()

	anna := mustClient(t, r, "Anna Petrova")
	boris := mustClient(t, r, "Boris Volkov")
	svc := NewNoteService(r.notes, r.clients, testLocale)

	require.NoError(t, svc.Create(ctx, &domain.Note{OwnerID: testutil.TestOwner, ClientID: anna.ID, Content: "prefers mornings"}))
	require.NoError(t, svc.Create(ctx, &domain.Note{OwnerID: testutil.TestOwner, ClientID: boris.ID, Content: "switching to biweekly"}))

	byContent, err := svc.List(ctx, testutil.TestOwner, ListOptions{Search: "mornings"})
	require.NoError(t, err)
	require.Len(t, byContent, 1)
	assert.Equal(t, anna.ID, byContent[0].ClientID)

	byName, err := svc.List(ctx, testutil.TestOwner, ListOptions{Search: "volkov"})
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, boris.ID, byName[0].ClientID)
}

func TestNoteService_ListByClient(t *testing.T) {
	r := setupRepos(t)
	ctx := context.Background()

	anna := mustClient(t, r, "Anna Petrova")
	boris := mustClient(t, r, "Boris Volkov")
	svc := NewNoteService(r.notes, r.clients, testLocale)

	require.NoError(t, svc.Create(ctx, &domain.Note{OwnerID: testutil.TestOwner, ClientID: anna.ID, Content: "hers"}))
	require.NoError(t, svc.Create(ctx, &domain.Note{OwnerID: testutil.TestOwner, ClientID: boris.ID, Content: "his"}))

	got, err := svc.ListByClient(ctx, anna.ID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "hers", got[0].Content)
}
