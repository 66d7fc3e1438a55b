package report

import (
	"testing"
	"time"

	"github.com/dsorokina/kabinet/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func session(id, clientID, sessionType string, createdAt time.Time) *domain.Session {
	return &domain.Session{
		ID:        id,
		OwnerID:   "owner",
		ClientID:  clientID,
		Date:      date(2025, 3, 5),
		StartTime: "10:00",
		Type:      sessionType,
		CreatedAt: createdAt,
	}
}

func strPtr(s string) *string { return &s }

func TestRecentActivity_OrderAndLimit(t *testing.T) {
	sessions := []*domain.Session{
		session("s1", "c1", "intro", date(2025, 3, 1)),
		session("s2", "c1", "therapy", date(2025, 3, 3)),
		session("s3", "c1", "therapy", date(2025, 3, 2)),
	}
	clients := []*domain.Client{
		{ID: "c1", FullName: "Anna Petrova"},
	}

	rows := RecentActivity(sessions, clients, nil, 2)

	require.Len(t, rows, 2)
	assert.Equal(t, "s2", rows[0].SessionID, "newest session first")
	assert.Equal(t, "s3", rows[1].SessionID)
	assert.Equal(t, "Anna Petrova", rows[0].ClientName)
}

func TestRecentActivity_JoinsLatestPayment(t *testing.T) {
	sessions := []*domain.Session{
		session("s1", "c1", "therapy", date(2025, 3, 1)),
	}
	clients := []*domain.Client{{ID: "c1", FullName: "Anna"}}
	payments := []*domain.Payment{
		{ID: "p1", ClientID: "c1", SessionID: strPtr("s1"), AmountCents: 100000, Currency: "RUB", Date: date(2025, 3, 1), CreatedAt: date(2025, 3, 1)},
		{ID: "p2", ClientID: "c1", SessionID: strPtr("s1"), AmountCents: 120000, Currency: "RUB", Date: date(2025, 3, 8), CreatedAt: date(2025, 3, 8)},
		{ID: "unlinked", ClientID: "c1", SessionID: nil, AmountCents: 999, Currency: "RUB", Date: date(2025, 3, 9), CreatedAt: date(2025, 3, 9)},
	}

	rows := RecentActivity(sessions, clients, payments, 9)

	require.Len(t, rows, 1)
	assert.Equal(t, "1200.00 RUB", rows[0].Payment, "the most recent linked payment wins; unlinked payments are ignored")
}

func TestRecentActivity_MissingJoinsFallBack(t *testing.T) {
	sessions := []*domain.Session{
		session("s1", "ghost-client", "", date(2025, 3, 1)),
	}

	rows := RecentActivity(sessions, nil, nil, 9)

	require.Len(t, rows, 1)
	assert.Equal(t, FallbackClientName, rows[0].ClientName, "absent client join degrades to the placeholder, never an error")
	assert.Equal(t, FallbackSessionType, rows[0].SessionType)
	assert.Equal(t, FallbackPayment, rows[0].Payment)
}

func TestRecentActivity_ZeroLimit(t *testing.T) {
	sessions := []*domain.Session{
		session("s1", "c1", "therapy", date(2025, 3, 1)),
	}

	assert.Nil(t, RecentActivity(sessions, nil, nil, 0))
}

func TestRecentActivity_DoesNotMutateInput(t *testing.T) {
	sessions := []*domain.Session{
		session("old", "c1", "a", date(2025, 3, 1)),
		session("new", "c1", "b", date(2025, 3, 9)),
	}

	_ = RecentActivity(sessions, nil, nil, 9)

	assert.Equal(t, "old", sessions[0].ID, "caller's slice order is preserved")
	assert.Equal(t, "new", sessions[1].ID)
}
