package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSession() *Session {
	return &Session{
		ID:          "s1",
		OwnerID:     "owner",
		ClientID:    "c1",
		Date:        time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC),
		StartTime:   "14:00",
		DurationMin: 50,
		Status:      SessionScheduled,
	}
}

func TestSessionValidate(t *testing.T) {
	require.NoError(t, validSession().Validate())

	s := validSession()
	s.ClientID = ""
	assert.Error(t, s.Validate(), "client reference is required")

	s = validSession()
	s.StartTime = "25:00"
	assert.Error(t, s.Validate(), "start time must be a valid HH:MM")

	s = validSession()
	s.DurationMin = 0
	assert.Error(t, s.Validate(), "duration must be positive")
}

func TestSessionStartAt(t *testing.T) {
	s := validSession()
	assert.Equal(t, time.Date(2025, 3, 5, 14, 0, 0, 0, time.UTC), s.StartAt())
	assert.Equal(t, time.Date(2025, 3, 5, 14, 50, 0, 0, time.UTC), s.EndAt())
}

func TestClientValidate(t *testing.T) {
	c := &Client{ID: "c1", OwnerID: "owner", FullName: "Anna Petrova"}
	require.NoError(t, c.Validate())

	c.FullName = ""
	assert.Error(t, c.Validate(), "full name is the only required field and must be set")
}

func TestPaymentValidate(t *testing.T) {
	p := &Payment{
		ID:          "p1",
		OwnerID:     "owner",
		ClientID:    "c1",
		AmountCents: 150000,
		Currency:    "RUB",
		Date:        time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, p.Validate())

	p.Currency = ""
	assert.Error(t, p.Validate(), "currency is mandatory")

	p.Currency = "RUB"
	p.AmountCents = -100
	assert.Error(t, p.Validate(), "amount must be non-negative")
}
