package testutil

import (
	"time"

	"github.com/dsorokina/kabinet/internal/domain"
	"github.com/google/uuid"
)

// TestOwner is the owner id all fixtures are scoped to unless overridden.
const TestOwner = "owner-test"

// Client options
type ClientOption func(*domain.Client)

func WithClientOwner(ownerID string) ClientOption {
	return func(c *domain.Client) {
		c.OwnerID = ownerID
	}
}

func WithEmail(email string) ClientOption {
	return func(c *domain.Client) {
		c.Email = &email
	}
}

func WithPhone(phone string) ClientOption {
	return func(c *domain.Client) {
		c.Phone = &phone
	}
}

func WithBirthDate(d time.Time) ClientOption {
	return func(c *domain.Client) {
		c.BirthDate = &d
	}
}

func WithClientCreatedAt(t time.Time) ClientOption {
	return func(c *domain.Client) {
		c.CreatedAt = t
		c.UpdatedAt = t
	}
}

func NewTestClient(fullName string, opts ...ClientOption) *domain.Client {
	now := time.Now().UTC()
	c := &domain.Client{
		ID:        uuid.New().String(),
		OwnerID:   TestOwner,
		FullName:  fullName,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Session options
type SessionOption func(*domain.Session)

func WithSessionOwner(ownerID string) SessionOption {
	return func(s *domain.Session) {
		s.OwnerID = ownerID
	}
}

func WithStartTime(hhmm string) SessionOption {
	return func(s *domain.Session) {
		s.StartTime = hhmm
	}
}

func WithSessionType(sessionType string) SessionOption {
	return func(s *domain.Session) {
		s.Type = sessionType
	}
}

func WithSessionStatus(status domain.SessionStatus) SessionOption {
	return func(s *domain.Session) {
		s.Status = status
	}
}

func WithSessionCreatedAt(t time.Time) SessionOption {
	return func(s *domain.Session) {
		s.CreatedAt = t
		s.UpdatedAt = t
	}
}

func NewTestSession(clientID string, date time.Time, opts ...SessionOption) *domain.Session {
	now := time.Now().UTC()
	s := &domain.Session{
		ID:          uuid.New().String(),
		OwnerID:     TestOwner,
		ClientID:    clientID,
		Date:        date,
		StartTime:   "10:00",
		DurationMin: 50,
		Status:      domain.SessionScheduled,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Payment options
type PaymentOption func(*domain.Payment)

func WithPaymentOwner(ownerID string) PaymentOption {
	return func(p *domain.Payment) {
		p.OwnerID = ownerID
	}
}

func WithSessionID(sessionID string) PaymentOption {
	return func(p *domain.Payment) {
		p.SessionID = &sessionID
	}
}

func WithCurrency(currency string) PaymentOption {
	return func(p *domain.Payment) {
		p.Currency = currency
	}
}

func WithPaymentCreatedAt(t time.Time) PaymentOption {
	return func(p *domain.Payment) {
		p.CreatedAt = t
	}
}

func NewTestPayment(clientID string, amountCents int64, date time.Time, opts ...PaymentOption) *domain.Payment {
	p := &domain.Payment{
		ID:          uuid.New().String(),
		OwnerID:     TestOwner,
		ClientID:    clientID,
		AmountCents: amountCents,
		Currency:    "RUB",
		Date:        date,
		CreatedAt:   time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Note options
type NoteOption func(*domain.Note)

func WithNoteOwner(ownerID string) NoteOption {
	return func(n *domain.Note) {
		n.OwnerID = ownerID
	}
}

func WithNoteCreatedAt(t time.Time) NoteOption {
	return func(n *domain.Note) {
		n.CreatedAt = t
		n.UpdatedAt = t
	}
}

func NewTestNote(clientID string, content string, opts ...NoteOption) *domain.Note {
	now := time.Now().UTC()
	n := &domain.Note{
		ID:        uuid.New().String(),
		OwnerID:   TestOwner,
		ClientID:  clientID,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}
