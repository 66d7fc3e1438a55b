package repository

import (
	"context"
	"time"

	"github.com/dsorokina/kabinet/internal/domain"
)

// Every list method takes the owner id: collections leave the store already
// scoped to the practitioner account that owns them.

type ClientRepo interface {
	Create(ctx context.Context, c *domain.Client) error
	GetByID(ctx context.Context, id string) (*domain.Client, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.Client, error)
	Update(ctx context.Context, c *domain.Client) error
	Delete(ctx context.Context, id string) error
}

type SessionRepo interface {
	Create(ctx context.Context, s *domain.Session) error
	GetByID(ctx context.Context, id string) (*domain.Session, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.Session, error)
	ListByDay(ctx context.Context, ownerID string, day time.Time) ([]*domain.Session, error)
	ListByClient(ctx context.Context, clientID string) ([]*domain.Session, error)
	Update(ctx context.Context, s *domain.Session) error
	Delete(ctx context.Context, id string) error
}

type PaymentRepo interface {
	Create(ctx context.Context, p *domain.Payment) error
	GetByID(ctx context.Context, id string) (*domain.Payment, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.Payment, error)
	ListByClient(ctx context.Context, clientID string) ([]*domain.Payment, error)
	Update(ctx context.Context, p *domain.Payment) error
	Delete(ctx context.Context, id string) error
}

type NoteRepo interface {
	Create(ctx context.Context, n *domain.Note) error
	GetByID(ctx context.Context, id string) (*domain.Note, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.Note, error)
	ListByClient(ctx context.Context, clientID string) ([]*domain.Note, error)
	Update(ctx context.Context, n *domain.Note) error
	Delete(ctx context.Context, id string) error
}
