package service

import (
	"context"
	"fmt"
	"time"

	"github.com/dsorokina/kabinet/internal/db"
	"github.com/dsorokina/kabinet/internal/domain"
	"github.com/dsorokina/kabinet/internal/repository"
	"github.com/google/uuid"
	"golang.org/x/text/language"
)

type sessionService struct {
	sessions repository.SessionRepo
	clients  repository.ClientRepo
	uow      db.UnitOfWork
	locale   language.Tag
}

func NewSessionService(sessions repository.SessionRepo, clients repository.ClientRepo, uow db.UnitOfWork, locale language.Tag) SessionService {
	return &sessionService{sessions: sessions, clients: clients, uow: uow, locale: locale}
}

func (s *sessionService) Create(ctx context.Context, sess *domain.Session) error {
	if err := sess.Validate(); err != nil {
		return err
	}
	if sess.ID == "" {
		sess.ID = uuid.New().String()
	}
	if sess.Status == "" {
		sess.Status = domain.SessionScheduled
	}
	now := time.Now().UTC()
	sess.CreatedAt = now
	sess.UpdatedAt = now

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txClients := repository.NewSQLiteClientRepo(tx)
		txSessions := repository.NewSQLiteSessionRepo(tx)

		if _, err := txClients.GetByID(ctx, sess.ClientID); err != nil {
			return fmt.Errorf("resolving client for session: %w", err)
		}
		return txSessions.Create(ctx, sess)
	})
}

func (s *sessionService) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	return s.sessions.GetByID(ctx, id)
}

func (s *sessionService) List(ctx context.Context, ownerID string, opts ListOptions) ([]*domain.Session, error) {
	sessions, err := s.sessions.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	clients, err := s.clients.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	pipeline := newSessionPipeline(s.locale, clientNameIndex(clients))
	return pipeline.Apply(sessions, opts.Search, sortOrDefault(opts.Sort)), nil
}

func (s *sessionService) ListByDay(ctx context.Context, ownerID string, day time.Time) ([]*domain.Session, error) {
	return s.sessions.ListByDay(ctx, ownerID, day)
}

func (s *sessionService) Update(ctx context.Context, sess *domain.Session) error {
	if err := sess.Validate(); err != nil {
		return err
	}
	sess.UpdatedAt = time.Now().UTC()
	return s.sessions.Update(ctx, sess)
}

func (s *sessionService) Delete(ctx context.Context, id string) error {
	return s.sessions.Delete(ctx, id)
}
