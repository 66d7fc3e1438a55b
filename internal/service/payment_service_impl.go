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

type paymentService struct {
	payments repository.PaymentRepo
	clients  repository.ClientRepo
	uow      db.UnitOfWork
	locale   language.Tag
}

func NewPaymentService(payments repository.PaymentRepo, clients repository.ClientRepo, uow db.UnitOfWork, locale language.Tag) PaymentService {
	return &paymentService{payments: payments, clients: clients, uow: uow, locale: locale}
}

func (s *paymentService) Create(ctx context.Context, p *domain.Payment) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	p.CreatedAt = time.Now().UTC()

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txClients := repository.NewSQLiteClientRepo(tx)
		txSessions := repository.NewSQLiteSessionRepo(tx)
		txPayments := repository.NewSQLitePaymentRepo(tx)

		if _, err := txClients.GetByID(ctx, p.ClientID); err != nil {
			return fmt.Errorf("resolving client for payment: %w", err)
		}
		if p.SessionID != nil {
			if _, err := txSessions.GetByID(ctx, *p.SessionID); err != nil {
				return fmt.Errorf("resolving session for payment: %w", err)
			}
		}
		return txPayments.Create(ctx, p)
	})
}

func (s *paymentService) GetByID(ctx context.Context, id string) (*domain.Payment, error) {
	return s.payments.GetByID(ctx, id)
}

func (s *paymentService) List(ctx context.Context, ownerID string, opts ListOptions) ([]*domain.Payment, error) {
	payments, err := s.payments.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	clients, err := s.clients.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	pipeline := newPaymentPipeline(s.locale, clientNameIndex(clients))
	return pipeline.Apply(payments, opts.Search, sortOrDefault(opts.Sort)), nil
}

func (s *paymentService) Update(ctx context.Context, p *domain.Payment) error {
	if err := p.Validate(); err != nil {
		return err
	}
	return s.payments.Update(ctx, p)
}

func (s *paymentService) Delete(ctx context.Context, id string) error {
	return s.payments.Delete(ctx, id)
}
