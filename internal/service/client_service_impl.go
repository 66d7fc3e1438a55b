package service

import (
	"context"
	"time"

	"github.com/dsorokina/kabinet/internal/domain"
	"github.com/dsorokina/kabinet/internal/listquery"
	"github.com/dsorokina/kabinet/internal/repository"
	"github.com/google/uuid"
	"golang.org/x/text/language"
)

type clientService struct {
	clients  repository.ClientRepo
	pipeline *listquery.Pipeline[*domain.Client]
}

func NewClientService(clients repository.ClientRepo, locale language.Tag) ClientService {
	return &clientService{
		clients:  clients,
		pipeline: newClientPipeline(locale),
	}
}

func (s *clientService) Create(ctx context.Context, c *domain.Client) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	c.CreatedAt = now
	c.UpdatedAt = now
	return s.clients.Create(ctx, c)
}

func (s *clientService) GetByID(ctx context.Context, id string) (*domain.Client, error) {
	return s.clients.GetByID(ctx, id)
}

func (s *clientService) List(ctx context.Context, ownerID string, opts ListOptions) ([]*domain.Client, error) {
	clients, err := s.clients.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return s.pipeline.Apply(clients, opts.Search, sortOrDefault(opts.Sort)), nil
}

func (s *clientService) Update(ctx context.Context, c *domain.Client) error {
	if err := c.Validate(); err != nil {
		return err
	}
	c.UpdatedAt = time.Now().UTC()
	return s.clients.Update(ctx, c)
}

func (s *clientService) Delete(ctx context.Context, id string) error {
	return s.clients.Delete(ctx, id)
}
