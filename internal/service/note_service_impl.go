package service

import (
	"context"
	"fmt"
	"time"

	"github.com/dsorokina/kabinet/internal/domain"
	"github.com/dsorokina/kabinet/internal/repository"
	"github.com/google/uuid"
	"golang.org/x/text/language"
)

type noteService struct {
	notes   repository.NoteRepo
	clients repository.ClientRepo
	locale  language.Tag
}

func NewNoteService(notes repository.NoteRepo, clients repository.ClientRepo, locale language.Tag) NoteService {
	return &noteService{notes: notes, clients: clients, locale: locale}
}

func (s *noteService) Create(ctx context.Context, n *domain.Note) error {
	if err := n.Validate(); err != nil {
		return err
	}
	if _, err := s.clients.GetByID(ctx, n.ClientID); err != nil {
		return fmt.Errorf("resolving client for note: %w", err)
	}
	if n.ID == "" {
		n.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	n.CreatedAt = now
	n.UpdatedAt = now
	return s.notes.Create(ctx, n)
}

func (s *noteService) GetByID(ctx context.Context, id string) (*domain.Note, error) {
	return s.notes.GetByID(ctx, id)
}

func (s *noteService) List(ctx context.Context, ownerID string, opts ListOptions) ([]*domain.Note, error) {
	notes, err := s.notes.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	clients, err := s.clients.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	pipeline := newNotePipeline(s.locale, clientNameIndex(clients))
	return pipeline.Apply(notes, opts.Search, sortOrDefault(opts.Sort)), nil
}

func (s *noteService) ListByClient(ctx context.Context, clientID string) ([]*domain.Note, error) {
	return s.notes.ListByClient(ctx, clientID)
}

func (s *noteService) Update(ctx context.Context, n *domain.Note) error {
	if err := n.Validate(); err != nil {
		return err
	}
	n.UpdatedAt = time.Now().UTC()
	return s.notes.Update(ctx, n)
}

func (s *noteService) Delete(ctx context.Context, id string) error {
	return s.notes.Delete(ctx, id)
}
