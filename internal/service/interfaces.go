package service

import (
	"context"
	"time"

	"github.com/dsorokina/kabinet/internal/domain"
	"github.com/dsorokina/kabinet/internal/listquery"
	"github.com/dsorokina/kabinet/internal/period"
	"github.com/dsorokina/kabinet/internal/report"
)

// ListOptions carries the search query and sort key accepted by every
// list operation. A zero Sort falls back to newest-first date order.
type ListOptions struct {
	Search string
	Sort   listquery.SortKey
}

type ClientService interface {
	Create(ctx context.Context, c *domain.Client) error
	GetByID(ctx context.Context, id string) (*domain.Client, error)
	List(ctx context.Context, ownerID string, opts ListOptions) ([]*domain.Client, error)
	Update(ctx context.Context, c *domain.Client) error
	Delete(ctx context.Context, id string) error
}

type SessionService interface {
	Create(ctx context.Context, s *domain.Session) error
	GetByID(ctx context.Context, id string) (*domain.Session, error)
	List(ctx context.Context, ownerID string, opts ListOptions) ([]*domain.Session, error)
	ListByDay(ctx context.Context, ownerID string, day time.Time) ([]*domain.Session, error)
	Update(ctx context.Context, s *domain.Session) error
	Delete(ctx context.Context, id string) error
}

type PaymentService interface {
	Create(ctx context.Context, p *domain.Payment) error
	GetByID(ctx context.Context, id string) (*domain.Payment, error)
	List(ctx context.Context, ownerID string, opts ListOptions) ([]*domain.Payment, error)
	Update(ctx context.Context, p *domain.Payment) error
	Delete(ctx context.Context, id string) error
}

type NoteService interface {
	Create(ctx context.Context, n *domain.Note) error
	GetByID(ctx context.Context, id string) (*domain.Note, error)
	List(ctx context.Context, ownerID string, opts ListOptions) ([]*domain.Note, error)
	ListByClient(ctx context.Context, clientID string) ([]*domain.Note, error)
	Update(ctx context.Context, n *domain.Note) error
	Delete(ctx context.Context, id string) error
}

// DashboardRequest selects the reporting window. Custom is consulted only
// when Period is period.Custom. A zero Reference means "now".
type DashboardRequest struct {
	OwnerID       string
	Period        period.Period
	Custom        *period.Range
	Reference     time.Time
	ActivityLimit int
}

// DashboardResponse is the summary the dashboard view renders: the resolved
// window, the per-window counters, and the recent activity rows.
type DashboardResponse struct {
	Span     period.Span
	Summary  report.Summary
	Activity []report.ActivityRow
}

type DashboardService interface {
	GetDashboard(ctx context.Context, req DashboardRequest) (*DashboardResponse, error)
}
