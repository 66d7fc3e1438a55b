package service

import (
	"context"
	"time"

	"github.com/dsorokina/kabinet/internal/period"
	"github.com/dsorokina/kabinet/internal/report"
	"github.com/dsorokina/kabinet/internal/repository"
)

// DefaultActivityLimit caps the recent activity feed on the dashboard.
const DefaultActivityLimit = 9

type dashboardService struct {
	clients  repository.ClientRepo
	sessions repository.SessionRepo
	payments repository.PaymentRepo
	observer UseCaseObserver
}

func NewDashboardService(
	clients repository.ClientRepo,
	sessions repository.SessionRepo,
	payments repository.PaymentRepo,
	observers ...UseCaseObserver,
) DashboardService {
	return &dashboardService{
		clients:  clients,
		sessions: sessions,
		payments: payments,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *dashboardService) GetDashboard(ctx context.Context, req DashboardRequest) (resp *DashboardResponse, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{
		"owner":  req.OwnerID,
		"period": string(req.Period),
	}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "get-dashboard",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	reference := req.Reference
	if reference.IsZero() {
		reference = time.Now().UTC()
	}
	span, err := period.Bounds(req.Period, reference, req.Custom)
	if err != nil {
		return nil, err
	}

	clients, err := s.clients.ListByOwner(ctx, req.OwnerID)
	if err != nil {
		return nil, err
	}
	sessions, err := s.sessions.ListByOwner(ctx, req.OwnerID)
	if err != nil {
		return nil, err
	}
	payments, err := s.payments.ListByOwner(ctx, req.OwnerID)
	if err != nil {
		return nil, err
	}

	limit := req.ActivityLimit
	if limit <= 0 {
		limit = DefaultActivityLimit
	}

	summary := report.Summarize(clients, sessions, payments, span)
	activity := report.RecentActivity(sessions, clients, payments, limit)
	fields["session_count"] = summary.SessionCount

	return &DashboardResponse{
		Span:     span,
		Summary:  summary,
		Activity: activity,
	}, nil
}
