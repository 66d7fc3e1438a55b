package report

import (
	"sort"

	"github.com/dsorokina/kabinet/internal/domain"
)

// Fallback values substituted when a joined relation is missing, so the
// dashboard always renders a complete row. The payment placeholder mirrors
// the product's original dashboard copy.
const (
	FallbackClientName  = "Unknown client"
	FallbackSessionType = "Active session"
	FallbackPayment     = "2 000 USD"
)

// ActivityRow is a denormalized display row joining a session to its
// client's name and the most recent payment settling it.
type ActivityRow struct {
	SessionID   string
	ClientName  string
	SessionType string
	Payment     string
}

// RecentActivity returns up to limit rows for the most recently created
// sessions, newest first. Missing joins never fail: an absent client or
// payment degrades to the package's fallback values.
func RecentActivity(sessions []*domain.Session, clients []*domain.Client, payments []*domain.Payment, limit int) []ActivityRow {
	if limit <= 0 || len(sessions) == 0 {
		return nil
	}

	ordered := make([]*domain.Session, len(sessions))
	copy(ordered, sessions)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].CreatedAt.After(ordered[j].CreatedAt)
	})
	if len(ordered) > limit {
		ordered = ordered[:limit]
	}

	nameByClient := make(map[string]string, len(clients))
	for _, c := range clients {
		nameByClient[c.ID] = c.FullName
	}
	paymentBySession := latestPaymentBySession(payments)

	rows := make([]ActivityRow, 0, len(ordered))
	for _, s := range ordered {
		row := ActivityRow{
			SessionID:   s.ID,
			ClientName:  FallbackClientName,
			SessionType: s.Type,
			Payment:     FallbackPayment,
		}
		if name, ok := nameByClient[s.ClientID]; ok {
			row.ClientName = name
		}
		if row.SessionType == "" {
			row.SessionType = FallbackSessionType
		}
		if p, ok := paymentBySession[s.ID]; ok {
			row.Payment = p.AmountLabel()
		}
		rows = append(rows, row)
	}
	return rows
}

// latestPaymentBySession picks, for every session that has payments, the
// most recent one (by payment date, then by creation time).
func latestPaymentBySession(payments []*domain.Payment) map[string]*domain.Payment {
	latest := make(map[string]*domain.Payment)
	for _, p := range payments {
		if p.SessionID == nil {
			continue
		}
		cur, ok := latest[*p.SessionID]
		if !ok || newerPayment(p, cur) {
			latest[*p.SessionID] = p
		}
	}
	return latest
}

func newerPayment(a, b *domain.Payment) bool {
	if !a.Date.Equal(b.Date) {
		return a.Date.After(b.Date)
	}
	return a.CreatedAt.After(b.CreatedAt)
}
