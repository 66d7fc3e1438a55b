// Package report reduces owner-scoped entity collections into the summary
// figures and the recent-activity rows the dashboard renders. It performs
// no I/O; callers load the collections and pass them in together with the
// period span to report over.
package report

import (
	"github.com/dsorokina/kabinet/internal/domain"
	"github.com/dsorokina/kabinet/internal/period"
)

// Summary holds the headline figures for one reporting period.
//
// RevenueCents is the nominal sum of payment amounts inside the period with
// no currency conversion: payments in different currencies are summed as-is.
// A known product limitation carried over deliberately, not an error.
type Summary struct {
	ClientCount  int
	SessionCount int
	RevenueCents int64
}

// Summarize filters each collection by its relevant date field (client
// creation time, session date, payment date) against the span, then counts
// the survivors and totals the payment amounts. Empty collections are valid
// input and produce a zero summary.
func Summarize(clients []*domain.Client, sessions []*domain.Session, payments []*domain.Payment, span period.Span) Summary {
	var s Summary
	for _, c := range clients {
		if span.Contains(c.CreatedAt) {
			s.ClientCount++
		}
	}
	for _, sess := range sessions {
		if span.Contains(sess.Date) {
			s.SessionCount++
		}
	}
	for _, p := range payments {
		if span.Contains(p.Date) {
			s.RevenueCents += p.AmountCents
		}
	}
	return s
}
