package formatter

import (
	"fmt"
	"strings"

	"github.com/dsorokina/kabinet/internal/domain"
	"github.com/dsorokina/kabinet/internal/period"
	"github.com/dsorokina/kabinet/internal/report"
)

// FormatClientList renders clients as an aligned table.
func FormatClientList(clients []*domain.Client) string {
	rows := make([][]string, 0, len(clients))
	for _, c := range clients {
		contact := ""
		switch {
		case c.Phone != nil:
			contact = *c.Phone
		case c.Email != nil:
			contact = *c.Email
		}
		rows = append(rows, []string{
			Dim(ShortID(c.ID)),
			Bold(c.FullName),
			contact,
			Dim(HumanDate(c.CreatedAt)),
		})
	}
	return RenderTable([]string{"ID", "Name", "Contact", "Added"}, rows)
}

// FormatSessionList renders sessions with resolved client names.
func FormatSessionList(sessions []*domain.Session, nameOf func(clientID string) string) string {
	rows := make([][]string, 0, len(sessions))
	for _, s := range sessions {
		name := nameOf(s.ClientID)
		if name == "" {
			name = report.FallbackClientName
		}
		rows = append(rows, []string{
			Dim(ShortID(s.ID)),
			DayDate(s.Date),
			s.StartTime,
			fmt.Sprintf("%dm", s.DurationMin),
			Bold(name),
			s.Type,
			StatusLabel(s.Status),
		})
	}
	return RenderTable([]string{"ID", "Date", "Time", "Dur", "Client", "Type", "Status"}, rows)
}

// FormatPaymentList renders payments with resolved client names.
func FormatPaymentList(payments []*domain.Payment, nameOf func(clientID string) string) string {
	rows := make([][]string, 0, len(payments))
	for _, p := range payments {
		name := nameOf(p.ClientID)
		if name == "" {
			name = report.FallbackClientName
		}
		rows = append(rows, []string{
			Dim(ShortID(p.ID)),
			DayDate(p.Date),
			Bold(name),
			Amount(p.AmountCents, p.Currency),
			p.Comment,
		})
	}
	return RenderTable([]string{"ID", "Date", "Client", "Amount", "Comment"}, rows)
}

// FormatNoteList renders notes with resolved client names.
func FormatNoteList(notes []*domain.Note, nameOf func(clientID string) string) string {
	rows := make([][]string, 0, len(notes))
	for _, n := range notes {
		name := nameOf(n.ClientID)
		if name == "" {
			name = report.FallbackClientName
		}
		rows = append(rows, []string{
			Dim(ShortID(n.ID)),
			Dim(HumanDate(n.CreatedAt)),
			Bold(name),
			n.Content,
		})
	}
	return RenderTable([]string{"ID", "Added", "Client", "Note"}, rows)
}

// FormatClientCard renders one client's details for the show command.
func FormatClientCard(c *domain.Client, notes []*domain.Note) string {
	var b strings.Builder
	b.WriteString(Bold(c.FullName) + "\n")
	if c.BirthDate != nil {
		b.WriteString(fmt.Sprintf("%s %s\n", Dim("Born:"), DayDate(*c.BirthDate)))
	}
	if c.Phone != nil {
		b.WriteString(fmt.Sprintf("%s %s\n", Dim("Phone:"), *c.Phone))
	}
	if c.Email != nil {
		b.WriteString(fmt.Sprintf("%s %s\n", Dim("Email:"), *c.Email))
	}
	if c.ContactMethod != nil {
		b.WriteString(fmt.Sprintf("%s %s\n", Dim("Prefers:"), *c.ContactMethod))
	}
	if c.Comment != "" {
		b.WriteString(fmt.Sprintf("%s %s\n", Dim("Comment:"), c.Comment))
	}
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Added:"), HumanDate(c.CreatedAt)))
	if len(notes) > 0 {
		b.WriteString("\n" + Header("Notes") + "\n")
		for _, n := range notes {
			b.WriteString(fmt.Sprintf("%s %s\n", Dim(HumanDate(n.CreatedAt)), n.Content))
		}
	}
	return RenderBox("Client", strings.TrimRight(b.String(), "\n"))
}

// FormatDashboard renders the period summary and the recent activity feed.
func FormatDashboard(span period.Span, summary report.Summary, activity []report.ActivityRow, currency string) string {
	lastDay := span.End.AddDate(0, 0, -1)
	summaryBody := strings.Join([]string{
		fmt.Sprintf("%s %s .. %s (%d days)", Dim("Window:"), DayDate(span.Start), DayDate(lastDay), span.Days()),
		fmt.Sprintf("%s %s", Dim("New clients:"), Bold(fmt.Sprintf("%d", summary.ClientCount))),
		fmt.Sprintf("%s %s", Dim("Sessions:"), Bold(fmt.Sprintf("%d", summary.SessionCount))),
		fmt.Sprintf("%s %s", Dim("Revenue:"), Amount(summary.RevenueCents, currency)),
	}, "\n")

	out := RenderBox("Summary", summaryBody)

	if len(activity) > 0 {
		rows := make([][]string, 0, len(activity))
		for _, row := range activity {
			rows = append(rows, []string{
				Bold(row.ClientName),
				row.SessionType,
				StyleYellow.Render(row.Payment),
			})
		}
		out += "\n\n" + Header("Recent activity") + "\n" +
			RenderTable([]string{"Client", "Session", "Payment"}, rows)
	}

	return out
}
