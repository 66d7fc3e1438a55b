package cli

import (
	"github.com/dsorokina/kabinet/internal/service"
	"github.com/spf13/cobra"
)

// App holds the service interfaces the CLI commands run against, plus the
// per-invocation settings resolved at startup.
type App struct {
	Clients   service.ClientService
	Sessions  service.SessionService
	Payments  service.PaymentService
	Notes     service.NoteService
	Dashboard service.DashboardService

	// OwnerID scopes every command to one practitioner account.
	OwnerID string
	// ActivityLimit caps the dashboard activity feed.
	ActivityLimit int
	// Currency labels the dashboard revenue figure.
	Currency string
	// IsInteractive reports whether stdin is a terminal; forms and the
	// week view require one.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "kabinet" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "kabinet",
		Short: "Practice scheduling, payments and reporting",
	}

	root.AddCommand(
		newClientCmd(app),
		newSessionCmd(app),
		newPaymentCmd(app),
		newNoteCmd(app),
		newDashboardCmd(app),
		newWeekCmd(app),
	)

	return root
}
