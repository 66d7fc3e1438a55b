package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/dsorokina/kabinet/internal/cli/formatter"
	"github.com/dsorokina/kabinet/internal/period"
	"github.com/dsorokina/kabinet/internal/service"
	"github.com/spf13/cobra"
)

func newDashboardCmd(app *App) *cobra.Command {
	var periodStr, from, to string

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show the period summary and recent activity",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := period.Parse(periodStr)
			if err != nil {
				return err
			}

			req := service.DashboardRequest{
				OwnerID:       app.OwnerID,
				Period:        p,
				ActivityLimit: app.ActivityLimit,
			}

			if p == period.Custom {
				if from == "" || to == "" {
					return fmt.Errorf("custom period requires --from and --to")
				}
				start, err := time.Parse("2006-01-02", from)
				if err != nil {
					return fmt.Errorf("invalid --from date %q: %w", from, err)
				}
				end, err := time.Parse("2006-01-02", to)
				if err != nil {
					return fmt.Errorf("invalid --to date %q: %w", to, err)
				}
				req.Custom = &period.Range{Start: start.UTC(), End: end.UTC()}
			}

			resp, err := app.Dashboard.GetDashboard(context.Background(), req)
			if err != nil {
				return err
			}

			fmt.Printf("%s\n", formatter.FormatDashboard(resp.Span, resp.Summary, resp.Activity, app.Currency))
			return nil
		},
	}

	cmd.Flags().StringVar(&periodStr, "period", "month", "Reporting window: day, week, month, year or custom")
	cmd.Flags().StringVar(&from, "from", "", "Custom window start (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "Custom window end (YYYY-MM-DD, inclusive)")

	return cmd
}
