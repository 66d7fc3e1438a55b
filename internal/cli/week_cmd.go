package cli

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dsorokina/kabinet/internal/cli/formatter"
	"github.com/dsorokina/kabinet/internal/period"
	"github.com/spf13/cobra"
)

func newWeekCmd(app *App) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "week",
		Short: "Browse the weekly schedule",
		RunE: func(cmd *cobra.Command, args []string) error {
			reference := time.Now()
			if date != "" {
				parsed, err := time.Parse("2006-01-02", date)
				if err != nil {
					return fmt.Errorf("invalid date %q: %w", date, err)
				}
				reference = parsed
			}

			// Outside a terminal just print the week once.
			if !app.IsInteractive() {
				return printWeek(app, reference)
			}

			_, err := tea.NewProgram(newWeekModel(app, reference)).Run()
			return err
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Show the week containing this date (YYYY-MM-DD)")

	return cmd
}

func printWeek(app *App, reference time.Time) error {
	ctx := context.Background()
	week := period.WeekContaining(reference)

	nameOf, err := clientNames(ctx, app)
	if err != nil {
		return err
	}

	fmt.Printf("%s\n", formatter.Header(fmt.Sprintf("%s .. %s",
		week.Start.Format("Jan 2"), week.End().Format("Jan 2, 2006"))))

	for _, day := range week.Days {
		sessions, err := app.Sessions.ListByDay(ctx, app.OwnerID, day)
		if err != nil {
			return err
		}
		fmt.Printf("\n%s %s\n", formatter.Bold(day.Format("Monday")), formatter.Dim(day.Format("2006-01-02")))
		if len(sessions) == 0 {
			fmt.Println(formatter.Dim("  free"))
			continue
		}
		fmt.Printf("%s\n", formatter.FormatSessionList(sessions, nameOf))
	}
	return nil
}
