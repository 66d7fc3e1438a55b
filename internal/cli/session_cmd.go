package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/dsorokina/kabinet/internal/cli/formatter"
	"github.com/dsorokina/kabinet/internal/domain"
	"github.com/spf13/cobra"
)

func newSessionCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Manage sessions",
	}

	cmd.AddCommand(
		newSessionAddCmd(app),
		newSessionListCmd(app),
		newSessionStatusCmd(app),
		newSessionRemoveCmd(app),
	)

	return cmd
}

func newSessionAddCmd(app *App) *cobra.Command {
	var client, date, start, sessionType, comment string
	var duration int

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Schedule a session",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			clientID := ""
			if client != "" {
				var err error
				clientID, err = resolveClientID(ctx, app, client)
				if err != nil {
					return err
				}
			} else {
				if !app.IsInteractive() {
					return fmt.Errorf("--client is required")
				}
				form, err := selectClientForm(ctx, app, &clientID)
				if err != nil {
					return err
				}
				if form == nil {
					return fmt.Errorf("no clients yet; add one with 'kabinet client add'")
				}
				if err := form.Run(); err != nil {
					return err
				}
			}

			if date == "" || start == "" || duration == 0 {
				if !app.IsInteractive() {
					return fmt.Errorf("--date, --time and --duration are required")
				}
				durationStr := ""
				if duration > 0 {
					durationStr = strconv.Itoa(duration)
				}
				if err := sessionForm(&date, &start, &durationStr, &sessionType).Run(); err != nil {
					return err
				}
				duration, _ = strconv.Atoi(durationStr)
			}

			day, err := time.Parse("2006-01-02", date)
			if err != nil {
				return fmt.Errorf("invalid date %q: %w", date, err)
			}

			sess := &domain.Session{
				OwnerID:     app.OwnerID,
				ClientID:    clientID,
				Date:        day.UTC(),
				StartTime:   start,
				DurationMin: duration,
				Type:        sessionType,
				Comment:     comment,
			}
			if err := app.Sessions.Create(ctx, sess); err != nil {
				return err
			}

			fmt.Printf("Scheduled session on %s at %s [%s]\n", date, start, formatter.ShortID(sess.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&client, "client", "", "Client (name, UUID or UUID prefix)")
	cmd.Flags().StringVar(&date, "date", "", "Date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&start, "time", "", "Start time (HH:MM)")
	cmd.Flags().IntVar(&duration, "duration", 0, "Duration in minutes")
	cmd.Flags().StringVar(&sessionType, "type", "", "Session type")
	cmd.Flags().StringVar(&comment, "comment", "", "Free-form comment")

	return cmd
}

func newSessionListCmd(app *App) *cobra.Command {
	var search, sortKey, day string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List sessions",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			nameOf, err := clientNames(ctx, app)
			if err != nil {
				return err
			}

			var sessions []*domain.Session
			if day != "" {
				parsed, err := time.Parse("2006-01-02", day)
				if err != nil {
					return fmt.Errorf("invalid day %q: %w", day, err)
				}
				sessions, err = app.Sessions.ListByDay(ctx, app.OwnerID, parsed.UTC())
				if err != nil {
					return err
				}
			} else {
				opts, err := listOptionsFromFlags(search, sortKey)
				if err != nil {
					return err
				}
				sessions, err = app.Sessions.List(ctx, app.OwnerID, opts)
				if err != nil {
					return err
				}
			}

			if len(sessions) == 0 {
				fmt.Println("No sessions found.")
				return nil
			}

			fmt.Printf("%s\n", formatter.FormatSessionList(sessions, nameOf))
			return nil
		},
	}

	addListFlags(cmd, &search, &sortKey)
	cmd.Flags().StringVar(&day, "day", "", "Only sessions on this day (YYYY-MM-DD)")

	return cmd
}

func newSessionStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status ID STATUS",
		Short: "Set a session's status (scheduled, completed or canceled)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if !domain.ValidSessionStatuses[args[1]] {
				return fmt.Errorf("unknown status %q (expected scheduled, completed or canceled)", args[1])
			}

			sess, err := app.Sessions.GetByID(ctx, args[0])
			if err != nil {
				return err
			}
			sess.Status = domain.SessionStatus(args[1])
			if err := app.Sessions.Update(ctx, sess); err != nil {
				return err
			}

			fmt.Printf("Session %s is now %s\n", formatter.ShortID(sess.ID), sess.Status)
			return nil
		},
	}
}

func newSessionRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Sessions.Delete(context.Background(), args[0]); err != nil {
				return err
			}

			fmt.Println("Session removed.")
			return nil
		},
	}
}
