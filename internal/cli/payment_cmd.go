package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/dsorokina/kabinet/internal/cli/formatter"
	"github.com/dsorokina/kabinet/internal/domain"
	"github.com/spf13/cobra"
)

func newPaymentCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "payment",
		Short: "Manage payments",
	}

	cmd.AddCommand(
		newPaymentAddCmd(app),
		newPaymentListCmd(app),
		newPaymentRemoveCmd(app),
	)

	return cmd
}

func newPaymentAddCmd(app *App) *cobra.Command {
	var client, amount, currency, date, sessionID, comment string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a payment",
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

			if amount == "" || date == "" {
				if !app.IsInteractive() {
					return fmt.Errorf("--amount and --date are required")
				}
				if err := paymentForm(&amount, &currency, &date).Run(); err != nil {
					return err
				}
			}

			cents, err := domain.ParseAmountToCents(amount)
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", amount, err)
			}
			day, err := time.Parse("2006-01-02", date)
			if err != nil {
				return fmt.Errorf("invalid date %q: %w", date, err)
			}

			p := &domain.Payment{
				OwnerID:     app.OwnerID,
				ClientID:    clientID,
				AmountCents: cents,
				Currency:    currency,
				Date:        day.UTC(),
				Comment:     comment,
			}
			if sessionID != "" {
				p.SessionID = &sessionID
			}

			if err := app.Payments.Create(ctx, p); err != nil {
				return err
			}

			fmt.Printf("Recorded %s [%s]\n", domain.FormatAmount(p.AmountCents, p.Currency), formatter.ShortID(p.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&client, "client", "", "Client (name, UUID or UUID prefix)")
	cmd.Flags().StringVar(&amount, "amount", "", "Amount (e.g. 1500 or 1500.50)")
	cmd.Flags().StringVar(&currency, "currency", "RUB", "Currency code")
	cmd.Flags().StringVar(&date, "date", "", "Payment date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&sessionID, "session", "", "Session ID this payment covers")
	cmd.Flags().StringVar(&comment, "comment", "", "Free-form comment")

	return cmd
}

func newPaymentListCmd(app *App) *cobra.Command {
	var search, sortKey string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List payments",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			opts, err := listOptionsFromFlags(search, sortKey)
			if err != nil {
				return err
			}
			payments, err := app.Payments.List(ctx, app.OwnerID, opts)
			if err != nil {
				return err
			}

			if len(payments) == 0 {
				fmt.Println("No payments found.")
				return nil
			}

			nameOf, err := clientNames(ctx, app)
			if err != nil {
				return err
			}

			fmt.Printf("%s\n", formatter.FormatPaymentList(payments, nameOf))
			return nil
		},
	}

	addListFlags(cmd, &search, &sortKey)

	return cmd
}

func newPaymentRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a payment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Payments.Delete(context.Background(), args[0]); err != nil {
				return err
			}

			fmt.Println("Payment removed.")
			return nil
		},
	}
}
