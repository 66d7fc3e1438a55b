package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/dsorokina/kabinet/internal/cli/formatter"
	"github.com/dsorokina/kabinet/internal/domain"
	"github.com/dsorokina/kabinet/internal/listquery"
	"github.com/dsorokina/kabinet/internal/service"
	"github.com/spf13/cobra"
)

func newClientCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "client",
		Short: "Manage clients",
	}

	cmd.AddCommand(
		newClientAddCmd(app),
		newClientListCmd(app),
		newClientShowCmd(app),
		newClientUpdateCmd(app),
		newClientRemoveCmd(app),
	)

	return cmd
}

func listOptionsFromFlags(search, sortKey string) (service.ListOptions, error) {
	opts := service.ListOptions{Search: search}
	if sortKey != "" {
		key, err := listquery.ParseSortKey(sortKey)
		if err != nil {
			return service.ListOptions{}, err
		}
		opts.Sort = key
	}
	return opts, nil
}

func addListFlags(cmd *cobra.Command, search, sortKey *string) {
	cmd.Flags().StringVar(search, "search", "", "Filter by a case-insensitive substring")
	cmd.Flags().StringVar(sortKey, "sort", "", "Sort order: date, popularity, a-z or z-a")
}

func newClientAddCmd(app *App) *cobra.Command {
	var name, phone, email, birth, comment string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new client",
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" {
				if !app.IsInteractive() {
					return fmt.Errorf("--name is required")
				}
				if err := clientForm(&name, &phone, &email, &birth).Run(); err != nil {
					return err
				}
			}

			c := &domain.Client{
				OwnerID:  app.OwnerID,
				FullName: name,
				Comment:  comment,
			}
			if phone != "" {
				c.Phone = &phone
			}
			if email != "" {
				c.Email = &email
			}
			if birth != "" {
				birthDate, err := time.Parse("2006-01-02", birth)
				if err != nil {
					return fmt.Errorf("invalid birth date %q: %w", birth, err)
				}
				c.BirthDate = &birthDate
			}

			if err := app.Clients.Create(context.Background(), c); err != nil {
				return err
			}

			fmt.Printf("Added client %s [%s]\n", c.FullName, formatter.ShortID(c.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Full name")
	cmd.Flags().StringVar(&phone, "phone", "", "Phone number")
	cmd.Flags().StringVar(&email, "email", "", "Email address")
	cmd.Flags().StringVar(&birth, "birth", "", "Birth date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&comment, "comment", "", "Free-form comment")

	return cmd
}

func newClientListCmd(app *App) *cobra.Command {
	var search, sortKey string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List clients",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := listOptionsFromFlags(search, sortKey)
			if err != nil {
				return err
			}

			clients, err := app.Clients.List(context.Background(), app.OwnerID, opts)
			if err != nil {
				return err
			}

			if len(clients) == 0 {
				fmt.Println("No clients found.")
				return nil
			}

			fmt.Printf("%s\n", formatter.FormatClientList(clients))
			return nil
		},
	}

	addListFlags(cmd, &search, &sortKey)

	return cmd
}

func newClientShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show CLIENT",
		Short: "Show client details and notes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			clientID, err := resolveClientID(ctx, app, args[0])
			if err != nil {
				return err
			}
			c, err := app.Clients.GetByID(ctx, clientID)
			if err != nil {
				return err
			}
			notes, err := app.Notes.ListByClient(ctx, clientID)
			if err != nil {
				return err
			}

			fmt.Printf("%s\n", formatter.FormatClientCard(c, notes))
			return nil
		},
	}
}

func newClientUpdateCmd(app *App) *cobra.Command {
	var name, phone, email, comment string

	cmd := &cobra.Command{
		Use:   "update CLIENT",
		Short: "Update a client",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			clientID, err := resolveClientID(ctx, app, args[0])
			if err != nil {
				return err
			}
			c, err := app.Clients.GetByID(ctx, clientID)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("name") {
				c.FullName = name
			}
			if cmd.Flags().Changed("phone") {
				c.Phone = &phone
			}
			if cmd.Flags().Changed("email") {
				c.Email = &email
			}
			if cmd.Flags().Changed("comment") {
				c.Comment = comment
			}

			if err := app.Clients.Update(ctx, c); err != nil {
				return err
			}

			fmt.Printf("Updated client %s\n", c.FullName)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Full name")
	cmd.Flags().StringVar(&phone, "phone", "", "Phone number")
	cmd.Flags().StringVar(&email, "email", "", "Email address")
	cmd.Flags().StringVar(&comment, "comment", "", "Free-form comment")

	return cmd
}

func newClientRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove CLIENT",
		Short: "Remove a client and everything attached to it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			clientID, err := resolveClientID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Clients.Delete(ctx, clientID); err != nil {
				return err
			}

			fmt.Println("Client removed.")
			return nil
		},
	}
}
