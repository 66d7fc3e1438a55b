package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dsorokina/kabinet/internal/cli/formatter"
	"github.com/dsorokina/kabinet/internal/domain"
	"github.com/spf13/cobra"
)

func newNoteCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "note",
		Short: "Manage client notes",
	}

	cmd.AddCommand(
		newNoteAddCmd(app),
		newNoteListCmd(app),
		newNoteRemoveCmd(app),
	)

	return cmd
}

func newNoteAddCmd(app *App) *cobra.Command {
	var client string

	cmd := &cobra.Command{
		Use:   "add TEXT...",
		Short: "Add a note to a client",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			clientID, err := resolveClientID(ctx, app, client)
			if err != nil {
				return err
			}

			n := &domain.Note{
				OwnerID:  app.OwnerID,
				ClientID: clientID,
				Content:  strings.Join(args, " "),
			}
			if err := app.Notes.Create(ctx, n); err != nil {
				return err
			}

			fmt.Printf("Added note [%s]\n", formatter.ShortID(n.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&client, "client", "", "Client (name, UUID or UUID prefix)")
	_ = cmd.MarkFlagRequired("client")

	return cmd
}

func newNoteListCmd(app *App) *cobra.Command {
	var search, sortKey, client string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List notes",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			nameOf, err := clientNames(ctx, app)
			if err != nil {
				return err
			}

			var notes []*domain.Note
			if client != "" {
				clientID, err := resolveClientID(ctx, app, client)
				if err != nil {
					return err
				}
				notes, err = app.Notes.ListByClient(ctx, clientID)
				if err != nil {
					return err
				}
			} else {
				opts, err := listOptionsFromFlags(search, sortKey)
				if err != nil {
					return err
				}
				notes, err = app.Notes.List(ctx, app.OwnerID, opts)
				if err != nil {
					return err
				}
			}

			if len(notes) == 0 {
				fmt.Println("No notes found.")
				return nil
			}

			fmt.Printf("%s\n", formatter.FormatNoteList(notes, nameOf))
			return nil
		},
	}

	addListFlags(cmd, &search, &sortKey)
	cmd.Flags().StringVar(&client, "client", "", "Only this client's notes")

	return cmd
}

func newNoteRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Notes.Delete(context.Background(), args[0]); err != nil {
				return err
			}

			fmt.Println("Note removed.")
			return nil
		},
	}
}
