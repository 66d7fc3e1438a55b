package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dsorokina/kabinet/internal/service"
)

// resolveClientID accepts a full UUID, a UUID prefix, or a client name
// fragment and returns the matching client's ID.
func resolveClientID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("client is required")
	}

	clients, err := app.Clients.List(ctx, app.OwnerID, service.ListOptions{})
	if err != nil {
		return "", err
	}

	// 1. Exact UUID match
	for _, c := range clients {
		if c.ID == input {
			return c.ID, nil
		}
	}

	// 2. Exact name match (case-insensitive)
	for _, c := range clients {
		if strings.EqualFold(c.FullName, input) {
			return c.ID, nil
		}
	}

	// 3. UUID prefix or name fragment
	var matches []string
	lowered := strings.ToLower(input)
	for _, c := range clients {
		if strings.HasPrefix(c.ID, input) || strings.Contains(strings.ToLower(c.FullName), lowered) {
			matches = append(matches, c.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("client not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("client %q is ambiguous (%d matches)", input, len(matches))
	}
}

// clientNames loads the owner's clients once and returns a name lookup for
// list rendering.
func clientNames(ctx context.Context, app *App) (func(string) string, error) {
	clients, err := app.Clients.List(ctx, app.OwnerID, service.ListOptions{})
	if err != nil {
		return nil, err
	}
	byID := make(map[string]string, len(clients))
	for _, c := range clients {
		byID[c.ID] = c.FullName
	}
	return func(id string) string { return byID[id] }, nil
}
