package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/dsorokina/kabinet/internal/cli/formatter"
	"github.com/dsorokina/kabinet/internal/domain"
	"github.com/dsorokina/kabinet/internal/service"
)

// kabinetHuhTheme returns a custom huh theme using the existing Gruvbox palette.
func kabinetHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// validateRequired rejects empty input.
func validateRequired(s string) error {
	if s == "" {
		return fmt.Errorf("required")
	}
	return nil
}

// validateDate accepts a YYYY-MM-DD date string.
func validateDate(s string) error {
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return fmt.Errorf("expected YYYY-MM-DD")
	}
	return nil
}

// validateOptionalDate accepts empty or a YYYY-MM-DD date string.
func validateOptionalDate(s string) error {
	if s == "" {
		return nil
	}
	return validateDate(s)
}

// validateClock accepts a zero-padded HH:MM 24-hour time string.
func validateClock(s string) error {
	tm, err := time.Parse("15:04", s)
	if err != nil || tm.Format("15:04") != s {
		return fmt.Errorf("expected HH:MM")
	}
	return nil
}

// validatePositiveInt accepts a positive integer.
func validatePositiveInt(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return fmt.Errorf("expected a positive number")
	}
	return nil
}

// validateAmount accepts a non-negative decimal amount.
func validateAmount(s string) error {
	if _, err := domain.ParseAmountToCents(s); err != nil {
		return fmt.Errorf("expected an amount like 1500 or 1500.50")
	}
	return nil
}

// selectClientForm builds a select over the owner's clients. Returns nil
// when there are no clients to choose from.
func selectClientForm(ctx context.Context, app *App, result *string) (*huh.Form, error) {
	clients, err := app.Clients.List(ctx, app.OwnerID, service.ListOptions{})
	if err != nil {
		return nil, err
	}
	if len(clients) == 0 {
		return nil, nil
	}

	options := make([]huh.Option[string], 0, len(clients))
	for _, c := range clients {
		options = append(options, huh.NewOption(c.FullName, c.ID))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Client").
				Options(options...).
				Value(result),
		),
	).WithTheme(kabinetHuhTheme()).WithShowHelp(false), nil
}

// clientForm collects the fields for a new client.
func clientForm(name, phone, email, birth *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Full name").Value(name).Validate(validateRequired),
			huh.NewInput().Title("Phone (optional)").Value(phone),
			huh.NewInput().Title("Email (optional)").Value(email),
			huh.NewInput().Title("Birth date (YYYY-MM-DD, blank for none)").
				Placeholder("1990-05-14").Value(birth).Validate(validateOptionalDate),
		),
	).WithTheme(kabinetHuhTheme()).WithShowHelp(false)
}

// sessionForm collects the fields for a new session.
func sessionForm(date, start, duration, sessionType *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Date (YYYY-MM-DD)").
				Placeholder("2025-06-30").Value(date).Validate(validateDate),
			huh.NewInput().Title("Start time (HH:MM)").
				Placeholder("14:30").Value(start).Validate(validateClock),
			huh.NewInput().Title("Duration (minutes)").
				Placeholder("60").Value(duration).Validate(validatePositiveInt),
			huh.NewInput().Title("Type (optional)").Value(sessionType),
		),
	).WithTheme(kabinetHuhTheme()).WithShowHelp(false)
}

// paymentForm collects the fields for a new payment.
func paymentForm(amount, currency, date *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Amount").
				Placeholder("1500.00").Value(amount).Validate(validateAmount),
			huh.NewInput().Title("Currency").
				Placeholder("RUB").Value(currency).Validate(validateRequired),
			huh.NewInput().Title("Date (YYYY-MM-DD)").
				Placeholder("2025-06-30").Value(date).Validate(validateDate),
		),
	).WithTheme(kabinetHuhTheme()).WithShowHelp(false)
}
