package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dsorokina/kabinet/internal/cli/formatter"
	"github.com/dsorokina/kabinet/internal/domain"
	"github.com/dsorokina/kabinet/internal/period"
)

type weekKeyMap struct {
	PrevDay  key.Binding
	NextDay  key.Binding
	PrevWeek key.Binding
	NextWeek key.Binding
	Today    key.Binding
	Quit     key.Binding
}

func defaultWeekKeyMap() weekKeyMap {
	return weekKeyMap{
		PrevDay:  key.NewBinding(key.WithKeys("left", "h")),
		NextDay:  key.NewBinding(key.WithKeys("right", "l")),
		PrevWeek: key.NewBinding(key.WithKeys("[", "shift+left")),
		NextWeek: key.NewBinding(key.WithKeys("]", "shift+right")),
		Today:    key.NewBinding(key.WithKeys("t")),
		Quit:     key.NewBinding(key.WithKeys("q", "esc", "ctrl+c")),
	}
}

// weekSessionsMsg carries one loaded week: the window itself plus the
// sessions of each of its seven days.
type weekSessionsMsg struct {
	week   period.Week
	byDay  [7][]*domain.Session
	nameOf func(string) string
}

type weekErrMsg struct{ err error }

// weekModel is the interactive Monday..Sunday strip. Left/right move the
// day cursor, [ and ] page whole weeks, t jumps back to today.
type weekModel struct {
	app      *App
	keys     weekKeyMap
	now      time.Time
	week     period.Week
	byDay    [7][]*domain.Session
	nameOf   func(string) string
	selected int
	loading  bool
	err      error
}

func newWeekModel(app *App, now time.Time) weekModel {
	week := period.WeekContaining(now)
	return weekModel{
		app:      app,
		keys:     defaultWeekKeyMap(),
		now:      now,
		week:     week,
		nameOf:   func(string) string { return "" },
		selected: dayOffset(week, now),
		loading:  true,
	}
}

// dayOffset returns the index of t inside the week, 0 for Monday.
func dayOffset(week period.Week, t time.Time) int {
	offset := int(period.StartOfDay(t).Sub(week.Start).Hours() / 24)
	if offset < 0 || offset > 6 {
		return 0
	}
	return offset
}

func (m weekModel) Init() tea.Cmd {
	return m.loadWeek(m.week)
}

func (m weekModel) loadWeek(week period.Week) tea.Cmd {
	app := m.app
	return func() tea.Msg {
		ctx := context.Background()
		nameOf, err := clientNames(ctx, app)
		if err != nil {
			return weekErrMsg{err: err}
		}
		var byDay [7][]*domain.Session
		for i, day := range week.Days {
			sessions, err := app.Sessions.ListByDay(ctx, app.OwnerID, day)
			if err != nil {
				return weekErrMsg{err: err}
			}
			byDay[i] = sessions
		}
		return weekSessionsMsg{week: week, byDay: byDay, nameOf: nameOf}
	}
}

func (m weekModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case weekSessionsMsg:
		m.week = msg.week
		m.byDay = msg.byDay
		m.nameOf = msg.nameOf
		m.loading = false
		return m, nil

	case weekErrMsg:
		m.err = msg.err
		m.loading = false
		return m, tea.Quit

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.PrevDay):
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case key.Matches(msg, m.keys.NextDay):
			if m.selected < 6 {
				m.selected++
			}
			return m, nil
		case key.Matches(msg, m.keys.PrevWeek):
			week := period.WeekContaining(period.Page(m.week.Start, period.Backward))
			m.loading = true
			return m, m.loadWeek(week)
		case key.Matches(msg, m.keys.NextWeek):
			week := period.WeekContaining(period.Page(m.week.Start, period.Forward))
			m.loading = true
			return m, m.loadWeek(week)
		case key.Matches(msg, m.keys.Today):
			week := period.WeekContaining(m.now)
			m.selected = dayOffset(week, m.now)
			m.loading = true
			return m, m.loadWeek(week)
		}
	}
	return m, nil
}

var (
	weekDayStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(formatter.ColorDim).
			Padding(0, 1).
			Width(12)
	weekDaySelected = weekDayStyle.
			BorderForeground(formatter.ColorHeader)
)

func (m weekModel) View() string {
	if m.err != nil {
		return fmt.Sprintf("Error: %v\n", m.err)
	}

	title := fmt.Sprintf("%s .. %s",
		m.week.Start.Format("Jan 2"), m.week.End().Format("Jan 2, 2006"))

	cells := make([]string, 0, 7)
	for i, day := range m.week.Days {
		label := formatter.Bold(day.Format("Mon"))
		if sameDay(day, m.now) {
			label = formatter.StyleHeader.Render(day.Format("Mon"))
		}
		body := fmt.Sprintf("%s\n%s\n%s",
			label,
			formatter.Dim(day.Format("Jan 2")),
			sessionCountLabel(len(m.byDay[i])))

		style := weekDayStyle
		if i == m.selected {
			style = weekDaySelected
		}
		cells = append(cells, style.Render(body))
	}
	strip := lipgloss.JoinHorizontal(lipgloss.Top, cells...)

	var detail string
	switch {
	case m.loading:
		detail = formatter.Dim("Loading...")
	case len(m.byDay[m.selected]) == 0:
		detail = formatter.Dim("No sessions.")
	default:
		detail = formatter.FormatSessionList(m.byDay[m.selected], m.nameOf)
	}

	help := formatter.Dim("←/→ day  [/] week  t today  q quit")

	return strings.Join([]string{
		formatter.Header(title),
		strip,
		detail,
		help,
	}, "\n\n") + "\n"
}

func sessionCountLabel(n int) string {
	switch n {
	case 0:
		return formatter.Dim("free")
	case 1:
		return "1 session"
	default:
		return fmt.Sprintf("%d sessions", n)
	}
}

func sameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
