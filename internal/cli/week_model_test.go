package cli

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dsorokina/kabinet/internal/domain"
	"github.com/dsorokina/kabinet/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClientService serves a fixed client list; only List is used by the
// week view.
type fakeClientService struct {
	service.ClientService
	clients []*domain.Client
}

func (f *fakeClientService) List(context.Context, string, service.ListOptions) ([]*domain.Client, error) {
	return f.clients, nil
}

// fakeSessionService serves sessions keyed by day.
type fakeSessionService struct {
	service.SessionService
	byDay map[string][]*domain.Session
}

func (f *fakeSessionService) ListByDay(_ context.Context, _ string, day time.Time) ([]*domain.Session, error) {
	return f.byDay[day.Format("2006-01-02")], nil
}

func weekTestApp() *App {
	anna := &domain.Client{ID: "c-1", FullName: "Anna Petrova"}
	return &App{
		Clients: &fakeClientService{clients: []*domain.Client{anna}},
		Sessions: &fakeSessionService{byDay: map[string][]*domain.Session{
			"2025-03-12": {
				{ID: "s-1", ClientID: "c-1", Date: time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC), StartTime: "10:00", DurationMin: 60, Status: domain.SessionScheduled},
			},
		}},
		OwnerID: "owner-test",
	}
}

func runInit(t *testing.T, m weekModel) weekModel {
	t.Helper()
	msg := m.Init()()
	updated, _ := m.Update(msg)
	model, ok := updated.(weekModel)
	require.True(t, ok)
	return model
}

func TestWeekModel_LoadsWeekAroundReference(t *testing.T) {
	// March 12 2025 is a Wednesday.
	now := time.Date(2025, 3, 12, 15, 0, 0, 0, time.UTC)
	m := runInit(t, newWeekModel(weekTestApp(), now))

	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), m.week.Start, "week starts on Monday")
	assert.Equal(t, 2, m.selected, "cursor starts on the reference day")
	assert.False(t, m.loading)
	require.Len(t, m.byDay[2], 1)
	assert.Equal(t, "10:00", m.byDay[2][0].StartTime)
}

func TestWeekModel_DayCursorStaysInsideWeek(t *testing.T) {
	now := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC) // Monday
	m := runInit(t, newWeekModel(weekTestApp(), now))
	require.Equal(t, 0, m.selected)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m = updated.(weekModel)
	assert.Equal(t, 0, m.selected, "cannot move before Monday")

	for i := 0; i < 10; i++ {
		updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
		m = updated.(weekModel)
	}
	assert.Equal(t, 6, m.selected, "cannot move past Sunday")
}

func TestWeekModel_WeekPaging(t *testing.T) {
	now := time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)
	m := runInit(t, newWeekModel(weekTestApp(), now))

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{']'}})
	m = updated.(weekModel)
	require.NotNil(t, cmd)
	assert.True(t, m.loading)

	next, _ := m.Update(cmd())
	m = next.(weekModel)
	assert.Equal(t, time.Date(2025, 3, 17, 0, 0, 0, 0, time.UTC), m.week.Start, "forward paging lands on the next Monday")

	updated, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'['}})
	m = updated.(weekModel)
	require.NotNil(t, cmd)
	prev, _ := m.Update(cmd())
	m = prev.(weekModel)
	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), m.week.Start, "backward paging returns to the original week")
}

func TestWeekModel_ViewShowsSelectedDaySessions(t *testing.T) {
	now := time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)
	m := runInit(t, newWeekModel(weekTestApp(), now))

	view := m.View()
	assert.Contains(t, view, "Anna Petrova")
	assert.Contains(t, view, "10:00")
}

func TestWeekModel_QuitKey(t *testing.T) {
	now := time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)
	m := runInit(t, newWeekModel(weekTestApp(), now))

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
