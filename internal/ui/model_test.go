package ui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/renato0307/pomo/internal/adapters/clock"
	"github.com/renato0307/pomo/internal/adapters/realtime"
	"github.com/renato0307/pomo/internal/services"
	"github.com/renato0307/pomo/internal/store"
)

var t0 = time.Date(2026, 2, 24, 10, 0, 0, 0, time.UTC)

func newTestModel(t *testing.T, lang language.Tag) (*Model, *clock.FixedClock) {
	t.Helper()
	c := clock.NewFixedClock(t0)
	registry := store.NewRegistry(c, nil)
	hub := realtime.NewHub(realtime.DefaultBuffer)

	m, err := NewModel(ModelConfig{
		Clock:    c,
		Language: lang,
		Pomodoro: services.NewPomodoroService(registry, hub, c),
		Stats:    services.NewStatsService(registry, c),
		Tenant:   "alice",
	})
	require.NoError(t, err)
	return m, c
}

// drive feeds msg to the model and then runs follow-up commands until none are left
func drive(t *testing.T, m *Model, msg tea.Msg) {
	t.Helper()
	for msg != nil {
		_, cmd := m.Update(msg)
		if cmd == nil {
			return
		}
		msg = cmd()
	}
}

func TestModel_LoadingBeforeFirstSnapshot(t *testing.T) {
	m, _ := newTestModel(t, language.English)
	assert.Contains(t, m.View(), "Loading...")
}

func TestModel_StartAndComplete(t *testing.T) {
	m, c := newTestModel(t, language.English)
	drive(t, m, m.loadCmd()())

	view := m.View()
	assert.Contains(t, view, "alice")
	assert.Contains(t, view, "No running session")

	drive(t, m, runeKey("w"))
	require.NotNil(t, m.dashboard.Running)
	assert.Equal(t, "Started work session #1", m.notice)
	assert.Contains(t, m.View(), "25:00")

	c.Advance(10 * time.Minute)
	drive(t, m, m.loadCmd()())
	assert.Contains(t, m.View(), "15:00")

	c.Advance(15 * time.Minute)
	drive(t, m, m.loadCmd()())
	assert.Contains(t, m.View(), "Time's up!")

	drive(t, m, runeKey("c"))
	assert.NoError(t, m.err)
	assert.Contains(t, m.notice, "Completed #1 (+10 XP)")
	assert.Contains(t, m.notice, "Unlocked: 🌱 First pomodoro")
	assert.Nil(t, m.dashboard.Running)
	assert.Equal(t, 1, m.dashboard.Today.CompletedCount)

	view = m.View()
	assert.Contains(t, view, "10/100 XP")
	assert.Contains(t, view, "1 completed · 25m focus")
}

func TestModel_TickRedrawsWithoutReloading(t *testing.T) {
	m, c := newTestModel(t, language.English)
	drive(t, m, m.loadCmd()())
	drive(t, m, runeKey("w"))
	loaded := m.dashboard

	c.Advance(time.Minute)
	_, cmd := m.Update(tickMsg(c.Now()))
	require.NotNil(t, cmd)
	assert.Same(t, loaded, m.dashboard)
	assert.Contains(t, m.View(), "24:00")

	for range reloadTicks - 2 {
		m.Update(tickMsg(c.Now()))
	}
	assert.Same(t, loaded, m.dashboard)

	_, cmd = m.Update(tickMsg(c.Now()))
	require.NotNil(t, cmd)
	batch, ok := cmd().(tea.BatchMsg)
	require.True(t, ok)
	require.Len(t, batch, 2)
	drive(t, m, batch[0]())
	assert.NotSame(t, loaded, m.dashboard)
}

func TestModel_CompleteWithoutRunningSession(t *testing.T) {
	m, _ := newTestModel(t, language.English)
	drive(t, m, m.loadCmd()())

	_, cmd := m.Update(runeKey("c"))
	assert.Nil(t, cmd)
	assert.Equal(t, "No running session", m.notice)
}

func TestModel_LocalizedUnlockNotice(t *testing.T) {
	m, c := newTestModel(t, language.Japanese)
	drive(t, m, m.loadCmd()())
	drive(t, m, runeKey("w"))

	c.Advance(25 * time.Minute)
	drive(t, m, runeKey("c"))
	assert.Contains(t, m.notice, "初めてのポモドーロ")
}

func TestModel_LevelUpNotice(t *testing.T) {
	m, c := newTestModel(t, language.English)
	drive(t, m, m.loadCmd()())

	for range 10 {
		drive(t, m, runeKey("w"))
		c.Advance(25 * time.Minute)
		drive(t, m, m.loadCmd()())
		drive(t, m, runeKey("c"))
	}
	assert.Contains(t, m.notice, "Level up! Now level 2")
}

func TestModel_BreakUsesBreakLength(t *testing.T) {
	m, _ := newTestModel(t, language.English)
	drive(t, m, m.loadCmd()())
	drive(t, m, runeKey("b"))

	require.NotNil(t, m.dashboard.Running)
	assert.Contains(t, m.View(), "05:00")
}

func TestModel_HelpAndQuit(t *testing.T) {
	m, _ := newTestModel(t, language.English)

	m.Update(runeKey("?"))
	assert.True(t, m.help.ShowAll)

	_, cmd := m.Update(runeKey("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestModel_WindowResizeClampsBars(t *testing.T) {
	m, _ := newTestModel(t, language.English)

	m.Update(tea.WindowSizeMsg{Width: 200, Height: 40})
	assert.Equal(t, maxBarWidth, m.xpBar.Width)

	m.Update(tea.WindowSizeMsg{Width: 20, Height: 40})
	assert.Equal(t, 10, m.timerBar.Width)
}

func TestFormatters(t *testing.T) {
	assert.Equal(t, "25m", formatFocus(1500))
	assert.Equal(t, "1h05m", formatFocus(3900))
	assert.Equal(t, "0m", formatFocus(0))
	assert.Equal(t, "04:59", formatClock(4*time.Minute+59*time.Second))
	assert.Equal(t, 1.0, ratio(150, 100))
	assert.Equal(t, 0.0, ratio(1, 0))
}
