// Package ui implements the terminal dashboard shared by `pomo dashboard` and the SSH server.
package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/text/language"

	"github.com/renato0307/pomo/internal/config"
	"github.com/renato0307/pomo/internal/domain"
	"github.com/renato0307/pomo/internal/ports"
	"github.com/renato0307/pomo/internal/services"
	"github.com/renato0307/pomo/internal/theme"
)

const (
	defaultBarWidth = 30
	maxBarWidth     = 60
	tickInterval    = time.Second
	// sessions started by other clients show up after at most this many ticks
	reloadTicks     = 30
)

// ModelConfig holds everything the dashboard needs
type ModelConfig struct {
	BreakMinutes int
	Clock        ports.Clock
	Keys         config.KeyBindingsConfig
	Language     language.Tag
	Pomodoro     *services.PomodoroService
	ShowVersion  bool
	Stats        *services.StatsService
	Tenant       string
	WorkMinutes  int
}

// Model is the dashboard bubbletea model
type Model struct {
	breakLength time.Duration
	clock       ports.Clock
	dashboard   *services.DashboardView
	err         error
	help        help.Model
	keys        KeyMap
	language    language.Tag
	notice      string
	pomodoro    *services.PomodoroService
	showVersion bool
	stats       *services.StatsService
	tenant      string
	ticks       int
	timerBar    progress.Model
	width       int
	workLength  time.Duration
	xpBar       progress.Model
}

// NewModel creates the dashboard model. Fails when the key overrides are invalid.
func NewModel(cfg ModelConfig) (*Model, error) {
	keys, err := NewKeyMap(cfg.Keys)
	if err != nil {
		return nil, err
	}

	work := cfg.WorkMinutes
	if work <= 0 {
		work = config.DefaultWorkMinutes
	}
	brk := cfg.BreakMinutes
	if brk <= 0 {
		brk = config.DefaultBreakMinutes
	}

	return &Model{
		breakLength: time.Duration(brk) * time.Minute,
		clock:       cfg.Clock,
		help:        help.New(),
		keys:        keys,
		language:    cfg.Language,
		pomodoro:    cfg.Pomodoro,
		showVersion: cfg.ShowVersion,
		stats:       cfg.Stats,
		tenant:      cfg.Tenant,
		timerBar: progress.New(
			progress.WithSolidFill(string(theme.ColorWork)),
			progress.WithWidth(defaultBarWidth),
			progress.WithoutPercentage(),
		),
		workLength: time.Duration(work) * time.Minute,
		xpBar: progress.New(
			progress.WithGradient(string(theme.ColorXP), string(theme.ColorXPEnd)),
			progress.WithWidth(defaultBarWidth),
			progress.WithoutPercentage(),
		),
	}, nil
}

// Init loads the first snapshot and starts the clock
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.loadCmd(), tickCmd())
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		barWidth := min(max(msg.Width-30, 10), maxBarWidth)
		m.xpBar.Width = barWidth
		m.timerBar.Width = barWidth
		return m, nil

	case tickMsg:
		m.ticks++
		if m.ticks%reloadTicks == 0 {
			return m, tea.Batch(m.loadCmd(), tickCmd())
		}
		return m, tickCmd()

	case dashboardMsg:
		m.dashboard = msg.view
		return m, nil

	case actionMsg:
		m.notice = msg.notice
		m.err = nil
		return m, m.loadCmd()

	case errMsg:
		m.err = msg.err
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ForceQuit, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		return m, m.loadCmd()

	case key.Matches(msg, m.keys.StartWork):
		return m, m.startCmd(domain.TypeWork)

	case key.Matches(msg, m.keys.StartBreak):
		return m, m.startCmd(domain.TypeBreak)

	case key.Matches(msg, m.keys.Complete):
		if m.dashboard == nil || m.dashboard.Running == nil {
			m.notice = "No running session"
			return m, nil
		}
		return m, m.completeCmd(m.dashboard.Running.ID)
	}

	return m, nil
}

func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// sessionLength is the planned length of a session of the given type
func (m *Model) sessionLength(sessionType domain.SessionType) time.Duration {
	if sessionType == domain.TypeWork {
		return m.workLength
	}
	return m.breakLength
}
