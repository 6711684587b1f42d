package ui

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/text/language"

	"github.com/renato0307/pomo/internal/domain"
	"github.com/renato0307/pomo/internal/i18n"
	"github.com/renato0307/pomo/internal/logging"
	"github.com/renato0307/pomo/internal/services"
)

type tickMsg time.Time

type dashboardMsg struct {
	view *services.DashboardView
}

// actionMsg reports a finished user action and triggers a reload
type actionMsg struct {
	notice string
}

type errMsg struct {
	err error
}

func (m *Model) loadCmd() tea.Cmd {
	return func() tea.Msg {
		view, err := m.stats.Dashboard(context.Background(), m.tenant)
		if err != nil {
			return errMsg{err}
		}
		return dashboardMsg{view}
	}
}

func (m *Model) startCmd(sessionType domain.SessionType) tea.Cmd {
	return func() tea.Msg {
		session, err := m.pomodoro.Start(context.Background(), services.StartParams{
			Tenant: m.tenant,
			Type:   string(sessionType),
		})
		if err != nil {
			return errMsg{err}
		}
		logging.Logger.Debug("Dashboard started session", "tenant", m.tenant, "id", session.ID)
		return actionMsg{notice: fmt.Sprintf("Started %s session #%d", session.Type, session.ID)}
	}
}

func (m *Model) completeCmd(id int64) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		result, err := m.pomodoro.Complete(ctx, services.CompleteParams{
			ID:     id,
			Tenant: m.tenant,
		})
		if err != nil {
			return errMsg{err}
		}

		notice := fmt.Sprintf("Completed #%d (+%d XP)", id, result.XPGained)
		if result.LevelUp {
			notice += fmt.Sprintf(" · Level up! Now level %d", result.Level)
		}

		achievements, err := m.stats.Achievements(ctx, m.tenant)
		if err != nil {
			logging.Logger.Warn("Failed to evaluate achievements", "tenant", m.tenant, "error", err)
		} else if names := unlockedNames(achievements, m.language); len(names) > 0 {
			notice += " · Unlocked: " + strings.Join(names, ", ")
		}
		return actionMsg{notice: notice}
	}
}

// unlockedNames renders the badges that were unlocked by the last evaluation
func unlockedNames(result *services.AchievementsResult, lang language.Tag) []string {
	var names []string
	for _, badge := range i18n.LocalizeBadges(result.Badges, lang) {
		if slices.Contains(result.NewlyUnlocked, badge.ID) {
			names = append(names, badge.Icon+" "+badge.Name)
		}
	}
	return names
}
