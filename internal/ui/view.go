package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/renato0307/pomo/internal/domain"
	"github.com/renato0307/pomo/internal/theme"
)

const maxDayBar = 20

// View renders the dashboard
func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(renderHeader(m.showVersion, m.tenant))
	b.WriteString("\n")

	if m.dashboard == nil {
		if m.err != nil {
			b.WriteString(theme.ErrorStyle.Render("Error: "+m.err.Error()) + "\n")
		} else {
			b.WriteString(theme.MutedStyle.Render("Loading...") + "\n")
		}
		b.WriteString(theme.HelpStyle.Render(m.help.View(m.keys)) + "\n")
		return b.String()
	}

	b.WriteString(m.renderProgress())
	b.WriteString("\n")
	b.WriteString(m.renderWeek())
	b.WriteString("\n")
	b.WriteString(m.renderTimer())

	if m.notice != "" {
		b.WriteString("\n" + theme.NoticeStyle.Render(m.notice) + "\n")
	}
	if m.err != nil {
		b.WriteString("\n" + theme.ErrorStyle.Render("Error: "+m.err.Error()) + "\n")
	}

	b.WriteString(theme.HelpStyle.Render(m.help.View(m.keys)) + "\n")
	return b.String()
}

func (m *Model) renderProgress() string {
	summary := m.dashboard.Summary
	lvl := summary.Level
	today := m.dashboard.Today

	var b strings.Builder
	b.WriteString(theme.SectionStyle.Render("Progress") + "\n")
	fmt.Fprintf(&b, "%s %s  %s %s\n",
		theme.LabelStyle.Render("Level"),
		theme.ValueStyle.Render(fmt.Sprintf("%d", lvl.Level)),
		m.xpBar.ViewAs(ratio(lvl.CurrentXP, lvl.XPToNext)),
		theme.MutedStyle.Render(fmt.Sprintf("%d/%d XP (total %d)", lvl.CurrentXP, lvl.XPToNext, lvl.TotalXP)),
	)
	fmt.Fprintf(&b, "%s %s\n",
		theme.LabelStyle.Render("Streak"),
		theme.StreakStyle.Render(fmt.Sprintf("%d day(s)", summary.StreakDays)),
	)
	fmt.Fprintf(&b, "%s %s\n",
		theme.LabelStyle.Render("Today"),
		theme.ValueStyle.Render(fmt.Sprintf("%d completed · %s focus", today.CompletedCount, formatFocus(today.TotalFocusSeconds))),
	)
	return b.String()
}

func (m *Model) renderWeek() string {
	weekly := m.dashboard.Weekly

	var b strings.Builder
	b.WriteString(theme.SectionStyle.Render("Last 7 days") + "\n")
	for _, day := range weekly.DailyCounts {
		label := day.Date
		if t, err := time.Parse(domain.DateLayout, day.Date); err == nil {
			label = t.Format("Mon 01-02")
		}
		bar := strings.Repeat("█", min(day.Count, maxDayBar))
		fmt.Fprintf(&b, "%s %s %d\n", theme.LabelStyle.Render(label), theme.BarStyle.Render(bar), day.Count)
	}
	fmt.Fprintf(&b, "%s\n", theme.MutedStyle.Render(fmt.Sprintf(
		"%d completed · %s focus · %s average",
		weekly.TotalCompleted,
		formatFocus(weekly.TotalFocusSeconds),
		formatFocus(weekly.AverageFocusSeconds),
	)))
	return b.String()
}

func (m *Model) renderTimer() string {
	var b strings.Builder
	b.WriteString(theme.SectionStyle.Render("Timer") + "\n")

	running := m.dashboard.Running
	if running == nil {
		b.WriteString(theme.MutedStyle.Render(fmt.Sprintf(
			"No running session. Press %s to focus or %s for a break.",
			m.keys.StartWork.Help().Key, m.keys.StartBreak.Help().Key,
		)) + "\n")
		return b.String()
	}

	length := m.sessionLength(running.Type)
	elapsed := max(m.clock.Now().Sub(running.StartTime), 0)
	remaining := length - elapsed

	fmt.Fprintf(&b, "%s #%d  %s\n",
		theme.SessionTypeStyle(string(running.Type)).Render(string(running.Type)),
		running.ID,
		m.timerBar.ViewAs(ratio(int64(elapsed), int64(length))),
	)
	if remaining > 0 {
		fmt.Fprintf(&b, "%s %s\n", theme.LabelStyle.Render("Remaining"), theme.ValueStyle.Render(formatClock(remaining)))
	} else {
		fmt.Fprintf(&b, "%s %s\n",
			theme.NoticeStyle.Render("Time's up!"),
			theme.MutedStyle.Render(fmt.Sprintf("Press %s to complete.", m.keys.Complete.Help().Key)),
		)
	}
	return b.String()
}

func ratio(part, whole int64) float64 {
	if whole <= 0 {
		return 0
	}
	return min(float64(part)/float64(whole), 1)
}

// formatFocus renders seconds as 1h05m or 25m
func formatFocus(seconds int64) string {
	d := time.Duration(seconds) * time.Second
	hours := int(d / time.Hour)
	minutes := int((d % time.Hour) / time.Minute)
	if hours > 0 {
		return fmt.Sprintf("%dh%02dm", hours, minutes)
	}
	return fmt.Sprintf("%dm", minutes)
}

// formatClock renders a countdown as MM:SS
func formatClock(d time.Duration) string {
	d = d.Round(time.Second)
	return fmt.Sprintf("%02d:%02d", int(d/time.Minute), int((d%time.Minute)/time.Second))
}
