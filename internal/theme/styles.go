package theme

import "github.com/charmbracelet/lipgloss"

// Header styles
var (
	AppNameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	SubtitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	TaglineStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	VersionStyle = lipgloss.NewStyle().
			Foreground(ColorVersion)
)

// Dashboard styles
var (
	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	ValueStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Bold(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	SectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary).
			MarginTop(1)

	BarStyle = lipgloss.NewStyle().
			Foreground(ColorBar)

	StreakStyle = lipgloss.NewStyle().
			Foreground(ColorStreak).
			Bold(true)
)

// Session type styles
var (
	BreakStyle = lipgloss.NewStyle().
			Foreground(ColorBreak).
			Bold(true)

	WorkStyle = lipgloss.NewStyle().
			Foreground(ColorWork).
			Bold(true)
)

// Feedback styles
var (
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError)

	NoticeStyle = lipgloss.NewStyle().
			Foreground(ColorBadge)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(1, 0)
)

// SessionTypeStyle returns the style for a session type name
func SessionTypeStyle(sessionType string) lipgloss.Style {
	if sessionType == "work" {
		return WorkStyle
	}
	return BreakStyle
}
