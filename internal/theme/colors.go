package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Brand colors
const (
	ColorPrimary   Color = "203" // Tomato - app name, titles
	ColorSecondary Color = "86"  // Cyan - subtitles
)

// Session type colors
const (
	ColorBreak Color = "42"  // Green - break sessions
	ColorWork  Color = "203" // Tomato - focus sessions
)

// UI semantic colors
const (
	ColorError     Color = "196" // Bright red
	ColorHighlight Color = "255" // White - emphasis
	ColorMuted     Color = "241" // Gray - secondary text
	ColorNormal    Color = "250" // Default text
	ColorSubtle    Color = "245" // Light gray - labels
	ColorVersion   Color = "240" // Dark gray
)

// Progression colors
const (
	ColorBadge  Color = "226" // Yellow - unlocked badges
	ColorBar    Color = "141" // Purple - weekly bars
	ColorStreak Color = "208" // Orange - streak flame
	ColorXP     Color = "141" // Purple - XP bar start
	ColorXPEnd  Color = "205" // Pink - XP bar end
)
