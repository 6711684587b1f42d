package domain

import (
	"slices"
	"time"
)

// BadgeID identifies an achievement
type BadgeID string

const (
	BadgeFirstPomodoro BadgeID = "first_pomodoro"
	BadgeStreak3       BadgeID = "streak_3"
	BadgeStreak7       BadgeID = "streak_7"
	BadgeTotal50       BadgeID = "total_50"
	BadgeWeekly10      BadgeID = "weekly_10"
)

// Badge is an unlocked achievement with its display metadata
type Badge struct {
	Description string
	Icon        string
	ID          BadgeID
	Name        string
	UnlockedAt  time.Time
}

// LevelInfo is the position of a total XP amount on the level staircase
type LevelInfo struct {
	CurrentXP int64
	Level     int
	TotalXP   int64
	XPToNext  int64
}

// Progress is the per-tenant gamification state.
// TotalXP only grows, UnlockedBadges only gains entries.
type Progress struct {
	TotalXP        int64
	UnlockedBadges []BadgeID
}

// Clone returns a copy that does not share the badge slice
func (p Progress) Clone() Progress {
	return Progress{
		TotalXP:        p.TotalXP,
		UnlockedBadges: slices.Clone(p.UnlockedBadges),
	}
}

// HasBadge reports whether id was recorded as unlocked
func (p Progress) HasBadge(id BadgeID) bool {
	return slices.Contains(p.UnlockedBadges, id)
}

// ProgressSummary is the gamification query result
type ProgressSummary struct {
	Level      LevelInfo
	StreakDays int
}

// DayCount is the number of completed sessions on one calendar date
type DayCount struct {
	Count int
	Date  string
}

// WeekCount is the number of completed sessions in one 7-day bucket of a month
type WeekCount struct {
	Count int
	Label string
}

// WeeklyStats aggregates the trailing 7 days (today inclusive)
type WeeklyStats struct {
	AverageFocusSeconds int64
	DailyCounts         []DayCount
	TotalCompleted      int
	TotalFocusSeconds   int64
}

// MonthlyStats aggregates the current calendar month
type MonthlyStats struct {
	AverageFocusSeconds int64
	CompletionRate      float64
	TotalCompleted      int
	TotalFocusSeconds   int64
	WeeklyCounts        []WeekCount
}

// DateStats is the result of a date-filtered stats query
type DateStats struct {
	CompletedCount    int
	TotalFocusSeconds int64
}

// Snapshot is the full persisted state of one tenant's store
type Snapshot struct {
	NextID   int64
	Progress Progress
	Sessions []Session
}
