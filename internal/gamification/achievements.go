package gamification

import (
	"time"

	"github.com/renato0307/pomo/internal/domain"
)

const (
	weeklyGoal    = 10
	totalGoal     = 50
	shortStreak   = 3
	longStreak    = 7
	weekWindowLen = 7
)

// BadgeMeta is the display metadata for a badge in the default language
type BadgeMeta struct {
	Description string
	Icon        string
	Name        string
}

// Catalog lists every badge in evaluation order
var Catalog = []domain.BadgeID{
	domain.BadgeWeekly10,
	domain.BadgeStreak3,
	domain.BadgeStreak7,
	domain.BadgeFirstPomodoro,
	domain.BadgeTotal50,
}

var badgeMeta = map[domain.BadgeID]BadgeMeta{
	domain.BadgeWeekly10: {
		Name:        "10 this week",
		Description: "Completed 10 pomodoros this week",
		Icon:        "🏆",
	},
	domain.BadgeStreak3: {
		Name:        "3-day streak",
		Description: "Completed pomodoros 3 days in a row",
		Icon:        "🔥",
	},
	domain.BadgeStreak7: {
		Name:        "7-day streak",
		Description: "Completed pomodoros every day for a week",
		Icon:        "⭐",
	},
	domain.BadgeFirstPomodoro: {
		Name:        "First pomodoro",
		Description: "Completed your first pomodoro",
		Icon:        "🌱",
	},
	domain.BadgeTotal50: {
		Name:        "50 completed",
		Description: "Completed 50 pomodoros in total",
		Icon:        "💯",
	},
}

// Meta returns the default display metadata for id
func Meta(id domain.BadgeID) BadgeMeta {
	return badgeMeta[id]
}

// Achievements evaluates every badge against the full history.
// Nothing is cached: unlock times of count and streak badges are the evaluation time,
// first_pomodoro is anchored on the first completed session in store order.
func Achievements(sessions []domain.Session, now time.Time) []domain.Badge {
	completed := Completed(sessions)
	if len(completed) == 0 {
		return []domain.Badge{}
	}

	streak := Streak(completed, now)
	weekCount := len(inWeekWindow(completed, now))
	evaluatedAt := now.UTC()

	unlocked := map[domain.BadgeID]bool{
		domain.BadgeWeekly10:      weekCount >= weeklyGoal,
		domain.BadgeStreak3:       streak >= shortStreak,
		domain.BadgeStreak7:       streak >= longStreak,
		domain.BadgeFirstPomodoro: true,
		domain.BadgeTotal50:       len(completed) >= totalGoal,
	}

	badges := make([]domain.Badge, 0, len(Catalog))
	for _, id := range Catalog {
		if !unlocked[id] {
			continue
		}
		meta := badgeMeta[id]
		badge := domain.Badge{
			Description: meta.Description,
			Icon:        meta.Icon,
			ID:          id,
			Name:        meta.Name,
			UnlockedAt:  evaluatedAt,
		}
		if id == domain.BadgeFirstPomodoro {
			badge.UnlockedAt = firstAnchor(completed)
		}
		badges = append(badges, badge)
	}
	return badges
}

// firstAnchor is the end time of the first completed session in store order
func firstAnchor(completed []domain.Session) time.Time {
	first := completed[0]
	if !first.HasEndTime() {
		return time.Time{}
	}
	return first.EndTime.UTC()
}

// Completed keeps completed sessions in their original order
func Completed(sessions []domain.Session) []domain.Session {
	out := make([]domain.Session, 0, len(sessions))
	for _, s := range sessions {
		if s.IsCompleted() {
			out = append(out, s)
		}
	}
	return out
}

// NewlyUnlocked returns badge ids present in badges but not yet recorded in progress
func NewlyUnlocked(progress domain.Progress, badges []domain.Badge) []domain.BadgeID {
	var ids []domain.BadgeID
	for _, b := range badges {
		if !progress.HasBadge(b.ID) {
			ids = append(ids, b.ID)
		}
	}
	return ids
}
