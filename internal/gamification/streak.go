package gamification

import (
	"time"

	"github.com/renato0307/pomo/internal/domain"
)

// completedDates collects the distinct UTC calendar dates on which sessions completed
func completedDates(sessions []domain.Session) map[time.Time]struct{} {
	dates := make(map[time.Time]struct{})
	for _, s := range sessions {
		if !s.IsCompleted() || !s.HasEndTime() {
			continue
		}
		dates[domain.DateOf(*s.EndTime)] = struct{}{}
	}
	return dates
}

// Streak counts consecutive days with at least one completed session.
// The run ends today, or yesterday when nothing has been completed today yet.
func Streak(sessions []domain.Session, today time.Time) int {
	dates := completedDates(sessions)
	if len(dates) == 0 {
		return 0
	}

	cursor := domain.DateOf(today)
	if _, ok := dates[cursor]; !ok {
		cursor = cursor.AddDate(0, 0, -1)
	}

	streak := 0
	for {
		if _, ok := dates[cursor]; !ok {
			return streak
		}
		streak++
		cursor = cursor.AddDate(0, 0, -1)
	}
}
