package gamification

import (
	"time"

	"github.com/renato0307/pomo/internal/domain"
)

var fixedNow = time.Date(2026, 2, 24, 15, 30, 0, 0, time.UTC)

func completedAt(id int64, end time.Time, duration int64) domain.Session {
	e := end.UTC()
	d := duration
	return domain.Session{
		DurationSec: &d,
		EndTime:     &e,
		ID:          id,
		StartTime:   e.Add(-time.Duration(duration) * time.Second),
		Status:      domain.StatusCompleted,
		Type:        domain.TypeWork,
	}
}

func running(id int64, start time.Time) domain.Session {
	return domain.Session{
		ID:        id,
		StartTime: start,
		Status:    domain.StatusRunning,
		Type:      domain.TypeWork,
	}
}

func daysAgo(n int) time.Time {
	return fixedNow.AddDate(0, 0, -n)
}
