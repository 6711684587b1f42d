package gamification

import (
	"fmt"
	"math"
	"time"

	"github.com/renato0307/pomo/internal/domain"
)

const (
	monthBuckets         = 5
	completionRateDays   = 30
	completionRateFactor = 100
)

// weekWindow returns the first day of the trailing 7-day window and the day after today
func weekWindow(now time.Time) (start, end time.Time) {
	today := domain.DateOf(now)
	return today.AddDate(0, 0, -(weekWindowLen - 1)), today.AddDate(0, 0, 1)
}

// inWeekWindow keeps completed sessions that ended between today-6 and today (UTC dates)
func inWeekWindow(completed []domain.Session, now time.Time) []domain.Session {
	start, end := weekWindow(now)
	var out []domain.Session
	for _, s := range completed {
		if !s.HasEndTime() {
			continue
		}
		ended := s.EndTime.UTC()
		if !ended.Before(start) && ended.Before(end) {
			out = append(out, s)
		}
	}
	return out
}

func focusTotals(sessions []domain.Session) (total, average int64) {
	for _, s := range sessions {
		total += s.Duration()
	}
	if len(sessions) == 0 {
		return total, 0
	}
	return total, total / int64(len(sessions))
}

// WeeklyStats aggregates completed sessions of the trailing 7 days, today inclusive
func WeeklyStats(sessions []domain.Session, now time.Time) domain.WeeklyStats {
	inWindow := inWeekWindow(Completed(sessions), now)
	total, average := focusTotals(inWindow)

	start, _ := weekWindow(now)
	daily := make([]domain.DayCount, weekWindowLen)
	for i := range daily {
		daily[i].Date = domain.FormatDate(start.AddDate(0, 0, i))
	}
	for _, s := range inWindow {
		idx := int(domain.DateOf(*s.EndTime).Sub(start) / (24 * time.Hour))
		daily[idx].Count++
	}

	return domain.WeeklyStats{
		AverageFocusSeconds: average,
		DailyCounts:         daily,
		TotalCompleted:      len(inWindow),
		TotalFocusSeconds:   total,
	}
}

// MonthStart returns midnight UTC of the first day of now's month
func MonthStart(now time.Time) time.Time {
	u := now.UTC()
	return time.Date(u.Year(), u.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// MonthlyStats aggregates completed sessions that ended on or after the start of the month.
// Buckets are five consecutive 7-day ranges from the month start and may run past month end.
func MonthlyStats(sessions []domain.Session, now time.Time) domain.MonthlyStats {
	start := MonthStart(now)

	var inMonth []domain.Session
	for _, s := range Completed(sessions) {
		if s.HasEndTime() && !s.EndTime.Before(start) {
			inMonth = append(inMonth, s)
		}
	}
	total, average := focusTotals(inMonth)

	weeks := make([]domain.WeekCount, monthBuckets)
	for i := range weeks {
		weeks[i].Label = fmt.Sprintf("week_%d", i+1)
	}
	for _, s := range inMonth {
		idx := int(s.EndTime.Sub(start) / (weekWindowLen * 24 * time.Hour))
		if idx < monthBuckets {
			weeks[idx].Count++
		}
	}

	return domain.MonthlyStats{
		AverageFocusSeconds: average,
		CompletionRate:      CompletionRate(len(inMonth)),
		TotalCompleted:      len(inMonth),
		TotalFocusSeconds:   total,
		WeeklyCounts:        weeks,
	}
}

// CompletionRate is completed/30 rounded to two decimals, regardless of month length
func CompletionRate(completed int) float64 {
	if completed <= 0 {
		return 0
	}
	rate := float64(completed) / completionRateDays
	return math.Round(rate*completionRateFactor) / completionRateFactor
}
