// Package stats answers date-filtered reporting queries over session history.
package stats

import (
	"time"

	"github.com/renato0307/pomo/internal/domain"
)

// ForDate aggregates completed sessions.
// When date is nil every completed session counts; otherwise only those whose
// end time falls on the same UTC calendar date.
func ForDate(sessions []domain.Session, date *time.Time) domain.DateStats {
	var result domain.DateStats
	for _, s := range sessions {
		if !matches(s, date) {
			continue
		}
		result.CompletedCount++
		result.TotalFocusSeconds += s.Duration()
	}
	return result
}

func matches(s domain.Session, date *time.Time) bool {
	if !s.IsCompleted() {
		return false
	}
	if date == nil {
		return true
	}
	if !s.HasEndTime() {
		return false
	}
	return domain.SameDate(*s.EndTime, *date)
}

// ParseDateFilter turns an optional raw date into a filter value.
// An empty string means no filter.
func ParseDateFilter(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	date, err := domain.ParseDate(raw)
	if err != nil {
		return nil, err
	}
	return &date, nil
}
