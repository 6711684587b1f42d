// Package api defines the JSON shapes shared by the HTTP API and the CLI --format json output.
package api

import (
	"github.com/renato0307/pomo/internal/domain"
	"github.com/renato0307/pomo/internal/services"
)

// Session is the wire form of a session; timestamps are UTC with an explicit offset
type Session struct {
	DurationSec *int64  `json:"duration_sec"`
	EndTime     *string `json:"end_time"`
	ID          int64   `json:"id"`
	StartTime   *string `json:"start_time"`
	Status      string  `json:"status"`
	Type        string  `json:"type"`
}

// NewSession converts a domain session
func NewSession(s domain.Session) Session {
	resp := Session{
		DurationSec: s.DurationSec,
		ID:          s.ID,
		Status:      string(s.Status),
		Type:        string(s.Type),
	}
	if !s.StartTime.IsZero() {
		start := domain.FormatTimestamp(s.StartTime)
		resp.StartTime = &start
	}
	if s.HasEndTime() {
		end := domain.FormatTimestamp(*s.EndTime)
		resp.EndTime = &end
	}
	return resp
}

// Complete is the result of completing a session
type Complete struct {
	DurationSec *int64 `json:"duration_sec"`
	Level       int    `json:"level"`
	LevelUp     bool   `json:"level_up"`
	OK          bool   `json:"ok"`
	Status      string `json:"status"`
	TotalXP     int64  `json:"total_xp"`
	XPGained    int64  `json:"xp_gained"`
}

func NewComplete(r *services.CompleteResult) Complete {
	return Complete{
		DurationSec: r.Session.DurationSec,
		Level:       r.Level,
		LevelUp:     r.LevelUp,
		OK:          true,
		Status:      string(r.Session.Status),
		TotalXP:     r.TotalXP,
		XPGained:    r.XPGained,
	}
}

// DateStats is the date-filtered stats result
type DateStats struct {
	CompletedCount    int   `json:"completed_count"`
	TotalFocusSeconds int64 `json:"total_focus_seconds"`
}

// Progress is the level, XP and streak summary
type Progress struct {
	CurrentXP            int64 `json:"current_xp"`
	Level                int   `json:"level"`
	StreakDays           int   `json:"streak_days"`
	TotalXP              int64 `json:"total_xp"`
	XPNeededForNextLevel int64 `json:"xp_needed_for_next_level"`
}

func NewProgress(p domain.ProgressSummary) Progress {
	return Progress{
		CurrentXP:            p.Level.CurrentXP,
		Level:                p.Level.Level,
		StreakDays:           p.StreakDays,
		TotalXP:              p.Level.TotalXP,
		XPNeededForNextLevel: p.Level.XPToNext,
	}
}

type Badge struct {
	Description string `json:"description"`
	Icon        string `json:"icon"`
	ID          string `json:"id"`
	Name        string `json:"name"`
	UnlockedAt  string `json:"unlocked_at"`
}

// Achievements lists unlocked badges
type Achievements struct {
	Achievements  []Badge `json:"achievements"`
	NewlyUnlocked []string        `json:"newly_unlocked"`
	TotalCount    int             `json:"total_count"`
}

func NewAchievements(badges []domain.Badge, added []domain.BadgeID) Achievements {
	resp := Achievements{
		Achievements:  make([]Badge, 0, len(badges)),
		NewlyUnlocked: make([]string, 0, len(added)),
		TotalCount:    len(badges),
	}
	for _, b := range badges {
		resp.Achievements = append(resp.Achievements, Badge{
			Description: b.Description,
			Icon:        b.Icon,
			ID:          string(b.ID),
			Name:        b.Name,
			UnlockedAt:  domain.FormatTimestamp(b.UnlockedAt),
		})
	}
	for _, id := range added {
		resp.NewlyUnlocked = append(resp.NewlyUnlocked, string(id))
	}
	return resp
}

// Weekly is the trailing 7-day report
type Weekly struct {
	AverageFocusSeconds int64          `json:"average_focus_seconds"`
	DailyCounts         map[string]int `json:"daily_counts"`
	TotalCompleted      int            `json:"total_completed"`
	TotalFocusSeconds   int64          `json:"total_focus_seconds"`
}

func NewWeekly(w domain.WeeklyStats) Weekly {
	daily := make(map[string]int, len(w.DailyCounts))
	for _, d := range w.DailyCounts {
		daily[d.Date] = d.Count
	}
	return Weekly{
		AverageFocusSeconds: w.AverageFocusSeconds,
		DailyCounts:         daily,
		TotalCompleted:      w.TotalCompleted,
		TotalFocusSeconds:   w.TotalFocusSeconds,
	}
}

// Monthly is the calendar month report
type Monthly struct {
	AverageFocusSeconds int64          `json:"average_focus_seconds"`
	CompletionRate      float64        `json:"completion_rate"`
	TotalCompleted      int            `json:"total_completed"`
	TotalFocusSeconds   int64          `json:"total_focus_seconds"`
	WeeklyCounts        map[string]int `json:"weekly_counts"`
}

func NewMonthly(m domain.MonthlyStats) Monthly {
	weekly := make(map[string]int, len(m.WeeklyCounts))
	for _, w := range m.WeeklyCounts {
		weekly[w.Label] = w.Count
	}
	return Monthly{
		AverageFocusSeconds: m.AverageFocusSeconds,
		CompletionRate:      m.CompletionRate,
		TotalCompleted:      m.TotalCompleted,
		TotalFocusSeconds:   m.TotalFocusSeconds,
		WeeklyCounts:        weekly,
	}
}

// Import summarizes a CSV import
type Import struct {
	ImportedCount int    `json:"imported_count"`
	Message       string `json:"message"`
	OK            bool   `json:"ok"`
	SkippedCount  int    `json:"skipped_count"`
}
