package storage

import (
	"time"

	"github.com/renato0307/pomo/internal/domain"
	"github.com/renato0307/pomo/internal/logging"
)

// pomodoroModelToDomain converts a PomodoroModel (GORM) to domain.Session.
// Unparsable timestamps are logged and left absent.
func pomodoroModelToDomain(m PomodoroModel) domain.Session {
	session := domain.Session{
		DurationSec: m.DurationSec,
		ID:          m.ID,
		StartTime:   parseStored(m, "start_time", m.StartTime),
		Status:      domain.SessionStatus(m.Status),
		Type:        domain.SessionType(m.Type),
	}
	if m.EndTime != nil {
		if end := parseStored(m, "end_time", *m.EndTime); !end.IsZero() {
			session.EndTime = &end
		}
	}
	return session
}

func parseStored(m PomodoroModel, column, raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}
	t, err := domain.ParseTimestamp(raw)
	if err != nil {
		logging.Logger.Warn("Stored timestamp is unparsable",
			"tenant", m.Tenant, "id", m.ID, "column", column, "error", err)
		return time.Time{}
	}
	return t.UTC()
}

// domainToPomodoroModel converts a domain.Session to PomodoroModel (GORM)
func domainToPomodoroModel(tenant string, s domain.Session) PomodoroModel {
	m := PomodoroModel{
		DurationSec: s.DurationSec,
		ID:          s.ID,
		Status:      string(s.Status),
		Tenant:      tenant,
		Type:        string(s.Type),
	}
	if !s.StartTime.IsZero() {
		m.StartTime = domain.FormatTimestamp(s.StartTime)
	}
	if s.HasEndTime() {
		end := domain.FormatTimestamp(*s.EndTime)
		m.EndTime = &end
	}
	return m
}

// progressModelToDomain converts a ProgressModel (GORM) to domain.Progress
func progressModelToDomain(m ProgressModel) domain.Progress {
	badges := make([]domain.BadgeID, 0, len(m.UnlockedBadges))
	for _, b := range m.UnlockedBadges {
		badges = append(badges, domain.BadgeID(b))
	}
	return domain.Progress{
		TotalXP:        m.TotalXP,
		UnlockedBadges: badges,
	}
}

// domainToProgressModel converts domain.Progress to ProgressModel (GORM)
func domainToProgressModel(tenant string, nextID int64, p domain.Progress) ProgressModel {
	badges := make([]string, 0, len(p.UnlockedBadges))
	for _, b := range p.UnlockedBadges {
		badges = append(badges, string(b))
	}
	return ProgressModel{
		NextID:         nextID,
		Tenant:         tenant,
		TotalXP:        p.TotalXP,
		UnlockedBadges: badges,
	}
}
