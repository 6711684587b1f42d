package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// SessionStatus represents the lifecycle state of a pomodoro session
type SessionStatus string

const (
	StatusRunning   SessionStatus = "running"
	StatusCompleted SessionStatus = "completed"
)

// SessionType classifies a session (focus or break)
type SessionType string

const (
	TypeWork  SessionType = "work"
	TypeBreak SessionType = "break"
)

// DefaultSessionType is used when a caller does not ask for a specific type
const DefaultSessionType = TypeWork

var sessionTypePattern = regexp.MustCompile(`^[a-z][a-z0-9_]{0,19}$`)

// Session represents one timed work or break interval (domain entity)
type Session struct {
	DurationSec *int64
	EndTime     *time.Time
	ID          int64
	StartTime   time.Time
	Status      SessionStatus
	Type        SessionType
}

// IsCompleted reports whether the session reached its terminal state
func (s Session) IsCompleted() bool {
	return s.Status == StatusCompleted
}

// HasEndTime reports whether the session carries an end timestamp
func (s Session) HasEndTime() bool {
	return s.EndTime != nil && !s.EndTime.IsZero()
}

// Duration returns the recorded duration in seconds, treating an absent value as zero
func (s Session) Duration() int64 {
	if s.DurationSec == nil {
		return 0
	}
	return *s.DurationSec
}

// Clone returns a deep copy so callers never share pointers with the store
func (s Session) Clone() Session {
	out := s
	if s.EndTime != nil {
		end := *s.EndTime
		out.EndTime = &end
	}
	if s.DurationSec != nil {
		d := *s.DurationSec
		out.DurationSec = &d
	}
	return out
}

// Validate checks the status/end_time invariant:
// running sessions have no end time, completed sessions have one.
func (s Session) Validate() error {
	if s.ID <= 0 {
		return fmt.Errorf("%w: session id must be positive, got %d", ErrInvalidInput, s.ID)
	}
	switch s.Status {
	case StatusRunning:
		if s.EndTime != nil {
			return fmt.Errorf("%w: running session %d has an end time", ErrInvalidInput, s.ID)
		}
	case StatusCompleted:
		if !s.HasEndTime() {
			return fmt.Errorf("%w: completed session %d has no end time", ErrInvalidInput, s.ID)
		}
	default:
		return fmt.Errorf("%w: unknown status %q for session %d", ErrInvalidInput, s.Status, s.ID)
	}
	if s.DurationSec != nil && *s.DurationSec < 0 {
		return fmt.Errorf("%w: session %d has negative duration", ErrInvalidInput, s.ID)
	}
	return nil
}

// ParseSessionType normalizes a user supplied type.
// An empty value yields DefaultSessionType.
func ParseSessionType(raw string) (SessionType, error) {
	value := strings.ToLower(strings.TrimSpace(raw))
	if value == "" {
		return DefaultSessionType, nil
	}
	if !sessionTypePattern.MatchString(value) {
		return "", fmt.Errorf("%w: invalid session type %q", ErrInvalidInput, raw)
	}
	return SessionType(value), nil
}

// ParseSessionStatus validates a status string
func ParseSessionStatus(raw string) (SessionStatus, error) {
	switch SessionStatus(strings.ToLower(strings.TrimSpace(raw))) {
	case StatusRunning:
		return StatusRunning, nil
	case StatusCompleted:
		return StatusCompleted, nil
	default:
		return "", fmt.Errorf("%w: invalid session status %q", ErrInvalidInput, raw)
	}
}

// ComputeDuration returns floor(end - start) in whole seconds.
// ok is false when the delta cannot be computed (missing or inverted timestamps).
func ComputeDuration(start time.Time, end *time.Time) (seconds int64, ok bool) {
	if start.IsZero() || end == nil || end.IsZero() {
		return 0, false
	}
	delta := end.Sub(start)
	if delta < 0 {
		return 0, false
	}
	return int64(delta / time.Second), true
}
