package domain

import (
	"fmt"
	"strings"
	"time"
)

// TimerAction is a realtime timer synchronisation action
type TimerAction string

const (
	TimerComplete TimerAction = "complete"
	TimerPause    TimerAction = "pause"
	TimerReset    TimerAction = "reset"
	TimerResume   TimerAction = "resume"
	TimerStart    TimerAction = "start"
)

// DefaultRoom is used when a client does not name a sync room
const DefaultRoom = "default"

// TimerEvent is relayed to every other client in a room
type TimerEvent struct {
	Action      TimerAction `json:"action"`
	Duration    *int64      `json:"duration,omitempty"`
	Remaining   *int64      `json:"remaining,omitempty"`
	SessionID   *int64      `json:"session_id,omitempty"`
	SessionType SessionType `json:"type,omitempty"`
	Source      string      `json:"-"`
	Timestamp   time.Time   `json:"timestamp"`
}

// ParseTimerAction validates an action name
func ParseTimerAction(raw string) (TimerAction, error) {
	switch action := TimerAction(strings.ToLower(strings.TrimSpace(raw))); action {
	case TimerStart, TimerPause, TimerResume, TimerReset, TimerComplete:
		return action, nil
	default:
		return "", fmt.Errorf("%w: unknown timer action %q", ErrInvalidInput, raw)
	}
}

// RoomFor returns the room name, falling back to DefaultRoom
func RoomFor(raw string) string {
	room := strings.TrimSpace(raw)
	if room == "" {
		return DefaultRoom
	}
	return room
}

// RoomKey scopes a room name to one tenant so tenants never share a room
func RoomKey(tenant, room string) string {
	return tenant + "/" + RoomFor(room)
}
