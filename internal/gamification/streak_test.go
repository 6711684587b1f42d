package gamification

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/renato0307/pomo/internal/domain"
)

func TestStreak(t *testing.T) {
	tests := []struct {
		name     string
		sessions []domain.Session
		expected int
	}{
		{"empty history", nil, 0},
		{
			name: "today yesterday and the day before",
			sessions: []domain.Session{
				completedAt(1, daysAgo(2), 1500),
				completedAt(2, daysAgo(1), 1500),
				completedAt(3, daysAgo(0), 1500),
			},
			expected: 3,
		},
		{
			name: "grace day when nothing today",
			sessions: []domain.Session{
				completedAt(1, daysAgo(2), 1500),
				completedAt(2, daysAgo(1), 1500),
			},
			expected: 2,
		},
		{
			name: "gap stops the run",
			sessions: []domain.Session{
				completedAt(1, daysAgo(4), 1500),
				completedAt(2, daysAgo(3), 1500),
				completedAt(3, daysAgo(1), 1500),
				completedAt(4, daysAgo(0), 1500),
			},
			expected: 2,
		},
		{
			name: "last completion two days ago",
			sessions: []domain.Session{
				completedAt(1, daysAgo(2), 1500),
			},
			expected: 0,
		},
		{
			name: "several sessions on one day count once",
			sessions: []domain.Session{
				completedAt(1, daysAgo(0), 1500),
				completedAt(2, daysAgo(0).Add(-time.Hour), 1500),
			},
			expected: 1,
		},
		{
			name: "running sessions are ignored",
			sessions: []domain.Session{
				running(1, daysAgo(0)),
			},
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Streak(tt.sessions, fixedNow))
		})
	}
}
