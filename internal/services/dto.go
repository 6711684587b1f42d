package services

import (
	"context"

	"github.com/renato0307/pomo/internal/domain"
	"github.com/renato0307/pomo/internal/store"
)

// StoreProvider resolves the session store of a tenant
type StoreProvider interface {
	Get(ctx context.Context, tenant string) (*store.Store, error)
}

// StartParams contains parameters for starting a session
type StartParams struct {
	Tenant string
	Type   string
}

// CompleteParams contains parameters for completing a session
type CompleteParams struct {
	FallbackDuration *int64
	ID               int64
	Tenant           string
}

// CompleteResult is what a caller reports back after a completion
type CompleteResult struct {
	FirstCompletion bool
	Level           int
	LevelUp         bool
	Session         domain.Session
	TotalXP         int64
	XPGained        int64
}

// ListParams filters a session listing. Empty strings mean no filter.
type ListParams struct {
	Date   string
	Status string
	Tenant string
}

// SyncParams describes a timer event relayed to a room
type SyncParams struct {
	Action    string
	Duration  *int64
	Remaining *int64
	Room      string
	SessionID *int64
	Source    string
	Tenant    string
	Type      string
}

// AchievementsResult lists the currently unlocked badges
type AchievementsResult struct {
	Badges        []domain.Badge
	NewlyUnlocked []domain.BadgeID
}

// DashboardView aggregates everything the dashboard renders in one consistent read
type DashboardView struct {
	Running *domain.Session
	Summary domain.ProgressSummary
	Today   domain.DateStats
	Weekly  domain.WeeklyStats
}

// ImportResult summarizes a bulk import
type ImportResult struct {
	Imported int
	Skipped  int
}
