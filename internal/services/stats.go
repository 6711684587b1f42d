package services

import (
	"context"
	"time"

	"github.com/renato0307/pomo/internal/domain"
	"github.com/renato0307/pomo/internal/gamification"
	"github.com/renato0307/pomo/internal/logging"
	"github.com/renato0307/pomo/internal/ports"
	"github.com/renato0307/pomo/internal/stats"
)

// StatsService answers the read-only reporting queries
type StatsService struct {
	clock  ports.Clock
	stores StoreProvider
}

// NewStatsService creates a new StatsService
func NewStatsService(stores StoreProvider, clock ports.Clock) *StatsService {
	return &StatsService{
		clock:  clock,
		stores: stores,
	}
}

// ForDate aggregates completed sessions, optionally for one UTC calendar date (YYYY-MM-DD)
func (s *StatsService) ForDate(ctx context.Context, tenant, date string) (result domain.DateStats, err error) {
	ctx, span := startSpan(ctx, "pomo.stats.date", tenant)
	defer func() { endSpan(span, err) }()

	filter, err := stats.ParseDateFilter(date)
	if err != nil {
		return domain.DateStats{}, err
	}
	snap, err := s.snapshot(ctx, tenant)
	if err != nil {
		return domain.DateStats{}, err
	}
	return stats.ForDate(snap.Sessions, filter), nil
}

// Progress returns level, XP and streak
func (s *StatsService) Progress(ctx context.Context, tenant string) (summary domain.ProgressSummary, err error) {
	ctx, span := startSpan(ctx, "pomo.stats.progress", tenant)
	defer func() { endSpan(span, err) }()

	snap, err := s.snapshot(ctx, tenant)
	if err != nil {
		return domain.ProgressSummary{}, err
	}
	return summarize(snap, s.clock.Now()), nil
}

func summarize(snap domain.Snapshot, now time.Time) domain.ProgressSummary {
	return domain.ProgressSummary{
		Level:      gamification.LevelOf(snap.Progress.TotalXP),
		StreakDays: gamification.Streak(snap.Sessions, now),
	}
}

// Achievements evaluates badges against the full history and records newly seen ones
func (s *StatsService) Achievements(ctx context.Context, tenant string) (result *AchievementsResult, err error) {
	ctx, span := startSpan(ctx, "pomo.stats.achievements", tenant)
	defer func() { endSpan(span, err) }()

	st, err := s.stores.Get(ctx, tenant)
	if err != nil {
		return nil, err
	}
	snap := st.Snapshot()

	badges := gamification.Achievements(snap.Sessions, s.clock.Now())
	var added []domain.BadgeID
	if fresh := gamification.NewlyUnlocked(snap.Progress, badges); len(fresh) > 0 {
		added = st.RecordBadges(fresh)
	}

	logging.Logger.Debug("Achievements evaluated", "tenant", tenant, "count", len(badges), "new", added)
	return &AchievementsResult{Badges: badges, NewlyUnlocked: added}, nil
}

// Weekly aggregates the trailing 7 days
func (s *StatsService) Weekly(ctx context.Context, tenant string) (result domain.WeeklyStats, err error) {
	ctx, span := startSpan(ctx, "pomo.stats.weekly", tenant)
	defer func() { endSpan(span, err) }()

	snap, err := s.snapshot(ctx, tenant)
	if err != nil {
		return domain.WeeklyStats{}, err
	}
	return gamification.WeeklyStats(snap.Sessions, s.clock.Now()), nil
}

// Monthly aggregates the current calendar month
func (s *StatsService) Monthly(ctx context.Context, tenant string) (result domain.MonthlyStats, err error) {
	ctx, span := startSpan(ctx, "pomo.stats.monthly", tenant)
	defer func() { endSpan(span, err) }()

	snap, err := s.snapshot(ctx, tenant)
	if err != nil {
		return domain.MonthlyStats{}, err
	}
	return gamification.MonthlyStats(snap.Sessions, s.clock.Now()), nil
}

// Dashboard gathers the dashboard projections from a single snapshot
func (s *StatsService) Dashboard(ctx context.Context, tenant string) (*DashboardView, error) {
	snap, err := s.snapshot(ctx, tenant)
	if err != nil {
		return nil, err
	}
	now := s.clock.Now()
	today := domain.DateOf(now)

	view := &DashboardView{
		Summary: summarize(snap, now),
		Today:   stats.ForDate(snap.Sessions, &today),
		Weekly:  gamification.WeeklyStats(snap.Sessions, now),
	}
	for i := len(snap.Sessions) - 1; i >= 0; i-- {
		if !snap.Sessions[i].IsCompleted() {
			running := snap.Sessions[i]
			view.Running = &running
			break
		}
	}
	return view, nil
}

func (s *StatsService) snapshot(ctx context.Context, tenant string) (domain.Snapshot, error) {
	st, err := s.stores.Get(ctx, tenant)
	if err != nil {
		return domain.Snapshot{}, err
	}
	return st.Snapshot(), nil
}
