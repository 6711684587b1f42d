package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/pomo/internal/adapters/clock"
	"github.com/renato0307/pomo/internal/domain"
	"github.com/renato0307/pomo/internal/store"
)

// seedDays completes one 25 minute session per day for the given number of days ending today
func seedDays(t *testing.T, registry *store.Registry, c *clock.FixedClock, tenant string, days int) {
	t.Helper()
	st, err := registry.Get(context.Background(), tenant)
	require.NoError(t, err)

	today := c.Now()
	for d := days - 1; d >= 0; d-- {
		c.Set(today.AddDate(0, 0, -d))
		session := st.Start(domain.TypeWork)
		c.Advance(25 * time.Minute)
		_, err := st.Complete(session.ID, nil)
		require.NoError(t, err)
	}
	c.Set(today)
}

func TestStatsService_ProgressAndStreak(t *testing.T) {
	c := clock.NewFixedClock(t0)
	registry := store.NewRegistry(c, nil)
	seedDays(t, registry, c, "alice", 3)
	svc := NewStatsService(registry, c)

	summary, err := svc.Progress(context.Background(), "alice")

	require.NoError(t, err)
	assert.Equal(t, 3, summary.StreakDays)
	assert.Equal(t, int64(30), summary.Level.TotalXP)
	assert.Equal(t, 1, summary.Level.Level)
	assert.Equal(t, int64(100), summary.Level.XPToNext)
}

func TestStatsService_ForDate(t *testing.T) {
	c := clock.NewFixedClock(t0)
	registry := store.NewRegistry(c, nil)
	seedDays(t, registry, c, "alice", 2)
	svc := NewStatsService(registry, c)

	today, err := svc.ForDate(context.Background(), "alice", "2026-02-24")
	require.NoError(t, err)
	assert.Equal(t, domain.DateStats{CompletedCount: 1, TotalFocusSeconds: 1500}, today)

	all, err := svc.ForDate(context.Background(), "alice", "")
	require.NoError(t, err)
	assert.Equal(t, 2, all.CompletedCount)

	_, err = svc.ForDate(context.Background(), "alice", "24-02-2026")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestStatsService_AchievementsRecordsNewBadges(t *testing.T) {
	c := clock.NewFixedClock(t0)
	registry := store.NewRegistry(c, nil)
	seedDays(t, registry, c, "alice", 3)
	svc := NewStatsService(registry, c)

	first, err := svc.Achievements(context.Background(), "alice")
	require.NoError(t, err)
	require.Len(t, first.Badges, 2)
	assert.Equal(t, domain.BadgeStreak3, first.Badges[0].ID)
	assert.Equal(t, domain.BadgeFirstPomodoro, first.Badges[1].ID)
	assert.ElementsMatch(t, []domain.BadgeID{domain.BadgeStreak3, domain.BadgeFirstPomodoro}, first.NewlyUnlocked)

	second, err := svc.Achievements(context.Background(), "alice")
	require.NoError(t, err)
	assert.Len(t, second.Badges, 2)
	assert.Empty(t, second.NewlyUnlocked)

	st, err := registry.Get(context.Background(), "alice")
	require.NoError(t, err)
	assert.Len(t, st.Progress().UnlockedBadges, 2)
}

func TestStatsService_WeeklyAndMonthly(t *testing.T) {
	c := clock.NewFixedClock(t0)
	registry := store.NewRegistry(c, nil)
	seedDays(t, registry, c, "alice", 4)
	svc := NewStatsService(registry, c)

	weekly, err := svc.Weekly(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, 4, weekly.TotalCompleted)
	assert.Equal(t, int64(1500), weekly.AverageFocusSeconds)
	assert.Len(t, weekly.DailyCounts, 7)

	monthly, err := svc.Monthly(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, 4, monthly.TotalCompleted)
	assert.Equal(t, 0.13, monthly.CompletionRate)
	assert.Equal(t, 1, monthly.WeeklyCounts[2].Count)
	assert.Equal(t, 3, monthly.WeeklyCounts[3].Count)
}

func TestStatsService_DashboardShowsRunningSession(t *testing.T) {
	c := clock.NewFixedClock(t0)
	registry := store.NewRegistry(c, nil)
	seedDays(t, registry, c, "alice", 1)
	st, err := registry.Get(context.Background(), "alice")
	require.NoError(t, err)
	running := st.Start(domain.TypeBreak)

	view, err := NewStatsService(registry, c).Dashboard(context.Background(), "alice")

	require.NoError(t, err)
	require.NotNil(t, view.Running)
	assert.Equal(t, running.ID, view.Running.ID)
	assert.Equal(t, 1, view.Today.CompletedCount)
	assert.Equal(t, 1, view.Summary.StreakDays)
}
