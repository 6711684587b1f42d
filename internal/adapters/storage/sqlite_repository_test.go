package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/pomo/internal/adapters/clock"
	"github.com/renato0307/pomo/internal/domain"
	"github.com/renato0307/pomo/internal/store"
)

func newTestRepository(t *testing.T) *SQLiteRepository {
	t.Helper()
	repo, err := NewSQLiteRepository(filepath.Join(t.TempDir(), "state.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func TestLoadSnapshot_EmptyTenant(t *testing.T) {
	repo := newTestRepository(t)

	snap, err := repo.LoadSnapshot(context.Background(), "nobody")

	require.NoError(t, err)
	assert.Empty(t, snap.Sessions)
	assert.Zero(t, snap.NextID)
	assert.Zero(t, snap.Progress.TotalXP)
}

func TestSaveSession_UpsertKeepsInsertOrder(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	start := time.Date(2026, 2, 24, 10, 0, 0, 0, time.UTC)

	for _, id := range []int64{1, 10, 4} {
		require.NoError(t, repo.SaveSession(ctx, "alice", domain.Session{
			ID: id, StartTime: start, Status: domain.StatusRunning, Type: domain.TypeWork,
		}))
	}

	end := start.Add(25 * time.Minute)
	duration := int64(1500)
	require.NoError(t, repo.SaveSession(ctx, "alice", domain.Session{
		ID: 1, StartTime: start, EndTime: &end, DurationSec: &duration, Status: domain.StatusCompleted, Type: domain.TypeWork,
	}))

	snap, err := repo.LoadSnapshot(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, snap.Sessions, 3)
	assert.Equal(t, []int64{1, 10, 4}, []int64{snap.Sessions[0].ID, snap.Sessions[1].ID, snap.Sessions[2].ID})

	first := snap.Sessions[0]
	assert.Equal(t, domain.StatusCompleted, first.Status)
	require.NotNil(t, first.EndTime)
	assert.Equal(t, end, *first.EndTime)
	assert.Equal(t, start, first.StartTime)
	assert.Equal(t, int64(1500), *first.DurationSec)
	assert.Nil(t, snap.Sessions[1].EndTime)
}

func TestSaveProgress_Upsert(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.SaveProgress(ctx, "alice", 3, domain.Progress{TotalXP: 10}))
	require.NoError(t, repo.SaveProgress(ctx, "alice", 4, domain.Progress{
		TotalXP:        20,
		UnlockedBadges: []domain.BadgeID{domain.BadgeFirstPomodoro},
	}))

	snap, err := repo.LoadSnapshot(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(4), snap.NextID)
	assert.Equal(t, int64(20), snap.Progress.TotalXP)
	assert.Equal(t, []domain.BadgeID{domain.BadgeFirstPomodoro}, snap.Progress.UnlockedBadges)
}

func TestTenantsAreIsolated(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.SaveSession(ctx, "alice", domain.Session{ID: 1, Status: domain.StatusRunning, Type: domain.TypeWork}))
	require.NoError(t, repo.SaveSession(ctx, "bob", domain.Session{ID: 1, Status: domain.StatusRunning, Type: domain.TypeBreak}))
	require.NoError(t, repo.SaveProgress(ctx, "carol", 1, domain.Progress{}))

	bob, err := repo.LoadSnapshot(ctx, "bob")
	require.NoError(t, err)
	require.Len(t, bob.Sessions, 1)
	assert.Equal(t, domain.TypeBreak, bob.Sessions[0].Type)

	tenants, err := repo.ListTenants(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"alice", "bob", "carol"}, tenants)
}

func TestStoreRestartRestoresState(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.db")
	c := clock.NewFixedClock(time.Date(2026, 2, 24, 10, 0, 0, 0, time.UTC))
	ctx := context.Background()

	repo, err := NewSQLiteRepository(path)
	require.NoError(t, err)
	registry := store.NewRegistry(c, repo)
	st, err := registry.Get(ctx, "alice")
	require.NoError(t, err)
	first := st.Start(domain.TypeWork)
	c.Advance(25 * time.Minute)
	_, err = st.Complete(first.ID, nil)
	require.NoError(t, err)
	st.Start(domain.TypeBreak)
	want := st.Snapshot()
	require.NoError(t, repo.Close())

	reopened, err := NewSQLiteRepository(path)
	require.NoError(t, err)
	defer reopened.Close()
	restored, err := store.NewRegistry(c, reopened).Get(ctx, "alice")
	require.NoError(t, err)

	got := restored.Snapshot()
	assert.Equal(t, want.Sessions, got.Sessions)
	assert.Equal(t, want.NextID, got.NextID)
	assert.Equal(t, int64(10), got.Progress.TotalXP)
	assert.Equal(t, int64(3), restored.Start(domain.TypeWork).ID)
}

func TestWithRetry(t *testing.T) {
	t.Run("retries busy errors", func(t *testing.T) {
		attempts := 0
		err := withRetry(func() error {
			attempts++
			if attempts < 2 {
				return sqlite3.Error{Code: sqlite3.ErrBusy}
			}
			return nil
		}, 3)
		require.NoError(t, err)
		assert.Equal(t, 2, attempts)
	})

	t.Run("returns other errors immediately", func(t *testing.T) {
		attempts := 0
		boom := errors.New("boom")
		err := withRetry(func() error {
			attempts++
			return boom
		}, 3)
		assert.ErrorIs(t, err, boom)
		assert.Equal(t, 1, attempts)
	})

	t.Run("gives up", func(t *testing.T) {
		err := withRetry(func() error { return sqlite3.Error{Code: sqlite3.ErrLocked} }, 2)
		assert.ErrorContains(t, err, "after 2 retries")
		var sqliteErr sqlite3.Error
		require.ErrorAs(t, err, &sqliteErr)
		assert.Equal(t, sqlite3.ErrLocked, sqliteErr.Code)
	})
}
