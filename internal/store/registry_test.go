package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/pomo/internal/adapters/clock"
	"github.com/renato0307/pomo/internal/domain"
	portsmocks "github.com/renato0307/pomo/internal/ports/mocks"
)

func TestRegistry_InMemoryStoresArePerTenant(t *testing.T) {
	r := NewRegistry(clock.NewFixedClock(t0), nil)
	ctx := context.Background()

	alice, err := r.Get(ctx, "alice")
	require.NoError(t, err)
	bob, err := r.Get(ctx, " bob ")
	require.NoError(t, err)

	alice.Start(domain.TypeWork)
	assert.Empty(t, bob.List(ListFilter{}))
	assert.Equal(t, int64(1), bob.Start(domain.TypeWork).ID)

	again, err := r.Get(ctx, "alice")
	require.NoError(t, err)
	assert.Same(t, alice, again)

	tenants, err := r.Tenants(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"alice", "bob"}, tenants)
}

func TestRegistry_RejectsInvalidTenant(t *testing.T) {
	r := NewRegistry(clock.NewFixedClock(t0), nil)

	_, err := r.Get(context.Background(), "  ")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = r.Get(context.Background(), "a/b")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegistry_RestoresAndWritesThrough(t *testing.T) {
	repo := portsmocks.NewMockSessionRepository(t)
	end := t0.Add(25 * time.Minute)
	duration := int64(1500)
	snap := &domain.Snapshot{
		NextID:   4,
		Progress: domain.Progress{TotalXP: 30, UnlockedBadges: []domain.BadgeID{domain.BadgeFirstPomodoro}},
		Sessions: []domain.Session{
			{ID: 3, StartTime: t0, EndTime: &end, DurationSec: &duration, Status: domain.StatusCompleted, Type: domain.TypeWork},
		},
	}
	repo.EXPECT().LoadSnapshot(mock.Anything, "alice").Return(snap, nil).Once()
	repo.EXPECT().SaveSession(mock.Anything, "alice", mock.MatchedBy(func(s domain.Session) bool {
		return s.ID == 4 && s.Status == domain.StatusRunning
	})).Return(nil).Once()
	repo.EXPECT().SaveProgress(mock.Anything, "alice", int64(5), mock.Anything).Return(nil).Once()

	r := NewRegistry(clock.NewFixedClock(t0), repo)
	s, err := r.Get(context.Background(), "alice")
	require.NoError(t, err)

	assert.Equal(t, int64(30), s.Progress().TotalXP)
	assert.Equal(t, int64(4), s.Start(domain.TypeWork).ID)

	_, err = r.Get(context.Background(), "alice")
	require.NoError(t, err)
}

func TestRegistry_LoadFailure(t *testing.T) {
	repo := portsmocks.NewMockSessionRepository(t)
	repo.EXPECT().LoadSnapshot(mock.Anything, "alice").Return(nil, errors.New("locked"))

	r := NewRegistry(clock.NewFixedClock(t0), repo)
	_, err := r.Get(context.Background(), "alice")

	assert.ErrorContains(t, err, "failed to load store for alice")
}

func TestRegistry_TenantsMergesPersisted(t *testing.T) {
	repo := portsmocks.NewMockSessionRepository(t)
	repo.EXPECT().LoadSnapshot(mock.Anything, "carol").Return(&domain.Snapshot{}, nil)
	repo.EXPECT().ListTenants(mock.Anything).Return([]string{"alice", "carol"}, nil)

	r := NewRegistry(clock.NewFixedClock(t0), repo)
	_, err := r.Get(context.Background(), "carol")
	require.NoError(t, err)

	tenants, err := r.Tenants(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"alice", "carol"}, tenants)
}
