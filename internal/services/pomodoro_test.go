package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/pomo/internal/adapters/clock"
	"github.com/renato0307/pomo/internal/domain"
	portsmocks "github.com/renato0307/pomo/internal/ports/mocks"
	"github.com/renato0307/pomo/internal/store"
)

var t0 = time.Date(2026, 2, 24, 10, 0, 0, 0, time.UTC)

func newPomodoroService(t *testing.T) (*PomodoroService, *portsmocks.MockEventPublisher, *clock.FixedClock) {
	c := clock.NewFixedClock(t0)
	events := portsmocks.NewMockEventPublisher(t)
	return NewPomodoroService(store.NewRegistry(c, nil), events, c), events, c
}

func matchAction(action domain.TimerAction) interface{} {
	return mock.MatchedBy(func(ev domain.TimerEvent) bool { return ev.Action == action })
}

func TestStart_PublishesToTenantRoom(t *testing.T) {
	svc, events, _ := newPomodoroService(t)
	events.EXPECT().Publish(mock.Anything, "alice/default", matchAction(domain.TimerStart)).Return().Once()

	session, err := svc.Start(context.Background(), StartParams{Tenant: "alice"})

	require.NoError(t, err)
	assert.Equal(t, int64(1), session.ID)
	assert.Equal(t, domain.TypeWork, session.Type)
	assert.Equal(t, domain.StatusRunning, session.Status)
}

func TestStart_RejectsInvalidType(t *testing.T) {
	svc, _, _ := newPomodoroService(t)

	_, err := svc.Start(context.Background(), StartParams{Tenant: "alice", Type: "coffee!"})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestComplete_ReportsXPAndIsIdempotent(t *testing.T) {
	svc, events, c := newPomodoroService(t)
	ctx := context.Background()
	events.EXPECT().Publish(mock.Anything, "alice/default", matchAction(domain.TimerStart)).Return().Once()
	events.EXPECT().Publish(mock.Anything, "alice/default", matchAction(domain.TimerComplete)).Return().Once()

	session, err := svc.Start(ctx, StartParams{Tenant: "alice", Type: "work"})
	require.NoError(t, err)
	c.Advance(25 * time.Minute)

	result, err := svc.Complete(ctx, CompleteParams{Tenant: "alice", ID: session.ID})
	require.NoError(t, err)
	assert.True(t, result.FirstCompletion)
	assert.Equal(t, int64(10), result.XPGained)
	assert.Equal(t, int64(10), result.TotalXP)
	assert.Equal(t, 1, result.Level)
	assert.False(t, result.LevelUp)
	assert.Equal(t, int64(1500), *result.Session.DurationSec)

	again, err := svc.Complete(ctx, CompleteParams{Tenant: "alice", ID: session.ID})
	require.NoError(t, err)
	assert.False(t, again.FirstCompletion)
	assert.Zero(t, again.XPGained)
	assert.Equal(t, int64(10), again.TotalXP)
}

func TestComplete_NotFound(t *testing.T) {
	svc, _, _ := newPomodoroService(t)

	_, err := svc.Complete(context.Background(), CompleteParams{Tenant: "alice", ID: 99})

	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestComplete_NegativeFallbackRejected(t *testing.T) {
	svc, _, _ := newPomodoroService(t)
	negative := int64(-5)

	_, err := svc.Complete(context.Background(), CompleteParams{Tenant: "alice", ID: 1, FallbackDuration: &negative})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestList_FiltersAndValidates(t *testing.T) {
	svc, events, c := newPomodoroService(t)
	ctx := context.Background()
	events.EXPECT().Publish(mock.Anything, mock.Anything, mock.Anything).Return()

	first, err := svc.Start(ctx, StartParams{Tenant: "alice"})
	require.NoError(t, err)
	_, err = svc.Start(ctx, StartParams{Tenant: "alice", Type: "break"})
	require.NoError(t, err)
	c.Advance(time.Minute)
	_, err = svc.Complete(ctx, CompleteParams{Tenant: "alice", ID: first.ID})
	require.NoError(t, err)

	completed, err := svc.List(ctx, ListParams{Tenant: "alice", Status: "completed", Date: "2026-02-24"})
	require.NoError(t, err)
	require.Len(t, completed, 1)
	assert.Equal(t, first.ID, completed[0].ID)

	all, err := svc.List(ctx, ListParams{Tenant: "alice"})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	_, err = svc.List(ctx, ListParams{Tenant: "alice", Status: "paused"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.List(ctx, ListParams{Tenant: "alice", Date: "yesterday"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSync_RelaysWithSource(t *testing.T) {
	svc, events, _ := newPomodoroService(t)
	remaining := int64(300)
	events.EXPECT().Publish(mock.Anything, "alice/desk", mock.MatchedBy(func(ev domain.TimerEvent) bool {
		return ev.Action == domain.TimerPause && ev.Source == "sub-1" && *ev.Remaining == 300 && ev.Timestamp.Equal(t0)
	})).Return().Once()

	event, err := svc.Sync(context.Background(), SyncParams{
		Action:    "pause",
		Remaining: &remaining,
		Room:      "desk",
		Source:    "sub-1",
		Tenant:    "alice",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.TimerPause, event.Action)
}

func TestSync_UnknownAction(t *testing.T) {
	svc, _, _ := newPomodoroService(t)

	_, err := svc.Sync(context.Background(), SyncParams{Action: "explode", Tenant: "alice"})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
