package services

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/renato0307/pomo/internal/domain"
	"github.com/renato0307/pomo/internal/gamification"
	"github.com/renato0307/pomo/internal/logging"
	"github.com/renato0307/pomo/internal/ports"
	"github.com/renato0307/pomo/internal/stats"
	"github.com/renato0307/pomo/internal/store"
)

// PomodoroService starts and completes sessions and relays timer events
type PomodoroService struct {
	clock  ports.Clock
	events ports.EventPublisher
	stores StoreProvider
}

// NewPomodoroService creates a new PomodoroService. events may be nil.
func NewPomodoroService(
	stores StoreProvider,
	events ports.EventPublisher,
	clock ports.Clock,
) *PomodoroService {
	return &PomodoroService{
		clock:  clock,
		events: events,
		stores: stores,
	}
}

// Start records a new running session
func (s *PomodoroService) Start(ctx context.Context, params StartParams) (session domain.Session, err error) {
	ctx, span := startSpan(ctx, "pomo.session.start", params.Tenant)
	defer func() { endSpan(span, err) }()

	logging.Logger.Debug("Starting session", "tenant", params.Tenant, "type", params.Type)

	sessionType, err := domain.ParseSessionType(params.Type)
	if err != nil {
		return domain.Session{}, err
	}

	st, err := s.stores.Get(ctx, params.Tenant)
	if err != nil {
		return domain.Session{}, err
	}

	session = st.Start(sessionType)
	span.SetAttributes(attribute.Int64("pomo.session.id", session.ID))
	logging.Logger.Info("Session started", "tenant", params.Tenant, "id", session.ID, "type", session.Type)

	s.publish(ctx, params.Tenant, domain.TimerEvent{
		Action:      domain.TimerStart,
		SessionID:   &session.ID,
		SessionType: session.Type,
		Timestamp:   session.StartTime,
	})
	return session, nil
}

// Complete finishes a session and reports the XP award
func (s *PomodoroService) Complete(ctx context.Context, params CompleteParams) (result *CompleteResult, err error) {
	ctx, span := startSpan(ctx, "pomo.session.complete", params.Tenant)
	defer func() { endSpan(span, err) }()
	span.SetAttributes(attribute.Int64("pomo.session.id", params.ID))

	logging.Logger.Debug("Completing session", "tenant", params.Tenant, "id", params.ID)

	if params.FallbackDuration != nil && *params.FallbackDuration < 0 {
		return nil, fmt.Errorf("%w: duration must not be negative", domain.ErrInvalidInput)
	}

	st, err := s.stores.Get(ctx, params.Tenant)
	if err != nil {
		return nil, err
	}

	completed, err := st.Complete(params.ID, params.FallbackDuration)
	if err != nil {
		logging.Logger.Warn("Failed to complete session", "tenant", params.Tenant, "id", params.ID, "error", err)
		return nil, err
	}

	result = &CompleteResult{
		FirstCompletion: completed.FirstCompletion,
		Level:           gamification.LevelOf(completed.XPAfter).Level,
		LevelUp:         completed.LevelUp(),
		Session:         completed.Session,
		TotalXP:         completed.XPAfter,
		XPGained:        completed.XPGained(),
	}

	if !completed.FirstCompletion {
		logging.Logger.Debug("Session already completed", "tenant", params.Tenant, "id", params.ID)
		return result, nil
	}

	logging.Logger.Info("Session completed",
		"tenant", params.Tenant,
		"id", params.ID,
		"duration", completed.Session.Duration(),
		"totalXP", result.TotalXP,
		"levelUp", result.LevelUp)

	s.publish(ctx, params.Tenant, domain.TimerEvent{
		Action:      domain.TimerComplete,
		Duration:    completed.Session.DurationSec,
		SessionID:   &completed.Session.ID,
		SessionType: completed.Session.Type,
		Timestamp:   *completed.Session.EndTime,
	})
	return result, nil
}

// List returns sessions filtered by status and end date
func (s *PomodoroService) List(ctx context.Context, params ListParams) ([]domain.Session, error) {
	logging.Logger.Debug("Listing sessions", "tenant", params.Tenant, "status", params.Status, "date", params.Date)

	var filter store.ListFilter
	if params.Status != "" {
		status, err := domain.ParseSessionStatus(params.Status)
		if err != nil {
			return nil, err
		}
		filter.Status = &status
	}
	date, err := stats.ParseDateFilter(params.Date)
	if err != nil {
		return nil, err
	}
	filter.Date = date

	st, err := s.stores.Get(ctx, params.Tenant)
	if err != nil {
		return nil, err
	}
	return st.List(filter), nil
}

// Sync relays a client timer event to the other members of a room
func (s *PomodoroService) Sync(ctx context.Context, params SyncParams) (event domain.TimerEvent, err error) {
	action, err := domain.ParseTimerAction(params.Action)
	if err != nil {
		return domain.TimerEvent{}, err
	}
	var sessionType domain.SessionType
	if params.Type != "" {
		if sessionType, err = domain.ParseSessionType(params.Type); err != nil {
			return domain.TimerEvent{}, err
		}
	}
	if _, err := store.NormalizeTenant(params.Tenant); err != nil {
		return domain.TimerEvent{}, err
	}

	event = domain.TimerEvent{
		Action:      action,
		Duration:    params.Duration,
		Remaining:   params.Remaining,
		SessionID:   params.SessionID,
		SessionType: sessionType,
		Source:      params.Source,
		Timestamp:   s.clock.Now(),
	}
	room := domain.RoomKey(params.Tenant, params.Room)
	logging.Logger.Debug("Relaying timer event", "room", room, "action", action, "source", params.Source)

	if s.events != nil {
		s.events.Publish(ctx, room, event)
	}
	return event, nil
}

func (s *PomodoroService) publish(ctx context.Context, tenant string, event domain.TimerEvent) {
	if s.events == nil {
		return
	}
	s.events.Publish(ctx, domain.RoomKey(tenant, domain.DefaultRoom), event)
}
