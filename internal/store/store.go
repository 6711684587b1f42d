// Package store holds the ordered session history and XP accumulator of one tenant.
//
// A Store serializes every mutation (start, complete with its XP award, import,
// badge bookkeeping) behind a single write lock, and hands readers deep copies
// taken under the read lock so a query never observes a half-applied change.
package store

import (
	"fmt"
	"sync"
	"time"

	"github.com/renato0307/pomo/internal/domain"
	"github.com/renato0307/pomo/internal/gamification"
	"github.com/renato0307/pomo/internal/logging"
	"github.com/renato0307/pomo/internal/ports"
)

// Store is the in-memory session store for a single tenant
type Store struct {
	clock           ports.Clock
	index           map[int64]int
	journal         ports.SessionJournal
	mu              sync.RWMutex
	nextID          int64
	progress        domain.Progress
	sessions        []domain.Session
	tenant          string
	xpPerCompletion int64
}

// Option configures a Store at construction
type Option func(*Store)

// WithJournal writes every committed mutation through j
func WithJournal(j ports.SessionJournal) Option {
	return func(s *Store) {
		s.journal = j
	}
}

// WithSnapshot restores previously persisted state
func WithSnapshot(snap *domain.Snapshot) Option {
	return func(s *Store) {
		if snap == nil {
			return
		}
		for _, session := range snap.Sessions {
			s.index[session.ID] = len(s.sessions)
			s.sessions = append(s.sessions, session.Clone())
			s.nextID = max(s.nextID, session.ID+1)
		}
		s.nextID = max(s.nextID, snap.NextID)
		s.progress = snap.Progress.Clone()
	}
}

// WithTenant labels log lines emitted by the store
func WithTenant(tenant string) Option {
	return func(s *Store) {
		s.tenant = tenant
	}
}

// WithXPPerCompletion overrides the XP awarded on first completion
func WithXPPerCompletion(xp int64) Option {
	return func(s *Store) {
		s.xpPerCompletion = xp
	}
}

// New creates an empty store whose ids start at 1
func New(clock ports.Clock, opts ...Option) *Store {
	s := &Store{
		clock:           clock,
		index:           make(map[int64]int),
		nextID:          1,
		xpPerCompletion: gamification.XPPerCompletion,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CompleteResult describes the outcome of Complete
type CompleteResult struct {
	FirstCompletion bool
	Session         domain.Session
	XPAfter         int64
	XPBefore        int64
}

// XPGained is the XP awarded by this call (zero on repeated completion)
func (r CompleteResult) XPGained() int64 {
	return r.XPAfter - r.XPBefore
}

// LevelUp reports whether the award crossed a level boundary
func (r CompleteResult) LevelUp() bool {
	return gamification.IsLevelUp(r.XPBefore, r.XPAfter)
}

// Start allocates the next id and records a running session
func (s *Store) Start(sessionType domain.SessionType) domain.Session {
	if sessionType == "" {
		sessionType = domain.DefaultSessionType
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	session := domain.Session{
		ID:        s.nextID,
		StartTime: s.clock.Now(),
		Status:    domain.StatusRunning,
		Type:      sessionType,
	}
	s.index[session.ID] = len(s.sessions)
	s.sessions = append(s.sessions, session)
	s.nextID++

	logging.Logger.Debug("Session started", "tenant", s.tenant, "id", session.ID, "type", session.Type)
	s.recordSession(session)
	s.recordProgress()

	return session.Clone()
}

// Complete transitions a running session to completed and awards XP once.
// Completing an already completed session returns it unchanged.
func (s *Store) Complete(id int64, fallbackDuration *int64) (CompleteResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx, ok := s.index[id]
	if !ok {
		return CompleteResult{}, fmt.Errorf("%w: %d", domain.ErrSessionNotFound, id)
	}

	current := s.sessions[idx]
	if current.IsCompleted() {
		return CompleteResult{
			Session:  current.Clone(),
			XPAfter:  s.progress.TotalXP,
			XPBefore: s.progress.TotalXP,
		}, nil
	}

	end := s.clock.Now()
	current.EndTime = &end
	current.Status = domain.StatusCompleted
	if seconds, ok := domain.ComputeDuration(current.StartTime, current.EndTime); ok {
		current.DurationSec = &seconds
	} else {
		logging.Logger.Warn("Duration not computable, using fallback",
			"tenant", s.tenant, "id", id, "fallback", fallbackDuration)
		current.DurationSec = sanitizeFallback(fallbackDuration)
	}
	s.sessions[idx] = current

	before := s.progress.TotalXP
	s.progress.TotalXP += s.xpPerCompletion

	logging.Logger.Debug("Session completed",
		"tenant", s.tenant, "id", id, "duration", current.Duration(), "totalXP", s.progress.TotalXP)
	s.recordSession(current)
	s.recordProgress()

	return CompleteResult{
		FirstCompletion: true,
		Session:         current.Clone(),
		XPAfter:         s.progress.TotalXP,
		XPBefore:        before,
	}, nil
}

// sanitizeFallback copies a caller supplied duration, dropping negative values
func sanitizeFallback(fallback *int64) *int64 {
	if fallback == nil || *fallback < 0 {
		return nil
	}
	d := *fallback
	return &d
}

// Get returns a copy of one session
func (s *Store) Get(id int64) (domain.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx, ok := s.index[id]
	if !ok {
		return domain.Session{}, fmt.Errorf("%w: %d", domain.ErrSessionNotFound, id)
	}
	return s.sessions[idx].Clone(), nil
}

// ListFilter narrows List results. Zero value matches everything.
type ListFilter struct {
	// Date matches sessions whose end time falls on this UTC calendar date
	Date   *time.Time
	Status *domain.SessionStatus
}

func (f ListFilter) matches(session domain.Session) bool {
	if f.Status != nil && session.Status != *f.Status {
		return false
	}
	if f.Date != nil {
		if !session.HasEndTime() || !domain.SameDate(*session.EndTime, *f.Date) {
			return false
		}
	}
	return true
}

// List returns copies of the sessions matching filter, in store order
func (s *Store) List(filter ListFilter) []domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Session, 0, len(s.sessions))
	for _, session := range s.sessions {
		if filter.matches(session) {
			out = append(out, session.Clone())
		}
	}
	return out
}

// Progress returns a copy of the gamification accumulator
func (s *Store) Progress() domain.Progress {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.progress.Clone()
}

// Snapshot returns a consistent copy of the whole store
func (s *Store) Snapshot() domain.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sessions := make([]domain.Session, len(s.sessions))
	for i, session := range s.sessions {
		sessions[i] = session.Clone()
	}
	return domain.Snapshot{
		NextID:   s.nextID,
		Progress: s.progress.Clone(),
		Sessions: sessions,
	}
}

// ImportResult counts imported and skipped records
type ImportResult struct {
	Imported int
	Skipped  int
}

// Import appends records whose id is not yet present.
// Invalid records are skipped. The id counter moves past the highest imported id.
// Imported completions never award XP.
func (s *Store) Import(sessions []domain.Session) ImportResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	var result ImportResult
	for _, session := range sessions {
		if _, exists := s.index[session.ID]; exists {
			logging.Logger.Debug("Import skipped existing id", "tenant", s.tenant, "id", session.ID)
			result.Skipped++
			continue
		}
		if err := session.Validate(); err != nil {
			logging.Logger.Warn("Import skipped invalid record", "tenant", s.tenant, "id", session.ID, "error", err)
			result.Skipped++
			continue
		}

		stored := session.Clone()
		s.index[stored.ID] = len(s.sessions)
		s.sessions = append(s.sessions, stored)
		s.nextID = max(s.nextID, stored.ID+1)
		s.recordSession(stored)
		result.Imported++
	}

	if result.Imported > 0 {
		s.recordProgress()
	}
	logging.Logger.Info("Sessions imported",
		"tenant", s.tenant, "imported", result.Imported, "skipped", result.Skipped, "nextID", s.nextID)
	return result
}

// RecordBadges adds badge ids to the unlocked set; it never removes any.
// Returns the ids that were not recorded before.
func (s *Store) RecordBadges(ids []domain.BadgeID) []domain.BadgeID {
	s.mu.Lock()
	defer s.mu.Unlock()

	var added []domain.BadgeID
	for _, id := range ids {
		if s.progress.HasBadge(id) {
			continue
		}
		s.progress.UnlockedBadges = append(s.progress.UnlockedBadges, id)
		added = append(added, id)
	}
	if len(added) > 0 {
		logging.Logger.Info("Badges unlocked", "tenant", s.tenant, "badges", added)
		s.recordProgress()
	}
	return added
}

// recordSession and recordProgress run under the write lock so the journal sees commit order
func (s *Store) recordSession(session domain.Session) {
	if s.journal == nil {
		return
	}
	if err := s.journal.RecordSession(session.Clone()); err != nil {
		logging.Logger.Error("Failed to persist session", "tenant", s.tenant, "id", session.ID, "error", err)
	}
}

func (s *Store) recordProgress() {
	if s.journal == nil {
		return
	}
	if err := s.journal.RecordProgress(s.nextID, s.progress.Clone()); err != nil {
		logging.Logger.Error("Failed to persist progress", "tenant", s.tenant, "error", err)
	}
}
