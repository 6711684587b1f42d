package ports

import (
	"context"

	"github.com/renato0307/pomo/internal/domain"
)

// SessionLoader restores a tenant's persisted state
type SessionLoader interface {
	LoadSnapshot(ctx context.Context, tenant string) (*domain.Snapshot, error)
	ListTenants(ctx context.Context) ([]string, error)
}

// SessionWriter persists individual mutations
type SessionWriter interface {
	SaveProgress(ctx context.Context, tenant string, nextID int64, progress domain.Progress) error
	SaveSession(ctx context.Context, tenant string, session domain.Session) error
}

// SessionRepository is the composite interface
type SessionRepository interface {
	SessionLoader
	SessionWriter
	Close() error
}

// SessionJournal receives every committed store mutation, in commit order.
// Implementations are called while the store's write lock is held.
type SessionJournal interface {
	RecordProgress(nextID int64, progress domain.Progress) error
	RecordSession(session domain.Session) error
}
