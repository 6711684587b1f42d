package store

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/renato0307/pomo/internal/domain"
	"github.com/renato0307/pomo/internal/logging"
	"github.com/renato0307/pomo/internal/ports"
)

const maxTenantLength = 64

// Registry owns one Store per tenant, created on first use
type Registry struct {
	clock  ports.Clock
	mu     sync.Mutex
	opts   []Option
	repo   ports.SessionRepository
	stores map[string]*Store
}

// NewRegistry creates a registry. repo may be nil for purely in-memory stores.
func NewRegistry(clock ports.Clock, repo ports.SessionRepository, opts ...Option) *Registry {
	return &Registry{
		clock:  clock,
		opts:   opts,
		repo:   repo,
		stores: make(map[string]*Store),
	}
}

// NormalizeTenant trims and validates a tenant name
func NormalizeTenant(raw string) (string, error) {
	tenant := strings.TrimSpace(raw)
	if tenant == "" {
		return "", fmt.Errorf("%w: tenant name is empty", domain.ErrInvalidInput)
	}
	if len(tenant) > maxTenantLength || strings.ContainsAny(tenant, "/\\\n\r\t") {
		return "", fmt.Errorf("%w: invalid tenant name %q", domain.ErrInvalidInput, raw)
	}
	return tenant, nil
}

// Get returns the tenant's store, restoring it from the repository on first access
func (r *Registry) Get(ctx context.Context, rawTenant string) (*Store, error) {
	tenant, err := NormalizeTenant(rawTenant)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.stores[tenant]; ok {
		return s, nil
	}

	opts := append(slices.Clone(r.opts), WithTenant(tenant))
	if r.repo != nil {
		snap, err := r.repo.LoadSnapshot(ctx, tenant)
		if err != nil {
			return nil, fmt.Errorf("failed to load store for %s: %w", tenant, err)
		}
		if snap == nil {
			snap = &domain.Snapshot{}
		}
		opts = append(opts, WithSnapshot(snap), WithJournal(&repositoryJournal{repo: r.repo, tenant: tenant}))
		logging.Logger.Debug("Store restored", "tenant", tenant, "sessions", len(snap.Sessions), "nextID", snap.NextID)
	}

	s := New(r.clock, opts...)
	r.stores[tenant] = s
	return s, nil
}

// Tenants lists tenants with a loaded store, plus persisted ones when a repository is set
func (r *Registry) Tenants(ctx context.Context) ([]string, error) {
	r.mu.Lock()
	names := make([]string, 0, len(r.stores))
	for name := range r.stores {
		names = append(names, name)
	}
	r.mu.Unlock()

	if r.repo != nil {
		persisted, err := r.repo.ListTenants(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list tenants: %w", err)
		}
		names = append(names, persisted...)
	}

	slices.Sort(names)
	return slices.Compact(names), nil
}

// repositoryJournal writes one tenant's mutations to the repository
type repositoryJournal struct {
	repo   ports.SessionWriter
	tenant string
}

func (j *repositoryJournal) RecordSession(session domain.Session) error {
	return j.repo.SaveSession(context.Background(), j.tenant, session)
}

func (j *repositoryJournal) RecordProgress(nextID int64, progress domain.Progress) error {
	return j.repo.SaveProgress(context.Background(), j.tenant, nextID, progress)
}
