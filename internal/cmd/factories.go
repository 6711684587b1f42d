package cmd

import (
	"errors"
	"fmt"

	"github.com/renato0307/pomo/internal/adapters/clock"
	"github.com/renato0307/pomo/internal/adapters/csvfile"
	"github.com/renato0307/pomo/internal/adapters/lock"
	"github.com/renato0307/pomo/internal/adapters/realtime"
	adapterstorage "github.com/renato0307/pomo/internal/adapters/storage"
	"github.com/renato0307/pomo/internal/logging"
	"github.com/renato0307/pomo/internal/paths"
	"github.com/renato0307/pomo/internal/ports"
	"github.com/renato0307/pomo/internal/services"
	"github.com/renato0307/pomo/internal/store"
)

// Container holds all dependencies for the application
type Container struct {
	Clock    ports.Clock
	Hub      *realtime.Hub
	Registry *store.Registry

	// Services
	PomodoroService *services.PomodoroService
	StatsService    *services.StatsService
	TransferService *services.TransferService

	// Internal - for cleanup only
	lock        *lock.FileLock
	sessionRepo *adapterstorage.SQLiteRepository
}

// NewContainer creates a new Container with all dependencies wired
func NewContainer() (*Container, error) {
	sessionRepo, err := adapterstorage.NewSQLiteRepository(paths.GetDBPath())
	if err != nil {
		return nil, err
	}

	systemClock := clock.SystemClock{}
	hub := realtime.NewHub(realtime.DefaultBuffer)
	registry := store.NewRegistry(systemClock, sessionRepo)

	return &Container{
		Clock:           systemClock,
		Hub:             hub,
		PomodoroService: services.NewPomodoroService(registry, hub, systemClock),
		Registry:        registry,
		StatsService:    services.NewStatsService(registry, systemClock),
		TransferService: services.NewTransferService(registry, csvfile.NewCodec()),
		sessionRepo:     sessionRepo,
	}, nil
}

// AcquireLock takes the data directory lock for the rest of the process.
// Commands that change sessions call it so they never race a running server.
func (c *Container) AcquireLock() error {
	if c.lock != nil {
		return nil
	}
	l, err := lock.Acquire(paths.GetLockPath())
	if err != nil {
		if errors.Is(err, lock.ErrHeld) {
			return fmt.Errorf("%w; stop `pomo serve` or `pomo dashboard` first", err)
		}
		return err
	}
	c.lock = l
	return nil
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	var errs []error
	if c.sessionRepo != nil {
		errs = append(errs, c.sessionRepo.Close())
	}
	if c.lock != nil {
		errs = append(errs, c.lock.Release())
	}
	if err := errors.Join(errs...); err != nil {
		logging.Logger.Error("Failed to close container", "error", err)
		return err
	}
	return nil
}
