package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/renato0307/pomo/internal/domain"
	"github.com/renato0307/pomo/internal/logging"
	"github.com/renato0307/pomo/internal/ports"
)

const maxRetries = 3

// SQLiteRepository implements ports.SessionRepository using GORM
type SQLiteRepository struct {
	db *gorm.DB
}

// Verify interface compliance at compile time
var _ ports.SessionRepository = (*SQLiteRepository)(nil)

// NewSQLiteRepository opens (and migrates) the database at dbPath
func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if len(dbPath) > 0 && dbPath[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		dbPath = filepath.Join(homeDir, dbPath[1:])
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		NowFunc: func() time.Time { return time.Now().UTC() },
		Logger:  newGormLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable WAL mode for concurrent access
	db.Exec("PRAGMA journal_mode=WAL")
	db.Exec("PRAGMA busy_timeout=5000")
	db.Exec("PRAGMA synchronous=NORMAL")

	if err := db.AutoMigrate(&PomodoroModel{}, &ProgressModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	logging.Logger.Debug("Database opened", "path", dbPath)
	return &SQLiteRepository{db: db}, nil
}

// LoadSnapshot reads a tenant's sessions in store order together with its progress
func (r *SQLiteRepository) LoadSnapshot(ctx context.Context, tenant string) (*domain.Snapshot, error) {
	var models []PomodoroModel
	var progress ProgressModel
	found := true

	err := withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("tenant = ?", tenant).Order("seq ASC").Find(&models).Error; err != nil {
				return err
			}
			err := tx.Where("tenant = ?", tenant).First(&progress).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				found = false
				return nil
			}
			return err
		})
	}, maxRetries)
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}

	snap := &domain.Snapshot{Sessions: make([]domain.Session, 0, len(models))}
	for _, m := range models {
		snap.Sessions = append(snap.Sessions, pomodoroModelToDomain(m))
	}
	if found {
		snap.NextID = progress.NextID
		snap.Progress = progressModelToDomain(progress)
	}
	return snap, nil
}

// ListTenants returns every tenant with persisted state
func (r *SQLiteRepository) ListTenants(ctx context.Context) ([]string, error) {
	var tenants []string
	err := withRetry(func() error {
		return r.db.WithContext(ctx).
			Raw("SELECT tenant FROM progress UNION SELECT tenant FROM pomodoros ORDER BY tenant").
			Scan(&tenants).Error
	}, maxRetries)
	if err != nil {
		return nil, fmt.Errorf("failed to list tenants: %w", err)
	}
	return tenants, nil
}

// SaveSession inserts a session or updates its mutable columns.
// New rows are appended at the end of the tenant's store order.
func (r *SQLiteRepository) SaveSession(ctx context.Context, tenant string, session domain.Session) error {
	model := domainToPomodoroModel(tenant, session)

	return withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			var seq int64
			if err := tx.Model(&PomodoroModel{}).
				Where("tenant = ?", tenant).
				Select("COALESCE(MAX(seq), 0)").
				Scan(&seq).Error; err != nil {
				return err
			}
			model.Seq = seq + 1

			return tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "id"}, {Name: "tenant"}},
				DoUpdates: clause.AssignmentColumns([]string{"end_time", "duration_sec", "status", "updated_at"}),
			}).Create(&model).Error
		})
	}, maxRetries)
}

// SaveProgress upserts the tenant's id counter and gamification state
func (r *SQLiteRepository) SaveProgress(ctx context.Context, tenant string, nextID int64, progress domain.Progress) error {
	model := domainToProgressModel(tenant, nextID, progress)

	return withRetry(func() error {
		return r.db.WithContext(ctx).Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "tenant"}},
			DoUpdates: clause.AssignmentColumns([]string{"next_id", "total_xp", "unlocked_badges", "updated_at"}),
		}).Create(&model).Error
	}, maxRetries)
}

// Close releases the underlying connection pool
func (r *SQLiteRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// withRetry retries fn while SQLite reports the database as busy or locked
func withRetry(fn func() error, maxRetries int) error {
	var lastErr error
	for i := 0; i < maxRetries; i++ {
		err := fn()
		if err == nil {
			return nil
		}

		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && (sqliteErr.Code == sqlite3.ErrBusy || sqliteErr.Code == sqlite3.ErrLocked) {
			lastErr = err
			logging.Logger.Debug("Database busy, retrying", "attempt", i+1)
			time.Sleep(time.Millisecond * time.Duration(50*(i+1)))
			continue
		}

		return err
	}
	return fmt.Errorf("operation failed after %d retries: %w", maxRetries, lastErr)
}
