package storage

import "time"

// PomodoroModel is the GORM model for the pomodoros table.
// Timestamps are stored as text in domain.TimestampLayout.
type PomodoroModel struct {
	CreatedAt   time.Time
	DurationSec *int64  `gorm:"default:null"`
	EndTime     *string `gorm:"default:null"`
	ID          int64   `gorm:"primaryKey;autoIncrement:false"`
	Seq         int64   `gorm:"not null;index:idx_pomodoros_seq"`
	StartTime   string  `gorm:"not null;default:''"`
	Status      string  `gorm:"not null;default:'running';check:status IN ('running','completed')"`
	Tenant      string  `gorm:"primaryKey"`
	Type        string  `gorm:"not null;default:'work'"`
	UpdatedAt   time.Time
}

// TableName specifies the table name for GORM
func (PomodoroModel) TableName() string { return "pomodoros" }

// ProgressModel is the GORM model for per-tenant gamification state
type ProgressModel struct {
	CreatedAt      time.Time
	NextID         int64    `gorm:"not null;default:1"`
	Tenant         string   `gorm:"primaryKey"`
	TotalXP        int64    `gorm:"column:total_xp;not null;default:0"`
	UnlockedBadges []string `gorm:"serializer:json"`
	UpdatedAt      time.Time
}

// TableName specifies the table name for GORM
func (ProgressModel) TableName() string { return "progress" }
