package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// Snapshot is a single persisted state document, keyed by namespace.
type Snapshot struct {
	Key       string `gorm:"primarykey"`
	Version   int
	Data      []byte
	UpdatedAt time.Time
}

// Backend persists whole-state snapshots to a local SQLite file.
type Backend struct {
	db *gorm.DB
}

// Open connects to the snapshot database at path and runs migrations.
func Open(path string) (*Backend, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent), // Quiet by default
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(&Snapshot{}); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &Backend{db: db}, nil
}

// Save writes data under key, replacing any previous snapshot.
func (b *Backend) Save(key string, version int, data []byte) error {
	snap := Snapshot{Key: key, Version: version, Data: data, UpdatedAt: time.Now()}
	return b.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&snap).Error
}

// Load returns the snapshot stored under key. A missing key returns
// (nil, 0, nil) so callers can fall back to defaults.
func (b *Backend) Load(key string) ([]byte, int, error) {
	var snap Snapshot
	err := b.db.First(&snap, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, 0, nil
	}
	if err != nil {
		return nil, 0, err
	}
	return snap.Data, snap.Version, nil
}

// Close closes the underlying database connection.
func (b *Backend) Close() error {
	sqlDB, err := b.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
