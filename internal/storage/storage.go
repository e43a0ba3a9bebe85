// Package storage is the durable key/value backend for client state
// snapshots: one row per store name, payload is the serialized snapshot.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/danupratama/category-admin/internal"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"
)

// StoreState is the snapshot row. Payload holds the JSON blob the state
// store produced; the storage layer never looks inside it.
type StoreState struct {
	Name      string    `gorm:"primaryKey"`
	Payload   []byte    `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (StoreState) TableName() string {
	return "store_states"
}

// Open connects to the configured database. SQLite schemas are migrated in
// place; postgres schemas come from the goose migrations run by the migrate
// command.
func Open(cfg internal.DatabaseConfig) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case "sqlite":
		dialector = sqlite.Open(cfg.Source)
	case "postgres":
		dialector = postgres.Open(cfg.Source)
	default:
		return nil, fmt.Errorf("unsupported driver %q", cfg.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("unwrap sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	if cfg.Driver == "sqlite" {
		if err := db.AutoMigrate(&StoreState{}); err != nil {
			return nil, fmt.Errorf("migrate sqlite schema: %w", err)
		}
	}

	return db, nil
}

// SQLDB exposes the underlying connection for health checks.
func SQLDB(db *gorm.DB) (*sql.DB, error) {
	return db.DB()
}

// GormStore implements the state store's Persistence contract on top of the
// store_states table.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// Load returns the stored payload, or (nil, nil) when no snapshot exists.
func (g *GormStore) Load(name string) ([]byte, error) {
	var state StoreState
	err := g.db.Where("name = ?", name).First(&state).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return state.Payload, nil
}

// Save upserts the payload under the given name.
func (g *GormStore) Save(name string, payload []byte) error {
	state := StoreState{
		Name:      name,
		Payload:   payload,
		UpdatedAt: time.Now().UTC(),
	}
	return g.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
	}).Create(&state).Error
}

// Delete drops a snapshot; missing rows are not an error.
func (g *GormStore) Delete(name string) error {
	return g.db.Where("name = ?", name).Delete(&StoreState{}).Error
}
