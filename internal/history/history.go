/****************************************************************************************************************/

//	@author		Ada Okonkwo <ada@stellarforge.dev>
//	@package	stellarforge/planetcast
//	@license	MIT License Copyright (c) 2026 stellarforge

/****************************************************************************************************************/

// Package history is the optional render audit log: one row per completed
// job, written to a SQLite database via gorm. It is pure observability —
// nothing in the render path ever reads a history record back — so every
// operation here fails soft: a logging error is reported to the caller but
// never changes the outcome of the render it's describing.
package history

/****************************************************************************************************************/

import (
	"fmt"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

/****************************************************************************************************************/

// Entry is one row of the render history table.
type Entry struct {
	ID         uint `gorm:"primaryKey"`
	JobID      string
	StartedAt  time.Time
	Duration   time.Duration
	SourceKind string
	SinkKind   string
	Width      int
	Height     int
	Succeeded  bool
	Error      string
}

/****************************************************************************************************************/

// Log wraps the database connection Record appends to.
type Log struct {
	db *gorm.DB
}

/****************************************************************************************************************/

// Open opens (creating if absent) the SQLite database at path and ensures
// the history table exists.
func Open(path string) (*Log, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		return nil, fmt.Errorf("history: opening %s: %w", path, err)
	}

	if err := db.AutoMigrate(&Entry{}); err != nil {
		return nil, fmt.Errorf("history: migrating schema: %w", err)
	}

	return &Log{db: db}, nil
}

/****************************************************************************************************************/

// Record appends entry to the log.
func (l *Log) Record(entry Entry) error {
	if l == nil {
		return nil
	}
	if err := l.db.Create(&entry).Error; err != nil {
		return fmt.Errorf("history: recording entry: %w", err)
	}
	return nil
}

/****************************************************************************************************************/

// Close releases the underlying database connection.
func (l *Log) Close() error {
	if l == nil {
		return nil
	}
	sqlDB, err := l.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

/****************************************************************************************************************/
