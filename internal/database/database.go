package database

import (
	"fmt"
	"log"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/readstats/kindle-analytics/internal/entities"
)

type Database struct {
	DB *gorm.DB
}

func NewDatabase(dbPath string) (*Database, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(&entities.ImportSession{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	log.Printf("Database initialized successfully at %s", dbPath)

	return &Database{DB: db}, nil
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// SaveImportSession persists one processed upload, assigning a UUID when
// the caller did not set one.
func (d *Database) SaveImportSession(session *entities.ImportSession) error {
	if session.UUID == "" {
		session.UUID = uuid.NewString()
	}
	if err := d.DB.Create(session).Error; err != nil {
		return fmt.Errorf("failed to save import session: %w", err)
	}
	return nil
}

// ListImportSessions returns the most recent sessions, newest first.
func (d *Database) ListImportSessions(limit int) ([]entities.ImportSession, error) {
	if limit <= 0 {
		limit = 20
	}
	var sessions []entities.ImportSession
	err := d.DB.Order("created_at DESC").Limit(limit).Find(&sessions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list import sessions: %w", err)
	}
	return sessions, nil
}

func (d *Database) GetImportSession(id string) (*entities.ImportSession, error) {
	var session entities.ImportSession
	err := d.DB.Where("uuid = ?", id).First(&session).Error
	if err != nil {
		return nil, err
	}
	return &session, nil
}
