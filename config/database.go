package config

import (
	"fmt"
	"time"

	"github.com/Govind-619/Shelfnotes/models"
	"github.com/Govind-619/Shelfnotes/utils"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	maxOpenConns    = 10
	maxIdleConns    = 5
	connMaxLifetime = 30 * time.Minute

	slowQueryThreshold = 200 * time.Millisecond
)

// InitDB opens the connection pool once for the whole process. With
// AutoMigrate set, missing tables are created before it returns.
func InitDB(config *Config) (*gorm.DB, error) {
	logLevel := logger.Warn
	if config.IsProduction() {
		logLevel = logger.Silent
	}

	db, err := gorm.Open(postgres.Open(config.DSN()), &gorm.Config{
		Logger: logger.New(utils.GormLogWriter{}, logger.Config{
			SlowThreshold:             slowQueryThreshold,
			LogLevel:                  logLevel,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database handle: %w", err)
	}
	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)

	if config.AutoMigrate {
		if err := CreateTables(db); err != nil {
			return nil, err
		}
	}

	return db, nil
}

// CreateTables creates the books and notes tables when they are missing.
// Existing tables are left as they are.
func CreateTables(db *gorm.DB) error {
	for _, model := range []interface{}{&models.Book{}, &models.Note{}} {
		if db.Migrator().HasTable(model) {
			continue
		}
		if err := db.Migrator().CreateTable(model); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}
	return nil
}
