// Package database opens the PostgreSQL connection and keeps the
// schema migrated.
// File: database/database.go
package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"hackathon-hub/config"
	"hackathon-hub/logger"
	"hackathon-hub/models"
)

// Init connects to PostgreSQL and runs auto-migrations for every
// persisted entity.
func Init(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.DBHost, cfg.DBUser, cfg.DBPass, cfg.DBName, cfg.DBPort)

	// TranslateError turns driver unique-violation failures into
	// gorm.ErrDuplicatedKey, which the workflows rely on.
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
		TranslateError: true,
	})
	if err != nil {
		logger.Error.Printf("Failed to connect to database on %s: %v", cfg.DBHost, err)
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	logger.Info.Printf("Connected to PostgreSQL (host=%s db=%s)", cfg.DBHost, cfg.DBName)

	if err := Migrate(db); err != nil {
		logger.Error.Printf("Failed to run migrations: %v", err)
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	logger.Info.Println("Auto-migrations complete")

	return db, nil
}

// Migrate applies the GORM auto-migrations. The Registration composite
// unique index and the OrganizerRequest user index are created here;
// the duplicate-prevention invariants depend on them.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.OrganizerRequest{},
		&models.Hackathon{},
		&models.Team{},
		&models.Registration{},
	)
}
