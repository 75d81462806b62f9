package database

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/salonejobs/jobmatch/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the PostgreSQL connection and, when migrate is set, creates
// or updates the scraped_jobs table.
func Connect(dsn string, migrate bool) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	log.Info().Msg("Database connection established")

	if migrate {
		log.Info().Msg("Running migrations...")
		if err := db.AutoMigrate(&models.ScrapedJob{}); err != nil {
			return nil, fmt.Errorf("failed to migrate: %w", err)
		}
	}
	return db, nil
}
