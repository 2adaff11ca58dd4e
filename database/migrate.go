package database

import (
	"revhire_backend/internal/models"

	"gorm.io/gorm"
)

// Migrate creates or updates the schema for every persisted entity.
// uuid_generate_v4 defaults need the uuid-ossp extension.
func Migrate(db *gorm.DB) error {
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return err
	}

	return db.AutoMigrate(
		&models.JobSeeker{},
		&models.Employer{},
		&models.JobPosting{},
		&models.Resume{},
		&models.Application{},
	)
}
