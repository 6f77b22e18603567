package database

import (
	"jobmatch_backend/internal/models"

	"gorm.io/gorm"
)

// Migrate installs the required extensions and brings the schema up to
// date. The vector extension must exist before the guidelines table is
// created, so the raw statements run first.
func Migrate(db *gorm.DB) error {
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return err
	}
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS vector`).Error; err != nil {
		return err
	}

	return db.AutoMigrate(
		&models.User{},
		&models.UserSkill{},
		&models.UserSkillAssess{},
		&models.Employer{},
		&models.EmployerJob{},
		&models.UserEmployerJob{},
		&models.SkillQuestion{},
		&models.Guideline{},
	)
}
