package database

import (
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"society-service/internal/domain/models"
	"society-service/internal/infrastructure/config"
	Logger "society-service/pkg/logger"
)

// Migrate creates or updates the schema for all entities
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Resident{},
		&models.Staff{},
		&models.Admin{},
		&models.Complaint{},
		&models.MaintenanceTask{},
		&models.AmenityBooking{},
		&models.SkipDelivery{},
		&models.Poll{},
		&models.PollOption{},
		&models.Vote{},
		&models.Announcement{},
	)
}

// SeedAdmin upserts the default administrator account. The password comes
// from configuration and only its bcrypt hash is stored.
func SeedAdmin(db *gorm.DB, cfg *config.Config) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.DefaultAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := models.Admin{
		Username:     "admin",
		PasswordHash: string(hash),
	}
	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "username"}},
		DoUpdates: clause.AssignmentColumns([]string{"password_hash"}),
	}).Create(&admin).Error; err != nil {
		return err
	}

	Logger.Info("admin account seeded")
	return nil
}
