package database

import (
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/yukikurage/job-coordination-api/internal/models"
)

// Seed creates sample users for development environments. It is a no-op
// when any user already exists.
func Seed(db *gorm.DB, logger *zap.Logger) error {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count users: %w", err)
	}
	if count > 0 {
		logger.Info("users already exist, skipping seed")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash seed password: %w", err)
	}

	users := []models.User{
		{Username: "chief1", FullName: "John Smith", Role: models.RoleChief, IsActive: true, PasswordHash: string(hash)},
		{Username: "chief2", FullName: "Sarah Johnson", Role: models.RoleChief, IsActive: true, PasswordHash: string(hash)},
		{Username: "driver1", FullName: "Mike Wilson", Role: models.RoleDriver, IsActive: true, PasswordHash: string(hash)},
		{Username: "driver2", FullName: "Lisa Brown", Role: models.RoleDriver, IsActive: true, PasswordHash: string(hash)},
		{Username: "driver3", FullName: "Tom Davis", Role: models.RoleDriver, IsActive: true, PasswordHash: string(hash)},
		{Username: "crew1", FullName: "Alex Martinez", Role: models.RoleCrew, IsActive: true, PasswordHash: string(hash)},
		{Username: "crew2", FullName: "Emma Garcia", Role: models.RoleCrew, IsActive: true, PasswordHash: string(hash)},
		{Username: "crew3", FullName: "Ryan Thompson", Role: models.RoleCrew, IsActive: true, PasswordHash: string(hash)},
		{Username: "crew4", FullName: "Jessica Lee", Role: models.RoleCrew, IsActive: true, PasswordHash: string(hash)},
	}

	if err := db.Create(&users).Error; err != nil {
		return fmt.Errorf("failed to create seed users: %w", err)
	}

	logger.Info("seeded sample users", zap.Int("count", len(users)))
	return nil
}
