package repository

import (
	"gorm.io/gorm"

	"github.com/yukikurage/job-coordination-api/internal/models"
)

// GormUserRepository is a GORM implementation of UserRepository
type GormUserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &GormUserRepository{db: db}
}

// Create inserts a new user
func (r *GormUserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// FindByUsername finds a user by username
func (r *GormUserRepository) FindByUsername(username string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindActive lists all active users
func (r *GormUserRepository) FindActive() ([]models.User, error) {
	var users []models.User
	if err := r.db.Where("is_active = ?", true).Order("username ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// FindActiveByRole lists active users with the given role
func (r *GormUserRepository) FindActiveByRole(role models.Role) ([]models.User, error) {
	var users []models.User
	if err := r.db.Where("is_active = ? AND role = ?", true, role).Order("username ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
