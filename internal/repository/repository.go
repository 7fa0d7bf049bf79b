package repository

import (
	"github.com/yukikurage/job-coordination-api/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create inserts a new user. Duplicate usernames surface as
	// gorm.ErrDuplicatedKey via the unique index.
	Create(user *models.User) error

	// FindByUsername finds a user by username
	FindByUsername(username string) (*models.User, error)

	// FindActive lists all active users
	FindActive() ([]models.User, error)

	// FindActiveByRole lists active users with the given role
	FindActiveByRole(role models.Role) ([]models.User, error)
}

// JobRepository defines the interface for job data access
type JobRepository interface {
	// Create inserts a new job
	Create(job *models.Job) error

	// FindByID finds a job by ID
	FindByID(id uint64) (*models.Job, error)

	// FindAllNewestFirst lists every job ordered by creation time descending
	FindAllNewestFirst() ([]models.Job, error)

	// FindAssignedTo lists jobs where the user is driver or crew,
	// newest first
	FindAssignedTo(username string) ([]models.Job, error)

	// Update persists changes to a job
	Update(job *models.Job) error
}
