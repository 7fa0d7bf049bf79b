package services

import (
	"fmt"

	"github.com/yukikurage/job-coordination-api/internal/models"
	"github.com/yukikurage/job-coordination-api/internal/reference"
	"github.com/yukikurage/job-coordination-api/internal/repository"
)

// ReferenceService exposes the fixed material/equipment catalogs and the
// active-user lists used by assignment pickers.
type ReferenceService struct {
	data     *reference.Data
	userRepo repository.UserRepository
}

// NewReferenceService creates a new ReferenceService.
func NewReferenceService(data *reference.Data, userRepo repository.UserRepository) *ReferenceService {
	return &ReferenceService{
		data:     data,
		userRepo: userRepo,
	}
}

// Materials returns the configured material names.
func (s *ReferenceService) Materials() []string {
	return s.data.Materials()
}

// Equipment returns the configured equipment names.
func (s *ReferenceService) Equipment() []string {
	return s.data.Equipment()
}

// AvailableUsers lists active users, filtered by role when one is given.
func (s *ReferenceService) AvailableUsers(role *models.Role) ([]models.User, error) {
	var (
		users []models.User
		err   error
	)
	if role != nil {
		users, err = s.userRepo.FindActiveByRole(*role)
	} else {
		users, err = s.userRepo.FindActive()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list available users: %w", err)
	}
	return users, nil
}
