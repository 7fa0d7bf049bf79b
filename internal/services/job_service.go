package services

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/yukikurage/job-coordination-api/internal/authz"
	"github.com/yukikurage/job-coordination-api/internal/models"
	"github.com/yukikurage/job-coordination-api/internal/reference"
	"github.com/yukikurage/job-coordination-api/internal/repository"
)

var (
	ErrJobNotFound = errors.New("job not found")

	ErrInvalidMaterial         = errors.New("invalid material type")
	ErrInvalidEquipment        = errors.New("invalid equipment")
	ErrInvalidDriverAssignment = errors.New("invalid driver assignment")
	ErrInvalidCrewAssignment   = errors.New("invalid crew assignment")
)

// AssignmentViolation is one failed creation-time referential check.
type AssignmentViolation struct {
	Field   string
	Kind    error
	Message string
}

// AssignmentValidationError collects every violated creation-time check so
// the caller can report each offending field, not just the first.
type AssignmentValidationError struct {
	Violations []AssignmentViolation
}

func (e *AssignmentValidationError) Error() string {
	msgs := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		msgs[i] = v.Message
	}
	return strings.Join(msgs, "; ")
}

// Unwrap exposes each violation kind so errors.Is can match the specific
// failed check.
func (e *AssignmentValidationError) Unwrap() []error {
	kinds := make([]error, len(e.Violations))
	for i, v := range e.Violations {
		kinds[i] = v.Kind
	}
	return kinds
}

// Details renders the violations as "field: message" strings in check order.
func (e *AssignmentValidationError) Details() []string {
	details := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		details[i] = fmt.Sprintf("%s: %s", v.Field, v.Message)
	}
	return details
}

// JobService orchestrates job creation, retrieval and status updates.
type JobService struct {
	jobRepo  repository.JobRepository
	userRepo repository.UserRepository
	refData  *reference.Data
}

// NewJobService creates a new JobService.
func NewJobService(jobRepo repository.JobRepository, userRepo repository.UserRepository, refData *reference.Data) *JobService {
	return &JobService{
		jobRepo:  jobRepo,
		userRepo: userRepo,
		refData:  refData,
	}
}

// CreateJobInput represents input for creating a job.
type CreateJobInput struct {
	Title                  string
	MaterialType           string
	Quantity               string
	DestinationAddress     string
	ContactPerson          string
	ContactPhone           string
	AssignedDriverUsername string
	AssignedCrewUsername   string
	AssignedEquipment      string
}

// CreateJob validates the referential fields against reference data and the
// identity store, then persists a PENDING job. All four checks run so every
// violated field is reported. The CHIEF role gate is the caller's concern.
func (s *JobService) CreateJob(input CreateJobInput, creatorUsername string) (*models.Job, error) {
	var violations []AssignmentViolation

	if !s.refData.IsValidMaterial(input.MaterialType) {
		violations = append(violations, AssignmentViolation{
			Field:   "materialType",
			Kind:    ErrInvalidMaterial,
			Message: fmt.Sprintf("invalid material type '%s'", input.MaterialType),
		})
	}

	if !s.refData.IsValidEquipment(input.AssignedEquipment) {
		violations = append(violations, AssignmentViolation{
			Field:   "assignedEquipment",
			Kind:    ErrInvalidEquipment,
			Message: fmt.Sprintf("invalid equipment '%s'", input.AssignedEquipment),
		})
	}

	driverOK, err := s.hasActiveRole(input.AssignedDriverUsername, models.RoleDriver)
	if err != nil {
		return nil, err
	}
	if !driverOK {
		violations = append(violations, AssignmentViolation{
			Field:   "assignedDriverUsername",
			Kind:    ErrInvalidDriverAssignment,
			Message: fmt.Sprintf("assigned driver '%s' does not exist or is not a DRIVER", input.AssignedDriverUsername),
		})
	}

	crewOK, err := s.hasActiveRole(input.AssignedCrewUsername, models.RoleCrew)
	if err != nil {
		return nil, err
	}
	if !crewOK {
		violations = append(violations, AssignmentViolation{
			Field:   "assignedCrewUsername",
			Kind:    ErrInvalidCrewAssignment,
			Message: fmt.Sprintf("assigned crew '%s' does not exist or is not a CREW member", input.AssignedCrewUsername),
		})
	}

	if len(violations) > 0 {
		return nil, &AssignmentValidationError{Violations: violations}
	}

	job := &models.Job{
		Title:                  input.Title,
		MaterialType:           input.MaterialType,
		Quantity:               input.Quantity,
		DestinationAddress:     input.DestinationAddress,
		ContactPerson:          input.ContactPerson,
		ContactPhone:           input.ContactPhone,
		AssignedDriverUsername: input.AssignedDriverUsername,
		AssignedCrewUsername:   input.AssignedCrewUsername,
		AssignedEquipment:      input.AssignedEquipment,
		Status:                 models.JobStatusPending,
		CreatedByChief:         creatorUsername,
	}

	if err := s.jobRepo.Create(job); err != nil {
		return nil, fmt.Errorf("failed to create job: %w", err)
	}

	return job, nil
}

// GetAllJobs returns every job, newest first. Caller-restricted to chiefs.
func (s *JobService) GetAllJobs() ([]models.Job, error) {
	jobs, err := s.jobRepo.FindAllNewestFirst()
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	return jobs, nil
}

// GetAssignedJobs returns jobs where the user is driver or crew, newest
// first. Caller-restricted to drivers and crew.
func (s *JobService) GetAssignedJobs(username string) ([]models.Job, error) {
	jobs, err := s.jobRepo.FindAssignedTo(username)
	if err != nil {
		return nil, fmt.Errorf("failed to list assigned jobs: %w", err)
	}
	return jobs, nil
}

// GetJobByID resolves a job and checks read access for the requester.
func (s *JobService) GetJobByID(jobID uint64, username string, role models.Role) (*models.Job, error) {
	job, err := s.findJob(jobID)
	if err != nil {
		return nil, err
	}

	if err := authz.ValidateJobAccess(job, username, role); err != nil {
		return nil, err
	}

	return job, nil
}

// UpdateJobStatus sets a job's status after checking update access. Any of
// the four status values is reachable from any other; there is no enforced
// state machine.
func (s *JobService) UpdateJobStatus(jobID uint64, newStatus models.JobStatus, username string, role models.Role) (*models.Job, error) {
	job, err := s.findJob(jobID)
	if err != nil {
		return nil, err
	}

	if err := authz.ValidateJobUpdateAccess(job, username, role); err != nil {
		return nil, err
	}

	job.Status = newStatus
	if err := s.jobRepo.Update(job); err != nil {
		return nil, fmt.Errorf("failed to update job status: %w", err)
	}

	return job, nil
}

func (s *JobService) findJob(jobID uint64) (*models.Job, error) {
	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, fmt.Errorf("failed to find job: %w", err)
	}
	return job, nil
}

// hasActiveRole reports whether the username resolves to an active user
// with exactly the expected role.
func (s *JobService) hasActiveRole(username string, expected models.Role) (bool, error) {
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to find user: %w", err)
	}
	return user.IsActive && user.Role == expected, nil
}
