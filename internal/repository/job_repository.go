package repository

import (
	"gorm.io/gorm"

	"github.com/yukikurage/job-coordination-api/internal/models"
)

// GormJobRepository is a GORM implementation of JobRepository
type GormJobRepository struct {
	db *gorm.DB
}

// NewJobRepository creates a new JobRepository
func NewJobRepository(db *gorm.DB) JobRepository {
	return &GormJobRepository{db: db}
}

// Create inserts a new job
func (r *GormJobRepository) Create(job *models.Job) error {
	return r.db.Create(job).Error
}

// FindByID finds a job by ID
func (r *GormJobRepository) FindByID(id uint64) (*models.Job, error) {
	var job models.Job
	if err := r.db.First(&job, id).Error; err != nil {
		return nil, err
	}
	return &job, nil
}

// FindAllNewestFirst lists every job ordered by creation time descending
func (r *GormJobRepository) FindAllNewestFirst() ([]models.Job, error) {
	var jobs []models.Job
	if err := r.db.Order("created_at DESC").Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

// FindAssignedTo lists jobs where the user is driver or crew, newest first
func (r *GormJobRepository) FindAssignedTo(username string) ([]models.Job, error) {
	var jobs []models.Job
	if err := r.db.
		Where("assigned_driver_username = ? OR assigned_crew_username = ?", username, username).
		Order("created_at DESC").
		Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

// Update persists changes to a job
func (r *GormJobRepository) Update(job *models.Job) error {
	return r.db.Save(job).Error
}
