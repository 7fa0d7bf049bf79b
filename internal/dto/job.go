package dto

import (
	"time"

	"github.com/yukikurage/job-coordination-api/internal/models"
)

// JobResponse represents a job in API responses.
type JobResponse struct {
	ID                     uint64           `json:"id"`
	Title                  string           `json:"title"`
	MaterialType           string           `json:"materialType"`
	Quantity               string           `json:"quantity"`
	DestinationAddress     string           `json:"destinationAddress"`
	ContactPerson          string           `json:"contactPerson"`
	ContactPhone           string           `json:"contactPhone"`
	AssignedDriverUsername string           `json:"assignedDriverUsername"`
	AssignedCrewUsername   string           `json:"assignedCrewUsername"`
	AssignedEquipment      string           `json:"assignedEquipment"`
	Status                 models.JobStatus `json:"status"`
	CreatedByChief         string           `json:"createdByChief"`
	CreatedAt              time.Time        `json:"createdAt"`
	UpdatedAt              time.Time        `json:"updatedAt"`
}

// ToJobResponse converts a Job model to JobResponse.
func ToJobResponse(job models.Job) JobResponse {
	return JobResponse{
		ID:                     job.ID,
		Title:                  job.Title,
		MaterialType:           job.MaterialType,
		Quantity:               job.Quantity,
		DestinationAddress:     job.DestinationAddress,
		ContactPerson:          job.ContactPerson,
		ContactPhone:           job.ContactPhone,
		AssignedDriverUsername: job.AssignedDriverUsername,
		AssignedCrewUsername:   job.AssignedCrewUsername,
		AssignedEquipment:      job.AssignedEquipment,
		Status:                 job.Status,
		CreatedByChief:         job.CreatedByChief,
		CreatedAt:              job.CreatedAt,
		UpdatedAt:              job.UpdatedAt,
	}
}

// ToJobResponses converts a slice of jobs, preserving order.
func ToJobResponses(jobs []models.Job) []JobResponse {
	responses := make([]JobResponse, len(jobs))
	for i, job := range jobs {
		responses[i] = ToJobResponse(job)
	}
	return responses
}
