package models

import "time"

type JobStatus string

const (
	JobStatusPending    JobStatus = "PENDING"
	JobStatusInProgress JobStatus = "IN_PROGRESS"
	JobStatusCompleted  JobStatus = "COMPLETED"
	JobStatusCancelled  JobStatus = "CANCELLED"
)

// Valid reports whether the status is one of the four known values.
func (s JobStatus) Valid() bool {
	switch s {
	case JobStatusPending, JobStatusInProgress, JobStatusCompleted, JobStatusCancelled:
		return true
	}
	return false
}

// Job is a material-delivery job. Driver, crew and equipment are referenced
// by value and validated only at creation time; a driver deactivated later
// stays referenced by old jobs.
type Job struct {
	ID                     uint64    `gorm:"primarykey" json:"id"`
	Title                  string    `gorm:"type:varchar(200);not null" json:"title"`
	MaterialType           string    `gorm:"type:varchar(50);not null" json:"materialType"`
	Quantity               string    `gorm:"type:varchar(100);not null" json:"quantity"`
	DestinationAddress     string    `gorm:"type:varchar(500);not null" json:"destinationAddress"`
	ContactPerson          string    `gorm:"type:varchar(100);not null" json:"contactPerson"`
	ContactPhone           string    `gorm:"type:varchar(20);not null" json:"contactPhone"`
	AssignedDriverUsername string    `gorm:"type:varchar(50);not null;index" json:"assignedDriverUsername"`
	AssignedCrewUsername   string    `gorm:"type:varchar(50);not null;index" json:"assignedCrewUsername"`
	AssignedEquipment      string    `gorm:"type:varchar(50);not null" json:"assignedEquipment"`
	Status                 JobStatus `gorm:"type:varchar(20);not null;default:'PENDING'" json:"status"`
	CreatedByChief         string    `gorm:"type:varchar(50);not null" json:"createdByChief"`
	CreatedAt              time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt              time.Time `json:"updatedAt"`
}

// IsAssignedTo reports whether the username is the job's driver or crew.
func (j *Job) IsAssignedTo(username string) bool {
	return j.AssignedDriverUsername == username || j.AssignedCrewUsername == username
}
