// Package authz is the pure authorization engine: given a job, a requester
// identity and an operation, it decides allow or deny. It performs no I/O.
package authz

import (
	"fmt"

	"github.com/yukikurage/job-coordination-api/internal/models"
)

// DeniedError reports that an authenticated user may not touch a job.
type DeniedError struct {
	JobID    uint64
	Username string
}

func (e *DeniedError) Error() string {
	return fmt.Sprintf("user '%s' is not authorized to access job %d", e.Username, e.JobID)
}

// ValidateJobAccess decides whether a requester may read a single job.
// Chiefs may access any job; drivers and crew only jobs assigned to them.
func ValidateJobAccess(job *models.Job, username string, role models.Role) error {
	if role == models.RoleChief {
		return nil
	}
	if !job.IsAssignedTo(username) {
		return &DeniedError{JobID: job.ID, Username: username}
	}
	return nil
}

// ValidateJobUpdateAccess decides whether a requester may change a job's
// status. Update access deliberately shares the read-access policy.
func ValidateJobUpdateAccess(job *models.Job, username string, role models.Role) error {
	return ValidateJobAccess(job, username, role)
}

// Operation classifies the API operations gated by role.
type Operation string

const (
	OpCreateJob          Operation = "job:create"
	OpListAllJobs        Operation = "job:list-all"
	OpListAssignedJobs   Operation = "job:list-assigned"
	OpGetJob             Operation = "job:get"
	OpUpdateJobStatus    Operation = "job:update-status"
	OpReadReferenceData  Operation = "reference:read"
	OpListAvailableUsers Operation = "users:list-available"
)

// capabilities maps (operation, role) to allowed. Per-job ownership checks
// still happen in the lifecycle service; this table only gates by role.
var capabilities = map[Operation]map[models.Role]bool{
	OpCreateJob:   {models.RoleChief: true},
	OpListAllJobs: {models.RoleChief: true},
	OpListAssignedJobs: {
		models.RoleDriver: true,
		models.RoleCrew:   true,
	},
	OpGetJob: {
		models.RoleChief:  true,
		models.RoleDriver: true,
		models.RoleCrew:   true,
	},
	OpUpdateJobStatus: {
		models.RoleChief:  true,
		models.RoleDriver: true,
		models.RoleCrew:   true,
	},
	OpReadReferenceData: {
		models.RoleChief:  true,
		models.RoleDriver: true,
		models.RoleCrew:   true,
	},
	OpListAvailableUsers: {
		models.RoleChief:  true,
		models.RoleDriver: true,
		models.RoleCrew:   true,
	},
}

// Allowed reports whether the role may invoke the operation at all.
func Allowed(op Operation, role models.Role) bool {
	return capabilities[op][role]
}
