package authz

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yukikurage/job-coordination-api/internal/models"
)

func sampleJob() *models.Job {
	return &models.Job{
		ID:                     42,
		AssignedDriverUsername: "driver1",
		AssignedCrewUsername:   "crew1",
	}
}

func TestValidateJobAccess_ChiefAlwaysAllowed(t *testing.T) {
	job := sampleJob()

	for _, username := range []string{"chief1", "driver1", "someone-unrelated"} {
		require.NoError(t, ValidateJobAccess(job, username, models.RoleChief))
	}
}

func TestValidateJobAccess_AssignedOnly(t *testing.T) {
	job := sampleJob()

	tests := []struct {
		name     string
		username string
		role     models.Role
		allowed  bool
	}{
		{"assigned driver", "driver1", models.RoleDriver, true},
		{"assigned crew", "crew1", models.RoleCrew, true},
		{"unassigned driver", "driver2", models.RoleDriver, false},
		{"unassigned crew", "crew2", models.RoleCrew, false},
		{"crew using driver's name slot", "driver1", models.RoleCrew, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateJobAccess(job, tt.username, tt.role)
			if tt.allowed {
				require.NoError(t, err)
				return
			}

			var denied *DeniedError
			require.ErrorAs(t, err, &denied)
			require.Equal(t, job.ID, denied.JobID)
			require.Equal(t, tt.username, denied.Username)
		})
	}
}

func TestValidateJobUpdateAccess_SharesReadPolicy(t *testing.T) {
	job := sampleJob()

	require.NoError(t, ValidateJobUpdateAccess(job, "crew1", models.RoleCrew))
	require.NoError(t, ValidateJobUpdateAccess(job, "anyone", models.RoleChief))
	require.Error(t, ValidateJobUpdateAccess(job, "crew2", models.RoleCrew))
}

func TestAllowed_CapabilityTable(t *testing.T) {
	tests := []struct {
		op      Operation
		role    models.Role
		allowed bool
	}{
		{OpCreateJob, models.RoleChief, true},
		{OpCreateJob, models.RoleDriver, false},
		{OpCreateJob, models.RoleCrew, false},
		{OpListAllJobs, models.RoleChief, true},
		{OpListAllJobs, models.RoleDriver, false},
		{OpListAssignedJobs, models.RoleDriver, true},
		{OpListAssignedJobs, models.RoleCrew, true},
		{OpListAssignedJobs, models.RoleChief, false},
		{OpGetJob, models.RoleChief, true},
		{OpGetJob, models.RoleDriver, true},
		{OpGetJob, models.RoleCrew, true},
		{OpUpdateJobStatus, models.RoleCrew, true},
		{OpReadReferenceData, models.RoleDriver, true},
		{OpListAvailableUsers, models.RoleCrew, true},
	}

	for _, tt := range tests {
		require.Equal(t, tt.allowed, Allowed(tt.op, tt.role), "op=%s role=%s", tt.op, tt.role)
	}
}

func TestAllowed_UnknownRole(t *testing.T) {
	require.False(t, Allowed(OpCreateJob, models.Role("INTERN")))
	require.False(t, Allowed(Operation("job:delete"), models.RoleChief))
}
