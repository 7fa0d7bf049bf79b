package repository

import (
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/yukikurage/job-coordination-api/internal/models"
)

// mockDB opens GORM over a sqlmock connection so the generated SQL can be
// asserted against what the production postgres dialect emits.
func mockDB(t *testing.T) (JobRepository, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		conn.Close()
	})

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 conn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	return NewJobRepository(db), mock
}

func jobRows() *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows([]string{"id", "title", "status", "assigned_driver_username", "assigned_crew_username", "created_at"}).
		AddRow(2, "Second haul", "PENDING", "driver1", "crew1", now).
		AddRow(1, "Haul", "PENDING", "driver1", "crew2", now.Add(-time.Hour))
}

func TestFindAllNewestFirst_OrdersByCreatedAtDesc(t *testing.T) {
	repo, mock := mockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "jobs" ORDER BY created_at DESC`)).
		WillReturnRows(jobRows())

	jobs, err := repo.FindAllNewestFirst()
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	require.Equal(t, uint64(2), jobs[0].ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFindAssignedTo_MatchesDriverOrCrew(t *testing.T) {
	repo, mock := mockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "jobs" WHERE assigned_driver_username = $1 OR assigned_crew_username = $2 ORDER BY created_at DESC`)).
		WithArgs("driver1", "driver1").
		WillReturnRows(jobRows())

	jobs, err := repo.FindAssignedTo("driver1")
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestJobModel_IsAssignedTo(t *testing.T) {
	job := models.Job{
		AssignedDriverUsername: "driver1",
		AssignedCrewUsername:   "crew1",
	}

	require.True(t, job.IsAssignedTo("driver1"))
	require.True(t, job.IsAssignedTo("crew1"))
	require.False(t, job.IsAssignedTo("chief1"))
	require.False(t, job.IsAssignedTo(""))
}
