package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yukikurage/job-coordination-api/internal/authz"
	"github.com/yukikurage/job-coordination-api/internal/dto"
	"github.com/yukikurage/job-coordination-api/internal/httperrors"
	"github.com/yukikurage/job-coordination-api/internal/middleware"
	"github.com/yukikurage/job-coordination-api/internal/models"
	"github.com/yukikurage/job-coordination-api/internal/services"
	"github.com/yukikurage/job-coordination-api/internal/validation"
)

// JobHandler coordinates job-related HTTP handlers.
type JobHandler struct {
	jobService *services.JobService
}

// NewJobHandler creates a new JobHandler.
func NewJobHandler(jobService *services.JobService) *JobHandler {
	return &JobHandler{
		jobService: jobService,
	}
}

// Create creates a new job. Role-gated to chiefs by the capability
// middleware.
func (h *JobHandler) Create(c *gin.Context) {
	type CreateJobRequest struct {
		Title                  string `json:"title" binding:"required,max=200"`
		MaterialType           string `json:"materialType" binding:"required,max=50"`
		Quantity               string `json:"quantity" binding:"required,max=100"`
		DestinationAddress     string `json:"destinationAddress" binding:"required,max=500"`
		ContactPerson          string `json:"contactPerson" binding:"required,max=100"`
		ContactPhone           string `json:"contactPhone" binding:"required,max=20"`
		AssignedDriverUsername string `json:"assignedDriverUsername" binding:"required,max=50"`
		AssignedCrewUsername   string `json:"assignedCrewUsername" binding:"required,max=50"`
		AssignedEquipment      string `json:"assignedEquipment" binding:"required,max=50"`
	}

	var req CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperrors.BadRequestWithDetails(c, "Validation Failed", "Invalid request body", validation.Details(err))
		return
	}

	username, _, ok := middleware.GetRequester(c)
	if !ok {
		httperrors.Unauthorized(c, "Authentication required")
		return
	}

	job, err := h.jobService.CreateJob(services.CreateJobInput{
		Title:                  req.Title,
		MaterialType:           req.MaterialType,
		Quantity:               req.Quantity,
		DestinationAddress:     req.DestinationAddress,
		ContactPerson:          req.ContactPerson,
		ContactPhone:           req.ContactPhone,
		AssignedDriverUsername: req.AssignedDriverUsername,
		AssignedCrewUsername:   req.AssignedCrewUsername,
		AssignedEquipment:      req.AssignedEquipment,
	}, username)
	if err != nil {
		respondJobError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToJobResponse(*job))
}

// ListAll returns every job, newest first. Chief only.
func (h *JobHandler) ListAll(c *gin.Context) {
	jobs, err := h.jobService.GetAllJobs()
	if err != nil {
		respondJobError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToJobResponses(jobs))
}

// ListMine returns the requester's assigned jobs, newest first.
func (h *JobHandler) ListMine(c *gin.Context) {
	username, _, ok := middleware.GetRequester(c)
	if !ok {
		httperrors.Unauthorized(c, "Authentication required")
		return
	}

	jobs, err := h.jobService.GetAssignedJobs(username)
	if err != nil {
		respondJobError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToJobResponses(jobs))
}

// GetByID returns a single job after ownership checks.
func (h *JobHandler) GetByID(c *gin.Context) {
	jobID, ok := jobIDParam(c)
	if !ok {
		return
	}

	username, role, ok := middleware.GetRequester(c)
	if !ok {
		httperrors.Unauthorized(c, "Authentication required")
		return
	}

	job, err := h.jobService.GetJobByID(jobID, username, role)
	if err != nil {
		respondJobError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToJobResponse(*job))
}

// UpdateStatus sets a job's status after ownership checks.
func (h *JobHandler) UpdateStatus(c *gin.Context) {
	type UpdateJobStatusRequest struct {
		Status string `json:"status" binding:"required,oneof=PENDING IN_PROGRESS COMPLETED CANCELLED"`
	}

	jobID, ok := jobIDParam(c)
	if !ok {
		return
	}

	var req UpdateJobStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperrors.BadRequestWithDetails(c, "Validation Failed", "Invalid request body", validation.Details(err))
		return
	}

	username, role, ok := middleware.GetRequester(c)
	if !ok {
		httperrors.Unauthorized(c, "Authentication required")
		return
	}

	job, err := h.jobService.UpdateJobStatus(jobID, models.JobStatus(req.Status), username, role)
	if err != nil {
		respondJobError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToJobResponse(*job))
}

func jobIDParam(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperrors.BadRequest(c, "Validation Failed", "Invalid job ID")
		return 0, false
	}
	return id, true
}

func respondJobError(c *gin.Context, err error) {
	var denied *authz.DeniedError
	var assignment *services.AssignmentValidationError

	switch {
	case errors.Is(err, services.ErrJobNotFound):
		httperrors.NotFound(c, "Job Not Found", err.Error())
	case errors.As(err, &denied):
		httperrors.Forbidden(c, denied.Error())
	case errors.As(err, &assignment):
		httperrors.BadRequestWithDetails(c, "Invalid Job Assignment", assignment.Error(), assignment.Details())
	default:
		httperrors.Internal(c)
	}
}
