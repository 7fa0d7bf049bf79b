package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yukikurage/job-coordination-api/internal/dto"
	"github.com/yukikurage/job-coordination-api/internal/httperrors"
	"github.com/yukikurage/job-coordination-api/internal/models"
	"github.com/yukikurage/job-coordination-api/internal/services"
)

// ReferenceHandler serves the fixed catalogs and assignment-picker lists.
type ReferenceHandler struct {
	referenceService *services.ReferenceService
}

// NewReferenceHandler creates a new ReferenceHandler.
func NewReferenceHandler(referenceService *services.ReferenceService) *ReferenceHandler {
	return &ReferenceHandler{
		referenceService: referenceService,
	}
}

// Materials returns the configured material names.
func (h *ReferenceHandler) Materials(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ToMaterialResponses(h.referenceService.Materials()))
}

// Equipment returns the configured equipment names.
func (h *ReferenceHandler) Equipment(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ToEquipmentResponses(h.referenceService.Equipment()))
}

// AvailableUsers lists active users, optionally filtered by role via the
// `role` query parameter.
func (h *ReferenceHandler) AvailableUsers(c *gin.Context) {
	var role *models.Role
	if raw := c.Query("role"); raw != "" {
		r := models.Role(raw)
		if !r.Valid() {
			httperrors.BadRequest(c, "Validation Failed", "role must be one of CHIEF, DRIVER, CREW")
			return
		}
		role = &r
	}

	users, err := h.referenceService.AvailableUsers(role)
	if err != nil {
		httperrors.Internal(c)
		return
	}

	c.JSON(http.StatusOK, dto.ToAvailableUserResponses(users))
}
