package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yukikurage/job-coordination-api/internal/dto"
	"github.com/yukikurage/job-coordination-api/internal/httperrors"
	"github.com/yukikurage/job-coordination-api/internal/models"
	"github.com/yukikurage/job-coordination-api/internal/services"
	"github.com/yukikurage/job-coordination-api/internal/validation"
)

// AuthHandler coordinates authentication-related HTTP handlers.
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Register creates a new user and returns a token.
func (h *AuthHandler) Register(c *gin.Context) {
	type RegisterRequest struct {
		Username string `json:"username" binding:"required,min=3,max=50"`
		FullName string `json:"fullName" binding:"required,max=100"`
		Password string `json:"password" binding:"required,min=6"`
		Role     string `json:"role" binding:"required,oneof=CHIEF DRIVER CREW"`
	}

	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperrors.BadRequestWithDetails(c, "Validation Failed", "Invalid request body", validation.Details(err))
		return
	}

	result, err := h.authService.Register(services.RegisterInput{
		Username: req.Username,
		FullName: req.FullName,
		Password: req.Password,
		Role:     models.Role(req.Role),
	})
	if err != nil {
		respondAuthError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToAuthResponse(result))
}

// Login verifies credentials and returns a token.
func (h *AuthHandler) Login(c *gin.Context) {
	type LoginRequest struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperrors.BadRequestWithDetails(c, "Validation Failed", "Invalid request body", validation.Details(err))
		return
	}

	result, err := h.authService.Login(services.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		respondAuthError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAuthResponse(result))
}

func respondAuthError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrUsernameTaken):
		httperrors.Conflict(c, "Duplicate Username", err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		httperrors.Unauthorized(c, "Invalid credentials provided")
	case errors.Is(err, services.ErrInvalidRole):
		httperrors.BadRequest(c, "Validation Failed", err.Error())
	default:
		httperrors.Internal(c)
	}
}
