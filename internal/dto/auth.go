package dto

import (
	"github.com/yukikurage/job-coordination-api/internal/models"
	"github.com/yukikurage/job-coordination-api/internal/services"
)

// AuthResponse is returned after successful registration or login.
type AuthResponse struct {
	Token    string      `json:"token"`
	Username string      `json:"username"`
	Role     models.Role `json:"role"`
	FullName string      `json:"fullName"`
}

// ToAuthResponse converts an AuthResult to its API shape.
func ToAuthResponse(result *services.AuthResult) AuthResponse {
	return AuthResponse{
		Token:    result.Token,
		Username: result.Username,
		Role:     result.Role,
		FullName: result.FullName,
	}
}
