package dto

import "github.com/yukikurage/job-coordination-api/internal/models"

// MaterialResponse represents one material in API responses.
type MaterialResponse struct {
	Name string `json:"name"`
}

// EquipmentResponse represents one piece of equipment in API responses.
type EquipmentResponse struct {
	Name string `json:"name"`
}

// AvailableUserResponse represents a user offered for job assignment.
type AvailableUserResponse struct {
	Username string      `json:"username"`
	FullName string      `json:"fullName"`
	Role     models.Role `json:"role"`
}

// ToMaterialResponses wraps material names, preserving order.
func ToMaterialResponses(names []string) []MaterialResponse {
	responses := make([]MaterialResponse, len(names))
	for i, n := range names {
		responses[i] = MaterialResponse{Name: n}
	}
	return responses
}

// ToEquipmentResponses wraps equipment names, preserving order.
func ToEquipmentResponses(names []string) []EquipmentResponse {
	responses := make([]EquipmentResponse, len(names))
	for i, n := range names {
		responses[i] = EquipmentResponse{Name: n}
	}
	return responses
}

// ToAvailableUserResponses converts users to their assignment-picker shape.
func ToAvailableUserResponses(users []models.User) []AvailableUserResponse {
	responses := make([]AvailableUserResponse, len(users))
	for i, u := range users {
		responses[i] = AvailableUserResponse{
			Username: u.Username,
			FullName: u.FullName,
			Role:     u.Role,
		}
	}
	return responses
}
