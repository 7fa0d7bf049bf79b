// Package httperrors renders the fixed API error body:
// {timestamp, status, error, message, path, details?}.
package httperrors

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the error body returned by every endpoint. Details is
// present only for field-validation failures, ordered "field: message".
type ErrorResponse struct {
	Timestamp time.Time `json:"timestamp"`
	Status    int       `json:"status"`
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	Path      string    `json:"path"`
	Details   []string  `json:"details,omitempty"`
}

func respond(c *gin.Context, status int, label, message string, details []string) {
	c.AbortWithStatusJSON(status, ErrorResponse{
		Timestamp: time.Now(),
		Status:    status,
		Error:     label,
		Message:   message,
		Path:      c.Request.URL.Path,
		Details:   details,
	})
}

// BadRequest sends a 400 response.
func BadRequest(c *gin.Context, label, message string) {
	respond(c, http.StatusBadRequest, label, message, nil)
}

// BadRequestWithDetails sends a 400 response listing every violated field.
func BadRequestWithDetails(c *gin.Context, label, message string, details []string) {
	respond(c, http.StatusBadRequest, label, message, details)
}

// Unauthorized sends a 401 response.
func Unauthorized(c *gin.Context, message string) {
	respond(c, http.StatusUnauthorized, "Authentication Failed", message, nil)
}

// Forbidden sends a 403 response.
func Forbidden(c *gin.Context, message string) {
	respond(c, http.StatusForbidden, "Access Denied", message, nil)
}

// NotFound sends a 404 response.
func NotFound(c *gin.Context, label, message string) {
	respond(c, http.StatusNotFound, label, message, nil)
}

// Conflict sends a 409 response.
func Conflict(c *gin.Context, label, message string) {
	respond(c, http.StatusConflict, label, message, nil)
}

// Internal sends a generic 500 response without leaking internal detail.
func Internal(c *gin.Context) {
	respond(c, http.StatusInternalServerError, "Internal Server Error", "An unexpected error occurred", nil)
}
