package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yukikurage/job-coordination-api/internal/authz"
	"github.com/yukikurage/job-coordination-api/internal/httperrors"
	"github.com/yukikurage/job-coordination-api/internal/models"
	"github.com/yukikurage/job-coordination-api/internal/token"
)

const (
	ContextKeyUsername = "username"
	ContextKeyRole     = "role"
)

// RequireAuth verifies the bearer token and stores the requester identity
// (username, role) in the request context.
func RequireAuth(tokens *token.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			httperrors.Unauthorized(c, "Missing or malformed Authorization header")
			return
		}

		claims, err := tokens.Verify(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			httperrors.Unauthorized(c, "Invalid or expired token")
			return
		}

		c.Set(ContextKeyUsername, claims.Subject)
		c.Set(ContextKeyRole, claims.Role)
		c.Next()
	}
}

// RequireCapability gates an operation by role using the capability table.
// Per-job ownership checks still run in the lifecycle service.
func RequireCapability(op authz.Operation) gin.HandlerFunc {
	return func(c *gin.Context) {
		_, role, ok := GetRequester(c)
		if !ok {
			httperrors.Unauthorized(c, "Authentication required")
			return
		}

		if !authz.Allowed(op, role) {
			httperrors.Forbidden(c, "You do not have permission to access this resource")
			return
		}

		c.Next()
	}
}

// GetRequester retrieves the requester identity set by RequireAuth.
func GetRequester(c *gin.Context) (string, models.Role, bool) {
	usernameVal, exists := c.Get(ContextKeyUsername)
	if !exists {
		return "", "", false
	}
	roleVal, exists := c.Get(ContextKeyRole)
	if !exists {
		return "", "", false
	}

	username, ok := usernameVal.(string)
	if !ok {
		return "", "", false
	}
	role, ok := roleVal.(models.Role)
	if !ok {
		return "", "", false
	}

	return username, role, true
}
