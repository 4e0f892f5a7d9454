package middleware

import (
	"net/http"

	"eventnomous/internal/domain"
	"eventnomous/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// RequireRole ensures the authenticated user has the given role.
func RequireRole(required domain.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists {
			response.AbortError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Role not found in token")
			return
		}

		if role.(string) != string(required) {
			response.AbortError(c, http.StatusForbidden, "FORBIDDEN", "Access denied: insufficient permissions")
			return
		}

		c.Next()
	}
}

// AdminOnly restricts an endpoint to admins.
func AdminOnly() gin.HandlerFunc {
	return RequireRole(domain.RoleAdmin)
}
