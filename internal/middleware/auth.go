package middleware

import (
	"net/http"
	"strings"

	jwtsvc "eventnomous/internal/pkg/jwt"
	"eventnomous/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// JWTAuth validates the Bearer token and stores user_id and role in the
// request context for downstream handlers.
func JWTAuth(jwt *jwtsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" {
			response.AbortError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Missing Authorization header")
			return
		}

		if !strings.HasPrefix(h, "Bearer ") {
			response.AbortError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid Authorization header")
			return
		}

		tokenStr := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
		if tokenStr == "" {
			response.AbortError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Empty token")
			return
		}

		claims, err := jwt.ValidateToken(tokenStr)
		if err != nil {
			response.AbortError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid token")
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("role", claims.Role)

		c.Next()
	}
}
