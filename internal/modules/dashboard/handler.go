package dashboard

import (
	"net/http"

	"eventnomous/internal/domain"
	"eventnomous/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// RegisterRoutes registers dashboard routes (protected)
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/dashboard/navigation", h.GetNavigation)
}

// GetNavigation handles GET /api/v1/dashboard/navigation. The role comes
// from the JWT claims set by the auth middleware.
func (h *Handler) GetNavigation(c *gin.Context) {
	role := domain.UserRole(c.GetString("role"))

	response.Success(c, http.StatusOK, gin.H{
		"role":       role,
		"navigation": NavigationFor(role),
	})
}
