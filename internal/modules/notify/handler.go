package notify

import (
	"net/http"

	jwtsvc "eventnomous/internal/pkg/jwt"
	"eventnomous/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	hub *Hub
	jwt *jwtsvc.Service
}

func NewHandler(hub *Hub, jwt *jwtsvc.Service) *Handler {
	return &Handler{hub: hub, jwt: jwt}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/ws", h.ServeWS)
}

// ServeWS handles GET /api/v1/ws?token=... Browsers cannot set an
// Authorization header on a WebSocket handshake, so the token rides in the
// query string.
func (h *Handler) ServeWS(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Missing token")
		return
	}

	claims, err := h.jwt.ValidateToken(token)
	if err != nil {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid token")
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}

	h.hub.ServeWS(conn, claims.UserID)
}
