package session

import (
	"log"
	"net/http"

	"fitjourney/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Dev setting; tighten origin checks before exposing publicly.
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Handler streams session-state changes over a websocket.
type Handler struct {
	hub        *Hub
	jwtService *jwt.Service
}

func NewHandler(hub *Hub, jwtService *jwt.Service) *Handler {
	return &Handler{hub: hub, jwtService: jwtService}
}

func (h *Handler) RegisterRoutes(v1 *gin.RouterGroup) {
	v1.GET("/session/watch", h.Watch)
}

// Watch upgrades the connection and pushes the current session state,
// then an event for every subsequent sign-in or sign-out of this user.
//
// Endpoint: GET /session/watch?token=JWT_TOKEN
// Token travels in a query parameter; websocket clients cannot set headers.
func (h *Handler) Watch(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Token is required. Use ?token=YOUR_JWT_TOKEN",
		})
		return
	}

	claims, err := h.jwtService.ValidateToken(token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Invalid or expired token",
		})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("WebSocket upgrade failed: %v", err)
		return
	}

	h.hub.Register(claims.UserID, conn)
	defer h.hub.Unregister(claims.UserID, conn)

	// Snapshot of the current state on connect.
	if err := conn.WriteJSON(SignedIn(claims.UserID, claims.Email)); err != nil {
		return
	}

	// Hold the connection open; we only push, never expect messages.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
