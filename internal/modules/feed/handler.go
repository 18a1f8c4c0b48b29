package feed

import (
	"net/http"

	"fitjourney/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(protected *gin.RouterGroup) {
	protected.GET("/feed", h.Feed)
}

// Feed lists complete progress cards across all users.
// Supported orderings: ?sort=newest|oldest|most_progress
func (h *Handler) Feed(c *gin.Context) {
	key := ParseSortKey(c.Query("sort"))

	cards, err := h.service.Feed(c.Request.Context(), key)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FEED_FAILED", "Failed to load community feed")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"sort":  key,
		"cards": cards,
	})
}
