package profile

import (
	"errors"
	"net/http"

	"fitjourney/internal/pkg/response"
	"fitjourney/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(protected *gin.RouterGroup) {
	protected.GET("/profile", h.Get)
	protected.PUT("/profile", h.Upsert)
}

func (h *Handler) Get(c *gin.Context) {
	userID := c.GetString("user_id")

	p, err := h.service.Get(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Display profile not set")
			return
		}
		response.Error(c, http.StatusInternalServerError, "PROFILE_FAILED", "Failed to load display profile")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"profile": p})
}

func (h *Handler) Upsert(c *gin.Context) {
	userID := c.GetString("user_id")

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if fields := validator.Validate(req); fields != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid profile fields")
		return
	}

	p, err := h.service.Upsert(c.Request.Context(), userID, req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "UPDATE_FAILED", "Failed to save display profile")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"profile": p})
}
