package card

import (
	"errors"
	"net/http"

	"fitjourney/internal/modules/media"
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
	cards := protected.Group("/cards")
	{
		cards.POST("", h.Create)
		cards.GET("", h.ListMine)
		cards.GET("/progress", h.Progress)
		cards.PATCH("/:id", h.Update)
		cards.DELETE("/:id", h.Delete)
	}
}

// Create accepts a multipart form: measurement fields plus "before" and
// "after" image files.
func (h *Handler) Create(c *gin.Context) {
	ownerID := c.GetString("user_id")

	var req CreateCardRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid form data")
		return
	}

	before, beforeClose, ok := formImage(c, "before")
	if !ok {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Both before and after images are required")
		return
	}
	defer beforeClose()

	after, afterClose, ok := formImage(c, "after")
	if !ok {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Both before and after images are required")
		return
	}
	defer afterClose()

	card, err := h.service.Create(c.Request.Context(), ownerID, req, ImageUploads{
		Before: before,
		After:  after,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Name and both images are required")
		case errors.Is(err, media.ErrEmptyFile), errors.Is(err, media.ErrInvalidMimeType):
			response.Error(c, http.StatusBadRequest, "INVALID_FILE_TYPE", "Only image files are allowed")
		case errors.Is(err, media.ErrFileTooLarge):
			response.Error(c, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", "Image exceeds the size limit")
		default:
			response.Error(c, http.StatusInternalServerError, "CREATE_FAILED", "Failed to create progress card")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"card": card})
}

func (h *Handler) ListMine(c *gin.Context) {
	ownerID := c.GetString("user_id")

	cards, err := h.service.ListMine(c.Request.Context(), ownerID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", "Failed to load progress cards")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"cards": cards})
}

func (h *Handler) Progress(c *gin.Context) {
	ownerID := c.GetString("user_id")

	summary, err := h.service.Progress(c.Request.Context(), ownerID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "PROGRESS_FAILED", "Failed to compute progress")
		return
	}

	// summary is null until the user has at least two cards
	response.Success(c, http.StatusOK, gin.H{"progress": summary})
}

func (h *Handler) Update(c *gin.Context) {
	ownerID := c.GetString("user_id")
	id := c.Param("id")

	var req UpdateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	card, err := h.service.Update(c.Request.Context(), ownerID, id, req)
	if err != nil {
		h.writeMutationError(c, err, "UPDATE_FAILED", "Failed to update progress card")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"card": card})
}

func (h *Handler) Delete(c *gin.Context) {
	ownerID := c.GetString("user_id")
	id := c.Param("id")

	if err := h.service.Delete(c.Request.Context(), ownerID, id); err != nil {
		h.writeMutationError(c, err, "DELETE_FAILED", "Failed to delete progress card")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Progress card deleted"})
}

func (h *Handler) writeMutationError(c *gin.Context, err error, failCode, failMessage string) {
	switch {
	case errors.Is(err, ErrCardNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Progress card not found")
	case errors.Is(err, ErrNotOwner):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "You don't own this progress card")
	default:
		response.Error(c, http.StatusInternalServerError, failCode, failMessage)
	}
}

func formImage(c *gin.Context, field string) (media.File, func(), bool) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		return media.File{}, nil, false
	}
	f, err := fileHeader.Open()
	if err != nil {
		return media.File{}, nil, false
	}
	return media.File{
		Reader: f,
		Size:   fileHeader.Size,
		Name:   fileHeader.Filename,
	}, func() { _ = f.Close() }, true
}
