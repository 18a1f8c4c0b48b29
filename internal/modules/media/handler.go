package media

import (
	"errors"
	"net/http"

	"fitjourney/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	store Store
}

func NewHandler(store Store) *Handler {
	return &Handler{store: store}
}

func (h *Handler) RegisterRoutes(protected *gin.RouterGroup) {
	protected.POST("/media/:slot", h.Upload)
}

// Upload stores a single before/after image and returns its URL.
func (h *Handler) Upload(c *gin.Context) {
	userID := c.GetString("user_id")
	slot := c.Param("slot")

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "NO_FILE", "No file uploaded")
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_FILE", "Failed to read uploaded file")
		return
	}
	defer f.Close()

	url, err := h.store.Upload(c.Request.Context(), userID, File{
		Reader: f,
		Size:   fileHeader.Size,
		Name:   fileHeader.Filename,
	}, slot)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidSlot):
			response.Error(c, http.StatusBadRequest, "INVALID_SLOT", "Image slot must be before or after")
		case errors.Is(err, ErrEmptyFile):
			response.Error(c, http.StatusBadRequest, "EMPTY_FILE", "Uploaded file is empty")
		case errors.Is(err, ErrFileTooLarge):
			response.Error(c, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", "File exceeds the size limit")
		case errors.Is(err, ErrInvalidMimeType):
			response.Error(c, http.StatusBadRequest, "INVALID_FILE_TYPE", "Only image files are allowed")
		default:
			response.Error(c, http.StatusInternalServerError, "UPLOAD_FAILED", "Failed to store file")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"slot": slot,
		"url":  url,
	})
}
