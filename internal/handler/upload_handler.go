package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Titanium1971/artimon-backend/internal/logger"
	"github.com/Titanium1971/artimon-backend/internal/metrics"
	"github.com/Titanium1971/artimon-backend/internal/middleware"
	"github.com/Titanium1971/artimon-backend/internal/storage"
)

// UploadHandler handles admin image uploads.
type UploadHandler struct {
	storage storage.Storage
}

// NewUploadHandler creates a new UploadHandler.
func NewUploadHandler(store storage.Storage) *UploadHandler {
	return &UploadHandler{storage: store}
}

// UploadResponse is the successful upload payload.
type UploadResponse struct {
	URL      string `json:"url"`
	Filename string `json:"filename"`
}

// Upload handles POST /api/admin/upload
func (h *UploadHandler) Upload(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	if header.Size > maxUploadSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file too large"})
		return
	}

	contentType := header.Header.Get("Content-Type")
	if !storage.IsAllowedType(contentType) {
		metrics.UploadsTotal.WithLabelValues("rejected").Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": "file type not allowed"})
		return
	}

	file, err := header.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read file"})
		return
	}
	defer file.Close()

	url, filename, err := h.storage.Save(c.Request.Context(), header.Filename, contentType, file)
	if err != nil {
		if errors.Is(err, storage.ErrDisallowedType) {
			metrics.UploadsTotal.WithLabelValues("rejected").Inc()
			c.JSON(http.StatusBadRequest, gin.H{"error": "file type not allowed"})
			return
		}
		metrics.UploadsTotal.WithLabelValues("failure").Inc()
		logger.Error("Failed to store upload",
			slog.String("request_id", middleware.GetRequestID(c)),
			slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store file"})
		return
	}

	metrics.UploadsTotal.WithLabelValues("success").Inc()
	c.JSON(http.StatusOK, UploadResponse{URL: url, Filename: filename})
}
