package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Titanium1971/artimon-backend/internal/domain"
	"github.com/Titanium1971/artimon-backend/internal/logger"
	"github.com/Titanium1971/artimon-backend/internal/middleware"
	"github.com/Titanium1971/artimon-backend/internal/repository"
)

// StatusHandler handles client status-check pings.
type StatusHandler struct {
	repo repository.StatusCheckRepository
}

// NewStatusHandler creates a new StatusHandler.
func NewStatusHandler(repo repository.StatusCheckRepository) *StatusHandler {
	return &StatusHandler{repo: repo}
}

// statusCheckRequest is the creation payload.
type statusCheckRequest struct {
	ClientName string `json:"client_name"`
}

// Create handles POST /api/status
func (h *StatusHandler) Create(c *gin.Context) {
	var req statusCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ClientName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "client_name is required"})
		return
	}

	check := &domain.StatusCheck{
		ID:         uuid.NewString(),
		ClientName: req.ClientName,
		Timestamp:  time.Now().UTC(),
	}

	if err := h.repo.Create(c.Request.Context(), check); err != nil {
		logger.Error("Failed to create status check",
			slog.String("request_id", middleware.GetRequestID(c)),
			slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create status check"})
		return
	}

	c.JSON(http.StatusOK, check)
}

// List handles GET /api/status
func (h *StatusHandler) List(c *gin.Context) {
	checks, err := h.repo.List(c.Request.Context(), 1000)
	if err != nil {
		logger.Error("Failed to list status checks",
			slog.String("request_id", middleware.GetRequestID(c)),
			slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list status checks"})
		return
	}

	c.JSON(http.StatusOK, checks)
}
