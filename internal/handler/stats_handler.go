package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Titanium1971/artimon-backend/internal/logger"
	"github.com/Titanium1971/artimon-backend/internal/middleware"
	"github.com/Titanium1971/artimon-backend/internal/service"
)

// StatsHandler handles the admin dashboard stats.
type StatsHandler struct {
	stats service.StatsServiceInterface
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(stats service.StatsServiceInterface) *StatsHandler {
	return &StatsHandler{stats: stats}
}

// Stats handles GET /api/admin/stats
func (h *StatsHandler) Stats(c *gin.Context) {
	stats, err := h.stats.Stats(c.Request.Context())
	if err != nil {
		logger.Error("Failed to compute stats",
			slog.String("request_id", middleware.GetRequestID(c)),
			slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute stats"})
		return
	}

	c.JSON(http.StatusOK, stats)
}
