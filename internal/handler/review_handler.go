package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Titanium1971/artimon-backend/internal/domain"
	"github.com/Titanium1971/artimon-backend/internal/logger"
	"github.com/Titanium1971/artimon-backend/internal/middleware"
	"github.com/Titanium1971/artimon-backend/internal/service"
	"github.com/Titanium1971/artimon-backend/internal/validator"
)

// ReviewHandler handles the customer-reviews feed.
type ReviewHandler struct {
	reviews   service.ReviewServiceInterface
	validator *validator.Validator
}

// NewReviewHandler creates a new ReviewHandler.
func NewReviewHandler(reviews service.ReviewServiceInterface, v *validator.Validator) *ReviewHandler {
	return &ReviewHandler{
		reviews:   reviews,
		validator: v,
	}
}

// List handles GET /api/blog/reviews
func (h *ReviewHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	reviews, err := h.reviews.List(c.Request.Context(), limit, offset)
	if err != nil {
		logger.Error("Failed to list reviews",
			slog.String("request_id", middleware.GetRequestID(c)),
			slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list reviews"})
		return
	}

	c.JSON(http.StatusOK, reviews)
}

// Create handles POST /api/blog/reviews
func (h *ReviewHandler) Create(c *gin.Context) {
	var input domain.ReviewCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validator.ValidateReviewCreate(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	review, err := h.reviews.Create(c.Request.Context(), &input)
	if err != nil {
		logger.Error("Failed to create review",
			slog.String("request_id", middleware.GetRequestID(c)),
			slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create review"})
		return
	}

	c.JSON(http.StatusCreated, review)
}

// Delete handles DELETE /api/admin/reviews/:id
func (h *ReviewHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a valid UUID"})
		return
	}

	if err := h.reviews.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "review not found"})
			return
		}
		logger.Error("Failed to delete review",
			slog.String("request_id", middleware.GetRequestID(c)),
			slog.String("review_id", id),
			slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete review"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "review deleted"})
}
