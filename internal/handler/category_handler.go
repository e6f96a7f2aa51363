package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Titanium1971/artimon-backend/internal/domain"
	"github.com/Titanium1971/artimon-backend/internal/logger"
	"github.com/Titanium1971/artimon-backend/internal/middleware"
	"github.com/Titanium1971/artimon-backend/internal/service"
	"github.com/Titanium1971/artimon-backend/internal/validator"
)

// CategoryHandler handles public and admin category HTTP requests.
type CategoryHandler struct {
	categories service.CategoryServiceInterface
	validator  *validator.Validator
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(categories service.CategoryServiceInterface, v *validator.Validator) *CategoryHandler {
	return &CategoryHandler{
		categories: categories,
		validator:  v,
	}
}

// ListWithCounts handles GET /api/blog/categories
func (h *CategoryHandler) ListWithCounts(c *gin.Context) {
	categories, err := h.categories.ListWithCounts(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list categories",
			slog.String("request_id", middleware.GetRequestID(c)),
			slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list categories"})
		return
	}

	c.JSON(http.StatusOK, categories)
}

// AdminList handles GET /api/admin/categories
func (h *CategoryHandler) AdminList(c *gin.Context) {
	categories, err := h.categories.List(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list categories for admin",
			slog.String("request_id", middleware.GetRequestID(c)),
			slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list categories"})
		return
	}

	c.JSON(http.StatusOK, categories)
}

// Create handles POST /api/admin/categories
func (h *CategoryHandler) Create(c *gin.Context) {
	var input domain.CategoryCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validator.ValidateCategoryCreate(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category, err := h.categories.Create(c.Request.Context(), &input)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateSlug) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "category already exists"})
			return
		}
		logger.Error("Failed to create category",
			slog.String("request_id", middleware.GetRequestID(c)),
			slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create category"})
		return
	}

	c.JSON(http.StatusCreated, category)
}

// Delete handles DELETE /api/admin/categories/:id
func (h *CategoryHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a valid UUID"})
		return
	}

	if err := h.categories.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "category not found"})
			return
		}
		logger.Error("Failed to delete category",
			slog.String("request_id", middleware.GetRequestID(c)),
			slog.String("category_id", id),
			slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete category"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "category deleted"})
}
