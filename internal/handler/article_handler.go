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

// ArticleHandler handles public and admin article HTTP requests.
type ArticleHandler struct {
	articles  service.ArticleServiceInterface
	validator *validator.Validator
}

// NewArticleHandler creates a new ArticleHandler.
func NewArticleHandler(articles service.ArticleServiceInterface, v *validator.Validator) *ArticleHandler {
	return &ArticleHandler{
		articles:  articles,
		validator: v,
	}
}

// ArticleResponse represents an article in the API response.
type ArticleResponse struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Slug            string   `json:"slug"`
	Content         string   `json:"content"`
	Excerpt         string   `json:"excerpt"`
	ImageURL        *string  `json:"image_url,omitempty"`
	Category        string   `json:"category"`
	Tags            []string `json:"tags"`
	MetaDescription *string  `json:"meta_description,omitempty"`
	Status          string   `json:"status"`
	CreatedAt       string   `json:"created_at"`
	UpdatedAt       string   `json:"updated_at"`
}

// ArticleListResponse is the paginated public listing payload.
type ArticleListResponse struct {
	Articles []ArticleResponse `json:"articles"`
	Total    int64             `json:"total"`
	Limit    int               `json:"limit"`
	Offset   int               `json:"offset"`
}

// toArticleResponse converts a domain.Article to an ArticleResponse.
func toArticleResponse(a *domain.Article) ArticleResponse {
	return ArticleResponse{
		ID:              a.ID,
		Title:           a.Title,
		Slug:            a.Slug,
		Content:         a.Content,
		Excerpt:         a.Excerpt,
		ImageURL:        a.ImageURL,
		Category:        a.Category,
		Tags:            a.Tags,
		MetaDescription: a.MetaDescription,
		Status:          a.Status,
		CreatedAt:       a.CreatedAt.Format(TimeFormat),
		UpdatedAt:       a.UpdatedAt.Format(TimeFormat),
	}
}

func toArticleResponses(articles []domain.Article) []ArticleResponse {
	out := make([]ArticleResponse, 0, len(articles))
	for i := range articles {
		out = append(out, toArticleResponse(&articles[i]))
	}
	return out
}

// ListPublished handles GET /api/blog/articles
func (h *ArticleHandler) ListPublished(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	opts := domain.ArticleListOptions{
		Category: c.Query("category"),
		Limit:    limit,
		Offset:   offset,
	}

	articles, total, err := h.articles.ListPublished(c.Request.Context(), opts)
	if err != nil {
		logger.Error("Failed to list articles",
			slog.String("request_id", middleware.GetRequestID(c)),
			slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list articles"})
		return
	}

	c.JSON(http.StatusOK, ArticleListResponse{
		Articles: toArticleResponses(articles),
		Total:    total,
		Limit:    opts.Limit,
		Offset:   opts.Offset,
	})
}

// GetBySlug handles GET /api/blog/articles/:slug
func (h *ArticleHandler) GetBySlug(c *gin.Context) {
	article, err := h.articles.GetPublishedBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "article not found"})
			return
		}
		logger.Error("Failed to get article by slug",
			slog.String("request_id", middleware.GetRequestID(c)),
			slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve article"})
		return
	}

	c.JSON(http.StatusOK, toArticleResponse(article))
}

// Recent handles GET /api/blog/recent
func (h *ArticleHandler) Recent(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "5"))

	articles, err := h.articles.Recent(c.Request.Context(), limit)
	if err != nil {
		logger.Error("Failed to list recent articles",
			slog.String("request_id", middleware.GetRequestID(c)),
			slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list recent articles"})
		return
	}

	c.JSON(http.StatusOK, toArticleResponses(articles))
}

// AdminList handles GET /api/admin/articles
func (h *ArticleHandler) AdminList(c *gin.Context) {
	status := c.Query("status")
	if status != "" && !domain.IsValidStatus(status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status must be draft or published"})
		return
	}

	articles, err := h.articles.ListAll(c.Request.Context(), status)
	if err != nil {
		logger.Error("Failed to list articles for admin",
			slog.String("request_id", middleware.GetRequestID(c)),
			slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list articles"})
		return
	}

	c.JSON(http.StatusOK, toArticleResponses(articles))
}

// AdminGet handles GET /api/admin/articles/:id
func (h *ArticleHandler) AdminGet(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a valid UUID"})
		return
	}

	article, err := h.articles.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "article not found"})
			return
		}
		logger.Error("Failed to get article",
			slog.String("request_id", middleware.GetRequestID(c)),
			slog.String("article_id", id),
			slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve article"})
		return
	}

	c.JSON(http.StatusOK, toArticleResponse(article))
}

// Create handles POST /api/admin/articles
func (h *ArticleHandler) Create(c *gin.Context) {
	var input domain.ArticleCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validator.ValidateArticleCreate(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	article, err := h.articles.Create(c.Request.Context(), &input)
	if err != nil {
		if errors.Is(err, domain.ErrEmptySlug) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "title produces an empty slug"})
			return
		}
		logger.Error("Failed to create article",
			slog.String("request_id", middleware.GetRequestID(c)),
			slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create article"})
		return
	}

	c.JSON(http.StatusCreated, toArticleResponse(article))
}

// Update handles PUT /api/admin/articles/:id
func (h *ArticleHandler) Update(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a valid UUID"})
		return
	}

	var update domain.ArticleUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validator.ValidateArticleUpdate(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	article, err := h.articles.Update(c.Request.Context(), id, &update)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "article not found"})
		case errors.Is(err, domain.ErrEmptySlug):
			c.JSON(http.StatusBadRequest, gin.H{"error": "title produces an empty slug"})
		default:
			logger.Error("Failed to update article",
				slog.String("request_id", middleware.GetRequestID(c)),
				slog.String("article_id", id),
				slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update article"})
		}
		return
	}

	c.JSON(http.StatusOK, toArticleResponse(article))
}

// Delete handles DELETE /api/admin/articles/:id
func (h *ArticleHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a valid UUID"})
		return
	}

	if err := h.articles.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "article not found"})
			return
		}
		logger.Error("Failed to delete article",
			slog.String("request_id", middleware.GetRequestID(c)),
			slog.String("article_id", id),
			slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete article"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "article deleted"})
}
