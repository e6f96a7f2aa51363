package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Titanium1971/artimon-backend/internal/domain"
	"github.com/Titanium1971/artimon-backend/internal/validator"
)

func TestCategoryHandler_ListWithCounts(t *testing.T) {
	mockService := new(mockCategoryService)
	h := NewCategoryHandler(mockService, validator.NewValidator())

	mockService.On("ListWithCounts", mock.Anything).Return([]domain.CategoryWithCount{
		{
			Category:     domain.Category{ID: uuid.New().String(), Name: "Parcours", Slug: "parcours"},
			ArticleCount: 3,
		},
	}, nil)

	router := gin.New()
	router.GET("/api/blog/categories", h.ListWithCounts)

	req := httptest.NewRequest(http.MethodGet, "/api/blog/categories", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var response []domain.CategoryWithCount
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response, 1)
	assert.Equal(t, int64(3), response[0].ArticleCount)
	assert.Equal(t, "parcours", response[0].Slug)
}

func TestCategoryHandler_Create(t *testing.T) {
	t.Run("creates category", func(t *testing.T) {
		mockService := new(mockCategoryService)
		h := NewCategoryHandler(mockService, validator.NewValidator())

		category := &domain.Category{ID: uuid.New().String(), Name: "Sorties", Slug: "sorties"}
		mockService.On("Create", mock.Anything, mock.AnythingOfType("*domain.CategoryCreate")).Return(category, nil)

		router := gin.New()
		router.POST("/api/admin/categories", h.Create)

		body, _ := json.Marshal(domain.CategoryCreate{Name: "Sorties", Slug: "sorties"})
		req := httptest.NewRequest(http.MethodPost, "/api/admin/categories", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("duplicate slug", func(t *testing.T) {
		mockService := new(mockCategoryService)
		h := NewCategoryHandler(mockService, validator.NewValidator())

		mockService.On("Create", mock.Anything, mock.AnythingOfType("*domain.CategoryCreate")).
			Return(nil, domain.ErrDuplicateSlug)

		router := gin.New()
		router.POST("/api/admin/categories", h.Create)

		body, _ := json.Marshal(domain.CategoryCreate{Name: "Parcours", Slug: "parcours"})
		req := httptest.NewRequest(http.MethodPost, "/api/admin/categories", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "category already exists")
	})

	t.Run("invalid slug format", func(t *testing.T) {
		mockService := new(mockCategoryService)
		h := NewCategoryHandler(mockService, validator.NewValidator())

		router := gin.New()
		router.POST("/api/admin/categories", h.Create)

		body, _ := json.Marshal(domain.CategoryCreate{Name: "Vélos", Slug: "Vélos!"})
		req := httptest.NewRequest(http.MethodPost, "/api/admin/categories", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestCategoryHandler_Delete(t *testing.T) {
	t.Run("unknown category", func(t *testing.T) {
		mockService := new(mockCategoryService)
		h := NewCategoryHandler(mockService, validator.NewValidator())

		id := uuid.New().String()
		mockService.On("Delete", mock.Anything, id).Return(domain.ErrNotFound)

		router := gin.New()
		router.DELETE("/api/admin/categories/:id", h.Delete)

		req := httptest.NewRequest(http.MethodDelete, "/api/admin/categories/"+id, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
