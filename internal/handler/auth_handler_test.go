package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Titanium1971/artimon-backend/internal/auth"
	"github.com/Titanium1971/artimon-backend/internal/middleware"
	"github.com/Titanium1971/artimon-backend/internal/validator"
)

func newAuthRouter(t *testing.T) (*gin.Engine, *auth.Service) {
	t.Helper()
	authService, err := auth.NewService(auth.NewMemoryTokenStore(), "admin@example.com", "s3cret", 24*time.Hour)
	require.NoError(t, err)

	h := NewAuthHandler(authService, validator.NewValidator())

	router := gin.New()
	router.POST("/api/admin/login", h.Login)
	protected := router.Group("", middleware.RequireAuth(authService))
	protected.GET("/api/admin/verify", h.Verify)
	return router, authService
}

func postLogin(t *testing.T, router *gin.Engine, email, password string) *httptest.ResponseRecorder {
	t.Helper()
	body, _ := json.Marshal(map[string]string{"email": email, "password": password})
	req := httptest.NewRequest(http.MethodPost, "/api/admin/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("valid credentials", func(t *testing.T) {
		router, _ := newAuthRouter(t)

		w := postLogin(t, router, "admin@example.com", "s3cret")
		require.Equal(t, http.StatusOK, w.Code)

		var response LoginResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.NotEmpty(t, response.Token)
		assert.Equal(t, "login successful", response.Message)
	})

	t.Run("wrong password", func(t *testing.T) {
		router, _ := newAuthRouter(t)

		w := postLogin(t, router, "admin@example.com", "wrong")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "incorrect email or password")
	})

	t.Run("wrong email gets the same message", func(t *testing.T) {
		router, _ := newAuthRouter(t)

		w := postLogin(t, router, "intruder@example.com", "s3cret")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "incorrect email or password")
	})

	t.Run("missing fields", func(t *testing.T) {
		router, _ := newAuthRouter(t)

		w := postLogin(t, router, "", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAuthHandler_Verify(t *testing.T) {
	t.Run("valid token", func(t *testing.T) {
		router, authService := newAuthRouter(t)

		token, err := authService.Login("admin@example.com", "s3cret")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/api/admin/verify", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var response map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, true, response["valid"])
		assert.Equal(t, "admin@example.com", response["email"])
	})

	t.Run("missing token", func(t *testing.T) {
		router, _ := newAuthRouter(t)

		req := httptest.NewRequest(http.MethodGet, "/api/admin/verify", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		router, _ := newAuthRouter(t)

		req := httptest.NewRequest(http.MethodGet, "/api/admin/verify", nil)
		req.Header.Set("Authorization", "Bearer not-a-real-token")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
