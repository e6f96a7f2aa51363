package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/Titanium1971/artimon-backend/internal/domain"
)

type stubVerifier struct {
	email string
	err   error
	seen  string
}

func (v *stubVerifier) Verify(token string) (string, error) {
	v.seen = token
	if v.err != nil {
		return "", v.err
	}
	if token == "" {
		return "", domain.ErrTokenMissing
	}
	return v.email, nil
}

func authTestRouter(verifier TokenVerifier) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", RequireAuth(verifier), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"email": GetAdminEmail(c)})
	})
	return router
}

func TestRequireAuth(t *testing.T) {
	t.Run("valid bearer token passes through", func(t *testing.T) {
		verifier := &stubVerifier{email: "admin@example.com"}
		router := authTestRouter(verifier)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer good-token")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "good-token", verifier.seen)
		assert.Contains(t, w.Body.String(), "admin@example.com")
	})

	t.Run("missing header", func(t *testing.T) {
		router := authTestRouter(&stubVerifier{})

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "missing token")
	})

	t.Run("wrong scheme is treated as missing", func(t *testing.T) {
		router := authTestRouter(&stubVerifier{})

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "missing token")
	})

	t.Run("invalid token", func(t *testing.T) {
		router := authTestRouter(&stubVerifier{err: domain.ErrTokenInvalid})

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer stale-token")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "invalid or expired token")
	})
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
	}{
		{"empty header", "", ""},
		{"bearer token", "Bearer abc123", "abc123"},
		{"extra whitespace trimmed", "Bearer  abc123 ", "abc123"},
		{"basic scheme", "Basic abc123", ""},
		{"bare token without scheme", "abc123", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, bearerToken(tt.header))
		})
	}
}

func TestGetAdminEmail(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not set", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		assert.Empty(t, GetAdminEmail(c))
	})

	t.Run("wrong type", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Set(AdminEmailKey, 42)
		assert.Empty(t, GetAdminEmail(c))
	})
}
