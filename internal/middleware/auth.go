package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Titanium1971/artimon-backend/internal/domain"
)

// AdminEmailKey is the context key under which the authenticated admin
// email is stored.
const AdminEmailKey = "admin_email"

// TokenVerifier resolves a bearer token to the session email.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// RequireAuth guards admin routes. It extracts the bearer credential,
// verifies it, and aborts with 401 on any failure. The messages never
// distinguish unknown from expired tokens.
func RequireAuth(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))

		email, err := verifier.Verify(token)
		if err != nil {
			msg := "invalid or expired token"
			if errors.Is(err, domain.ErrTokenMissing) {
				msg = "missing token"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
			return
		}

		c.Set(AdminEmailKey, email)
		c.Next()
	}
}

// GetAdminEmail retrieves the authenticated admin email from the gin context.
func GetAdminEmail(c *gin.Context) string {
	if email, exists := c.Get(AdminEmailKey); exists {
		if e, ok := email.(string); ok {
			return e
		}
	}
	return ""
}

// bearerToken extracts the credential from an Authorization header.
// Returns "" when the header is absent or not a Bearer scheme.
func bearerToken(header string) string {
	const prefix = "Bearer "
	if header == "" || !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, prefix))
}
