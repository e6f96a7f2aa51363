// Package auth implements admin login and the bearer-token session lifecycle.
package auth

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/Titanium1971/artimon-backend/internal/domain"
	"github.com/Titanium1971/artimon-backend/internal/logger"
	"github.com/Titanium1971/artimon-backend/internal/metrics"
)

const tokenBytes = 32

// Clock returns the current time. Injected so token expiry is testable.
type Clock func() time.Time

// Service validates admin credentials and manages issued tokens.
// A single static admin account is supported; there is no logout endpoint,
// tokens die by expiry or process restart.
type Service struct {
	store        TokenStore
	adminEmail   string
	passwordHash []byte
	tokenTTL     time.Duration
	now          Clock
}

// NewService creates an auth Service. adminPassword is hashed once here so
// the plaintext is not kept around.
func NewService(store TokenStore, adminEmail, adminPassword string, tokenTTL time.Duration) (*Service, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash admin password: %w", err)
	}

	return &Service{
		store:        store,
		adminEmail:   adminEmail,
		passwordHash: hash,
		tokenTTL:     tokenTTL,
		now:          time.Now,
	}, nil
}

// WithClock overrides the clock (for testing).
func (s *Service) WithClock(clock Clock) *Service {
	s.now = clock
	return s
}

// Login checks the submitted credentials against the configured admin
// account and issues a fresh token on success. Wrong email and wrong
// password both return ErrInvalidCredentials so account existence is not
// leaked.
func (s *Service) Login(email, password string) (string, error) {
	if email != s.adminEmail ||
		bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)) != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return "", domain.ErrInvalidCredentials
	}

	token, err := generateToken()
	if err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}

	s.store.Put(Session{
		Token:     token,
		Email:     email,
		CreatedAt: s.now(),
	})

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	metrics.ActiveSessions.Set(float64(s.store.Len()))
	logger.Info("Admin login", slog.String("email", email))

	return token, nil
}

// Verify resolves a bearer token to the session email. Expired tokens are
// evicted as a side effect; a later call with the same token fails the
// lookup instead, which is externally indistinguishable.
func (s *Service) Verify(token string) (string, error) {
	if token == "" {
		return "", domain.ErrTokenMissing
	}

	session, ok := s.store.Get(token)
	if !ok {
		return "", domain.ErrTokenInvalid
	}

	if s.now().Sub(session.CreatedAt) >= s.tokenTTL {
		s.store.Delete(token)
		metrics.ActiveSessions.Set(float64(s.store.Len()))
		return "", domain.ErrTokenInvalid
	}

	return session.Email, nil
}

// SweepExpired evicts every expired session. Called periodically from main
// so the store cannot grow without bound.
func (s *Service) SweepExpired() int {
	removed := s.store.SweepExpired(s.now().Add(-s.tokenTTL))
	if removed > 0 {
		metrics.ActiveSessions.Set(float64(s.store.Len()))
		logger.Debug("Swept expired sessions", slog.Int("removed", removed))
	}
	return removed
}

// generateToken returns 32 bytes from a CSPRNG, URL-safe encoded.
func generateToken() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
