package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Titanium1971/artimon-backend/internal/domain"
	"github.com/Titanium1971/artimon-backend/internal/logger"
	"github.com/Titanium1971/artimon-backend/internal/mailer"
	"github.com/Titanium1971/artimon-backend/internal/metrics"
	"github.com/Titanium1971/artimon-backend/internal/repository"
)

// ContactService records contact attempts. Persistence is authoritative;
// the notification email is a best-effort side effect whose outcome is
// written back onto the stored message.
type ContactService struct {
	repo   repository.ContactRepository
	mailer mailer.Mailer
	now    func() time.Time
}

// NewContactService creates a new ContactService.
func NewContactService(repo repository.ContactRepository, m mailer.Mailer) *ContactService {
	return &ContactService{
		repo:   repo,
		mailer: m,
		now:    time.Now,
	}
}

// Submit persists the message first, then attempts the notification. A send
// failure never loses the message: the stored row is annotated with the
// error and returned. Only persistence errors surface as errors.
func (s *ContactService) Submit(ctx context.Context, input *domain.ContactCreate) (*domain.ContactMessage, error) {
	msg := &domain.ContactMessage{
		ID:        uuid.NewString(),
		Name:      input.Name,
		Email:     input.Email,
		Message:   input.Message,
		CreatedAt: s.now().UTC(),
	}

	if err := s.repo.Create(ctx, msg); err != nil {
		return nil, fmt.Errorf("store contact message: %w", err)
	}

	if err := s.mailer.SendContactNotification(ctx, msg); err != nil {
		metrics.ContactEmailsTotal.WithLabelValues("failure").Inc()
		logger.Error("Contact notification failed",
			slog.String("message_id", msg.ID),
			slog.String("error", err.Error()))

		sendErr := err.Error()
		msg.EmailError = &sendErr
		if updateErr := s.repo.SetEmailResult(ctx, msg.ID, false, &sendErr); updateErr != nil {
			logger.Error("Failed to record contact email error",
				slog.String("message_id", msg.ID),
				slog.String("error", updateErr.Error()))
		}
		return msg, nil
	}

	metrics.ContactEmailsTotal.WithLabelValues("success").Inc()
	msg.EmailSent = true
	if err := s.repo.SetEmailResult(ctx, msg.ID, true, nil); err != nil {
		logger.Error("Failed to record contact email success",
			slog.String("message_id", msg.ID),
			slog.String("error", err.Error()))
	}

	return msg, nil
}

// List returns contact messages for the admin surface.
func (s *ContactService) List(ctx context.Context, limit, offset int) ([]domain.ContactMessage, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	messages, err := s.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list contact messages: %w", err)
	}
	return messages, nil
}
