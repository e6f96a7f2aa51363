package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Titanium1971/artimon-backend/internal/domain"
)

type fakeContactRepo struct {
	messages map[string]*domain.ContactMessage
	order    []string

	createErr error
}

func newFakeContactRepo() *fakeContactRepo {
	return &fakeContactRepo{messages: make(map[string]*domain.ContactMessage)}
}

func (r *fakeContactRepo) Create(_ context.Context, msg *domain.ContactMessage) error {
	if r.createErr != nil {
		return r.createErr
	}
	clone := *msg
	r.messages[msg.ID] = &clone
	r.order = append(r.order, msg.ID)
	return nil
}

func (r *fakeContactRepo) SetEmailResult(_ context.Context, id string, sent bool, sendError *string) error {
	msg, ok := r.messages[id]
	if !ok {
		return domain.ErrNotFound
	}
	msg.EmailSent = sent
	msg.EmailError = sendError
	return nil
}

func (r *fakeContactRepo) List(_ context.Context, limit, offset int) ([]domain.ContactMessage, error) {
	var out []domain.ContactMessage
	for i := offset; i < len(r.order) && len(out) < limit; i++ {
		out = append(out, *r.messages[r.order[i]])
	}
	return out, nil
}

type fakeMailer struct {
	sendErr error
	sent    []*domain.ContactMessage
}

func (m *fakeMailer) SendContactNotification(_ context.Context, msg *domain.ContactMessage) error {
	if m.sendErr != nil {
		return m.sendErr
	}
	m.sent = append(m.sent, msg)
	return nil
}

func TestContactService_Submit(t *testing.T) {
	ctx := context.Background()

	t.Run("message persisted and notification sent", func(t *testing.T) {
		repo := newFakeContactRepo()
		m := &fakeMailer{}
		svc := NewContactService(repo, m)

		msg, err := svc.Submit(ctx, &domain.ContactCreate{
			Name:    "Jean",
			Email:   "jean@example.com",
			Message: "Bonjour",
		})
		require.NoError(t, err)

		assert.True(t, msg.EmailSent)
		assert.Nil(t, msg.EmailError)
		assert.Len(t, m.sent, 1)

		stored := repo.messages[msg.ID]
		require.NotNil(t, stored)
		assert.True(t, stored.EmailSent)
	})

	t.Run("mail failure keeps the stored message", func(t *testing.T) {
		repo := newFakeContactRepo()
		m := &fakeMailer{sendErr: errors.New("smtp: connection refused")}
		svc := NewContactService(repo, m)

		msg, err := svc.Submit(ctx, &domain.ContactCreate{
			Name:    "Jean",
			Email:   "jean@example.com",
			Message: "Bonjour",
		})
		require.NoError(t, err)

		assert.False(t, msg.EmailSent)
		require.NotNil(t, msg.EmailError)
		assert.Contains(t, *msg.EmailError, "connection refused")

		stored := repo.messages[msg.ID]
		require.NotNil(t, stored)
		assert.False(t, stored.EmailSent)
		require.NotNil(t, stored.EmailError)
	})

	t.Run("persistence failure surfaces and sends nothing", func(t *testing.T) {
		repo := newFakeContactRepo()
		repo.createErr = errors.New("db down")
		m := &fakeMailer{}
		svc := NewContactService(repo, m)

		_, err := svc.Submit(ctx, &domain.ContactCreate{
			Name:    "Jean",
			Email:   "jean@example.com",
			Message: "Bonjour",
		})
		require.Error(t, err)
		assert.Empty(t, m.sent)
	})
}

func TestContactService_List(t *testing.T) {
	ctx := context.Background()
	repo := newFakeContactRepo()
	svc := NewContactService(repo, &fakeMailer{})

	for i := 0; i < 3; i++ {
		_, err := svc.Submit(ctx, &domain.ContactCreate{
			Name:    "Jean",
			Email:   "jean@example.com",
			Message: "Bonjour",
		})
		require.NoError(t, err)
	}

	messages, err := svc.List(ctx, 2, 0)
	require.NoError(t, err)
	assert.Len(t, messages, 2)

	// Zero limit falls back to the default page size
	messages, err = svc.List(ctx, 0, 0)
	require.NoError(t, err)
	assert.Len(t, messages, 3)
}
