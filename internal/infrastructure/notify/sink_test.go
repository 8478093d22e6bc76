package notify

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"growcore.backend/internal/domain/entities"
	"growcore.backend/internal/domain/events"
)

type mockNotificationRepo struct{ mock.Mock }

func (m *mockNotificationRepo) Create(ctx context.Context, n *entities.Notification) error {
	return m.Called(ctx, n).Error(0)
}

func (m *mockNotificationRepo) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entities.Notification, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Notification), args.Error(1)
}

func (m *mockNotificationRepo) CountUnread(ctx context.Context, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockNotificationRepo) MarkRead(ctx context.Context, id, userID uuid.UUID) error {
	return m.Called(ctx, id, userID).Error(0)
}

func TestStoreSink_Emit(t *testing.T) {
	repo := &mockNotificationRepo{}
	sink := NewStoreSink(repo)
	ctx := context.Background()

	userID := uuid.New()
	occurred := time.Now().Add(-time.Minute)
	evt := events.Event{
		Kind:       events.KindApplied,
		UserID:     userID,
		Title:      "Application Submitted",
		Message:    "Your application has been received.",
		OccurredAt: occurred,
	}

	repo.On("Create", ctx, mock.AnythingOfType("*entities.Notification")).Return(nil)

	require.NoError(t, sink.Emit(ctx, evt))

	stored := repo.Calls[0].Arguments.Get(1).(*entities.Notification)
	assert.Equal(t, userID, stored.UserID)
	assert.Equal(t, "Application Submitted", stored.Title)
	assert.Equal(t, entities.NotificationTypeApplication, stored.Type)
	assert.False(t, stored.IsRead)
	assert.Equal(t, occurred, stored.CreatedAt)
}

func TestStoreSink_Emit_StoreFailurePropagates(t *testing.T) {
	repo := &mockNotificationRepo{}
	sink := NewStoreSink(repo)
	ctx := context.Background()

	boom := errors.New("store down")
	repo.On("Create", ctx, mock.Anything).Return(boom)

	err := sink.Emit(ctx, events.New(events.KindWelcome, uuid.New(), "Welcome", "hi"))
	require.ErrorIs(t, err, boom)
}

func TestTypeForKind(t *testing.T) {
	assert.Equal(t, entities.NotificationTypeApplication, typeForKind(events.KindApplied))
	assert.Equal(t, entities.NotificationTypeAssessment, typeForKind(events.KindScored))
	assert.Equal(t, entities.NotificationTypeAssessment, typeForKind(events.KindCertified))
	assert.Equal(t, entities.NotificationTypeSystem, typeForKind(events.KindWelcome))
	assert.Equal(t, entities.NotificationTypeSystem, typeForKind(events.KindEmailVerified))
}
