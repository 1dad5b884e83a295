package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainErrors "github.com/polkiloo/freelancehub/internal/domain/errors"
	"github.com/polkiloo/freelancehub/internal/domain/model"
	testhelpers "github.com/polkiloo/freelancehub/internal/test"
)

func seedNotifications(repo *testhelpers.NotificationRepositoryStub, userID uuid.UUID, n int) {
	for i := 0; i < n; i++ {
		repo.Notifications = append(repo.Notifications, model.Notification{
			ID: uuid.New(), UserID: userID, Type: model.NotificationBookingRequested, Message: "m",
		})
	}
}

func TestNotificationListIsCapped(t *testing.T) {
	repo := &testhelpers.NotificationRepositoryStub{}
	actor := model.Actor{ID: uuid.New(), Role: model.RoleFreelancer}
	seedNotifications(repo, actor.ID, NotificationListLimit+5)
	seedNotifications(repo, uuid.New(), 3)

	uc := NewNotificationUseCase(repo, nil, nil)
	list, err := uc.List(context.Background(), actor)
	require.NoError(t, err)
	assert.Len(t, list, NotificationListLimit)
	for _, n := range list {
		assert.Equal(t, actor.ID, n.UserID)
	}
}

func TestNotificationUnreadCountUsesCache(t *testing.T) {
	repo := &testhelpers.NotificationRepositoryStub{}
	counter := &testhelpers.UnreadCounterStub{}
	actor := model.Actor{ID: uuid.New(), Role: model.RoleClient}
	seedNotifications(repo, actor.ID, 2)

	uc := NewNotificationUseCase(repo, counter, nil)

	count, err := uc.UnreadCount(context.Background(), actor)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
	assert.Equal(t, int64(2), counter.Counts[actor.ID])

	// a cached value wins over the store until invalidated
	seedNotifications(repo, actor.ID, 1)
	count, err = uc.UnreadCount(context.Background(), actor)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	require.NoError(t, counter.Invalidate(context.Background(), actor.ID))
	count, err = uc.UnreadCount(context.Background(), actor)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestNotificationUnreadCountSurvivesCacheErrors(t *testing.T) {
	repo := &testhelpers.NotificationRepositoryStub{}
	counter := &testhelpers.UnreadCounterStub{GetErr: errors.New("redis down"), SetErr: errors.New("redis down")}
	actor := model.Actor{ID: uuid.New(), Role: model.RoleClient}
	seedNotifications(repo, actor.ID, 4)

	count, err := NewNotificationUseCase(repo, counter, nil).UnreadCount(context.Background(), actor)
	require.NoError(t, err)
	assert.Equal(t, int64(4), count)
}

func TestNotificationMarkRead(t *testing.T) {
	repo := &testhelpers.NotificationRepositoryStub{}
	counter := &testhelpers.UnreadCounterStub{}
	owner := model.Actor{ID: uuid.New(), Role: model.RoleClient}
	other := model.Actor{ID: uuid.New(), Role: model.RoleClient}
	seedNotifications(repo, owner.ID, 1)
	id := repo.Notifications[0].ID

	uc := NewNotificationUseCase(repo, counter, nil)

	_, err := uc.MarkRead(context.Background(), owner, uuid.New())
	require.ErrorIs(t, err, domainErrors.ErrNotFound)

	_, err = uc.MarkRead(context.Background(), other, id)
	require.ErrorIs(t, err, domainErrors.ErrForbidden)
	assert.False(t, repo.Stored()[0].IsRead)

	n, err := uc.MarkRead(context.Background(), owner, id)
	require.NoError(t, err)
	assert.True(t, n.IsRead)
	assert.Equal(t, []uuid.UUID{owner.ID}, counter.InvalidatedUsers())
}

func TestNotificationMarkAllRead(t *testing.T) {
	repo := &testhelpers.NotificationRepositoryStub{}
	counter := &testhelpers.UnreadCounterStub{InvalidateErr: errors.New("redis down")}
	actor := model.Actor{ID: uuid.New(), Role: model.RoleFreelancer}
	seedNotifications(repo, actor.ID, 3)
	seedNotifications(repo, uuid.New(), 2)

	uc := NewNotificationUseCase(repo, counter, nil)
	changed, err := uc.MarkAllRead(context.Background(), actor)
	require.NoError(t, err)
	assert.Equal(t, int64(3), changed)

	unread, err := repo.CountUnread(context.Background(), actor.ID)
	require.NoError(t, err)
	assert.Zero(t, unread)
	assert.Len(t, counter.InvalidatedUsers(), 1)
}
