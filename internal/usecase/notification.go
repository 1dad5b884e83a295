package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	domainErrors "github.com/polkiloo/freelancehub/internal/domain/errors"
	"github.com/polkiloo/freelancehub/internal/domain/model"
	"github.com/polkiloo/freelancehub/internal/domain/repository"
)

// NotificationListLimit caps how many notifications a listing returns.
const NotificationListLimit = 50

// UnreadCounter caches per-user unread notification counts.
type UnreadCounter interface {
	Get(ctx context.Context, userID uuid.UUID) (int64, bool, error)
	Set(ctx context.Context, userID uuid.UUID, count int64) error
	Invalidate(ctx context.Context, userID uuid.UUID) error
}

// NotificationUseCase serves a user's in-app notifications.
type NotificationUseCase struct {
	notifications repository.NotificationRepository
	counter       UnreadCounter
	logger        *zap.Logger
}

// NewNotificationUseCase constructs NotificationUseCase. counter may be nil.
func NewNotificationUseCase(notifications repository.NotificationRepository, counter UnreadCounter, logger *zap.Logger) *NotificationUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NotificationUseCase{notifications: notifications, counter: counter, logger: logger}
}

// List returns the newest notifications of the actor.
func (u *NotificationUseCase) List(ctx context.Context, actor model.Actor) ([]model.Notification, error) {
	return u.notifications.ListByUser(ctx, actor.ID, NotificationListLimit)
}

// UnreadCount answers from the cache when possible and refills it on a miss.
func (u *NotificationUseCase) UnreadCount(ctx context.Context, actor model.Actor) (int64, error) {
	if u.counter != nil {
		count, ok, err := u.counter.Get(ctx, actor.ID)
		switch {
		case err != nil:
			u.logger.Warn("unread counter lookup failed", zap.Stringer("user_id", actor.ID), zap.Error(err))
		case ok:
			return count, nil
		}
	}

	count, err := u.notifications.CountUnread(ctx, actor.ID)
	if err != nil {
		return 0, fmt.Errorf("count unread notifications: %w", err)
	}

	if u.counter != nil {
		if err := u.counter.Set(ctx, actor.ID, count); err != nil {
			u.logger.Warn("unread counter refill failed", zap.Stringer("user_id", actor.ID), zap.Error(err))
		}
	}
	return count, nil
}

// MarkRead flags a single notification owned by the actor as read.
func (u *NotificationUseCase) MarkRead(ctx context.Context, actor model.Actor, id uuid.UUID) (*model.Notification, error) {
	n, err := u.notifications.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, domainErrors.New(domainErrors.ErrNotFound, "Notification not found")
		}
		return nil, err
	}
	if n.UserID != actor.ID {
		return nil, domainErrors.New(domainErrors.ErrForbidden, "You are not authorized to update this notification")
	}

	updated, err := u.notifications.MarkRead(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("mark notification read: %w", err)
	}
	u.invalidate(ctx, actor.ID)
	return updated, nil
}

// MarkAllRead flags every unread notification of the actor and returns how many changed.
func (u *NotificationUseCase) MarkAllRead(ctx context.Context, actor model.Actor) (int64, error) {
	n, err := u.notifications.MarkAllRead(ctx, actor.ID)
	if err != nil {
		return 0, fmt.Errorf("mark all notifications read: %w", err)
	}
	u.invalidate(ctx, actor.ID)
	return n, nil
}

func (u *NotificationUseCase) invalidate(ctx context.Context, userID uuid.UUID) {
	if u.counter == nil {
		return
	}
	if err := u.counter.Invalidate(ctx, userID); err != nil {
		u.logger.Warn("unread counter invalidation failed", zap.Stringer("user_id", userID), zap.Error(err))
	}
}
