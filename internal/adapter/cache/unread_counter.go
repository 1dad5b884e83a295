package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const unreadKeyPrefix = "notifications:unread:"

// UnreadCounter caches per-user unread notification counts in Redis.
type UnreadCounter struct {
	client redis.Cmdable
	ttl    time.Duration
}

// NewUnreadCounter wraps client. Entries expire after ttl.
func NewUnreadCounter(client redis.Cmdable, ttl time.Duration) *UnreadCounter {
	return &UnreadCounter{client: client, ttl: ttl}
}

func unreadKey(userID uuid.UUID) string {
	return unreadKeyPrefix + userID.String()
}

// Get returns the cached count. ok is false on a cache miss.
func (c *UnreadCounter) Get(ctx context.Context, userID uuid.UUID) (count int64, ok bool, err error) {
	count, err = c.client.Get(ctx, unreadKey(userID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("get unread counter: %w", err)
	}
	return count, true, nil
}

func (c *UnreadCounter) Set(ctx context.Context, userID uuid.UUID, count int64) error {
	if err := c.client.Set(ctx, unreadKey(userID), count, c.ttl).Err(); err != nil {
		return fmt.Errorf("set unread counter: %w", err)
	}
	return nil
}

func (c *UnreadCounter) Invalidate(ctx context.Context, userID uuid.UUID) error {
	if err := c.client.Del(ctx, unreadKey(userID)).Err(); err != nil {
		return fmt.Errorf("invalidate unread counter: %w", err)
	}
	return nil
}
