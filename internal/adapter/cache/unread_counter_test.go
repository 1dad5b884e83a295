package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnreadCounterGet(t *testing.T) {
	db, mock := redismock.NewClientMock()
	counter := NewUnreadCounter(db, time.Minute)
	ctx := context.Background()
	userID := uuid.New()
	key := "notifications:unread:" + userID.String()

	mock.ExpectGet(key).SetVal("7")
	count, ok, err := counter.Get(ctx, userID)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int64(7), count)

	mock.ExpectGet(key).RedisNil()
	_, ok, err = counter.Get(ctx, userID)
	require.NoError(t, err)
	assert.False(t, ok)

	mock.ExpectGet(key).SetErr(errors.New("connection refused"))
	_, ok, err = counter.Get(ctx, userID)
	require.Error(t, err)
	assert.False(t, ok)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUnreadCounterSetAndInvalidate(t *testing.T) {
	db, mock := redismock.NewClientMock()
	counter := NewUnreadCounter(db, 5*time.Minute)
	ctx := context.Background()
	userID := uuid.New()
	key := unreadKey(userID)

	mock.ExpectSet(key, int64(3), 5*time.Minute).SetVal("OK")
	require.NoError(t, counter.Set(ctx, userID, 3))

	mock.ExpectDel(key).SetVal(1)
	require.NoError(t, counter.Invalidate(ctx, userID))

	mock.ExpectDel(key).SetErr(errors.New("readonly replica"))
	err := counter.Invalidate(ctx, userID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "readonly replica")

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAsUseCaseCounterKeepsNilAsNil(t *testing.T) {
	assert.Nil(t, asUseCaseCounter(nil))
	assert.NotNil(t, asUseCaseCounter(NewUnreadCounter(nil, time.Minute)))
}
