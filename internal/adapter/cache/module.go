package cache

import (
	"context"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/polkiloo/freelancehub/internal/config"
	"github.com/polkiloo/freelancehub/internal/usecase"
)

// Module provides the Redis backed unread counter, or nil when Redis is not configured.
var Module = fx.Provide(
	newUnreadCounterFromConfig,
	asUseCaseCounter,
)

type counterParams struct {
	fx.In

	Config    *config.Config
	Lifecycle fx.Lifecycle
	Logger    *zap.Logger
}

func newUnreadCounterFromConfig(p counterParams) *UnreadCounter {
	if p.Config.RedisAddr == "" {
		p.Logger.Info("unread counter cache disabled")
		return nil
	}

	client := redis.NewClient(&redis.Options{Addr: p.Config.RedisAddr})
	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			// a failed ping is not fatal
			if err := client.Ping(ctx).Err(); err != nil {
				p.Logger.Warn("redis ping failed", zap.String("addr", p.Config.RedisAddr), zap.Error(err))
			}
			return nil
		},
		OnStop: func(context.Context) error {
			return client.Close()
		},
	})
	return NewUnreadCounter(client, p.Config.UnreadCacheTTL)
}

func asUseCaseCounter(c *UnreadCounter) usecase.UnreadCounter {
	if c == nil {
		return nil
	}
	return c
}
