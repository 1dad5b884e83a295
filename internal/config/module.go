package config

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Module loads configuration for fx graphs and logs what was resolved.
var Module = fx.Options(
	fx.Provide(Load),
	fx.Invoke(logResolved),
)

// logResolved never logs secrets or the DSN.
func logResolved(cfg *Config, logger *zap.Logger) {
	logger.Named("config").Info("configuration loaded",
		zap.String("addr", cfg.RunAddress),
		zap.String("token_strategy", cfg.TokenStrategy),
		zap.Duration("token_ttl", cfg.TokenTTL),
		zap.Int("notify_workers", cfg.NotifyWorkers),
		zap.Int("notify_queue", cfg.NotifyQueueSize),
		zap.Bool("kafka", len(cfg.KafkaBrokers) > 0),
		zap.Bool("redis", cfg.RedisAddr != ""),
		zap.Bool("tracing", cfg.TracingEnabled),
	)
}
