package logger

import (
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"github.com/polkiloo/freelancehub/internal/config"
)

// Module wires the zap logger for dependency injection and routes fx events through it.
var Module = fx.Options(
	fx.Provide(newFromConfig),
	fx.WithLogger(newEventLogger),
	fx.Invoke(registerSync),
)

func newFromConfig(cfg *config.Config) (*zap.Logger, error) {
	return New(cfg.LogLevel)
}

func newEventLogger(log *zap.Logger) fxevent.Logger {
	return &fxevent.ZapLogger{Logger: log.Named("fx")}
}

func registerSync(lc fx.Lifecycle, log *zap.Logger) {
	lc.Append(fx.StopHook(func() {
		_ = log.Sync()
	}))
}
