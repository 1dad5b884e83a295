package di

import (
	"go.uber.org/fx"

	"github.com/polkiloo/freelancehub/internal/adapter/cache"
	"github.com/polkiloo/freelancehub/internal/adapter/events"
	"github.com/polkiloo/freelancehub/internal/app"
	"github.com/polkiloo/freelancehub/internal/config"
	"github.com/polkiloo/freelancehub/internal/logger"
	"github.com/polkiloo/freelancehub/internal/observability"
	"github.com/polkiloo/freelancehub/internal/pkg/auth"
	"github.com/polkiloo/freelancehub/internal/server/http/router"
	"github.com/polkiloo/freelancehub/internal/storage/postgres"
	"github.com/polkiloo/freelancehub/internal/usecase"
	"github.com/polkiloo/freelancehub/internal/worker"
)

// Module composes the application graph. opts are appended last so tests can
// replace any provided value.
func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		observability.Module,
		auth.Module,
		postgres.Module,
		cache.Module,
		events.Module,
		fx.Provide(
			asCounterInvalidator,
			asEventPublisher,
			func(s *postgres.Storage) app.HealthChecker { return s },
		),
		worker.Module,
		usecase.Module,
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}

// Optional adapters come back as typed nils; they must not reach the
// dispatcher as non-nil interfaces.
func asCounterInvalidator(c usecase.UnreadCounter) worker.CounterInvalidator {
	if c == nil {
		return nil
	}
	return c
}

func asEventPublisher(p *events.KafkaPublisher) worker.EventPublisher {
	if p == nil {
		return nil
	}
	return p
}
