package worker

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/polkiloo/freelancehub/internal/config"
	"github.com/polkiloo/freelancehub/internal/domain/repository"
	"github.com/polkiloo/freelancehub/internal/usecase"
)

// Module provides the notification dispatcher and binds it as the booking notifier.
// Starting and stopping it is left to the application lifecycle.
var Module = fx.Provide(
	newDispatcher,
	func(d *NotificationDispatcher) usecase.Notifier { return d },
)

type dispatcherParams struct {
	fx.In

	Notifications repository.NotificationRepository
	Counter       CounterInvalidator `optional:"true"`
	Publisher     EventPublisher     `optional:"true"`
	Config        *config.Config
	Logger        *zap.Logger
}

func newDispatcher(p dispatcherParams) *NotificationDispatcher {
	return NewNotificationDispatcher(
		p.Notifications,
		p.Counter,
		p.Publisher,
		p.Config.NotifyWorkers,
		p.Config.NotifyQueueSize,
		p.Config.NotifyTimeout,
		p.Logger.Named("dispatch"),
	)
}
