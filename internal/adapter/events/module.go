package events

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/polkiloo/freelancehub/internal/config"
)

// Module provides the Kafka publisher. Without brokers it provides nil.
var Module = fx.Provide(newPublisherFromConfig)

type publisherParams struct {
	fx.In

	Config    *config.Config
	Lifecycle fx.Lifecycle
	Logger    *zap.Logger
}

func newPublisherFromConfig(p publisherParams) *KafkaPublisher {
	if len(p.Config.KafkaBrokers) == 0 {
		p.Logger.Info("booking event publishing disabled")
		return nil
	}

	publisher := NewKafkaPublisher(p.Config.KafkaBrokers, p.Config.KafkaTopic)
	p.Lifecycle.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return publisher.Close()
		},
	})
	p.Logger.Info("publishing booking events",
		zap.Strings("brokers", p.Config.KafkaBrokers),
		zap.String("topic", p.Config.KafkaTopic),
	)
	return publisher
}
