package observability

import (
	"context"

	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/polkiloo/freelancehub/internal/config"
)

// Module provides tracer and meter providers and flushes them on stop.
var Module = fx.Provide(newFromConfig)

type params struct {
	fx.In

	Config    *config.Config
	Lifecycle fx.Lifecycle
	Logger    *zap.Logger
}

type result struct {
	fx.Out

	Providers *Providers
	Tracing   trace.TracerProvider
	Metrics   metric.MeterProvider
}

func newFromConfig(p params) (result, error) {
	providers, shutdown, err := Init(context.Background(), Settings{
		TracingEnabled: p.Config.TracingEnabled,
		OTLPEndpoint:   p.Config.OTLPEndpoint,
	}, p.Logger.Named("otel"))
	if err != nil {
		return result{}, err
	}
	p.Lifecycle.Append(fx.StopHook(shutdown))

	return result{
		Providers: providers,
		Tracing:   providers.TracerProvider,
		Metrics:   providers.MeterProvider,
	}, nil
}
