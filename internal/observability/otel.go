package observability

import (
	"context"
	"errors"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/zap"
)

// ServiceName is reported as service.name on every span and metric.
const ServiceName = "freelancehub"

// Settings selects how telemetry leaves the process.
type Settings struct {
	TracingEnabled bool
	// OTLPEndpoint is host:port of an OTLP/HTTP collector. Empty means stdout.
	OTLPEndpoint string
}

// Providers bundles the process-wide telemetry providers.
type Providers struct {
	TracerProvider trace.TracerProvider
	MeterProvider  metric.MeterProvider
	// Reader exposes collected metrics in-process.
	Reader *sdkmetric.ManualReader
}

// Init configures tracing and metrics and installs them as the otel globals.
// The returned shutdown flushes pending telemetry.
func Init(ctx context.Context, s Settings, logger *zap.Logger) (*Providers, func(context.Context) error, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	res, err := resource.New(ctx,
		resource.WithFromEnv(),
		resource.WithTelemetrySDK(),
		resource.WithAttributes(attribute.String("service.name", ServiceName)),
	)
	if err != nil {
		return nil, nil, err
	}

	reader := sdkmetric.NewManualReader()
	meterProvider := sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(reader),
	)
	otel.SetMeterProvider(meterProvider)

	providers := &Providers{MeterProvider: meterProvider, Reader: reader}
	var sdkTracer *sdktrace.TracerProvider

	if s.TracingEnabled {
		exporter, err := newSpanExporter(ctx, s.OTLPEndpoint, logger)
		if err != nil {
			return nil, nil, errors.Join(err, meterProvider.Shutdown(ctx))
		}
		sdkTracer = sdktrace.NewTracerProvider(
			sdktrace.WithResource(res),
			sdktrace.WithBatcher(exporter),
		)
		providers.TracerProvider = sdkTracer
	} else {
		providers.TracerProvider = tracenoop.NewTracerProvider()
	}
	otel.SetTracerProvider(providers.TracerProvider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	shutdown := func(ctx context.Context) error {
		var shutdownErr error
		shutdownErr = errors.Join(shutdownErr, meterProvider.Shutdown(ctx))
		if sdkTracer != nil {
			shutdownErr = errors.Join(shutdownErr, sdkTracer.Shutdown(ctx))
		}
		return shutdownErr
	}

	return providers, shutdown, nil
}

func newSpanExporter(ctx context.Context, endpoint string, logger *zap.Logger) (sdktrace.SpanExporter, error) {
	endpoint = strings.TrimSpace(endpoint)
	if endpoint == "" {
		return stdouttrace.New()
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(),
	)
	if err == nil {
		return exporter, nil
	}
	logger.Warn("otlp trace exporter unavailable, falling back to stdout", zap.Error(err))
	return stdouttrace.New()
}
