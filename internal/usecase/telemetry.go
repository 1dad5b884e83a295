package usecase

import (
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
)

func noopTracer(name string) trace.Tracer {
	return tracenoop.NewTracerProvider().Tracer(name)
}
