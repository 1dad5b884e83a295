package usecase

import (
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/polkiloo/freelancehub/internal/domain/repository"
)

// Module provides core business use cases to the fx container.
var Module = fx.Provide(
	NewAuthUseCase,
	newBookingUseCase,
	newNotificationUseCase,
	NewReviewUseCase,
	NewPricingUseCase,
	NewProfileUseCase,
	NewShowcaseUseCase,
	NewFreelancerUseCase,
)

type bookingParams struct {
	fx.In

	Bookings repository.BookingRepository
	Notifier Notifier             `optional:"true"`
	Logger   *zap.Logger          `optional:"true"`
	Tracing  trace.TracerProvider `optional:"true"`
	Metrics  metric.MeterProvider `optional:"true"`
}

func newBookingUseCase(p bookingParams) *BookingUseCase {
	var (
		tracer trace.Tracer
		meter  metric.Meter
	)
	if p.Tracing != nil {
		tracer = p.Tracing.Tracer(bookingTracerName)
	}
	if p.Metrics != nil {
		meter = p.Metrics.Meter(bookingTracerName)
	}
	var logger *zap.Logger
	if p.Logger != nil {
		logger = p.Logger.Named("booking")
	}
	return NewBookingUseCase(p.Bookings, p.Notifier, logger, tracer, meter)
}

type notificationParams struct {
	fx.In

	Notifications repository.NotificationRepository
	Counter       UnreadCounter `optional:"true"`
	Logger        *zap.Logger   `optional:"true"`
}

func newNotificationUseCase(p notificationParams) *NotificationUseCase {
	return NewNotificationUseCase(p.Notifications, p.Counter, p.Logger)
}
