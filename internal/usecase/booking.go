package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	domainErrors "github.com/polkiloo/freelancehub/internal/domain/errors"
	"github.com/polkiloo/freelancehub/internal/domain/model"
	"github.com/polkiloo/freelancehub/internal/domain/repository"
)

const bookingTracerName = "github.com/polkiloo/freelancehub/internal/usecase/booking"

// Notifier receives a notice after a booking change has been persisted.
// Implementations must not block the caller.
type Notifier interface {
	Notify(ctx context.Context, notice model.BookingNotice)
}

type partyGuard uint8

const (
	guardFreelancer partyGuard = iota + 1
	guardClient
	guardEitherParty
)

type bookingAction struct {
	name      string
	from      model.BookingStatus
	to        model.BookingStatus
	guard     partyGuard
	notifType model.NotificationType
	message   string
}

var (
	actionAccept = bookingAction{
		name: "accept", from: model.BookingStatusRequested, to: model.BookingStatusAccepted, guard: guardFreelancer,
		notifType: model.NotificationBookingAccepted, message: `Your booking "%s" has been accepted`,
	}
	actionStart = bookingAction{
		name: "start", from: model.BookingStatusAccepted, to: model.BookingStatusInProgress, guard: guardFreelancer,
		notifType: model.NotificationWorkStarted, message: `Work has started on "%s"`,
	}
	actionSubmit = bookingAction{
		name: "submit", from: model.BookingStatusInProgress, to: model.BookingStatusSubmitted, guard: guardFreelancer,
		notifType: model.NotificationWorkSubmitted, message: `Work has been submitted for "%s". Please review.`,
	}
	actionApprove = bookingAction{
		name: "approve", from: model.BookingStatusSubmitted, to: model.BookingStatusCompleted, guard: guardClient,
		notifType: model.NotificationWorkApproved, message: `Your work on "%s" has been approved`,
	}
	actionMarkPaid = bookingAction{
		name: "mark paid", from: model.BookingStatusCompleted, to: model.BookingStatusPaid, guard: guardClient,
		notifType: model.NotificationPaymentReceived, message: `Payment received for "%s"`,
	}
	actionCancel = bookingAction{
		name: "cancel", from: model.BookingStatusRequested, to: model.BookingStatusCancelled, guard: guardEitherParty,
		notifType: model.NotificationBookingCancelled, message: `Booking "%s" has been cancelled`,
	}
)

func (a bookingAction) authorize(b *model.Booking, actor model.Actor) error {
	switch a.guard {
	case guardFreelancer:
		if actor.ID != b.FreelancerID {
			return domainErrors.Newf(domainErrors.ErrForbidden, "Only the assigned freelancer can %s this booking", a.name)
		}
	case guardClient:
		if actor.ID != b.ClientID {
			return domainErrors.Newf(domainErrors.ErrForbidden, "Only the client can %s this booking", a.name)
		}
	case guardEitherParty:
		if !b.IsParty(actor.ID) {
			return domainErrors.Newf(domainErrors.ErrForbidden, "You are not authorized to %s this booking", a.name)
		}
	default:
		return fmt.Errorf("booking action %q has no guard", a.name)
	}
	return nil
}

func (a bookingAction) invalidState(current model.BookingStatus) error {
	if current.IsTerminal() {
		return domainErrors.Newf(domainErrors.ErrInvalidState,
			"Booking is already %q and can no longer change", current)
	}
	if a.guard == guardEitherParty {
		return domainErrors.Newf(domainErrors.ErrInvalidState,
			"Only %s bookings can be %s; current status is %q", a.from, a.to, current)
	}
	return domainErrors.Newf(domainErrors.ErrInvalidState,
		"Cannot %s a booking with status %q; it must be %q", a.name, current, a.from)
}

// CreateBookingInput carries the client supplied fields of a new booking.
type CreateBookingInput struct {
	FreelancerID     uuid.UUID
	PricingPackageID *uuid.UUID
	Title            string
	Brief            string
}

// BookingUseCase owns the booking status lifecycle and its guards.
type BookingUseCase struct {
	bookings repository.BookingRepository
	notifier Notifier
	logger   *zap.Logger
	tracer   trace.Tracer
	metrics  bookingMetrics
	now      func() time.Time
}

// NewBookingUseCase constructs BookingUseCase. A nil tracer or meter disables telemetry.
func NewBookingUseCase(bookings repository.BookingRepository, notifier Notifier, logger *zap.Logger, tracer trace.Tracer, meter metric.Meter) *BookingUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	if tracer == nil {
		tracer = noopTracer(bookingTracerName)
	}
	return &BookingUseCase{
		bookings: bookings,
		notifier: notifier,
		logger:   logger,
		tracer:   tracer,
		metrics:  newBookingMetrics(meter),
		now:      time.Now,
	}
}

// Create opens a new booking in the requested status on behalf of a client.
func (u *BookingUseCase) Create(ctx context.Context, actor model.Actor, in CreateBookingInput) (*model.Booking, error) {
	ctx, span := u.tracer.Start(ctx, "BookingUseCase.Create", trace.WithAttributes(
		attribute.String("actor.id", actor.ID.String()),
		attribute.String("booking.freelancer_id", in.FreelancerID.String()),
	))
	defer span.End()

	switch actor.Role {
	case model.RoleClient:
	case model.RoleFreelancer:
		return nil, u.reject(ctx, span, "create", domainErrors.New(domainErrors.ErrForbidden, "Only clients can create bookings"))
	default:
		return nil, u.reject(ctx, span, "create", domainErrors.New(domainErrors.ErrForbidden, "Unknown role"))
	}

	title := strings.TrimSpace(in.Title)
	switch {
	case in.FreelancerID == uuid.Nil:
		return nil, u.reject(ctx, span, "create", domainErrors.New(domainErrors.ErrValidation, "Freelancer is required"))
	case title == "":
		return nil, u.reject(ctx, span, "create", domainErrors.New(domainErrors.ErrValidation, "Title is required"))
	case strings.TrimSpace(in.Brief) == "":
		return nil, u.reject(ctx, span, "create", domainErrors.New(domainErrors.ErrValidation, "Brief is required"))
	case utf8.RuneCountInString(in.Brief) > model.BookingBriefMaxLen:
		return nil, u.reject(ctx, span, "create", domainErrors.Newf(domainErrors.ErrValidation,
			"Brief must be at most %d characters", model.BookingBriefMaxLen))
	}

	created, err := u.bookings.Create(ctx, &model.Booking{
		ID:               uuid.New(),
		ClientID:         actor.ID,
		FreelancerID:     in.FreelancerID,
		PricingPackageID: in.PricingPackageID,
		Title:            title,
		Brief:            in.Brief,
		Status:           model.BookingStatusRequested,
	})
	if err != nil {
		return nil, u.fail(span, fmt.Errorf("create booking: %w", err))
	}

	u.metrics.recordTransition(ctx, "create", created.Status)
	u.emit(ctx, created, actor, "create", "", created.FreelancerID,
		model.NotificationBookingRequested, "New booking request: "+created.Title)
	return created, nil
}

// List returns the bookings the actor takes part in under their role, newest first.
func (u *BookingUseCase) List(ctx context.Context, actor model.Actor) ([]model.Booking, error) {
	switch actor.Role {
	case model.RoleClient:
		return u.bookings.ListByClient(ctx, actor.ID)
	case model.RoleFreelancer:
		return u.bookings.ListByFreelancer(ctx, actor.ID)
	default:
		return nil, domainErrors.New(domainErrors.ErrForbidden, "Unknown role")
	}
}

// Get returns a booking visible to the actor.
func (u *BookingUseCase) Get(ctx context.Context, actor model.Actor, id uuid.UUID) (*model.Booking, error) {
	booking, err := u.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if !booking.IsParty(actor.ID) {
		return nil, domainErrors.New(domainErrors.ErrForbidden, "You are not authorized to view this booking")
	}
	return booking, nil
}

func (u *BookingUseCase) Accept(ctx context.Context, actor model.Actor, id uuid.UUID) (*model.Booking, error) {
	return u.transition(ctx, actor, id, actionAccept)
}

func (u *BookingUseCase) Start(ctx context.Context, actor model.Actor, id uuid.UUID) (*model.Booking, error) {
	return u.transition(ctx, actor, id, actionStart)
}

func (u *BookingUseCase) Submit(ctx context.Context, actor model.Actor, id uuid.UUID) (*model.Booking, error) {
	return u.transition(ctx, actor, id, actionSubmit)
}

func (u *BookingUseCase) Approve(ctx context.Context, actor model.Actor, id uuid.UUID) (*model.Booking, error) {
	return u.transition(ctx, actor, id, actionApprove)
}

func (u *BookingUseCase) MarkPaid(ctx context.Context, actor model.Actor, id uuid.UUID) (*model.Booking, error) {
	return u.transition(ctx, actor, id, actionMarkPaid)
}

// Cancel is only possible while the booking is still requested.
func (u *BookingUseCase) Cancel(ctx context.Context, actor model.Actor, id uuid.UUID) (*model.Booking, error) {
	return u.transition(ctx, actor, id, actionCancel)
}

func (u *BookingUseCase) transition(ctx context.Context, actor model.Actor, id uuid.UUID, action bookingAction) (*model.Booking, error) {
	ctx, span := u.tracer.Start(ctx, "BookingUseCase.Transition", trace.WithAttributes(
		attribute.String("booking.id", id.String()),
		attribute.String("booking.action", action.name),
		attribute.String("actor.id", actor.ID.String()),
	))
	defer span.End()

	if !action.from.CanTransitionTo(action.to) {
		return nil, u.fail(span, fmt.Errorf("booking action %q: %s -> %s is not a lifecycle edge", action.name, action.from, action.to))
	}

	booking, err := u.load(ctx, id)
	if err != nil {
		return nil, u.reject(ctx, span, action.name, err)
	}
	if err := action.authorize(booking, actor); err != nil {
		return nil, u.reject(ctx, span, action.name, err)
	}
	if booking.Status != action.from {
		return nil, u.reject(ctx, span, action.name, action.invalidState(booking.Status))
	}

	updated, err := u.bookings.UpdateStatus(ctx, id, action.from, action.to)
	if err != nil {
		if errors.Is(err, domainErrors.ErrConflict) {
			return nil, u.reject(ctx, span, action.name, domainErrors.Newf(domainErrors.ErrInvalidState,
				"Booking changed while trying to %s it; it is no longer %q", action.name, action.from))
		}
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, u.reject(ctx, span, action.name, domainErrors.New(domainErrors.ErrNotFound, "Booking not found"))
		}
		return nil, u.fail(span, fmt.Errorf("%s booking %s: %w", action.name, id, err))
	}

	span.SetAttributes(attribute.String("booking.status", string(updated.Status)))
	u.metrics.recordTransition(ctx, action.name, updated.Status)
	u.emit(ctx, updated, actor, action.name, action.from, updated.Counterparty(actor.ID),
		action.notifType, fmt.Sprintf(action.message, updated.Title))
	return updated, nil
}

func (u *BookingUseCase) load(ctx context.Context, id uuid.UUID) (*model.Booking, error) {
	booking, err := u.bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, domainErrors.New(domainErrors.ErrNotFound, "Booking not found")
		}
		return nil, fmt.Errorf("load booking %s: %w", id, err)
	}
	return booking, nil
}

// emit hands the notice to the notifier. The caller's cancellation does not reach it.
func (u *BookingUseCase) emit(ctx context.Context, b *model.Booking, actor model.Actor, action string, from model.BookingStatus, recipient uuid.UUID, typ model.NotificationType, message string) {
	if u.notifier == nil {
		return
	}
	now := u.now().UTC()
	u.notifier.Notify(context.WithoutCancel(ctx), model.BookingNotice{
		Notification: model.Notification{
			ID:        uuid.New(),
			UserID:    recipient,
			Type:      typ,
			Message:   message,
			CreatedAt: now,
			UpdatedAt: now,
		},
		Event: model.BookingEvent{
			BookingID:    b.ID,
			Action:       action,
			From:         from,
			To:           b.Status,
			ActorID:      actor.ID,
			ClientID:     b.ClientID,
			FreelancerID: b.FreelancerID,
			OccurredAt:   now,
		},
	})
}

func (u *BookingUseCase) reject(ctx context.Context, span trace.Span, action string, err error) error {
	kind := "internal"
	switch {
	case errors.Is(err, domainErrors.ErrNotFound):
		kind = "not_found"
	case errors.Is(err, domainErrors.ErrForbidden):
		kind = "forbidden"
	case errors.Is(err, domainErrors.ErrInvalidState):
		kind = "invalid_state"
	case errors.Is(err, domainErrors.ErrValidation):
		kind = "validation"
	default:
		return u.fail(span, err)
	}
	span.SetAttributes(attribute.String("booking.rejection", kind))
	u.metrics.recordRejection(ctx, action, kind)
	return err
}

func (u *BookingUseCase) fail(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	u.logger.Error("booking operation failed", zap.Error(err))
	return err
}

type bookingMetrics struct {
	transitions metric.Int64Counter
	rejections  metric.Int64Counter
}

func newBookingMetrics(m metric.Meter) bookingMetrics {
	if m == nil {
		return bookingMetrics{}
	}
	transitions, _ := m.Int64Counter("booking.transitions", metric.WithDescription("Committed booking status changes"))
	rejections, _ := m.Int64Counter("booking.rejections", metric.WithDescription("Booking operations refused by a guard"))
	return bookingMetrics{transitions: transitions, rejections: rejections}
}

func (m bookingMetrics) recordTransition(ctx context.Context, action string, to model.BookingStatus) {
	if m.transitions != nil {
		m.transitions.Add(ctx, 1, metric.WithAttributes(
			attribute.String("action", action),
			attribute.String("status", string(to)),
		))
	}
}

func (m bookingMetrics) recordRejection(ctx context.Context, action, kind string) {
	if m.rejections != nil {
		m.rejections.Add(ctx, 1, metric.WithAttributes(
			attribute.String("action", action),
			attribute.String("kind", kind),
		))
	}
}
