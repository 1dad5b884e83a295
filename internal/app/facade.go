package app

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/fx"

	"github.com/polkiloo/freelancehub/internal/domain/model"
	"github.com/polkiloo/freelancehub/internal/usecase"
)

// HealthChecker reports whether backing storage is reachable.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// MarketplaceFacade exposes the use cases to the HTTP layer.
type MarketplaceFacade struct {
	auth          *usecase.AuthUseCase
	bookings      *usecase.BookingUseCase
	notifications *usecase.NotificationUseCase
	reviews       *usecase.ReviewUseCase
	pricing       *usecase.PricingUseCase
	profiles      *usecase.ProfileUseCase
	showcases     *usecase.ShowcaseUseCase
	freelancers   *usecase.FreelancerUseCase
	health        HealthChecker
}

type facadeParams struct {
	fx.In

	Auth          *usecase.AuthUseCase
	Bookings      *usecase.BookingUseCase
	Notifications *usecase.NotificationUseCase
	Reviews       *usecase.ReviewUseCase
	Pricing       *usecase.PricingUseCase
	Profiles      *usecase.ProfileUseCase
	Showcases     *usecase.ShowcaseUseCase
	Freelancers   *usecase.FreelancerUseCase
	Health        HealthChecker `optional:"true"`
}

func newFacade(p facadeParams) *MarketplaceFacade {
	return NewMarketplaceFacade(p.Auth, p.Bookings, p.Notifications, p.Reviews, p.Pricing,
		p.Profiles, p.Showcases, p.Freelancers, p.Health)
}

// NewMarketplaceFacade builds the facade. health may be nil.
func NewMarketplaceFacade(
	auth *usecase.AuthUseCase,
	bookings *usecase.BookingUseCase,
	notifications *usecase.NotificationUseCase,
	reviews *usecase.ReviewUseCase,
	pricing *usecase.PricingUseCase,
	profiles *usecase.ProfileUseCase,
	showcases *usecase.ShowcaseUseCase,
	freelancers *usecase.FreelancerUseCase,
	health HealthChecker,
) *MarketplaceFacade {
	return &MarketplaceFacade{
		auth:          auth,
		bookings:      bookings,
		notifications: notifications,
		reviews:       reviews,
		pricing:       pricing,
		profiles:      profiles,
		showcases:     showcases,
		freelancers:   freelancers,
		health:        health,
	}
}

func (f *MarketplaceFacade) Register(ctx context.Context, in usecase.RegisterInput) (*model.User, string, error) {
	return f.auth.Register(ctx, in)
}

func (f *MarketplaceFacade) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	return f.auth.Authenticate(ctx, email, password)
}

func (f *MarketplaceFacade) ResolveActor(ctx context.Context, token string) (model.Actor, error) {
	return f.auth.ResolveActor(ctx, token)
}

func (f *MarketplaceFacade) Profile(ctx context.Context, actor model.Actor) (*model.User, error) {
	return f.auth.Profile(ctx, actor.ID)
}

func (f *MarketplaceFacade) CreateBooking(ctx context.Context, actor model.Actor, in usecase.CreateBookingInput) (*model.Booking, error) {
	return f.bookings.Create(ctx, actor, in)
}

func (f *MarketplaceFacade) Bookings(ctx context.Context, actor model.Actor) ([]model.Booking, error) {
	return f.bookings.List(ctx, actor)
}

func (f *MarketplaceFacade) Booking(ctx context.Context, actor model.Actor, id uuid.UUID) (*model.Booking, error) {
	return f.bookings.Get(ctx, actor, id)
}

func (f *MarketplaceFacade) AcceptBooking(ctx context.Context, actor model.Actor, id uuid.UUID) (*model.Booking, error) {
	return f.bookings.Accept(ctx, actor, id)
}

func (f *MarketplaceFacade) StartBooking(ctx context.Context, actor model.Actor, id uuid.UUID) (*model.Booking, error) {
	return f.bookings.Start(ctx, actor, id)
}

func (f *MarketplaceFacade) SubmitBooking(ctx context.Context, actor model.Actor, id uuid.UUID) (*model.Booking, error) {
	return f.bookings.Submit(ctx, actor, id)
}

func (f *MarketplaceFacade) ApproveBooking(ctx context.Context, actor model.Actor, id uuid.UUID) (*model.Booking, error) {
	return f.bookings.Approve(ctx, actor, id)
}

func (f *MarketplaceFacade) MarkBookingPaid(ctx context.Context, actor model.Actor, id uuid.UUID) (*model.Booking, error) {
	return f.bookings.MarkPaid(ctx, actor, id)
}

func (f *MarketplaceFacade) CancelBooking(ctx context.Context, actor model.Actor, id uuid.UUID) (*model.Booking, error) {
	return f.bookings.Cancel(ctx, actor, id)
}

func (f *MarketplaceFacade) Notifications(ctx context.Context, actor model.Actor) ([]model.Notification, error) {
	return f.notifications.List(ctx, actor)
}

func (f *MarketplaceFacade) UnreadNotifications(ctx context.Context, actor model.Actor) (int64, error) {
	return f.notifications.UnreadCount(ctx, actor)
}

func (f *MarketplaceFacade) MarkNotificationRead(ctx context.Context, actor model.Actor, id uuid.UUID) (*model.Notification, error) {
	return f.notifications.MarkRead(ctx, actor, id)
}

func (f *MarketplaceFacade) MarkAllNotificationsRead(ctx context.Context, actor model.Actor) (int64, error) {
	return f.notifications.MarkAllRead(ctx, actor)
}

func (f *MarketplaceFacade) CreateReview(ctx context.Context, actor model.Actor, in usecase.CreateReviewInput) (*model.Review, error) {
	return f.reviews.Create(ctx, actor, in)
}

func (f *MarketplaceFacade) FreelancerReviews(ctx context.Context, freelancerID uuid.UUID) ([]model.Review, error) {
	return f.reviews.ListByFreelancer(ctx, freelancerID)
}

func (f *MarketplaceFacade) CreatePricingPackage(ctx context.Context, actor model.Actor, in usecase.PricingInput) (*model.PricingPackage, error) {
	return f.pricing.Create(ctx, actor, in)
}

func (f *MarketplaceFacade) FreelancerPricingPackages(ctx context.Context, freelancerID uuid.UUID) ([]model.PricingPackage, error) {
	return f.pricing.ListByFreelancer(ctx, freelancerID)
}

func (f *MarketplaceFacade) UpdatePricingPackage(ctx context.Context, actor model.Actor, id uuid.UUID, in usecase.PricingInput) (*model.PricingPackage, error) {
	return f.pricing.Update(ctx, actor, id, in)
}

func (f *MarketplaceFacade) DeletePricingPackage(ctx context.Context, actor model.Actor, id uuid.UUID) error {
	return f.pricing.Delete(ctx, actor, id)
}

func (f *MarketplaceFacade) CreateProfile(ctx context.Context, actor model.Actor, in usecase.ProfileInput) (*model.FreelancerProfile, error) {
	return f.profiles.Create(ctx, actor, in)
}

func (f *MarketplaceFacade) FreelancerProfile(ctx context.Context, userID uuid.UUID) (*model.FreelancerSummary, error) {
	return f.profiles.Get(ctx, userID)
}

func (f *MarketplaceFacade) UpdateProfile(ctx context.Context, actor model.Actor, patch usecase.ProfilePatch) (*model.FreelancerProfile, error) {
	return f.profiles.Update(ctx, actor, patch)
}

func (f *MarketplaceFacade) DeleteProfile(ctx context.Context, actor model.Actor) error {
	return f.profiles.Delete(ctx, actor)
}

func (f *MarketplaceFacade) CreateShowcase(ctx context.Context, actor model.Actor, in usecase.ShowcaseInput) (*model.ProjectShowcase, error) {
	return f.showcases.Create(ctx, actor, in)
}

func (f *MarketplaceFacade) FreelancerShowcases(ctx context.Context, freelancerID uuid.UUID) ([]model.ProjectShowcase, error) {
	return f.showcases.ListByFreelancer(ctx, freelancerID)
}

func (f *MarketplaceFacade) UpdateShowcase(ctx context.Context, actor model.Actor, id uuid.UUID, in usecase.ShowcaseInput) (*model.ProjectShowcase, error) {
	return f.showcases.Update(ctx, actor, id, in)
}

func (f *MarketplaceFacade) DeleteShowcase(ctx context.Context, actor model.Actor, id uuid.UUID) error {
	return f.showcases.Delete(ctx, actor, id)
}

func (f *MarketplaceFacade) BrowseFreelancers(ctx context.Context, filter model.FreelancerFilter) ([]model.FreelancerSummary, error) {
	return f.freelancers.Browse(ctx, filter)
}

func (f *MarketplaceFacade) FreelancerDetails(ctx context.Context, userID uuid.UUID) (*model.FreelancerDetails, error) {
	return f.freelancers.Details(ctx, userID)
}

// HealthCheck succeeds when no checker is configured.
func (f *MarketplaceFacade) HealthCheck(ctx context.Context) error {
	if f.health == nil {
		return nil
	}
	return f.health.HealthCheck(ctx)
}
