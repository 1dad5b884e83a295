package handlers

import (
	"context"

	"github.com/google/uuid"

	"github.com/polkiloo/freelancehub/internal/domain/model"
	"github.com/polkiloo/freelancehub/internal/usecase"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, in usecase.RegisterInput) (*model.User, string, error)
	Authenticate(ctx context.Context, email, password string) (*model.User, string, error)
	ResolveActor(ctx context.Context, token string) (model.Actor, error)
	Profile(ctx context.Context, actor model.Actor) (*model.User, error)
}

// BookingFacade exposes the booking lifecycle.
type BookingFacade interface {
	CreateBooking(ctx context.Context, actor model.Actor, in usecase.CreateBookingInput) (*model.Booking, error)
	Bookings(ctx context.Context, actor model.Actor) ([]model.Booking, error)
	Booking(ctx context.Context, actor model.Actor, id uuid.UUID) (*model.Booking, error)
	AcceptBooking(ctx context.Context, actor model.Actor, id uuid.UUID) (*model.Booking, error)
	StartBooking(ctx context.Context, actor model.Actor, id uuid.UUID) (*model.Booking, error)
	SubmitBooking(ctx context.Context, actor model.Actor, id uuid.UUID) (*model.Booking, error)
	ApproveBooking(ctx context.Context, actor model.Actor, id uuid.UUID) (*model.Booking, error)
	MarkBookingPaid(ctx context.Context, actor model.Actor, id uuid.UUID) (*model.Booking, error)
	CancelBooking(ctx context.Context, actor model.Actor, id uuid.UUID) (*model.Booking, error)
}

// NotificationFacade exposes the actor's inbox.
type NotificationFacade interface {
	Notifications(ctx context.Context, actor model.Actor) ([]model.Notification, error)
	UnreadNotifications(ctx context.Context, actor model.Actor) (int64, error)
	MarkNotificationRead(ctx context.Context, actor model.Actor, id uuid.UUID) (*model.Notification, error)
	MarkAllNotificationsRead(ctx context.Context, actor model.Actor) (int64, error)
}

type ReviewFacade interface {
	CreateReview(ctx context.Context, actor model.Actor, in usecase.CreateReviewInput) (*model.Review, error)
	FreelancerReviews(ctx context.Context, freelancerID uuid.UUID) ([]model.Review, error)
}

type PricingFacade interface {
	CreatePricingPackage(ctx context.Context, actor model.Actor, in usecase.PricingInput) (*model.PricingPackage, error)
	FreelancerPricingPackages(ctx context.Context, freelancerID uuid.UUID) ([]model.PricingPackage, error)
	UpdatePricingPackage(ctx context.Context, actor model.Actor, id uuid.UUID, in usecase.PricingInput) (*model.PricingPackage, error)
	DeletePricingPackage(ctx context.Context, actor model.Actor, id uuid.UUID) error
}

type ProfileFacade interface {
	CreateProfile(ctx context.Context, actor model.Actor, in usecase.ProfileInput) (*model.FreelancerProfile, error)
	FreelancerProfile(ctx context.Context, userID uuid.UUID) (*model.FreelancerSummary, error)
	UpdateProfile(ctx context.Context, actor model.Actor, patch usecase.ProfilePatch) (*model.FreelancerProfile, error)
	DeleteProfile(ctx context.Context, actor model.Actor) error
}

type ShowcaseFacade interface {
	CreateShowcase(ctx context.Context, actor model.Actor, in usecase.ShowcaseInput) (*model.ProjectShowcase, error)
	FreelancerShowcases(ctx context.Context, freelancerID uuid.UUID) ([]model.ProjectShowcase, error)
	UpdateShowcase(ctx context.Context, actor model.Actor, id uuid.UUID, in usecase.ShowcaseInput) (*model.ProjectShowcase, error)
	DeleteShowcase(ctx context.Context, actor model.Actor, id uuid.UUID) error
}

// FreelancerFacade exposes the public freelancer directory.
type FreelancerFacade interface {
	BrowseFreelancers(ctx context.Context, filter model.FreelancerFilter) ([]model.FreelancerSummary, error)
	FreelancerDetails(ctx context.Context, userID uuid.UUID) (*model.FreelancerDetails, error)
}

type HealthFacade interface {
	HealthCheck(ctx context.Context) error
}

// MarketplaceFacade aggregates the full set of operations used across handlers.
type MarketplaceFacade interface {
	AuthFacade
	BookingFacade
	NotificationFacade
	ReviewFacade
	PricingFacade
	ProfileFacade
	ShowcaseFacade
	FreelancerFacade
	HealthFacade
}
