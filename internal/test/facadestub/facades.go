// Package facadestub holds stubs of the HTTP facade interfaces.
package facadestub

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/polkiloo/freelancehub/internal/domain/model"
	testhelpers "github.com/polkiloo/freelancehub/internal/test"
	"github.com/polkiloo/freelancehub/internal/usecase"
)

var stubTime = time.Date(2024, time.January, 2, 3, 4, 5, 0, time.UTC)

// AuthFacadeStub simulates authentication facade interactions.
type AuthFacadeStub struct {
	RegisterFn     func(context.Context, usecase.RegisterInput) (*model.User, string, error)
	AuthenticateFn func(context.Context, string, string) (*model.User, string, error)
	ResolveFn      func(context.Context, string) (model.Actor, error)
	ProfileFn      func(context.Context, model.Actor) (*model.User, error)
}

// Register echoes the input back as a freshly created user.
func (s AuthFacadeStub) Register(ctx context.Context, in usecase.RegisterInput) (*model.User, string, error) {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, in)
	}
	role, err := model.ParseRole(in.Role)
	if err != nil {
		role = model.RoleClient
	}
	user := &model.User{ID: uuid.New(), Name: in.Name, Email: in.Email, Role: role, CreatedAt: stubTime, UpdatedAt: stubTime}
	return user, testhelpers.TokenFor(user.Actor()), nil
}

// Authenticate returns a client user for any credentials.
func (s AuthFacadeStub) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	if s.AuthenticateFn != nil {
		return s.AuthenticateFn(ctx, email, password)
	}
	user := &model.User{ID: uuid.New(), Name: "user", Email: email, Role: model.RoleClient, CreatedAt: stubTime, UpdatedAt: stubTime}
	return user, testhelpers.TokenFor(user.Actor()), nil
}

// ResolveActor understands the tokens issued by TokenFor.
func (s AuthFacadeStub) ResolveActor(ctx context.Context, token string) (model.Actor, error) {
	if s.ResolveFn != nil {
		return s.ResolveFn(ctx, token)
	}
	return testhelpers.ParseStubToken(token)
}

// Profile returns a user for the actor.
func (s AuthFacadeStub) Profile(ctx context.Context, actor model.Actor) (*model.User, error) {
	if s.ProfileFn != nil {
		return s.ProfileFn(ctx, actor)
	}
	return &model.User{ID: actor.ID, Name: "user", Email: "user@example.com", Role: actor.Role, PasswordHash: "secret-hash"}, nil
}

// BookingFacadeStub provides controllable behaviour for booking endpoints.
// Transitions go through TransitionFn with the action name ("accept", "start",
// "submit", "approve", "mark-paid", "cancel").
type BookingFacadeStub struct {
	CreateFn     func(context.Context, model.Actor, usecase.CreateBookingInput) (*model.Booking, error)
	ListFn       func(context.Context, model.Actor) ([]model.Booking, error)
	GetFn        func(context.Context, model.Actor, uuid.UUID) (*model.Booking, error)
	TransitionFn func(ctx context.Context, action string, actor model.Actor, id uuid.UUID) (*model.Booking, error)
}

var stubActionStatus = map[string]model.BookingStatus{
	"accept":    model.BookingStatusAccepted,
	"start":     model.BookingStatusInProgress,
	"submit":    model.BookingStatusSubmitted,
	"approve":   model.BookingStatusCompleted,
	"mark-paid": model.BookingStatusPaid,
	"cancel":    model.BookingStatusCancelled,
}

// CreateBooking returns a requested booking built from the input.
func (s BookingFacadeStub) CreateBooking(ctx context.Context, actor model.Actor, in usecase.CreateBookingInput) (*model.Booking, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, actor, in)
	}
	return &model.Booking{
		ID:               uuid.New(),
		ClientID:         actor.ID,
		FreelancerID:     in.FreelancerID,
		PricingPackageID: in.PricingPackageID,
		Title:            in.Title,
		Brief:            in.Brief,
		Status:           model.BookingStatusRequested,
		CreatedAt:        stubTime,
		UpdatedAt:        stubTime,
	}, nil
}

// Bookings returns an empty list unless overridden.
func (s BookingFacadeStub) Bookings(ctx context.Context, actor model.Actor) ([]model.Booking, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, actor)
	}
	return nil, nil
}

// Booking returns a requested booking where the actor is the client.
func (s BookingFacadeStub) Booking(ctx context.Context, actor model.Actor, id uuid.UUID) (*model.Booking, error) {
	if s.GetFn != nil {
		return s.GetFn(ctx, actor, id)
	}
	return &model.Booking{ID: id, ClientID: actor.ID, FreelancerID: uuid.New(), Status: model.BookingStatusRequested}, nil
}

func (s BookingFacadeStub) transition(ctx context.Context, action string, actor model.Actor, id uuid.UUID) (*model.Booking, error) {
	if s.TransitionFn != nil {
		return s.TransitionFn(ctx, action, actor, id)
	}
	return &model.Booking{ID: id, ClientID: actor.ID, FreelancerID: uuid.New(), Status: stubActionStatus[action]}, nil
}

func (s BookingFacadeStub) AcceptBooking(ctx context.Context, actor model.Actor, id uuid.UUID) (*model.Booking, error) {
	return s.transition(ctx, "accept", actor, id)
}

func (s BookingFacadeStub) StartBooking(ctx context.Context, actor model.Actor, id uuid.UUID) (*model.Booking, error) {
	return s.transition(ctx, "start", actor, id)
}

func (s BookingFacadeStub) SubmitBooking(ctx context.Context, actor model.Actor, id uuid.UUID) (*model.Booking, error) {
	return s.transition(ctx, "submit", actor, id)
}

func (s BookingFacadeStub) ApproveBooking(ctx context.Context, actor model.Actor, id uuid.UUID) (*model.Booking, error) {
	return s.transition(ctx, "approve", actor, id)
}

func (s BookingFacadeStub) MarkBookingPaid(ctx context.Context, actor model.Actor, id uuid.UUID) (*model.Booking, error) {
	return s.transition(ctx, "mark-paid", actor, id)
}

func (s BookingFacadeStub) CancelBooking(ctx context.Context, actor model.Actor, id uuid.UUID) (*model.Booking, error) {
	return s.transition(ctx, "cancel", actor, id)
}

// NotificationFacadeStub simulates the notification inbox.
type NotificationFacadeStub struct {
	ListFn     func(context.Context, model.Actor) ([]model.Notification, error)
	UnreadFn   func(context.Context, model.Actor) (int64, error)
	MarkReadFn func(context.Context, model.Actor, uuid.UUID) (*model.Notification, error)
	MarkAllFn  func(context.Context, model.Actor) (int64, error)
}

func (s NotificationFacadeStub) Notifications(ctx context.Context, actor model.Actor) ([]model.Notification, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, actor)
	}
	return nil, nil
}

func (s NotificationFacadeStub) UnreadNotifications(ctx context.Context, actor model.Actor) (int64, error) {
	if s.UnreadFn != nil {
		return s.UnreadFn(ctx, actor)
	}
	return 0, nil
}

func (s NotificationFacadeStub) MarkNotificationRead(ctx context.Context, actor model.Actor, id uuid.UUID) (*model.Notification, error) {
	if s.MarkReadFn != nil {
		return s.MarkReadFn(ctx, actor, id)
	}
	return &model.Notification{ID: id, UserID: actor.ID, IsRead: true}, nil
}

func (s NotificationFacadeStub) MarkAllNotificationsRead(ctx context.Context, actor model.Actor) (int64, error) {
	if s.MarkAllFn != nil {
		return s.MarkAllFn(ctx, actor)
	}
	return 0, nil
}

// ReviewFacadeStub simulates review operations.
type ReviewFacadeStub struct {
	CreateFn func(context.Context, model.Actor, usecase.CreateReviewInput) (*model.Review, error)
	ListFn   func(context.Context, uuid.UUID) ([]model.Review, error)
}

func (s ReviewFacadeStub) CreateReview(ctx context.Context, actor model.Actor, in usecase.CreateReviewInput) (*model.Review, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, actor, in)
	}
	return &model.Review{ID: uuid.New(), BookingID: in.BookingID, ClientID: actor.ID, Rating: in.Rating, Comment: in.Comment}, nil
}

func (s ReviewFacadeStub) FreelancerReviews(ctx context.Context, freelancerID uuid.UUID) ([]model.Review, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, freelancerID)
	}
	return nil, nil
}

// PricingFacadeStub simulates pricing package management.
type PricingFacadeStub struct {
	CreateFn func(context.Context, model.Actor, usecase.PricingInput) (*model.PricingPackage, error)
	ListFn   func(context.Context, uuid.UUID) ([]model.PricingPackage, error)
	UpdateFn func(context.Context, model.Actor, uuid.UUID, usecase.PricingInput) (*model.PricingPackage, error)
	DeleteFn func(context.Context, model.Actor, uuid.UUID) error
}

func (s PricingFacadeStub) CreatePricingPackage(ctx context.Context, actor model.Actor, in usecase.PricingInput) (*model.PricingPackage, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, actor, in)
	}
	return &model.PricingPackage{ID: uuid.New(), FreelancerID: actor.ID, Title: in.Title, Description: in.Description, Price: in.Price, DeliveryDays: in.DeliveryDays}, nil
}

func (s PricingFacadeStub) FreelancerPricingPackages(ctx context.Context, freelancerID uuid.UUID) ([]model.PricingPackage, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, freelancerID)
	}
	return nil, nil
}

func (s PricingFacadeStub) UpdatePricingPackage(ctx context.Context, actor model.Actor, id uuid.UUID, in usecase.PricingInput) (*model.PricingPackage, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, actor, id, in)
	}
	return &model.PricingPackage{ID: id, FreelancerID: actor.ID, Title: in.Title, Description: in.Description, Price: in.Price, DeliveryDays: in.DeliveryDays}, nil
}

func (s PricingFacadeStub) DeletePricingPackage(ctx context.Context, actor model.Actor, id uuid.UUID) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, actor, id)
	}
	return nil
}

// ProfileFacadeStub echoes profile input back.
type ProfileFacadeStub struct {
	CreateFn func(context.Context, model.Actor, usecase.ProfileInput) (*model.FreelancerProfile, error)
	GetFn    func(context.Context, uuid.UUID) (*model.FreelancerSummary, error)
	UpdateFn func(context.Context, model.Actor, usecase.ProfilePatch) (*model.FreelancerProfile, error)
	DeleteFn func(context.Context, model.Actor) error
}

func (s ProfileFacadeStub) CreateProfile(ctx context.Context, actor model.Actor, in usecase.ProfileInput) (*model.FreelancerProfile, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, actor, in)
	}
	return &model.FreelancerProfile{ID: uuid.New(), UserID: actor.ID, Specialization: in.Specialization, Skills: in.Skills, Experience: in.Experience, Description: in.Description}, nil
}

func (s ProfileFacadeStub) FreelancerProfile(ctx context.Context, userID uuid.UUID) (*model.FreelancerSummary, error) {
	if s.GetFn != nil {
		return s.GetFn(ctx, userID)
	}
	return &model.FreelancerSummary{Profile: model.FreelancerProfile{ID: uuid.New(), UserID: userID}}, nil
}

func (s ProfileFacadeStub) UpdateProfile(ctx context.Context, actor model.Actor, patch usecase.ProfilePatch) (*model.FreelancerProfile, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, actor, patch)
	}
	profile := &model.FreelancerProfile{ID: uuid.New(), UserID: actor.ID, Skills: patch.Skills}
	if patch.Specialization != nil {
		profile.Specialization = *patch.Specialization
	}
	if patch.Experience != nil {
		profile.Experience = *patch.Experience
	}
	return profile, nil
}

func (s ProfileFacadeStub) DeleteProfile(ctx context.Context, actor model.Actor) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, actor)
	}
	return nil
}

// ShowcaseFacadeStub echoes showcase input back.
type ShowcaseFacadeStub struct {
	CreateFn func(context.Context, model.Actor, usecase.ShowcaseInput) (*model.ProjectShowcase, error)
	ListFn   func(context.Context, uuid.UUID) ([]model.ProjectShowcase, error)
	UpdateFn func(context.Context, model.Actor, uuid.UUID, usecase.ShowcaseInput) (*model.ProjectShowcase, error)
	DeleteFn func(context.Context, model.Actor, uuid.UUID) error
}

func (s ShowcaseFacadeStub) CreateShowcase(ctx context.Context, actor model.Actor, in usecase.ShowcaseInput) (*model.ProjectShowcase, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, actor, in)
	}
	return &model.ProjectShowcase{ID: uuid.New(), FreelancerID: actor.ID, Title: in.Title, Description: in.Description, Images: in.Images, Tags: in.Tags}, nil
}

func (s ShowcaseFacadeStub) FreelancerShowcases(ctx context.Context, freelancerID uuid.UUID) ([]model.ProjectShowcase, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, freelancerID)
	}
	return nil, nil
}

func (s ShowcaseFacadeStub) UpdateShowcase(ctx context.Context, actor model.Actor, id uuid.UUID, in usecase.ShowcaseInput) (*model.ProjectShowcase, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, actor, id, in)
	}
	return &model.ProjectShowcase{ID: id, FreelancerID: actor.ID, Title: in.Title, Description: in.Description, Images: in.Images, Tags: in.Tags}, nil
}

func (s ShowcaseFacadeStub) DeleteShowcase(ctx context.Context, actor model.Actor, id uuid.UUID) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, actor, id)
	}
	return nil
}

// FreelancerFacadeStub serves an empty directory unless overridden.
type FreelancerFacadeStub struct {
	BrowseFn  func(context.Context, model.FreelancerFilter) ([]model.FreelancerSummary, error)
	DetailsFn func(context.Context, uuid.UUID) (*model.FreelancerDetails, error)
}

func (s FreelancerFacadeStub) BrowseFreelancers(ctx context.Context, filter model.FreelancerFilter) ([]model.FreelancerSummary, error) {
	if s.BrowseFn != nil {
		return s.BrowseFn(ctx, filter)
	}
	return nil, nil
}

func (s FreelancerFacadeStub) FreelancerDetails(ctx context.Context, userID uuid.UUID) (*model.FreelancerDetails, error) {
	if s.DetailsFn != nil {
		return s.DetailsFn(ctx, userID)
	}
	return &model.FreelancerDetails{FreelancerSummary: model.FreelancerSummary{Profile: model.FreelancerProfile{UserID: userID}}}, nil
}

// HealthFacadeStub reports Err from HealthCheck.
type HealthFacadeStub struct {
	Err error
}

func (s HealthFacadeStub) HealthCheck(context.Context) error {
	return s.Err
}

// MarketplaceFacadeStub aggregates facade dependencies for HTTP layer tests.
type MarketplaceFacadeStub struct {
	AuthFacadeStub
	BookingFacadeStub
	NotificationFacadeStub
	ReviewFacadeStub
	PricingFacadeStub
	ProfileFacadeStub
	ShowcaseFacadeStub
	FreelancerFacadeStub
	HealthFacadeStub
}
