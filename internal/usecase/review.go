package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	domainErrors "github.com/polkiloo/freelancehub/internal/domain/errors"
	"github.com/polkiloo/freelancehub/internal/domain/model"
	"github.com/polkiloo/freelancehub/internal/domain/repository"
)

var alreadyReviewed = domainErrors.New(domainErrors.ErrAlreadyExists, "This booking has already been reviewed")

// CreateReviewInput is a client's review of a finished booking.
type CreateReviewInput struct {
	BookingID uuid.UUID
	Rating    int
	Comment   string
}

// ReviewUseCase lets clients rate completed work.
type ReviewUseCase struct {
	reviews  repository.ReviewRepository
	bookings repository.BookingRepository
}

// NewReviewUseCase constructs ReviewUseCase.
func NewReviewUseCase(reviews repository.ReviewRepository, bookings repository.BookingRepository) *ReviewUseCase {
	return &ReviewUseCase{reviews: reviews, bookings: bookings}
}

// Create stores a review. Only the booking's client may review, and only once
// the booking is completed or paid.
func (u *ReviewUseCase) Create(ctx context.Context, actor model.Actor, in CreateReviewInput) (*model.Review, error) {
	booking, err := u.bookings.GetByID(ctx, in.BookingID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, domainErrors.New(domainErrors.ErrNotFound, "Booking not found")
		}
		return nil, err
	}
	if booking.ClientID != actor.ID {
		return nil, domainErrors.New(domainErrors.ErrForbidden, "You are not allowed to review this booking")
	}
	if booking.Status != model.BookingStatusCompleted && booking.Status != model.BookingStatusPaid {
		return nil, domainErrors.New(domainErrors.ErrInvalidState, "Review allowed only after work is completed")
	}
	exists, err := u.reviews.ExistsForBooking(ctx, booking.ID)
	if err != nil {
		return nil, fmt.Errorf("check existing review: %w", err)
	}
	if exists {
		return nil, alreadyReviewed
	}
	if in.Rating < model.ReviewMinRating || in.Rating > model.ReviewMaxRating {
		return nil, domainErrors.Newf(domainErrors.ErrValidation,
			"Rating must be between %d and %d", model.ReviewMinRating, model.ReviewMaxRating)
	}
	comment := strings.TrimSpace(in.Comment)
	if utf8.RuneCountInString(comment) > model.ReviewCommentMaxLen {
		return nil, domainErrors.Newf(domainErrors.ErrValidation,
			"Comment must be at most %d characters", model.ReviewCommentMaxLen)
	}

	review, err := u.reviews.Create(ctx, &model.Review{
		ID:           uuid.New(),
		BookingID:    booking.ID,
		ClientID:     booking.ClientID,
		FreelancerID: booking.FreelancerID,
		Rating:       in.Rating,
		Comment:      comment,
	})
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrAlreadyExists):
			return nil, alreadyReviewed
		case errors.Is(err, domainErrors.ErrInvalidState), errors.Is(err, domainErrors.ErrNotFound):
			return nil, err
		}
		return nil, fmt.Errorf("create review: %w", err)
	}
	return review, nil
}

// ListByFreelancer returns the reviews a freelancer received, newest first.
func (u *ReviewUseCase) ListByFreelancer(ctx context.Context, freelancerID uuid.UUID) ([]model.Review, error) {
	return u.reviews.ListByFreelancer(ctx, freelancerID)
}
