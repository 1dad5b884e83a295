package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/polkiloo/freelancehub/internal/domain/model"
)

// ReviewRepository stores client reviews.
type ReviewRepository interface {
	Create(ctx context.Context, review *model.Review) (*model.Review, error)
	ExistsForBooking(ctx context.Context, bookingID uuid.UUID) (bool, error)
	ListByFreelancer(ctx context.Context, freelancerID uuid.UUID) ([]model.Review, error)
}
