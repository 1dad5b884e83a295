package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/polkiloo/freelancehub/internal/domain/model"
)

// BookingRepository persists bookings.
//
// UpdateStatus is a compare-and-set: it moves the booking from `from` to `to`
// only if the stored status still equals `from`, and returns ErrConflict otherwise.
type BookingRepository interface {
	Create(ctx context.Context, booking *model.Booking) (*model.Booking, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Booking, error)
	ListByClient(ctx context.Context, clientID uuid.UUID) ([]model.Booking, error)
	ListByFreelancer(ctx context.Context, freelancerID uuid.UUID) ([]model.Booking, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to model.BookingStatus) (*model.Booking, error)
}
