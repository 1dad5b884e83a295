package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateReviewRequest describes a client's review of a booking.
type CreateReviewRequest struct {
	BookingID string `json:"bookingId" binding:"required"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
}

type ReviewResponse struct {
	ID           uuid.UUID `json:"id"`
	BookingID    uuid.UUID `json:"bookingId"`
	ClientID     uuid.UUID `json:"clientId"`
	FreelancerID uuid.UUID `json:"freelancerId"`
	Rating       int       `json:"rating"`
	Comment      string    `json:"comment,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
