package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateBookingRequest describes a new booking. Ids arrive as strings and are
// parsed by the handler.
type CreateBookingRequest struct {
	FreelancerID     string  `json:"freelancerId"`
	PricingPackageID *string `json:"pricingPackageId"`
	Title            string  `json:"title"`
	Brief            string  `json:"brief"`
}

// BookingResponse represents a booking in API responses.
type BookingResponse struct {
	ID               uuid.UUID  `json:"id"`
	ClientID         uuid.UUID  `json:"clientId"`
	FreelancerID     uuid.UUID  `json:"freelancerId"`
	PricingPackageID *uuid.UUID `json:"pricingPackageId,omitempty"`
	Title            string     `json:"title"`
	Brief            string     `json:"brief"`
	Status           string     `json:"status"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}

// CancelBookingResponse wraps the cancelled booking with a confirmation.
type CancelBookingResponse struct {
	Message string          `json:"message"`
	Booking BookingResponse `json:"booking"`
}
