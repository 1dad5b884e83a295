package dto

import (
	"time"

	"github.com/google/uuid"
)

// PricingPackageRequest is used for both create and update.
type PricingPackageRequest struct {
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	Price        float64 `json:"price"`
	DeliveryDays int     `json:"deliveryDays"`
}

type PricingPackageResponse struct {
	ID           uuid.UUID `json:"id"`
	FreelancerID uuid.UUID `json:"freelancerId"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Price        float64   `json:"price"`
	DeliveryDays int       `json:"deliveryDays"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
