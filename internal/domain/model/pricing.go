package model

import (
	"time"

	"github.com/google/uuid"
)

const PricingDescriptionMaxLen = 1000

// PricingPackage is a fixed-price offer published by a freelancer.
type PricingPackage struct {
	ID           uuid.UUID
	FreelancerID uuid.UUID
	Title        string
	Description  string
	Price        float64
	DeliveryDays int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
