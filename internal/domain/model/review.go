package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	ReviewMinRating     = 1
	ReviewMaxRating     = 5
	ReviewCommentMaxLen = 1000
)

// Review is a client's rating of finished work. One per booking.
type Review struct {
	ID           uuid.UUID
	BookingID    uuid.UUID
	ClientID     uuid.UUID
	FreelancerID uuid.UUID
	Rating       int
	Comment      string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
