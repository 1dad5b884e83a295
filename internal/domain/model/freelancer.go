package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	ProfileDescriptionMaxLen  = 1000
	ShowcaseDescriptionMaxLen = 1000
)

// FreelancerProfile is the public card of a freelancer. One per user.
type FreelancerProfile struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	Specialization string
	Skills         []string
	Experience     int
	Description    string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ProjectShowcase is a past project a freelancer presents in their portfolio.
type ProjectShowcase struct {
	ID           uuid.UUID
	FreelancerID uuid.UUID
	Title        string
	Description  string
	Images       []string
	Tags         []string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// FreelancerSummary joins a profile with its owner and the rating earned
// through reviews. AvgRating is rounded to one decimal and 0 without reviews.
type FreelancerSummary struct {
	Profile     FreelancerProfile
	Name        string
	Email       string
	Phone       string
	Bio         string
	AvgRating   float64
	ReviewCount int
}

// FreelancerDetails is a summary together with every review, newest first.
type FreelancerDetails struct {
	FreelancerSummary
	Reviews []Review
}

// FreelancerFilter narrows the freelancer directory. Zero fields do not filter.
type FreelancerFilter struct {
	// Skills matches profiles having at least one of them.
	Skills         []string
	MinExperience  *int
	MaxExperience  *int
	Specialization string
	// Search matches name, specialization, description or any skill, case-insensitively.
	Search    string
	MinRating *float64
	MaxRating *float64
}
