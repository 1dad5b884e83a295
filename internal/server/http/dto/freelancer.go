package dto

import (
	"time"

	"github.com/google/uuid"
)

type ProfileRequest struct {
	Specialization string   `json:"specialization"`
	Skills         []string `json:"skills"`
	Experience     int      `json:"experience"`
	Description    string   `json:"description"`
}

// ProfilePatchRequest leaves absent fields untouched.
type ProfilePatchRequest struct {
	Specialization *string  `json:"specialization"`
	Skills         []string `json:"skills"`
	Experience     *int     `json:"experience"`
	Description    *string  `json:"description"`
}

type ProfileResponse struct {
	ID             uuid.UUID `json:"id"`
	UserID         uuid.UUID `json:"userId"`
	Name           string    `json:"name,omitempty"`
	Specialization string    `json:"specialization"`
	Skills         []string  `json:"skills"`
	Experience     int       `json:"experience"`
	Description    string    `json:"description,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// ShowcaseRequest is used for both create and update.
type ShowcaseRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Images      []string `json:"images"`
	Tags        []string `json:"tags"`
}

type ShowcaseResponse struct {
	ID           uuid.UUID `json:"id"`
	FreelancerID uuid.UUID `json:"freelancerId"`
	Title        string    `json:"title"`
	Description  string    `json:"description,omitempty"`
	Images       []string  `json:"images"`
	Tags         []string  `json:"tags"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// FreelancerSummaryResponse is one entry of the freelancer directory.
type FreelancerSummaryResponse struct {
	Profile     ProfileResponse `json:"profile"`
	Name        string          `json:"name"`
	Email       string          `json:"email"`
	Bio         string          `json:"bio,omitempty"`
	AvgRating   float64         `json:"avgRating"`
	ReviewCount int             `json:"reviewCount"`
}

type FreelancerDetailsResponse struct {
	FreelancerSummaryResponse
	Phone   string           `json:"phone,omitempty"`
	Reviews []ReviewResponse `json:"reviews"`
}
