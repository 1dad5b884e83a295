package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/polkiloo/freelancehub/internal/domain/model"
)

// ProfileRepository stores freelancer profiles keyed by their owner.
type ProfileRepository interface {
	Create(ctx context.Context, profile *model.FreelancerProfile) (*model.FreelancerProfile, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*model.FreelancerProfile, error)
	Update(ctx context.Context, profile *model.FreelancerProfile) (*model.FreelancerProfile, error)
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error
}

// FreelancerDirectory reads profiles joined with their owner and review totals.
type FreelancerDirectory interface {
	Search(ctx context.Context, filter model.FreelancerFilter) ([]model.FreelancerSummary, error)
	Summary(ctx context.Context, userID uuid.UUID) (*model.FreelancerSummary, error)
}
