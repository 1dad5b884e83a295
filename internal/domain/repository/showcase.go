package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/polkiloo/freelancehub/internal/domain/model"
)

// ShowcaseRepository stores portfolio projects.
type ShowcaseRepository interface {
	Create(ctx context.Context, showcase *model.ProjectShowcase) (*model.ProjectShowcase, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.ProjectShowcase, error)
	ListByFreelancer(ctx context.Context, freelancerID uuid.UUID) ([]model.ProjectShowcase, error)
	Update(ctx context.Context, showcase *model.ProjectShowcase) (*model.ProjectShowcase, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
