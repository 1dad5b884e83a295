package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/polkiloo/freelancehub/internal/domain/model"
)

// PricingRepository stores freelancer pricing packages.
type PricingRepository interface {
	Create(ctx context.Context, pkg *model.PricingPackage) (*model.PricingPackage, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.PricingPackage, error)
	ListByFreelancer(ctx context.Context, freelancerID uuid.UUID) ([]model.PricingPackage, error)
	Update(ctx context.Context, pkg *model.PricingPackage) (*model.PricingPackage, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
