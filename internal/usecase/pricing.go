package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	domainErrors "github.com/polkiloo/freelancehub/internal/domain/errors"
	"github.com/polkiloo/freelancehub/internal/domain/model"
	"github.com/polkiloo/freelancehub/internal/domain/repository"
)

// PricingInput holds the editable fields of a pricing package.
type PricingInput struct {
	Title        string
	Description  string
	Price        float64
	DeliveryDays int
}

func (in PricingInput) validate() (PricingInput, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
	switch {
	case in.Title == "" || in.Description == "":
		return in, domainErrors.New(domainErrors.ErrValidation, "Title and description are required")
	case utf8.RuneCountInString(in.Description) > model.PricingDescriptionMaxLen:
		return in, domainErrors.Newf(domainErrors.ErrValidation,
			"Description must be at most %d characters", model.PricingDescriptionMaxLen)
	case in.Price < 0:
		return in, domainErrors.New(domainErrors.ErrValidation, "Price must not be negative")
	case in.DeliveryDays < 1:
		return in, domainErrors.New(domainErrors.ErrValidation, "Delivery time must be at least one day")
	}
	return in, nil
}

// PricingUseCase manages the packages freelancers offer.
type PricingUseCase struct {
	packages repository.PricingRepository
}

// NewPricingUseCase constructs PricingUseCase.
func NewPricingUseCase(packages repository.PricingRepository) *PricingUseCase {
	return &PricingUseCase{packages: packages}
}

// Create publishes a new package for the acting freelancer.
func (u *PricingUseCase) Create(ctx context.Context, actor model.Actor, in PricingInput) (*model.PricingPackage, error) {
	if actor.Role != model.RoleFreelancer {
		return nil, domainErrors.New(domainErrors.ErrForbidden, "Only freelancers can create pricing packages")
	}
	in, err := in.validate()
	if err != nil {
		return nil, err
	}

	pkg, err := u.packages.Create(ctx, &model.PricingPackage{
		ID:           uuid.New(),
		FreelancerID: actor.ID,
		Title:        in.Title,
		Description:  in.Description,
		Price:        in.Price,
		DeliveryDays: in.DeliveryDays,
	})
	if err != nil {
		return nil, duplicateTitle(err)
	}
	return pkg, nil
}

// ListByFreelancer returns every package a freelancer offers.
func (u *PricingUseCase) ListByFreelancer(ctx context.Context, freelancerID uuid.UUID) ([]model.PricingPackage, error) {
	return u.packages.ListByFreelancer(ctx, freelancerID)
}

// Update replaces the editable fields of a package owned by the actor.
func (u *PricingUseCase) Update(ctx context.Context, actor model.Actor, id uuid.UUID, in PricingInput) (*model.PricingPackage, error) {
	pkg, err := u.owned(ctx, actor, id, "update")
	if err != nil {
		return nil, err
	}
	if in, err = in.validate(); err != nil {
		return nil, err
	}

	pkg.Title = in.Title
	pkg.Description = in.Description
	pkg.Price = in.Price
	pkg.DeliveryDays = in.DeliveryDays

	updated, err := u.packages.Update(ctx, pkg)
	if err != nil {
		return nil, duplicateTitle(err)
	}
	return updated, nil
}

// Delete removes a package owned by the actor.
func (u *PricingUseCase) Delete(ctx context.Context, actor model.Actor, id uuid.UUID) error {
	if _, err := u.owned(ctx, actor, id, "delete"); err != nil {
		return err
	}
	if err := u.packages.Delete(ctx, id); err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return domainErrors.New(domainErrors.ErrNotFound, "Pricing package not found")
		}
		return fmt.Errorf("delete pricing package: %w", err)
	}
	return nil
}

func (u *PricingUseCase) owned(ctx context.Context, actor model.Actor, id uuid.UUID, verb string) (*model.PricingPackage, error) {
	pkg, err := u.packages.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, domainErrors.New(domainErrors.ErrNotFound, "Pricing package not found")
		}
		return nil, err
	}
	if pkg.FreelancerID != actor.ID {
		return nil, domainErrors.Newf(domainErrors.ErrForbidden, "You are not authorized to %s this pricing package", verb)
	}
	return pkg, nil
}

func duplicateTitle(err error) error {
	if errors.Is(err, domainErrors.ErrAlreadyExists) {
		return domainErrors.New(domainErrors.ErrAlreadyExists, "A pricing package with this title already exists")
	}
	return fmt.Errorf("save pricing package: %w", err)
}
