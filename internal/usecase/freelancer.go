package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	domainErrors "github.com/polkiloo/freelancehub/internal/domain/errors"
	"github.com/polkiloo/freelancehub/internal/domain/model"
	"github.com/polkiloo/freelancehub/internal/domain/repository"
)

// FreelancerUseCase serves the public freelancer directory.
type FreelancerUseCase struct {
	directory repository.FreelancerDirectory
	reviews   repository.ReviewRepository
}

// NewFreelancerUseCase constructs FreelancerUseCase.
func NewFreelancerUseCase(directory repository.FreelancerDirectory, reviews repository.ReviewRepository) *FreelancerUseCase {
	return &FreelancerUseCase{directory: directory, reviews: reviews}
}

// Browse lists the freelancers matching filter, highest rated first.
func (u *FreelancerUseCase) Browse(ctx context.Context, filter model.FreelancerFilter) ([]model.FreelancerSummary, error) {
	filter.Skills = trimmedList(filter.Skills)
	switch {
	case filter.MinExperience != nil && *filter.MinExperience < 0,
		filter.MaxExperience != nil && *filter.MaxExperience < 0:
		return nil, domainErrors.New(domainErrors.ErrValidation, "Experience must not be negative")
	case filter.MinExperience != nil && filter.MaxExperience != nil && *filter.MinExperience > *filter.MaxExperience:
		return nil, domainErrors.New(domainErrors.ErrValidation, "minExperience must not exceed maxExperience")
	case filter.MinRating != nil && filter.MaxRating != nil && *filter.MinRating > *filter.MaxRating:
		return nil, domainErrors.New(domainErrors.ErrValidation, "minRating must not exceed maxRating")
	}

	list, err := u.directory.Search(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("search freelancers: %w", err)
	}
	return list, nil
}

// Details returns one freelancer with every review they received.
func (u *FreelancerUseCase) Details(ctx context.Context, userID uuid.UUID) (*model.FreelancerDetails, error) {
	summary, err := u.directory.Summary(ctx, userID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, domainErrors.New(domainErrors.ErrNotFound, "Freelancer not found")
		}
		return nil, err
	}
	reviews, err := u.reviews.ListByFreelancer(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	return &model.FreelancerDetails{FreelancerSummary: *summary, Reviews: reviews}, nil
}
