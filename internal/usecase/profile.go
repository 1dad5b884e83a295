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

// ProfileInput holds the fields of a new freelancer profile.
type ProfileInput struct {
	Specialization string
	Skills         []string
	Experience     int
	Description    string
}

// ProfilePatch changes only the fields that are set.
type ProfilePatch struct {
	Specialization *string
	Skills         []string
	Experience     *int
	Description    *string
}

func validateProfile(p *model.FreelancerProfile) error {
	p.Specialization = strings.TrimSpace(p.Specialization)
	p.Skills = trimmedList(p.Skills)
	p.Description = strings.TrimSpace(p.Description)
	switch {
	case p.Specialization == "":
		return domainErrors.New(domainErrors.ErrValidation, "Specialization is required")
	case len(p.Skills) == 0:
		return domainErrors.New(domainErrors.ErrValidation, "At least one skill is required")
	case p.Experience < 0:
		return domainErrors.New(domainErrors.ErrValidation, "Experience must not be negative")
	case utf8.RuneCountInString(p.Description) > model.ProfileDescriptionMaxLen:
		return domainErrors.Newf(domainErrors.ErrValidation,
			"Description must be at most %d characters", model.ProfileDescriptionMaxLen)
	}
	return nil
}

// trimmedList trims every entry and drops the blank ones.
func trimmedList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// ProfileUseCase manages the public profile of a freelancer.
type ProfileUseCase struct {
	profiles  repository.ProfileRepository
	directory repository.FreelancerDirectory
}

// NewProfileUseCase constructs ProfileUseCase.
func NewProfileUseCase(profiles repository.ProfileRepository, directory repository.FreelancerDirectory) *ProfileUseCase {
	return &ProfileUseCase{profiles: profiles, directory: directory}
}

// Create stores the actor's profile. A freelancer has at most one.
func (u *ProfileUseCase) Create(ctx context.Context, actor model.Actor, in ProfileInput) (*model.FreelancerProfile, error) {
	if actor.Role != model.RoleFreelancer {
		return nil, domainErrors.New(domainErrors.ErrForbidden, "Only freelancers can create a profile")
	}
	profile := &model.FreelancerProfile{
		ID:             uuid.New(),
		UserID:         actor.ID,
		Specialization: in.Specialization,
		Skills:         in.Skills,
		Experience:     in.Experience,
		Description:    in.Description,
	}
	if err := validateProfile(profile); err != nil {
		return nil, err
	}

	created, err := u.profiles.Create(ctx, profile)
	if err != nil {
		if errors.Is(err, domainErrors.ErrAlreadyExists) {
			return nil, domainErrors.New(domainErrors.ErrAlreadyExists, "Profile already exists")
		}
		return nil, fmt.Errorf("create profile: %w", err)
	}
	return created, nil
}

// Get returns the profile of userID with its owner's details.
func (u *ProfileUseCase) Get(ctx context.Context, userID uuid.UUID) (*model.FreelancerSummary, error) {
	summary, err := u.directory.Summary(ctx, userID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, domainErrors.New(domainErrors.ErrNotFound, "Freelancer profile not found")
		}
		return nil, err
	}
	return summary, nil
}

// Update applies patch to the actor's profile.
func (u *ProfileUseCase) Update(ctx context.Context, actor model.Actor, patch ProfilePatch) (*model.FreelancerProfile, error) {
	profile, err := u.own(ctx, actor, "update")
	if err != nil {
		return nil, err
	}
	if patch.Specialization != nil {
		profile.Specialization = *patch.Specialization
	}
	if patch.Skills != nil {
		profile.Skills = patch.Skills
	}
	if patch.Experience != nil {
		profile.Experience = *patch.Experience
	}
	if patch.Description != nil {
		profile.Description = *patch.Description
	}
	if err := validateProfile(profile); err != nil {
		return nil, err
	}

	updated, err := u.profiles.Update(ctx, profile)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, domainErrors.New(domainErrors.ErrNotFound, "Profile not found")
		}
		return nil, fmt.Errorf("update profile: %w", err)
	}
	return updated, nil
}

// Delete removes the actor's profile.
func (u *ProfileUseCase) Delete(ctx context.Context, actor model.Actor) error {
	if actor.Role != model.RoleFreelancer {
		return domainErrors.New(domainErrors.ErrForbidden, "Only freelancers can delete a profile")
	}
	if err := u.profiles.DeleteByUserID(ctx, actor.ID); err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return domainErrors.New(domainErrors.ErrNotFound, "Profile not found")
		}
		return fmt.Errorf("delete profile: %w", err)
	}
	return nil
}

func (u *ProfileUseCase) own(ctx context.Context, actor model.Actor, verb string) (*model.FreelancerProfile, error) {
	if actor.Role != model.RoleFreelancer {
		return nil, domainErrors.Newf(domainErrors.ErrForbidden, "Only freelancers can %s a profile", verb)
	}
	profile, err := u.profiles.GetByUserID(ctx, actor.ID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, domainErrors.New(domainErrors.ErrNotFound, "Profile not found")
		}
		return nil, err
	}
	return profile, nil
}
