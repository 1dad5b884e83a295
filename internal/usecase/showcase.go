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

// ShowcaseInput holds the editable fields of a project showcase.
type ShowcaseInput struct {
	Title       string
	Description string
	Images      []string
	Tags        []string
}

func (in ShowcaseInput) validate() (ShowcaseInput, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
	in.Images = trimmedList(in.Images)
	in.Tags = trimmedList(in.Tags)
	switch {
	case in.Title == "":
		return in, domainErrors.New(domainErrors.ErrValidation, "Title is required")
	case utf8.RuneCountInString(in.Description) > model.ShowcaseDescriptionMaxLen:
		return in, domainErrors.Newf(domainErrors.ErrValidation,
			"Description must be at most %d characters", model.ShowcaseDescriptionMaxLen)
	}
	return in, nil
}

// ShowcaseUseCase manages the portfolio projects of freelancers.
type ShowcaseUseCase struct {
	showcases repository.ShowcaseRepository
}

// NewShowcaseUseCase constructs ShowcaseUseCase.
func NewShowcaseUseCase(showcases repository.ShowcaseRepository) *ShowcaseUseCase {
	return &ShowcaseUseCase{showcases: showcases}
}

// Create adds a showcase to the acting freelancer's portfolio.
func (u *ShowcaseUseCase) Create(ctx context.Context, actor model.Actor, in ShowcaseInput) (*model.ProjectShowcase, error) {
	if actor.Role != model.RoleFreelancer {
		return nil, domainErrors.New(domainErrors.ErrForbidden, "Only freelancers can add project showcases")
	}
	in, err := in.validate()
	if err != nil {
		return nil, err
	}

	created, err := u.showcases.Create(ctx, &model.ProjectShowcase{
		ID:           uuid.New(),
		FreelancerID: actor.ID,
		Title:        in.Title,
		Description:  in.Description,
		Images:       in.Images,
		Tags:         in.Tags,
	})
	if err != nil {
		return nil, fmt.Errorf("create project showcase: %w", err)
	}
	return created, nil
}

// ListByFreelancer returns a freelancer's showcases, newest first.
func (u *ShowcaseUseCase) ListByFreelancer(ctx context.Context, freelancerID uuid.UUID) ([]model.ProjectShowcase, error) {
	return u.showcases.ListByFreelancer(ctx, freelancerID)
}

// Update replaces the editable fields of a showcase owned by the actor.
func (u *ShowcaseUseCase) Update(ctx context.Context, actor model.Actor, id uuid.UUID, in ShowcaseInput) (*model.ProjectShowcase, error) {
	showcase, err := u.owned(ctx, actor, id, "update")
	if err != nil {
		return nil, err
	}
	if in, err = in.validate(); err != nil {
		return nil, err
	}

	showcase.Title = in.Title
	showcase.Description = in.Description
	showcase.Images = in.Images
	showcase.Tags = in.Tags

	updated, err := u.showcases.Update(ctx, showcase)
	if err != nil {
		return nil, showcaseMissing(err, "update")
	}
	return updated, nil
}

// Delete removes a showcase owned by the actor.
func (u *ShowcaseUseCase) Delete(ctx context.Context, actor model.Actor, id uuid.UUID) error {
	if _, err := u.owned(ctx, actor, id, "delete"); err != nil {
		return err
	}
	if err := u.showcases.Delete(ctx, id); err != nil {
		return showcaseMissing(err, "delete")
	}
	return nil
}

func (u *ShowcaseUseCase) owned(ctx context.Context, actor model.Actor, id uuid.UUID, verb string) (*model.ProjectShowcase, error) {
	if actor.Role != model.RoleFreelancer {
		return nil, domainErrors.Newf(domainErrors.ErrForbidden, "Only freelancers can %s project showcases", verb)
	}
	showcase, err := u.showcases.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, domainErrors.New(domainErrors.ErrNotFound, "Project showcase not found")
		}
		return nil, err
	}
	if showcase.FreelancerID != actor.ID {
		return nil, domainErrors.Newf(domainErrors.ErrForbidden, "You are not authorized to %s this project showcase", verb)
	}
	return showcase, nil
}

func showcaseMissing(err error, verb string) error {
	if errors.Is(err, domainErrors.ErrNotFound) {
		return domainErrors.New(domainErrors.ErrNotFound, "Project showcase not found")
	}
	return fmt.Errorf("%s project showcase: %w", verb, err)
}
