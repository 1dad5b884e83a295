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
	pkgAuth "github.com/polkiloo/freelancehub/internal/pkg/auth"
)

const bioMaxLen = 300

// RegisterInput is the sign-up form.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string
	Phone    string
	Bio      string
}

// AuthUseCase handles user lifecycle and token management.
type AuthUseCase struct {
	users  repository.UserRepository
	hasher pkgAuth.PasswordHasher
	tokens pkgAuth.Strategy
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(users repository.UserRepository, hasher pkgAuth.PasswordHasher, strategy pkgAuth.Strategy) *AuthUseCase {
	return &AuthUseCase{users: users, hasher: hasher, tokens: strategy}
}

// Register creates a new user and returns an auth token for it.
func (u *AuthUseCase) Register(ctx context.Context, in RegisterInput) (*model.User, string, error) {
	name := strings.TrimSpace(in.Name)
	email := normalizeEmail(in.Email)
	if name == "" || email == "" || in.Password == "" || in.Role == "" {
		return nil, "", domainErrors.New(domainErrors.ErrValidation, "Name, email, password and role are required")
	}
	if !strings.Contains(email, "@") {
		return nil, "", domainErrors.New(domainErrors.ErrValidation, "Email is invalid")
	}
	role, err := model.ParseRole(strings.ToLower(strings.TrimSpace(in.Role)))
	if err != nil {
		return nil, "", domainErrors.New(domainErrors.ErrValidation, "Role must be client or freelancer")
	}
	if utf8.RuneCountInString(in.Bio) > bioMaxLen {
		return nil, "", domainErrors.Newf(domainErrors.ErrValidation, "Bio must be at most %d characters", bioMaxLen)
	}

	hash, err := u.hasher.Hash(in.Password)
	if err != nil {
		return nil, "", err
	}

	usr, err := u.users.Create(ctx, &model.User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		Phone:        strings.TrimSpace(in.Phone),
		Bio:          in.Bio,
	})
	if err != nil {
		if errors.Is(err, domainErrors.ErrAlreadyExists) {
			return nil, "", domainErrors.New(domainErrors.ErrAlreadyExists, "User already exists")
		}
		return nil, "", fmt.Errorf("create user: %w", err)
	}

	token, err := u.tokens.IssueToken(usr.Actor())
	if err != nil {
		return nil, "", err
	}

	return usr, token, nil
}

// Authenticate validates credentials and returns auth token.
func (u *AuthUseCase) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, "", domainErrors.New(domainErrors.ErrValidation, "Email and password are required")
	}

	usr, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, "", domainErrors.New(domainErrors.ErrInvalidCredentials, "Invalid email or password")
		}
		return nil, "", err
	}

	if err := u.hasher.Compare(usr.PasswordHash, password); err != nil {
		return nil, "", domainErrors.New(domainErrors.ErrInvalidCredentials, "Invalid email or password")
	}

	token, err := u.tokens.IssueToken(usr.Actor())
	if err != nil {
		return nil, "", err
	}

	return usr, token, nil
}

// ParseToken resolves the actor carried by token.
func (u *AuthUseCase) ParseToken(token string) (model.Actor, error) {
	if token == "" {
		return model.Actor{}, pkgAuth.ErrInvalidToken
	}
	return u.tokens.ParseToken(token)
}

// ResolveActor parses token and loads its user, so the returned role is the
// stored one rather than the one the token was issued with.
func (u *AuthUseCase) ResolveActor(ctx context.Context, token string) (model.Actor, error) {
	claimed, err := u.ParseToken(token)
	if err != nil {
		return model.Actor{}, err
	}
	usr, err := u.users.GetByID(ctx, claimed.ID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return model.Actor{}, domainErrors.New(domainErrors.ErrNotFound, "User not found")
		}
		return model.Actor{}, fmt.Errorf("resolve actor: %w", err)
	}
	return usr.Actor(), nil
}

// Profile fetches the user behind an actor.
func (u *AuthUseCase) Profile(ctx context.Context, id uuid.UUID) (*model.User, error) {
	usr, err := u.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, domainErrors.New(domainErrors.ErrNotFound, "User not found")
		}
		return nil, err
	}
	return usr, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
