package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"

	domainErrors "github.com/polkiloo/freelancehub/internal/domain/errors"
	"github.com/polkiloo/freelancehub/internal/domain/model"
	pkgAuth "github.com/polkiloo/freelancehub/internal/pkg/auth"
	testhelpers "github.com/polkiloo/freelancehub/internal/test"
)

func registerInput(email string) RegisterInput {
	return RegisterInput{Name: "Alice", Email: email, Password: "password", Role: "client"}
}

func TestAuthUseCaseRegisterSuccess(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	uc := NewAuthUseCase(repo, testhelpers.HasherStub{}, testhelpers.StrategyStub{})

	ctx := context.Background()
	user, token, err := uc.Register(ctx, RegisterInput{
		Name:     "  Alice ",
		Email:    " Alice@Example.COM ",
		Password: "password",
		Role:     "Freelancer",
		Bio:      "Designer",
	})
	if err != nil {
		t.Fatalf("register returned error: %v", err)
	}
	if user.ID == uuid.Nil {
		t.Fatalf("expected user to have ID assigned")
	}
	if user.Role != model.RoleFreelancer || user.Name != "Alice" {
		t.Fatalf("unexpected user %+v", user)
	}
	if token != testhelpers.TokenFor(user.Actor()) {
		t.Fatalf("unexpected token %q", token)
	}
	stored, err := repo.GetByEmail(ctx, "alice@example.com")
	if err != nil {
		t.Fatalf("expected user stored under normalized email: %v", err)
	}
	if stored.PasswordHash != "hash:password" {
		t.Fatalf("password hash not stored: %v", stored.PasswordHash)
	}
}

func TestAuthUseCaseRegisterDuplicate(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	uc := NewAuthUseCase(repo, testhelpers.HasherStub{}, testhelpers.StrategyStub{})

	ctx := context.Background()
	if _, _, err := uc.Register(ctx, registerInput("bob@example.com")); err != nil {
		t.Fatalf("unexpected error on first register: %v", err)
	}
	_, _, err := uc.Register(ctx, registerInput("BOB@example.com"))
	if !errors.Is(err, domainErrors.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
	if msg, _ := domainErrors.Message(err); msg != "User already exists" {
		t.Fatalf("unexpected message %q", msg)
	}
}

func TestAuthUseCaseRegisterValidation(t *testing.T) {
	uc := NewAuthUseCase(testhelpers.NewUserRepositoryStub(), testhelpers.HasherStub{}, testhelpers.StrategyStub{})

	cases := map[string]func(*RegisterInput){
		"missing name":     func(in *RegisterInput) { in.Name = " " },
		"missing email":    func(in *RegisterInput) { in.Email = "" },
		"malformed email":  func(in *RegisterInput) { in.Email = "nobody" },
		"missing password": func(in *RegisterInput) { in.Password = "" },
		"missing role":     func(in *RegisterInput) { in.Role = "" },
		"unknown role":     func(in *RegisterInput) { in.Role = "admin" },
		"long bio":         func(in *RegisterInput) { in.Bio = strings.Repeat("b", bioMaxLen+1) },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			in := registerInput("user@example.com")
			mutate(&in)
			if _, _, err := uc.Register(context.Background(), in); !errors.Is(err, domainErrors.ErrValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestAuthUseCaseRegisterFailures(t *testing.T) {
	t.Run("hasher", func(t *testing.T) {
		uc := NewAuthUseCase(testhelpers.NewUserRepositoryStub(), testhelpers.HasherStub{HashFn: func(string) (string, error) {
			return "", fmt.Errorf("hash error")
		}}, testhelpers.StrategyStub{})
		if _, _, err := uc.Register(context.Background(), registerInput("user@example.com")); err == nil {
			t.Fatal("expected hashing error")
		}
	})

	t.Run("repository", func(t *testing.T) {
		repo := testhelpers.NewUserRepositoryStub()
		repo.Err = fmt.Errorf("db down")
		uc := NewAuthUseCase(repo, testhelpers.HasherStub{}, testhelpers.StrategyStub{})
		if _, _, err := uc.Register(context.Background(), registerInput("user@example.com")); err == nil {
			t.Fatal("expected repository error")
		}
	})

	t.Run("token", func(t *testing.T) {
		strategy := testhelpers.StrategyStub{IssueFn: func(model.Actor) (string, error) {
			return "", fmt.Errorf("cannot issue token")
		}}
		uc := NewAuthUseCase(testhelpers.NewUserRepositoryStub(), testhelpers.HasherStub{}, strategy)
		if _, _, err := uc.Register(context.Background(), registerInput("user@example.com")); err == nil {
			t.Fatal("expected token issuing error")
		}
	})
}

func TestAuthUseCaseAuthenticate(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	uc := NewAuthUseCase(repo, testhelpers.HasherStub{}, testhelpers.StrategyStub{})

	ctx := context.Background()
	registered, _, err := uc.Register(ctx, registerInput("carol@example.com"))
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if _, _, err := uc.Authenticate(ctx, "carol@example.com", "bad"); !errors.Is(err, domainErrors.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials error, got %v", err)
	}
	if _, _, err := uc.Authenticate(ctx, "absent@example.com", "password"); !errors.Is(err, domainErrors.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials for unknown email, got %v", err)
	}
	if _, _, err := uc.Authenticate(ctx, "", "password"); !errors.Is(err, domainErrors.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}

	user, token, err := uc.Authenticate(ctx, " CAROL@example.com", "password")
	if err != nil {
		t.Fatalf("authenticate returned error: %v", err)
	}
	if user.ID != registered.ID {
		t.Fatalf("unexpected user %v", user.ID)
	}
	if token != testhelpers.TokenFor(registered.Actor()) {
		t.Fatalf("unexpected token %q", token)
	}
}

func TestAuthUseCaseAuthenticateRepositoryError(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	uc := NewAuthUseCase(repo, testhelpers.HasherStub{}, testhelpers.StrategyStub{})
	repo.Err = fmt.Errorf("storage unavailable")
	if _, _, err := uc.Authenticate(context.Background(), "user@example.com", "pass"); err == nil || err.Error() != "storage unavailable" {
		t.Fatalf("expected repository error, got %v", err)
	}
}

func TestAuthUseCaseParseToken(t *testing.T) {
	uc := NewAuthUseCase(testhelpers.NewUserRepositoryStub(), testhelpers.HasherStub{}, testhelpers.StrategyStub{})

	actor := model.Actor{ID: uuid.New(), Role: model.RoleClient}
	got, err := uc.ParseToken(testhelpers.TokenFor(actor))
	if err != nil {
		t.Fatalf("parse token failed: %v", err)
	}
	if got != actor {
		t.Fatalf("expected %+v, got %+v", actor, got)
	}

	if _, err := uc.ParseToken("bad-token"); !errors.Is(err, pkgAuth.ErrInvalidToken) {
		t.Fatalf("expected invalid token error, got %v", err)
	}
	if _, err := uc.ParseToken(""); !errors.Is(err, pkgAuth.ErrInvalidToken) {
		t.Fatalf("expected invalid token error, got %v", err)
	}
}

func TestAuthUseCaseResolveActor(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	uc := NewAuthUseCase(repo, testhelpers.HasherStub{}, testhelpers.StrategyStub{})

	user, _, err := uc.Register(context.Background(), RegisterInput{
		Name: "Fay", Email: "fay@example.com", Password: "password", Role: "freelancer",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	// the stored role wins over the one carried by the token
	forged := testhelpers.TokenFor(model.Actor{ID: user.ID, Role: model.RoleClient})
	got, err := uc.ResolveActor(context.Background(), forged)
	if err != nil {
		t.Fatalf("resolve actor failed: %v", err)
	}
	if got != user.Actor() {
		t.Fatalf("expected %+v, got %+v", user.Actor(), got)
	}

	ghost := testhelpers.TokenFor(model.Actor{ID: uuid.New(), Role: model.RoleClient})
	_, err = uc.ResolveActor(context.Background(), ghost)
	if !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if msg, _ := domainErrors.Message(err); msg != "User not found" {
		t.Fatalf("unexpected message %q", msg)
	}

	if _, err := uc.ResolveActor(context.Background(), "bad-token"); !errors.Is(err, pkgAuth.ErrInvalidToken) {
		t.Fatalf("expected invalid token error, got %v", err)
	}

	repo.Err = fmt.Errorf("storage unavailable")
	if _, err := uc.ResolveActor(context.Background(), forged); err == nil || errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected storage error, got %v", err)
	}
}

func TestAuthUseCaseProfile(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	uc := NewAuthUseCase(repo, testhelpers.HasherStub{}, testhelpers.StrategyStub{})

	user, _, err := uc.Register(context.Background(), registerInput("dave@example.com"))
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	got, err := uc.Profile(context.Background(), user.ID)
	if err != nil || got.Email != "dave@example.com" {
		t.Fatalf("unexpected profile %+v err=%v", got, err)
	}
	if _, err := uc.Profile(context.Background(), uuid.New()); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
