package test

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/polkiloo/freelancehub/internal/domain/model"
	pkgAuth "github.com/polkiloo/freelancehub/internal/pkg/auth"
)

// HasherStub provides deterministic hashing for tests.
type HasherStub struct {
	HashFn    func(string) (string, error)
	CompareFn func(string, string) error
}

// Hash returns a predictable hash for the supplied password.
func (h HasherStub) Hash(password string) (string, error) {
	if h.HashFn != nil {
		return h.HashFn(password)
	}
	return "hash:" + password, nil
}

// Compare validates password against stored hash.
func (h HasherStub) Compare(hash string, password string) error {
	if h.CompareFn != nil {
		return h.CompareFn(hash, password)
	}
	if hash != "hash:"+password {
		return errors.New("mismatch")
	}
	return nil
}

// StrategyStub issues "token:<id>:<role>" strings and parses them back.
type StrategyStub struct {
	IssueFn func(model.Actor) (string, error)
	ParseFn func(string) (model.Actor, error)
	NameVal string
}

// TokenFor renders the token StrategyStub issues for actor.
func TokenFor(actor model.Actor) string {
	return fmt.Sprintf("token:%s:%s", actor.ID, actor.Role)
}

// IssueToken returns deterministic tokens for tests.
func (s StrategyStub) IssueToken(actor model.Actor) (string, error) {
	if s.IssueFn != nil {
		return s.IssueFn(actor)
	}
	return TokenFor(actor), nil
}

// ParseToken parses previously issued token strings.
func (s StrategyStub) ParseToken(token string) (model.Actor, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return ParseStubToken(token)
}

// Name returns the strategy identifier used in tests.
func (s StrategyStub) Name() string {
	if s.NameVal != "" {
		return s.NameVal
	}
	return "stub"
}

// ParseStubToken is the inverse of TokenFor.
func ParseStubToken(token string) (model.Actor, error) {
	parts := strings.Split(token, ":")
	if len(parts) != 3 || parts[0] != "token" {
		return model.Actor{}, pkgAuth.ErrInvalidToken
	}
	id, err := uuid.Parse(parts[1])
	if err != nil {
		return model.Actor{}, pkgAuth.ErrInvalidToken
	}
	role, err := model.ParseRole(parts[2])
	if err != nil {
		return model.Actor{}, pkgAuth.ErrInvalidToken
	}
	return model.Actor{ID: id, Role: role}, nil
}

// ActorResolverStub implements the middleware actor lookup.
type ActorResolverStub struct {
	Actor     model.Actor
	Err       error
	ResolveFn func(context.Context, string) (model.Actor, error)
}

// ResolveActor either delegates to override or returns predefined result.
func (s ActorResolverStub) ResolveActor(ctx context.Context, token string) (model.Actor, error) {
	if s.ResolveFn != nil {
		return s.ResolveFn(ctx, token)
	}
	if s.Err != nil {
		return model.Actor{}, s.Err
	}
	return s.Actor, nil
}

var _ pkgAuth.PasswordHasher = HasherStub{}
var _ pkgAuth.Strategy = StrategyStub{}
