package auth

import (
	"go.uber.org/fx"

	"github.com/polkiloo/freelancehub/internal/config"
)

// Module provides authentication primitives via fx.
var Module = fx.Options(
	fx.Provide(newPasswordHasher),
	fx.Provide(newTokenStrategy),
)

func newPasswordHasher() PasswordHasher {
	return NewBcryptHasher(0)
}

type strategyParams struct {
	fx.In

	Config *config.Config
}

func newTokenStrategy(p strategyParams) Strategy {
	opts := Options{TTL: p.Config.TokenTTL}
	switch p.Config.TokenStrategy {
	case config.TokenStrategyHMAC:
		return NewHMACStrategy(p.Config.JWTSecret, opts)
	default:
		return NewJWTStrategy(p.Config.JWTSecret, opts)
	}
}
