package main

import (
	"context"
	"os/signal"
	"syscall"

	"go.uber.org/fx"

	"github.com/polkiloo/freelancehub/internal/di"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	run(ctx, newApp(ctx))
}

func newApp(ctx context.Context, opts ...fx.Option) *fx.App {
	return fx.New(
		fx.Provide(func() context.Context { return ctx }),
		di.Module(opts...),
	)
}
