package router

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/polkiloo/freelancehub/internal/config"
	"github.com/polkiloo/freelancehub/internal/server/http/handlers"
)

// Module registers HTTP router construction for fx runtime.
var Module = fx.Provide(newEngine)

type engineParams struct {
	fx.In

	Facade  handlers.MarketplaceFacade
	Logger  *zap.Logger
	Config  *config.Config
	Tracing trace.TracerProvider `optional:"true"`
}

func newEngine(p engineParams) *gin.Engine {
	return Setup(p.Facade, p.Logger.Named("http"), Options{
		AllowOrigins:   p.Config.CORSAllowOrigins,
		TracerProvider: p.Tracing,
	})
}
