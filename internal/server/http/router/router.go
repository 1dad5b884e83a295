package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/polkiloo/freelancehub/internal/observability"
	"github.com/polkiloo/freelancehub/internal/server/http/handlers"
	"github.com/polkiloo/freelancehub/internal/server/http/middleware"
)

// Options tunes the cross-cutting middleware of the engine.
type Options struct {
	// AllowOrigins lists CORS origins. Empty or "*" allows any origin without credentials.
	AllowOrigins []string
	// TracerProvider defaults to the otel global provider.
	TracerProvider trace.TracerProvider
}

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.MarketplaceFacade, logger *zap.Logger, opts Options) *gin.Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	var tracing []otelgin.Option
	if opts.TracerProvider != nil {
		tracing = append(tracing, otelgin.WithTracerProvider(opts.TracerProvider))
	}

	engine.Use(gin.Recovery())
	engine.Use(otelgin.Middleware(observability.ServiceName, tracing...))
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(cors.New(corsConfig(opts.AllowOrigins)))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	bookingHandler := handlers.NewBookingHandler(facade)
	notificationHandler := handlers.NewNotificationHandler(facade)
	reviewHandler := handlers.NewReviewHandler(facade)
	pricingHandler := handlers.NewPricingHandler(facade)
	profileHandler := handlers.NewProfileHandler(facade)
	showcaseHandler := handlers.NewShowcaseHandler(facade)
	freelancerHandler := handlers.NewFreelancerHandler(facade)
	healthHandler := handlers.NewHealthHandler(facade)

	authRequired := middleware.AuthRequired(facade)

	engine.GET("/healthz", healthHandler.Check)

	api := engine.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.GET("/profile", authRequired, authHandler.Profile)

	bookings := api.Group("/bookings", authRequired)
	bookings.POST("", bookingHandler.Create)
	bookings.GET("", bookingHandler.List)
	bookings.GET("/:id", bookingHandler.Get)
	bookings.PATCH("/:id/accept", bookingHandler.Accept)
	bookings.PATCH("/:id/start", bookingHandler.Start)
	bookings.PATCH("/:id/submit", bookingHandler.Submit)
	bookings.PATCH("/:id/approve", bookingHandler.Approve)
	bookings.PATCH("/:id/mark-paid", bookingHandler.MarkPaid)
	bookings.PATCH("/:id/cancel", bookingHandler.Cancel)

	notifications := api.Group("/notifications", authRequired)
	notifications.GET("", notificationHandler.List)
	notifications.GET("/unread-count", notificationHandler.UnreadCount)
	notifications.PATCH("/mark-all-read", notificationHandler.MarkAllRead)
	notifications.PATCH("/:id/read", notificationHandler.MarkRead)

	reviews := api.Group("/reviews")
	reviews.POST("", authRequired, reviewHandler.Create)
	reviews.GET("/:freelancerId", reviewHandler.ListByFreelancer)

	pricing := api.Group("/pricing/packages")
	pricing.POST("", authRequired, pricingHandler.Create)
	pricing.GET("/:freelancerId", pricingHandler.ListByFreelancer)
	pricing.PUT("/:id", authRequired, pricingHandler.Update)
	pricing.DELETE("/:id", authRequired, pricingHandler.Delete)

	profile := api.Group("/freelancer/profile")
	profile.POST("", authRequired, profileHandler.Create)
	profile.GET("/:userId", profileHandler.Get)
	profile.PUT("", authRequired, profileHandler.Update)
	profile.DELETE("", authRequired, profileHandler.Delete)

	projects := api.Group("/projects")
	projects.POST("", authRequired, showcaseHandler.Create)
	projects.GET("/freelancer/:freelancerId", showcaseHandler.ListByFreelancer)
	projects.PUT("/:id", authRequired, showcaseHandler.Update)
	projects.DELETE("/:id", authRequired, showcaseHandler.Delete)

	freelancers := api.Group("/freelancers")
	freelancers.GET("", freelancerHandler.List)
	freelancers.GET("/:id", freelancerHandler.Get)

	return engine
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Content-Encoding", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	for _, origin := range origins {
		if origin == "*" {
			cfg.AllowAllOrigins = true
			return cfg
		}
	}
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	cfg.AllowCredentials = true
	return cfg
}
