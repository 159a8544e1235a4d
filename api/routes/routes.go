package routes

import (
	"context"
	"net/http"
	"time"

	"github.com/ArowuTest/raffle-backend/internal/config"
	"github.com/ArowuTest/raffle-backend/internal/events"
	"github.com/ArowuTest/raffle-backend/internal/handlers"
	"github.com/ArowuTest/raffle-backend/internal/middleware"
	"github.com/ArowuTest/raffle-backend/internal/services"
	"github.com/gin-gonic/gin"
)

// Dependencies are the services the router wires into handlers
type Dependencies struct {
	AuthService      services.AuthService
	EntrantService   services.EntrantService
	DrawService      services.DrawService
	WinnerService    services.WinnerService
	ReconcileService services.ReconcileService
	Events           events.Subscriber
	Tokens           middleware.TokenParser
	// HealthCheck reports storage reachability; nil means always healthy
	HealthCheck func(ctx context.Context) error
}

// SetupRouter sets up the router
func SetupRouter(cfg *config.Config, deps *Dependencies) *gin.Engine {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware(cfg.Server.AllowedHosts))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggerMiddleware())

	authHandler := handlers.NewAuthHandler(deps.AuthService)
	entrantHandler := handlers.NewEntrantHandler(deps.EntrantService)
	drawHandler := handlers.NewDrawHandler(deps.DrawService)
	winnerHandler := handlers.NewWinnerHandler(deps.WinnerService)
	maintenanceHandler := handlers.NewMaintenanceHandler(deps.ReconcileService)
	eventHandler := handlers.NewEventHandler(deps.Events, handlers.DefaultHeartbeat)

	// Public routes
	public := router.Group("/api/v1")
	{
		public.GET("/health", health(deps.HealthCheck))
		public.POST("/auth/login", authHandler.Login)
		public.POST("/entrants", entrantHandler.Register)
	}

	// Protected routes
	protected := router.Group("/api/v1")
	protected.Use(middleware.JWTAuthMiddleware(deps.Tokens, false))
	{
		entrants := protected.Group("/entrants")
		{
			entrants.GET("", entrantHandler.List)
			entrants.DELETE("", entrantHandler.Clear)
			entrants.DELETE("/:id", entrantHandler.Remove)
		}

		draw := protected.Group("/draw")
		{
			draw.GET("", drawHandler.View)
			draw.POST("", drawHandler.Draw)
		}
		protected.GET("/stats", drawHandler.Stats)

		winners := protected.Group("/winners")
		{
			winners.GET("", winnerHandler.List)
			winners.GET("/:id", winnerHandler.Get)
			winners.PATCH("/:id/status", winnerHandler.UpdateStatus)
		}

		protected.POST("/maintenance/reconcile", maintenanceHandler.Reconcile)
	}

	// EventSource cannot send headers, so the stream also takes ?access_token=
	stream := router.Group("/api/v1")
	stream.Use(middleware.JWTAuthMiddleware(deps.Tokens, true))
	stream.GET("/events", eventHandler.Stream)

	return router
}

func health(check func(ctx context.Context) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		if check != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()
			if err := check(ctx); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
