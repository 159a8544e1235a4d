package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ArowuTest/raffle-backend/api/routes"
	"github.com/ArowuTest/raffle-backend/internal/common/clock"
	"github.com/ArowuTest/raffle-backend/internal/common/random"
	"github.com/ArowuTest/raffle-backend/internal/common/uuid"
	"github.com/ArowuTest/raffle-backend/internal/config"
	"github.com/ArowuTest/raffle-backend/internal/events"
	"github.com/ArowuTest/raffle-backend/internal/services"
	"github.com/ArowuTest/raffle-backend/internal/storage"
	"github.com/ArowuTest/raffle-backend/pkg/jwt"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"golang.org/x/exp/slog"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("failed to load .env file", "error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()})))
	if cfg.SlogLevel() > slog.LevelDebug {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := run(cfg); err != nil {
		slog.Error("server stopped with error", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	ctx := context.Background()

	store, err := storage.Open(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(context.Background()); err != nil {
			slog.Error("failed to close storage", "error", err)
		}
	}()

	bus, err := newEventBus(ctx, cfg)
	if err != nil {
		return err
	}

	clk := &clock.DefaultClock{}
	ids := uuid.New()

	tokens, err := jwt.NewManager(cfg.JWT.Secret, cfg.TokenTTL(), clk)
	if err != nil {
		return err
	}

	authService := services.NewAuthService(services.NewPasswordAuthenticator(store.AdminUsers), store.AdminUsers, tokens, clk, ids)
	if err := authService.SeedOperator(ctx, services.OperatorSeed{
		Email:        cfg.Admin.Email,
		Password:     cfg.Admin.Password,
		PasswordHash: cfg.Admin.PasswordHash,
	}); err != nil {
		return err
	}

	entrantService := services.NewEntrantService(store.Entrants, clk, ids, bus)
	drawService := services.NewDrawService(services.DrawServiceConfig{
		Entrants:    store.Entrants,
		Winners:     store.Winners,
		Stats:       store.Stats,
		Transactor:  store.Transactor,
		Picker:      random.New(&random.Config{Seed: cfg.Raffle.Seed}),
		Clock:       clk,
		UUID:        ids,
		Publisher:   bus,
		RevealDelay: cfg.Raffle.RevealDelay,
	})
	winnerService := services.NewWinnerService(store.Winners, clk, bus, cfg.Raffle.WinnersPageSize)
	reconcileService := services.NewReconcileService(services.ReconcileServiceConfig{
		Entrants:  store.Entrants,
		Winners:   store.Winners,
		Stats:     store.Stats,
		Draws:     drawService,
		Clock:     clk,
		Publisher: bus,
	})

	if cfg.Raffle.ReconcileOnStartup {
		if _, err := reconcileService.Run(ctx); err != nil {
			slog.Error("startup reconciliation failed", "error", err)
		}
	}

	router := routes.SetupRouter(cfg, &routes.Dependencies{
		AuthService:      authService,
		EntrantService:   entrantService,
		DrawService:      drawService,
		WinnerService:    winnerService,
		ReconcileService: reconcileService,
		Events:           bus,
		Tokens:           tokens,
		HealthCheck:      store.Ping,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		slog.Info("server starting", "port", cfg.Server.Port, "storage", store.Driver, "redis", cfg.Redis.Enabled)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-serveErr:
		_ = bus.Close()
		return err
	case sig := <-quit:
		slog.Info("shutting down server", "signal", sig.String())
	}

	// Event streams never finish on their own; closing the bus ends them
	if err := bus.Close(); err != nil {
		slog.Warn("failed to close event bus", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
	}

	slog.Info("server exiting")
	return nil
}

func newEventBus(ctx context.Context, cfg *config.Config) (events.Bus, error) {
	if !cfg.Redis.Enabled {
		return events.NewBroker(64), nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	bus, err := events.NewRedis(ctx, &events.RedisConfig{
		RedisClient:   client,
		ChannelPrefix: cfg.Redis.ChannelPrefix,
		Buffer:        64,
	})
	if err != nil {
		client.Close()
		return nil, err
	}
	return &redisBus{RedisBus: bus, client: client}, nil
}

// redisBus closes the client it was built with
type redisBus struct {
	*events.RedisBus
	client *redis.Client
}

func (b *redisBus) Close() error {
	if err := b.RedisBus.Close(); err != nil {
		return err
	}
	return b.client.Close()
}
