package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ArowuTest/raffle-backend/internal/common/clock"
	"github.com/ArowuTest/raffle-backend/internal/common/uuid"
	"github.com/ArowuTest/raffle-backend/internal/config"
	"github.com/ArowuTest/raffle-backend/internal/events"
	"github.com/ArowuTest/raffle-backend/internal/importer"
	"github.com/ArowuTest/raffle-backend/internal/services"
	"github.com/ArowuTest/raffle-backend/internal/storage"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"golang.org/x/exp/slog"
)

// Bulk-registers entrants from a CSV file:
//
//	import [-dry-run] [-config path] entrants.csv
func main() {
	dryRun := flag.Bool("dry-run", false, "validate rows without registering them")
	configPath := flag.String("config", "", "optional config file, environment variables still apply")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: import [-dry-run] [-config path] <file.csv>")
		os.Exit(2)
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("failed to load .env file", "error", err)
	}

	var (
		cfg *config.Config
		err error
	)
	if *configPath != "" {
		cfg, err = config.LoadFile(*configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()})))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	result, err := run(ctx, cfg, flag.Arg(0), *dryRun)
	if result != nil {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(result)
	}
	if err != nil {
		slog.Error("import failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, path string, dryRun bool) (*importer.Result, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open csv file: %w", err)
	}
	defer file.Close()

	store, err := storage.Open(ctx, cfg)
	if err != nil {
		return nil, err
	}
	defer store.Close(context.Background())

	// Dashboards connected to other instances only see the new entrants
	// when they travel over Redis
	var publisher events.Publisher
	if cfg.Redis.Enabled && !dryRun {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer client.Close()

		bus, err := events.NewRedis(ctx, &events.RedisConfig{
			RedisClient:   client,
			ChannelPrefix: cfg.Redis.ChannelPrefix,
		})
		if err != nil {
			return nil, err
		}
		defer bus.Close()
		publisher = bus
	}

	entrants := services.NewEntrantService(store.Entrants, &clock.DefaultClock{}, uuid.New(), publisher)
	return importer.NewCSVImporter(entrants, dryRun).Import(ctx, file)
}
