package storage

import (
	"context"
	"fmt"

	"github.com/ArowuTest/raffle-backend/internal/config"
	"github.com/ArowuTest/raffle-backend/internal/repositories"
	"github.com/ArowuTest/raffle-backend/internal/repositories/memory"
	mongorepo "github.com/ArowuTest/raffle-backend/internal/repositories/mongodb"
	"github.com/ArowuTest/raffle-backend/internal/repositories/sqlstore"
	"github.com/ArowuTest/raffle-backend/pkg/mongodb"
	"golang.org/x/exp/slog"
)

// Store bundles the repositories of the configured driver
type Store struct {
	Driver     string
	Entrants   repositories.EntrantRepository
	Winners    repositories.WinnerRepository
	Stats      repositories.StatsRepository
	AdminUsers repositories.AdminUserRepository
	Transactor repositories.Transactor

	ping  func(ctx context.Context) error
	close func(ctx context.Context) error
}

// Open connects to the configured store and prepares its indexes or schema
func Open(ctx context.Context, cfg *config.Config) (*Store, error) {
	switch cfg.Storage.Driver {
	case config.DriverMongoDB:
		return openMongo(ctx, cfg)
	case config.DriverPostgres:
		return openSQL(ctx, sqlstore.Postgres, cfg.SQL.DSN)
	case config.DriverSQLite:
		return openSQL(ctx, sqlstore.SQLite, cfg.SQL.DSN)
	case config.DriverMemory:
		slog.Warn("using in-memory storage, data is lost on restart and draws are not atomic")
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}

// NewMemory returns a store backed by process memory
func NewMemory() *Store {
	m := memory.NewStore()
	return &Store{
		Driver:     config.DriverMemory,
		Entrants:   m.Entrants(),
		Winners:    m.Winners(),
		Stats:      m.Stats(),
		AdminUsers: m.AdminUsers(),
		Transactor: m.Transactor(),
	}
}

func openMongo(ctx context.Context, cfg *config.Config) (*Store, error) {
	client, err := mongodb.NewClient(ctx, cfg.MongoDB.URI, cfg.MongoDB.Timeout)
	if err != nil {
		return nil, err
	}
	db := client.Database(cfg.MongoDB.Database)

	if err := mongorepo.EnsureIndexes(ctx, db); err != nil {
		_ = client.Disconnect(context.WithoutCancel(ctx))
		return nil, fmt.Errorf("failed to create indexes: %w", err)
	}
	if _, err := mongorepo.BackfillNationalIDs(ctx, db); err != nil {
		_ = client.Disconnect(context.WithoutCancel(ctx))
		return nil, err
	}
	slog.Info("connected to mongodb", "database", cfg.MongoDB.Database)

	return &Store{
		Driver:     config.DriverMongoDB,
		Entrants:   mongorepo.NewEntrantRepository(db),
		Winners:    mongorepo.NewWinnerRepository(db),
		Stats:      mongorepo.NewStatsRepository(db),
		AdminUsers: mongorepo.NewAdminUserRepository(db),
		Transactor: mongorepo.NewTransactor(client),
		ping:       client.Ping,
		close:      client.Disconnect,
	}, nil
}

func openSQL(ctx context.Context, dialect sqlstore.Dialect, dsn string) (*Store, error) {
	s, err := sqlstore.Open(ctx, dialect, dsn)
	if err != nil {
		return nil, err
	}
	if err := s.CreateSchema(ctx); err != nil {
		_ = s.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}
	slog.Info("connected to sql store", "dialect", dialect)

	return &Store{
		Driver:     string(dialect),
		Entrants:   s.Entrants(),
		Winners:    s.Winners(),
		Stats:      s.Stats(),
		AdminUsers: s.AdminUsers(),
		Transactor: s.Transactor(),
		ping:       s.Ping,
		close:      func(context.Context) error { return s.Close() },
	}, nil
}

// Ping checks that the store is reachable
func (s *Store) Ping(ctx context.Context) error {
	if s.ping == nil {
		return nil
	}
	return s.ping(ctx)
}

// Close releases the store's connections
func (s *Store) Close(ctx context.Context) error {
	if s.close == nil {
		return nil
	}
	return s.close(ctx)
}
