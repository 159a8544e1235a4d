package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/ArowuTest/raffle-backend/internal/models"
)

var (
	// ErrNotFound is returned when the referenced entrant, winner or user does not exist
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateNationalID is returned when the national ID is already in the active pool
	ErrDuplicateNationalID = errors.New("national id already registered in the active pool")
	// ErrDuplicateDraw is returned when a winner with the same draw id was already written
	ErrDuplicateDraw = errors.New("draw already recorded")
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/ArowuTest/raffle-backend/internal/repositories EntrantRepository,WinnerRepository,StatsRepository,AdminUserRepository,Transactor

// EntrantRepository defines the storage operations on the active pool
type EntrantRepository interface {
	// Create stores the entrant and assigns its insertion sequence
	Create(ctx context.Context, entrant *models.Entrant) error
	// FindAll returns the pool newest first, later insertions first on equal timestamps
	FindAll(ctx context.Context) ([]*models.Entrant, error)
	FindByID(ctx context.Context, id string) (*models.Entrant, error)
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) (int64, error)
	Count(ctx context.Context) (int64, error)
}

// WinnerRepository defines the storage operations on the winners ledger
type WinnerRepository interface {
	Create(ctx context.Context, winner *models.Winner) error
	FindByID(ctx context.Context, id string) (*models.Winner, error)
	// FindAll returns winners newest first; limit <= 0 returns every winner
	FindAll(ctx context.Context, limit int) ([]*models.Winner, error)
	UpdateStatus(ctx context.Context, id string, status models.PayoutStatus, at time.Time) (*models.Winner, error)
	Count(ctx context.Context) (int64, error)
}

// StatsRepository owns the singleton raffle counter
type StatsRepository interface {
	// Get returns the counter, or a zero counter when no draw has happened yet
	Get(ctx context.Context) (*models.RaffleStats, error)
	// Increment adds exactly one in a single atomic store operation
	Increment(ctx context.Context, at time.Time) (*models.RaffleStats, error)
}

// AdminUserRepository defines the storage operations on dashboard operators
type AdminUserRepository interface {
	// Upsert creates the operator or replaces the password hash of an existing one
	Upsert(ctx context.Context, adminUser *models.AdminUser) error
	FindByEmail(ctx context.Context, email string) (*models.AdminUser, error)
}

// Transactor runs a group of repository calls as one unit.
// Repositories must be called with the ctx handed to fn.
type Transactor interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
	// Atomic reports whether a failed fn leaves no partial effects behind
	Atomic() bool
}

// DirectTransactor runs fn without any transaction. Stores that cannot group
// writes use it and rely on the reconciliation sweep instead.
type DirectTransactor struct{}

// WithTransaction calls fn with ctx unchanged
func (DirectTransactor) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// Atomic always reports false
func (DirectTransactor) Atomic() bool {
	return false
}
