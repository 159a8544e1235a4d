package services

import (
	"context"

	"github.com/ArowuTest/raffle-backend/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_services.go github.com/ArowuTest/raffle-backend/internal/services EntrantService,DrawService,WinnerService,ReconcileService,AuthService,Authenticator

// EntrantService defines the operations on the active entrant pool
type EntrantService interface {
	// Register validates the form and appends a new entrant to the pool
	Register(ctx context.Context, req *models.RegistrationRequest) (*models.Entrant, error)

	// ListActive returns the pool newest first
	ListActive(ctx context.Context) ([]*models.Entrant, error)

	// Search filters the pool by display name or national ID
	Search(ctx context.Context, query string) ([]*models.Entrant, error)

	// Remove deletes one entrant. A second removal of the same id returns ErrNotFound.
	Remove(ctx context.Context, id string) error

	// ClearAll empties the pool and returns the number of entrants removed
	ClearAll(ctx context.Context) (int64, error)
}

// DrawService defines the raffle draw engine
type DrawService interface {
	// State returns where the engine is in its spin cycle
	State() models.DrawState

	// View returns the roulette screen: state, pool snapshot and counter
	View(ctx context.Context) (*models.RouletteView, error)

	// Draw picks a winner from the current pool and commits the result
	Draw(ctx context.Context) (*models.Winner, error)

	// DrawFrom picks a winner from the given pool snapshot and commits the result
	DrawFrom(ctx context.Context, pool []*models.Entrant) (*models.Winner, error)

	// Stats reads the raffle counter
	Stats(ctx context.Context) (*models.RaffleStats, error)

	// RunExclusive runs fn while no draw can start. It fails with
	// ErrDrawInProgress when a draw is already running.
	RunExclusive(ctx context.Context, fn func(ctx context.Context) error) error
}

// WinnerService defines the operations on the winners ledger
type WinnerService interface {
	// List returns winners newest first. limit < 0 uses the default page size, 0 returns all.
	List(ctx context.Context, limit int) ([]*models.Winner, error)

	Get(ctx context.Context, id string) (*models.Winner, error)

	// SetStatus overwrites the payout status of a winner
	SetStatus(ctx context.Context, id string, status models.PayoutStatus) (*models.Winner, error)
}

// ReconcileService repairs draws whose commit only partly completed
type ReconcileService interface {
	Run(ctx context.Context) (*models.ReconcileReport, error)
}

// Authenticator checks operator credentials
type Authenticator interface {
	// Authenticate returns the operator or ErrInvalidCredentials
	Authenticate(ctx context.Context, email, password string) (*models.AdminUser, error)
}

// AuthService defines the operator login operations
type AuthService interface {
	// Login checks the credentials and returns a signed token
	Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error)

	// SeedOperator creates or updates the configured operator account
	SeedOperator(ctx context.Context, seed OperatorSeed) error
}
