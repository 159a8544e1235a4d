package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ArowuTest/raffle-backend/internal/common/clock"
	"github.com/ArowuTest/raffle-backend/internal/common/uuid"
	"github.com/ArowuTest/raffle-backend/internal/models"
	"github.com/ArowuTest/raffle-backend/internal/repositories"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/exp/slog"
)

// TokenIssuer signs operator tokens
type TokenIssuer interface {
	Issue(subject, email, role string) (string, time.Time, error)
}

// OperatorSeed is the operator account taken from configuration.
// PasswordHash wins over Password when both are set.
type OperatorSeed struct {
	Email        string
	Password     string
	PasswordHash string
}

type passwordAuthenticator struct {
	repo repositories.AdminUserRepository
}

// NewPasswordAuthenticator checks credentials against bcrypt hashes in the operator store
func NewPasswordAuthenticator(repo repositories.AdminUserRepository) Authenticator {
	return &passwordAuthenticator{repo: repo}
}

func (a *passwordAuthenticator) Authenticate(ctx context.Context, email, password string) (*models.AdminUser, error) {
	user, err := a.repo.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, storageError(err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

type authService struct {
	authenticator Authenticator
	adminRepo     repositories.AdminUserRepository
	tokens        TokenIssuer
	clock         clock.Clock
	uuid          uuid.UUID
}

// NewAuthService creates a new AuthService implementation
func NewAuthService(authenticator Authenticator, adminRepo repositories.AdminUserRepository, tokens TokenIssuer, clk clock.Clock, ids uuid.UUID) AuthService {
	return &authService{
		authenticator: authenticator,
		adminRepo:     adminRepo,
		tokens:        tokens,
		clock:         clk,
		uuid:          ids,
	}
}

func (s *authService) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	user, err := s.authenticator.Authenticate(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			slog.Warn("operator login rejected", "email", normalizeEmail(req.Email))
		}
		return nil, err
	}

	token, expiresAt, err := s.tokens.Issue(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	slog.Info("operator logged in", "userId", user.ID)
	return &models.LoginResponse{Token: token, ExpiresAt: expiresAt}, nil
}

func (s *authService) SeedOperator(ctx context.Context, seed OperatorSeed) error {
	email := normalizeEmail(seed.Email)
	if email == "" {
		slog.Warn("no operator account configured, dashboard login is disabled")
		return nil
	}

	hash := seed.PasswordHash
	switch {
	case hash != "":
		if _, err := bcrypt.Cost([]byte(hash)); err != nil {
			return fmt.Errorf("invalid operator password hash: %w", err)
		}
	case seed.Password != "":
		generated, err := bcrypt.GenerateFromPassword([]byte(seed.Password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash operator password: %w", err)
		}
		hash = string(generated)
	default:
		return errors.New("operator password or password hash is required")
	}

	now := s.clock.Now()
	user := &models.AdminUser{
		ID:           s.uuid.NewUUID(),
		Email:        email,
		PasswordHash: hash,
		Role:         models.RoleOperator,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.adminRepo.Upsert(ctx, user); err != nil {
		return storageError(err)
	}

	slog.Info("operator account seeded", "email", email)
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
