package services

import (
	"context"
	"errors"

	"github.com/ArowuTest/raffle-backend/internal/common/clock"
	"github.com/ArowuTest/raffle-backend/internal/events"
	"github.com/ArowuTest/raffle-backend/internal/models"
	"github.com/ArowuTest/raffle-backend/internal/repositories"
	"golang.org/x/exp/slog"
)

// DefaultWinnersPageSize is the number of winners listed when no limit is given
const DefaultWinnersPageSize = 100

type winnerService struct {
	repo      repositories.WinnerRepository
	clock     clock.Clock
	publisher events.Publisher
	pageSize  int
}

// NewWinnerService creates a new WinnerService implementation
func NewWinnerService(repo repositories.WinnerRepository, clk clock.Clock, publisher events.Publisher, pageSize int) WinnerService {
	if pageSize <= 0 {
		pageSize = DefaultWinnersPageSize
	}
	return &winnerService{
		repo:      repo,
		clock:     clk,
		publisher: publisher,
		pageSize:  pageSize,
	}
}

func (s *winnerService) List(ctx context.Context, limit int) ([]*models.Winner, error) {
	if limit < 0 {
		limit = s.pageSize
	}
	winners, err := s.repo.FindAll(ctx, limit)
	if err != nil {
		return nil, storageError(err)
	}
	return winners, nil
}

func (s *winnerService) Get(ctx context.Context, id string) (*models.Winner, error) {
	winner, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, storageError(err)
	}
	return winner, nil
}

func (s *winnerService) SetStatus(ctx context.Context, id string, status models.PayoutStatus) (*models.Winner, error) {
	if !status.Valid() {
		return nil, &ValidationError{Fields: map[string]string{
			"status": "must be one of " + string(models.PayoutStatusPending) + ", " + string(models.PayoutStatusPaid),
		}}
	}

	winner, err := s.repo.UpdateStatus(ctx, id, status, s.clock.Now())
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, storageError(err)
	}

	slog.Info("winner payout status updated", "winnerId", id, "status", status)
	events.Notify(ctx, s.publisher, events.TopicWinners, events.TypeWinnerStatusChanged, winner, winner.UpdatedAt)
	return winner, nil
}
