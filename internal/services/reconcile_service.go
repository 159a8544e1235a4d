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

// ReconcileServiceConfig holds the collaborators of the reconciliation sweep
type ReconcileServiceConfig struct {
	Entrants  repositories.EntrantRepository
	Winners   repositories.WinnerRepository
	Stats     repositories.StatsRepository
	Draws     DrawService
	Clock     clock.Clock
	Publisher events.Publisher
}

type reconcileService struct {
	entrants  repositories.EntrantRepository
	winners   repositories.WinnerRepository
	stats     repositories.StatsRepository
	draws     DrawService
	clock     clock.Clock
	publisher events.Publisher
}

// NewReconcileService creates a new ReconcileService implementation
func NewReconcileService(cfg ReconcileServiceConfig) ReconcileService {
	return &reconcileService{
		entrants:  cfg.Entrants,
		winners:   cfg.Winners,
		stats:     cfg.Stats,
		draws:     cfg.Draws,
		clock:     cfg.Clock,
		publisher: cfg.Publisher,
	}
}

// Run removes drawn entrants that are still in the pool and raises the counter
// to the number of winners. The counter is never lowered. The sweep holds the
// draw lock so it never observes a draw mid-commit.
func (s *reconcileService) Run(ctx context.Context) (*models.ReconcileReport, error) {
	var report *models.ReconcileReport
	err := s.draws.RunExclusive(ctx, func(ctx context.Context) error {
		var err error
		report, err = s.sweep(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return report, nil
}

func (s *reconcileService) sweep(ctx context.Context) (*models.ReconcileReport, error) {
	winners, err := s.winners.FindAll(ctx, 0)
	if err != nil {
		return nil, storageError(err)
	}
	report := &models.ReconcileReport{
		WinnersScanned:  len(winners),
		EntrantsRemoved: []string{},
	}

	for _, w := range winners {
		if w.EntrantID == "" {
			continue
		}
		_, err := s.entrants.FindByID(ctx, w.EntrantID)
		if errors.Is(err, repositories.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, storageError(err)
		}

		if err := s.entrants.Delete(ctx, w.EntrantID); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				continue
			}
			return nil, storageError(err)
		}
		slog.Warn("removed drawn entrant still in pool", "entrantId", w.EntrantID, "winnerId", w.ID, "drawId", w.DrawID)
		report.EntrantsRemoved = append(report.EntrantsRemoved, w.EntrantID)
	}

	stats, err := s.stats.Get(ctx)
	if err != nil {
		return nil, storageError(err)
	}
	report.CounterBefore = stats.TotalRaffles
	report.CounterAfter = stats.TotalRaffles

	for report.CounterAfter < int64(len(winners)) {
		stats, err = s.stats.Increment(ctx, s.clock.Now())
		if err != nil {
			return nil, storageError(err)
		}
		report.CounterAfter = stats.TotalRaffles
	}
	report.CounterAdjustedBy = report.CounterAfter - report.CounterBefore

	if report.CounterAdjustedBy > 0 {
		slog.Warn("raffle counter behind winners ledger, raised", "before", report.CounterBefore, "after", report.CounterAfter)
		events.Notify(ctx, s.publisher, events.TopicStats, events.TypeStatsUpdated, stats, s.clock.Now())
	}
	if len(report.EntrantsRemoved) > 0 {
		events.Notify(ctx, s.publisher, events.TopicEntrants, events.TypeEntrantRemoved, map[string][]string{"ids": report.EntrantsRemoved}, s.clock.Now())
	}

	slog.Info("reconciliation finished",
		"winnersScanned", report.WinnersScanned,
		"entrantsRemoved", len(report.EntrantsRemoved),
		"counterAdjustedBy", report.CounterAdjustedBy,
	)
	return report, nil
}
