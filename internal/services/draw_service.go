package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/ArowuTest/raffle-backend/internal/common/clock"
	"github.com/ArowuTest/raffle-backend/internal/common/random"
	"github.com/ArowuTest/raffle-backend/internal/common/uuid"
	"github.com/ArowuTest/raffle-backend/internal/events"
	"github.com/ArowuTest/raffle-backend/internal/models"
	"github.com/ArowuTest/raffle-backend/internal/repositories"
	"golang.org/x/exp/slog"
)

// DrawServiceConfig holds the collaborators of the draw engine
type DrawServiceConfig struct {
	Entrants   repositories.EntrantRepository
	Winners    repositories.WinnerRepository
	Stats      repositories.StatsRepository
	Transactor repositories.Transactor
	Picker     random.Picker
	Clock      clock.Clock
	UUID       uuid.UUID
	Publisher  events.Publisher
	// RevealDelay is how long the engine stays SPINNING before committing
	RevealDelay time.Duration
}

type drawService struct {
	entrants    repositories.EntrantRepository
	winners     repositories.WinnerRepository
	stats       repositories.StatsRepository
	transactor  repositories.Transactor
	picker      random.Picker
	clock       clock.Clock
	uuid        uuid.UUID
	publisher   events.Publisher
	revealDelay time.Duration

	// running is held for the whole draw; a second caller fails fast
	running sync.Mutex

	stateMu sync.RWMutex
	state   models.DrawState
}

// NewDrawService creates a new DrawService implementation
func NewDrawService(cfg DrawServiceConfig) DrawService {
	transactor := cfg.Transactor
	if transactor == nil {
		transactor = repositories.DirectTransactor{}
	}
	return &drawService{
		entrants:    cfg.Entrants,
		winners:     cfg.Winners,
		stats:       cfg.Stats,
		transactor:  transactor,
		picker:      cfg.Picker,
		clock:       cfg.Clock,
		uuid:        cfg.UUID,
		publisher:   cfg.Publisher,
		revealDelay: cfg.RevealDelay,
		state:       models.DrawStateIdle,
	}
}

func (s *drawService) State() models.DrawState {
	s.stateMu.RLock()
	defer s.stateMu.RUnlock()
	return s.state
}

func (s *drawService) setState(ctx context.Context, state models.DrawState) {
	s.stateMu.Lock()
	s.state = state
	s.stateMu.Unlock()

	events.Notify(ctx, s.publisher, events.TopicDraw, events.TypeDrawStateChanged, map[string]models.DrawState{"state": state}, s.clock.Now())
}

func (s *drawService) View(ctx context.Context) (*models.RouletteView, error) {
	entrants, err := s.entrants.FindAll(ctx)
	if err != nil {
		return nil, storageError(err)
	}
	stats, err := s.Stats(ctx)
	if err != nil {
		return nil, err
	}
	return &models.RouletteView{
		State:        s.State(),
		Entrants:     entrants,
		TotalRaffles: stats.TotalRaffles,
	}, nil
}

func (s *drawService) Stats(ctx context.Context) (*models.RaffleStats, error) {
	stats, err := s.stats.Get(ctx)
	if err != nil {
		return nil, storageError(err)
	}
	return stats, nil
}

func (s *drawService) RunExclusive(ctx context.Context, fn func(ctx context.Context) error) error {
	if !s.running.TryLock() {
		return ErrDrawInProgress
	}
	defer s.running.Unlock()
	return fn(ctx)
}

func (s *drawService) Draw(ctx context.Context) (*models.Winner, error) {
	if !s.running.TryLock() {
		return nil, ErrDrawInProgress
	}
	defer s.running.Unlock()

	pool, err := s.entrants.FindAll(ctx)
	if err != nil {
		return nil, storageError(err)
	}
	return s.draw(ctx, pool)
}

func (s *drawService) DrawFrom(ctx context.Context, pool []*models.Entrant) (*models.Winner, error) {
	if !s.running.TryLock() {
		return nil, ErrDrawInProgress
	}
	defer s.running.Unlock()
	return s.draw(ctx, pool)
}

// draw runs with s.running held
func (s *drawService) draw(ctx context.Context, pool []*models.Entrant) (*models.Winner, error) {
	if len(pool) == 0 {
		return nil, ErrEmptyPool
	}

	entrant := pool[s.picker.Intn(len(pool))]
	drawID := s.uuid.NewUUID()
	winnerID := s.uuid.NewUUID()
	log := slog.With("drawId", drawID, "entrantId", entrant.ID, "winnerId", winnerID)

	// Once the winner is fixed the draw runs to completion
	ctx = context.WithoutCancel(ctx)

	s.setState(ctx, models.DrawStateSpinning)
	defer s.setState(ctx, models.DrawStateIdle)
	log.Info("winner selected", "poolSize", len(pool))

	if s.revealDelay > 0 {
		time.Sleep(s.revealDelay)
	}

	s.setState(ctx, models.DrawStateCommitting)
	res, err := s.commit(ctx, entrant, drawID, winnerID)
	if err != nil {
		return nil, s.commitFailure(log, res, entrant, drawID, winnerID, err)
	}

	log.Info("draw committed", "totalRaffles", res.stats.TotalRaffles)
	events.Notify(ctx, s.publisher, events.TopicWinners, events.TypeWinnerDrawn, res.winner, res.winner.WonAt)
	events.Notify(ctx, s.publisher, events.TopicStats, events.TypeStatsUpdated, res.stats, res.winner.WonAt)
	return res.winner, nil
}

type commitResult struct {
	winner    *models.Winner
	stats     *models.RaffleStats
	completed []CommitStep
	failed    CommitStep
}

// commit appends the winner, bumps the counter and removes the entrant. The
// transactor may call fn more than once, so every attempt starts clean.
func (s *drawService) commit(ctx context.Context, entrant *models.Entrant, drawID, winnerID string) (*commitResult, error) {
	res := &commitResult{}
	err := s.transactor.WithTransaction(ctx, func(ctx context.Context) error {
		*res = commitResult{}
		now := s.clock.Now()
		winner := models.NewWinner(entrant, winnerID, drawID, now)

		res.failed = StepAppendWinner
		if err := s.winners.Create(ctx, winner); err != nil {
			return err
		}
		res.completed = append(res.completed, StepAppendWinner)

		res.failed = StepIncrementStats
		stats, err := s.stats.Increment(ctx, winner.WonAt)
		if err != nil {
			return err
		}
		res.completed = append(res.completed, StepIncrementStats)

		res.failed = StepRemoveEntrant
		if err := s.entrants.Delete(ctx, entrant.ID); err != nil {
			return err
		}
		res.completed = append(res.completed, StepRemoveEntrant)

		res.failed = ""
		res.winner = winner
		res.stats = stats
		return nil
	})
	return res, err
}

func (s *drawService) commitFailure(log *slog.Logger, res *commitResult, entrant *models.Entrant, drawID, winnerID string, err error) error {
	if !s.transactor.Atomic() && len(res.completed) > 0 {
		log.Error("partial commit anomaly",
			"completed", res.completed,
			"failed", res.failed,
			"error", err,
		)
		return &PartialCommitError{
			DrawID:    drawID,
			WinnerID:  winnerID,
			EntrantID: entrant.ID,
			Completed: res.completed,
			Failed:    res.failed,
			Err:       err,
		}
	}

	if errors.Is(err, repositories.ErrNotFound) {
		log.Warn("drawn entrant already left the pool, draw rolled back", "step", res.failed)
		return ErrNotFound
	}
	log.Error("draw commit failed", "step", res.failed, "error", err)
	return storageError(err)
}
