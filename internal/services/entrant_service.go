package services

import (
	"context"
	"errors"
	"strings"

	"github.com/ArowuTest/raffle-backend/internal/common/clock"
	"github.com/ArowuTest/raffle-backend/internal/common/uuid"
	"github.com/ArowuTest/raffle-backend/internal/events"
	"github.com/ArowuTest/raffle-backend/internal/models"
	"github.com/ArowuTest/raffle-backend/internal/repositories"
	"github.com/ArowuTest/raffle-backend/internal/utils"
	"golang.org/x/exp/slog"
)

type entrantService struct {
	repo      repositories.EntrantRepository
	clock     clock.Clock
	uuid      uuid.UUID
	publisher events.Publisher
}

// NewEntrantService creates a new EntrantService implementation
func NewEntrantService(repo repositories.EntrantRepository, clk clock.Clock, ids uuid.UUID, publisher events.Publisher) EntrantService {
	return &entrantService{
		repo:      repo,
		clock:     clk,
		uuid:      ids,
		publisher: publisher,
	}
}

func (s *entrantService) Register(ctx context.Context, req *models.RegistrationRequest) (*models.Entrant, error) {
	if req == nil {
		return nil, &ValidationError{Fields: map[string]string{"body": "is required"}}
	}
	r := normalizeRegistration(req)
	if err := validateRegistration(r); err != nil {
		return nil, err
	}

	entrant := &models.Entrant{
		ID:              s.uuid.NewUUID(),
		DisplayName:     r.DisplayName,
		NationalID:      r.NationalID,
		CasinoAccountID: r.CasinoAccountID,
		PayoutKeyType:   models.PayoutKeyType(r.PayoutKeyType),
		PayoutKeyValue:  r.PayoutKeyValue,
		CreatedAt:       s.clock.Now(),
		SchemaVersion:   models.CurrentSchemaVersion,
	}
	if entrant.PayoutKeyType == models.PayoutKeyNationalID && entrant.PayoutKeyValue == "" {
		entrant.PayoutKeyValue = entrant.NationalID
	}

	if err := s.repo.Create(ctx, entrant); err != nil {
		if errors.Is(err, repositories.ErrDuplicateNationalID) {
			return nil, &DuplicateEntrantError{NationalID: entrant.NationalID}
		}
		slog.Error("failed to register entrant", "error", err)
		return nil, storageError(err)
	}

	slog.Info("entrant registered", "entrantId", entrant.ID)
	events.Notify(ctx, s.publisher, events.TopicEntrants, events.TypeEntrantRegistered, entrant, entrant.CreatedAt)
	return entrant, nil
}

func (s *entrantService) ListActive(ctx context.Context) ([]*models.Entrant, error) {
	entrants, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, storageError(err)
	}
	return entrants, nil
}

func (s *entrantService) Search(ctx context.Context, query string) ([]*models.Entrant, error) {
	entrants, err := s.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	query = strings.TrimSpace(query)
	if query == "" {
		return entrants, nil
	}
	idQuery := utils.NormalizeNationalID(query)

	matches := make([]*models.Entrant, 0, len(entrants))
	for _, e := range entrants {
		if utils.ContainsFold(e.DisplayName, query) ||
			(idQuery != "" && strings.Contains(e.NationalID, idQuery)) {
			matches = append(matches, e)
		}
	}
	return matches, nil
}

func (s *entrantService) Remove(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrNotFound
		}
		return storageError(err)
	}

	slog.Info("entrant removed", "entrantId", id)
	events.Notify(ctx, s.publisher, events.TopicEntrants, events.TypeEntrantRemoved, map[string]string{"id": id}, s.clock.Now())
	return nil
}

func (s *entrantService) ClearAll(ctx context.Context) (int64, error) {
	removed, err := s.repo.DeleteAll(ctx)
	if err != nil {
		return 0, storageError(err)
	}

	slog.Info("entrant pool cleared", "removed", removed)
	events.Notify(ctx, s.publisher, events.TopicEntrants, events.TypeEntrantsCleared, map[string]int64{"removed": removed}, s.clock.Now())
	return removed, nil
}
