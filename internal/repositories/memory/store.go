package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/ArowuTest/raffle-backend/internal/models"
	"github.com/ArowuTest/raffle-backend/internal/repositories"
)

// Store keeps every collection in process memory behind one mutex. Each call is
// atomic on its own, but there is no transaction spanning calls, so a draw commit
// on this store can be left half done; DirectTransactor reports that.
type Store struct {
	mu sync.Mutex

	entrants    map[string]*models.Entrant
	nationalIDs map[string]string
	entrantSeq  int64

	winners   map[string]*models.Winner
	drawIDs   map[string]struct{}
	winnerSeq int64

	stats  models.RaffleStats
	admins map[string]*models.AdminUser
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		entrants:    map[string]*models.Entrant{},
		nationalIDs: map[string]string{},
		winners:     map[string]*models.Winner{},
		drawIDs:     map[string]struct{}{},
		stats:       models.RaffleStats{ID: models.RaffleStatsID},
		admins:      map[string]*models.AdminUser{},
	}
}

// Entrants returns the pool view of the store
func (s *Store) Entrants() repositories.EntrantRepository { return &entrantRepository{s} }

// Winners returns the ledger view of the store
func (s *Store) Winners() repositories.WinnerRepository { return &winnerRepository{s} }

// Stats returns the counter view of the store
func (s *Store) Stats() repositories.StatsRepository { return &statsRepository{s} }

// AdminUsers returns the operator view of the store
func (s *Store) AdminUsers() repositories.AdminUserRepository { return &adminUserRepository{s} }

// Transactor returns a non-atomic transactor
func (s *Store) Transactor() repositories.Transactor { return repositories.DirectTransactor{} }

type entrantRepository struct{ s *Store }

func (r *entrantRepository) Create(_ context.Context, entrant *models.Entrant) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, taken := r.s.nationalIDs[entrant.NationalID]; taken {
		return repositories.ErrDuplicateNationalID
	}
	r.s.entrantSeq++
	entrant.Seq = r.s.entrantSeq

	stored := *entrant
	r.s.entrants[entrant.ID] = &stored
	r.s.nationalIDs[entrant.NationalID] = entrant.ID
	return nil
}

func (r *entrantRepository) FindAll(_ context.Context) ([]*models.Entrant, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := make([]*models.Entrant, 0, len(r.s.entrants))
	for _, e := range r.s.entrants {
		cp := *e
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].Seq > out[j].Seq
	})
	return out, nil
}

func (r *entrantRepository) FindByID(_ context.Context, id string) (*models.Entrant, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	e, ok := r.s.entrants[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	cp := *e
	return &cp, nil
}

func (r *entrantRepository) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	e, ok := r.s.entrants[id]
	if !ok {
		return repositories.ErrNotFound
	}
	delete(r.s.entrants, id)
	delete(r.s.nationalIDs, e.NationalID)
	return nil
}

func (r *entrantRepository) DeleteAll(_ context.Context) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	n := int64(len(r.s.entrants))
	r.s.entrants = map[string]*models.Entrant{}
	r.s.nationalIDs = map[string]string{}
	return n, nil
}

func (r *entrantRepository) Count(_ context.Context) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return int64(len(r.s.entrants)), nil
}

type winnerRepository struct{ s *Store }

func (r *winnerRepository) Create(_ context.Context, winner *models.Winner) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, seen := r.s.drawIDs[winner.DrawID]; seen && winner.DrawID != "" {
		return repositories.ErrDuplicateDraw
	}
	r.s.winnerSeq++
	winner.Seq = r.s.winnerSeq

	stored := *winner
	r.s.winners[winner.ID] = &stored
	if winner.DrawID != "" {
		r.s.drawIDs[winner.DrawID] = struct{}{}
	}
	return nil
}

func (r *winnerRepository) FindByID(_ context.Context, id string) (*models.Winner, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	w, ok := r.s.winners[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	cp := *w
	return &cp, nil
}

func (r *winnerRepository) FindAll(_ context.Context, limit int) ([]*models.Winner, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := make([]*models.Winner, 0, len(r.s.winners))
	for _, w := range r.s.winners {
		cp := *w
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].WonAt.Equal(out[j].WonAt) {
			return out[i].WonAt.After(out[j].WonAt)
		}
		return out[i].Seq > out[j].Seq
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *winnerRepository) UpdateStatus(_ context.Context, id string, status models.PayoutStatus, at time.Time) (*models.Winner, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	w, ok := r.s.winners[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	w.Status = status
	w.UpdatedAt = at
	cp := *w
	return &cp, nil
}

func (r *winnerRepository) Count(_ context.Context) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return int64(len(r.s.winners)), nil
}

type statsRepository struct{ s *Store }

func (r *statsRepository) Get(_ context.Context) (*models.RaffleStats, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := r.s.stats
	return &cp, nil
}

func (r *statsRepository) Increment(_ context.Context, at time.Time) (*models.RaffleStats, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.stats.TotalRaffles++
	r.s.stats.UpdatedAt = at
	cp := r.s.stats
	return &cp, nil
}

type adminUserRepository struct{ s *Store }

func (r *adminUserRepository) Upsert(_ context.Context, adminUser *models.AdminUser) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if existing, ok := r.s.admins[adminUser.Email]; ok {
		existing.PasswordHash = adminUser.PasswordHash
		existing.Role = adminUser.Role
		existing.UpdatedAt = adminUser.UpdatedAt
		return nil
	}
	stored := *adminUser
	r.s.admins[adminUser.Email] = &stored
	return nil
}

func (r *adminUserRepository) FindByEmail(_ context.Context, email string) (*models.AdminUser, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	u, ok := r.s.admins[email]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	cp := *u
	return &cp, nil
}
