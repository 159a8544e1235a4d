package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/ArowuTest/raffle-backend/internal/models"
	"github.com/ArowuTest/raffle-backend/internal/repositories"
	"github.com/stretchr/testify/suite"
)

type StoreTestSuite struct {
	suite.Suite
	store   *Store
	ctx     context.Context
	testNow time.Time
}

func (s *StoreTestSuite) SetupTest() {
	s.store = NewStore()
	s.ctx = context.Background()
	s.testNow = time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC)
}

func TestStoreTestSuite(t *testing.T) {
	suite.Run(t, new(StoreTestSuite))
}

func (s *StoreTestSuite) entrant(id, nationalID string, created time.Time) *models.Entrant {
	return &models.Entrant{
		ID:              id,
		DisplayName:     "Entrant " + id,
		NationalID:      nationalID,
		CasinoAccountID: "acc-" + id,
		CreatedAt:       created,
	}
}

func (s *StoreTestSuite) TestEntrantOrderingNewestFirstWithTies() {
	repo := s.store.Entrants()
	s.Require().NoError(repo.Create(s.ctx, s.entrant("a", "00000000001", s.testNow)))
	s.Require().NoError(repo.Create(s.ctx, s.entrant("b", "00000000002", s.testNow)))
	s.Require().NoError(repo.Create(s.ctx, s.entrant("c", "00000000003", s.testNow.Add(time.Second))))

	all, err := repo.FindAll(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(all, 3)
	s.Equal("c", all[0].ID)
	s.Equal("b", all[1].ID)
	s.Equal("a", all[2].ID)
}

func (s *StoreTestSuite) TestDuplicateNationalIDFreedAfterDelete() {
	repo := s.store.Entrants()
	s.Require().NoError(repo.Create(s.ctx, s.entrant("a", "12345678900", s.testNow)))
	s.ErrorIs(repo.Create(s.ctx, s.entrant("b", "12345678900", s.testNow)), repositories.ErrDuplicateNationalID)

	s.Require().NoError(repo.Delete(s.ctx, "a"))
	s.ErrorIs(repo.Delete(s.ctx, "a"), repositories.ErrNotFound)
	s.NoError(repo.Create(s.ctx, s.entrant("b", "12345678900", s.testNow)))
}

func (s *StoreTestSuite) TestDeleteAllKeepsWinnersAndStats() {
	entrants := s.store.Entrants()
	s.Require().NoError(entrants.Create(s.ctx, s.entrant("a", "00000000001", s.testNow)))
	s.Require().NoError(entrants.Create(s.ctx, s.entrant("b", "00000000002", s.testNow)))
	s.Require().NoError(s.store.Winners().Create(s.ctx, &models.Winner{ID: "w1", DrawID: "d1", WonAt: s.testNow}))
	_, err := s.store.Stats().Increment(s.ctx, s.testNow)
	s.Require().NoError(err)

	n, err := entrants.DeleteAll(s.ctx)
	s.Require().NoError(err)
	s.Equal(int64(2), n)

	n, err = entrants.DeleteAll(s.ctx)
	s.Require().NoError(err)
	s.Equal(int64(0), n)

	count, err := s.store.Winners().Count(s.ctx)
	s.Require().NoError(err)
	s.Equal(int64(1), count)
	stats, err := s.store.Stats().Get(s.ctx)
	s.Require().NoError(err)
	s.Equal(int64(1), stats.TotalRaffles)
}

func (s *StoreTestSuite) TestWinnerLedger() {
	winners := s.store.Winners()
	s.Require().NoError(winners.Create(s.ctx, &models.Winner{ID: "w1", DrawID: "d1", WonAt: s.testNow, Status: models.PayoutStatusPending}))
	s.Require().NoError(winners.Create(s.ctx, &models.Winner{ID: "w2", DrawID: "d2", WonAt: s.testNow.Add(time.Minute), Status: models.PayoutStatusPending}))
	s.ErrorIs(winners.Create(s.ctx, &models.Winner{ID: "w3", DrawID: "d1"}), repositories.ErrDuplicateDraw)

	all, err := winners.FindAll(s.ctx, 0)
	s.Require().NoError(err)
	s.Require().Len(all, 2)
	s.Equal("w2", all[0].ID)

	limited, err := winners.FindAll(s.ctx, 1)
	s.Require().NoError(err)
	s.Len(limited, 1)

	updated, err := winners.UpdateStatus(s.ctx, "w1", models.PayoutStatusPaid, s.testNow.Add(time.Hour))
	s.Require().NoError(err)
	s.Equal(models.PayoutStatusPaid, updated.Status)

	_, err = winners.UpdateStatus(s.ctx, "missing", models.PayoutStatusPaid, s.testNow)
	s.ErrorIs(err, repositories.ErrNotFound)
}

func (s *StoreTestSuite) TestWinnerTiesListLaterAppendFirst() {
	winners := s.store.Winners()
	first := &models.Winner{ID: "w-first", DrawID: "d1", WonAt: s.testNow}
	second := &models.Winner{ID: "w-second", DrawID: "d2", WonAt: s.testNow}
	s.Require().NoError(winners.Create(s.ctx, first))
	s.Require().NoError(winners.Create(s.ctx, second))
	s.Less(first.Seq, second.Seq)

	all, err := winners.FindAll(s.ctx, 0)
	s.Require().NoError(err)
	s.Require().Len(all, 2)
	s.Equal("w-second", all[0].ID)
	s.Equal("w-first", all[1].ID)
}

func (s *StoreTestSuite) TestConcurrentIncrementsAreNotLost() {
	const workers = 50
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.store.Stats().Increment(s.ctx, s.testNow)
			s.NoError(err)
		}()
	}
	wg.Wait()

	stats, err := s.store.Stats().Get(s.ctx)
	s.Require().NoError(err)
	s.Equal(int64(workers), stats.TotalRaffles)
}

func (s *StoreTestSuite) TestReturnedEntrantsAreCopies() {
	repo := s.store.Entrants()
	s.Require().NoError(repo.Create(s.ctx, s.entrant("a", "00000000001", s.testNow)))

	got, err := repo.FindByID(s.ctx, "a")
	s.Require().NoError(err)
	got.DisplayName = "changed"

	again, err := repo.FindByID(s.ctx, "a")
	s.Require().NoError(err)
	s.Equal("Entrant a", again.DisplayName)
}

func (s *StoreTestSuite) TestAdminUpsert() {
	admins := s.store.AdminUsers()
	s.Require().NoError(admins.Upsert(s.ctx, &models.AdminUser{ID: "op-1", Email: "ops@raffle.test", PasswordHash: "h1"}))
	s.Require().NoError(admins.Upsert(s.ctx, &models.AdminUser{ID: "op-2", Email: "ops@raffle.test", PasswordHash: "h2"}))

	u, err := admins.FindByEmail(s.ctx, "ops@raffle.test")
	s.Require().NoError(err)
	s.Equal("op-1", u.ID)
	s.Equal("h2", u.PasswordHash)

	_, err = admins.FindByEmail(s.ctx, fmt.Sprintf("%s@raffle.test", "nobody"))
	s.ErrorIs(err, repositories.ErrNotFound)
}

func (s *StoreTestSuite) TestTransactorIsNotAtomic() {
	s.False(s.store.Transactor().Atomic())
}
