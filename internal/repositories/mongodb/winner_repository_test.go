package mongodb

import (
	"context"
	"testing"
	"time"

	"github.com/ArowuTest/raffle-backend/internal/models"
	"github.com/ArowuTest/raffle-backend/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestWinnerRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	won := time.Date(2025, 3, 2, 21, 0, 0, 0, time.UTC)
	ns := "raffle." + WinnersCollection

	mt.Run("create assigns ledger sequence", func(mt *mtest.T) {
		repo := NewWinnerRepository(mt.DB)
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "value", Value: bson.D{
				{Key: "_id", Value: winnerSeqKey},
				{Key: "value", Value: int64(4)},
			}}),
			mtest.CreateSuccessResponse(),
		)

		winner := &models.Winner{ID: "w1", DrawID: "d1", WonAt: won}
		require.NoError(mt, repo.Create(context.Background(), winner))
		assert.Equal(mt, int64(4), winner.Seq)
	})

	mt.Run("create duplicate draw", func(mt *mtest.T) {
		repo := NewWinnerRepository(mt.DB)
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "value", Value: bson.D{{Key: "value", Value: int64(5)}}}),
			mtest.CreateWriteErrorsResponse(mtest.WriteError{Index: 0, Code: 11000, Message: "duplicate key error"}),
		)

		err := repo.Create(context.Background(), &models.Winner{ID: "w1", DrawID: "d1"})
		assert.ErrorIs(mt, err, repositories.ErrDuplicateDraw)
	})

	mt.Run("find all maps legacy statuses", func(mt *mtest.T) {
		repo := NewWinnerRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			bson.D{
				{Key: "_id", Value: "w2"},
				{Key: "seq", Value: int64(2)},
				{Key: "schemaVersion", Value: int32(2)},
				{Key: "displayName", Value: "Bruno"},
				{Key: "status", Value: "PAID"},
				{Key: "wonAt", Value: won},
			},
			bson.D{
				{Key: "_id", Value: "legacy-w1"},
				{Key: "name", Value: "Ana"},
				{Key: "cpf", Value: "12345678900"},
				{Key: "status", Value: "Pix Enviado"},
				{Key: "wonAt", Value: won.Add(-24 * time.Hour)},
			},
		))

		winners, err := repo.FindAll(context.Background(), 100)
		require.NoError(mt, err)
		require.Len(mt, winners, 2)
		assert.Equal(mt, models.PayoutStatusPaid, winners[0].Status)
		assert.Equal(mt, int64(2), winners[0].Seq)
		assert.Equal(mt, "Ana", winners[1].DisplayName)
		assert.Equal(mt, models.PayoutStatusPaid, winners[1].Status)
	})

	mt.Run("update status", func(mt *mtest.T) {
		repo := NewWinnerRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: bson.D{
			{Key: "_id", Value: "w1"},
			{Key: "schemaVersion", Value: int32(2)},
			{Key: "status", Value: "PAID"},
			{Key: "wonAt", Value: won},
			{Key: "updatedAt", Value: won.Add(time.Hour)},
		}}))

		w, err := repo.UpdateStatus(context.Background(), "w1", models.PayoutStatusPaid, won.Add(time.Hour))
		require.NoError(mt, err)
		assert.Equal(mt, models.PayoutStatusPaid, w.Status)
		assert.True(mt, won.Add(time.Hour).Equal(w.UpdatedAt))
	})

	mt.Run("update status not found", func(mt *mtest.T) {
		repo := NewWinnerRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		_, err := repo.UpdateStatus(context.Background(), "missing", models.PayoutStatusPaid, won)
		assert.ErrorIs(mt, err, repositories.ErrNotFound)
	})
}
