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

func TestEntrantRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	created := time.Date(2025, 3, 1, 19, 0, 0, 0, time.UTC)
	ns := "raffle." + EntrantsCollection

	mt.Run("create assigns sequence", func(mt *mtest.T) {
		repo := NewEntrantRepository(mt.DB)
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "value", Value: bson.D{
				{Key: "_id", Value: entrantSeqKey},
				{Key: "value", Value: int64(7)},
			}}),
			mtest.CreateSuccessResponse(),
		)

		entrant := &models.Entrant{ID: "e1", DisplayName: "Ana", NationalID: "12345678900", CreatedAt: created}
		require.NoError(mt, repo.Create(context.Background(), entrant))
		assert.Equal(mt, int64(7), entrant.Seq)
	})

	mt.Run("create duplicate national id", func(mt *mtest.T) {
		repo := NewEntrantRepository(mt.DB)
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "value", Value: bson.D{{Key: "value", Value: int64(8)}}}),
			mtest.CreateWriteErrorsResponse(mtest.WriteError{Index: 0, Code: 11000, Message: "duplicate key error"}),
		)

		err := repo.Create(context.Background(), &models.Entrant{ID: "e2", NationalID: "12345678900"})
		assert.ErrorIs(mt, err, repositories.ErrDuplicateNationalID)
	})

	mt.Run("find all migrates legacy documents", func(mt *mtest.T) {
		repo := NewEntrantRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			bson.D{
				{Key: "_id", Value: "e2"},
				{Key: "seq", Value: int64(2)},
				{Key: "schemaVersion", Value: int32(2)},
				{Key: "displayName", Value: "Bruno"},
				{Key: "nationalId", Value: "98765432100"},
				{Key: "casinoAccountId", Value: "acc-2"},
				{Key: "createdAt", Value: created},
			},
			bson.D{
				{Key: "_id", Value: "legacy-1"},
				{Key: "twitchNick", Value: "ana_live"},
				{Key: "cpf", Value: "123.456.789-00"},
				{Key: "casinoId", Value: "acc-1"},
				{Key: "pixKeyType", Value: "email"},
				{Key: "pixKey", Value: "ana@example.com"},
				{Key: "createdAt", Value: created.Add(-time.Hour)},
			},
		))

		entrants, err := repo.FindAll(context.Background())
		require.NoError(mt, err)
		require.Len(mt, entrants, 2)
		assert.Equal(mt, "Bruno", entrants[0].DisplayName)
		assert.Equal(mt, int64(2), entrants[0].Seq)
		assert.Equal(mt, "ana_live", entrants[1].DisplayName)
		assert.Equal(mt, "12345678900", entrants[1].NationalID)
		assert.Equal(mt, models.PayoutKeyEmail, entrants[1].PayoutKeyType)
		assert.Equal(mt, models.CurrentSchemaVersion, entrants[1].SchemaVersion)
	})

	mt.Run("find by id not found", func(mt *mtest.T) {
		repo := NewEntrantRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		_, err := repo.FindByID(context.Background(), "missing")
		assert.ErrorIs(mt, err, repositories.ErrNotFound)
	})

	mt.Run("delete reports missing entrant", func(mt *mtest.T) {
		repo := NewEntrantRepository(mt.DB)
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: int32(1)}),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: int32(0)}),
		)

		require.NoError(mt, repo.Delete(context.Background(), "e1"))
		assert.ErrorIs(mt, repo.Delete(context.Background(), "e1"), repositories.ErrNotFound)
	})

	mt.Run("delete all returns count", func(mt *mtest.T) {
		repo := NewEntrantRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: int32(3)}))

		n, err := repo.DeleteAll(context.Background())
		require.NoError(mt, err)
		assert.Equal(mt, int64(3), n)
	})
}
