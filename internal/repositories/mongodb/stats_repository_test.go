package mongodb

import (
	"context"
	"testing"
	"time"

	"github.com/ArowuTest/raffle-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestStatsRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ns := "raffle." + StatsCollection

	mt.Run("get before first draw", func(mt *mtest.T) {
		repo := NewStatsRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		stats, err := repo.Get(context.Background())
		require.NoError(mt, err)
		assert.Equal(mt, int64(0), stats.TotalRaffles)
		assert.Equal(mt, models.RaffleStatsID, stats.ID)
	})

	mt.Run("increment returns new value", func(mt *mtest.T) {
		repo := NewStatsRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: bson.D{
			{Key: "_id", Value: models.RaffleStatsID},
			{Key: "totalRaffles", Value: int64(4)},
		}}))

		stats, err := repo.Increment(context.Background(), time.Now())
		require.NoError(mt, err)
		assert.Equal(mt, int64(4), stats.TotalRaffles)
	})
}
