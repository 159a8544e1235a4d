package mongodb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestBackfillNationalIDs(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ns := "raffle." + EntrantsCollection

	mt.Run("sets normalized cpf and skips taken ids", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
				bson.D{{Key: "_id", Value: "legacy-1"}, {Key: "cpf", Value: "123.456.789-00"}},
				bson.D{{Key: "_id", Value: "legacy-2"}, {Key: "cpf", Value: "987.654.321-00"}},
				bson.D{{Key: "_id", Value: "legacy-3"}, {Key: "cpf", Value: " .- "}},
			),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 1}),
			mtest.CreateWriteErrorsResponse(mtest.WriteError{Index: 0, Code: 11000, Message: "duplicate key error"}),
		)

		updated, err := BackfillNationalIDs(context.Background(), mt.DB)
		require.NoError(mt, err)
		assert.Equal(mt, int64(1), updated)

		first := mt.GetStartedEvent()
		require.NotNil(mt, first)
		assert.Equal(mt, "find", first.CommandName)

		update := mt.GetStartedEvent()
		require.NotNil(mt, update)
		assert.Equal(mt, "update", update.CommandName)
		assert.Contains(mt, update.Command.String(), "12345678900")
	})

	mt.Run("nothing to backfill", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		updated, err := BackfillNationalIDs(context.Background(), mt.DB)
		require.NoError(mt, err)
		assert.Zero(mt, updated)
	})
}
