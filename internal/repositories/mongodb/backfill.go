package mongodb

import (
	"context"
	"fmt"

	"github.com/ArowuTest/raffle-backend/internal/utils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/exp/slog"
)

// BackfillNationalIDs writes the normalized cpf of legacy entrants into nationalId
// so the unique index covers them. Run it after EnsureIndexes: a legacy entrant whose
// national ID is already taken in the pool keeps its legacy shape and is logged.
func BackfillNationalIDs(ctx context.Context, db *mongo.Database) (int64, error) {
	coll := db.Collection(EntrantsCollection)

	filter := bson.M{
		"nationalId": bson.M{"$exists": false},
		"cpf":        bson.M{"$exists": true, "$ne": ""},
	}
	opts := options.Find().SetProjection(bson.M{"_id": 1, "cpf": 1})

	cursor, err := coll.Find(ctx, filter, opts)
	if err != nil {
		return 0, fmt.Errorf("failed to find legacy entrants: %w", err)
	}
	var legacy []struct {
		ID  string `bson:"_id"`
		CPF string `bson:"cpf"`
	}
	if err := cursor.All(ctx, &legacy); err != nil {
		return 0, fmt.Errorf("failed to read legacy entrants: %w", err)
	}

	var updated int64
	for _, doc := range legacy {
		nationalID := utils.NormalizeNationalID(doc.CPF)
		if nationalID == "" {
			continue
		}
		res, err := coll.UpdateOne(ctx,
			bson.M{"_id": doc.ID, "nationalId": bson.M{"$exists": false}},
			bson.M{"$set": bson.M{"nationalId": nationalID}},
		)
		if err != nil {
			if mongo.IsDuplicateKeyError(err) {
				slog.Warn("legacy entrant shares a national id with the pool, left unindexed", "entrantId", doc.ID)
				continue
			}
			return updated, fmt.Errorf("failed to backfill entrant %s: %w", doc.ID, err)
		}
		updated += res.ModifiedCount
	}

	if updated > 0 {
		slog.Info("backfilled national ids on legacy entrants", "count", updated)
	}
	return updated, nil
}
