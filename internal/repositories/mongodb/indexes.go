package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the indexes the repositories rely on. It is safe to call on every start.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	specs := map[string][]mongo.IndexModel{
		EntrantsCollection: {
			{
				// legacy documents get nationalId from BackfillNationalIDs
				Keys: bson.D{{Key: "nationalId", Value: 1}},
				Options: options.Index().
					SetUnique(true).
					SetPartialFilterExpression(bson.M{"nationalId": bson.M{"$type": "string"}}),
			},
			{Keys: bson.D{{Key: "createdAt", Value: -1}, {Key: "seq", Value: -1}}},
		},
		WinnersCollection: {
			{
				Keys: bson.D{{Key: "drawId", Value: 1}},
				Options: options.Index().
					SetUnique(true).
					SetPartialFilterExpression(bson.M{"drawId": bson.M{"$type": "string"}}),
			},
			{Keys: bson.D{{Key: "wonAt", Value: -1}, {Key: "seq", Value: -1}}},
			{Keys: bson.D{{Key: "entrantId", Value: 1}}},
		},
		AdminUsersCollection: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
	}

	for coll, models := range specs {
		if _, err := db.Collection(coll).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("failed to create indexes on %s: %w", coll, err)
		}
	}
	return nil
}
