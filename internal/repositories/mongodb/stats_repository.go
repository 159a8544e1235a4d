package mongodb

import (
	"context"
	"errors"
	"time"

	"github.com/ArowuTest/raffle-backend/internal/models"
	"github.com/ArowuTest/raffle-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// StatsCollection holds the singleton counter document
const StatsCollection = "stats"

var _ repositories.StatsRepository = (*statsRepository)(nil)

type statsRepository struct {
	collection *mongo.Collection
}

// NewStatsRepository creates a new repository for the raffle counter
func NewStatsRepository(db *mongo.Database) repositories.StatsRepository {
	return &statsRepository{
		collection: db.Collection(StatsCollection),
	}
}

// Get reads the counter. A missing document means no draw has completed yet.
func (r *statsRepository) Get(ctx context.Context) (*models.RaffleStats, error) {
	var stats models.RaffleStats
	if err := r.collection.FindOne(ctx, bson.M{"_id": models.RaffleStatsID}).Decode(&stats); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return &models.RaffleStats{ID: models.RaffleStatsID}, nil
		}
		return nil, err
	}
	return &stats, nil
}

// Increment bumps the counter with a server-side $inc, so concurrent draws never lose an update
func (r *statsRepository) Increment(ctx context.Context, at time.Time) (*models.RaffleStats, error) {
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)
	update := bson.M{
		"$inc": bson.M{"totalRaffles": int64(1)},
		"$set": bson.M{"updatedAt": at},
	}

	var stats models.RaffleStats
	if err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": models.RaffleStatsID}, update, opts).Decode(&stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
