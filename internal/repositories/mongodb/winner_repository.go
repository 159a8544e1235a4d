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

const (
	// WinnersCollection holds the append-only winners ledger
	WinnersCollection = "winners"
	winnerSeqKey      = "winner_seq"
)

// WinnerRepository implements the repositories.WinnerRepository interface
type WinnerRepository struct {
	collection *mongo.Collection
	counters   *mongo.Collection
}

// NewWinnerRepository creates a new WinnerRepository
func NewWinnerRepository(db *mongo.Database) repositories.WinnerRepository {
	return &WinnerRepository{
		collection: db.Collection(WinnersCollection),
		counters:   db.Collection(countersCollection),
	}
}

// Create assigns the next ledger sequence and appends the winner.
// The draw id is unique, so replaying a draw fails.
func (r *WinnerRepository) Create(ctx context.Context, winner *models.Winner) error {
	seq, err := nextSequence(ctx, r.counters, winnerSeqKey)
	if err != nil {
		return err
	}
	winner.Seq = seq

	if _, err := r.collection.InsertOne(ctx, winner); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repositories.ErrDuplicateDraw
		}
		return err
	}
	return nil
}

// FindByID finds a winner by ID
func (r *WinnerRepository) FindByID(ctx context.Context, id string) (*models.Winner, error) {
	var rec models.WinnerRecord
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&rec); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repositories.ErrNotFound
		}
		return nil, err
	}
	return models.MigrateWinner(&rec), nil
}

// FindAll lists winners by win date descending, later appends first on equal dates
func (r *WinnerRepository) FindAll(ctx context.Context, limit int) ([]*models.Winner, error) {
	opts := options.Find().SetSort(bson.D{{Key: "wonAt", Value: -1}, {Key: "seq", Value: -1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []*models.WinnerRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}

	winners := make([]*models.Winner, 0, len(records))
	for _, rec := range records {
		winners = append(winners, models.MigrateWinner(rec))
	}
	return winners, nil
}

// UpdateStatus overwrites the payout status and returns the updated winner
func (r *WinnerRepository) UpdateStatus(ctx context.Context, id string, status models.PayoutStatus, at time.Time) (*models.Winner, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	update := bson.M{"$set": bson.M{"status": status, "updatedAt": at}}

	var rec models.WinnerRecord
	if err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&rec); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repositories.ErrNotFound
		}
		return nil, err
	}
	return models.MigrateWinner(&rec), nil
}

// Count counts all winners
func (r *WinnerRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}
