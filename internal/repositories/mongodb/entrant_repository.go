package mongodb

import (
	"context"
	"errors"

	"github.com/ArowuTest/raffle-backend/internal/models"
	"github.com/ArowuTest/raffle-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	// EntrantsCollection keeps the name used by the first version of the form
	EntrantsCollection = "registered_users"
	entrantSeqKey      = "entrant_seq"
)

// Ensure entrantRepository implements repositories.EntrantRepository
var _ repositories.EntrantRepository = (*entrantRepository)(nil)

type entrantRepository struct {
	collection *mongo.Collection
	counters   *mongo.Collection
}

// NewEntrantRepository creates a new repository for the active pool
func NewEntrantRepository(db *mongo.Database) repositories.EntrantRepository {
	return &entrantRepository{
		collection: db.Collection(EntrantsCollection),
		counters:   db.Collection(countersCollection),
	}
}

// Create assigns the next insertion sequence and inserts the entrant
func (r *entrantRepository) Create(ctx context.Context, entrant *models.Entrant) error {
	seq, err := nextSequence(ctx, r.counters, entrantSeqKey)
	if err != nil {
		return err
	}
	entrant.Seq = seq

	if _, err := r.collection.InsertOne(ctx, entrant); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repositories.ErrDuplicateNationalID
		}
		return err
	}
	return nil
}

// FindAll returns every active entrant, newest first
func (r *entrantRepository) FindAll(ctx context.Context) ([]*models.Entrant, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "seq", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []*models.EntrantRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}

	entrants := make([]*models.Entrant, 0, len(records))
	for _, rec := range records {
		entrants = append(entrants, models.MigrateEntrant(rec))
	}
	return entrants, nil
}

// FindByID finds an entrant by its ID
func (r *entrantRepository) FindByID(ctx context.Context, id string) (*models.Entrant, error) {
	var rec models.EntrantRecord
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&rec); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repositories.ErrNotFound
		}
		return nil, err
	}
	return models.MigrateEntrant(&rec), nil
}

// Delete removes one entrant. A missing entrant is reported, never ignored.
func (r *entrantRepository) Delete(ctx context.Context, id string) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return repositories.ErrNotFound
	}
	return nil
}

// DeleteAll clears the active pool
func (r *entrantRepository) DeleteAll(ctx context.Context) (int64, error) {
	res, err := r.collection.DeleteMany(ctx, bson.M{})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// Count counts the active entrants
func (r *entrantRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}
