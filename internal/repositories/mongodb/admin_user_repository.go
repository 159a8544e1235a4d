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

// AdminUsersCollection is the dedicated collection for operators
const AdminUsersCollection = "admin_users"

// Ensure adminUserRepository implements repositories.AdminUserRepository
var _ repositories.AdminUserRepository = (*adminUserRepository)(nil)

type adminUserRepository struct {
	collection *mongo.Collection
}

// NewAdminUserRepository creates a new repository for admin users
func NewAdminUserRepository(db *mongo.Database) repositories.AdminUserRepository {
	return &adminUserRepository{
		collection: db.Collection(AdminUsersCollection),
	}
}

// Upsert creates the operator keyed by email, or refreshes its password hash and role
func (r *adminUserRepository) Upsert(ctx context.Context, adminUser *models.AdminUser) error {
	update := bson.M{
		"$set": bson.M{
			"passwordHash": adminUser.PasswordHash,
			"role":         adminUser.Role,
			"updatedAt":    adminUser.UpdatedAt,
		},
		"$setOnInsert": bson.M{
			"_id":       adminUser.ID,
			"createdAt": adminUser.CreatedAt,
		},
	}
	_, err := r.collection.UpdateOne(ctx, bson.M{"email": adminUser.Email}, update, options.Update().SetUpsert(true))
	return err
}

// FindByEmail finds an admin user by their email address
func (r *adminUserRepository) FindByEmail(ctx context.Context, email string) (*models.AdminUser, error) {
	var adminUser models.AdminUser
	if err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&adminUser); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repositories.ErrNotFound
		}
		return nil, err
	}
	return &adminUser, nil
}
