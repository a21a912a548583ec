package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shashiranjanraj/plantnet/app/models"
	"github.com/shashiranjanraj/plantnet/internal/store"
	"github.com/shashiranjanraj/plantnet/pkg/metrics"
)

// UserRepository handles the users collection.
type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

// UpsertByEmail registers a user on first sight. When a record with the
// email already exists it is returned unchanged; the incoming profile is
// discarded even if it differs. Otherwise the profile is stored with the
// customer role and a creation timestamp.
func (r *UserRepository) UpsertByEmail(ctx context.Context, email string, profile models.User) (models.User, error) {
	defer metrics.ObserveMongoOp(store.Users, "upsert", time.Now())
	col := store.Collection(store.Users)

	var existing models.User
	err := col.FindOne(ctx, bson.M{"email": email}).Decode(&existing)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return models.User{}, fmt.Errorf("users: find by email: %w", err)
	}

	profile.ID = primitive.NilObjectID
	profile.Email = email
	profile.Role = models.RoleCustomer
	profile.Timestamp = time.Now().UnixMilli()

	res, err := col.InsertOne(ctx, profile)
	if err != nil {
		return models.User{}, fmt.Errorf("users: insert: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		profile.ID = oid
	}
	return profile, nil
}
