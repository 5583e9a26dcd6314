package db

import (
	"context"
	"fmt"
	"log"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"artileaf-backend-go/internal/models"
)

const usersCollection = "users"

// mongoUserRepository implements UserRepository using MongoDB.
type mongoUserRepository struct {
	collection *mongo.Collection
}

// NewMongoUserRepository creates a new user repository over the given
// database handle.
func NewMongoUserRepository(database *mongo.Database) UserRepository {
	if database == nil {
		log.Fatal("Mongo database handle is not initialized for UserRepository.")
	}
	return &mongoUserRepository{collection: database.Collection(usersCollection)}
}

// Insert stores the submitted profile as-is. No uniqueness is enforced on
// email; repeated sign-ups produce repeated documents, matching the observed
// contract.
func (r *mongoUserRepository) Insert(ctx context.Context, user *models.User) (*mongo.InsertOneResult, error) {
	result, err := r.collection.InsertOne(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("failed to insert user: %w", err)
	}
	return result, nil
}

func (r *mongoUserRepository) List(ctx context.Context) ([]*models.User, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer cursor.Close(ctx)

	users := make([]*models.User, 0)
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("failed to decode users: %w", err)
	}
	return users, nil
}
