package db

import (
	"context"
	"errors"
	"fmt"
	"log"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"artileaf-backend-go/internal/models"
)

const artifactsCollection = "artifacts"

// ErrNotFound is returned when a document does not exist.
var ErrNotFound = errors.New("document not found")

// ErrInvalidID is returned when an id is not a valid ObjectID hex string.
var ErrInvalidID = errors.New("invalid object id")

// mongoArtifactRepository implements ArtifactRepository using MongoDB.
type mongoArtifactRepository struct {
	collection *mongo.Collection
}

// NewMongoArtifactRepository creates a new artifact repository over the given
// database handle.
func NewMongoArtifactRepository(database *mongo.Database) ArtifactRepository {
	if database == nil {
		log.Fatal("Mongo database handle is not initialized for ArtifactRepository.")
	}
	return &mongoArtifactRepository{collection: database.Collection(artifactsCollection)}
}

// normalizeArtifact applies absent-field defaults at the decode boundary.
// A document stored without likedBy is treated as having an empty set, so no
// caller ever sees a nil set.
func normalizeArtifact(a *models.Artifact) *models.Artifact {
	if a.LikedBy == nil {
		a.LikedBy = []string{}
	}
	return a
}

func (r *mongoArtifactRepository) findAll(ctx context.Context, filter bson.M) ([]*models.Artifact, error) {
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to query artifacts: %w", err)
	}
	defer cursor.Close(ctx)

	artifacts := make([]*models.Artifact, 0)
	if err := cursor.All(ctx, &artifacts); err != nil {
		return nil, fmt.Errorf("failed to decode artifacts: %w", err)
	}
	for _, a := range artifacts {
		normalizeArtifact(a)
	}
	return artifacts, nil
}

// Search matches the artifact name against nameQuery as a case-insensitive
// substring. An empty query matches everything.
func (r *mongoArtifactRepository) Search(ctx context.Context, nameQuery string) ([]*models.Artifact, error) {
	filter := bson.M{}
	if nameQuery != "" {
		filter = bson.M{"name": bson.M{"$regex": nameQuery, "$options": "i"}}
	}
	return r.findAll(ctx, filter)
}

func (r *mongoArtifactRepository) GetByID(ctx context.Context, id string) (*models.Artifact, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("artifact id '%s': %w", id, ErrInvalidID)
	}

	var artifact models.Artifact
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&artifact)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("artifact with id '%s' not found: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get artifact with id '%s': %w", id, err)
	}
	return normalizeArtifact(&artifact), nil
}

func (r *mongoArtifactRepository) FindByLiker(ctx context.Context, email string) ([]*models.Artifact, error) {
	return r.findAll(ctx, bson.M{"likedBy": email})
}

func (r *mongoArtifactRepository) FindByOwner(ctx context.Context, email string) ([]*models.Artifact, error) {
	return r.findAll(ctx, bson.M{"adderEmail": email})
}

func (r *mongoArtifactRepository) Insert(ctx context.Context, artifact *models.Artifact) (*mongo.InsertOneResult, error) {
	result, err := r.collection.InsertOne(ctx, artifact)
	if err != nil {
		return nil, fmt.Errorf("failed to insert artifact: %w", err)
	}
	return result, nil
}

func (r *mongoArtifactRepository) Update(ctx context.Context, id string, fields map[string]interface{}) (*mongo.UpdateResult, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("artifact id '%s': %w", id, ErrInvalidID)
	}

	update := bson.M{"$set": fields}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": objectID}, update, options.Update().SetUpsert(true))
	if err != nil {
		return nil, fmt.Errorf("failed to update artifact with id '%s': %w", id, err)
	}
	return result, nil
}

func (r *mongoArtifactRepository) Delete(ctx context.Context, id string) (*mongo.DeleteResult, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("artifact id '%s': %w", id, ErrInvalidID)
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return nil, fmt.Errorf("failed to delete artifact with id '%s': %w", id, err)
	}
	return result, nil
}

// SetLiked mutates the likedBy set with $addToSet (like) or $pull (dislike).
// $addToSet keeps the set free of duplicate entries. Upsert is enabled, so
// toggling a nonexistent id creates a stub document holding only likedBy.
func (r *mongoArtifactRepository) SetLiked(ctx context.Context, id string, email string, liked bool) (*mongo.UpdateResult, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("artifact id '%s': %w", id, ErrInvalidID)
	}

	var update bson.M
	if liked {
		update = bson.M{"$addToSet": bson.M{"likedBy": email}}
	} else {
		update = bson.M{"$pull": bson.M{"likedBy": email}}
	}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": objectID}, update, options.Update().SetUpsert(true))
	if err != nil {
		return nil, fmt.Errorf("failed to set like state on artifact '%s': %w", id, err)
	}
	return result, nil
}
