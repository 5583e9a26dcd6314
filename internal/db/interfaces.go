package db

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"artileaf-backend-go/internal/models"
)

// ArtifactRepository defines the interface for artifact data storage
// operations. Write operations return the driver's acknowledgment structs
// because the API contract exposes those acknowledgments to clients verbatim.
type ArtifactRepository interface {
	// Search returns artifacts whose name contains nameQuery,
	// case-insensitively. An empty query returns every artifact.
	Search(ctx context.Context, nameQuery string) ([]*models.Artifact, error)
	// GetByID returns the artifact with the given hex id. It returns
	// ErrInvalidID for a malformed id and ErrNotFound when no document
	// matches.
	GetByID(ctx context.Context, id string) (*models.Artifact, error)
	// FindByLiker returns artifacts whose likedBy set contains email.
	FindByLiker(ctx context.Context, email string) ([]*models.Artifact, error)
	// FindByOwner returns artifacts whose adderEmail equals email.
	FindByOwner(ctx context.Context, email string) ([]*models.Artifact, error)
	Insert(ctx context.Context, artifact *models.Artifact) (*mongo.InsertOneResult, error)
	// Update applies a $set merge of fields under the given id, creating the
	// document when absent (upsert).
	Update(ctx context.Context, id string, fields map[string]interface{}) (*mongo.UpdateResult, error)
	Delete(ctx context.Context, id string) (*mongo.DeleteResult, error)
	// SetLiked adds email to (liked=true) or removes it from (liked=false)
	// the likedBy set of the given artifact, with upsert semantics.
	SetLiked(ctx context.Context, id string, email string, liked bool) (*mongo.UpdateResult, error)
}

// UserRepository defines the interface for user profile storage operations.
type UserRepository interface {
	Insert(ctx context.Context, user *models.User) (*mongo.InsertOneResult, error)
	List(ctx context.Context) ([]*models.User, error)
}
