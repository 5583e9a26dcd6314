package core

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"artileaf-backend-go/internal/models"
)

// ArtifactService defines the application-level operations over artifacts.
type ArtifactService interface {
	// Search returns artifacts whose name contains nameQuery
	// case-insensitively, or all artifacts when the query is empty.
	Search(ctx context.Context, nameQuery string) ([]*models.Artifact, error)
	// TopLiked returns all artifacts ordered by derived like count,
	// descending. Ties keep their relative order.
	TopLiked(ctx context.Context) ([]*models.Artifact, error)
	Get(ctx context.Context, id string) (*models.Artifact, error)
	LikedBy(ctx context.Context, email string) ([]*models.Artifact, error)
	OwnedBy(ctx context.Context, email string) ([]*models.Artifact, error)
	Create(ctx context.Context, artifact *models.Artifact) (*mongo.InsertOneResult, error)
	Update(ctx context.Context, id string, fields map[string]interface{}) (*mongo.UpdateResult, error)
	Delete(ctx context.Context, id string) (*mongo.DeleteResult, error)
	// ToggleLike flips email's membership in the artifact's likedBy set and
	// returns the new membership state.
	ToggleLike(ctx context.Context, id string, email string) (bool, error)
}

// UserService defines the application-level operations over user profiles.
type UserService interface {
	Create(ctx context.Context, user *models.User) (*mongo.InsertOneResult, error)
	List(ctx context.Context) ([]*models.User, error)
}
