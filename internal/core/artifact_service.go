package core

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"go.mongodb.org/mongo-driver/mongo"

	"artileaf-backend-go/internal/db"
	"artileaf-backend-go/internal/models"
)

// artifactService implements the ArtifactService interface.
type artifactService struct {
	artifactRepo db.ArtifactRepository
}

// NewArtifactService creates a new ArtifactService instance.
func NewArtifactService(artifactRepo db.ArtifactRepository) ArtifactService {
	return &artifactService{artifactRepo: artifactRepo}
}

func (s *artifactService) Search(ctx context.Context, nameQuery string) ([]*models.Artifact, error) {
	return s.artifactRepo.Search(ctx, nameQuery)
}

// TopLiked fetches every artifact and orders it by the derived like count.
// The sort is stable, so artifacts with equal counts keep the store's
// natural order.
func (s *artifactService) TopLiked(ctx context.Context) ([]*models.Artifact, error) {
	artifacts, err := s.artifactRepo.Search(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("failed to list artifacts for top-liked: %w", err)
	}
	sort.SliceStable(artifacts, func(i, j int) bool {
		return artifacts[i].LikeCount() > artifacts[j].LikeCount()
	})
	return artifacts, nil
}

func (s *artifactService) Get(ctx context.Context, id string) (*models.Artifact, error) {
	return s.artifactRepo.GetByID(ctx, id)
}

func (s *artifactService) LikedBy(ctx context.Context, email string) ([]*models.Artifact, error) {
	return s.artifactRepo.FindByLiker(ctx, email)
}

func (s *artifactService) OwnedBy(ctx context.Context, email string) ([]*models.Artifact, error) {
	return s.artifactRepo.FindByOwner(ctx, email)
}

func (s *artifactService) Create(ctx context.Context, artifact *models.Artifact) (*mongo.InsertOneResult, error) {
	return s.artifactRepo.Insert(ctx, artifact)
}

func (s *artifactService) Update(ctx context.Context, id string, fields map[string]interface{}) (*mongo.UpdateResult, error) {
	return s.artifactRepo.Update(ctx, id, fields)
}

func (s *artifactService) Delete(ctx context.Context, id string) (*mongo.DeleteResult, error) {
	return s.artifactRepo.Delete(ctx, id)
}

// ToggleLike reads the artifact, flips email's membership in its likedBy set
// and writes the new state. An artifact that does not exist (or was stored
// without a likedBy field) counts as an empty set, so the first toggle on it
// is a like. The read and the write are two separate operations: concurrent
// toggles on the same artifact can race, which the contract accepts.
func (s *artifactService) ToggleLike(ctx context.Context, id string, email string) (bool, error) {
	artifact, err := s.artifactRepo.GetByID(ctx, id)
	if err != nil && !errors.Is(err, db.ErrNotFound) {
		return false, fmt.Errorf("failed to load artifact for like toggle: %w", err)
	}

	alreadyLiked := artifact != nil && artifact.HasLiked(email)
	liked := !alreadyLiked

	if _, err := s.artifactRepo.SetLiked(ctx, id, email, liked); err != nil {
		return false, fmt.Errorf("failed to store like toggle: %w", err)
	}
	return liked, nil
}
