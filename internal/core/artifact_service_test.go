package core

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"artileaf-backend-go/internal/db"
	"artileaf-backend-go/internal/models"
)

// fakeArtifactRepo is an in-memory ArtifactRepository used to exercise the
// service logic without a MongoDB server.
type fakeArtifactRepo struct {
	docs map[string]*models.Artifact
	// insertion order, so ties in the derived sort have a defined base order
	order []string
}

func newFakeArtifactRepo() *fakeArtifactRepo {
	return &fakeArtifactRepo{docs: make(map[string]*models.Artifact)}
}

func (f *fakeArtifactRepo) add(a *models.Artifact) string {
	if a.ID.IsZero() {
		a.ID = primitive.NewObjectID()
	}
	id := a.ID.Hex()
	f.docs[id] = a
	f.order = append(f.order, id)
	return id
}

func (f *fakeArtifactRepo) Search(ctx context.Context, nameQuery string) ([]*models.Artifact, error) {
	out := make([]*models.Artifact, 0, len(f.order))
	for _, id := range f.order {
		out = append(out, f.docs[id])
	}
	return out, nil
}

func (f *fakeArtifactRepo) GetByID(ctx context.Context, id string) (*models.Artifact, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, fmt.Errorf("artifact id '%s': %w", id, db.ErrInvalidID)
	}
	a, ok := f.docs[id]
	if !ok {
		return nil, fmt.Errorf("artifact with id '%s' not found: %w", id, db.ErrNotFound)
	}
	return a, nil
}

func (f *fakeArtifactRepo) FindByLiker(ctx context.Context, email string) ([]*models.Artifact, error) {
	out := make([]*models.Artifact, 0)
	for _, id := range f.order {
		if f.docs[id].HasLiked(email) {
			out = append(out, f.docs[id])
		}
	}
	return out, nil
}

func (f *fakeArtifactRepo) FindByOwner(ctx context.Context, email string) ([]*models.Artifact, error) {
	out := make([]*models.Artifact, 0)
	for _, id := range f.order {
		if f.docs[id].AdderEmail == email {
			out = append(out, f.docs[id])
		}
	}
	return out, nil
}

func (f *fakeArtifactRepo) Insert(ctx context.Context, artifact *models.Artifact) (*mongo.InsertOneResult, error) {
	f.add(artifact)
	return &mongo.InsertOneResult{InsertedID: artifact.ID}, nil
}

func (f *fakeArtifactRepo) Update(ctx context.Context, id string, fields map[string]interface{}) (*mongo.UpdateResult, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, fmt.Errorf("artifact id '%s': %w", id, db.ErrInvalidID)
	}
	if a, ok := f.docs[id]; ok {
		if name, ok := fields["name"].(string); ok {
			a.Name = name
		}
		return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
	}
	objectID, _ := primitive.ObjectIDFromHex(id)
	created := &models.Artifact{ID: objectID}
	if name, ok := fields["name"].(string); ok {
		created.Name = name
	}
	f.docs[id] = created
	f.order = append(f.order, id)
	return &mongo.UpdateResult{UpsertedCount: 1, UpsertedID: objectID}, nil
}

func (f *fakeArtifactRepo) Delete(ctx context.Context, id string) (*mongo.DeleteResult, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, fmt.Errorf("artifact id '%s': %w", id, db.ErrInvalidID)
	}
	if _, ok := f.docs[id]; !ok {
		return &mongo.DeleteResult{DeletedCount: 0}, nil
	}
	delete(f.docs, id)
	for i, v := range f.order {
		if v == id {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
	return &mongo.DeleteResult{DeletedCount: 1}, nil
}

func (f *fakeArtifactRepo) SetLiked(ctx context.Context, id string, email string, liked bool) (*mongo.UpdateResult, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("artifact id '%s': %w", id, db.ErrInvalidID)
	}
	a, ok := f.docs[id]
	if !ok {
		// upsert: create a stub holding only likedBy
		a = &models.Artifact{ID: objectID, LikedBy: []string{}}
		f.docs[id] = a
		f.order = append(f.order, id)
	}
	if liked {
		if !a.HasLiked(email) {
			a.LikedBy = append(a.LikedBy, email)
		}
	} else {
		out := a.LikedBy[:0]
		for _, e := range a.LikedBy {
			if e != email {
				out = append(out, e)
			}
		}
		a.LikedBy = out
	}
	return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func TestToggleLikePairRestoresMembership(t *testing.T) {
	repo := newFakeArtifactRepo()
	id := repo.add(&models.Artifact{Name: "Vase", AdderEmail: "a@x.com", LikedBy: []string{"c@x.com"}})
	service := NewArtifactService(repo)
	ctx := context.Background()

	liked, err := service.ToggleLike(ctx, id, "b@x.com")
	require.NoError(t, err)
	assert.True(t, liked)
	assert.Equal(t, []string{"c@x.com", "b@x.com"}, repo.docs[id].LikedBy)

	liked, err = service.ToggleLike(ctx, id, "b@x.com")
	require.NoError(t, err)
	assert.False(t, liked)
	assert.Equal(t, []string{"c@x.com"}, repo.docs[id].LikedBy)
}

func TestToggleLikeTreatsMissingLikedByAsEmpty(t *testing.T) {
	repo := newFakeArtifactRepo()
	// stored without a likedBy field, the way create leaves it
	id := repo.add(&models.Artifact{Name: "Amulet", AdderEmail: "a@x.com"})
	service := NewArtifactService(repo)

	liked, err := service.ToggleLike(context.Background(), id, "b@x.com")
	require.NoError(t, err)
	assert.True(t, liked)
	assert.Equal(t, []string{"b@x.com"}, repo.docs[id].LikedBy)
}

func TestToggleLikeUpsertsMissingArtifact(t *testing.T) {
	repo := newFakeArtifactRepo()
	service := NewArtifactService(repo)
	id := primitive.NewObjectID().Hex()

	liked, err := service.ToggleLike(context.Background(), id, "b@x.com")
	require.NoError(t, err)
	assert.True(t, liked)
	require.Contains(t, repo.docs, id)
	assert.Equal(t, []string{"b@x.com"}, repo.docs[id].LikedBy)
}

func TestToggleLikeInvalidID(t *testing.T) {
	repo := newFakeArtifactRepo()
	service := NewArtifactService(repo)

	_, err := service.ToggleLike(context.Background(), "not-a-hex-id", "b@x.com")
	require.Error(t, err)
	assert.ErrorIs(t, err, db.ErrInvalidID)
}

func TestTopLikedOrdering(t *testing.T) {
	repo := newFakeArtifactRepo()
	repo.add(&models.Artifact{Name: "none"})
	repo.add(&models.Artifact{Name: "two", LikedBy: []string{"a@x.com", "b@x.com"}})
	repo.add(&models.Artifact{Name: "one-first", LikedBy: []string{"a@x.com"}})
	repo.add(&models.Artifact{Name: "three", LikedBy: []string{"a@x.com", "b@x.com", "c@x.com"}})
	repo.add(&models.Artifact{Name: "one-second", LikedBy: []string{"b@x.com"}})
	service := NewArtifactService(repo)

	artifacts, err := service.TopLiked(context.Background())
	require.NoError(t, err)
	require.Len(t, artifacts, 5)

	for i := 0; i < len(artifacts)-1; i++ {
		assert.GreaterOrEqual(t, artifacts[i].LikeCount(), artifacts[i+1].LikeCount(),
			"adjacent artifacts must be ordered by like count descending")
	}
	// Stable sort keeps the store order among equal counts.
	assert.Equal(t, "one-first", artifacts[2].Name)
	assert.Equal(t, "one-second", artifacts[3].Name)
}
