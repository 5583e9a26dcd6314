package core

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"artileaf-backend-go/internal/db"
	"artileaf-backend-go/internal/models"
)

// userService implements the UserService interface.
type userService struct {
	userRepo db.UserRepository
}

// NewUserService creates a new UserService instance.
func NewUserService(userRepo db.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) Create(ctx context.Context, user *models.User) (*mongo.InsertOneResult, error) {
	return s.userRepo.Insert(ctx, user)
}

func (s *userService) List(ctx context.Context) ([]*models.User, error) {
	return s.userRepo.List(ctx)
}
