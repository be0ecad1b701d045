package services

import (
	"context"

	"cycleroute/internal/models"
	"cycleroute/internal/repositories/interfaces"
)

type UserService interface {
	GetProfile(ctx context.Context, userID string) (*models.User, error)
}

type userService struct {
	userRepo interfaces.UserRepository
}

func NewUserService(userRepo interfaces.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) GetProfile(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if err == interfaces.ErrNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return user, nil
}
