package usecase

import (
	"context"
	"fmt"

	"resource-booking/internal/data/repository"
	"resource-booking/internal/dto/response"

	"go.uber.org/zap"
)

type UserService interface {
	ListUsers(ctx context.Context) ([]response.UserResponse, error)
}

type userService struct {
	users repository.UserRepository
	log   *zap.Logger
}

func NewUserService(users repository.UserRepository, log *zap.Logger) UserService {
	return &userService{
		users: users,
		log:   log.With(zap.String("service", "user")),
	}
}

func (s *userService) ListUsers(ctx context.Context) ([]response.UserResponse, error) {
	users, err := s.users.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list users", zap.Error(err))
		return nil, fmt.Errorf("list users: %w", err)
	}

	out := make([]response.UserResponse, 0, len(users))
	for _, user := range users {
		out = append(out, response.UserToResponse(user))
	}
	return out, nil
}
