package usecase

import (
	"resource-booking/internal/data/repository"
	"resource-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth     AuthService
	Resource ResourceService
	Booking  BookingService
	User     UserService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:     NewAuthService(repo, config, log),
		Resource: NewResourceService(repo, log),
		Booking:  NewBookingService(repo, log),
		User:     NewUserService(repo.User, log),
	}
}
