package repository

import (
	"context"

	"resource-booking/internal/data/entity"
	"resource-booking/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Lookup methods return (nil, nil) when the record does not exist.

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindAll(ctx context.Context) ([]*entity.User, error)
}

type ResourceRepository interface {
	Create(ctx context.Context, resource *entity.Resource) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Resource, error)
	FindAll(ctx context.Context) ([]*entity.Resource, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	FindAll(ctx context.Context) ([]*entity.Booking, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Booking, error)

	// FindApprovedBySlot returns the APPROVED booking covering the
	// (resource, date, slot) tuple, if any.
	FindApprovedBySlot(ctx context.Context, resourceID uuid.UUID, date, slot string) (*entity.Booking, error)
	UpdateStatus(ctx context.Context, bookingID uuid.UUID, status entity.BookingStatus) error
}

type Repository struct {
	User     UserRepository
	Resource ResourceRepository
	Booking  BookingRepository
}

// NewPostgresRepository builds the pgx-backed repository set.
func NewPostgresRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:     NewUserRepository(db, log),
		Resource: NewResourceRepository(db, log),
		Booking:  NewBookingRepository(db, log),
	}
}
