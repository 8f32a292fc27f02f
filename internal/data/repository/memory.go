package repository

import (
	"context"
	"fmt"
	"sync"

	"resource-booking/internal/data/entity"

	"github.com/google/uuid"
)

// memoryStore keeps all state in process memory. It is the default driver:
// the portal intentionally carries no durability, a restart loses everything.
// All three repositories share one store and one lock so each operation is
// atomic; slices preserve insertion order for listings. Returned records are
// copies, never the stored pointers.
type memoryStore struct {
	mu        sync.RWMutex
	users     []*entity.User
	resources []*entity.Resource
	bookings  []*entity.Booking
}

// NewMemoryRepository builds the in-memory repository set.
func NewMemoryRepository() *Repository {
	store := &memoryStore{}
	return &Repository{
		User:     &memoryUserRepo{store},
		Resource: &memoryResourceRepo{store},
		Booking:  &memoryBookingRepo{store},
	}
}

// Seed loads the initial admin account and resource catalog into an empty
// store. Called once on boot for the memory driver.
func Seed(ctx context.Context, repo *Repository, admin *entity.User, resources []*entity.Resource) error {
	if admin != nil {
		if err := repo.User.Create(ctx, admin); err != nil {
			return fmt.Errorf("seed admin user: %w", err)
		}
	}

	for _, resource := range resources {
		if err := repo.Resource.Create(ctx, resource); err != nil {
			return fmt.Errorf("seed resource %s: %w", resource.Name, err)
		}
	}

	return nil
}

// ---------- UserRepository ----------

type memoryUserRepo struct {
	s *memoryStore
}

func (r *memoryUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, u := range r.s.users {
		if u.Email == user.Email {
			return fmt.Errorf("user with email %s already exists", user.Email)
		}
	}

	u := *user
	r.s.users = append(r.s.users, &u)
	return nil
}

func (r *memoryUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, u := range r.s.users {
		if u.ID == id {
			user := *u
			return &user, nil
		}
	}
	return nil, nil
}

func (r *memoryUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, u := range r.s.users {
		if u.Email == email {
			user := *u
			return &user, nil
		}
	}
	return nil, nil
}

func (r *memoryUserRepo) FindAll(ctx context.Context) ([]*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	users := make([]*entity.User, 0, len(r.s.users))
	for _, u := range r.s.users {
		user := *u
		users = append(users, &user)
	}
	return users, nil
}

// ---------- ResourceRepository ----------

type memoryResourceRepo struct {
	s *memoryStore
}

func (r *memoryResourceRepo) Create(ctx context.Context, resource *entity.Resource) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	res := *resource
	r.s.resources = append(r.s.resources, &res)
	return nil
}

func (r *memoryResourceRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Resource, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, res := range r.s.resources {
		if res.ID == id {
			resource := *res
			return &resource, nil
		}
	}
	return nil, nil
}

func (r *memoryResourceRepo) FindAll(ctx context.Context) ([]*entity.Resource, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	resources := make([]*entity.Resource, 0, len(r.s.resources))
	for _, res := range r.s.resources {
		resource := *res
		resources = append(resources, &resource)
	}
	return resources, nil
}

func (r *memoryResourceRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	// Bookings referencing the resource are left untouched; they keep
	// their denormalized resource name snapshot.
	for i, res := range r.s.resources {
		if res.ID == id {
			r.s.resources = append(r.s.resources[:i], r.s.resources[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("resource %s not found", id.String())
}

// ---------- BookingRepository ----------

type memoryBookingRepo struct {
	s *memoryStore
}

func (r *memoryBookingRepo) Create(ctx context.Context, booking *entity.Booking) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	b := *booking
	r.s.bookings = append(r.s.bookings, &b)
	return nil
}

func (r *memoryBookingRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, b := range r.s.bookings {
		if b.ID == id {
			booking := *b
			return &booking, nil
		}
	}
	return nil, nil
}

func (r *memoryBookingRepo) FindAll(ctx context.Context) ([]*entity.Booking, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	bookings := make([]*entity.Booking, 0, len(r.s.bookings))
	for _, b := range r.s.bookings {
		booking := *b
		bookings = append(bookings, &booking)
	}
	return bookings, nil
}

func (r *memoryBookingRepo) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Booking, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var bookings []*entity.Booking
	for _, b := range r.s.bookings {
		if b.UserID == userID {
			booking := *b
			bookings = append(bookings, &booking)
		}
	}
	return bookings, nil
}

func (r *memoryBookingRepo) FindApprovedBySlot(ctx context.Context, resourceID uuid.UUID, date, slot string) (*entity.Booking, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, b := range r.s.bookings {
		if b.ResourceID == resourceID && b.Date == date && b.Slot == slot && b.Status == entity.BookingStatusApproved {
			booking := *b
			return &booking, nil
		}
	}
	return nil, nil
}

func (r *memoryBookingRepo) UpdateStatus(ctx context.Context, bookingID uuid.UUID, status entity.BookingStatus) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, b := range r.s.bookings {
		if b.ID == bookingID {
			b.Status = status
			return nil
		}
	}
	return fmt.Errorf("booking %s not found", bookingID.String())
}
