package repository

import (
	"context"
	"testing"
	"time"

	"resource-booking/internal/data/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBooking(userID, resourceID uuid.UUID, date, slot string, status entity.BookingStatus) *entity.Booking {
	return &entity.Booking{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		UserID:       userID,
		UserName:     "Test User",
		ResourceID:   resourceID,
		ResourceName: "Test Resource",
		Date:         date,
		Slot:         slot,
		Status:       status,
	}
}

func TestMemoryUserRepo(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	user := &entity.User{
		Base:         entity.Base{ID: uuid.New(), CreatedAt: time.Now()},
		Name:         "Test User",
		Email:        "test@itu.edu.pk",
		PasswordHash: "hash",
		Role:         entity.RoleUser,
		IsActive:     true,
	}
	require.NoError(t, repo.User.Create(ctx, user))

	// duplicate email rejected
	dup := *user
	dup.ID = uuid.New()
	assert.Error(t, repo.User.Create(ctx, &dup))

	found, err := repo.User.FindByEmail(ctx, "test@itu.edu.pk")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, user.ID, found.ID)

	missing, err := repo.User.FindByEmail(ctx, "nobody@itu.edu.pk")
	require.NoError(t, err)
	assert.Nil(t, missing)

	byID, err := repo.User.FindByID(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, byID)
	assert.Equal(t, user.Email, byID.Email)

	all, err := repo.User.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestMemoryResourceRepo(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	resource := &entity.Resource{
		Base:     entity.Base{ID: uuid.New(), CreatedAt: time.Now()},
		Name:     "AI Lab",
		Type:     entity.ResourceTypeLab,
		Capacity: 20,
		Location: "Floor 3",
	}
	require.NoError(t, repo.Resource.Create(ctx, resource))

	found, err := repo.Resource.FindByID(ctx, resource.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "AI Lab", found.Name)

	require.NoError(t, repo.Resource.Delete(ctx, resource.ID))

	gone, err := repo.Resource.FindByID(ctx, resource.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)

	// deleting twice surfaces not found
	assert.Error(t, repo.Resource.Delete(ctx, resource.ID))
}

func TestMemoryFindApprovedBySlot(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	resourceID := uuid.New()
	userID := uuid.New()

	pending := newBooking(userID, resourceID, "2024-05-01", "09:00 AM - 10:30 AM", entity.BookingStatusPending)
	require.NoError(t, repo.Booking.Create(ctx, pending))

	// PENDING does not count as a conflict
	approved, err := repo.Booking.FindApprovedBySlot(ctx, resourceID, "2024-05-01", "09:00 AM - 10:30 AM")
	require.NoError(t, err)
	assert.Nil(t, approved)

	require.NoError(t, repo.Booking.UpdateStatus(ctx, pending.ID, entity.BookingStatusApproved))

	approved, err = repo.Booking.FindApprovedBySlot(ctx, resourceID, "2024-05-01", "09:00 AM - 10:30 AM")
	require.NoError(t, err)
	require.NotNil(t, approved)
	assert.Equal(t, pending.ID, approved.ID)

	// other tuples stay clear
	other, err := repo.Booking.FindApprovedBySlot(ctx, resourceID, "2024-05-02", "09:00 AM - 10:30 AM")
	require.NoError(t, err)
	assert.Nil(t, other)
}

func TestMemoryUpdateStatusNotFound(t *testing.T) {
	repo := NewMemoryRepository()

	err := repo.Booking.UpdateStatus(context.Background(), uuid.New(), entity.BookingStatusApproved)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestMemoryBookingListing(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	userA := uuid.New()
	userB := uuid.New()
	resourceID := uuid.New()

	first := newBooking(userA, resourceID, "2024-05-01", "09:00 AM - 10:30 AM", entity.BookingStatusPending)
	second := newBooking(userB, resourceID, "2024-05-01", "10:45 AM - 12:15 PM", entity.BookingStatusPending)
	third := newBooking(userA, resourceID, "2024-05-02", "09:00 AM - 10:30 AM", entity.BookingStatusPending)

	for _, b := range []*entity.Booking{first, second, third} {
		require.NoError(t, repo.Booking.Create(ctx, b))
	}

	all, err := repo.Booking.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	// insertion order preserved
	assert.Equal(t, first.ID, all[0].ID)
	assert.Equal(t, third.ID, all[2].ID)

	mine, err := repo.Booking.FindByUserID(ctx, userA)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	for _, b := range mine {
		assert.Equal(t, userA, b.UserID)
	}
}

func TestMemoryReturnsCopies(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	booking := newBooking(uuid.New(), uuid.New(), "2024-05-01", "09:00 AM - 10:30 AM", entity.BookingStatusPending)
	require.NoError(t, repo.Booking.Create(ctx, booking))

	found, err := repo.Booking.FindByID(ctx, booking.ID)
	require.NoError(t, err)
	require.NotNil(t, found)

	// mutating the returned record must not touch the store
	found.Status = entity.BookingStatusApproved

	again, err := repo.Booking.FindByID(ctx, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusPending, again.Status)
}

func TestSeed(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	admin := &entity.User{
		Base:         entity.Base{ID: uuid.New(), CreatedAt: time.Now()},
		Name:         "Dept Head",
		Email:        "admin@itu.edu.pk",
		PasswordHash: "hash",
		Role:         entity.RoleAdmin,
		IsActive:     true,
	}

	require.NoError(t, Seed(ctx, repo, admin, entity.DefaultResources()))

	users, err := repo.User.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, entity.RoleAdmin, users[0].Role)

	resources, err := repo.Resource.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, resources, 15)
}
