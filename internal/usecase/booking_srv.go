package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"resource-booking/internal/data/entity"
	"resource-booking/internal/data/repository"
	"resource-booking/internal/dto/request"
	"resource-booking/internal/dto/response"
	"resource-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingService interface {
	// SubmitBooking creates a PENDING booking unless the slot is already
	// covered by an APPROVED booking for the same resource and date.
	SubmitBooking(ctx context.Context, requester utils.Identity, req *request.CreateBookingRequest) (*response.BookingResponse, error)

	// ListBookings returns all bookings for admins and only the caller's
	// own bookings otherwise.
	ListBookings(ctx context.Context, requester utils.Identity) ([]response.BookingResponse, error)

	// UpdateStatus overwrites a booking's status. Caller authorization is
	// enforced upstream by the admin route group.
	UpdateStatus(ctx context.Context, bookingID string, req *request.UpdateBookingStatusRequest) error
}

type bookingService struct {
	repo  *repository.Repository
	slots slotLocker
	log   *zap.Logger
}

func NewBookingService(repo *repository.Repository, log *zap.Logger) BookingService {
	return &bookingService{
		repo: repo,
		log:  log.With(zap.String("service", "booking")),
	}
}

// slotLocker hands out one mutex per (resource, date, slot) tuple so the
// conflict-check-then-write sequence is atomic per slot. Entries are never
// reaped; the tuple space stays small.
type slotLocker struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func (l *slotLocker) get(resourceID uuid.UUID, date, slot string) *sync.Mutex {
	key := strings.Join([]string{resourceID.String(), date, slot}, "|")

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.locks == nil {
		l.locks = make(map[string]*sync.Mutex)
	}
	m, ok := l.locks[key]
	if !ok {
		m = &sync.Mutex{}
		l.locks[key] = m
	}
	return m
}

func (s *bookingService) SubmitBooking(ctx context.Context, requester utils.Identity, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Submit booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	resourceID, err := uuid.Parse(req.ResourceID)
	if err != nil {
		return nil, fmt.Errorf("invalid resource ID format %s", req.ResourceID)
	}

	// The resource name on the booking is a snapshot taken here, from the
	// catalog record, not from client input.
	resource, err := s.repo.Resource.FindByID(ctx, resourceID)
	if err != nil {
		s.log.Error("Failed to look up resource", zap.Error(err), zap.String("resource_id", req.ResourceID))
		return nil, fmt.Errorf("find resource: %w", err)
	}
	if resource == nil {
		return nil, fmt.Errorf("resource %s not found", req.ResourceID)
	}

	lock := s.slots.get(resourceID, req.Date, req.Slot)
	lock.Lock()
	defer lock.Unlock()

	approved, err := s.repo.Booking.FindApprovedBySlot(ctx, resourceID, req.Date, req.Slot)
	if err != nil {
		s.log.Error("Failed to check slot conflict", zap.Error(err), zap.String("resource_id", req.ResourceID))
		return nil, fmt.Errorf("check slot conflict: %w", err)
	}
	if approved != nil {
		s.log.Info("Booking rejected, slot already approved",
			zap.String("resource_id", req.ResourceID),
			zap.String("date", req.Date),
			zap.String("slot", req.Slot),
			zap.String("approved_booking_id", approved.ID.String()))
		return nil, fmt.Errorf("time slot already approved for another user")
	}

	booking := &entity.Booking{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		UserID:       requester.ID,
		UserName:     requester.Name,
		ResourceID:   resourceID,
		ResourceName: resource.Name,
		Date:         req.Date,
		Slot:         req.Slot,
		Status:       entity.BookingStatusPending,
	}

	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		s.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("user_id", requester.ID.String()),
			zap.String("resource_id", req.ResourceID))
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.log.Info("Booking submitted",
		zap.String("booking_id", booking.ID.String()),
		zap.String("user_id", requester.ID.String()),
		zap.String("resource_id", req.ResourceID),
		zap.String("date", req.Date),
		zap.String("slot", req.Slot))

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) ListBookings(ctx context.Context, requester utils.Identity) ([]response.BookingResponse, error) {
	var (
		bookings []*entity.Booking
		err      error
	)

	if requester.Role == string(entity.RoleAdmin) {
		bookings, err = s.repo.Booking.FindAll(ctx)
	} else {
		bookings, err = s.repo.Booking.FindByUserID(ctx, requester.ID)
	}

	if err != nil {
		s.log.Error("Failed to list bookings",
			zap.Error(err),
			zap.String("user_id", requester.ID.String()))
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	return response.BookingsToResponse(bookings), nil
}

func (s *bookingService) UpdateStatus(ctx context.Context, bookingID string, req *request.UpdateBookingStatusRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update status validation failed", zap.Any("errors", errs))
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(bookingID)
	if err != nil {
		return fmt.Errorf("invalid booking ID format %s", bookingID)
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find booking", zap.Error(err), zap.String("booking_id", bookingID))
		return fmt.Errorf("find booking: %w", err)
	}
	if booking == nil {
		return fmt.Errorf("booking %s not found", bookingID)
	}

	status := entity.BookingStatus(req.Status)

	// Any status overwrite is allowed, including re-deciding a settled
	// booking. The one guard: approving must not produce a second APPROVED
	// booking for the tuple.
	if status == entity.BookingStatusApproved {
		lock := s.slots.get(booking.ResourceID, booking.Date, booking.Slot)
		lock.Lock()
		defer lock.Unlock()

		approved, err := s.repo.Booking.FindApprovedBySlot(ctx, booking.ResourceID, booking.Date, booking.Slot)
		if err != nil {
			s.log.Error("Failed to check slot conflict", zap.Error(err), zap.String("booking_id", bookingID))
			return fmt.Errorf("check slot conflict: %w", err)
		}
		if approved != nil && approved.ID != booking.ID {
			s.log.Warn("Approval rejected, slot already approved",
				zap.String("booking_id", bookingID),
				zap.String("approved_booking_id", approved.ID.String()))
			return fmt.Errorf("time slot already approved for another user")
		}
	}

	if err := s.repo.Booking.UpdateStatus(ctx, id, status); err != nil {
		s.log.Error("Failed to update booking status",
			zap.Error(err),
			zap.String("booking_id", bookingID),
			zap.String("status", req.Status))
		return err
	}

	s.log.Info("Booking status updated",
		zap.String("booking_id", bookingID),
		zap.String("from", string(booking.Status)),
		zap.String("to", req.Status))

	return nil
}
