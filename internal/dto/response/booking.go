package response

import (
	"time"

	"resource-booking/internal/data/entity"
)

type BookingResponse struct {
	ID           string               `json:"id"`
	UserID       string               `json:"userId"`
	UserName     string               `json:"userName"`
	ResourceID   string               `json:"resourceId"`
	ResourceName string               `json:"resourceName"`
	Date         string               `json:"date"`
	Slot         string               `json:"slot"`
	Status       entity.BookingStatus `json:"status"`
	CreatedAt    time.Time            `json:"createdAt"`
}

func BookingToResponse(booking *entity.Booking) BookingResponse {
	return BookingResponse{
		ID:           booking.ID.String(),
		UserID:       booking.UserID.String(),
		UserName:     booking.UserName,
		ResourceID:   booking.ResourceID.String(),
		ResourceName: booking.ResourceName,
		Date:         booking.Date,
		Slot:         booking.Slot,
		Status:       booking.Status,
		CreatedAt:    booking.CreatedAt,
	}
}

func BookingsToResponse(bookings []*entity.Booking) []BookingResponse {
	out := make([]BookingResponse, 0, len(bookings))
	for _, booking := range bookings {
		out = append(out, BookingToResponse(booking))
	}
	return out
}
