package wire

import (
	"resource-booking/internal/adaptor"
	"resource-booking/internal/data/entity"
	"resource-booking/pkg/middleware"
	"resource-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Route("/api/bookings", func(r chi.Router) {
		r.Use(middleware.Authenticate(config.JWT.Secret, log))

		// POST /api/bookings - submit a reservation request
		r.Post("/", bookingHandler.SubmitBooking)

		// GET /api/bookings - own bookings, or all for admins
		r.Get("/", bookingHandler.ListBookings)

		// PATCH /api/bookings/{id}/status - approve/reject (admin only)
		r.With(middleware.RequireRole(log, string(entity.RoleAdmin))).
			Patch("/{id}/status", bookingHandler.UpdateStatus)
	})

	// GET /api/slots - the fixed bookable time windows
	r.With(middleware.Authenticate(config.JWT.Secret, log)).
		Get("/api/slots", bookingHandler.ListTimeSlots)
}
