package wire

import (
	"resource-booking/internal/adaptor"
	"resource-booking/internal/data/entity"
	"resource-booking/pkg/middleware"
	"resource-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireUser(
	r chi.Router,
	userHandler *adaptor.UserHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Route("/api/users", func(r chi.Router) {
		r.Use(middleware.Authenticate(config.JWT.Secret, log))
		r.Use(middleware.RequireRole(log, string(entity.RoleAdmin)))

		// GET /api/users - account listing for the admin dashboard
		r.Get("/", userHandler.ListUsers)
	})
}
