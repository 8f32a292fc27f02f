package wire

import (
	"resource-booking/internal/adaptor"
	"resource-booking/internal/data/entity"
	"resource-booking/pkg/middleware"
	"resource-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireResource(
	r chi.Router,
	resourceHandler *adaptor.ResourceHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Route("/api/resources", func(r chi.Router) {
		r.Use(middleware.Authenticate(config.JWT.Secret, log))

		// Any authenticated user can browse the catalog
		r.Get("/", resourceHandler.ListResources)
		r.Get("/{id}", resourceHandler.GetResource)

		// Catalog management is admin only
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireRole(log, string(entity.RoleAdmin)))

			r.Post("/", resourceHandler.CreateResource)
			r.Delete("/{id}", resourceHandler.DeleteResource)
		})
	})
}
