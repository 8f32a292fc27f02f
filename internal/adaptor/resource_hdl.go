package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"resource-booking/internal/dto/request"
	"resource-booking/internal/usecase"
	"resource-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ResourceHandler struct {
	service usecase.ResourceService
	log     *zap.Logger
}

func NewResourceHandler(service usecase.ResourceService, log *zap.Logger) *ResourceHandler {
	return &ResourceHandler{
		service: service,
		log:     log.With(zap.String("handler", "resource")),
	}
}

// ListResources handles GET /api/resources
func (h *ResourceHandler) ListResources(w http.ResponseWriter, r *http.Request) {
	resources, err := h.service.ListResources(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "list resources")
		return
	}

	utils.ResponseSuccess(w, "success", resources)
}

// GetResource handles GET /api/resources/{id}
func (h *ResourceHandler) GetResource(w http.ResponseWriter, r *http.Request) {
	resourceID := chi.URLParam(r, "id")
	if resourceID == "" {
		utils.ResponseBadRequest(w, "Resource ID is required", nil)
		return
	}

	resource, err := h.service.GetResourceByID(r.Context(), resourceID)
	if err != nil {
		h.handleServiceError(w, err, "get resource")
		return
	}

	utils.ResponseSuccess(w, "success", resource)
}

// CreateResource handles POST /api/resources (admin only)
func (h *ResourceHandler) CreateResource(w http.ResponseWriter, r *http.Request) {
	var req request.CreateResourceRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	resource, err := h.service.CreateResource(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create resource")
		return
	}

	utils.ResponseCreated(w, "success", resource)
}

// DeleteResource handles DELETE /api/resources/{id} (admin only)
func (h *ResourceHandler) DeleteResource(w http.ResponseWriter, r *http.Request) {
	resourceID := chi.URLParam(r, "id")
	if resourceID == "" {
		utils.ResponseBadRequest(w, "Resource ID is required", nil)
		return
	}

	if err := h.service.DeleteResource(r.Context(), resourceID); err != nil {
		h.handleServiceError(w, err, "delete resource")
		return
	}

	utils.ResponseNoContent(w)
}

func (h *ResourceHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "validation failed"),
		strings.Contains(errMsg, "invalid"):
		h.log.Warn(operation+" rejected", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, nil)

	default:
		h.log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
