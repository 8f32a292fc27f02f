package usecase

import (
	"context"
	"fmt"
	"time"

	"resource-booking/internal/data/entity"
	"resource-booking/internal/data/repository"
	"resource-booking/internal/dto/request"
	"resource-booking/internal/dto/response"
	"resource-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ResourceService interface {
	ListResources(ctx context.Context) ([]response.ResourceResponse, error)
	GetResourceByID(ctx context.Context, resourceID string) (*response.ResourceResponse, error)
	CreateResource(ctx context.Context, req *request.CreateResourceRequest) (*response.ResourceResponse, error)
	DeleteResource(ctx context.Context, resourceID string) error
}

type resourceService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewResourceService(repo *repository.Repository, log *zap.Logger) ResourceService {
	return &resourceService{
		repo: repo,
		log:  log.With(zap.String("service", "resource")),
	}
}

func (s *resourceService) ListResources(ctx context.Context) ([]response.ResourceResponse, error) {
	resources, err := s.repo.Resource.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list resources", zap.Error(err))
		return nil, fmt.Errorf("list resources: %w", err)
	}

	return response.ResourcesToResponse(resources), nil
}

func (s *resourceService) GetResourceByID(ctx context.Context, resourceID string) (*response.ResourceResponse, error) {
	id, err := uuid.Parse(resourceID)
	if err != nil {
		return nil, fmt.Errorf("invalid resource ID format %s", resourceID)
	}

	resource, err := s.repo.Resource.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find resource", zap.Error(err), zap.String("resource_id", resourceID))
		return nil, fmt.Errorf("find resource: %w", err)
	}
	if resource == nil {
		return nil, fmt.Errorf("resource %s not found", resourceID)
	}

	resp := response.ResourceToResponse(resource)
	return &resp, nil
}

func (s *resourceService) CreateResource(ctx context.Context, req *request.CreateResourceRequest) (*response.ResourceResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create resource validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	resource := &entity.Resource{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		Name:              req.Name,
		Type:              entity.ResourceType(req.Type),
		Capacity:          req.Capacity,
		Location:          req.Location,
		Description:       req.Description,
		AvailabilityHours: req.AvailabilityHours,
		IconName:          req.IconName,
	}

	if err := s.repo.Resource.Create(ctx, resource); err != nil {
		s.log.Error("Failed to create resource", zap.Error(err), zap.String("name", req.Name))
		return nil, fmt.Errorf("create resource: %w", err)
	}

	s.log.Info("Resource created",
		zap.String("resource_id", resource.ID.String()),
		zap.String("name", resource.Name),
		zap.String("type", string(resource.Type)))

	resp := response.ResourceToResponse(resource)
	return &resp, nil
}

func (s *resourceService) DeleteResource(ctx context.Context, resourceID string) error {
	id, err := uuid.Parse(resourceID)
	if err != nil {
		return fmt.Errorf("invalid resource ID format %s", resourceID)
	}

	// Deletion is unconditional: existing bookings for the resource are not
	// checked or touched, they keep their name snapshot.
	if err := s.repo.Resource.Delete(ctx, id); err != nil {
		s.log.Warn("Failed to delete resource", zap.Error(err), zap.String("resource_id", resourceID))
		return err
	}

	s.log.Info("Resource deleted", zap.String("resource_id", resourceID))
	return nil
}
