package usecase

import (
	"context"
	"testing"

	"resource-booking/internal/data/entity"
	"resource-booking/internal/data/repository"
	"resource-booking/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCreateAndGetResource(t *testing.T) {
	svc := NewResourceService(repository.NewMemoryRepository(), zap.NewNop())
	ctx := context.Background()

	created, err := svc.CreateResource(ctx, &request.CreateResourceRequest{
		Name:              "Seminar Hall 2",
		Type:              "CLASSROOM",
		Capacity:          60,
		Location:          "Floor 1, Block C",
		Description:       "Ideal for workshops",
		AvailabilityHours: "08:00 - 18:00",
		IconName:          "Video",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ResourceTypeClassroom, created.Type)

	found, err := svc.GetResourceByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Name, found.Name)

	list, err := svc.ListResources(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestCreateResourceValidation(t *testing.T) {
	svc := NewResourceService(repository.NewMemoryRepository(), zap.NewNop())

	_, err := svc.CreateResource(context.Background(), &request.CreateResourceRequest{
		Name:     "Broken",
		Type:     "GARAGE", // not a declared type
		Capacity: 5,
		Location: "Somewhere",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")

	_, err = svc.CreateResource(context.Background(), &request.CreateResourceRequest{
		Name:     "Broken",
		Type:     "LAB",
		Capacity: 0, // capacity must be positive
		Location: "Somewhere",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestGetResourceNotFound(t *testing.T) {
	svc := NewResourceService(repository.NewMemoryRepository(), zap.NewNop())

	_, err := svc.GetResourceByID(context.Background(), uuid.NewString())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestDeleteResourceNotFound(t *testing.T) {
	svc := NewResourceService(repository.NewMemoryRepository(), zap.NewNop())

	err := svc.DeleteResource(context.Background(), uuid.NewString())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
