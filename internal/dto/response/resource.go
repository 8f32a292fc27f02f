package response

import (
	"resource-booking/internal/data/entity"
)

type ResourceResponse struct {
	ID                string              `json:"id"`
	Name              string              `json:"name"`
	Type              entity.ResourceType `json:"type"`
	Capacity          int                 `json:"capacity"`
	Location          string              `json:"location"`
	Description       string              `json:"description"`
	AvailabilityHours string              `json:"availabilityHours"`
	IconName          string              `json:"iconName"`
}

func ResourceToResponse(resource *entity.Resource) ResourceResponse {
	return ResourceResponse{
		ID:                resource.ID.String(),
		Name:              resource.Name,
		Type:              resource.Type,
		Capacity:          resource.Capacity,
		Location:          resource.Location,
		Description:       resource.Description,
		AvailabilityHours: resource.AvailabilityHours,
		IconName:          resource.IconName,
	}
}

func ResourcesToResponse(resources []*entity.Resource) []ResourceResponse {
	out := make([]ResourceResponse, 0, len(resources))
	for _, resource := range resources {
		out = append(out, ResourceToResponse(resource))
	}
	return out
}
