package request

type CreateResourceRequest struct {
	Name              string `json:"name" validate:"required,min=2,max=100"`
	Type              string `json:"type" validate:"required,oneof=LAB CLASSROOM MEETING_ROOM EQUIPMENT"`
	Capacity          int    `json:"capacity" validate:"required,gt=0"`
	Location          string `json:"location" validate:"required"`
	Description       string `json:"description"`
	AvailabilityHours string `json:"availabilityHours"`
	IconName          string `json:"iconName"`
}
