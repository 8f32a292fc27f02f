package entity

type ResourceType string

const (
	ResourceTypeLab         ResourceType = "LAB"
	ResourceTypeClassroom   ResourceType = "CLASSROOM"
	ResourceTypeMeetingRoom ResourceType = "MEETING_ROOM"
	ResourceTypeEquipment   ResourceType = "EQUIPMENT"
)

type Resource struct {
	Base
	Name              string       `db:"name"`
	Type              ResourceType `db:"type"`
	Capacity          int          `db:"capacity"`
	Location          string       `db:"location"`
	Description       string       `db:"description"`
	AvailabilityHours string       `db:"availability_hours"`
	IconName          string       `db:"icon_name"`
}
