package request

type CreateBookingRequest struct {
	ResourceID string `json:"resourceId" validate:"required,uuid4"`
	Date       string `json:"date" validate:"required,datetime=2006-01-02"`
	Slot       string `json:"slot" validate:"required"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=PENDING APPROVED REJECTED CANCELLED"`
}
