package entity

// TimeSlot is a fixed bookable time window. Bookings store the label itself,
// not the slot ID.
type TimeSlot struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// TimeSlots lists the bookable windows of a working day.
var TimeSlots = []TimeSlot{
	{ID: "1", Label: "09:00 AM - 10:30 AM"},
	{ID: "2", Label: "10:45 AM - 12:15 PM"},
	{ID: "3", Label: "12:30 PM - 02:00 PM"},
	{ID: "4", Label: "02:15 PM - 03:45 PM"},
	{ID: "5", Label: "04:00 PM - 05:30 PM"},
	{ID: "6", Label: "05:45 PM - 07:15 PM"},
}
