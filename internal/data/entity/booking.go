package entity

import (
	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "PENDING"
	BookingStatusApproved  BookingStatus = "APPROVED"
	BookingStatusRejected  BookingStatus = "REJECTED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
)

// Booking records a reservation request for one resource/date/slot tuple.
// UserName and ResourceName are snapshots taken at creation time and are
// never re-synced with later edits to the user or resource.
type Booking struct {
	Base
	UserID       uuid.UUID     `db:"user_id"`
	UserName     string        `db:"user_name"`
	ResourceID   uuid.UUID     `db:"resource_id"`
	ResourceName string        `db:"resource_name"`
	Date         string        `db:"date"`
	Slot         string        `db:"slot"`
	Status       BookingStatus `db:"status"`
}
