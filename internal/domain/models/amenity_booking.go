package models

import "time"

// Amenity booking statuses
const (
	BookingStatusPending  = "pending"
	BookingStatusApproved = "approved"
	BookingStatusRejected = "rejected"
)

// AmenityBooking represents a resident's request for a shared amenity. The
// admin decides a pending booking exactly once.
type AmenityBooking struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	ResidentID string    `gorm:"type:varchar(36);index;not null" json:"resident_id"`
	Amenity    string    `gorm:"type:varchar(50);not null" json:"amenity"`
	Date       time.Time `gorm:"type:date;not null" json:"date"`
	TimeSlot   string    `gorm:"type:varchar(20);not null" json:"time"`
	Status     string    `gorm:"type:varchar(20);not null;default:pending" json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
