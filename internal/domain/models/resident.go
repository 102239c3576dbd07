package models

import "time"

// Resident represents a registered flat resident. ResidentID is the random
// login token handed out at registration; Approved stays false until an
// administrator flips it.
type Resident struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	ResidentID      string    `gorm:"type:varchar(36);uniqueIndex;not null" json:"resident_id"`
	Name            string    `gorm:"type:varchar(100);not null" json:"name"`
	FlatNo          string    `gorm:"type:varchar(20);index;not null" json:"flat_no"`
	Phone           string    `gorm:"type:varchar(20);not null" json:"phone"`
	Age             int       `json:"age"`
	NumberOfMembers int       `json:"number_of_members"`
	Gender          string    `gorm:"type:varchar(20)" json:"gender"`
	Designation     string    `gorm:"type:varchar(50)" json:"designation"`
	Approved        bool      `gorm:"not null;default:false" json:"approved"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
