package models

import "time"

// Announcement is an admin-posted notice shown to residents, newest first.
type Announcement struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
