package models

import "time"

// SkipDelivery represents a recurring-delivery opt-out for one flat, item and
// date. The skip date is strictly in the future at creation.
type SkipDelivery struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	FlatNo    string    `gorm:"type:varchar(20);index;not null" json:"flat_no"`
	Item      string    `gorm:"type:varchar(50);not null" json:"item"`
	SkipDate  time.Time `gorm:"type:date;index;not null" json:"skip_date"`
	CreatedAt time.Time `json:"created_at"`
}
