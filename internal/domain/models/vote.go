package models

import "time"

// Vote records that a flat participated in a poll. The composite unique index
// is the storage-level guarantee that a flat votes at most once per poll.
type Vote struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	FlatNo    string    `gorm:"type:varchar(20);uniqueIndex:idx_flat_poll;not null" json:"flat_no"`
	PollID    uint      `gorm:"uniqueIndex:idx_flat_poll;not null" json:"poll_id"`
	CreatedAt time.Time `json:"created_at"`
}
