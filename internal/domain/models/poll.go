package models

import "time"

// Poll statuses
const (
	PollStatusOpen   = "open"
	PollStatusClosed = "closed"
)

// Poll represents a society vote. Options live in poll_options rows so the
// tally bump is a bound-parameter counter update rather than a JSON rewrite.
type Poll struct {
	ID        uint         `gorm:"primaryKey" json:"id"`
	Question  string       `gorm:"type:text;not null" json:"question"`
	Status    string       `gorm:"type:varchar(20);not null;default:open" json:"status"`
	Options   []PollOption `gorm:"constraint:OnDelete:CASCADE" json:"options"`
	CreatedAt time.Time    `json:"created_at"`
}

// PollOption is one selectable answer with its vote counter. OptionIndex is
// 1-based and unique within a poll.
type PollOption struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	PollID      uint   `gorm:"uniqueIndex:idx_poll_option;not null" json:"poll_id"`
	OptionIndex int    `gorm:"uniqueIndex:idx_poll_option;not null" json:"option_index"`
	Label       string `gorm:"type:varchar(100);not null" json:"label"`
	Votes       int64  `gorm:"not null;default:0" json:"votes"`
}
