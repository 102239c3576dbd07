package models

import "time"

// Complaint statuses
const (
	ComplaintStatusPending    = "Pending"
	ComplaintStatusAssigned   = "Assigned"
	ComplaintStatusInProgress = "In Progress"
	ComplaintStatusResolved   = "Resolved"
)

// ValidComplaintStatus reports whether status is in the complaint status set.
func ValidComplaintStatus(status string) bool {
	switch status {
	case ComplaintStatusPending, ComplaintStatusAssigned, ComplaintStatusInProgress, ComplaintStatusResolved:
		return true
	}
	return false
}

// Complaint represents a resident-raised issue. Date must equal the
// submission day; status advances Pending -> Assigned -> In Progress ->
// Resolved.
type Complaint struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	FlatNo      string    `gorm:"type:varchar(20);index;not null" json:"flat_no"`
	Category    string    `gorm:"type:varchar(50);not null" json:"category"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Date        time.Time `gorm:"type:date;not null" json:"date"`
	Status      string    `gorm:"type:varchar(20);not null;default:Pending" json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
