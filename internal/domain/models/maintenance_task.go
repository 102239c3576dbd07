package models

import "time"

// Maintenance task statuses
const (
	TaskStatusPending    = "Pending"
	TaskStatusInProgress = "In Progress"
	TaskStatusCompleted  = "Completed"
)

// ValidTaskStatus reports whether status is in the task status set.
func ValidTaskStatus(status string) bool {
	switch status {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted:
		return true
	}
	return false
}

// MaintenanceTask represents work assigned to a staff member. Tasks sourced
// from a complaint carry SourceComplaintID; society-wide chores have IsCommon
// set and a TaskName instead of a flat number.
type MaintenanceTask struct {
	ID                uint       `gorm:"primaryKey" json:"id"`
	TaskName          string     `gorm:"type:varchar(100)" json:"task_name"`
	FlatNo            string     `gorm:"type:varchar(20);index" json:"flat_no"`
	Issue             string     `gorm:"type:text" json:"issue"`
	AssignedTo        string     `gorm:"type:varchar(50);index;not null" json:"assigned_to"`
	Status            string     `gorm:"type:varchar(20);not null;default:Pending" json:"status"`
	DueDate           *time.Time `gorm:"type:date" json:"due_date,omitempty"`
	SourceComplaintID *uint      `gorm:"index" json:"source_complaint_id,omitempty"`
	IsCommon          bool       `gorm:"not null;default:false" json:"is_common"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}
