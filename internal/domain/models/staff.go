package models

import "time"

// Staff roles
const (
	RoleDelivery    = "delivery"
	RoleMaintenance = "maintenance"
	RoleSecurity    = "security"
)

// ValidStaffRole reports whether role is one of the recognized staff roles.
func ValidStaffRole(role string) bool {
	switch role {
	case RoleDelivery, RoleMaintenance, RoleSecurity:
		return true
	}
	return false
}

// Staff represents a society staff member. The role is fixed at registration
// and the account stays unapproved until an administrator approves it.
type Staff struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"username"`
	PasswordHash string    `gorm:"type:varchar(100);not null" json:"-"` // bcrypt hash, never exposed
	Role         string    `gorm:"type:varchar(20);not null" json:"role"`
	Approved     bool      `gorm:"not null;default:false" json:"approved"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
