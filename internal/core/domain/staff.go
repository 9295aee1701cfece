package domain

import "time"

// StaffRole represents the access level of a staff member.
type StaffRole string

const (
	RoleAdmin   StaffRole = "admin"
	RoleManager StaffRole = "manager"
	RoleStaff   StaffRole = "staff"
)

// Staff represents an employee. Only trackable staff participate in
// collection aggregation and salary computation.
type Staff struct {
	StaffID     string    `json:"staffID"`
	UserID      *string   `json:"userID,omitempty"` // linked login account, if any
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       *string   `json:"phone,omitempty"`
	HireDate    time.Time `json:"hireDate"`
	Role        StaffRole `json:"role"`
	IsActive    bool      `json:"isActive"`
	IsTrackable bool      `json:"isTrackable"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
