package dto

import (
	"time"

	"github.com/collectly/backoffice_backend/internal/core/domain"
)

// UpdateStaffRequest defines the fields allowed for a partial staff update.
// Pointers differentiate omitted fields from zero values.
type UpdateStaffRequest struct {
	Name        *string `json:"name"`
	Email       *string `json:"email"`
	Phone       *string `json:"phone"`
	Role        *string `json:"role"`
	IsActive    *bool   `json:"isActive"`
	IsTrackable *bool   `json:"isTrackable"`
}

// StaffResponse is the API shape of a staff member.
type StaffResponse struct {
	StaffID     string  `json:"staffID"`
	UserID      *string `json:"userID,omitempty"`
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Phone       *string `json:"phone,omitempty"`
	HireDate    string  `json:"hireDate"`
	Role        string  `json:"role"`
	IsActive    bool    `json:"isActive"`
	IsTrackable bool    `json:"isTrackable"`
}

// ListStaffResponse wraps the staff roster.
type ListStaffResponse struct {
	Staff []StaffResponse `json:"staff"`
}

// ToStaffResponse converts a domain.Staff to its API shape.
func ToStaffResponse(s domain.Staff) StaffResponse {
	return StaffResponse{
		StaffID:     s.StaffID,
		UserID:      s.UserID,
		Name:        s.Name,
		Email:       s.Email,
		Phone:       s.Phone,
		HireDate:    s.HireDate.Format(time.DateOnly),
		Role:        string(s.Role),
		IsActive:    s.IsActive,
		IsTrackable: s.IsTrackable,
	}
}

// ToListStaffResponse converts a slice of staff members.
func ToListStaffResponse(ss []domain.Staff) ListStaffResponse {
	out := make([]StaffResponse, len(ss))
	for i, s := range ss {
		out[i] = ToStaffResponse(s)
	}
	return ListStaffResponse{Staff: out}
}
