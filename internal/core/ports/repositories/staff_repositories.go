package repositories

import (
	"context"
	"time"

	"github.com/collectly/backoffice_backend/internal/core/domain"
	"github.com/collectly/backoffice_backend/internal/dto"
)

// StaffReader defines read operations for staff.
type StaffReader interface {
	// FindAllStaff retrieves the full roster.
	FindAllStaff(ctx context.Context) ([]domain.Staff, error)

	// FindTrackableStaff retrieves active staff whose collections
	// participate in aggregation.
	FindTrackableStaff(ctx context.Context) ([]domain.Staff, error)

	// FindStaffByID retrieves a single staff member. Returns
	// apperrors.ErrNotFound when the id is unknown.
	FindStaffByID(ctx context.Context, staffID string) (*domain.Staff, error)
}

// StaffWriter defines write operations for staff.
type StaffWriter interface {
	// UpdateStaff applies a partial update and bumps updated_at.
	UpdateStaff(ctx context.Context, staffID string, updates dto.UpdateStaffRequest, updatedAt time.Time) error
}

// StaffRepositoryFacade combines all staff repository interfaces.
type StaffRepositoryFacade interface {
	StaffReader
	StaffWriter
}
