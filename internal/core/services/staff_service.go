package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/collectly/backoffice_backend/internal/core/domain"
	portsrepo "github.com/collectly/backoffice_backend/internal/core/ports/repositories"
	portssvc "github.com/collectly/backoffice_backend/internal/core/ports/services"
	"github.com/collectly/backoffice_backend/internal/dto"
)

// staffService manages the staff roster.
type staffService struct {
	BaseService
	staffRepo portsrepo.StaffRepositoryFacade
}

// NewStaffService creates a new StaffService.
func NewStaffService(staffRepo portsrepo.StaffRepositoryFacade) portssvc.StaffSvcFacade {
	return &staffService{staffRepo: staffRepo}
}

var _ portssvc.StaffSvcFacade = (*staffService)(nil)

func (s *staffService) ListStaff(ctx context.Context) ([]domain.Staff, error) {
	staff, err := s.staffRepo.FindAllStaff(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list staff")
		return nil, fmt.Errorf("failed to list staff: %w", err)
	}
	if staff == nil {
		staff = []domain.Staff{}
	}
	return staff, nil
}

func (s *staffService) ListTrackableStaff(ctx context.Context) ([]domain.Staff, error) {
	staff, err := s.staffRepo.FindTrackableStaff(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list trackable staff")
		return nil, fmt.Errorf("failed to list trackable staff: %w", err)
	}
	if staff == nil {
		staff = []domain.Staff{}
	}
	return staff, nil
}

func (s *staffService) GetStaffByID(ctx context.Context, staffID string) (*domain.Staff, error) {
	member, err := s.staffRepo.FindStaffByID(ctx, staffID)
	if err != nil {
		s.LogError(ctx, err, "Failed to get staff member", slog.String("staff_id", staffID))
		return nil, fmt.Errorf("failed to get staff member %s: %w", staffID, err)
	}
	return member, nil
}

func (s *staffService) UpdateStaff(ctx context.Context, staffID string, req dto.UpdateStaffRequest) (*domain.Staff, error) {
	if err := s.staffRepo.UpdateStaff(ctx, staffID, req, time.Now()); err != nil {
		s.LogError(ctx, err, "Failed to update staff member", slog.String("staff_id", staffID))
		return nil, fmt.Errorf("failed to update staff member %s: %w", staffID, err)
	}

	updated, err := s.staffRepo.FindStaffByID(ctx, staffID)
	if err != nil {
		s.LogError(ctx, err, "Failed to read back updated staff member", slog.String("staff_id", staffID))
		return nil, fmt.Errorf("failed to read back updated staff member: %w", err)
	}
	return updated, nil
}
