package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/collectly/backoffice_backend/internal/apperrors"
	"github.com/collectly/backoffice_backend/internal/core/domain"
	portsrepo "github.com/collectly/backoffice_backend/internal/core/ports/repositories"
	portssvc "github.com/collectly/backoffice_backend/internal/core/ports/services"
)

// monthlyRecordService resolves the anchor record for a calendar month
// with get-or-create semantics.
type monthlyRecordService struct {
	BaseService
	recordRepo portsrepo.MonthlyRecordRepositoryFacade
}

// NewMonthlyRecordService creates a new MonthlyRecordService.
func NewMonthlyRecordService(recordRepo portsrepo.MonthlyRecordRepositoryFacade) portssvc.MonthlyRecordSvcFacade {
	return &monthlyRecordService{recordRepo: recordRepo}
}

var _ portssvc.MonthlyRecordSvcFacade = (*monthlyRecordService)(nil)

// GetOrCreate looks up the monthly record for (year, month), creating a
// draft record when none exists. A missing record is an expected outcome;
// any other lookup or creation failure propagates to the caller. A create
// losing the race against a concurrent client hits the unique constraint
// on (year, month) and is resolved by re-fetching the winner's row.
func (s *monthlyRecordService) GetOrCreate(ctx context.Context, year, month int) (*domain.MonthlyRecord, error) {
	if _, _, err := monthBounds(year, month); err != nil {
		return nil, err
	}

	record, err := s.recordRepo.FindByYearMonth(ctx, year, month)
	if err == nil {
		return record, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to fetch monthly record", slog.Int("year", year), slog.Int("month", month))
		return nil, fmt.Errorf("failed to fetch monthly record for %d-%02d: %w", year, month, err)
	}

	now := time.Now()
	newRecord := domain.MonthlyRecord{
		RecordID:  uuid.NewString(),
		Year:      year,
		Month:     month,
		Status:    domain.RecordDraft,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = s.recordRepo.CreateMonthlyRecord(ctx, newRecord)
	if err == nil {
		s.LogInfo(ctx, "Created monthly record", slog.String("record_id", newRecord.RecordID), slog.Int("year", year), slog.Int("month", month))
		return &newRecord, nil
	}
	if errors.Is(err, apperrors.ErrDuplicate) {
		// Another client created the record between our lookup and create.
		existing, fetchErr := s.recordRepo.FindByYearMonth(ctx, year, month)
		if fetchErr != nil {
			s.LogError(ctx, fetchErr, "Failed to re-fetch monthly record after create conflict", slog.Int("year", year), slog.Int("month", month))
			return nil, fmt.Errorf("failed to re-fetch monthly record after create conflict: %w", fetchErr)
		}
		return existing, nil
	}

	s.LogError(ctx, err, "Failed to create monthly record", slog.Int("year", year), slog.Int("month", month))
	return nil, fmt.Errorf("failed to create monthly record for %d-%02d: %w", year, month, err)
}
