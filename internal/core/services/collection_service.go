package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/collectly/backoffice_backend/internal/core/domain"
	portsrepo "github.com/collectly/backoffice_backend/internal/core/ports/repositories"
	portssvc "github.com/collectly/backoffice_backend/internal/core/ports/services"
	"github.com/collectly/backoffice_backend/internal/dto"
)

// collectionService aggregates per-staff daily cash collections.
type collectionService struct {
	BaseService
	collectionRepo portsrepo.CollectionRepositoryFacade
	staffRepo      portsrepo.StaffReader
	recordSvc      portssvc.MonthlyRecordSvcFacade
	salarySvc      portssvc.SalarySvcFacade
}

// NewCollectionService creates a new CollectionService.
func NewCollectionService(
	collectionRepo portsrepo.CollectionRepositoryFacade,
	staffRepo portsrepo.StaffReader,
	recordSvc portssvc.MonthlyRecordSvcFacade,
	salarySvc portssvc.SalarySvcFacade,
) portssvc.CollectionSvcFacade {
	return &collectionService{
		collectionRepo: collectionRepo,
		staffRepo:      staffRepo,
		recordSvc:      recordSvc,
		salarySvc:      salarySvc,
	}
}

var _ portssvc.CollectionSvcFacade = (*collectionService)(nil)

// FetchMonth returns every collection row of (year, month) for trackable
// staff. An empty month is an empty slice, never nil.
func (s *collectionService) FetchMonth(ctx context.Context, year, month int) ([]domain.DailyCollection, error) {
	from, to, err := monthBounds(year, month)
	if err != nil {
		return nil, err
	}

	collections, err := s.collectionRepo.FindCollectionsInRange(ctx, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch collections", slog.Int("year", year), slog.Int("month", month))
		return nil, fmt.Errorf("failed to fetch collections for %d-%02d: %w", year, month, err)
	}
	if collections == nil {
		collections = []domain.DailyCollection{}
	}
	return collections, nil
}

// SaveMonth commits a month's collection entries. Steps are strictly
// ordered: resolve the monthly record, filter out non-positive amounts,
// upsert the survivors keyed by (record, staff, date), re-fetch the month
// so state reflects the persisted truth, then recompute every trackable
// staff member's salary from the re-fetched set. A failure aborts the
// remaining steps; committed steps are not rolled back.
func (s *collectionService) SaveMonth(ctx context.Context, year, month int, entries []dto.CollectionEntry) ([]domain.DailyCollection, error) {
	record, err := s.recordSvc.GetOrCreate(ctx, year, month)
	if err != nil {
		return nil, err
	}

	rows, err := s.buildRows(record.RecordID, year, month, entries)
	if err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		s.LogInfo(ctx, "No positive collection entries to save, skipping upsert",
			slog.Int("year", year), slog.Int("month", month), slog.Int("submitted", len(entries)))
	} else {
		if err := s.collectionRepo.UpsertCollections(ctx, rows); err != nil {
			s.LogError(ctx, err, "Failed to upsert collections", slog.String("record_id", record.RecordID))
			return nil, fmt.Errorf("failed to upsert collections for %d-%02d: %w", year, month, err)
		}
		s.LogInfo(ctx, "Upserted collections", slog.String("record_id", record.RecordID), slog.Int("rows", len(rows)))
	}

	// Re-fetch rather than trusting the client-echoed rows, so defaults and
	// triggers applied by the store are reflected as well.
	collections, err := s.FetchMonth(ctx, year, month)
	if err != nil {
		return nil, err
	}

	staff, err := s.staffRepo.FindTrackableStaff(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list trackable staff for salary recompute", slog.String("record_id", record.RecordID))
		return nil, fmt.Errorf("failed to list trackable staff: %w", err)
	}

	if _, err := s.salarySvc.Recompute(ctx, record, staff, collections); err != nil {
		return nil, err
	}

	return collections, nil
}

// buildRows maps submitted entries to full collection rows, silently
// dropping entries whose amount is zero or negative.
func (s *collectionService) buildRows(recordID string, year, month int, entries []dto.CollectionEntry) ([]domain.DailyCollection, error) {
	now := time.Now()
	rows := make([]domain.DailyCollection, 0, len(entries))
	for _, e := range entries {
		if !e.Amount.IsPositive() {
			continue
		}
		date, err := dateForDay(year, month, e.Day)
		if err != nil {
			return nil, err
		}
		rows = append(rows, domain.DailyCollection{
			CollectionID:    uuid.NewString(),
			MonthlyRecordID: recordID,
			Date:            date,
			StaffID:         e.StaffID,
			Amount:          e.Amount,
			CreatedAt:       now,
			UpdatedAt:       now,
		})
	}
	return rows, nil
}
