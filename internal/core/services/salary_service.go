package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/collectly/backoffice_backend/internal/core/domain"
	portsrepo "github.com/collectly/backoffice_backend/internal/core/ports/repositories"
	portssvc "github.com/collectly/backoffice_backend/internal/core/ports/services"
)

// payableShare is the fixed fraction of a staff member's monthly
// collection total that is paid out as salary.
var payableShare = decimal.NewFromFloat(0.5)

// salaryService derives per-staff salary shares from collection totals.
type salaryService struct {
	BaseService
	salaryRepo portsrepo.SalaryRepositoryFacade
	recordSvc  portssvc.MonthlyRecordSvcFacade
}

// NewSalaryService creates a new SalaryService.
func NewSalaryService(salaryRepo portsrepo.SalaryRepositoryFacade, recordSvc portssvc.MonthlyRecordSvcFacade) portssvc.SalarySvcFacade {
	return &salaryService{salaryRepo: salaryRepo, recordSvc: recordSvc}
}

var _ portssvc.SalarySvcFacade = (*salaryService)(nil)

// Recompute sums each staff member's collection amounts for the month and
// persists one salary row per staff member, zero totals included, so every
// trackable staff member has a row. Rows are replaced wholesale via upsert
// on (monthly_record_id, staff_id); correctness depends on the caller
// passing the complete current collection set for the month.
func (s *salaryService) Recompute(ctx context.Context, record *domain.MonthlyRecord, staff []domain.Staff, collections []domain.DailyCollection) ([]domain.Salary, error) {
	totals := make(map[string]decimal.Decimal, len(staff))
	for _, c := range collections {
		totals[c.StaffID] = totals[c.StaffID].Add(c.Amount)
	}

	salaries := make([]domain.Salary, 0, len(staff))
	for _, member := range staff {
		full := totals[member.StaffID] // zero value when no collections
		salaries = append(salaries, domain.Salary{
			SalaryID:        uuid.NewString(),
			MonthlyRecordID: record.RecordID,
			StaffID:         member.StaffID,
			StaffName:       member.Name,
			FullAmount:      full,
			HalfAmount:      full.Mul(payableShare),
		})
	}

	if len(salaries) == 0 {
		s.LogInfo(ctx, "No staff to recompute salaries for", slog.String("record_id", record.RecordID))
		return salaries, nil
	}

	if err := s.salaryRepo.UpsertSalaries(ctx, salaries); err != nil {
		s.LogError(ctx, err, "Failed to upsert salaries", slog.String("record_id", record.RecordID))
		return nil, fmt.Errorf("failed to upsert salaries for record %s: %w", record.RecordID, err)
	}

	s.LogInfo(ctx, "Recomputed salaries", slog.String("record_id", record.RecordID), slog.Int("staff_count", len(salaries)))
	return salaries, nil
}

// FetchMonth resolves the monthly record for (year, month) and lists its
// salaries joined with staff names.
func (s *salaryService) FetchMonth(ctx context.Context, year, month int) ([]domain.Salary, error) {
	record, err := s.recordSvc.GetOrCreate(ctx, year, month)
	if err != nil {
		return nil, err
	}

	salaries, err := s.salaryRepo.FindSalariesByRecord(ctx, record.RecordID)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch salaries", slog.String("record_id", record.RecordID))
		return nil, fmt.Errorf("failed to fetch salaries for record %s: %w", record.RecordID, err)
	}
	if salaries == nil {
		salaries = []domain.Salary{}
	}
	return salaries, nil
}
