package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/collectly/backoffice_backend/internal/apperrors"
	"github.com/collectly/backoffice_backend/internal/core/domain"
	portsrepo "github.com/collectly/backoffice_backend/internal/core/ports/repositories"
	portssvc "github.com/collectly/backoffice_backend/internal/core/ports/services"
	"github.com/collectly/backoffice_backend/internal/dto"
)

// expenseService manages categorized expense records tied to monthly records.
type expenseService struct {
	BaseService
	expenseRepo portsrepo.ExpenseRepositoryFacade
	recordSvc   portssvc.MonthlyRecordSvcFacade
}

// NewExpenseService creates a new ExpenseService.
func NewExpenseService(expenseRepo portsrepo.ExpenseRepositoryFacade, recordSvc portssvc.MonthlyRecordSvcFacade) portssvc.ExpenseSvcFacade {
	return &expenseService{expenseRepo: expenseRepo, recordSvc: recordSvc}
}

var _ portssvc.ExpenseSvcFacade = (*expenseService)(nil)

// FetchMonth lists all expenses of (year, month) joined with their
// category names, newest first.
func (s *expenseService) FetchMonth(ctx context.Context, year, month int) ([]domain.Expense, error) {
	from, to, err := monthBounds(year, month)
	if err != nil {
		return nil, err
	}

	expenses, err := s.expenseRepo.FindExpensesInRange(ctx, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch expenses", slog.Int("year", year), slog.Int("month", month))
		return nil, fmt.Errorf("failed to fetch expenses for %d-%02d: %w", year, month, err)
	}
	if expenses == nil {
		expenses = []domain.Expense{}
	}
	return expenses, nil
}

// ListCategories lists active expense categories ordered by name.
func (s *expenseService) ListCategories(ctx context.Context) ([]domain.ExpenseCategory, error) {
	categories, err := s.expenseRepo.FindActiveCategories(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch expense categories")
		return nil, fmt.Errorf("failed to fetch expense categories: %w", err)
	}
	if categories == nil {
		categories = []domain.ExpenseCategory{}
	}
	return categories, nil
}

// CreateExpense resolves the owning monthly record from the expense date,
// inserts the row and returns it joined with its category name.
func (s *expenseService) CreateExpense(ctx context.Context, req dto.CreateExpenseRequest, creatorStaffID string) (*domain.Expense, error) {
	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: expense amount must be positive", apperrors.ErrValidation)
	}

	record, err := s.recordSvc.GetOrCreate(ctx, date.Year(), int(date.Month()))
	if err != nil {
		return nil, err
	}

	now := time.Now()
	expense := domain.Expense{
		ExpenseID:       uuid.NewString(),
		MonthlyRecordID: record.RecordID,
		CategoryID:      req.CategoryID,
		Date:            date,
		Description:     req.Description,
		Amount:          req.Amount,
		CreatedBy:       creatorStaffID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.expenseRepo.SaveExpense(ctx, expense); err != nil {
		s.LogError(ctx, err, "Failed to create expense", slog.String("record_id", record.RecordID))
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	created, err := s.expenseRepo.FindExpenseByID(ctx, expense.ExpenseID)
	if err != nil {
		s.LogError(ctx, err, "Failed to read back created expense", slog.String("expense_id", expense.ExpenseID))
		return nil, fmt.Errorf("failed to read back created expense: %w", err)
	}

	s.LogInfo(ctx, "Created expense", slog.String("expense_id", expense.ExpenseID), slog.String("record_id", record.RecordID))
	return created, nil
}

// UpdateExpense applies a partial update and returns the merged row.
func (s *expenseService) UpdateExpense(ctx context.Context, expenseID string, req dto.UpdateExpenseRequest) (*domain.Expense, error) {
	if req.Date != nil {
		if _, err := parseDate(*req.Date); err != nil {
			return nil, err
		}
	}
	if req.Amount != nil && !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: expense amount must be positive", apperrors.ErrValidation)
	}

	if err := s.expenseRepo.UpdateExpense(ctx, expenseID, req, time.Now()); err != nil {
		s.LogError(ctx, err, "Failed to update expense", slog.String("expense_id", expenseID))
		return nil, fmt.Errorf("failed to update expense %s: %w", expenseID, err)
	}

	updated, err := s.expenseRepo.FindExpenseByID(ctx, expenseID)
	if err != nil {
		s.LogError(ctx, err, "Failed to read back updated expense", slog.String("expense_id", expenseID))
		return nil, fmt.Errorf("failed to read back updated expense: %w", err)
	}
	return updated, nil
}

// DeleteExpense removes an expense by id.
func (s *expenseService) DeleteExpense(ctx context.Context, expenseID string) error {
	if err := s.expenseRepo.DeleteExpense(ctx, expenseID); err != nil {
		s.LogError(ctx, err, "Failed to delete expense", slog.String("expense_id", expenseID))
		return fmt.Errorf("failed to delete expense %s: %w", expenseID, err)
	}
	return nil
}

// parseDate parses a YYYY-MM-DD string into a UTC date.
func parseDate(value string) (time.Time, error) {
	date, err := time.ParseInLocation(time.DateOnly, value, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date %q", apperrors.ErrValidation, value)
	}
	return date, nil
}
