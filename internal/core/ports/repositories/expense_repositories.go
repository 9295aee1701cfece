package repositories

import (
	"context"
	"time"

	"github.com/collectly/backoffice_backend/internal/core/domain"
	"github.com/collectly/backoffice_backend/internal/dto"
)

// ExpenseReader defines read operations for expenses.
type ExpenseReader interface {
	// FindExpensesInRange retrieves all expenses whose date falls in
	// [from, to], joined with the category name, ordered by date descending.
	FindExpensesInRange(ctx context.Context, from, to time.Time) ([]domain.Expense, error)

	// FindExpenseByID retrieves a single expense joined with its category
	// name. Returns apperrors.ErrNotFound when the id is unknown.
	FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error)
}

// ExpenseWriter defines write operations for expenses.
type ExpenseWriter interface {
	// SaveExpense inserts a new expense row.
	SaveExpense(ctx context.Context, expense domain.Expense) error

	// UpdateExpense applies a partial update and bumps updated_at.
	UpdateExpense(ctx context.Context, expenseID string, updates dto.UpdateExpenseRequest, updatedAt time.Time) error

	// DeleteExpense removes the row with the given id.
	DeleteExpense(ctx context.Context, expenseID string) error
}

// CategoryReader defines read operations for expense categories.
type CategoryReader interface {
	// FindActiveCategories retrieves active categories ordered by name.
	FindActiveCategories(ctx context.Context) ([]domain.ExpenseCategory, error)
}

// ExpenseRepositoryFacade combines all expense repository interfaces.
type ExpenseRepositoryFacade interface {
	ExpenseReader
	ExpenseWriter
	CategoryReader
}
