package dto

import (
	"time"

	"github.com/collectly/backoffice_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateExpenseRequest defines the data required to record an expense.
// The owning monthly record is resolved from Date by the service.
type CreateExpenseRequest struct {
	CategoryID  string          `json:"categoryID" binding:"required"`
	Date        string          `json:"date" binding:"required"` // YYYY-MM-DD
	Description *string         `json:"description"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
}

// UpdateExpenseRequest defines the fields allowed for a partial update.
// Pointers differentiate omitted fields from zero values.
type UpdateExpenseRequest struct {
	CategoryID  *string          `json:"categoryID"`
	Date        *string          `json:"date"` // YYYY-MM-DD
	Description *string          `json:"description"`
	Amount      *decimal.Decimal `json:"amount"`
}

// ExpenseResponse is the API shape of an expense joined with its
// category name.
type ExpenseResponse struct {
	ExpenseID       string          `json:"expenseID"`
	MonthlyRecordID string          `json:"monthlyRecordID"`
	CategoryID      string          `json:"categoryID"`
	CategoryName    string          `json:"categoryName"`
	Date            string          `json:"date"`
	Description     *string         `json:"description,omitempty"`
	Amount          decimal.Decimal `json:"amount"`
	CreatedBy       string          `json:"createdBy"`
}

// ListExpensesResponse wraps the expenses of one month.
type ListExpensesResponse struct {
	Expenses []ExpenseResponse `json:"expenses"`
}

// CategoryResponse is the API shape of an expense category.
type CategoryResponse struct {
	CategoryID  string  `json:"categoryID"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	IsDefault   bool    `json:"isDefault"`
}

// ListCategoriesResponse wraps the active categories.
type ListCategoriesResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// ToExpenseResponse converts a domain.Expense to its API shape.
func ToExpenseResponse(e domain.Expense) ExpenseResponse {
	return ExpenseResponse{
		ExpenseID:       e.ExpenseID,
		MonthlyRecordID: e.MonthlyRecordID,
		CategoryID:      e.CategoryID,
		CategoryName:    e.CategoryName,
		Date:            e.Date.Format(time.DateOnly),
		Description:     e.Description,
		Amount:          e.Amount,
		CreatedBy:       e.CreatedBy,
	}
}

// ToListExpensesResponse converts a slice of expenses.
func ToListExpensesResponse(es []domain.Expense) ListExpensesResponse {
	out := make([]ExpenseResponse, len(es))
	for i, e := range es {
		out[i] = ToExpenseResponse(e)
	}
	return ListExpensesResponse{Expenses: out}
}

// ToCategoryResponse converts a domain.ExpenseCategory to its API shape.
func ToCategoryResponse(c domain.ExpenseCategory) CategoryResponse {
	return CategoryResponse{
		CategoryID:  c.CategoryID,
		Name:        c.Name,
		Description: c.Description,
		IsDefault:   c.IsDefault,
	}
}

// ToListCategoriesResponse converts a slice of categories.
func ToListCategoriesResponse(cs []domain.ExpenseCategory) ListCategoriesResponse {
	out := make([]CategoryResponse, len(cs))
	for i, c := range cs {
		out[i] = ToCategoryResponse(c)
	}
	return ListCategoriesResponse{Categories: out}
}
