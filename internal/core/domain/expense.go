package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExpenseCategory is a labeled grouping for expenses. Only active
// categories are listed; retired categories may still be referenced by
// historical expenses.
type ExpenseCategory struct {
	CategoryID  string  `json:"categoryID"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	IsDefault   bool    `json:"isDefault"`
	IsActive    bool    `json:"isActive"`
}

// Expense is a cost entry tied to a monthly record.
type Expense struct {
	ExpenseID       string          `json:"expenseID"`
	MonthlyRecordID string          `json:"monthlyRecordID"`
	CategoryID      string          `json:"categoryID"`
	CategoryName    string          `json:"categoryName,omitempty"` // joined for read views
	Date            time.Time       `json:"date"`
	Description     *string         `json:"description,omitempty"`
	Amount          decimal.Decimal `json:"amount"`
	CreatedBy       string          `json:"createdBy"` // StaffID reference
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}
