package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// ExpenseCategory is the persistence shape of an expense category row.
type ExpenseCategory struct {
	CategoryID  string         `db:"id"`
	Name        string         `db:"name"`
	Description sql.NullString `db:"description"`
	IsDefault   bool           `db:"is_default"`
	IsActive    bool           `db:"is_active"`
}

// Expense is the persistence shape of an expense row. CategoryName is
// populated only by joined read queries.
type Expense struct {
	ExpenseID       string          `db:"id"`
	MonthlyRecordID string          `db:"monthly_record_id"`
	CategoryID      string          `db:"category_id"`
	CategoryName    sql.NullString  `db:"category_name"`
	Date            time.Time       `db:"date"`
	Description     sql.NullString  `db:"description"`
	Amount          decimal.Decimal `db:"amount"`
	CreatedBy       string          `db:"created_by"`
	CreatedAt       time.Time       `db:"created_at"`
	UpdatedAt       time.Time       `db:"updated_at"`
}
