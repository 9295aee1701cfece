package domain

import "github.com/shopspring/decimal"

// CategoryTotal is one group in the per-category expense breakdown.
type CategoryTotal struct {
	CategoryID string          `json:"categoryID"`
	Name       string          `json:"name"`
	Total      decimal.Decimal `json:"total"`
}

// MonthlySummary is a derived read-side projection over one month's
// collections, expenses, salaries and product sales. It is never persisted.
type MonthlySummary struct {
	Year               int             `json:"year"`
	Month              int             `json:"month"`
	TotalCollection    decimal.Decimal `json:"totalCollection"`
	TotalExpenses      decimal.Decimal `json:"totalExpenses"`
	TotalSalary        decimal.Decimal `json:"totalSalary"`
	ProductSalesTotal  decimal.Decimal `json:"productSalesTotal"`
	ExpensesByCategory []CategoryTotal `json:"expensesByCategory"`
	FinalBalance       decimal.Decimal `json:"finalBalance"`
}

// MonthViewState tracks the lifecycle of a month-view refresh.
type MonthViewState string

const (
	ViewIdle    MonthViewState = "idle"
	ViewLoading MonthViewState = "loading"
	ViewReady   MonthViewState = "ready"
	ViewErrored MonthViewState = "errored"
)
