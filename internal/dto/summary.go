package dto

import (
	"github.com/collectly/backoffice_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CategoryTotalResponse is one group of the expense breakdown.
type CategoryTotalResponse struct {
	CategoryID string          `json:"categoryID"`
	Name       string          `json:"name"`
	Total      decimal.Decimal `json:"total"`
}

// MonthlySummaryResponse is the derived financial summary for one month,
// plus the view state the presentation layer renders loading/error from.
type MonthlySummaryResponse struct {
	Year               int                     `json:"year"`
	Month              int                     `json:"month"`
	TotalCollection    decimal.Decimal         `json:"totalCollection"`
	TotalExpenses      decimal.Decimal         `json:"totalExpenses"`
	TotalSalary        decimal.Decimal         `json:"totalSalary"`
	ProductSalesTotal  decimal.Decimal         `json:"productSalesTotal"`
	ExpensesByCategory []CategoryTotalResponse `json:"expensesByCategory"`
	FinalBalance       decimal.Decimal         `json:"finalBalance"`
	State              string                  `json:"state"`
	Error              string                  `json:"error,omitempty"`
}

// ToMonthlySummaryResponse converts a domain.MonthlySummary plus view state.
func ToMonthlySummaryResponse(s domain.MonthlySummary, state domain.MonthViewState, viewErr error) MonthlySummaryResponse {
	groups := make([]CategoryTotalResponse, len(s.ExpensesByCategory))
	for i, g := range s.ExpensesByCategory {
		groups[i] = CategoryTotalResponse{CategoryID: g.CategoryID, Name: g.Name, Total: g.Total}
	}
	resp := MonthlySummaryResponse{
		Year:               s.Year,
		Month:              s.Month,
		TotalCollection:    s.TotalCollection,
		TotalExpenses:      s.TotalExpenses,
		TotalSalary:        s.TotalSalary,
		ProductSalesTotal:  s.ProductSalesTotal,
		ExpensesByCategory: groups,
		FinalBalance:       s.FinalBalance,
		State:              string(state),
	}
	if viewErr != nil {
		resp.Error = viewErr.Error()
	}
	return resp
}
