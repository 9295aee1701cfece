package services

import (
	"github.com/collectly/backoffice_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

func decimalSumCollections(collections []domain.DailyCollection) decimal.Decimal {
	sum := decimal.Zero
	for _, c := range collections {
		sum = sum.Add(c.Amount)
	}
	return sum
}

func decimalSumExpenses(expenses []domain.Expense) decimal.Decimal {
	sum := decimal.Zero
	for _, e := range expenses {
		sum = sum.Add(e.Amount)
	}
	return sum
}

func decimalSumSales(sales []domain.ProductSale) decimal.Decimal {
	sum := decimal.Zero
	for _, s := range sales {
		sum = sum.Add(s.Amount)
	}
	return sum
}
