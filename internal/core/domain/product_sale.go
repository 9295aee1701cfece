package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductSale is a non-collection income entry tied to a monthly record.
type ProductSale struct {
	SaleID          string          `json:"saleID"`
	MonthlyRecordID string          `json:"monthlyRecordID"`
	Name            string          `json:"name"`
	Description     *string         `json:"description,omitempty"`
	Amount          decimal.Decimal `json:"amount"`
	Date            time.Time       `json:"date"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}
