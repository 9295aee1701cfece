package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// ProductSale is the persistence shape of a product sale row.
type ProductSale struct {
	SaleID          string          `db:"id"`
	MonthlyRecordID string          `db:"monthly_record_id"`
	Name            string          `db:"name"`
	Description     sql.NullString  `db:"description"`
	Amount          decimal.Decimal `db:"amount"`
	Date            time.Time       `db:"date"`
	CreatedAt       time.Time       `db:"created_at"`
	UpdatedAt       time.Time       `db:"updated_at"`
}
