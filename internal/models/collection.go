package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailyCollection is the persistence shape of a daily collection row.
type DailyCollection struct {
	CollectionID    string          `db:"id"`
	MonthlyRecordID string          `db:"monthly_record_id"`
	Date            time.Time       `db:"date"`
	StaffID         string          `db:"staff_id"`
	Amount          decimal.Decimal `db:"amount"`
	CreatedAt       time.Time       `db:"created_at"`
	UpdatedAt       time.Time       `db:"updated_at"`
}
