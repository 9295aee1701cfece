package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailyCollection is one staff member's cash collection for one calendar
// date. Unique per (monthly_record, staff, date); saving the same triple
// again overwrites the amount.
type DailyCollection struct {
	CollectionID    string          `json:"collectionID"`
	MonthlyRecordID string          `json:"monthlyRecordID"`
	Date            time.Time       `json:"date"`
	StaffID         string          `json:"staffID"`
	Amount          decimal.Decimal `json:"amount"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}
