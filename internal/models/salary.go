package models

import (
	"database/sql"

	"github.com/shopspring/decimal"
)

// Salary is the persistence shape of a salary row. StaffName is populated
// only by joined read queries.
type Salary struct {
	SalaryID        string          `db:"id"`
	MonthlyRecordID string          `db:"monthly_record_id"`
	StaffID         string          `db:"staff_id"`
	StaffName       sql.NullString  `db:"staff_name"`
	FullAmount      decimal.Decimal `db:"full_amount"`
	HalfAmount      decimal.Decimal `db:"half_amount"`
}
