package domain

import "github.com/shopspring/decimal"

// Salary is the derived payable record for one staff member in one month.
// FullAmount is the sum of the staff's collections for the month and
// HalfAmount is the 50% payable share. Rows are recomputed and overwritten
// as a whole, never incrementally patched.
type Salary struct {
	SalaryID        string          `json:"salaryID"`
	MonthlyRecordID string          `json:"monthlyRecordID"`
	StaffID         string          `json:"staffID"`
	StaffName       string          `json:"staffName,omitempty"` // joined for read views
	FullAmount      decimal.Decimal `json:"fullAmount"`
	HalfAmount      decimal.Decimal `json:"halfAmount"`
}
