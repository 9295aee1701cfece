package dto

import (
	"github.com/collectly/backoffice_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SalaryResponse is the API shape of a salary row joined with the staff name.
type SalaryResponse struct {
	SalaryID        string          `json:"salaryID"`
	MonthlyRecordID string          `json:"monthlyRecordID"`
	StaffID         string          `json:"staffID"`
	StaffName       string          `json:"staffName"`
	FullAmount      decimal.Decimal `json:"fullAmount"`
	HalfAmount      decimal.Decimal `json:"halfAmount"`
}

// ListSalariesResponse wraps the salaries of one month.
type ListSalariesResponse struct {
	Salaries []SalaryResponse `json:"salaries"`
}

// ToSalaryResponse converts a domain.Salary to its API shape.
func ToSalaryResponse(s domain.Salary) SalaryResponse {
	return SalaryResponse{
		SalaryID:        s.SalaryID,
		MonthlyRecordID: s.MonthlyRecordID,
		StaffID:         s.StaffID,
		StaffName:       s.StaffName,
		FullAmount:      s.FullAmount,
		HalfAmount:      s.HalfAmount,
	}
}

// ToListSalariesResponse converts a slice of salaries.
func ToListSalariesResponse(ss []domain.Salary) ListSalariesResponse {
	out := make([]SalaryResponse, len(ss))
	for i, s := range ss {
		out[i] = ToSalaryResponse(s)
	}
	return ListSalariesResponse{Salaries: out}
}
