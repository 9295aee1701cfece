package repositories

import (
	"context"

	"github.com/collectly/backoffice_backend/internal/core/domain"
)

// SalaryReader defines read operations for salaries.
type SalaryReader interface {
	// FindSalariesByRecord retrieves the salaries of one monthly record,
	// joined with the staff name. Returns an empty slice when no rows match.
	FindSalariesByRecord(ctx context.Context, recordID string) ([]domain.Salary, error)
}

// SalaryWriter defines write operations for salaries.
type SalaryWriter interface {
	// UpsertSalaries inserts the given rows, overwriting any existing row
	// with the same (monthly_record_id, staff_id).
	UpsertSalaries(ctx context.Context, salaries []domain.Salary) error
}

// SalaryRepositoryFacade combines all salary repository interfaces.
type SalaryRepositoryFacade interface {
	SalaryReader
	SalaryWriter
}
