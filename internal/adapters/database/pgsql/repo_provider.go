package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/collectly/backoffice_backend/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every pgx repository onto a shared pool.
func NewRepositoryProvider(db *pgxpool.Pool) *portsrepo.RepositoryProvider {
	return &portsrepo.RepositoryProvider{
		MonthlyRecordRepo: NewMonthlyRecordRepository(db),
		CollectionRepo:    NewCollectionRepository(db),
		SalaryRepo:        NewSalaryRepository(db),
		ExpenseRepo:       NewExpenseRepository(db),
		ProductSaleRepo:   NewProductSaleRepository(db),
		StaffRepo:         NewStaffRepository(db),
		UserRepo:          NewUserRepository(db),
	}
}
