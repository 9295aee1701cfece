package services

import (
	portsrepo "github.com/collectly/backoffice_backend/internal/core/ports/repositories"
	portssvc "github.com/collectly/backoffice_backend/internal/core/ports/services"
	"github.com/collectly/backoffice_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// The monthly record resolver comes first since every financial
	// service depends on it.
	container.MonthlyRecord = NewMonthlyRecordService(repos.MonthlyRecordRepo)

	container.Salary = NewSalaryService(repos.SalaryRepo, container.MonthlyRecord)
	container.Collection = NewCollectionService(repos.CollectionRepo, repos.StaffRepo, container.MonthlyRecord, container.Salary)
	container.Expense = NewExpenseService(repos.ExpenseRepo, container.MonthlyRecord)
	container.ProductSale = NewProductSaleService(repos.ProductSaleRepo, container.MonthlyRecord)
	container.Staff = NewStaffService(repos.StaffRepo)
	container.Summary = NewSummaryService(container.Collection, container.Expense, container.ProductSale, container.Salary)
	container.User = NewUserService(repos.UserRepo)

	return container
}

// Compile-time interface implementation checks.
var (
	_ portssvc.MonthlyRecordSvcFacade = (*monthlyRecordService)(nil)
	_ portssvc.CollectionSvcFacade    = (*collectionService)(nil)
	_ portssvc.SalarySvcFacade        = (*salaryService)(nil)
	_ portssvc.SummarySvcFacade       = (*summaryService)(nil)
)
