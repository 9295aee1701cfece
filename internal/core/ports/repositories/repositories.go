package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	MonthlyRecordRepo MonthlyRecordRepositoryFacade
	CollectionRepo    CollectionRepositoryFacade
	SalaryRepo        SalaryRepositoryFacade
	ExpenseRepo       ExpenseRepositoryFacade
	ProductSaleRepo   ProductSaleRepositoryFacade
	StaffRepo         StaffRepositoryFacade
	UserRepo          UserRepositoryFacade
}
