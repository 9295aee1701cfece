package services

import (
	"context"

	"github.com/collectly/backoffice_backend/internal/core/domain"
	"github.com/collectly/backoffice_backend/internal/dto"
)

// MonthlyRecordSvcFacade resolves the anchor record for a calendar month.
type MonthlyRecordSvcFacade interface {
	// GetOrCreate looks up the record for (year, month) and lazily creates
	// a draft record on first use. Idempotent under sequential calls; a
	// concurrent create racing another client is resolved by re-fetching
	// after a unique-constraint conflict.
	GetOrCreate(ctx context.Context, year, month int) (*domain.MonthlyRecord, error)
}

// CollectionSvcFacade aggregates per-staff daily cash collections.
type CollectionSvcFacade interface {
	// FetchMonth returns all collections of (year, month) for trackable
	// staff. Never returns nil on success.
	FetchMonth(ctx context.Context, year, month int) ([]domain.DailyCollection, error)

	// SaveMonth resolves the monthly record, upserts the positive-amount
	// entries, re-fetches the month and recomputes every trackable staff
	// member's salary from the re-fetched state. Returns the re-fetched
	// collections.
	SaveMonth(ctx context.Context, year, month int, entries []dto.CollectionEntry) ([]domain.DailyCollection, error)
}

// SalarySvcFacade derives and lists per-staff salary shares.
type SalarySvcFacade interface {
	// Recompute produces one salary per staff member (zero sums included)
	// from the given collection set and persists them via upsert. The
	// caller must pass the complete current collection set for the month.
	Recompute(ctx context.Context, record *domain.MonthlyRecord, staff []domain.Staff, collections []domain.DailyCollection) ([]domain.Salary, error)

	// FetchMonth resolves the monthly record and lists its salaries joined
	// with staff names.
	FetchMonth(ctx context.Context, year, month int) ([]domain.Salary, error)
}

// ExpenseSvcFacade manages categorized expense records.
type ExpenseSvcFacade interface {
	FetchMonth(ctx context.Context, year, month int) ([]domain.Expense, error)
	ListCategories(ctx context.Context) ([]domain.ExpenseCategory, error)
	CreateExpense(ctx context.Context, req dto.CreateExpenseRequest, creatorStaffID string) (*domain.Expense, error)
	UpdateExpense(ctx context.Context, expenseID string, req dto.UpdateExpenseRequest) (*domain.Expense, error)
	DeleteExpense(ctx context.Context, expenseID string) error
}

// ProductSaleSvcFacade manages non-collection income entries.
type ProductSaleSvcFacade interface {
	FetchMonth(ctx context.Context, year, month int) ([]domain.ProductSale, error)
	AddSale(ctx context.Context, req dto.CreateProductSaleRequest) (*domain.ProductSale, error)
	UpdateSale(ctx context.Context, saleID string, req dto.UpdateProductSaleRequest) (*domain.ProductSale, error)
	DeleteSale(ctx context.Context, saleID string) error
}

// StaffSvcFacade manages the staff roster.
type StaffSvcFacade interface {
	ListStaff(ctx context.Context) ([]domain.Staff, error)
	ListTrackableStaff(ctx context.Context) ([]domain.Staff, error)
	GetStaffByID(ctx context.Context, staffID string) (*domain.Staff, error)
	UpdateStaff(ctx context.Context, staffID string, req dto.UpdateStaffRequest) (*domain.Staff, error)
}

// SummarySvcFacade composes the derived monthly financial summary.
type SummarySvcFacade interface {
	// Refresh re-triggers the month's sub-fetches in parallel and stores
	// the resulting snapshot. A failed refresh keeps the previous
	// snapshot's data and records the first error encountered.
	Refresh(ctx context.Context, year, month int) error

	// Compose derives the summary from the latest snapshot for
	// (year, month), refreshing first if no snapshot exists yet.
	Compose(ctx context.Context, year, month int) (dto.MonthlySummaryResponse, error)
}
