package repositories

import (
	"context"

	"github.com/collectly/backoffice_backend/internal/core/domain"
)

// MonthlyRecordReader defines read operations for monthly records.
type MonthlyRecordReader interface {
	// FindByYearMonth retrieves the record anchoring (year, month).
	// Returns apperrors.ErrNotFound when no record exists yet.
	FindByYearMonth(ctx context.Context, year, month int) (*domain.MonthlyRecord, error)
}

// MonthlyRecordWriter defines write operations for monthly records.
type MonthlyRecordWriter interface {
	// CreateMonthlyRecord persists a new record. Returns
	// apperrors.ErrDuplicate when a record for the same (year, month)
	// already exists.
	CreateMonthlyRecord(ctx context.Context, record domain.MonthlyRecord) error
}

// MonthlyRecordRepositoryFacade combines all monthly record repository interfaces.
type MonthlyRecordRepositoryFacade interface {
	MonthlyRecordReader
	MonthlyRecordWriter
}
