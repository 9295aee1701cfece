package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/collectly/backoffice_backend/internal/apperrors"
	"github.com/collectly/backoffice_backend/internal/core/domain"
	portsrepo "github.com/collectly/backoffice_backend/internal/core/ports/repositories"
	"github.com/collectly/backoffice_backend/internal/models"
)

// uniqueViolation is the PostgreSQL error code for unique constraint violations.
const uniqueViolation = "23505"

// PgxMonthlyRecordRepository implements the monthly record repository using pgxpool.
type PgxMonthlyRecordRepository struct {
	db *pgxpool.Pool
}

// NewMonthlyRecordRepository creates a new PgxMonthlyRecordRepository.
func NewMonthlyRecordRepository(db *pgxpool.Pool) *PgxMonthlyRecordRepository {
	return &PgxMonthlyRecordRepository{db: db}
}

var _ portsrepo.MonthlyRecordRepositoryFacade = (*PgxMonthlyRecordRepository)(nil)

func toDomainMonthlyRecord(m models.MonthlyRecord) domain.MonthlyRecord {
	return domain.MonthlyRecord{
		RecordID:  m.RecordID,
		Year:      m.Year,
		Month:     m.Month,
		Status:    domain.MonthlyRecordStatus(m.Status),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// FindByYearMonth retrieves the record anchoring (year, month).
func (r *PgxMonthlyRecordRepository) FindByYearMonth(ctx context.Context, year, month int) (*domain.MonthlyRecord, error) {
	query := `
		SELECT id, year, month, status, created_at, updated_at
		FROM monthly_records
		WHERE year = $1 AND month = $2;
	`
	var m models.MonthlyRecord
	err := r.db.QueryRow(ctx, query, year, month).Scan(
		&m.RecordID,
		&m.Year,
		&m.Month,
		&m.Status,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("error finding monthly record for %d-%02d: %w", year, month, err)
	}

	record := toDomainMonthlyRecord(m)
	return &record, nil
}

// CreateMonthlyRecord persists a new record. A unique violation on
// (year, month) is reported as apperrors.ErrDuplicate so the resolver can
// re-fetch the winning row.
func (r *PgxMonthlyRecordRepository) CreateMonthlyRecord(ctx context.Context, record domain.MonthlyRecord) error {
	query := `
		INSERT INTO monthly_records (id, year, month, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.db.Exec(ctx, query,
		record.RecordID,
		record.Year,
		record.Month,
		string(record.Status),
		record.CreatedAt,
		record.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("error inserting monthly record for %d-%02d: %w", record.Year, record.Month, err)
	}
	return nil
}
