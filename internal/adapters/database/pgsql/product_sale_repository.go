package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/collectly/backoffice_backend/internal/apperrors"
	"github.com/collectly/backoffice_backend/internal/core/domain"
	portsrepo "github.com/collectly/backoffice_backend/internal/core/ports/repositories"
	"github.com/collectly/backoffice_backend/internal/dto"
	"github.com/collectly/backoffice_backend/internal/models"
)

// PgxProductSaleRepository implements the product sale repository using pgxpool.
type PgxProductSaleRepository struct {
	db *pgxpool.Pool
}

// NewProductSaleRepository creates a new PgxProductSaleRepository.
func NewProductSaleRepository(db *pgxpool.Pool) *PgxProductSaleRepository {
	return &PgxProductSaleRepository{db: db}
}

var _ portsrepo.ProductSaleRepositoryFacade = (*PgxProductSaleRepository)(nil)

func toDomainProductSale(m models.ProductSale) domain.ProductSale {
	s := domain.ProductSale{
		SaleID:          m.SaleID,
		MonthlyRecordID: m.MonthlyRecordID,
		Name:            m.Name,
		Amount:          m.Amount,
		Date:            m.Date,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
	if m.Description.Valid {
		s.Description = &m.Description.String
	}
	return s
}

func scanProductSale(row pgx.Row) (models.ProductSale, error) {
	var m models.ProductSale
	err := row.Scan(
		&m.SaleID,
		&m.MonthlyRecordID,
		&m.Name,
		&m.Description,
		&m.Amount,
		&m.Date,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	return m, err
}

const productSaleSelect = `
	SELECT id, monthly_record_id, name, description, amount, date, created_at, updated_at
	FROM product_sales
`

// FindSalesInRange retrieves sales dated within [from, to], newest first.
func (r *PgxProductSaleRepository) FindSalesInRange(ctx context.Context, from, to time.Time) ([]domain.ProductSale, error) {
	query := productSaleSelect + `
	WHERE date >= $1 AND date <= $2
	ORDER BY date DESC;
	`
	rows, err := r.db.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("error querying product sales: %w", err)
	}
	defer rows.Close()

	sales := []domain.ProductSale{}
	for rows.Next() {
		m, err := scanProductSale(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning product sale row: %w", err)
		}
		sales = append(sales, toDomainProductSale(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating product sale rows: %w", err)
	}
	return sales, nil
}

// FindSaleByID retrieves a single product sale.
func (r *PgxProductSaleRepository) FindSaleByID(ctx context.Context, saleID string) (*domain.ProductSale, error) {
	query := productSaleSelect + `
	WHERE id = $1;
	`
	m, err := scanProductSale(r.db.QueryRow(ctx, query, saleID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("error finding product sale %s: %w", saleID, err)
	}

	sale := toDomainProductSale(m)
	return &sale, nil
}

// SaveSale inserts a new product sale row.
func (r *PgxProductSaleRepository) SaveSale(ctx context.Context, sale domain.ProductSale) error {
	query := `
		INSERT INTO product_sales (id, monthly_record_id, name, description, amount, date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	var description sql.NullString
	if sale.Description != nil {
		description = sql.NullString{String: *sale.Description, Valid: true}
	}

	_, err := r.db.Exec(ctx, query,
		sale.SaleID,
		sale.MonthlyRecordID,
		sale.Name,
		description,
		sale.Amount,
		sale.Date,
		sale.CreatedAt,
		sale.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("error inserting product sale: %w", err)
	}
	return nil
}

// UpdateSale applies a partial update, leaving omitted columns untouched.
func (r *PgxProductSaleRepository) UpdateSale(ctx context.Context, saleID string, updates dto.UpdateProductSaleRequest, updatedAt time.Time) error {
	var date *time.Time
	if updates.Date != nil {
		parsed, err := time.ParseInLocation(time.DateOnly, *updates.Date, time.UTC)
		if err != nil {
			return fmt.Errorf("%w: invalid date %q", apperrors.ErrValidation, *updates.Date)
		}
		date = &parsed
	}

	query := `
		UPDATE product_sales SET
			name = COALESCE($2, name),
			description = COALESCE($3, description),
			amount = COALESCE($4, amount),
			date = COALESCE($5, date),
			updated_at = $6
		WHERE id = $1;
	`
	tag, err := r.db.Exec(ctx, query,
		saleID,
		updates.Name,
		updates.Description,
		updates.Amount,
		date,
		updatedAt,
	)
	if err != nil {
		return fmt.Errorf("error updating product sale %s: %w", saleID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteSale removes the row with the given id.
func (r *PgxProductSaleRepository) DeleteSale(ctx context.Context, saleID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM product_sales WHERE id = $1;`, saleID)
	if err != nil {
		return fmt.Errorf("error deleting product sale %s: %w", saleID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
