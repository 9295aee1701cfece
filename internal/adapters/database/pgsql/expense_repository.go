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

// PgxExpenseRepository implements the expense repository using pgxpool.
type PgxExpenseRepository struct {
	db *pgxpool.Pool
}

// NewExpenseRepository creates a new PgxExpenseRepository.
func NewExpenseRepository(db *pgxpool.Pool) *PgxExpenseRepository {
	return &PgxExpenseRepository{db: db}
}

var _ portsrepo.ExpenseRepositoryFacade = (*PgxExpenseRepository)(nil)

func toDomainExpense(m models.Expense) domain.Expense {
	e := domain.Expense{
		ExpenseID:       m.ExpenseID,
		MonthlyRecordID: m.MonthlyRecordID,
		CategoryID:      m.CategoryID,
		CategoryName:    m.CategoryName.String,
		Date:            m.Date,
		Amount:          m.Amount,
		CreatedBy:       m.CreatedBy,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
	if m.Description.Valid {
		e.Description = &m.Description.String
	}
	return e
}

func toDomainCategory(m models.ExpenseCategory) domain.ExpenseCategory {
	c := domain.ExpenseCategory{
		CategoryID: m.CategoryID,
		Name:       m.Name,
		IsDefault:  m.IsDefault,
		IsActive:   m.IsActive,
	}
	if m.Description.Valid {
		c.Description = &m.Description.String
	}
	return c
}

const expenseSelect = `
	SELECT e.id, e.monthly_record_id, e.category_id, c.name AS category_name,
	       e.date, e.description, e.amount, e.created_by, e.created_at, e.updated_at
	FROM expenses e
	LEFT JOIN expense_categories c ON c.id = e.category_id
`

func scanExpense(row pgx.Row) (models.Expense, error) {
	var m models.Expense
	err := row.Scan(
		&m.ExpenseID,
		&m.MonthlyRecordID,
		&m.CategoryID,
		&m.CategoryName,
		&m.Date,
		&m.Description,
		&m.Amount,
		&m.CreatedBy,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	return m, err
}

// FindExpensesInRange retrieves expenses dated within [from, to], joined
// with the category name, newest first.
func (r *PgxExpenseRepository) FindExpensesInRange(ctx context.Context, from, to time.Time) ([]domain.Expense, error) {
	query := expenseSelect + `
	WHERE e.date >= $1 AND e.date <= $2
	ORDER BY e.date DESC;
	`
	rows, err := r.db.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("error querying expenses: %w", err)
	}
	defer rows.Close()

	expenses := []domain.Expense{}
	for rows.Next() {
		m, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning expense row: %w", err)
		}
		expenses = append(expenses, toDomainExpense(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating expense rows: %w", err)
	}
	return expenses, nil
}

// FindExpenseByID retrieves a single expense joined with its category name.
func (r *PgxExpenseRepository) FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	query := expenseSelect + `
	WHERE e.id = $1;
	`
	m, err := scanExpense(r.db.QueryRow(ctx, query, expenseID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("error finding expense %s: %w", expenseID, err)
	}

	expense := toDomainExpense(m)
	return &expense, nil
}

// SaveExpense inserts a new expense row.
func (r *PgxExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	query := `
		INSERT INTO expenses (id, monthly_record_id, category_id, date, description, amount, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	var description sql.NullString
	if expense.Description != nil {
		description = sql.NullString{String: *expense.Description, Valid: true}
	}

	_, err := r.db.Exec(ctx, query,
		expense.ExpenseID,
		expense.MonthlyRecordID,
		expense.CategoryID,
		expense.Date,
		description,
		expense.Amount,
		expense.CreatedBy,
		expense.CreatedAt,
		expense.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("error inserting expense: %w", err)
	}
	return nil
}

// UpdateExpense applies a partial update, leaving omitted columns untouched.
func (r *PgxExpenseRepository) UpdateExpense(ctx context.Context, expenseID string, updates dto.UpdateExpenseRequest, updatedAt time.Time) error {
	var date *time.Time
	if updates.Date != nil {
		parsed, err := time.ParseInLocation(time.DateOnly, *updates.Date, time.UTC)
		if err != nil {
			return fmt.Errorf("%w: invalid date %q", apperrors.ErrValidation, *updates.Date)
		}
		date = &parsed
	}

	query := `
		UPDATE expenses SET
			category_id = COALESCE($2, category_id),
			date = COALESCE($3, date),
			description = COALESCE($4, description),
			amount = COALESCE($5, amount),
			updated_at = $6
		WHERE id = $1;
	`
	tag, err := r.db.Exec(ctx, query,
		expenseID,
		updates.CategoryID,
		date,
		updates.Description,
		updates.Amount,
		updatedAt,
	)
	if err != nil {
		return fmt.Errorf("error updating expense %s: %w", expenseID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteExpense removes the row with the given id.
func (r *PgxExpenseRepository) DeleteExpense(ctx context.Context, expenseID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM expenses WHERE id = $1;`, expenseID)
	if err != nil {
		return fmt.Errorf("error deleting expense %s: %w", expenseID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindActiveCategories retrieves active categories ordered by name.
func (r *PgxExpenseRepository) FindActiveCategories(ctx context.Context) ([]domain.ExpenseCategory, error) {
	query := `
		SELECT id, name, description, is_default, is_active
		FROM expense_categories
		WHERE is_active = TRUE
		ORDER BY name ASC;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying expense categories: %w", err)
	}
	defer rows.Close()

	categories := []domain.ExpenseCategory{}
	for rows.Next() {
		var m models.ExpenseCategory
		if err := rows.Scan(&m.CategoryID, &m.Name, &m.Description, &m.IsDefault, &m.IsActive); err != nil {
			return nil, fmt.Errorf("error scanning category row: %w", err)
		}
		categories = append(categories, toDomainCategory(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating category rows: %w", err)
	}
	return categories, nil
}
