package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/collectly/backoffice_backend/internal/core/domain"
	portsrepo "github.com/collectly/backoffice_backend/internal/core/ports/repositories"
	"github.com/collectly/backoffice_backend/internal/models"
)

// PgxSalaryRepository implements the salary repository using pgxpool.
type PgxSalaryRepository struct {
	db *pgxpool.Pool
}

// NewSalaryRepository creates a new PgxSalaryRepository.
func NewSalaryRepository(db *pgxpool.Pool) *PgxSalaryRepository {
	return &PgxSalaryRepository{db: db}
}

var _ portsrepo.SalaryRepositoryFacade = (*PgxSalaryRepository)(nil)

func toDomainSalary(m models.Salary) domain.Salary {
	return domain.Salary{
		SalaryID:        m.SalaryID,
		MonthlyRecordID: m.MonthlyRecordID,
		StaffID:         m.StaffID,
		StaffName:       m.StaffName.String,
		FullAmount:      m.FullAmount,
		HalfAmount:      m.HalfAmount,
	}
}

// FindSalariesByRecord retrieves the salaries of one monthly record joined
// with the staff name.
func (r *PgxSalaryRepository) FindSalariesByRecord(ctx context.Context, recordID string) ([]domain.Salary, error) {
	query := `
		SELECT sa.id, sa.monthly_record_id, sa.staff_id, st.name AS staff_name, sa.full_amount, sa.half_amount
		FROM salaries sa
		JOIN staff st ON st.id = sa.staff_id
		WHERE sa.monthly_record_id = $1
		ORDER BY st.name;
	`
	rows, err := r.db.Query(ctx, query, recordID)
	if err != nil {
		return nil, fmt.Errorf("error querying salaries for record %s: %w", recordID, err)
	}
	defer rows.Close()

	salaries := []domain.Salary{}
	for rows.Next() {
		var m models.Salary
		if err := rows.Scan(&m.SalaryID, &m.MonthlyRecordID, &m.StaffID, &m.StaffName, &m.FullAmount, &m.HalfAmount); err != nil {
			return nil, fmt.Errorf("error scanning salary row: %w", err)
		}
		salaries = append(salaries, toDomainSalary(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating salary rows: %w", err)
	}
	return salaries, nil
}

// UpsertSalaries inserts the given rows in one batch, overwriting any
// existing row with the same (monthly_record_id, staff_id).
func (r *PgxSalaryRepository) UpsertSalaries(ctx context.Context, salaries []domain.Salary) error {
	if len(salaries) == 0 {
		return nil
	}

	query := `
		INSERT INTO salaries (id, monthly_record_id, staff_id, full_amount, half_amount)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (monthly_record_id, staff_id) DO UPDATE SET
			full_amount = EXCLUDED.full_amount,
			half_amount = EXCLUDED.half_amount;
	`
	batch := &pgx.Batch{}
	for _, s := range salaries {
		batch.Queue(query,
			s.SalaryID,
			s.MonthlyRecordID,
			s.StaffID,
			s.FullAmount,
			s.HalfAmount,
		)
	}

	br := r.db.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return fmt.Errorf("error executing salary upsert batch: %w", err)
	}
	return nil
}
