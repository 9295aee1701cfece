package pgsql

import (
	"context"
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

// PgxStaffRepository implements the staff repository using pgxpool.
type PgxStaffRepository struct {
	db *pgxpool.Pool
}

// NewStaffRepository creates a new PgxStaffRepository.
func NewStaffRepository(db *pgxpool.Pool) *PgxStaffRepository {
	return &PgxStaffRepository{db: db}
}

var _ portsrepo.StaffRepositoryFacade = (*PgxStaffRepository)(nil)

func toDomainStaff(m models.Staff) domain.Staff {
	s := domain.Staff{
		StaffID:     m.StaffID,
		Name:        m.Name,
		Email:       m.Email,
		HireDate:    m.HireDate,
		Role:        domain.StaffRole(m.Role),
		IsActive:    m.IsActive,
		IsTrackable: m.IsTrackable,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
	if m.UserID.Valid {
		s.UserID = &m.UserID.String
	}
	if m.Phone.Valid {
		s.Phone = &m.Phone.String
	}
	return s
}

const staffSelect = `
	SELECT id, user_id, name, email, phone, hire_date, role, is_active, is_trackable, created_at, updated_at
	FROM staff
`

func scanStaff(row pgx.Row) (models.Staff, error) {
	var m models.Staff
	err := row.Scan(
		&m.StaffID,
		&m.UserID,
		&m.Name,
		&m.Email,
		&m.Phone,
		&m.HireDate,
		&m.Role,
		&m.IsActive,
		&m.IsTrackable,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	return m, err
}

func (r *PgxStaffRepository) queryStaff(ctx context.Context, query string) ([]domain.Staff, error) {
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying staff: %w", err)
	}
	defer rows.Close()

	staff := []domain.Staff{}
	for rows.Next() {
		m, err := scanStaff(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning staff row: %w", err)
		}
		staff = append(staff, toDomainStaff(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating staff rows: %w", err)
	}
	return staff, nil
}

// FindAllStaff retrieves the full roster ordered by name.
func (r *PgxStaffRepository) FindAllStaff(ctx context.Context) ([]domain.Staff, error) {
	return r.queryStaff(ctx, staffSelect+` ORDER BY name ASC;`)
}

// FindTrackableStaff retrieves active staff whose collections participate
// in aggregation, ordered by name.
func (r *PgxStaffRepository) FindTrackableStaff(ctx context.Context) ([]domain.Staff, error) {
	return r.queryStaff(ctx, staffSelect+` WHERE is_active = TRUE AND is_trackable = TRUE ORDER BY name ASC;`)
}

// FindStaffByID retrieves a single staff member.
func (r *PgxStaffRepository) FindStaffByID(ctx context.Context, staffID string) (*domain.Staff, error) {
	m, err := scanStaff(r.db.QueryRow(ctx, staffSelect+` WHERE id = $1;`, staffID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("error finding staff %s: %w", staffID, err)
	}

	staff := toDomainStaff(m)
	return &staff, nil
}

// UpdateStaff applies a partial update, leaving omitted columns untouched.
func (r *PgxStaffRepository) UpdateStaff(ctx context.Context, staffID string, updates dto.UpdateStaffRequest, updatedAt time.Time) error {
	query := `
		UPDATE staff SET
			name = COALESCE($2, name),
			email = COALESCE($3, email),
			phone = COALESCE($4, phone),
			role = COALESCE($5, role),
			is_active = COALESCE($6, is_active),
			is_trackable = COALESCE($7, is_trackable),
			updated_at = $8
		WHERE id = $1;
	`
	tag, err := r.db.Exec(ctx, query,
		staffID,
		updates.Name,
		updates.Email,
		updates.Phone,
		updates.Role,
		updates.IsActive,
		updates.IsTrackable,
		updatedAt,
	)
	if err != nil {
		return fmt.Errorf("error updating staff %s: %w", staffID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
