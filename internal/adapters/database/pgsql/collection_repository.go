package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/collectly/backoffice_backend/internal/core/domain"
	portsrepo "github.com/collectly/backoffice_backend/internal/core/ports/repositories"
	"github.com/collectly/backoffice_backend/internal/models"
)

// PgxCollectionRepository implements the collection repository using pgxpool.
type PgxCollectionRepository struct {
	db *pgxpool.Pool
}

// NewCollectionRepository creates a new PgxCollectionRepository.
func NewCollectionRepository(db *pgxpool.Pool) *PgxCollectionRepository {
	return &PgxCollectionRepository{db: db}
}

var _ portsrepo.CollectionRepositoryFacade = (*PgxCollectionRepository)(nil)

func toDomainCollection(m models.DailyCollection) domain.DailyCollection {
	return domain.DailyCollection{
		CollectionID:    m.CollectionID,
		MonthlyRecordID: m.MonthlyRecordID,
		Date:            m.Date,
		StaffID:         m.StaffID,
		Amount:          m.Amount,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

// FindCollectionsInRange retrieves collections dated within [from, to] for
// trackable staff only.
func (r *PgxCollectionRepository) FindCollectionsInRange(ctx context.Context, from, to time.Time) ([]domain.DailyCollection, error) {
	query := `
		SELECT dc.id, dc.monthly_record_id, dc.date, dc.staff_id, dc.amount, dc.created_at, dc.updated_at
		FROM daily_collections dc
		JOIN staff s ON s.id = dc.staff_id
		WHERE dc.date >= $1 AND dc.date <= $2 AND s.is_trackable = TRUE
		ORDER BY dc.date, dc.staff_id;
	`
	rows, err := r.db.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("error querying collections: %w", err)
	}
	defer rows.Close()

	collections := []domain.DailyCollection{}
	for rows.Next() {
		var m models.DailyCollection
		if err := rows.Scan(&m.CollectionID, &m.MonthlyRecordID, &m.Date, &m.StaffID, &m.Amount, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("error scanning collection row: %w", err)
		}
		collections = append(collections, toDomainCollection(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating collection rows: %w", err)
	}
	return collections, nil
}

// UpsertCollections inserts the given rows in one batch, overwriting the
// amount of any existing row with the same (monthly_record_id, staff_id,
// date) triple.
func (r *PgxCollectionRepository) UpsertCollections(ctx context.Context, collections []domain.DailyCollection) error {
	if len(collections) == 0 {
		return nil
	}

	query := `
		INSERT INTO daily_collections (id, monthly_record_id, date, staff_id, amount, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (monthly_record_id, staff_id, date) DO UPDATE SET
			amount = EXCLUDED.amount,
			updated_at = EXCLUDED.updated_at;
	`
	batch := &pgx.Batch{}
	for _, c := range collections {
		batch.Queue(query,
			c.CollectionID,
			c.MonthlyRecordID,
			c.Date,
			c.StaffID,
			c.Amount,
			c.CreatedAt,
			c.UpdatedAt,
		)
	}

	br := r.db.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return fmt.Errorf("error executing collection upsert batch: %w", err)
	}
	return nil
}
