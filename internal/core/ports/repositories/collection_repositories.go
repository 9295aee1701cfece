package repositories

import (
	"context"
	"time"

	"github.com/collectly/backoffice_backend/internal/core/domain"
)

// CollectionReader defines read operations for daily collections.
type CollectionReader interface {
	// FindCollectionsInRange retrieves all collections whose date falls in
	// [from, to], restricted to trackable staff. Returns an empty slice
	// when no rows match.
	FindCollectionsInRange(ctx context.Context, from, to time.Time) ([]domain.DailyCollection, error)
}

// CollectionWriter defines write operations for daily collections.
type CollectionWriter interface {
	// UpsertCollections inserts the given rows, overwriting the amount of
	// any existing row with the same (monthly_record_id, staff_id, date).
	UpsertCollections(ctx context.Context, collections []domain.DailyCollection) error
}

// CollectionRepositoryFacade combines all collection repository interfaces.
type CollectionRepositoryFacade interface {
	CollectionReader
	CollectionWriter
}
