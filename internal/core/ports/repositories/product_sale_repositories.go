package repositories

import (
	"context"
	"time"

	"github.com/collectly/backoffice_backend/internal/core/domain"
	"github.com/collectly/backoffice_backend/internal/dto"
)

// ProductSaleReader defines read operations for product sales.
type ProductSaleReader interface {
	// FindSalesInRange retrieves all sales whose date falls in [from, to],
	// ordered by date descending.
	FindSalesInRange(ctx context.Context, from, to time.Time) ([]domain.ProductSale, error)

	// FindSaleByID retrieves a single sale. Returns apperrors.ErrNotFound
	// when the id is unknown.
	FindSaleByID(ctx context.Context, saleID string) (*domain.ProductSale, error)
}

// ProductSaleWriter defines write operations for product sales.
type ProductSaleWriter interface {
	// SaveSale inserts a new product sale row.
	SaveSale(ctx context.Context, sale domain.ProductSale) error

	// UpdateSale applies a partial update and bumps updated_at.
	UpdateSale(ctx context.Context, saleID string, updates dto.UpdateProductSaleRequest, updatedAt time.Time) error

	// DeleteSale removes the row with the given id.
	DeleteSale(ctx context.Context, saleID string) error
}

// ProductSaleRepositoryFacade combines all product sale repository interfaces.
type ProductSaleRepositoryFacade interface {
	ProductSaleReader
	ProductSaleWriter
}
