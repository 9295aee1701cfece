package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/collectly/backoffice_backend/internal/apperrors"
	"github.com/collectly/backoffice_backend/internal/core/domain"
	portsrepo "github.com/collectly/backoffice_backend/internal/core/ports/repositories"
	portssvc "github.com/collectly/backoffice_backend/internal/core/ports/services"
	"github.com/collectly/backoffice_backend/internal/dto"
)

// productSaleService manages non-collection income entries.
type productSaleService struct {
	BaseService
	saleRepo  portsrepo.ProductSaleRepositoryFacade
	recordSvc portssvc.MonthlyRecordSvcFacade
}

// NewProductSaleService creates a new ProductSaleService.
func NewProductSaleService(saleRepo portsrepo.ProductSaleRepositoryFacade, recordSvc portssvc.MonthlyRecordSvcFacade) portssvc.ProductSaleSvcFacade {
	return &productSaleService{saleRepo: saleRepo, recordSvc: recordSvc}
}

var _ portssvc.ProductSaleSvcFacade = (*productSaleService)(nil)

// FetchMonth lists all product sales of (year, month), newest first.
func (s *productSaleService) FetchMonth(ctx context.Context, year, month int) ([]domain.ProductSale, error) {
	from, to, err := monthBounds(year, month)
	if err != nil {
		return nil, err
	}

	sales, err := s.saleRepo.FindSalesInRange(ctx, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch product sales", slog.Int("year", year), slog.Int("month", month))
		return nil, fmt.Errorf("failed to fetch product sales for %d-%02d: %w", year, month, err)
	}
	if sales == nil {
		sales = []domain.ProductSale{}
	}
	return sales, nil
}

// AddSale resolves the owning monthly record from the sale date and
// inserts the row.
func (s *productSaleService) AddSale(ctx context.Context, req dto.CreateProductSaleRequest) (*domain.ProductSale, error) {
	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: sale amount must be positive", apperrors.ErrValidation)
	}

	record, err := s.recordSvc.GetOrCreate(ctx, date.Year(), int(date.Month()))
	if err != nil {
		return nil, err
	}

	now := time.Now()
	sale := domain.ProductSale{
		SaleID:          uuid.NewString(),
		MonthlyRecordID: record.RecordID,
		Name:            req.Name,
		Description:     req.Description,
		Amount:          req.Amount,
		Date:            date,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.saleRepo.SaveSale(ctx, sale); err != nil {
		s.LogError(ctx, err, "Failed to add product sale", slog.String("record_id", record.RecordID))
		return nil, fmt.Errorf("failed to add product sale: %w", err)
	}

	s.LogInfo(ctx, "Added product sale", slog.String("sale_id", sale.SaleID), slog.String("record_id", record.RecordID))
	return &sale, nil
}

// UpdateSale applies a partial update and returns the merged row.
func (s *productSaleService) UpdateSale(ctx context.Context, saleID string, req dto.UpdateProductSaleRequest) (*domain.ProductSale, error) {
	if req.Date != nil {
		if _, err := parseDate(*req.Date); err != nil {
			return nil, err
		}
	}
	if req.Amount != nil && !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: sale amount must be positive", apperrors.ErrValidation)
	}

	if err := s.saleRepo.UpdateSale(ctx, saleID, req, time.Now()); err != nil {
		s.LogError(ctx, err, "Failed to update product sale", slog.String("sale_id", saleID))
		return nil, fmt.Errorf("failed to update product sale %s: %w", saleID, err)
	}

	updated, err := s.saleRepo.FindSaleByID(ctx, saleID)
	if err != nil {
		s.LogError(ctx, err, "Failed to read back updated product sale", slog.String("sale_id", saleID))
		return nil, fmt.Errorf("failed to read back updated product sale: %w", err)
	}
	return updated, nil
}

// DeleteSale removes a product sale by id.
func (s *productSaleService) DeleteSale(ctx context.Context, saleID string) error {
	if err := s.saleRepo.DeleteSale(ctx, saleID); err != nil {
		s.LogError(ctx, err, "Failed to delete product sale", slog.String("sale_id", saleID))
		return fmt.Errorf("failed to delete product sale %s: %w", saleID, err)
	}
	return nil
}
