package dto

import (
	"time"

	"github.com/collectly/backoffice_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateProductSaleRequest defines the data required to record a product
// sale. The owning monthly record is resolved from Date by the service.
type CreateProductSaleRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description *string         `json:"description"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Date        string          `json:"date" binding:"required"` // YYYY-MM-DD
}

// UpdateProductSaleRequest defines the fields allowed for a partial update.
type UpdateProductSaleRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Amount      *decimal.Decimal `json:"amount"`
	Date        *string          `json:"date"` // YYYY-MM-DD
}

// ProductSaleResponse is the API shape of a product sale row.
type ProductSaleResponse struct {
	SaleID          string          `json:"saleID"`
	MonthlyRecordID string          `json:"monthlyRecordID"`
	Name            string          `json:"name"`
	Description     *string         `json:"description,omitempty"`
	Amount          decimal.Decimal `json:"amount"`
	Date            string          `json:"date"`
}

// ListProductSalesResponse wraps the sales of one month.
type ListProductSalesResponse struct {
	Sales []ProductSaleResponse `json:"sales"`
}

// ToProductSaleResponse converts a domain.ProductSale to its API shape.
func ToProductSaleResponse(s domain.ProductSale) ProductSaleResponse {
	return ProductSaleResponse{
		SaleID:          s.SaleID,
		MonthlyRecordID: s.MonthlyRecordID,
		Name:            s.Name,
		Description:     s.Description,
		Amount:          s.Amount,
		Date:            s.Date.Format(time.DateOnly),
	}
}

// ToListProductSalesResponse converts a slice of product sales.
func ToListProductSalesResponse(ss []domain.ProductSale) ListProductSalesResponse {
	out := make([]ProductSaleResponse, len(ss))
	for i, s := range ss {
		out[i] = ToProductSaleResponse(s)
	}
	return ListProductSalesResponse{Sales: out}
}
