package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/collectly/backoffice_backend/internal/apperrors"
	portssvc "github.com/collectly/backoffice_backend/internal/core/ports/services"
	"github.com/collectly/backoffice_backend/internal/dto"
	"github.com/collectly/backoffice_backend/internal/middleware"
)

// productSaleHandler handles HTTP requests for product sales.
type productSaleHandler struct {
	saleService portssvc.ProductSaleSvcFacade
}

func newProductSaleHandler(ps portssvc.ProductSaleSvcFacade) *productSaleHandler {
	return &productSaleHandler{saleService: ps}
}

// registerProductSaleRoutes registers routes related to product sales.
func registerProductSaleRoutes(rg *gin.RouterGroup, saleService portssvc.ProductSaleSvcFacade) {
	h := newProductSaleHandler(saleService)

	sales := rg.Group("/product-sales")
	{
		sales.GET("", h.listSales)
		sales.POST("", h.addSale)
		sales.PUT("/:id", h.updateSale)
		sales.DELETE("/:id", h.deleteSale)
	}
}

// listSales godoc
// @Summary List a month's product sales
// @Tags product-sales
// @Produce json
// @Param year query int true "Year"
// @Param month query int true "Month (1-12)"
// @Success 200 {object} dto.ListProductSalesResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /product-sales [get]
func (h *productSaleHandler) listSales(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var q dto.MonthQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	sales, err := h.saleService.FetchMonth(c.Request.Context(), q.Year, q.Month)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to list product sales", slog.Int("year", q.Year), slog.Int("month", q.Month), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list product sales"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListProductSalesResponse(sales))
}

// addSale godoc
// @Summary Record a product sale
// @Description Records a product sale under the monthly record its date belongs to.
// @Tags product-sales
// @Accept json
// @Produce json
// @Param sale body dto.CreateProductSaleRequest true "Sale details"
// @Success 201 {object} dto.ProductSaleResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /product-sales [post]
func (h *productSaleHandler) addSale(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateProductSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	sale, err := h.saleService.AddSale(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to add product sale", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to add product sale"})
		return
	}

	logger.Info("Product sale recorded", slog.String("sale_id", sale.SaleID))
	c.JSON(http.StatusCreated, dto.ToProductSaleResponse(*sale))
}

// updateSale godoc
// @Summary Update a product sale
// @Description Applies a partial update to a product sale. Omitted fields are left unchanged.
// @Tags product-sales
// @Accept json
// @Produce json
// @Param id path string true "Sale ID"
// @Param sale body dto.UpdateProductSaleRequest true "Fields to update"
// @Success 200 {object} dto.ProductSaleResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /product-sales/{id} [put]
func (h *productSaleHandler) updateSale(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	saleID := c.Param("id")

	var req dto.UpdateProductSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	sale, err := h.saleService.UpdateSale(c.Request.Context(), saleID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Product sale not found"})
			return
		}
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to update product sale", slog.String("sale_id", saleID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update product sale"})
		return
	}

	c.JSON(http.StatusOK, dto.ToProductSaleResponse(*sale))
}

// deleteSale godoc
// @Summary Delete a product sale
// @Tags product-sales
// @Produce json
// @Param id path string true "Sale ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /product-sales/{id} [delete]
func (h *productSaleHandler) deleteSale(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	saleID := c.Param("id")

	if err := h.saleService.DeleteSale(c.Request.Context(), saleID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Product sale not found"})
			return
		}
		logger.Error("Failed to delete product sale", slog.String("sale_id", saleID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete product sale"})
		return
	}

	c.Status(http.StatusNoContent)
}
