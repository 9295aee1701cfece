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

// summaryHandler handles HTTP requests for the derived monthly summary.
type summaryHandler struct {
	summaryService portssvc.SummarySvcFacade
}

func newSummaryHandler(ss portssvc.SummarySvcFacade) *summaryHandler {
	return &summaryHandler{summaryService: ss}
}

// registerSummaryRoutes registers routes related to the monthly summary.
func registerSummaryRoutes(rg *gin.RouterGroup, summaryService portssvc.SummarySvcFacade) {
	h := newSummaryHandler(summaryService)

	summary := rg.Group("/summary")
	{
		summary.GET("", h.getSummary)
		summary.POST("/refresh", h.refreshSummary)
	}
}

// getSummary godoc
// @Summary Get a month's financial summary
// @Description Composes the derived summary (totals, salary share, category breakdown, final balance) from the latest snapshot, fetching it first if the month has not been loaded yet.
// @Tags summary
// @Produce json
// @Param year query int true "Year"
// @Param month query int true "Month (1-12)"
// @Success 200 {object} dto.MonthlySummaryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /summary [get]
func (h *summaryHandler) getSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var q dto.MonthQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	summary, err := h.summaryService.Compose(c.Request.Context(), q.Year, q.Month)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to compose summary", slog.Int("year", q.Year), slog.Int("month", q.Month), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to compose summary"})
		return
	}

	c.JSON(http.StatusOK, summary)
}

// refreshSummary godoc
// @Summary Refresh a month's financial summary
// @Description Re-fetches the month's collections, expenses, sales and salaries in parallel and returns the recomposed summary. A failed refresh keeps the previous snapshot and reports the error in the response state.
// @Tags summary
// @Produce json
// @Param year query int true "Year"
// @Param month query int true "Month (1-12)"
// @Success 200 {object} dto.MonthlySummaryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /summary/refresh [post]
func (h *summaryHandler) refreshSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var q dto.MonthQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	if err := h.summaryService.Refresh(c.Request.Context(), q.Year, q.Month); err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		// The snapshot records the failure; the composed response below
		// carries the errored state alongside any stale data.
		logger.Warn("Summary refresh failed", slog.Int("year", q.Year), slog.Int("month", q.Month), slog.String("error", err.Error()))
	}

	summary, err := h.summaryService.Compose(c.Request.Context(), q.Year, q.Month)
	if err != nil {
		logger.Error("Failed to compose summary after refresh", slog.Int("year", q.Year), slog.Int("month", q.Month), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to compose summary"})
		return
	}

	c.JSON(http.StatusOK, summary)
}
