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

// collectionHandler handles HTTP requests for the monthly collection grid.
type collectionHandler struct {
	collectionService portssvc.CollectionSvcFacade
}

func newCollectionHandler(cs portssvc.CollectionSvcFacade) *collectionHandler {
	return &collectionHandler{collectionService: cs}
}

// RegisterCollectionRoutes registers routes related to daily collections.
func RegisterCollectionRoutes(rg *gin.RouterGroup, collectionService portssvc.CollectionSvcFacade) {
	h := newCollectionHandler(collectionService)

	collections := rg.Group("/collections")
	{
		collections.GET("", h.listCollections)
		collections.PUT("", h.saveCollections)
	}
}

// listCollections godoc
// @Summary List a month's collections
// @Description Retrieves all daily collections of trackable staff for the given year and month.
// @Tags collections
// @Produce json
// @Param year query int true "Year"
// @Param month query int true "Month (1-12)"
// @Success 200 {object} dto.ListCollectionsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /collections [get]
func (h *collectionHandler) listCollections(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var q dto.MonthQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	collections, err := h.collectionService.FetchMonth(c.Request.Context(), q.Year, q.Month)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to list collections", slog.Int("year", q.Year), slog.Int("month", q.Month), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list collections"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListCollectionsResponse(collections))
}

// saveCollections godoc
// @Summary Save a month's collections
// @Description Upserts the submitted collection entries for the month, recomputes salaries and returns the re-fetched collections.
// @Tags collections
// @Accept json
// @Produce json
// @Param collections body dto.SaveCollectionsRequest true "Collection entries for one month"
// @Success 200 {object} dto.ListCollectionsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /collections [put]
func (h *collectionHandler) saveCollections(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.SaveCollectionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	collections, err := h.collectionService.SaveMonth(c.Request.Context(), req.Year, req.Month, req.Entries)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to save collections", slog.Int("year", req.Year), slog.Int("month", req.Month), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to save collections"})
		return
	}

	logger.Info("Collections saved", slog.Int("year", req.Year), slog.Int("month", req.Month), slog.Int("count", len(collections)))
	c.JSON(http.StatusOK, dto.ToListCollectionsResponse(collections))
}
