package dto

import (
	"time"

	"github.com/collectly/backoffice_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CollectionEntry is one staff member's collection amount for one
// day-of-month, as submitted by the month grid.
type CollectionEntry struct {
	StaffID string          `json:"staffID" binding:"required"`
	Day     int             `json:"day" binding:"required,min=1,max=31"`
	Amount  decimal.Decimal `json:"amount"`
}

// SaveCollectionsRequest commits a month's worth of collection entries.
type SaveCollectionsRequest struct {
	Year    int               `json:"year" binding:"required"`
	Month   int               `json:"month" binding:"required,min=1,max=12"`
	Entries []CollectionEntry `json:"entries" binding:"required"`
}

// MonthQuery holds the year/month pair used by month-scoped listings.
type MonthQuery struct {
	Year  int `form:"year" binding:"required"`
	Month int `form:"month" binding:"required,min=1,max=12"`
}

// CollectionResponse is the API shape of a daily collection row.
type CollectionResponse struct {
	CollectionID    string          `json:"collectionID"`
	MonthlyRecordID string          `json:"monthlyRecordID"`
	Date            string          `json:"date"` // YYYY-MM-DD
	StaffID         string          `json:"staffID"`
	Amount          decimal.Decimal `json:"amount"`
}

// ListCollectionsResponse wraps the collections of one month.
type ListCollectionsResponse struct {
	Collections []CollectionResponse `json:"collections"`
}

// ToCollectionResponse converts a domain.DailyCollection to its API shape.
func ToCollectionResponse(c domain.DailyCollection) CollectionResponse {
	return CollectionResponse{
		CollectionID:    c.CollectionID,
		MonthlyRecordID: c.MonthlyRecordID,
		Date:            c.Date.Format(time.DateOnly),
		StaffID:         c.StaffID,
		Amount:          c.Amount,
	}
}

// ToListCollectionsResponse converts a slice of collections.
func ToListCollectionsResponse(cs []domain.DailyCollection) ListCollectionsResponse {
	out := make([]CollectionResponse, len(cs))
	for i, c := range cs {
		out[i] = ToCollectionResponse(c)
	}
	return ListCollectionsResponse{Collections: out}
}
