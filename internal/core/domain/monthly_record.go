package domain

import "time"

// MonthlyRecordStatus represents the lifecycle state of a monthly record.
type MonthlyRecordStatus string

const (
	RecordDraft     MonthlyRecordStatus = "draft"
	RecordCompleted MonthlyRecordStatus = "completed"
	RecordLocked    MonthlyRecordStatus = "locked"
)

// MonthlyRecord anchors all financial activity for one calendar month.
// At most one record exists per (year, month); the database enforces this
// with a unique constraint and the resolver retries on conflict.
type MonthlyRecord struct {
	RecordID  string              `json:"recordID"`
	Year      int                 `json:"year"`
	Month     int                 `json:"month"` // 1-indexed
	Status    MonthlyRecordStatus `json:"status"`
	CreatedAt time.Time           `json:"createdAt"`
	UpdatedAt time.Time           `json:"updatedAt"`
}
