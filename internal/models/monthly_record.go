package models

import "time"

// MonthlyRecord is the persistence shape of a monthly record row.
type MonthlyRecord struct {
	RecordID  string    `db:"id"`
	Year      int       `db:"year"`
	Month     int       `db:"month"`
	Status    string    `db:"status"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
