package models

import (
	"database/sql"
	"time"
)

// Staff is the persistence shape of a staff row.
type Staff struct {
	StaffID     string         `db:"id"`
	UserID      sql.NullString `db:"user_id"`
	Name        string         `db:"name"`
	Email       string         `db:"email"`
	Phone       sql.NullString `db:"phone"`
	HireDate    time.Time      `db:"hire_date"`
	Role        string         `db:"role"`
	IsActive    bool           `db:"is_active"`
	IsTrackable bool           `db:"is_trackable"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}
